package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/idohairstudios/salon-booking/internal/httpresp"
	"github.com/idohairstudios/salon-booking/internal/models"
)

// CatalogHandler serves the style and add-on catalog: public read
// endpoints for the booking flow and admin CRUD for the back office.
type CatalogHandler struct {
	db *gorm.DB
}

func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{db: db}
}

// --------- Requests ---------

type priceVariationRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"required"`
}

type CreateStyleRequest struct {
	Category        string                  `json:"category" binding:"required"`
	Name            string                  `json:"name" binding:"required"`
	Value           string                  `json:"value" binding:"required"`
	Price           float64                 `json:"price"`
	PriceVariations []priceVariationRequest `json:"price_variations"`
	VariationLabel  string                  `json:"variation_label"`
	Description     string                  `json:"description"`
	Duration        string                  `json:"duration"`
	IsTrending      bool                    `json:"is_trending"`
}

type UpdateStyleRequest struct {
	Category    *string  `json:"category,omitempty"`
	Name        *string  `json:"name,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Description *string  `json:"description,omitempty"`
	Duration    *string  `json:"duration,omitempty"`
	IsTrending  *bool    `json:"is_trending,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

type CreateAddOnRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Category    string  `json:"category"`
}

type UpdateAddOnRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// --------- Styles ---------

func (h *CatalogHandler) ListStyles(c *gin.Context) {
	category := strings.ToLower(strings.TrimSpace(c.Query("category")))

	q := h.db.Preload("PriceVariations").Where("active = ?", true)
	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	var styles []models.HairStyle
	if err := q.Order("id ASC").Find(&styles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_styles"})
		return
	}

	httpresp.List(c, styles)
}

func (h *CatalogHandler) CreateStyle(c *gin.Context) {
	var req CreateStyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	variations := make([]models.PriceVariation, 0, len(req.PriceVariations))
	for _, v := range req.PriceVariations {
		variations = append(variations, models.PriceVariation{
			Name:  v.Name,
			Price: v.Price,
		})
	}

	style := models.HairStyle{
		Category:        strings.ToLower(req.Category),
		Name:            req.Name,
		Value:           req.Value,
		Price:           req.Price,
		PriceVariations: variations,
		VariationLabel:  req.VariationLabel,
		Description:     req.Description,
		Duration:        req.Duration,
		IsTrending:      req.IsTrending,
		Active:          true,
	}

	if err := h.db.Create(&style).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_style"})
		return
	}

	c.JSON(http.StatusCreated, style)
}

func (h *CatalogHandler) UpdateStyle(c *gin.Context) {
	id := c.Param("id")

	var style models.HairStyle
	if err := h.db.First(&style, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "style_not_found"})
		return
	}

	var req UpdateStyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Category != nil {
		style.Category = strings.ToLower(*req.Category)
	}
	if req.Name != nil {
		style.Name = *req.Name
	}
	if req.Price != nil {
		style.Price = *req.Price
	}
	if req.Description != nil {
		style.Description = *req.Description
	}
	if req.Duration != nil {
		style.Duration = *req.Duration
	}
	if req.IsTrending != nil {
		style.IsTrending = *req.IsTrending
	}
	if req.Active != nil {
		style.Active = *req.Active
	}

	if err := h.db.Save(&style).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_style"})
		return
	}

	httpresp.OK(c, style)
}

// --------- Add-on services ---------

func (h *CatalogHandler) ListAddOns(c *gin.Context) {
	var addOns []models.AddOnService
	if err := h.db.
		Where("active = ?", true).
		Order("id ASC").
		Find(&addOns).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_addons"})
		return
	}

	httpresp.List(c, addOns)
}

func (h *CatalogHandler) CreateAddOn(c *gin.Context) {
	var req CreateAddOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	category := req.Category
	if category == "" {
		category = "general"
	}

	addOn := models.AddOnService{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    strings.ToLower(category),
		Active:      true,
	}

	if err := h.db.Create(&addOn).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_addon"})
		return
	}

	c.JSON(http.StatusCreated, addOn)
}

func (h *CatalogHandler) UpdateAddOn(c *gin.Context) {
	id := c.Param("id")

	var addOn models.AddOnService
	if err := h.db.First(&addOn, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "addon_not_found"})
		return
	}

	var req UpdateAddOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		addOn.Name = *req.Name
	}
	if req.Description != nil {
		addOn.Description = *req.Description
	}
	if req.Price != nil {
		addOn.Price = *req.Price
	}
	if req.Category != nil {
		addOn.Category = strings.ToLower(*req.Category)
	}
	if req.Active != nil {
		addOn.Active = *req.Active
	}

	if err := h.db.Save(&addOn).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_addon"})
		return
	}

	httpresp.OK(c, addOn)
}
