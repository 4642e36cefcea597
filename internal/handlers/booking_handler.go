package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/idohairstudios/salon-booking/internal/domain/booking"
	"github.com/idohairstudios/salon-booking/internal/dto"
	"github.com/idohairstudios/salon-booking/internal/httpresp"
	ucBooking "github.com/idohairstudios/salon-booking/internal/usecase/booking"
)

type BookingHandler struct {
	initializeUC *ucBooking.InitializeBooking
	reconcileUC  *ucBooking.ReconcileBooking
	listDatesUC  *ucBooking.ListAvailableDates
}

func NewBookingHandler(
	initializeUC *ucBooking.InitializeBooking,
	reconcileUC *ucBooking.ReconcileBooking,
	listDatesUC *ucBooking.ListAvailableDates,
) *BookingHandler {
	return &BookingHandler{
		initializeUC: initializeUC,
		reconcileUC:  reconcileUC,
		listDatesUC:  listDatesUC,
	}
}

// --------- Requests ---------

type addOnRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price"`
}

type InitializeBookingRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Whatsapp string `json:"whatsapp" binding:"required"`
	Snapchat string `json:"snapchat"`

	ServiceID string `json:"service_id" binding:"required"`
	Variation string `json:"variation"`

	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`

	HairColor       string `json:"hair_color"`
	PreferredLength string `json:"preferred_length"`

	AddOns []addOnRequest `json:"add_ons"`
}

type VerifyBookingRequest struct {
	Reference string `json:"reference" binding:"required"`
}

// --------- Handlers ---------

func (h *BookingHandler) Initialize(c *gin.Context) {
	var req InitializeBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	addOns := make([]domain.SelectedAddOn, 0, len(req.AddOns))
	for _, a := range req.AddOns {
		addOns = append(addOns, domain.SelectedAddOn{Name: a.Name, Price: a.Price})
	}

	result, err := h.initializeUC.Execute(c.Request.Context(), ucBooking.InitializeBookingInput{
		Name:            req.Name,
		Phone:           req.Phone,
		Whatsapp:        req.Whatsapp,
		Snapchat:        req.Snapchat,
		ServiceID:       req.ServiceID,
		Variation:       req.Variation,
		Date:            req.Date,
		TimeSlot:        req.Time,
		HairColor:       req.HairColor,
		PreferredLength: req.PreferredLength,
		AddOns:          addOns,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *BookingHandler) Verify(c *gin.Context) {
	var req VerifyBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	result, err := h.reconcileUC.Execute(c.Request.Context(), req.Reference)
	if err != nil {
		writeError(c, err)
		return
	}

	if result.Pending {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"pending": true,
		})
		return
	}

	if !result.Success {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"pending": false,
			"message": "Payment was not completed.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"needs_review": result.NeedsReview,
		"appointment":  dto.AppointmentSummary(result.Appointment),
	})
}

func (h *BookingHandler) ListAvailableDates(c *gin.Context) {
	month := c.Query("month")

	dates, err := h.listDatesUC.Execute(c.Request.Context(), month)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, dates)
}

func (h *BookingHandler) ListTimeSlots(c *gin.Context) {
	httpresp.List(c, domain.TimeSlots)
}
