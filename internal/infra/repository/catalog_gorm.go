package repository

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"

	domain "github.com/idohairstudios/salon-booking/internal/domain/booking"
	"github.com/idohairstudios/salon-booking/internal/httperr"
	"github.com/idohairstudios/salon-booking/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// FindStyle accepts a style value, display name or numeric id, since clients
// have historically sent any of the three.
func (r *CatalogGormRepository) FindStyle(
	ctx context.Context,
	idOrName string,
) (*models.HairStyle, error) {

	var style models.HairStyle

	err := r.db.WithContext(ctx).
		Preload("PriceVariations").
		Where("value = ?", idOrName).
		First(&style).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = r.db.WithContext(ctx).
			Preload("PriceVariations").
			Where("name = ?", idOrName).
			First(&style).Error
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if id, convErr := strconv.ParseUint(idOrName, 10, 64); convErr == nil {
			err = r.db.WithContext(ctx).
				Preload("PriceVariations").
				First(&style, uint(id)).Error
		}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if err != nil {
		return nil, err
	}

	if !style.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	return &style, nil
}

// Compile-time check
var _ domain.CatalogReader = (*CatalogGormRepository)(nil)
