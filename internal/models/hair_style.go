package models

import "time"

type HairStyle struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Category string `gorm:"size:50;not null" json:"category"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Value    string `gorm:"size:100;uniqueIndex;not null" json:"value"`

	Price float64 `json:"price"`

	// Optional size/length variations, e.g. Shoulder / Midback / Waist.
	PriceVariations []PriceVariation `gorm:"foreignKey:HairStyleID" json:"price_variations"`
	VariationLabel  string           `gorm:"size:50;default:'Select Length'" json:"variation_label"`

	Description string `gorm:"size:255" json:"description"`
	Duration    string `gorm:"size:30" json:"duration"`
	IsTrending  bool   `gorm:"default:false" json:"is_trending"`
	Active      bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PriceVariation struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	HairStyleID uint    `gorm:"index" json:"hair_style_id"`
	Name        string  `gorm:"size:50;not null" json:"name"`
	Price       float64 `json:"price"`
}
