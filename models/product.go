package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null"`

	ProductName   string `gorm:"not null"`
	Description   string
	HasVariations bool    `gorm:"default:false"`
	Price         float64 `gorm:"type:decimal(10,2);default:0.0"` // used only when HasVariations is false
	Stock         int     `gorm:"default:0"`
	Status        string  `gorm:"type:varchar(20);default:'active'"`

	Variants []ProductVariant `gorm:"foreignKey:ProductID"`

	gorm.Model
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

// One concrete SKU of a variation product, identified by its
// (variation_type, variation_value) pair list
type ProductVariant struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null"`

	Combination VariantPairList `gorm:"type:jsonb;not null"`
	Price       float64         `gorm:"type:decimal(10,2);default:0.0"`
	Stock       int             `gorm:"default:0"`
	SKU         string
	Code        string
}

func (v *ProductVariant) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return
}

type VariantPair struct {
	VariationType  string `json:"variation_type"`
	VariationValue string `json:"variation_value"`
}

// Custom JSONB type for the ordered pair list
type VariantPairList []VariantPair

func (l VariantPairList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *VariantPairList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &l)
}
