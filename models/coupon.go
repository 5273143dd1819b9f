package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Coupon struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null"`

	CouponCode     string    `gorm:"not null;uniqueIndex:idx_salon_coupon_code,priority:2"`
	Status         string    `gorm:"type:varchar(20);default:'active'"`
	StartDate      time.Time `gorm:"not null"`
	EndDate        time.Time `gorm:"not null"`
	DiscountType   string    `gorm:"type:varchar(20);not null"` // percentage, flat
	DiscountAmount float64   `gorm:"type:decimal(10,2);not null"`

	gorm.Model
}

func (c *Coupon) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
