package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment is the persisted settlement of an appointment
type Payment struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null"`

	PaymentNumber string    `gorm:"uniqueIndex;not null"`
	AppointmentID uuid.UUID `gorm:"type:uuid;index;not null"`
	PaymentDate   time.Time `gorm:"default:CURRENT_TIMESTAMP"`

	TaxID    *uuid.UUID `gorm:"type:uuid"`
	CouponID *uuid.UUID `gorm:"type:uuid"`

	Tips                    float64 `gorm:"type:decimal(10,2);default:0.0"`
	AdditionalDiscountType  string  `gorm:"type:varchar(20)"` // percentage, flat
	AdditionalDiscountValue float64 `gorm:"type:decimal(10,2);default:0.0"`

	Subtotal           float64 `gorm:"type:decimal(10,2);not null"`
	TaxAmount          float64 `gorm:"type:decimal(10,2);default:0.0"`
	CouponDiscount     float64 `gorm:"type:decimal(10,2);default:0.0"`
	ManualDiscount     float64 `gorm:"type:decimal(10,2);default:0.0"`
	MembershipDiscount float64 `gorm:"type:decimal(10,2);default:0.0"`
	GrandTotal         float64 `gorm:"type:decimal(10,2);not null"`

	PaymentMethod string `gorm:"type:varchar(20)"` // cash, card, upi
	Notes         string

	Appointment *Appointment `gorm:"foreignKey:AppointmentID"`

	gorm.Model
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
