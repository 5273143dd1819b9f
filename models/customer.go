package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name  string `gorm:"not null"`
	Phone string `gorm:"not null;uniqueIndex:idx_salon_phone,priority:2"`
	Email string
	Notes string

	// Standing membership discount; applied to every settlement while active
	MembershipActive       bool    `gorm:"default:false"`
	MembershipDiscountType string  `gorm:"type:varchar(20)"` // percentage, flat
	MembershipDiscount     float64 `gorm:"type:decimal(10,2);default:0.0"`

	TotalVisits int     `gorm:"default:0"`
	TotalSpent  float64 `gorm:"type:decimal(10,2);default:0.0"`
	LastVisit   *time.Time
	IsActive    bool `gorm:"default:true"`

	Appointments []Appointment `gorm:"foreignKey:CustomerID"`

	gorm.Model
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
