package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null"`

	BranchID   uuid.UUID `gorm:"type:uuid;index;not null"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null"`

	AppointmentDate time.Time `gorm:"index;not null"`
	AppointmentTime string    `gorm:"type:varchar(5);not null"` // slot label "HH:MM"

	Status string `gorm:"type:varchar(20);default:'booked'"` // booked, confirmed, completed, cancelled
	Notes  string

	Services []AppointmentService `gorm:"foreignKey:AppointmentID"`
	Products []AppointmentProduct `gorm:"foreignKey:AppointmentID"`

	Customer *Customer `gorm:"foreignKey:CustomerID"`
	Branch   *Branch   `gorm:"foreignKey:BranchID"`

	gorm.Model
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

// AppointmentService stores one booked service with the staff who performs
// it and a snapshot of the service price at selection time
type AppointmentService struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	AppointmentID uuid.UUID `gorm:"type:uuid;index;not null"`
	ServiceID     uuid.UUID `gorm:"type:uuid;index;not null"`
	StaffID       uuid.UUID `gorm:"type:uuid;index;not null"`

	Price float64 `gorm:"type:decimal(10,2);not null"`

	// Optionally preloaded; engine code must work with either the bare
	// id or the populated reference
	Service *Service `gorm:"foreignKey:ServiceID"`
	Staff   *Staff   `gorm:"foreignKey:StaffID"`
}

func (s *AppointmentService) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

// AppointmentProduct stores one product line; Price is the extended line
// total (unit price x quantity)
type AppointmentProduct struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key"`
	AppointmentID uuid.UUID  `gorm:"type:uuid;index;not null"`
	ProductID     uuid.UUID  `gorm:"type:uuid;index;not null"`
	VariantID     *uuid.UUID `gorm:"type:uuid;index"`

	Quantity int     `gorm:"default:1"`
	Price    float64 `gorm:"type:decimal(10,2);not null"`

	Product *Product `gorm:"foreignKey:ProductID"`
}

func (p *AppointmentProduct) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
