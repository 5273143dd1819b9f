package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name         string  `gorm:"not null"`
	Description  string
	RegularPrice float64 `gorm:"type:decimal(10,2);not null"`
	Duration     int     // in minutes
	Category     string  `gorm:"default:'General'"`
	Status       string  `gorm:"type:varchar(20);default:'active'"`

	AppointmentServices []AppointmentService `gorm:"foreignKey:ServiceID"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
