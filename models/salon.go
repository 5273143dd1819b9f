package models

import (
	"github.com/google/uuid"
)

type Salon struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	Name    string    `gorm:"not null"`
	Address string

	Branches     []Branch      `gorm:"foreignKey:SalonID"`
	Users        []User        `gorm:"foreignKey:SalonID"`
	Customers    []Customer    `gorm:"foreignKey:SalonID"`
	Services     []Service     `gorm:"foreignKey:SalonID"`
	Products     []Product     `gorm:"foreignKey:SalonID"`
	Appointments []Appointment `gorm:"foreignKey:SalonID"`
	Payments     []Payment     `gorm:"foreignKey:SalonID"`
}
