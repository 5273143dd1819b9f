package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Staff struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	SalonID  uuid.UUID `gorm:"type:uuid;index;not null"`
	BranchID uuid.UUID `gorm:"type:uuid;index;not null"`

	FullName string `gorm:"not null"`
	Phone    string
	Email    string

	// Shift window in "HH:MM"; empty means the full-day grid applies
	StartShift string `gorm:"type:varchar(5)"`
	EndShift   string `gorm:"type:varchar(5)"`

	Status string `gorm:"type:varchar(20);default:'active'"`

	gorm.Model
}

func (s *Staff) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
