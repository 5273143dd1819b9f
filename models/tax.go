package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tax struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null"`

	Title  string  `gorm:"not null"`
	Type   string  `gorm:"type:varchar(20);not null"` // percent, flat
	Value  float64 `gorm:"type:decimal(10,2);not null"`
	Status string  `gorm:"type:varchar(20);default:'active'"`

	gorm.Model
}

func (t *Tax) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
