package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Branch struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name    string `gorm:"not null"`
	Address string
	Status  string `gorm:"type:varchar(20);default:'active'"` // active, inactive

	Staff []Staff `gorm:"foreignKey:BranchID"`

	gorm.Model
}

func (b *Branch) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
