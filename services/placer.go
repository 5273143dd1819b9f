// services/placer.go
package services

import (
	"time"

	"github.com/google/uuid"

	"salonbook-backend/models"
	"salonbook-backend/utils"
)

// AppointmentsAt returns every appointment sitting on the (day, slot,
// staff) cell. An appointment occupies the cell when its date falls on the
// same calendar day, its time equals the slot label exactly, and the staff
// member appears on any of its services. Multiple appointments can legally
// share a cell; the grid reports overlaps, it does not prevent them.
func AppointmentsAt(day time.Time, slot TimeSlot, staffID uuid.UUID, appointments []models.Appointment) []models.Appointment {
	var matched []models.Appointment
	for _, appt := range appointments {
		if occupiesCell(appt, day, slot, staffID) {
			matched = append(matched, appt)
		}
	}
	return matched
}

// IsOccupied reports whether any appointment sits on the cell
func IsOccupied(day time.Time, slot TimeSlot, staffID uuid.UUID, appointments []models.Appointment) bool {
	for _, appt := range appointments {
		if occupiesCell(appt, day, slot, staffID) {
			return true
		}
	}
	return false
}

func occupiesCell(appt models.Appointment, day time.Time, slot TimeSlot, staffID uuid.UUID) bool {
	if !utils.SameDay(appt.AppointmentDate, day) {
		return false
	}
	if appt.AppointmentTime != slot.Label {
		return false
	}
	for _, s := range appt.Services {
		if s.StaffID == staffID {
			return true
		}
	}
	return false
}

// BookingSeed is the prefilled booking form state produced by clicking a
// grid cell
type BookingSeed struct {
	AppointmentID   *uuid.UUID         `json:"appointment_id,omitempty"` // nil for a blank booking
	BranchID        uuid.UUID          `json:"branch_id"`
	CustomerID      *uuid.UUID         `json:"customer_id,omitempty"`
	AppointmentDate time.Time          `json:"appointment_date"`
	AppointmentTime string             `json:"appointment_time"`
	Status          string             `json:"status"`
	Notes           string             `json:"notes"`
	Services        []ServiceSelection `json:"services"`
	Products        []ProductLineItem  `json:"products"`
}

// SeedForCell builds the booking form state for a grid cell click. An
// empty cell yields a blank booking pre-seeded with the clicked staff,
// date and time; an occupied cell expands the first matching appointment
// for edit, with one selection per stored service. Service and staff
// references on stored rows may arrive populated or as bare ids; both
// resolve through the same Ref helper against the catalog.
func SeedForCell(day time.Time, slot TimeSlot, staffID, branchID uuid.UUID, appointments []models.Appointment, catalog Catalog) BookingSeed {
	matched := AppointmentsAt(day, slot, staffID, appointments)
	if len(matched) == 0 {
		return BookingSeed{
			BranchID:        branchID,
			AppointmentDate: utils.BeginningOfDay(day),
			AppointmentTime: slot.Label,
			Status:          "booked",
			Services: []ServiceSelection{
				{StaffID: staffID},
			},
		}
	}

	appt := matched[0]
	seed := BookingSeed{
		AppointmentID:   &appt.ID,
		BranchID:        appt.BranchID,
		CustomerID:      &appt.CustomerID,
		AppointmentDate: appt.AppointmentDate,
		AppointmentTime: appt.AppointmentTime,
		Status:          appt.Status,
		Notes:           appt.Notes,
	}

	for _, row := range appt.Services {
		sel := ServiceSelection{Price: row.Price}

		serviceRef := Ref[models.Service]{ID: row.ServiceID, Value: row.Service}
		if service, ok := serviceRef.Resolve(func(id uuid.UUID) (*models.Service, bool) {
			if s, ok := catalog.Services[id]; ok {
				return &s, true
			}
			return nil, false
		}); ok {
			sel.ServiceID = service.ID
		} else {
			sel.ServiceID = row.ServiceID
		}

		staffRef := Ref[models.Staff]{ID: row.StaffID, Value: row.Staff}
		if staff, ok := staffRef.Resolve(nil); ok {
			sel.StaffID = staff.ID
		} else {
			sel.StaffID = row.StaffID
		}

		seed.Services = append(seed.Services, sel)
	}

	for _, row := range appt.Products {
		seed.Products = append(seed.Products, ProductLineItem{
			ProductID: row.ProductID,
			VariantID: row.VariantID,
			Quantity:  row.Quantity,
			Price:     row.Price,
		})
	}

	return seed
}
