package services

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"salonbook-backend/models"
)

func makeAppointment(day time.Time, slot string, staffID uuid.UUID) models.Appointment {
	return models.Appointment{
		ID:              uuid.New(),
		BranchID:        uuid.New(),
		CustomerID:      uuid.New(),
		AppointmentDate: day,
		AppointmentTime: slot,
		Status:          "booked",
		Services: []models.AppointmentService{
			{ServiceID: uuid.New(), StaffID: staffID, Price: 500},
		},
	}
}

func TestIsOccupied(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	staffID := uuid.New()
	otherStaff := uuid.New()
	appointments := []models.Appointment{makeAppointment(day, "10:00", staffID)}

	if !IsOccupied(day, TimeSlot{Label: "10:00"}, staffID, appointments) {
		t.Error("expected the booked staff's 10:00 cell occupied")
	}
	if IsOccupied(day, TimeSlot{Label: "10:00"}, otherStaff, appointments) {
		t.Error("expected a different staff's 10:00 cell free")
	}
	if IsOccupied(day, TimeSlot{Label: "10:15"}, staffID, appointments) {
		t.Error("expected the next slot free")
	}
	if IsOccupied(day.AddDate(0, 0, 1), TimeSlot{Label: "10:00"}, staffID, appointments) {
		t.Error("expected a different day free")
	}
}

func TestIsOccupied_StaffOnAnyService(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	first := uuid.New()
	second := uuid.New()

	appt := makeAppointment(day, "11:00", first)
	appt.Services = append(appt.Services, models.AppointmentService{
		ServiceID: uuid.New(), StaffID: second, Price: 300,
	})

	for _, staffID := range []uuid.UUID{first, second} {
		if !IsOccupied(day, TimeSlot{Label: "11:00"}, staffID, []models.Appointment{appt}) {
			t.Errorf("expected staff %s occupied via its service row", staffID)
		}
	}
}

func TestAppointmentsAt_AllowsOverlaps(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	staffID := uuid.New()

	// Double-booking the same staff and slot is legal; the grid reports it
	appointments := []models.Appointment{
		makeAppointment(day, "10:00", staffID),
		makeAppointment(day, "10:00", staffID),
	}

	matched := AppointmentsAt(day, TimeSlot{Label: "10:00"}, staffID, appointments)
	if len(matched) != 2 {
		t.Fatalf("expected both overlapping appointments reported, got %d", len(matched))
	}
	if matched[0].ID != appointments[0].ID {
		t.Error("expected matches in input order")
	}
}

func TestSeedForCell_EmptyCell(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	staffID := uuid.New()
	branchID := uuid.New()

	seed := SeedForCell(day, TimeSlot{Label: "09:30"}, staffID, branchID, nil, Catalog{})

	if seed.AppointmentID != nil {
		t.Error("expected a blank booking for an empty cell")
	}
	if seed.BranchID != branchID {
		t.Error("expected the clicked branch pre-seeded")
	}
	if seed.AppointmentTime != "09:30" {
		t.Errorf("expected time 09:30, got %q", seed.AppointmentTime)
	}
	if len(seed.Services) != 1 || seed.Services[0].StaffID != staffID {
		t.Errorf("expected one blank selection for the clicked staff, got %+v", seed.Services)
	}
	if seed.Status != "booked" {
		t.Errorf("expected default status booked, got %q", seed.Status)
	}
}

func TestSeedForCell_OccupiedCellOpensFirstMatch(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	staffID := uuid.New()

	first := makeAppointment(day, "10:00", staffID)
	first.Notes = "first booking"
	second := makeAppointment(day, "10:00", staffID)

	variantID := uuid.New()
	first.Products = []models.AppointmentProduct{
		{ProductID: uuid.New(), VariantID: &variantID, Quantity: 2, Price: 500},
	}

	seed := SeedForCell(day, TimeSlot{Label: "10:00"}, staffID, first.BranchID,
		[]models.Appointment{first, second}, Catalog{})

	if seed.AppointmentID == nil || *seed.AppointmentID != first.ID {
		t.Fatal("expected the first matching appointment opened for edit")
	}
	if seed.Notes != "first booking" {
		t.Errorf("expected stored notes, got %q", seed.Notes)
	}
	if len(seed.Services) != 1 {
		t.Fatalf("expected one selection per stored service, got %d", len(seed.Services))
	}
	if seed.Services[0].ServiceID != first.Services[0].ServiceID {
		t.Error("expected the stored service id resolved")
	}
	if seed.Services[0].Price != 500 {
		t.Errorf("expected the stored price snapshot, got %f", seed.Services[0].Price)
	}
	if len(seed.Products) != 1 || seed.Products[0].Quantity != 2 || *seed.Products[0].VariantID != variantID {
		t.Errorf("expected the stored product line carried over, got %+v", seed.Products)
	}
}

func TestSeedForCell_ResolvesPopulatedAndBareRefs(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	staffID := uuid.New()

	service := models.Service{ID: uuid.New(), Name: "Haircut", RegularPrice: 500}
	staff := models.Staff{ID: staffID, FullName: "Asha"}
	catalog := NewCatalog([]models.Service{service}, nil)

	appt := models.Appointment{
		ID:              uuid.New(),
		BranchID:        uuid.New(),
		CustomerID:      uuid.New(),
		AppointmentDate: day,
		AppointmentTime: "10:00",
		Services: []models.AppointmentService{
			// Populated reference with a zero id field; the populated
			// record must win
			{Service: &service, Staff: &staff, StaffID: staffID, Price: 500},
			// Bare id only, resolved through the catalog
			{ServiceID: service.ID, StaffID: staffID, Price: 500},
		},
	}

	seed := SeedForCell(day, TimeSlot{Label: "10:00"}, staffID, appt.BranchID,
		[]models.Appointment{appt}, catalog)

	if len(seed.Services) != 2 {
		t.Fatalf("expected 2 selections, got %d", len(seed.Services))
	}
	for i, sel := range seed.Services {
		if sel.ServiceID != service.ID {
			t.Errorf("selection %d: expected service resolved to %s, got %s", i, service.ID, sel.ServiceID)
		}
		if sel.StaffID != staffID {
			t.Errorf("selection %d: expected staff %s, got %s", i, staffID, sel.StaffID)
		}
	}
}
