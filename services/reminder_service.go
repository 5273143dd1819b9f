// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"salonbook-backend/models"
	"salonbook-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// ReminderService sends a day-before SMS/WhatsApp reminder for every
// upcoming appointment
type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", func() {
		s.SendDailyReminders()
	})

	c.Start()
	log.Println("Appointment reminder scheduler started")
}

func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily appointment reminder processing...")

	tomorrow := utils.BeginningOfDay(time.Now().AddDate(0, 0, 1))

	var appointments []models.Appointment
	if err := s.db.Preload("Customer").
		Where("appointment_date >= ? AND appointment_date < ? AND status IN ?",
			tomorrow, tomorrow.AddDate(0, 0, 1), []string{"booked", "confirmed"}).
		Find(&appointments).Error; err != nil {
		log.Printf("Failed to fetch tomorrow's appointments: %v", err)
		return
	}

	for _, appt := range appointments {
		s.sendReminder(appt)
	}

	log.Println("Daily appointment reminder processing completed")
}

func (s *ReminderService) sendReminder(appt models.Appointment) {
	if appt.Customer == nil {
		log.Printf("Appointment %s: no customer loaded, skipping reminder", appt.ID)
		return
	}
	customer := *appt.Customer

	// Already reminded once for this appointment
	var count int64
	s.db.Model(&models.ReminderLog{}).
		Where("appointment_id = ? AND status = ?", appt.ID, "sent").
		Count(&count)
	if count > 0 {
		return
	}

	message := fmt.Sprintf("Hi %s, this is a reminder for your appointment tomorrow at %s. See you soon!",
		customer.Name, appt.AppointmentTime)

	// Determine channel (WhatsApp if available, else SMS)
	channel := "sms"
	var to string

	// Use WhatsApp if phone is in E.164 format and starts with '+'
	if strings.HasPrefix(customer.Phone, "+") {
		to = "whatsapp:" + customer.Phone
		channel = "whatsapp"
	} else {
		to = customer.Phone
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", customer.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", customer.Phone, *resp.Sid)
	} else {
		log.Printf("Reminder sent to %s, but no SID returned", customer.Phone)
	}

	reminderLog := models.ReminderLog{
		SalonID:       appt.SalonID,
		CustomerID:    customer.ID,
		AppointmentID: appt.ID,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		Channel:       channel,
		SentAt:        time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for customer %s: %v", customer.ID, err)
	}
}
