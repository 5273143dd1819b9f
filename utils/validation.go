// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// ValidateClock checks a 24-hour "HH:MM" label ("24:00" is allowed as an
// exclusive end bound)
func ValidateClock(label string) bool {
	regex := `^([01]\d|2[0-3]):[0-5]\d$|^24:00$`
	match, _ := regexp.MatchString(regex, label)
	return match
}
