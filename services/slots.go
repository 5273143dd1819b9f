// services/slots.go
package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"salonbook-backend/utils"
)

// SlotGranularityMinutes is the fixed width of one booking grid cell
const SlotGranularityMinutes = 15

// TimeSlot is one fixed-width cell label on the booking grid
type TimeSlot struct {
	Label string `json:"label"`
}

// GenerateSlots returns the half-open [start, end) grid at the given
// granularity. Labels are 24-hour "HH:MM"; a slot labelled exactly end is
// never included, so an end equal to start yields no slots. Starts that do
// not sit on a granularity boundary are advanced to the next boundary so
// every label stays on the :00/:15/:30/:45 grid.
func GenerateSlots(start, end string, granularityMinutes int) []TimeSlot {
	if granularityMinutes <= 0 {
		granularityMinutes = SlotGranularityMinutes
	}

	startMin, ok := parseClock(start)
	if !ok {
		return nil
	}
	endMin, ok := parseClock(end)
	if !ok {
		return nil
	}

	if rem := startMin % granularityMinutes; rem != 0 {
		startMin += granularityMinutes - rem
	}

	var slots []TimeSlot
	for m := startMin; m < endMin; m += granularityMinutes {
		slots = append(slots, TimeSlot{Label: formatClock(m)})
	}
	return slots
}

// FullDaySlots is the [00:00, 24:00) grid used when a staff member has no
// shift window configured
func FullDaySlots(granularityMinutes int) []TimeSlot {
	return GenerateSlots("00:00", "24:00", granularityMinutes)
}

// CurrentSlotFraction locates "now" within the slot grid as a fractional
// index: the integer part is the matching slot index, the fractional part
// is how far through that slot the clock has advanced. The second return
// is false when now falls on a different calendar day than gridDate or
// outside the grid entirely. Drives the now-indicator line; never mutates
// the slots.
func CurrentSlotFraction(now, gridDate time.Time, slots []TimeSlot, granularityMinutes int) (float64, bool) {
	if granularityMinutes <= 0 {
		granularityMinutes = SlotGranularityMinutes
	}
	if len(slots) == 0 {
		return 0, false
	}
	if !utils.SameDay(now, gridDate) {
		return 0, false
	}

	offset := float64(now.Hour()*60+now.Minute()) + float64(now.Second())/60

	for i, slot := range slots {
		slotStart, ok := parseClock(slot.Label)
		if !ok {
			continue
		}
		lo := float64(slotStart)
		hi := lo + float64(granularityMinutes)
		if offset >= lo && offset < hi {
			return float64(i) + (offset-lo)/float64(granularityMinutes), true
		}
	}
	return 0, false
}

// parseClock converts an "HH:MM" label to minutes past midnight; "24:00"
// is accepted as an exclusive end bound
func parseClock(label string) (int, bool) {
	parts := strings.SplitN(label, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	if hour < 0 || hour > 24 || minute < 0 || minute > 59 {
		return 0, false
	}
	if hour == 24 && minute != 0 {
		return 0, false
	}
	return hour*60 + minute, true
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
