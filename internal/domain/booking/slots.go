package booking

import "time"

// TimeSlots is the fixed grid offered to clients. 12:00 is the lunch hour
// and is never offered. Nothing prevents two bookings from landing on the
// same date and slot; the shop resolves overlaps by hand.
var TimeSlots = []string{
	"08:00", "09:00", "10:00", "11:00",
	"13:00", "14:00", "15:00", "16:00", "17:00",
}

func IsValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// IsValidDate accepts the YYYY-MM-DD strings the booking form submits.
func IsValidDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
