package booking

import "testing"

func TestTimeSlotsSkipLunchHour(t *testing.T) {
	if len(TimeSlots) != 9 {
		t.Fatalf("expected 9 slots, got %d", len(TimeSlots))
	}
	if IsValidTimeSlot("12:00") {
		t.Fatalf("12:00 must never be offered")
	}
	for _, slot := range []string{"08:00", "11:00", "13:00", "17:00"} {
		if !IsValidTimeSlot(slot) {
			t.Fatalf("expected %s to be valid", slot)
		}
	}
}

func TestIsValidTimeSlotRejectsOffGrid(t *testing.T) {
	for _, slot := range []string{"08:30", "18:00", "8:00", ""} {
		if IsValidTimeSlot(slot) {
			t.Fatalf("expected %q to be rejected", slot)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if !IsValidDate("2026-09-15") {
		t.Fatalf("expected valid date")
	}
	for _, date := range []string{"15/09/2026", "2026-13-01", "amanhã", ""} {
		if IsValidDate(date) {
			t.Fatalf("expected %q to be rejected", date)
		}
	}
}
