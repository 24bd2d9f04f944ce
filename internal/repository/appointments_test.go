package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meddent-dev/booking/backend/internal/domain"
)

func TestBookingDatesAreSortedAndDistinct(t *testing.T) {
	appts := []*domain.Appointment{
		{Date: "2026-09-03"},
		{Date: "2026-09-01"},
		{Date: "2026-09-03"},
		{Date: "2026-09-02"},
	}

	// every booking must acquire its day locks in the same global order, or
	// two multi-day bookings can deadlock each other
	assert.Equal(t, []string{"2026-09-01", "2026-09-02", "2026-09-03"}, bookingDates(appts))
}

func TestBookingDatesSingleDay(t *testing.T) {
	appts := []*domain.Appointment{
		{Date: "2026-09-01"},
		{Date: "2026-09-01"},
	}
	assert.Equal(t, []string{"2026-09-01"}, bookingDates(appts))
}

func TestAdvisoryLockKeyIsStablePerDay(t *testing.T) {
	// two bookings for the same day must contend for the same lock,
	// regardless of clinic, room or doctor
	assert.Equal(t, advisoryLockKey("2026-09-01"), advisoryLockKey("2026-09-01"))

	assert.NotEqual(t, advisoryLockKey("2026-09-01"), advisoryLockKey("2026-09-02"))
	assert.NotEqual(t, advisoryLockKey("2026-09-01"), advisoryLockKey("2027-09-01"))
}
