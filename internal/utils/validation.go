package utils

import (
	"fmt"
	"time"

	"github.com/meddent-dev/booking/backend/internal/domain"
)

// ValidateDate checks the naive-local calendar day format used everywhere in
// the system.
func ValidateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	return nil
}

func ValidateClockTime(hhmm string) error {
	if _, err := time.Parse("15:04", hhmm); err != nil {
		return fmt.Errorf("invalid time %q, expected HH:MM", hhmm)
	}
	return nil
}

// ValidateProposedAppointment checks the fields of a booking proposal that
// the validator tags cannot express: date and time formats, and that the
// appointment stays within its calendar day.
func ValidateProposedAppointment(appt *domain.Appointment) error {
	if err := ValidateDate(appt.Date); err != nil {
		return err
	}
	if err := ValidateClockTime(appt.StartTime); err != nil {
		return err
	}
	if appt.DurationMins <= 0 {
		return fmt.Errorf("duration must be positive, got %d", appt.DurationMins)
	}

	start, _ := time.Parse("15:04", appt.StartTime)
	startMin := start.Hour()*60 + start.Minute()
	if startMin+appt.DurationMins > 24*60 {
		return fmt.Errorf("appointment starting %s with duration %d crosses midnight", appt.StartTime, appt.DurationMins)
	}

	if len(appt.DoctorIDs) == 0 {
		return fmt.Errorf("appointment needs at least one doctor")
	}
	primaryListed := false
	for _, id := range appt.DoctorIDs {
		if id == appt.PrimaryDoctorID {
			primaryListed = true
			break
		}
	}
	if !primaryListed {
		return fmt.Errorf("primary doctor %s is not in the doctor list", appt.PrimaryDoctorID)
	}

	return nil
}
