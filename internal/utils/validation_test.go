package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meddent-dev/booking/backend/internal/domain"
)

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("2025-03-03"))
	assert.Error(t, ValidateDate("03/03/2025"))
	assert.Error(t, ValidateDate("2025-13-01"))
	assert.Error(t, ValidateDate(""))
}

func TestValidateClockTime(t *testing.T) {
	assert.NoError(t, ValidateClockTime("09:00"))
	assert.NoError(t, ValidateClockTime("23:45"))
	assert.Error(t, ValidateClockTime("9am"))
	assert.Error(t, ValidateClockTime("24:00"))
}

func validProposal() *domain.Appointment {
	return &domain.Appointment{
		Date:            "2025-03-03",
		StartTime:       "09:00",
		DurationMins:    30,
		DoctorIDs:       []string{"dr_chen"},
		PrimaryDoctorID: "dr_chen",
	}
}

func TestValidateProposedAppointment(t *testing.T) {
	assert.NoError(t, ValidateProposedAppointment(validProposal()))

	appt := validProposal()
	appt.DurationMins = 0
	assert.Error(t, ValidateProposedAppointment(appt))

	appt = validProposal()
	appt.StartTime = "23:45"
	appt.DurationMins = 30
	assert.Error(t, ValidateProposedAppointment(appt), "must not cross midnight")

	appt = validProposal()
	appt.DoctorIDs = nil
	assert.Error(t, ValidateProposedAppointment(appt))

	appt = validProposal()
	appt.PrimaryDoctorID = "dr_patel"
	assert.Error(t, ValidateProposedAppointment(appt), "primary doctor must be in the doctor list")
}
