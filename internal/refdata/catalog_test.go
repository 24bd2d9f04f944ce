package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsConsistent(t *testing.T) {
	catalog := Default()

	// every procedure must reference registered specializations and at least
	// one clinic must have a room that can host it
	for _, proc := range catalog.Procedures() {
		for _, spec := range proc.RequiredSpecs {
			assert.NotNilf(t, catalog.SpecializationByID(spec), "procedure %s requires unknown specialization %s", proc.ID, spec)
		}

		hosted := false
		for _, clinic := range catalog.Clinics() {
			if catalog.FindRoom(clinic.ID, &proc) != nil {
				hosted = true
				break
			}
		}
		assert.Truef(t, hosted, "no clinic can host procedure %s", proc.ID)

		if proc.FollowUp != nil {
			assert.NotNilf(t, catalog.ProcedureByID(proc.FollowUp.ProcedureID), "procedure %s has unknown follow-up %s", proc.ID, proc.FollowUp.ProcedureID)
		}
	}

	// every doctor availability must point at a registered clinic
	for _, doctor := range catalog.Doctors() {
		for _, spec := range doctor.Specializations {
			assert.NotNilf(t, catalog.SpecializationByID(spec), "doctor %s holds unknown specialization %s", doctor.ID, spec)
		}
		for _, avail := range doctor.Availability {
			assert.NotNilf(t, catalog.ClinicByID(avail.ClinicID), "doctor %s is available at unknown clinic %s", doctor.ID, avail.ClinicID)
			assert.Less(t, avail.StartHour, avail.EndHour)
			for _, day := range avail.Days {
				assert.GreaterOrEqual(t, day, 0)
				assert.LessOrEqual(t, day, 6)
			}
		}
	}
}

func TestFindRoomRequiresFullCapabilitySet(t *testing.T) {
	catalog := Default()

	// IV sedation exists only in the downtown surgical suite
	ivProc := catalog.ProcedureByID("wisdom_extraction_iv")
	require.NotNil(t, ivProc)

	room := catalog.FindRoom("downtown", ivProc)
	require.NotNil(t, room)
	assert.Equal(t, "R4", room.ID)

	assert.Nil(t, catalog.FindRoom("westside", ivProc))
}

func TestFindRoomUnknownClinic(t *testing.T) {
	catalog := Default()
	proc := catalog.ProcedureByID("general_checkup")
	require.NotNil(t, proc)

	assert.Nil(t, catalog.FindRoom("nowhere", proc))
}

func TestDoctorsWithSpecializationKeepsRosterOrder(t *testing.T) {
	catalog := Default()

	generalists := catalog.DoctorsWithSpecialization("general")
	require.Len(t, generalists, 2)
	assert.Equal(t, "dr_chen", generalists[0].ID)
	assert.Equal(t, "dr_patel", generalists[1].ID)

	assert.Empty(t, catalog.DoctorsWithSpecialization("orthodontics"))
}

func TestLookupsReturnNilForUnknownIDs(t *testing.T) {
	catalog := Default()

	assert.Nil(t, catalog.ClinicByID("uptown"))
	assert.Nil(t, catalog.DoctorByID("dr_nobody"))
	assert.Nil(t, catalog.ProcedureByID("teleportation"))
	assert.Nil(t, catalog.SpecializationByID("astrology"))
}
