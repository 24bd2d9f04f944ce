package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meddent-dev/booking/backend/internal/domain"
	"github.com/meddent-dev/booking/backend/internal/refdata"
)

// monday is a fixed reference date so every search in this file is
// deterministic: 2025-03-03 is a Monday.
var monday = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

func testParams() Parameters {
	return Parameters{
		DaysAhead:              14,
		SlotGranularityMinutes: 15,
		MaxResults:             0,
	}
}

// orthoWorld is a minimal catalog: one clinic with one chair-equipped room,
// one orthodontist working Mondays and Wednesdays 09:00-12:00.
func orthoWorld() *refdata.Catalog {
	clinics := []domain.Clinic{
		{
			ID: "clinic_a", Name: "Clinic A", ShortName: "A",
			Rooms: []domain.Room{
				{ID: "R1", Name: "Room 1", Capabilities: []string{"chair"}},
			},
		},
	}
	specializations := []domain.Specialization{
		{ID: "ortho", Name: "Orthodontics"},
	}
	doctors := []domain.Doctor{
		{
			ID: "d1", Name: "Dr. One",
			Specializations: []string{"ortho"},
			Availability: []domain.Availability{
				{ClinicID: "clinic_a", Days: []int{1, 3}, StartHour: 9, EndHour: 12},
			},
		},
	}
	procedures := []domain.Procedure{
		{
			ID: "ortho_adjust", Name: "Orthodontic Adjustment", Duration: 30,
			RequiredSpecs:        []string{"ortho"},
			RequiredCapabilities: []string{"chair"},
		},
	}
	return refdata.NewCatalog(clinics, specializations, doctors, procedures)
}

func TestFindAvailableSlots_FirstSlotIsEarliestInWindow(t *testing.T) {
	e := New(testParams(), orthoWorld())

	result, err := e.FindAvailableSlots(SearchRequest{ProcedureID: "ortho_adjust"}, monday, nil)
	require.NoError(t, err)
	require.NotEmpty(t, result.Slots)

	first := result.Slots[0]
	assert.Equal(t, "2025-03-03", first.Date)
	assert.Equal(t, "09:00", first.StartTime)
	assert.Equal(t, "R1", first.RoomID)
	assert.Equal(t, "d1", first.PrimaryDoctorID)
	assert.Equal(t, []string{"d1"}, first.DoctorIDs)
	assert.Equal(t, 30, first.DurationMins)
}

func TestFindAvailableSlots_SlotsStayInsideAvailabilityWindows(t *testing.T) {
	e := New(testParams(), orthoWorld())

	result, err := e.FindAvailableSlots(SearchRequest{ProcedureID: "ortho_adjust"}, monday, nil)
	require.NoError(t, err)

	for _, slot := range result.Slots {
		day, err := time.Parse("2006-01-02", slot.Date)
		require.NoError(t, err)
		assert.Contains(t, []time.Weekday{time.Monday, time.Wednesday}, day.Weekday(), "slot %v outside working days", slot)

		startMin, err := timeToMinutes(slot.StartTime)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, startMin, 9*60)
		assert.LessOrEqual(t, startMin+slot.DurationMins, 12*60)
		assert.Zero(t, startMin%15, "slot %v is off the quantization grid", slot)
	}
}

func TestFindAvailableSlots_ConflictPushesFirstSlotBack(t *testing.T) {
	e := New(testParams(), orthoWorld())

	snapshot := []*domain.Appointment{
		{
			ID: "a1", ProcedureID: "ortho_adjust", ClinicID: "clinic_a", RoomID: "R1",
			Date: "2025-03-03", StartTime: "09:00", DurationMins: 30,
			DoctorIDs: []string{"d1"}, Status: domain.StatusConfirmed,
		},
	}

	result, err := e.FindAvailableSlots(SearchRequest{ProcedureID: "ortho_adjust"}, monday, snapshot)
	require.NoError(t, err)
	require.NotEmpty(t, result.Slots)

	// the occupied half hour is gone, the adjacent 09:30 slot is the new first
	assert.Equal(t, "2025-03-03", result.Slots[0].Date)
	assert.Equal(t, "09:30", result.Slots[0].StartTime)
	for _, slot := range result.Slots {
		if slot.Date == "2025-03-03" {
			assert.NotEqual(t, "09:00", slot.StartTime)
		}
	}
}

func TestFindAvailableSlots_CompletedBlocksCancelledDoesNot(t *testing.T) {
	e := New(testParams(), orthoWorld())

	appt := domain.Appointment{
		ID: "a1", ProcedureID: "ortho_adjust", ClinicID: "clinic_a", RoomID: "R1",
		Date: "2025-03-03", StartTime: "09:00", DurationMins: 30,
		DoctorIDs: []string{"d1"}, Status: domain.StatusCompleted,
	}

	result, err := e.FindAvailableSlots(SearchRequest{ProcedureID: "ortho_adjust"}, monday, []*domain.Appointment{&appt})
	require.NoError(t, err)
	assert.Equal(t, "09:30", result.Slots[0].StartTime)

	// cancelling the appointment frees the interval again
	appt.Status = domain.StatusCancelled
	result, err = e.FindAvailableSlots(SearchRequest{ProcedureID: "ortho_adjust"}, monday, []*domain.Appointment{&appt})
	require.NoError(t, err)
	assert.Equal(t, "09:00", result.Slots[0].StartTime)
}

func TestFindAvailableSlots_NoQualifiedResource(t *testing.T) {
	catalog := orthoWorld()
	e := New(testParams(), catalog)

	_, err := e.FindAvailableSlots(SearchRequest{ProcedureID: "missing"}, monday, nil)
	assert.ErrorIs(t, err, ErrNoQualifiedResource)

	// a known procedure no doctor is qualified for fails the same way
	world := refdata.NewCatalog(catalog.Clinics(), catalog.Specializations(), catalog.Doctors(), []domain.Procedure{
		{
			ID: "implant", Name: "Implant", Duration: 60,
			RequiredSpecs:        []string{"implantology"},
			RequiredCapabilities: []string{"chair"},
		},
	})
	_, err = New(testParams(), world).FindAvailableSlots(SearchRequest{ProcedureID: "implant"}, monday, nil)
	assert.ErrorIs(t, err, ErrNoQualifiedResource)
}

func TestFindAvailableSlots_EmptyResultIsNotAnError(t *testing.T) {
	e := New(testParams(), orthoWorld())

	// fill every Monday/Wednesday morning of the horizon
	var snapshot []*domain.Appointment
	for offset := 0; offset < 14; offset++ {
		day := monday.AddDate(0, 0, offset)
		if day.Weekday() != time.Monday && day.Weekday() != time.Wednesday {
			continue
		}
		snapshot = append(snapshot, &domain.Appointment{
			ID: day.Format("2006-01-02"), ClinicID: "clinic_a", RoomID: "R1",
			Date: day.Format("2006-01-02"), StartTime: "09:00", DurationMins: 180,
			DoctorIDs: []string{"d1"}, Status: domain.StatusConfirmed,
		})
	}

	result, err := e.FindAvailableSlots(SearchRequest{ProcedureID: "ortho_adjust"}, monday, snapshot)
	require.NoError(t, err)
	assert.Empty(t, result.Slots)
}

func TestFindAvailableSlots_DeterministicOrdering(t *testing.T) {
	e := New(testParams(), orthoWorld())

	first, err := e.FindAvailableSlots(SearchRequest{ProcedureID: "ortho_adjust"}, monday, nil)
	require.NoError(t, err)
	second, err := e.FindAvailableSlots(SearchRequest{ProcedureID: "ortho_adjust"}, monday, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same snapshot must give identical, identically ordered results")

	for i := 1; i < len(first.Slots); i++ {
		prev, cur := first.Slots[i-1], first.Slots[i]
		if prev.Date == cur.Date {
			prevMin, _ := timeToMinutes(prev.StartTime)
			curMin, _ := timeToMinutes(cur.StartTime)
			assert.LessOrEqual(t, prevMin, curMin)
		} else {
			assert.Less(t, prev.Date, cur.Date)
		}
	}
}

func TestFindAvailableSlots_MaxResultsShortCircuits(t *testing.T) {
	e := New(testParams(), orthoWorld())

	result, err := e.FindAvailableSlots(SearchRequest{ProcedureID: "ortho_adjust", MaxResults: 3}, monday, nil)
	require.NoError(t, err)
	assert.Len(t, result.Slots, 3)
}

func TestFindAvailableSlots_DurationLongerThanWindow(t *testing.T) {
	catalog := orthoWorld()
	world := refdata.NewCatalog(catalog.Clinics(), catalog.Specializations(), catalog.Doctors(), []domain.Procedure{
		{
			ID: "long_surgery", Name: "Long Surgery", Duration: 240,
			RequiredSpecs:        []string{"ortho"},
			RequiredCapabilities: []string{"chair"},
		},
	})
	e := New(testParams(), world)

	result, err := e.FindAvailableSlots(SearchRequest{ProcedureID: "long_surgery"}, monday, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Slots, "a 4h procedure cannot fit a 3h window")
}

func TestFindAvailableSlots_PreferredClinicFallback(t *testing.T) {
	e := New(testParams(), refdata.Default())

	// rct_treatment needs the Endo Suite, which only Downtown has; asking for
	// Westside falls back to the full search instead of failing
	result, err := e.FindAvailableSlots(SearchRequest{
		ProcedureID:       "rct_treatment",
		PreferredClinicID: "westside",
	}, monday, nil)
	require.NoError(t, err)
	assert.False(t, result.PreferredClinicHonored)
	require.NotEmpty(t, result.Slots)
	for _, slot := range result.Slots {
		assert.Equal(t, "downtown", slot.ClinicID)
		assert.Equal(t, "R2", slot.RoomID)
	}

	// an honorable preference stays restricted
	result, err = e.FindAvailableSlots(SearchRequest{
		ProcedureID:       "general_checkup",
		PreferredClinicID: "westside",
	}, monday, nil)
	require.NoError(t, err)
	assert.True(t, result.PreferredClinicHonored)
	for _, slot := range result.Slots {
		assert.Equal(t, "westside", slot.ClinicID)
	}
}

func TestFindAvailableSlots_AnesthetistPairing(t *testing.T) {
	e := New(testParams(), refdata.Default())

	result, err := e.FindAvailableSlots(SearchRequest{ProcedureID: "wisdom_extraction_iv"}, monday, nil)
	require.NoError(t, err)
	require.NotEmpty(t, result.Slots)

	// Dr. Okafor and Dr. Silva overlap Tuesdays and Thursdays 08:00-16:00 at
	// Downtown, the only clinic with an IV sedation room
	first := result.Slots[0]
	assert.Equal(t, "2025-03-04", first.Date) // the Tuesday after the reference Monday
	assert.Equal(t, "08:00", first.StartTime)
	assert.Equal(t, "downtown", first.ClinicID)
	assert.Equal(t, "R4", first.RoomID)
	assert.Equal(t, "dr_okafor", first.PrimaryDoctorID)
	assert.Equal(t, []string{"dr_okafor", "dr_silva"}, first.DoctorIDs)

	for _, slot := range result.Slots {
		assert.Equal(t, "downtown", slot.ClinicID)
		assert.Len(t, slot.DoctorIDs, 2)
	}
}

func TestFindAvailableSlots_SecondarySpecialistConflictsCount(t *testing.T) {
	e := New(testParams(), refdata.Default())

	// the anesthetist is tied up elsewhere on Tuesday morning; the surgical
	// team cannot start until she is free even though the surgeon is idle
	snapshot := []*domain.Appointment{
		{
			ID: "a1", ProcedureID: "wisdom_extraction_iv", ClinicID: "downtown", RoomID: "R4",
			Date: "2025-03-04", StartTime: "08:00", DurationMins: 90,
			DoctorIDs: []string{"dr_silva"}, Status: domain.StatusConfirmed,
		},
	}

	result, err := e.FindAvailableSlots(SearchRequest{ProcedureID: "wisdom_extraction_iv"}, monday, snapshot)
	require.NoError(t, err)
	require.NotEmpty(t, result.Slots)
	assert.Equal(t, "2025-03-04", result.Slots[0].Date)
	assert.Equal(t, "09:30", result.Slots[0].StartTime)
}

func TestHasConflict(t *testing.T) {
	existing := []*domain.Appointment{
		{
			ID: "a1", ClinicID: "downtown", RoomID: "R1",
			Date: "2025-03-03", StartTime: "09:00", DurationMins: 30,
			DoctorIDs: []string{"dr_chen"}, Status: domain.StatusConfirmed,
		},
	}

	proposed := &domain.Appointment{
		ID: "p1", ClinicID: "downtown", RoomID: "R1",
		Date: "2025-03-03", StartTime: "09:15", DurationMins: 30,
		DoctorIDs: []string{"dr_patel"},
	}

	// same room, overlapping interval
	conflict, err := HasConflict(proposed, existing)
	require.NoError(t, err)
	assert.True(t, conflict)

	// touching boundaries are free: 09:30 starts exactly when a1 ends
	proposed.StartTime = "09:30"
	conflict, err = HasConflict(proposed, existing)
	require.NoError(t, err)
	assert.False(t, conflict)

	// a shared doctor collides even in a different room and clinic
	proposed.StartTime = "09:15"
	proposed.ClinicID = "westside"
	proposed.RoomID = "R4"
	proposed.DoctorIDs = []string{"dr_chen"}
	conflict, err = HasConflict(proposed, existing)
	require.NoError(t, err)
	assert.True(t, conflict)

	// cancelled appointments are inert
	existing[0].Status = domain.StatusCancelled
	conflict, err = HasConflict(proposed, existing)
	require.NoError(t, err)
	assert.False(t, conflict)
}
