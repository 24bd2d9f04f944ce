package engine

import (
	"errors"

	"github.com/meddent-dev/booking/backend/internal/domain"
)

var (
	// ErrNoQualifiedResource means no doctor/room combination in the whole
	// system can satisfy the procedure's requirements. This is a reference
	// data problem, distinct from "everything is booked".
	ErrNoQualifiedResource = errors.New("no qualified doctor/room combination for procedure")

	// ErrDoubleBooking is returned at confirmation time when a concurrently
	// created appointment invalidated a previously proposed slot.
	ErrDoubleBooking = errors.New("slot no longer available")
)

// Parameters are the engine's policy knobs, normally loaded from config.
type Parameters struct {
	DaysAhead              int // search horizon in calendar days
	SlotGranularityMinutes int // quantization grid for candidate start times
	MaxResults             int // cap on returned slots, 0 = unbounded within the horizon
}

// SearchRequest describes one slot search. DaysAhead and MaxResults override
// the engine parameters when positive.
type SearchRequest struct {
	ProcedureID       string
	PreferredClinicID string
	DaysAhead         int
	MaxResults        int
}

// SearchResult carries the surviving slots in emission order plus whether the
// preferred clinic restriction was honored. When a preferred clinic yields no
// admissible resources the resolver falls back to all clinics and reports the
// fallback here instead of failing.
type SearchResult struct {
	Slots                  []domain.AvailableSlot `json:"slots"`
	PreferredClinicHonored bool                   `json:"preferred_clinic_honored"`
}

// candidate is one admissible (doctor team, clinic, room) triple. The team
// holds the primary doctor first, then the secondary specialist if the
// procedure needs one.
type candidate struct {
	doctors []*domain.Doctor
	clinic  *domain.Clinic
	room    *domain.Room
}

// candidateSlot is an unfiltered slot emitted by the window generator:
// a candidate pinned to a date and a start minute-of-day.
type candidateSlot struct {
	cand     *candidate
	date     string
	startMin int
}
