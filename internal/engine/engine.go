package engine

import (
	"fmt"
	"time"

	"github.com/meddent-dev/booking/backend/internal/domain"
	"github.com/meddent-dev/booking/backend/internal/refdata"
)

// Engine computes the future time slots at which a procedure can legally be
// scheduled: doctors must be inside a matching recurring availability window,
// the room must hold the required capabilities and nothing may collide with a
// confirmed or completed appointment.
//
// The engine is a pure function over its inputs. The reference time and the
// appointment snapshot are passed in explicitly, so two calls with the same
// inputs return identical, identically ordered results, and concurrent calls
// need no locking.
type Engine struct {
	params  Parameters
	catalog *refdata.Catalog
}

func New(params Parameters, catalog *refdata.Catalog) *Engine {
	return &Engine{
		params:  params,
		catalog: catalog,
	}
}

// FindAvailableSlots runs the three stages in order: resolve admissible
// (doctor team, clinic, room) candidates, generate quantized candidate slots
// over the horizon starting at from, then drop everything that collides with
// the snapshot. Slots come back ordered by (date, start time, candidate
// order), earliest first.
//
// An exhausted horizon is a normal outcome: the result simply carries no
// slots. ErrNoQualifiedResource is returned only when the procedure can never
// be scheduled with the current reference data.
func (e *Engine) FindAvailableSlots(req SearchRequest, from time.Time, snapshot []*domain.Appointment) (*SearchResult, error) {
	proc := e.catalog.ProcedureByID(req.ProcedureID)
	if proc == nil {
		return nil, fmt.Errorf("unknown procedure %q: %w", req.ProcedureID, ErrNoQualifiedResource)
	}

	candidates, honored, err := e.resolve(proc, req.PreferredClinicID)
	if err != nil {
		return nil, err
	}

	daysAhead := req.DaysAhead
	if daysAhead <= 0 {
		daysAhead = e.params.DaysAhead
	}
	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = e.params.MaxResults
	}

	index := newConflictIndex(snapshot)

	slots := make([]domain.AvailableSlot, 0)
	for cs := range e.generate(candidates, proc, from, daysAhead) {
		if index.blocks(cs, proc.Duration) {
			continue
		}

		doctorIDs := make([]string, len(cs.cand.doctors))
		for i, d := range cs.cand.doctors {
			doctorIDs[i] = d.ID
		}

		slots = append(slots, domain.AvailableSlot{
			ProcedureID:     proc.ID,
			ClinicID:        cs.cand.clinic.ID,
			RoomID:          cs.cand.room.ID,
			Date:            cs.date,
			StartTime:       minutesToTime(cs.startMin),
			DurationMins:    proc.Duration,
			DoctorIDs:       doctorIDs,
			PrimaryDoctorID: doctorIDs[0],
		})

		if maxResults > 0 && len(slots) >= maxResults {
			break
		}
	}

	return &SearchResult{
		Slots:                  slots,
		PreferredClinicHonored: honored,
	}, nil
}

// timeToMinutes converts "HH:MM" to minutes since midnight.
func timeToMinutes(hhmm string) (int, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", hhmm, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func minutesToTime(mins int) string {
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}
