package engine

import (
	"github.com/meddent-dev/booking/backend/internal/domain"
)

// conflictIndex groups the blocking appointments of a snapshot by date.
// Cancelled appointments never make it into the index, so they can never
// shadow a slot.
type conflictIndex map[string][]*bookedInterval

type bookedInterval struct {
	clinicID  string
	roomID    string
	doctorIDs []string
	startMin  int
	endMin    int
}

func newConflictIndex(snapshot []*domain.Appointment) conflictIndex {
	index := conflictIndex{}
	for _, appt := range snapshot {
		if !appt.Status.Blocks() {
			continue
		}
		startMin, err := timeToMinutes(appt.StartTime)
		if err != nil {
			// a malformed record cannot be placed on the timeline;
			// skipping it beats blocking every slot of the day
			continue
		}
		index[appt.Date] = append(index[appt.Date], &bookedInterval{
			clinicID:  appt.ClinicID,
			roomID:    appt.RoomID,
			doctorIDs: appt.DoctorIDs,
			startMin:  startMin,
			endMin:    startMin + appt.DurationMins,
		})
	}
	return index
}

// blocks reports whether any booked interval on the slot's date collides with
// it. A collision needs temporal overlap plus a shared resource: a doctor from
// the slot's team (wherever they are booked), or the slot's room. Room ids
// repeat across clinics, so the room comparison is scoped to the clinic.
func (ci conflictIndex) blocks(cs candidateSlot, duration int) bool {
	endMin := cs.startMin + duration

	for _, booked := range ci[cs.date] {
		if !overlaps(cs.startMin, endMin, booked.startMin, booked.endMin) {
			continue
		}
		if booked.clinicID == cs.cand.clinic.ID && booked.roomID == cs.cand.room.ID {
			return true
		}
		for _, doc := range cs.cand.doctors {
			for _, bookedDoc := range booked.doctorIDs {
				if doc.ID == bookedDoc {
					return true
				}
			}
		}
	}

	return false
}

// overlaps implements the half-open interval test: touching boundaries do not
// collide, so a 09:00–09:30 appointment leaves 09:30 free.
func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// HasConflict is the commit-time recheck used by the booking path: it applies
// the same collision rule as the slot search to a proposed appointment against
// the latest snapshot. The proposal itself must already be validated; the
// error reports a malformed start time.
func HasConflict(proposed *domain.Appointment, snapshot []*domain.Appointment) (bool, error) {
	startMin, err := timeToMinutes(proposed.StartTime)
	if err != nil {
		return false, err
	}
	endMin := startMin + proposed.DurationMins

	for _, appt := range snapshot {
		if appt.ID == proposed.ID || appt.Date != proposed.Date || !appt.Status.Blocks() {
			continue
		}
		bookedStart, err := timeToMinutes(appt.StartTime)
		if err != nil {
			continue
		}
		if !overlaps(startMin, endMin, bookedStart, bookedStart+appt.DurationMins) {
			continue
		}
		if appt.ClinicID == proposed.ClinicID && appt.RoomID == proposed.RoomID {
			return true, nil
		}
		for _, doc := range proposed.DoctorIDs {
			for _, bookedDoc := range appt.DoctorIDs {
				if doc == bookedDoc {
					return true, nil
				}
			}
		}
	}

	return false, nil
}
