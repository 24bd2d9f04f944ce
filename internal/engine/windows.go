package engine

import (
	"iter"
	"time"

	"github.com/meddent-dev/booking/backend/internal/domain"
)

// window is the minute-of-day interval during which a whole doctor team is
// present at the candidate's clinic on a given day. For a two-doctor team it
// is the intersection of both availability entries.
type window struct {
	cand     *candidate
	startMin int
	endMin   int
}

// generate emits every unfiltered candidate slot over the horizon, lazily so
// the conflict filter can short-circuit once enough slots survive.
//
// Emission order is load-bearing: ascending date, then ascending start time,
// then candidate order. Downstream consumers rely on "earliest slot first",
// so for each day the grid minute is the outer loop and candidates the inner.
func (e *Engine) generate(candidates []candidate, proc *domain.Procedure, from time.Time, daysAhead int) iter.Seq[candidateSlot] {
	granularity := e.params.SlotGranularityMinutes

	return func(yield func(candidateSlot) bool) {
		for offset := 0; offset < daysAhead; offset++ {
			day := from.AddDate(0, 0, offset)
			date := day.Format("2006-01-02")
			weekday := int(day.Weekday())

			windows := dayWindows(candidates, weekday)
			if len(windows) == 0 {
				continue
			}

			earliest, latest := windows[0].startMin, windows[0].endMin
			for _, w := range windows[1:] {
				earliest = min(earliest, w.startMin)
				latest = max(latest, w.endMin)
			}

			for t := alignUp(earliest, granularity); t+proc.Duration <= latest; t += granularity {
				for i := range windows {
					w := &windows[i]
					if t < w.startMin || t+proc.Duration > w.endMin {
						continue
					}
					if !yield(candidateSlot{cand: w.cand, date: date, startMin: t}) {
						return
					}
				}
			}
		}
	}
}

// dayWindows computes, in candidate order, the working window of every
// candidate whose full team is at the clinic on the given weekday.
func dayWindows(candidates []candidate, weekday int) []window {
	var windows []window

	for i := range candidates {
		cand := &candidates[i]

		startMin, endMin := 0, 24*60
		present := true

		for _, doc := range cand.doctors {
			entry := availabilityAt(doc, cand.clinic.ID, weekday)
			if entry == nil {
				present = false
				break
			}
			startMin = max(startMin, entry.StartHour*60)
			endMin = min(endMin, entry.EndHour*60)
		}

		if present && startMin < endMin {
			windows = append(windows, window{cand: cand, startMin: startMin, endMin: endMin})
		}
	}

	return windows
}

// availabilityAt returns the doctor's recurring availability entry for the
// clinic and weekday, or nil when the doctor is elsewhere that day.
func availabilityAt(doc *domain.Doctor, clinicID string, weekday int) *domain.Availability {
	for i := range doc.Availability {
		entry := &doc.Availability[i]
		if entry.ClinicID != clinicID {
			continue
		}
		for _, day := range entry.Days {
			if day == weekday {
				return entry
			}
		}
	}
	return nil
}

// alignUp rounds m up to the next multiple of granularity.
func alignUp(m, granularity int) int {
	if rem := m % granularity; rem != 0 {
		return m + granularity - rem
	}
	return m
}
