package engine

import (
	"github.com/meddent-dev/booking/backend/internal/domain"
	"github.com/meddent-dev/booking/backend/internal/refdata"
)

// Specialization held by the secondary doctor when a procedure requires an
// anesthetist alongside the primary specialist.
const anesthesiologySpec = "anesthesiology"

// resourceRequirement abstracts over the two staffing shapes a procedure can
// demand: one doctor covering every required specialization, or a primary
// plus a dedicated anesthetist. The resolver picks the variant once, instead
// of branching on requires_anesthetist throughout the pipeline.
type resourceRequirement interface {
	// teams returns every admissible doctor team in roster order,
	// primary doctor first.
	teams(catalog *refdata.Catalog) [][]*domain.Doctor
}

// soloSpecialist: a single doctor must hold all required specializations.
type soloSpecialist struct {
	specs []string
}

func (r soloSpecialist) teams(catalog *refdata.Catalog) [][]*domain.Doctor {
	var teams [][]*domain.Doctor
	roster := catalog.Doctors()
	for i := range roster {
		if coversAll(&roster[i], r.specs) {
			teams = append(teams, []*domain.Doctor{&roster[i]})
		}
	}
	return teams
}

// primaryPlusAnesthetist: the primary doctor covers every required
// specialization except anesthesiology, which a second doctor supplies.
type primaryPlusAnesthetist struct {
	primarySpecs []string
}

func (r primaryPlusAnesthetist) teams(catalog *refdata.Catalog) [][]*domain.Doctor {
	var teams [][]*domain.Doctor
	roster := catalog.Doctors()
	for i := range roster {
		p := &roster[i]
		if !coversAll(p, r.primarySpecs) {
			continue
		}
		for _, anesthetist := range catalog.DoctorsWithSpecialization(anesthesiologySpec) {
			if anesthetist.ID == p.ID {
				continue
			}
			teams = append(teams, []*domain.Doctor{p, anesthetist})
		}
	}
	return teams
}

func requirementFor(proc *domain.Procedure) resourceRequirement {
	if !proc.RequiresAnesthetist {
		return soloSpecialist{specs: proc.RequiredSpecs}
	}

	primarySpecs := make([]string, 0, len(proc.RequiredSpecs))
	for _, spec := range proc.RequiredSpecs {
		if spec != anesthesiologySpec {
			primarySpecs = append(primarySpecs, spec)
		}
	}
	return primaryPlusAnesthetist{primarySpecs: primarySpecs}
}

// resolve finds every admissible (doctor team, clinic, room) triple for the
// procedure. With a preferred clinic the search is restricted to it first; a
// preferred clinic without admissible resources falls back to all clinics,
// reported through the honored flag rather than treated as an error.
// ErrNoQualifiedResource means the full search came up structurally empty.
func (e *Engine) resolve(proc *domain.Procedure, preferredClinicID string) (candidates []candidate, honored bool, err error) {
	teams := requirementFor(proc).teams(e.catalog)

	candidates = e.candidatesIn(teams, proc, preferredClinicID)
	honored = true

	if preferredClinicID != "" && len(candidates) == 0 {
		candidates = e.candidatesIn(teams, proc, "")
		honored = false
	}

	if len(candidates) == 0 {
		return nil, false, ErrNoQualifiedResource
	}

	return candidates, honored, nil
}

// candidatesIn pairs doctor teams with rooms, clinic by clinic. Catalog order
// for clinics and roster order for teams keep the candidate list stable, which
// the emission ordering downstream depends on.
func (e *Engine) candidatesIn(teams [][]*domain.Doctor, proc *domain.Procedure, clinicID string) []candidate {
	var candidates []candidate
	for i := range e.catalog.Clinics() {
		clinic := &e.catalog.Clinics()[i]
		if clinicID != "" && clinic.ID != clinicID {
			continue
		}

		room := e.catalog.FindRoom(clinic.ID, proc)
		if room == nil {
			continue
		}

		for _, team := range teams {
			candidates = append(candidates, candidate{
				doctors: team,
				clinic:  clinic,
				room:    room,
			})
		}
	}
	return candidates
}

func coversAll(d *domain.Doctor, specs []string) bool {
	for _, spec := range specs {
		if !d.HasSpecialization(spec) {
			return false
		}
	}
	return true
}
