package refdata

import (
	"github.com/meddent-dev/booking/backend/internal/domain"
)

// Catalog is the read-only reference data the rest of the system works
// against: clinics and their rooms, the doctor roster with recurring
// availability, the procedure list and the specialization registry. It is
// materialized once at startup and never mutated, so it is safe to share
// across requests without locking.
type Catalog struct {
	clinics         []domain.Clinic
	specializations []domain.Specialization
	doctors         []domain.Doctor
	procedures      []domain.Procedure
}

// Default returns the built-in MedDent catalog.
func Default() *Catalog {
	return &Catalog{
		clinics:         clinics,
		specializations: specializations,
		doctors:         doctors,
		procedures:      procedures,
	}
}

// NewCatalog builds a catalog from explicit reference data. Tests use this to
// set up small worlds.
func NewCatalog(clinics []domain.Clinic, specializations []domain.Specialization, doctors []domain.Doctor, procedures []domain.Procedure) *Catalog {
	return &Catalog{
		clinics:         clinics,
		specializations: specializations,
		doctors:         doctors,
		procedures:      procedures,
	}
}

func (c *Catalog) Clinics() []domain.Clinic                 { return c.clinics }
func (c *Catalog) Specializations() []domain.Specialization { return c.specializations }
func (c *Catalog) Doctors() []domain.Doctor                 { return c.doctors }
func (c *Catalog) Procedures() []domain.Procedure           { return c.procedures }

func (c *Catalog) ClinicByID(id string) *domain.Clinic {
	for i := range c.clinics {
		if c.clinics[i].ID == id {
			return &c.clinics[i]
		}
	}
	return nil
}

func (c *Catalog) DoctorByID(id string) *domain.Doctor {
	for i := range c.doctors {
		if c.doctors[i].ID == id {
			return &c.doctors[i]
		}
	}
	return nil
}

func (c *Catalog) ProcedureByID(id string) *domain.Procedure {
	for i := range c.procedures {
		if c.procedures[i].ID == id {
			return &c.procedures[i]
		}
	}
	return nil
}

func (c *Catalog) SpecializationByID(id string) *domain.Specialization {
	for i := range c.specializations {
		if c.specializations[i].ID == id {
			return &c.specializations[i]
		}
	}
	return nil
}

// FindRoom returns the first room of the clinic whose capability set covers
// every capability the procedure requires, or nil when the clinic cannot host
// the procedure at all.
func (c *Catalog) FindRoom(clinicID string, proc *domain.Procedure) *domain.Room {
	clinic := c.ClinicByID(clinicID)
	if clinic == nil || proc == nil {
		return nil
	}
	for i := range clinic.Rooms {
		if roomCovers(&clinic.Rooms[i], proc.RequiredCapabilities) {
			return &clinic.Rooms[i]
		}
	}
	return nil
}

// DoctorsWithSpecialization returns the doctors holding the given
// specialization, in roster order. Roster order is load-bearing: the engine's
// candidate ordering (and therefore its output ordering) derives from it.
func (c *Catalog) DoctorsWithSpecialization(spec string) []*domain.Doctor {
	var matched []*domain.Doctor
	for i := range c.doctors {
		if c.doctors[i].HasSpecialization(spec) {
			matched = append(matched, &c.doctors[i])
		}
	}
	return matched
}

func roomCovers(room *domain.Room, required []string) bool {
	for _, want := range required {
		found := false
		for _, have := range room.Capabilities {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
