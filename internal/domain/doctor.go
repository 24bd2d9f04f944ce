package domain

// Availability is a recurring weekly window during which a doctor works at a
// given clinic. Days use 0=Sunday .. 6=Saturday (matching time.Weekday);
// Sunday never appears in practice. Hours are naive clinic-local time,
// half-open: a doctor with StartHour 9 and EndHour 17 can start treatment at
// 09:00 and must be done by 17:00.
type Availability struct {
	ClinicID  string `json:"clinic_id"`
	Days      []int  `json:"days"`
	StartHour int    `json:"start_hour"`
	EndHour   int    `json:"end_hour"`
}

type Doctor struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Title           string         `json:"title"`
	Specializations []string       `json:"specializations"`
	Bio             string         `json:"bio"`
	Availability    []Availability `json:"availability"`
}

// HasSpecialization reports whether the doctor holds the given specialization.
func (d *Doctor) HasSpecialization(spec string) bool {
	for _, s := range d.Specializations {
		if s == spec {
			return true
		}
	}
	return false
}
