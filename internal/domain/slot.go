package domain

// AvailableSlot is the engine's output: a concrete (resources, date, time)
// combination at which the procedure could be booked. Slots are ephemeral
// proposals, never persisted; the booking path re-validates them against the
// latest appointment snapshot before confirming.
type AvailableSlot struct {
	ProcedureID     string   `json:"procedure_id"`
	ClinicID        string   `json:"clinic_id"`
	RoomID          string   `json:"room_id"`
	Date            string   `json:"date"`
	StartTime       string   `json:"start_time"`
	DurationMins    int      `json:"duration_mins"`
	DoctorIDs       []string `json:"doctor_ids"`
	PrimaryDoctorID string   `json:"primary_doctor_id"`
}
