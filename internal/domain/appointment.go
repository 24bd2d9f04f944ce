package domain

import "time"

type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Blocks reports whether an appointment in this status occupies its doctors
// and room. Cancelled appointments are inert and must never block a slot.
func (s AppointmentStatus) Blocks() bool {
	return s == StatusConfirmed || s == StatusCompleted
}

// Appointment uses the same naive-local representation as the rest of the
// system: Date is "2006-01-02", StartTime is "15:04", DurationMins counts
// minutes. An appointment never crosses a day boundary.
type Appointment struct {
	ID              string            `json:"id"`
	ProcedureID     string            `json:"procedure_id"`
	PatientName     string            `json:"patient_name"`
	PatientPhone    string            `json:"patient_phone,omitempty"`
	PatientEmail    string            `json:"patient_email,omitempty"`
	ClinicID        string            `json:"clinic_id"`
	RoomID          string            `json:"room_id"`
	Date            string            `json:"date"`
	StartTime       string            `json:"start_time"`
	DurationMins    int               `json:"duration_mins"`
	DoctorIDs       []string          `json:"doctor_ids"`
	PrimaryDoctorID string            `json:"primary_doctor_id"`
	Notes           string            `json:"notes,omitempty"`
	Status          AppointmentStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	Version         int32             `json:"-"`
}

type AppointmentStats struct {
	Total     int `json:"total"`
	Today     int `json:"today"`
	ThisWeek  int `json:"this_week"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}
