// Package seed fills an empty database with demo appointments so the
// dashboard and the slot search have something to show on first boot.
package seed

import (
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/meddent-dev/booking/backend/internal/domain"
	"github.com/meddent-dev/booking/backend/internal/refdata"
	"github.com/meddent-dev/booking/backend/internal/repository"
	"github.com/meddent-dev/booking/backend/internal/utils"
)

type demoAppointment struct {
	procedureID     string
	patientName     string
	patientPhone    string
	clinicID        string
	dayOffset       int
	startTime       string
	doctorIDs       []string
	primaryDoctorID string
	notes           string
}

var demoAppointments = []demoAppointment{
	{
		procedureID:     "general_checkup",
		patientName:     "Marcus Johnson",
		patientPhone:    "+1-555-0101",
		clinicID:        "downtown",
		dayOffset:       0,
		startTime:       "09:00",
		doctorIDs:       []string{"dr_chen"},
		primaryDoctorID: "dr_chen",
		notes:           "Routine annual check",
	},
	{
		procedureID:     "rct_consult",
		patientName:     "Aisha Williams",
		patientPhone:    "+1-555-0202",
		clinicID:        "downtown",
		dayOffset:       0,
		startTime:       "10:00",
		doctorIDs:       []string{"dr_morgan"},
		primaryDoctorID: "dr_morgan",
		notes:           "Upper left molar pain",
	},
	{
		procedureID:     "rct_treatment",
		patientName:     "Aisha Williams",
		patientPhone:    "+1-555-0202",
		clinicID:        "downtown",
		dayOffset:       2,
		startTime:       "10:30",
		doctorIDs:       []string{"dr_morgan"},
		primaryDoctorID: "dr_morgan",
		notes:           "Follow-up RCT, 3-canal molar",
	},
	{
		procedureID:     "wisdom_extraction",
		patientName:     "Priya Kumar",
		patientPhone:    "+1-555-0303",
		clinicID:        "westside",
		dayOffset:       1,
		startTime:       "09:30",
		doctorIDs:       []string{"dr_okafor"},
		primaryDoctorID: "dr_okafor",
		notes:           "Lower right impacted",
	},
	{
		procedureID:     "emergency_triage",
		patientName:     "Luis Torres",
		patientPhone:    "+1-555-0404",
		clinicID:        "downtown",
		dayOffset:       0,
		startTime:       "14:00",
		doctorIDs:       []string{"dr_chen"},
		primaryDoctorID: "dr_chen",
		notes:           "Acute pain, broken crown",
	},
	{
		procedureID:     "wisdom_extraction_iv",
		patientName:     "Sam Rivera",
		patientPhone:    "+1-555-0505",
		clinicID:        "downtown",
		dayOffset:       4,
		startTime:       "08:30",
		doctorIDs:       []string{"dr_okafor", "dr_silva"},
		primaryDoctorID: "dr_okafor",
		notes:           "IV sedation, severe dental anxiety",
	},
}

// SeedDemoStaff creates a demo receptionist with a random password so the
// dashboard can be tried without touching the initial admin. The password is
// logged once and nowhere else.
func SeedDemoStaff(repo *repository.Repository) error {
	password := utils.GenerateRandomPassword(12)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	staff := &domain.StaffAccount{
		Username:     "frontdesk",
		PasswordHash: string(passwordHash),
		FullName:     "Demo Receptionist",
		Email:        "frontdesk@example.com",
		Role:         domain.RoleReceptionist,
	}
	if err := repo.CreateStaff(staff); err != nil {
		return err
	}

	slog.Info("demo receptionist created", slog.String("username", staff.Username), slog.String("password", password))
	return nil
}

// SeedDemoAppointments inserts the demo schedule relative to today. It is
// idempotent only in the sense that callers should check the database is
// empty first; the cmd wrapper does that.
func SeedDemoAppointments(repo *repository.Repository, catalog *refdata.Catalog) int {
	today := time.Now()

	inserted := 0
	for _, demo := range demoAppointments {
		proc := catalog.ProcedureByID(demo.procedureID)
		if proc == nil {
			slog.Error("unknown demo procedure", slog.String("procedure_id", demo.procedureID))
			continue
		}

		roomID := "R1"
		if room := catalog.FindRoom(demo.clinicID, proc); room != nil {
			roomID = room.ID
		}

		appt := &domain.Appointment{
			ID:              utils.GenerateSeedID(),
			ProcedureID:     demo.procedureID,
			PatientName:     demo.patientName,
			PatientPhone:    demo.patientPhone,
			ClinicID:        demo.clinicID,
			RoomID:          roomID,
			Date:            today.AddDate(0, 0, demo.dayOffset).Format("2006-01-02"),
			StartTime:       demo.startTime,
			DurationMins:    proc.Duration,
			DoctorIDs:       demo.doctorIDs,
			PrimaryDoctorID: demo.primaryDoctorID,
			Notes:           demo.notes,
			Status:          domain.StatusConfirmed,
		}

		if err := repo.CreateAppointment(appt); err != nil {
			slog.Error("failed to insert demo appointment", slog.String("patient", demo.patientName), slog.String("error", err.Error()))
			continue
		}

		inserted++
	}

	return inserted
}
