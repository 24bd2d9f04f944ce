package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/meddent-dev/booking/backend/internal/domain"
	"github.com/meddent-dev/booking/backend/internal/engine"
)

const appointmentColumns = `
	id,
	procedure_id,
	patient_name,
	patient_phone,
	patient_email,
	clinic_id,
	room_id,
	date,
	start_time,
	duration_mins,
	doctor_ids,
	primary_doctor_id,
	notes,
	status,
	created_at,
	updated_at,
	version
`

func scanAppointment(row interface{ Scan(dest ...any) error }) (*domain.Appointment, error) {
	var appt domain.Appointment
	var doctorIDs string

	dst := []any{
		&appt.ID,
		&appt.ProcedureID,
		&appt.PatientName,
		&appt.PatientPhone,
		&appt.PatientEmail,
		&appt.ClinicID,
		&appt.RoomID,
		&appt.Date,
		&appt.StartTime,
		&appt.DurationMins,
		&doctorIDs,
		&appt.PrimaryDoctorID,
		&appt.Notes,
		&appt.Status,
		&appt.CreatedAt,
		&appt.UpdatedAt,
		&appt.Version,
	}
	if err := row.Scan(dst...); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(doctorIDs), &appt.DoctorIDs); err != nil {
		return nil, fmt.Errorf("appointment %s has malformed doctor_ids: %w", appt.ID, err)
	}

	return &appt, nil
}

func (r *Repository) queryAppointments(query string, params ...any) ([]*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appts := []*domain.Appointment{}
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appts = append(appts, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return appts, nil
}

// GetAppointmentsInRange returns the engine's conflict snapshot: every
// non-cancelled appointment with start <= date <= end. Cancelled records are
// filtered at the query so the engine never sees them.
func (r *Repository) GetAppointmentsInRange(startDate, endDate string) ([]*domain.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE date >= $1 AND date <= $2 AND status <> 'cancelled'
		ORDER BY date, start_time
	`
	return r.queryAppointments(query, startDate, endDate)
}

func (r *Repository) GetAppointmentsByStatus(status domain.AppointmentStatus) ([]*domain.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE status = $1
		ORDER BY date, start_time
	`
	return r.queryAppointments(query, status)
}

func (r *Repository) GetAppointmentsForWeek(weekStart, weekEnd string) ([]*domain.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE date >= $1 AND date <= $2 AND status <> 'cancelled'
		ORDER BY date, start_time
	`
	return r.queryAppointments(query, weekStart, weekEnd)
}

func (r *Repository) GetAppointmentsByDate(date string) ([]*domain.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE date = $1 AND status <> 'cancelled'
		ORDER BY start_time
	`
	return r.queryAppointments(query, date)
}

func (r *Repository) GetAppointmentByID(id string) (*domain.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	return scanAppointment(r.dbpool.QueryRowContext(ctx, query, id))
}

func (r *Repository) GetAppointmentStats() (*domain.AppointmentStats, error) {
	// week boundaries follow the original dashboard: Monday through Sunday
	// of the current week
	now := time.Now()
	weekday := (int(now.Weekday()) + 6) % 7 // days since Monday
	weekStart := now.AddDate(0, 0, -weekday).Format("2006-01-02")
	weekEnd := now.AddDate(0, 0, 6-weekday).Format("2006-01-02")
	today := now.Format("2006-01-02")

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'confirmed'),
			COUNT(*) FILTER (WHERE status = 'confirmed' AND date = $1),
			COUNT(*) FILTER (WHERE status = 'confirmed' AND date >= $2 AND date <= $3),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COUNT(*) FILTER (WHERE status = 'cancelled')
		FROM appointments
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	stats := &domain.AppointmentStats{}
	dst := []any{&stats.Total, &stats.Today, &stats.ThisWeek, &stats.Completed, &stats.Cancelled}
	if err := r.dbpool.QueryRowContext(ctx, query, today, weekStart, weekEnd).Scan(dst...); err != nil {
		return nil, err
	}

	return stats, nil
}

// CountAppointments exists for the seeder, which only runs against an empty
// table.
func (r *Repository) CountAppointments() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var count int
	if err := r.dbpool.QueryRowContext(ctx, `SELECT COUNT(*) FROM appointments`).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *Repository) UpdateAppointmentStatus(appt *domain.Appointment) error {
	query := `
		UPDATE appointments
		SET status = $1, updated_at = NOW(), version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, appt.Status, appt.ID, appt.Version).Scan(&appt.Version); err != nil {
		return err
	}

	return nil
}

// CreateAppointment inserts a single appointment without the booking-path
// conflict recheck. The seeder and tests use it; the HTTP booking path goes
// through ConfirmBooking instead.
func (r *Repository) CreateAppointment(appt *domain.Appointment) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	return insertAppointment(ctx, r.dbpool, appt)
}

type execQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func insertAppointment(ctx context.Context, q execQuerier, appt *domain.Appointment) error {
	if appt.ID == "" {
		appt.ID = uuid.NewString()
	}
	if appt.Status == "" {
		appt.Status = domain.StatusConfirmed
	}

	doctorIDs, err := json.Marshal(appt.DoctorIDs)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO appointments (
			id,
			procedure_id,
			patient_name,
			patient_phone,
			patient_email,
			clinic_id,
			room_id,
			date,
			start_time,
			duration_mins,
			doctor_ids,
			primary_doctor_id,
			notes,
			status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at, version
	`

	params := []any{
		appt.ID,
		appt.ProcedureID,
		appt.PatientName,
		appt.PatientPhone,
		appt.PatientEmail,
		appt.ClinicID,
		appt.RoomID,
		appt.Date,
		appt.StartTime,
		appt.DurationMins,
		string(doctorIDs),
		appt.PrimaryDoctorID,
		appt.Notes,
		appt.Status,
	}
	dst := []any{&appt.CreatedAt, &appt.UpdatedAt, &appt.Version}
	return q.QueryRowContext(ctx, query, params...).Scan(dst...)
}

// advisoryLockKey maps a calendar day onto the int64 key space of
// pg_advisory_xact_lock. The namespace prefix keeps these keys apart from any
// other advisory locks the database might carry.
func advisoryLockKey(date string) int64 {
	h := fnv.New64a()
	h.Write([]byte("appointments_day:" + date))
	return int64(h.Sum64())
}

// bookingDates returns the distinct dates of a booking in sorted order. Lock
// acquisition must follow one global order or two multi-day bookings can
// deadlock each other.
func bookingDates(appts []*domain.Appointment) []string {
	seen := make(map[string]struct{})
	dates := make([]string, 0, len(appts))
	for _, appt := range appts {
		if _, ok := seen[appt.Date]; ok {
			continue
		}
		seen[appt.Date] = struct{}{}
		dates = append(dates, appt.Date)
	}
	sort.Strings(dates)
	return dates
}

// ConfirmBooking persists a batch of proposed appointments atomically. Inside
// one transaction it takes a per-day advisory lock for every affected date,
// reads that day's appointments and re-runs the engine's overlap check
// against the snapshot. The advisory lock is what serializes two bookings
// racing for the same day: under read committed, FOR UPDATE only locks rows
// the statement can see, and a row a concurrent transaction has not committed
// yet is invisible to it. With the day lock held, the loser of the race reads
// a snapshot that includes the winner's rows and gets
// engine.ErrDoubleBooking. The engine's slot output is a proposal, not a
// reservation; this recheck is what turns it into one.
func (r *Repository) ConfirmBooking(appts []*domain.Appointment) error {
	if len(appts) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	snapshot := []*domain.Appointment{}
	for _, date := range bookingDates(appts) {
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, advisoryLockKey(date)); err != nil {
			return err
		}

		query := `
			SELECT ` + appointmentColumns + `
			FROM appointments
			WHERE date = $1 AND status <> 'cancelled'
			FOR UPDATE
		`
		rows, err := tx.QueryContext(ctx, query, date)
		if err != nil {
			return err
		}
		for rows.Next() {
			appt, err := scanAppointment(rows)
			if err != nil {
				rows.Close()
				return err
			}
			snapshot = append(snapshot, appt)
		}
		if err := rows.Close(); err != nil {
			return err
		}
		if err := rows.Err(); err != nil {
			return err
		}
	}

	for _, appt := range appts {
		conflict, err := engine.HasConflict(appt, snapshot)
		if err != nil {
			return err
		}
		if conflict {
			return fmt.Errorf("appointment on %s at %s: %w", appt.Date, appt.StartTime, engine.ErrDoubleBooking)
		}

		if err := insertAppointment(ctx, tx, appt); err != nil {
			return err
		}

		// later appointments of the same booking must not collide with
		// the ones just inserted either
		snapshot = append(snapshot, appt)
	}

	return tx.Commit()
}
