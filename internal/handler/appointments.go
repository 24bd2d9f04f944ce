package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/meddent-dev/booking/backend/internal/domain"
	"github.com/meddent-dev/booking/backend/internal/utils"
)

func (h *Handler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	status := domain.AppointmentStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = domain.StatusConfirmed
	}

	switch status {
	case domain.StatusConfirmed, domain.StatusCompleted, domain.StatusCancelled:
	default:
		h.errorResponse(w, r, "invalid status")
		return
	}

	appts, err := h.repository.GetAppointmentsByStatus(status)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "appointments fetched", appts)
}

func (h *Handler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appt := r.Context().Value(AppointmentCtx).(*domain.Appointment)
	h.successResponse(w, r, "appointment fetched", appt)
}

func (h *Handler) GetAppointmentStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.repository.GetAppointmentStats()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "stats fetched", stats)
}

// GetAppointmentsForWeek serves the calendar view. The week runs Monday
// through Sunday; start defaults to the current week's Monday.
func (h *Handler) GetAppointmentsForWeek(w http.ResponseWriter, r *http.Request) {
	startParam := r.URL.Query().Get("start")

	var weekStart time.Time
	if startParam == "" {
		now := time.Now()
		daysSinceMonday := (int(now.Weekday()) + 6) % 7
		weekStart = now.AddDate(0, 0, -daysSinceMonday)
	} else {
		parsed, err := time.Parse("2006-01-02", startParam)
		if err != nil {
			h.errorResponse(w, r, "invalid start date, expected YYYY-MM-DD")
			return
		}
		weekStart = parsed
	}

	appts, err := h.repository.GetAppointmentsForWeek(
		weekStart.Format("2006-01-02"),
		weekStart.AddDate(0, 0, 6).Format("2006-01-02"),
	)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "appointments fetched", appts)
}

func (h *Handler) GetAppointmentsForDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if err := utils.ValidateDate(date); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	appts, err := h.repository.GetAppointmentsByDate(date)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "appointments fetched", appts)
}

func (h *Handler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	appt := r.Context().Value(AppointmentCtx).(*domain.Appointment)

	var req struct {
		Status string `json:"status" validate:"required,oneof=confirmed completed cancelled"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	appt.Status = domain.AppointmentStatus(req.Status)

	if err := h.repository.UpdateAppointmentStatus(appt); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "appointment was modified concurrently, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "status updated", appt)
}

// CancelAppointment flips the status to cancelled. The record stays around
// for the stats and the audit trail; the slot becomes bookable again
// immediately because cancelled appointments never block.
func (h *Handler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	appt := r.Context().Value(AppointmentCtx).(*domain.Appointment)

	if appt.Status == domain.StatusCancelled {
		h.errorResponse(w, r, "appointment is already cancelled")
		return
	}

	appt.Status = domain.StatusCancelled

	if err := h.repository.UpdateAppointmentStatus(appt); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "appointment was modified concurrently, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if appt.PatientEmail != "" {
		proc := h.catalog.ProcedureByID(appt.ProcedureID)
		clinic := h.catalog.ClinicByID(appt.ClinicID)

		procName := appt.ProcedureID
		if proc != nil {
			procName = proc.Name
		}
		clinicName := appt.ClinicID
		if clinic != nil {
			clinicName = clinic.Name
		}

		mailMessage := domain.MailMessage{
			Type: "booking_cancelled",
			To:   appt.PatientEmail,
			Data: domain.BookingCancelledMailData{
				PatientName:   appt.PatientName,
				ProcedureName: procName,
				ClinicName:    clinicName,
				Date:          appt.Date,
				StartTime:     appt.StartTime,
			},
		}

		if err := h.publishMail(mailMessage); err != nil {
			slog.Error("failed to queue cancellation email", "appointment_id", appt.ID, "error", err)
		}
	}

	h.successResponse(w, r, "appointment cancelled", appt)
}
