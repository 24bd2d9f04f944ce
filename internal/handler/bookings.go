package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/meddent-dev/booking/backend/internal/domain"
	"github.com/meddent-dev/booking/backend/internal/engine"
	"github.com/meddent-dev/booking/backend/internal/utils"
)

// CreateBooking turns previously proposed slots into confirmed appointments.
// A booking may carry several appointments (a procedure plus its follow-up);
// they confirm atomically or not at all.
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PatientName  string `json:"patient_name" validate:"required"`
		PatientPhone string `json:"patient_phone"`
		PatientEmail string `json:"patient_email" validate:"omitempty,email"`
		Appointments []struct {
			ProcedureID     string   `json:"procedure_id" validate:"required"`
			ClinicID        string   `json:"clinic_id" validate:"required"`
			Date            string   `json:"date" validate:"required"`
			StartTime       string   `json:"start_time" validate:"required"`
			DoctorIDs       []string `json:"doctor_ids" validate:"required,min=1"`
			PrimaryDoctorID string   `json:"primary_doctor_id" validate:"required"`
			Notes           string   `json:"notes"`
		} `json:"appointments" validate:"required,min=1,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	appts := make([]*domain.Appointment, 0, len(req.Appointments))
	for _, item := range req.Appointments {
		proc := h.catalog.ProcedureByID(item.ProcedureID)
		if proc == nil {
			h.errorResponse(w, r, fmt.Sprintf("unknown procedure %s", item.ProcedureID))
			return
		}

		clinic := h.catalog.ClinicByID(item.ClinicID)
		if clinic == nil {
			h.errorResponse(w, r, fmt.Sprintf("unknown clinic %s", item.ClinicID))
			return
		}

		room := h.catalog.FindRoom(clinic.ID, proc)
		if room == nil {
			h.errorResponse(w, r, fmt.Sprintf("%s has no room equipped for %s", clinic.Name, proc.Name))
			return
		}

		for _, doctorID := range item.DoctorIDs {
			if h.catalog.DoctorByID(doctorID) == nil {
				h.errorResponse(w, r, fmt.Sprintf("unknown doctor %s", doctorID))
				return
			}
		}

		appt := &domain.Appointment{
			ProcedureID:     proc.ID,
			PatientName:     req.PatientName,
			PatientPhone:    req.PatientPhone,
			PatientEmail:    req.PatientEmail,
			ClinicID:        clinic.ID,
			RoomID:          room.ID,
			Date:            item.Date,
			StartTime:       item.StartTime,
			DurationMins:    proc.Duration,
			DoctorIDs:       item.DoctorIDs,
			PrimaryDoctorID: item.PrimaryDoctorID,
			Notes:           item.Notes,
			Status:          domain.StatusConfirmed,
		}

		if err := utils.ValidateProposedAppointment(appt); err != nil {
			h.errorResponse(w, r, err.Error())
			return
		}

		appts = append(appts, appt)
	}

	if err := h.repository.ConfirmBooking(appts); err != nil {
		switch {
		case errors.Is(err, engine.ErrDoubleBooking):
			h.errorResponse(w, r, "that slot was just taken, please search again")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if req.PatientEmail != "" {
		for _, appt := range appts {
			proc := h.catalog.ProcedureByID(appt.ProcedureID)
			clinic := h.catalog.ClinicByID(appt.ClinicID)
			doctor := h.catalog.DoctorByID(appt.PrimaryDoctorID)

			mailMessage := domain.MailMessage{
				Type: "booking_confirmed",
				To:   req.PatientEmail,
				Data: domain.BookingConfirmedMailData{
					PatientName:   req.PatientName,
					ProcedureName: proc.Name,
					ClinicName:    clinic.Name,
					ClinicAddress: clinic.Address,
					Date:          appt.Date,
					StartTime:     appt.StartTime,
					DoctorName:    doctor.Name,
				},
			}

			// the booking already committed, a lost email must not fail it
			if err := h.publishMail(mailMessage); err != nil {
				slog.Error("failed to queue confirmation email", "appointment_id", appt.ID, "error", err)
			}
		}
	}

	h.successResponse(w, r, "booking confirmed", appts)
}
