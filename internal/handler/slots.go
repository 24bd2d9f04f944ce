package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/meddent-dev/booking/backend/internal/engine"
)

// FindSlots answers "when can this procedure happen". The horizon and result
// cap default to the engine configuration and can be narrowed per request.
func (h *Handler) FindSlots(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProcedureID       string `validate:"required"`
		PreferredClinicID string
		DaysAhead         int `validate:"omitempty,min=1,max=60"`
		MaxResults        int `validate:"omitempty,min=1,max=50"`
	}

	q := r.URL.Query()
	req.ProcedureID = q.Get("procedure_id")
	req.PreferredClinicID = q.Get("preferred_clinic_id")

	if raw := q.Get("days_ahead"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.errorResponse(w, r, "days_ahead must be a number")
			return
		}
		req.DaysAhead = n
	}
	if raw := q.Get("max_results"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.errorResponse(w, r, "max_results must be a number")
			return
		}
		req.MaxResults = n
	}

	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.PreferredClinicID != "" && h.catalog.ClinicByID(req.PreferredClinicID) == nil {
		h.errorResponse(w, r, "unknown clinic")
		return
	}

	now := time.Now()
	daysAhead := req.DaysAhead
	if daysAhead <= 0 {
		daysAhead = h.config.Engine.DaysAhead
	}

	snapshot, err := h.repository.GetAppointmentsInRange(
		now.Format("2006-01-02"),
		now.AddDate(0, 0, daysAhead).Format("2006-01-02"),
	)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	result, err := h.engine.FindAvailableSlots(engine.SearchRequest{
		ProcedureID:       req.ProcedureID,
		PreferredClinicID: req.PreferredClinicID,
		DaysAhead:         req.DaysAhead,
		MaxResults:        req.MaxResults,
	}, now, snapshot)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrNoQualifiedResource):
			h.errorResponse(w, r, "no doctor or room can perform this procedure")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "slots found", result)
}
