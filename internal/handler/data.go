package handler

import "net/http"

// The reference data handlers serve the static catalog. The frontend and the
// chat assistant read these to render pickers and to resolve names.

func (h *Handler) GetClinics(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "clinics fetched", h.catalog.Clinics())
}

func (h *Handler) GetDoctors(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "doctors fetched", h.catalog.Doctors())
}

func (h *Handler) GetProcedures(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "procedures fetched", h.catalog.Procedures())
}

func (h *Handler) GetSpecializations(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "specializations fetched", h.catalog.Specializations())
}
