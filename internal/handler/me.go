package handler

import (
	"net/http"

	"github.com/meddent-dev/booking/backend/internal/domain"
)

func (h *Handler) GetMyInfo(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.StaffAccount)
	h.successResponse(w, r, "account fetched", myInfo)
}
