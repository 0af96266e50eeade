package handlers

import (
	"net/http"

	"invenBack/internal/models"
	"invenBack/internal/services"
)

type ActivityHandler struct {
	Service *services.ActivityService
}

func (h *ActivityHandler) GetActivityFeed(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	records, err := h.Service.GetActivityFeed(r.Context(), requester)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if records == nil {
		records = []models.ActivityRecord{}
	}

	writeJSON(w, http.StatusOK, records)
}
