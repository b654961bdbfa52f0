package handlers

import (
	"net/http"

	"courier-print-service/internal/api/dto"
	"courier-print-service/internal/services"
)

// StatusHandler reports the paired printer and its session state.
type StatusHandler struct {
	Session *services.PrinterSession
}

func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	identity := h.Session.Identity()
	res := dto.PrinterStatusResponse{
		Configured: identity.Configured(),
		Name:       identity.Name,
		Address:    identity.Address,
		State:      h.Session.State().String(),
	}

	writeJSON(w, r, http.StatusOK, res)
}
