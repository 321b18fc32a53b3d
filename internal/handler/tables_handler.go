package handlers

import (
	"net/http"

	"socialCPT/internal/logger"
)

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	report, err := h.TablesService.Health(r.Context())
	if err != nil {
		logger.LogError(h.Log, "Health check failed", err, nil)
		writeJSON(w, http.StatusServiceUnavailable, report)
		return
	}

	writeJSON(w, http.StatusOK, report)
}
