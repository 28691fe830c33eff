package handlers

import (
	"context"
	"net/http"
	"time"

	logger "github.com/sirupsen/logrus"
)

const healthTimeout = 2 * time.Second

func (h *HandlerSet) HandleHealth(w http.ResponseWriter, req *http.Request) {

	ctx, cancel := context.WithTimeout(req.Context(), healthTimeout)
	defer cancel()

	if err := h.database.Ping(ctx); err != nil {
		logger.Errorf("Health check failed: %s", err.Error())
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
