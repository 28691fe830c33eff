package handlers

import (
	"errors"
	"net/http"

	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/plaquexpress/internal/db"
	"github.com/wellywell/plaquexpress/internal/types"
	"github.com/wellywell/plaquexpress/internal/validate"
)

type settingsResponse struct {
	Success  bool                        `json:"success,omitempty"`
	Settings *types.NotificationSettings `json:"settings"`
}

// HandleGetSettings never answers 404: a scope without a record gets the
// disabled defaults.
func (h *HandlerSet) HandleGetSettings(w http.ResponseWriter, req *http.Request) {

	settings, err := h.database.GetSettings(req.Context(), h.scope)
	if err != nil {
		if !errors.Is(err, db.ErrSettingsNotFound) {
			logger.Errorf("Error fetching settings: %s", err.Error())
			writeError(w, http.StatusInternalServerError, "Failed to fetch settings")
			return
		}
		settings = &types.NotificationSettings{}
	}

	writeJSON(w, http.StatusOK, settingsResponse{Settings: settings})
}

func (h *HandlerSet) HandlePostSettings(w http.ResponseWriter, req *http.Request) {

	var update types.SettingsUpdate
	if err := decodeBody(req, &update); err != nil {
		writeError(w, http.StatusBadRequest, "Could not parse body")
		return
	}

	if err := validate.SettingsUpdate(&update); err != nil {
		var fieldErr *validate.FieldError
		if errors.As(err, &fieldErr) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
				Message: fieldErr.Error(),
				Field:   fieldErr.Field,
			})
			return
		}
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	settings, err := h.database.UpsertSettings(req.Context(), h.scope, update)
	if err != nil {
		logger.Errorf("Error saving settings: %s", err.Error())
		writeError(w, http.StatusInternalServerError, "Failed to save settings")
		return
	}

	writeJSON(w, http.StatusOK, settingsResponse{Success: true, Settings: settings})
}
