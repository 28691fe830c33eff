package handlers

import (
	"net/http"

	"github.com/wellywell/plaquexpress/internal/pricing"
	"github.com/wellywell/plaquexpress/internal/types"
	"github.com/wellywell/plaquexpress/internal/validate"
)

type quoteResponse struct {
	PlateNumber          string `json:"plateNumber"`
	MaxPlateNumberLength int    `json:"maxPlateNumberLength"`
	pricing.Quote
}

// HandleQuote gives the configurator live pricing and the plate number as
// it will be stored.
func (h *HandlerSet) HandleQuote(w http.ResponseWriter, req *http.Request) {

	var data struct {
		PlateType      types.PlateType `json:"plateType"`
		MountingOption types.Mounting  `json:"mountingOption"`
		PlateNumber    string          `json:"plateNumber"`
	}
	if err := decodeBody(req, &data); err != nil {
		writeError(w, http.StatusBadRequest, "Could not parse body")
		return
	}

	switch data.PlateType {
	case types.Plate3D, types.PlateVinyl:
	default:
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Message: "Unknown plate type", Field: "plateType"})
		return
	}
	switch data.MountingOption {
	case types.MountingHoles, types.MountingTape:
	default:
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Message: "Unknown mounting option", Field: "mountingOption"})
		return
	}

	writeJSON(w, http.StatusOK, quoteResponse{
		PlateNumber:          validate.SanitizePlateNumber(data.PlateNumber, validate.MaxPlateNumberLength),
		MaxPlateNumberLength: validate.MaxPlateNumberLength,
		Quote:                pricing.NewQuote(data.PlateType, data.MountingOption),
	})
}
