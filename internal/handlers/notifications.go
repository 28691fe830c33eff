package handlers

import (
	"net/http"

	"github.com/wellywell/plaquexpress/internal/types"
)

// HandleSendNotification runs a dispatch synchronously so operators can
// check their channel setup. The order scope is always the server's own.
func (h *HandlerSet) HandleSendNotification(w http.ResponseWriter, req *http.Request) {

	var summary types.OrderSummary
	if err := decodeBody(req, &summary); err != nil {
		writeError(w, http.StatusBadRequest, "Could not parse body")
		return
	}
	summary.Scope = h.scope

	result := h.notifier.Dispatch(req.Context(), summary)

	writeJSON(w, http.StatusOK, result)
}
