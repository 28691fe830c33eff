package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/plaquexpress/internal/db"
	"github.com/wellywell/plaquexpress/internal/types"
	"github.com/wellywell/plaquexpress/internal/validate"
)

const enqueueTimeout = 3 * time.Second

type orderResponse struct {
	Success bool         `json:"success"`
	Order   *types.Order `json:"order"`
}

type ordersResponse struct {
	Orders []types.Order `json:"orders"`
}

func (h *HandlerSet) HandleCreateOrder(w http.ResponseWriter, req *http.Request) {

	var draft types.OrderDraft
	if err := decodeBody(req, &draft); err != nil {
		writeError(w, http.StatusBadRequest, "Could not parse body")
		return
	}

	if err := validate.Draft(&draft); err != nil {
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

	order, err := newOrder(draft)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Could not parse body")
		return
	}

	inserted, err := h.database.InsertOrder(req.Context(), h.scope, order)
	if err != nil {
		logger.Errorf("Error creating order: %s", err.Error())
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Message: "Failed to create order",
			Details: err.Error(),
		})
		return
	}

	log := logger.WithFields(logger.Fields{
		"order_id":     inserted.ID,
		"order_number": inserted.OrderNumber,
	})
	log.Info("Order created")

	// the job must not die with the request, but may not hold it either
	enqueueCtx, cancel := context.WithTimeout(context.WithoutCancel(req.Context()), enqueueTimeout)
	err = h.queue.Enqueue(enqueueCtx, types.NewOrderSummary(inserted))
	cancel()
	if err != nil {
		log.Errorf("Could not queue order notification: %s", err.Error())
	}

	writeJSON(w, http.StatusCreated, orderResponse{Success: true, Order: inserted})
}

// newOrder maps a validated draft onto the row to insert. Identifiers,
// order number and status are assigned by the store.
func newOrder(draft types.OrderDraft) (types.Order, error) {

	orderData := draft.OrderData
	if len(orderData) == 0 || string(orderData) == "null" {
		snapshot, err := json.Marshal(draft)
		if err != nil {
			return types.Order{}, err
		}
		orderData = snapshot
	}

	var notes *string
	if trimmed := strings.TrimSpace(draft.AdditionalNotes); trimmed != "" {
		notes = &trimmed
	}

	return types.Order{
		CustomerName:    strings.TrimSpace(draft.FullName),
		CustomerPhone:   strings.TrimSpace(draft.Phone),
		CustomerAddress: strings.TrimSpace(draft.Address),
		PlateNumber:     validate.NormalizePlateNumber(draft.PlateNumber),
		VehicleType:     draft.VehicleType,
		PlateType:       draft.PlateType,
		PlateShape:      draft.PlateShape,
		MountingOption:  draft.MountingOption,
		Dimensions:      draft.Dimensions,
		TotalPrice:      draft.TotalPrice,
		AdditionalNotes: notes,
		OrderData:       orderData,
	}, nil
}

func (h *HandlerSet) HandleListOrders(w http.ResponseWriter, req *http.Request) {

	limit := db.MaxOrdersLimit
	if raw := req.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = min(parsed, db.MaxOrdersLimit)
	}

	orders, err := h.database.ListRecentOrders(req.Context(), h.scope, limit)
	if err != nil {
		logger.Error(err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	if orders == nil {
		orders = []types.Order{}
	}

	writeJSON(w, http.StatusOK, ordersResponse{Orders: orders})
}

func (h *HandlerSet) HandleUpdateOrderStatus(w http.ResponseWriter, req *http.Request) {

	orderID := chi.URLParam(req, "id")

	var data struct {
		Status types.Status `json:"status"`
	}
	if err := decodeBody(req, &data); err != nil {
		writeError(w, http.StatusBadRequest, "Could not parse body")
		return
	}
	if !data.Status.Valid() {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Message: "Unknown status",
			Field:   "status",
		})
		return
	}

	updated, err := h.database.UpdateOrderStatus(req.Context(), h.scope, orderID, data.Status)
	if err != nil {
		if errors.Is(err, db.ErrOrderNotFound) {
			writeError(w, http.StatusNotFound, "Order not found")
			return
		}
		var transitionErr *db.StatusTransitionError
		if errors.As(err, &transitionErr) {
			writeError(w, http.StatusConflict, transitionErr.Error())
			return
		}
		logger.Error(err)
		writeError(w, http.StatusInternalServerError, "Failed to update order")
		return
	}

	logger.WithFields(logger.Fields{
		"order_id": updated.ID,
		"status":   updated.Status,
	}).Info("Order status updated")

	writeJSON(w, http.StatusOK, orderResponse{Success: true, Order: updated})
}
