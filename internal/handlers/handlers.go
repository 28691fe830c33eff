package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/plaquexpress/internal/auth"
	"github.com/wellywell/plaquexpress/internal/types"
)

type Store interface {
	Ping(ctx context.Context) error
	InsertOrder(ctx context.Context, scope types.Scope, order types.Order) (*types.Order, error)
	ListRecentOrders(ctx context.Context, scope types.Scope, limit int) ([]types.Order, error)
	UpdateOrderStatus(ctx context.Context, scope types.Scope, orderID string, next types.Status) (*types.Order, error)
	GetSettings(ctx context.Context, scope types.Scope) (*types.NotificationSettings, error)
	UpsertSettings(ctx context.Context, scope types.Scope, update types.SettingsUpdate) (*types.NotificationSettings, error)
}

type Enqueuer interface {
	Enqueue(ctx context.Context, summary types.OrderSummary) error
}

type Notifier interface {
	Dispatch(ctx context.Context, summary types.OrderSummary) types.DispatchResult
}

type Options struct {
	Secret               []byte
	CookieExpiresSeconds int
	AdminLogin           string
	AdminPassword        string
	Scope                types.Scope
}

type HandlerSet struct {
	secret               []byte
	cookieExpiresSeconds int
	adminLogin           string
	adminPasswordHash    string
	scope                types.Scope
	database             Store
	queue                Enqueuer
	notifier             Notifier
}

var (
	ErrCouldNotParseBody = errors.New("could not parse body")
	ErrAuthDataEmpty     = errors.New("login or password cannot be empty")
)

func NewHandlerSet(opts Options, database Store, queue Enqueuer, notifier Notifier) (*HandlerSet, error) {
	hashed, err := auth.HashPassword(opts.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password %w", err)
	}
	return &HandlerSet{
		secret:               opts.Secret,
		cookieExpiresSeconds: opts.CookieExpiresSeconds,
		adminLogin:           opts.AdminLogin,
		adminPasswordHash:    hashed,
		scope:                opts.Scope,
		database:             database,
		queue:                queue,
		notifier:             notifier,
	}, nil
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Could not serialize result",
			http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		logger.Errorf("Could not write response %s", err.Error())
	}
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, errorResponse{Message: message})
}

// decodeBody reads a JSON request body into dst.
func decodeBody(req *http.Request, dst any) error {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrCouldNotParseBody, err.Error())
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: %s", ErrCouldNotParseBody, err.Error())
	}
	return nil
}
