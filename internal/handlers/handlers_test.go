package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"github.com/wellywell/plaquexpress/internal/handlers/mocks"
	"github.com/wellywell/plaquexpress/internal/types"
)

var testScope = types.Scope{TenantID: "tenant-1", ProjectID: "project-1"}

type testSet struct {
	h        *HandlerSet
	store    *mocks.Store
	queue    *mocks.Enqueuer
	notifier *mocks.Notifier
	router   *chi.Mux
}

func newTestSet(t *testing.T) *testSet {
	store := mocks.NewStore(t)
	queue := mocks.NewEnqueuer(t)
	notifier := mocks.NewNotifier(t)

	h, err := NewHandlerSet(Options{
		Secret:               []byte("secret"),
		CookieExpiresSeconds: 60,
		AdminLogin:           "admin",
		AdminPassword:        "mypassword",
		Scope:                testScope,
	}, store, queue, notifier)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Post("/api/orders", h.HandleCreateOrder)
	r.Post("/api/quote", h.HandleQuote)
	r.Post("/api/admin/login", h.HandleLogin)
	r.Get("/api/admin/orders", h.HandleListOrders)
	r.Patch("/api/admin/orders/{id}/status", h.HandleUpdateOrderStatus)
	r.Get("/api/admin/notifications/settings", h.HandleGetSettings)
	r.Post("/api/admin/notifications/settings", h.HandlePostSettings)
	r.Post("/api/admin/notifications/send", h.HandleSendNotification)
	r.Get("/health", h.HandleHealth)

	return &testSet{h: h, store: store, queue: queue, notifier: notifier, router: r}
}

func (s *testSet) do(method string, path string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}
