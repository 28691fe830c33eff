package router

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wellywell/plaquexpress/internal/compress"
	"github.com/wellywell/plaquexpress/internal/config"
	"github.com/wellywell/plaquexpress/internal/handlers"
	"github.com/wellywell/plaquexpress/internal/handlers/mocks"
	"github.com/wellywell/plaquexpress/internal/types"
)

var testScope = types.Scope{TenantID: "tenant-1", ProjectID: "project-1"}

func newTestRouter(t *testing.T) (*Router, *mocks.Store) {
	store := mocks.NewStore(t)
	h, err := handlers.NewHandlerSet(handlers.Options{
		Secret:               []byte("secret"),
		CookieExpiresSeconds: 60,
		AdminLogin:           "admin",
		AdminPassword:        "mypassword",
		Scope:                testScope,
	}, store, mocks.NewEnqueuer(t), mocks.NewNotifier(t))
	require.NoError(t, err)

	conf := &config.ServerConfig{Secret: []byte("secret"), RunAddress: "localhost:0"}
	return NewRouter(conf, h, compress.RequestUngzipper{}), store
}

func TestAdminRoutesNeedAuth(t *testing.T) {

	testCases := []struct {
		method string
		path   string
	}{
		{method: http.MethodGet, path: "/api/admin/orders"},
		{method: http.MethodPatch, path: "/api/admin/orders/1/status"},
		{method: http.MethodGet, path: "/api/admin/notifications/settings"},
		{method: http.MethodPost, path: "/api/admin/notifications/settings"},
		{method: http.MethodPost, path: "/api/admin/notifications/send"},
	}

	r, _ := newTestRouter(t)

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Unauthorized\n", rec.Body.String())
		})
	}
}

func TestAdminRouteWithCookie(t *testing.T) {

	r, store := newTestRouter(t)
	store.EXPECT().ListRecentOrders(mock.Anything, testScope, 50).Return([]types.Order{}, nil).Once()

	login := httptest.NewRecorder()
	r.ServeHTTP(login, httptest.NewRequest(http.MethodPost, "/api/admin/login",
		strings.NewReader(`{"login": "admin", "password": "mypassword"}`)))
	require.Equal(t, http.StatusOK, login.Code)
	cookies := login.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	req.AddCookie(cookies[0])
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"orders": []}`, rec.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {

	r, _ := newTestRouter(t)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(method, "/api/orders", nil))
			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestGzip(t *testing.T) {

	r, _ := newTestRouter(t)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(`{"plateType": "3d", "mountingOption": "holes", "plateNumber": "ab 123"}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/quote", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"plateNumber": "AB 123", "maxPlateNumberLength": 9, "basePrice": 1200, "surcharge": 0, "total": 1200}`, string(body))

	t.Run("broken gzip", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/quote", strings.NewReader("not gzip"))
		req.Header.Set("Content-Encoding", "gzip")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
