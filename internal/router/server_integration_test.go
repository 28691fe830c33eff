//go:build integration_tests
// +build integration_tests

package router

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellywell/plaquexpress/internal/compress"
	"github.com/wellywell/plaquexpress/internal/config"
	"github.com/wellywell/plaquexpress/internal/db"
	"github.com/wellywell/plaquexpress/internal/handlers"
	"github.com/wellywell/plaquexpress/internal/notify"
	"github.com/wellywell/plaquexpress/internal/queue"
	"github.com/wellywell/plaquexpress/internal/sender"
	"github.com/wellywell/plaquexpress/internal/testutils"
	"github.com/wellywell/plaquexpress/internal/types"
)

const baseURL = "http://localhost:8080"

var (
	DBDSN     string
	testQueue *queue.Memory
)

func TestMain(m *testing.M) {
	code, err := runMain(m)

	if err != nil {
		log.Fatal(err)
	}
	os.Exit(code)
}

func runMain(m *testing.M) (int, error) {

	databaseDSN, clean, err := testutils.RunTestDatabase()
	defer clean()

	if err != nil {
		return 1, err
	}

	DBDSN = databaseDSN

	database, err := db.NewDatabase(DBDSN)
	if err != nil {
		return 1, err
	}
	defer database.Close()

	testQueue = queue.NewMemory(queue.DefaultSize)
	dispatcher := notify.NewDispatcher(database, sender.NewLogSender("email"), sender.NewLogSender("whatsapp"))

	handlerSet, err := handlers.NewHandlerSet(handlers.Options{
		Secret:               []byte("secret"),
		CookieExpiresSeconds: 60,
		AdminLogin:           "admin",
		AdminPassword:        "mypassword",
		Scope:                types.Scope{TenantID: "tenant-1", ProjectID: "project-1"},
	}, database, testQueue, dispatcher)
	if err != nil {
		return 1, err
	}

	conf := config.ServerConfig{
		Secret:      []byte("secret"),
		RunAddress:  "localhost:8080",
		DatabaseDSN: DBDSN,
	}

	r := NewRouter(&conf, handlerSet, compress.RequestUngzipper{})

	go r.ListenAndServe()
	defer r.Shutdown(context.Background())

	exitCode := m.Run()
	return exitCode, nil
}

func cleanUp(t *testing.T) {
	require.NoError(t, testutils.TruncateTables(DBDSN))
	for {
		select {
		case <-testQueue.Jobs():
		default:
			return
		}
	}
}

func getAuthCookie(t *testing.T) *http.Cookie {
	resp, err := resty.New().R().
		SetBody(`{"login": "admin", "password": "mypassword"}`).
		Post(baseURL + "/api/admin/login")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.Len(t, resp.Cookies(), 1)
	return resp.Cookies()[0]
}

func countRows(t *testing.T, table string) int {
	conn, err := pgx.Connect(context.Background(), DBDSN)
	require.NoError(t, err)
	defer conn.Close(context.Background())

	var count int
	err = conn.QueryRow(context.Background(), fmt.Sprintf("SELECT count(*) FROM %s", table)).Scan(&count)
	require.NoError(t, err)
	return count
}

const orderBody = `{
	"plateType": "vinyl",
	"vehicleType": "motorcycle",
	"plateShape": "compact",
	"dimensions": {"width": 24, "height": 14},
	"plateNumber": "mc 42",
	"mountingOption": "holes",
	"fullName": "Anjali Ramgoolam",
	"phone": "5712 3456",
	"address": "Rue Royale, Port Louis",
	"totalPrice": 800
}`

func TestHealth(t *testing.T) {
	resp, err := resty.New().R().Get(baseURL + "/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, `{"status": "healthy"}`, string(resp.Body()))
}

func TestLogin(t *testing.T) {

	testCases := []struct {
		method       string
		body         string
		expectedCode int
		expectedBody string
	}{
		{method: http.MethodGet, body: "", expectedCode: http.StatusMethodNotAllowed, expectedBody: ""},
		{method: http.MethodPost, body: "smth", expectedCode: http.StatusBadRequest, expectedBody: "Could not parse body\n"},
		{method: http.MethodPost, body: `{"login": "", "password": "x"}`, expectedCode: http.StatusBadRequest, expectedBody: "Login and password cannot be empty\n"},
		{method: http.MethodPost, body: `{"login": "admin", "password": "wrong"}`, expectedCode: http.StatusUnauthorized, expectedBody: "Wrong login or password\n"},
		{method: http.MethodPost, body: `{"login": "admin", "password": "mypassword"}`, expectedCode: http.StatusOK, expectedBody: "success"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+tc.body, func(t *testing.T) {

			req := resty.New().R()
			req.Method = tc.method
			req.URL = baseURL + "/api/admin/login"
			req.SetBody([]byte(tc.body))

			resp, err := req.Send()
			assert.NoError(t, err, "error making HTTP request")

			assert.Equal(t, tc.expectedCode, resp.StatusCode(), "Response code didn't match expected")
			assert.Equal(t, tc.expectedBody, string(resp.Body()))
		})
	}
}

func TestNotAuthenticated(t *testing.T) {

	testCases := []struct {
		method string
		path   string
	}{
		{method: http.MethodGet, path: baseURL + "/api/admin/orders"},
		{method: http.MethodPatch, path: baseURL + "/api/admin/orders/x/status"},
		{method: http.MethodGet, path: baseURL + "/api/admin/notifications/settings"},
		{method: http.MethodPost, path: baseURL + "/api/admin/notifications/settings"},
		{method: http.MethodPost, path: baseURL + "/api/admin/notifications/send"},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {

			req := resty.New().R()
			req.Method = tc.method
			req.URL = tc.path

			resp, _ := req.Send()

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
		})
	}
}

func TestOrderFlow(t *testing.T) {

	cleanUp(t)
	cookie := getAuthCookie(t)

	// invalid drafts never reach the table
	resp, err := resty.New().R().
		SetBody(`{"plateType": "vinyl", "totalPrice": 800}`).
		Post(baseURL + "/api/orders")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode())
	assert.Equal(t, 0, countRows(t, "orders"))

	resp, err = resty.New().R().SetBody(orderBody).Post(baseURL + "/api/orders")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())

	var created struct {
		Success bool        `json:"success"`
		Order   types.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(resp.Body(), &created))
	assert.True(t, created.Success)
	assert.Equal(t, "MC 42", created.Order.PlateNumber)
	assert.Equal(t, types.PendingStatus, created.Order.Status)
	assert.Regexp(t, `^PX\d{8}$`, created.Order.OrderNumber)

	job := <-testQueue.Jobs()
	assert.Equal(t, created.Order.OrderNumber, job.OrderNumber)

	resp, err = resty.New().R().SetCookie(cookie).Get(baseURL + "/api/admin/orders?limit=5")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())

	var list struct {
		Orders []types.Order `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(resp.Body(), &list))
	require.Len(t, list.Orders, 1)
	assert.Equal(t, created.Order.ID, list.Orders[0].ID)

	statusURL := fmt.Sprintf("%s/api/admin/orders/%s/status", baseURL, created.Order.ID)

	testCases := []struct {
		body         string
		expectedCode int
	}{
		{body: `{"status": "confirmed"}`, expectedCode: http.StatusOK},
		{body: `{"status": "pending"}`, expectedCode: http.StatusConflict},
		{body: `{"status": "delivered"}`, expectedCode: http.StatusOK},
		{body: `{"status": "cancelled"}`, expectedCode: http.StatusConflict},
	}
	for _, tc := range testCases {
		t.Run(tc.body, func(t *testing.T) {
			resp, err := resty.New().R().SetCookie(cookie).SetBody(tc.body).Patch(statusURL)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedCode, resp.StatusCode())
		})
	}

	resp, err = resty.New().R().SetCookie(cookie).SetBody(`{"status": "ready"}`).
		Patch(baseURL + "/api/admin/orders/00000000-0000-0000-0000-000000000000/status")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
}

func TestSettingsConcurrentFirstSave(t *testing.T) {

	cleanUp(t)
	cookie := getAuthCookie(t)

	resp, err := resty.New().R().SetCookie(cookie).Get(baseURL + "/api/admin/notifications/settings")
	require.NoError(t, err)
	assert.JSONEq(t, `{"settings": {"email_enabled": false, "email_address": null, "whatsapp_enabled": false, "whatsapp_number": null}}`, string(resp.Body()))

	const n = 10
	var wg sync.WaitGroup
	codes := make([]int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := resty.New().R().SetCookie(cookie).
				SetBody(`{"email_enabled": true, "email_address": "shop@example.com"}`).
				Post(baseURL + "/api/admin/notifications/settings")
			if err == nil {
				codes[i] = resp.StatusCode()
			}
		}(i)
	}
	wg.Wait()

	for _, code := range codes {
		assert.Equal(t, http.StatusOK, code)
	}
	assert.Equal(t, 1, countRows(t, "notification_settings"))

	// partial update keeps the email destination
	resp, err = resty.New().R().SetCookie(cookie).
		SetBody(`{"whatsapp_enabled": true, "whatsapp_number": "+23057123456"}`).
		Post(baseURL + "/api/admin/notifications/settings")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())

	var saved struct {
		Settings types.NotificationSettings `json:"settings"`
	}
	require.NoError(t, json.Unmarshal(resp.Body(), &saved))
	assert.True(t, saved.Settings.EmailEnabled)
	require.NotNil(t, saved.Settings.EmailAddress)
	assert.Equal(t, "shop@example.com", *saved.Settings.EmailAddress)
	assert.True(t, saved.Settings.WhatsAppEnabled)

	resp, err = resty.New().R().SetCookie(cookie).
		SetBody(`{"orderNumber": "PX20260001", "customerName": "Test", "totalPrice": 1200}`).
		Post(baseURL + "/api/admin/notifications/send")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())

	var result types.DispatchResult
	require.NoError(t, json.Unmarshal(resp.Body(), &result))
	assert.Equal(t, 2, result.Attempted)
	assert.Equal(t, 2, result.Sent)
}
