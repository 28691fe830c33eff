package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHandleHealth(t *testing.T) {

	testCases := []struct {
		name         string
		pingErr      error
		expectedCode int
		expectedBody string
	}{
		{"healthy", nil, http.StatusOK, `{"status": "healthy"}`},
		{"database down", errors.New("dial tcp: connection refused"), http.StatusServiceUnavailable, `{"status": "unhealthy"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSet(t)
			s.store.EXPECT().Ping(mock.Anything).Return(tc.pingErr).Once()

			rec := s.do(http.MethodGet, "/health", "")

			assert.Equal(t, tc.expectedCode, rec.Code)
			assert.JSONEq(t, tc.expectedBody, rec.Body.String())
		})
	}
}
