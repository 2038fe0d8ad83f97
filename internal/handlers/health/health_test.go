package health

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name         string
		pingErr      error
		expectedCode int
		expectedBody string
	}{
		{"Healthy", nil, http.StatusOK, `"status":"healthy"`},
		{"Database down", errors.New("connection refused"), http.StatusServiceUnavailable, `"database":"disconnected"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			db := NewMockPinger(ctrl)
			db.EXPECT().Ping(gomock.Any()).Return(tt.pingErr)

			h := New(db)
			h.now = func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) }

			w := httptest.NewRecorder()
			h.Check(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			assert.Contains(t, w.Body.String(), "2024-05-01T00:00:00Z")
		})
	}
}
