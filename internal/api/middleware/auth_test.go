package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frizerio/salon-booking-service/internal/access"
)

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

func TestAuth(t *testing.T) {
	var gotActor access.Actor
	var called bool

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		gotActor, _ = ActorFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := Auth(nopLogger{})(next)

	tests := []struct {
		name       string
		userID     string
		admin      string
		wantStatus int
		wantActor  access.Actor
	}{
		{name: "customer", userID: "7", wantStatus: http.StatusOK, wantActor: access.Actor{UserID: 7}},
		{name: "admin", userID: "100", admin: "true", wantStatus: http.StatusOK, wantActor: access.Actor{UserID: 100, IsAdmin: true}},
		{name: "admin flag not true", userID: "100", admin: "1", wantStatus: http.StatusOK, wantActor: access.Actor{UserID: 100}},
		{name: "missing user id", wantStatus: http.StatusUnauthorized},
		{name: "non-numeric user id", userID: "abc", wantStatus: http.StatusUnauthorized},
		{name: "non-positive user id", userID: "0", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called = false
			req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
			if tt.userID != "" {
				req.Header.Set("X-User-ID", tt.userID)
			}
			if tt.admin != "" {
				req.Header.Set("X-User-Admin", tt.admin)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				require.True(t, called)
				assert.Equal(t, tt.wantActor, gotActor)
			} else {
				assert.False(t, called)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	var gotID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = RequestIDFromContext(r.Context())
	})

	handler := RequestID(next)

	// Клиентский идентификатор сохраняется
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "client-supplied")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "client-supplied", gotID)
	assert.Equal(t, "client-supplied", rec.Header().Get("X-Request-ID"))

	// Без заголовка генерируется новый
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, gotID)
	assert.Equal(t, gotID, rec.Header().Get("X-Request-ID"))
}
