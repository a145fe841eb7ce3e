package create_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frizerio/salon-booking-service/internal/api/middleware"
	createReservation "github.com/frizerio/salon-booking-service/internal/usecase/create_reservation"
	"github.com/frizerio/salon-booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	gotReq *createReservation.Request
	resp   *createReservation.Response
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func newServer(uc *fakeUseCase) http.Handler {
	h := NewHandler(uc, nopLogger{})

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(nopLogger{}))
	api.HandleFunc("/reservations", h.Handle).Methods(http.MethodPost)
	return r
}

func doRequest(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	req.Header.Set("X-User-ID", "7")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createReservation.Response{
		ID:         1,
		CustomerID: 7,
		WindowID:   5,
		SalonID:    1,
		SalonName:  "Студия Волна",
		WorkerID:   11,
		Date:       time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:  "10:00",
		EndTime:    "10:30",
		Status:     "confirmed",
		CreatedAt:  time.Now(),
	}}

	rec := doRequest(t, newServer(uc), `{"salonId":1,"date":"2025-10-15","startTime":"10:00","endTime":"10:30"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2025-10-15", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)

	// Актор берётся из заголовка, а не из тела
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(7), uc.gotReq.Actor.UserID)
	require.NotNil(t, uc.gotReq.StartTime)
	assert.Equal(t, types.TimeString("10:00"), *uc.gotReq.StartTime)
}

func TestHandle_InvalidBody(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, newServer(uc), `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq)
}

func TestHandle_UnknownField(t *testing.T) {
	rec := doRequest(t, newServer(&fakeUseCase{}), `{"salonID":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	rec := doRequest(t, newServer(&fakeUseCase{}),
		`{"salonId":1,"date":"15.10.2025","startTime":"10:00","endTime":"10:30"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "missing data", err: createReservation.ErrMissingData, wantStatus: http.StatusBadRequest},
		{name: "invalid interval", err: createReservation.ErrInvalidInterval, wantStatus: http.StatusBadRequest},
		{name: "out of hours", err: createReservation.ErrOutOfHours, wantStatus: http.StatusBadRequest},
		{name: "wrong duration", err: createReservation.ErrWrongDuration, wantStatus: http.StatusBadRequest},
		{name: "no workers", err: createReservation.ErrNoActiveWorkers, wantStatus: http.StatusConflict},
		{name: "slot full", err: createReservation.ErrSlotFull, wantStatus: http.StatusConflict},
		{name: "duplicate booking", err: createReservation.ErrDuplicateBooking, wantStatus: http.StatusConflict},
		{name: "salon not found", err: createReservation.ErrSalonNotFound, wantStatus: http.StatusNotFound},
		{name: "window not found", err: createReservation.ErrWindowNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", err: createReservation.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, newServer(&fakeUseCase{err: tt.err}), `{"windowId":5}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_Unauthenticated(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(`{"windowId":5}`))
	rec := httptest.NewRecorder()
	newServer(&fakeUseCase{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
