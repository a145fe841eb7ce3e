package create_window

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frizerio/salon-booking-service/internal/access"
	"github.com/frizerio/salon-booking-service/internal/domain"
	salonRepo "github.com/frizerio/salon-booking-service/internal/infra/storage/salon"
	windowRepo "github.com/frizerio/salon-booking-service/internal/infra/storage/window"
	workerRepo "github.com/frizerio/salon-booking-service/internal/infra/storage/worker"
	"github.com/frizerio/salon-booking-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSalonRepo struct {
	salons map[int64]*domain.Salon
}

func (f *fakeSalonRepo) GetByID(_ context.Context, id int64) (*domain.Salon, error) {
	s, ok := f.salons[id]
	if !ok {
		return nil, salonRepo.ErrSalonNotFound
	}
	return s, nil
}

type fakeWorkerRepo struct {
	workers map[int64]*domain.Worker
}

func (f *fakeWorkerRepo) GetByID(_ context.Context, id int64) (*domain.Worker, error) {
	w, ok := f.workers[id]
	if !ok {
		return nil, workerRepo.ErrWorkerNotFound
	}
	return w, nil
}

type fakeWindowRepo struct {
	created   []*domain.Window
	duplicate bool
}

func (f *fakeWindowRepo) Create(_ context.Context, w *domain.Window) (*domain.Window, error) {
	if f.duplicate {
		return nil, windowRepo.ErrDuplicateWindow
	}
	created := *w
	created.ID = int64(len(f.created) + 1)
	f.created = append(f.created, &created)
	cp := created
	return &cp, nil
}

var testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func newFixture() (*UseCase, *fakeWindowRepo) {
	salons := &fakeSalonRepo{salons: map[int64]*domain.Salon{
		1: {ID: 1, OwnerID: ptr.Ptr(int64(100)), Active: true, WorkFrom: "09:00", WorkTo: "18:00", SlotDurationMinutes: 30},
	}}
	workerStore := &fakeWorkerRepo{workers: map[int64]*domain.Worker{
		11: {ID: 11, SalonID: 1, Active: true},
		21: {ID: 21, SalonID: 2, Active: true},
	}}
	windows := &fakeWindowRepo{}

	return NewUseCase(salons, workerStore, windows, nopLogger{}), windows
}

func validRequest(actor access.Actor) *Request {
	return &Request{
		Actor:     actor,
		SalonID:   1,
		WorkerID:  11,
		Date:      testDate,
		StartTime: "10:00",
		EndTime:   "10:30",
	}
}

var adminActor = access.Actor{UserID: 100, IsAdmin: true}

func TestCreateWindow(t *testing.T) {
	uc, windows := newFixture()

	resp, err := uc.Execute(context.Background(), validRequest(adminActor))
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.SalonID)
	assert.Equal(t, int64(11), resp.WorkerID)
	assert.False(t, resp.Occupied)
	require.Len(t, windows.created, 1)
	assert.False(t, windows.created[0].Occupied)
}

func TestCreateWindow_NotAdmin(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.Execute(context.Background(), validRequest(access.Actor{UserID: 100}))
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateWindow_ForeignSalon(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.Execute(context.Background(), validRequest(access.Actor{UserID: 200, IsAdmin: true}))
	assert.ErrorIs(t, err, ErrForeignSalon)
}

func TestCreateWindow_SalonNotFound(t *testing.T) {
	uc, _ := newFixture()

	req := validRequest(adminActor)
	req.SalonID = 404

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestCreateWindow_WorkerNotFound(t *testing.T) {
	uc, _ := newFixture()

	req := validRequest(adminActor)
	req.WorkerID = 404

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrWorkerNotFound)
}

// Работник другого салона - явная ошибка, а не тихое создание окна
func TestCreateWindow_WorkerMismatch(t *testing.T) {
	uc, _ := newFixture()

	req := validRequest(adminActor)
	req.WorkerID = 21

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrWorkerMismatch)
}

func TestCreateWindow_InvalidInterval(t *testing.T) {
	uc, _ := newFixture()

	req := validRequest(adminActor)
	req.StartTime = "10:30"
	req.EndTime = "10:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestCreateWindow_Duplicate(t *testing.T) {
	uc, windows := newFixture()
	windows.duplicate = true

	_, err := uc.Execute(context.Background(), validRequest(adminActor))
	assert.ErrorIs(t, err, ErrDuplicateWindow)
}
