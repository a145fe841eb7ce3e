package windows

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frizerio/salon-booking-service/internal/access"
	"github.com/frizerio/salon-booking-service/internal/domain"
	salonRepo "github.com/frizerio/salon-booking-service/internal/infra/storage/salon"
	"github.com/frizerio/salon-booking-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeWindowRepo struct {
	windows     []*domain.Window
	gotOnlyFree bool
}

func (f *fakeWindowRepo) ListBySalonDate(_ context.Context, _ int64, _ time.Time, onlyFree bool) ([]*domain.Window, error) {
	f.gotOnlyFree = onlyFree
	return f.windows, nil
}

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

var testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func newFixture() (*Service, *fakeWindowRepo) {
	windows := &fakeWindowRepo{windows: []*domain.Window{
		{ID: 5, SalonID: 1, WorkerID: 11, Date: testDate, StartTime: "10:00", EndTime: "10:30"},
		{ID: 6, SalonID: 1, WorkerID: 12, Date: testDate, StartTime: "10:00", EndTime: "10:30", Occupied: true},
	}}
	salons := &fakeSalonRepo{salons: map[int64]*domain.Salon{
		1: {ID: 1, OwnerID: ptr.Ptr(int64(100)), Active: true},
		2: {ID: 2, OwnerID: ptr.Ptr(int64(100)), Active: false},
	}}
	return NewService(windows, salons, nopLogger{}), windows
}

func TestListBySalonDate(t *testing.T) {
	svc, windows := newFixture()

	resp, err := svc.ListBySalonDate(context.Background(), 1, testDate, true, access.Actor{UserID: 7})
	require.NoError(t, err)

	require.Len(t, resp.Windows, 2)
	assert.Equal(t, "2025-10-15", resp.Windows[0].Date)
	assert.Equal(t, "10:00", resp.Windows[0].StartTime)
	// Фильтр по свободным окнам уходит в репозиторий
	assert.True(t, windows.gotOnlyFree)
}

func TestListBySalonDate_SalonNotFound(t *testing.T) {
	svc, _ := newFixture()

	_, err := svc.ListBySalonDate(context.Background(), 404, testDate, false, access.Actor{UserID: 7})
	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestListBySalonDate_HiddenSalon(t *testing.T) {
	svc, _ := newFixture()

	// Клиенту неактивный салон не виден
	_, err := svc.ListBySalonDate(context.Background(), 2, testDate, false, access.Actor{UserID: 7})
	assert.ErrorIs(t, err, ErrSalonNotFound)

	// Владеющему администратору - виден
	_, err = svc.ListBySalonDate(context.Background(), 2, testDate, false, access.Actor{UserID: 100, IsAdmin: true})
	assert.NoError(t, err)
}
