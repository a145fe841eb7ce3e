package get_availability

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
	count int
}

func (f *fakeWorkerRepo) CountActiveBySalon(_ context.Context, _ int64) (int, error) {
	return f.count, nil
}

type fakeWindowRepo struct {
	occupied map[domain.Interval]int
}

func (f *fakeWindowRepo) CountOccupiedByInterval(_ context.Context, _ int64, _ time.Time) (map[domain.Interval]int, error) {
	return f.occupied, nil
}

var testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func newFixture(workerCount int, occupied map[domain.Interval]int) *UseCase {
	salons := &fakeSalonRepo{salons: map[int64]*domain.Salon{
		1: {
			ID:                  1,
			OwnerID:             ptr.Ptr(int64(100)),
			Name:                "Студия Волна",
			Active:              true,
			WorkFrom:            "09:00",
			WorkTo:              "11:00",
			SlotDurationMinutes: 30,
		},
		2: {
			ID:                  2,
			OwnerID:             ptr.Ptr(int64(100)),
			Name:                "Закрытый салон",
			Active:              false,
			WorkFrom:            "09:00",
			WorkTo:              "11:00",
			SlotDurationMinutes: 30,
		},
	}}

	if occupied == nil {
		occupied = map[domain.Interval]int{}
	}

	return NewUseCase(salons, &fakeWorkerRepo{count: workerCount}, &fakeWindowRepo{occupied: occupied}, nopLogger{})
}

func TestGetAvailability_FullGrid(t *testing.T) {
	uc := newFixture(2, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		Actor:   access.Actor{UserID: 7},
		SalonID: 1,
		Date:    testDate,
	})
	require.NoError(t, err)

	// 09:00-11:00 при слоте 30 минут = 4 окна
	require.Len(t, resp.Windows, 4)

	first := resp.Windows[0]
	assert.Equal(t, "2025-10-15-09:00-09:30", first.ID)
	assert.Equal(t, "Студия Волна", first.SalonName)
	assert.Equal(t, 2, first.FreeCount)
	assert.Equal(t, 2, first.TotalCapacity)
	assert.True(t, first.Available)
}

func TestGetAvailability_OccupiedCounts(t *testing.T) {
	uc := newFixture(2, map[domain.Interval]int{
		{Start: "09:00", End: "09:30"}: 1,
		{Start: "09:30", End: "10:00"}: 2,
	})

	resp, err := uc.Execute(context.Background(), &Request{
		Actor:   access.Actor{UserID: 7},
		SalonID: 1,
		Date:    testDate,
	})
	require.NoError(t, err)
	require.Len(t, resp.Windows, 4)

	assert.Equal(t, 1, resp.Windows[0].FreeCount)
	assert.True(t, resp.Windows[0].Available)

	assert.Equal(t, 0, resp.Windows[1].FreeCount)
	assert.False(t, resp.Windows[1].Available)

	assert.Equal(t, 2, resp.Windows[2].FreeCount)
}

// Занятых окон больше ёмкости - свободных мест ноль, не отрицательное число
func TestGetAvailability_FreeCountClamped(t *testing.T) {
	uc := newFixture(1, map[domain.Interval]int{
		{Start: "09:00", End: "09:30"}: 3,
	})

	resp, err := uc.Execute(context.Background(), &Request{
		Actor:   access.Actor{UserID: 7},
		SalonID: 1,
		Date:    testDate,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Windows[0].FreeCount)
	assert.False(t, resp.Windows[0].Available)
}

func TestGetAvailability_OnlyFree(t *testing.T) {
	uc := newFixture(1, map[domain.Interval]int{
		{Start: "09:30", End: "10:00"}: 1,
	})

	resp, err := uc.Execute(context.Background(), &Request{
		Actor:    access.Actor{UserID: 7},
		SalonID:  1,
		Date:     testDate,
		OnlyFree: true,
	})
	require.NoError(t, err)
	require.Len(t, resp.Windows, 3)
	for _, w := range resp.Windows {
		assert.True(t, w.Available)
	}
}

// Салон без активных работников отдаёт пустую сетку, это не ошибка
func TestGetAvailability_NoWorkers(t *testing.T) {
	uc := newFixture(0, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		Actor:   access.Actor{UserID: 7},
		SalonID: 1,
		Date:    testDate,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Windows)
}

func TestGetAvailability_SalonNotFound(t *testing.T) {
	uc := newFixture(2, nil)

	_, err := uc.Execute(context.Background(), &Request{
		Actor:   access.Actor{UserID: 7},
		SalonID: 404,
		Date:    testDate,
	})
	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestGetAvailability_HiddenSalon(t *testing.T) {
	uc := newFixture(2, nil)

	// Для обычного клиента неактивный салон неотличим от несуществующего
	_, err := uc.Execute(context.Background(), &Request{
		Actor:   access.Actor{UserID: 7},
		SalonID: 2,
		Date:    testDate,
	})
	assert.ErrorIs(t, err, ErrSalonNotFound)

	// Владеющий администратор сетку видит
	resp, err := uc.Execute(context.Background(), &Request{
		Actor:   access.Actor{UserID: 100, IsAdmin: true},
		SalonID: 2,
		Date:    testDate,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Windows, 4)
}
