package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/frizerio/salon-booking-service/internal/access"
	"github.com/frizerio/salon-booking-service/internal/domain"
	salonRepo "github.com/frizerio/salon-booking-service/internal/infra/storage/salon"
)

// UseCase use case для получения доступности окон салона на дату.
// Чтение без блокировок: занятость может отставать от параллельной
// транзакции бронирования максимум на её длительность, бронирование
// перепроверяет занятость под блокировкой.
type UseCase struct {
	salonRepo  SalonRepository
	workerRepo WorkerRepository
	windowRepo WindowRepository
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	salonRepo SalonRepository,
	workerRepo WorkerRepository,
	windowRepo WindowRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		salonRepo:  salonRepo,
		workerRepo: workerRepo,
		windowRepo: windowRepo,
		logger:     logger,
	}
}

// Execute выполняет use case получения доступности окон
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: user=%d, salon=%d, date=%s, onlyFree=%t",
		req.Actor.UserID, req.SalonID, req.Date.Format(domain.DateFormat), req.OnlyFree)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем салон
	salon, err := uc.salonRepo.GetByID(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			uc.logger.Warn("GetAvailability: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("GetAvailability: failed to get salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	// Неактивный салон виден только своему администратору,
	// остальным отвечаем как на несуществующий
	if !access.CanViewSalon(req.Actor, salon) {
		uc.logger.Warn("GetAvailability: salon id=%d not visible to user=%d", req.SalonID, req.Actor.UserID)
		return nil, ErrSalonNotFound
	}

	// 3. Количество активных работников - это ёмкость каждого окна.
	// Без работников сетка пуста, это не ошибка.
	totalCapacity, err := uc.workerRepo.CountActiveBySalon(ctx, req.SalonID)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to count workers for salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to count workers: %v", ErrInternal, err)
	}

	if totalCapacity == 0 {
		uc.logger.Info("GetAvailability: salon id=%d has no active workers", req.SalonID)
		return &Response{
			SalonID: req.SalonID,
			Date:    req.Date,
			Windows: []domain.WindowAvailability{},
		}, nil
	}

	// 4. Занятость по интервалам одним сгруппированным запросом
	occupiedByInterval, err := uc.windowRepo.CountOccupiedByInterval(ctx, req.SalonID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to count occupied windows for salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to count occupied windows: %v", ErrInternal, err)
	}

	// 5. Проходим сетку окон и считаем свободные места
	windows := make([]domain.WindowAvailability, 0)
	for iv := range domain.SlotGrid(salon.WorkFrom, salon.WorkTo, salon.SlotDurationMinutes) {
		freeCount := totalCapacity - occupiedByInterval[iv]
		if freeCount < 0 {
			freeCount = 0
		}

		if req.OnlyFree && freeCount == 0 {
			continue
		}

		windows = append(windows, domain.WindowAvailability{
			ID:            domain.AvailabilityID(req.Date, iv),
			SalonID:       salon.ID,
			SalonName:     salon.Name,
			Date:          req.Date,
			StartTime:     iv.Start,
			EndTime:       iv.End,
			Available:     freeCount > 0,
			FreeCount:     freeCount,
			TotalCapacity: totalCapacity,
		})
	}

	uc.logger.Info("GetAvailability: %d windows for salon=%d, date=%s",
		len(windows), req.SalonID, req.Date.Format(domain.DateFormat))

	return &Response{
		SalonID: req.SalonID,
		Date:    req.Date,
		Windows: windows,
	}, nil
}
