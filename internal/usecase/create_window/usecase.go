package create_window

import (
	"context"
	"errors"
	"fmt"

	"github.com/frizerio/salon-booking-service/internal/access"
	"github.com/frizerio/salon-booking-service/internal/domain"
	salonRepo "github.com/frizerio/salon-booking-service/internal/infra/storage/salon"
	windowRepo "github.com/frizerio/salon-booking-service/internal/infra/storage/window"
	workerRepo "github.com/frizerio/salon-booking-service/internal/infra/storage/worker"
)

// UseCase use case прямого создания окна администратором.
// Транзакция не нужна: единственный insert, гонки разрешает уникальное
// ограничение БД.
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

// Execute выполняет use case создания окна
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateWindow: admin=%d, salon=%d, worker=%d, date=%s, interval=%s-%s",
		req.Actor.UserID, req.SalonID, req.WorkerID,
		req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateWindow: validation failed: %v", err)
		return nil, err
	}

	if !req.Actor.IsAdmin {
		uc.logger.Warn("CreateWindow: user=%d is not an administrator", req.Actor.UserID)
		return nil, ErrForbidden
	}

	// 2. Салон должен принадлежать этому администратору
	salon, err := uc.salonRepo.GetByID(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			uc.logger.Warn("CreateWindow: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("CreateWindow: failed to get salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	if !access.CanManageSalon(req.Actor, salon) {
		uc.logger.Warn("CreateWindow: salon id=%d is not owned by admin=%d", req.SalonID, req.Actor.UserID)
		return nil, ErrForeignSalon
	}

	// 3. Работник должен принадлежать этому салону
	worker, err := uc.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		if errors.Is(err, workerRepo.ErrWorkerNotFound) {
			uc.logger.Warn("CreateWindow: worker id=%d not found", req.WorkerID)
			return nil, ErrWorkerNotFound
		}
		uc.logger.Error("CreateWindow: failed to get worker id=%d: %v", req.WorkerID, err)
		return nil, fmt.Errorf("%w: failed to get worker: %v", ErrInternal, err)
	}

	if worker.SalonID != salon.ID {
		uc.logger.Warn("CreateWindow: worker id=%d belongs to salon=%d, not salon=%d",
			req.WorkerID, worker.SalonID, salon.ID)
		return nil, ErrWorkerMismatch
	}

	// 4. Создаем свободное окно
	win, err := uc.windowRepo.Create(ctx, &domain.Window{
		SalonID:   salon.ID,
		WorkerID:  worker.ID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Occupied:  false,
	})
	if err != nil {
		if errors.Is(err, windowRepo.ErrDuplicateWindow) {
			uc.logger.Warn("CreateWindow: duplicate window for worker=%d, date=%s, interval=%s-%s",
				req.WorkerID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)
			return nil, ErrDuplicateWindow
		}
		uc.logger.Error("CreateWindow: failed to create window: %v", err)
		return nil, fmt.Errorf("%w: failed to create window: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateWindow: window id=%d created", win.ID)

	return &Response{
		ID:        win.ID,
		SalonID:   win.SalonID,
		WorkerID:  win.WorkerID,
		Date:      win.Date,
		StartTime: win.StartTime,
		EndTime:   win.EndTime,
		Occupied:  win.Occupied,
	}, nil
}
