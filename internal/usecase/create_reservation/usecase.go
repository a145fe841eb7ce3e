package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/frizerio/salon-booking-service/internal/access"
	"github.com/frizerio/salon-booking-service/internal/domain"
	reservationRepo "github.com/frizerio/salon-booking-service/internal/infra/storage/reservation"
	salonRepo "github.com/frizerio/salon-booking-service/internal/infra/storage/salon"
	windowRepo "github.com/frizerio/salon-booking-service/internal/infra/storage/window"
)

// UseCase use case для создания резервации.
// Вся работа с хранилищем выполняется в одной транзакции; конкурентные
// бронирования одного окна сериализуются эксклюзивной блокировкой его строки
// (SELECT ... FOR UPDATE). Бронирования разных окон друг друга не блокируют.
type UseCase struct {
	salonRepo       SalonRepository
	workerRepo      WorkerRepository
	windowRepo      WindowRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	salonRepo SalonRepository,
	workerRepo WorkerRepository,
	windowRepo WindowRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		salonRepo:       salonRepo,
		workerRepo:      workerRepo,
		windowRepo:      windowRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания резервации
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: customer=%d, windowID=%v, salonID=%v",
		req.Actor.UserID, req.WindowID, req.SalonID)

	// 1. Валидация входных данных - до любого обращения к хранилищу
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	var result *Response

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2. Разрешаем окно (для виртуального слота - с подбором работника)
		// и берём эксклюзивную блокировку его строки
		win, salon, err := uc.resolveAndLockWindow(txCtx, req)
		if err != nil {
			return err
		}

		// 3. Клиент не может держать две подтверждённые резервации в одном
		// салоне на одно время начала, даже у разных работников
		hasDuplicate, err := uc.reservationRepo.ExistsConfirmedAt(
			txCtx, req.Actor.UserID, win.SalonID, win.Date, win.StartTime)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to check duplicate booking: %v", err)
			return fmt.Errorf("%w: failed to check duplicate booking: %v", ErrInternal, err)
		}
		if hasDuplicate {
			uc.logger.Warn("CreateReservation: customer=%d already booked salon=%d at %s %s",
				req.Actor.UserID, win.SalonID, win.Date.Format(domain.DateFormat), win.StartTime)
			return ErrDuplicateBooking
		}

		// 4. Окно уже занято - отказ
		if win.Occupied {
			uc.logger.Warn("CreateReservation: window id=%d is occupied", win.ID)
			return ErrSlotFull
		}

		// 5-6. Окно имеет не более одной резервации за всю жизнь: отменённая
		// переиспользуется, существующая неотменённая означает проигранную
		// гонку на пути find-or-create
		res, err := uc.upsertReservation(txCtx, req, win.ID)
		if err != nil {
			return err
		}

		// 7. Помечаем окно занятым
		if err := uc.windowRepo.SetOccupied(txCtx, win.ID, true); err != nil {
			uc.logger.Error("CreateReservation: failed to occupy window id=%d: %v", win.ID, err)
			return fmt.Errorf("%w: failed to occupy window: %v", ErrInternal, err)
		}

		result = &Response{
			ID:         res.ID,
			CustomerID: res.CustomerID,
			WindowID:   win.ID,
			SalonID:    salon.ID,
			SalonName:  salon.Name,
			WorkerID:   win.WorkerID,
			Date:       win.Date,
			StartTime:  win.StartTime,
			EndTime:    win.EndTime,
			Status:     string(res.Status),
			Note:       res.Note,
			CreatedAt:  res.CreatedAt,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: reservation id=%d confirmed, window=%d, worker=%d",
		result.ID, result.WindowID, result.WorkerID)

	return result, nil
}

// resolveAndLockWindow возвращает окно с взятой блокировкой строки и его салон.
// Для виртуального слота сначала проверяет интервал против настроек салона,
// подбирает свободного работника и материализует окно через find-or-create.
func (uc *UseCase) resolveAndLockWindow(txCtx context.Context, req *Request) (*domain.Window, *domain.Salon, error) {
	if req.WindowID != nil {
		win, err := uc.windowRepo.GetByIDForUpdate(txCtx, *req.WindowID)
		if err != nil {
			if errors.Is(err, windowRepo.ErrWindowNotFound) {
				uc.logger.Warn("CreateReservation: window id=%d not found", *req.WindowID)
				return nil, nil, ErrWindowNotFound
			}
			uc.logger.Error("CreateReservation: failed to lock window id=%d: %v", *req.WindowID, err)
			return nil, nil, fmt.Errorf("%w: failed to lock window: %v", ErrInternal, err)
		}

		salon, err := uc.getVisibleSalon(txCtx, win.SalonID, req.Actor)
		if err != nil {
			// Окно невидимого салона не раскрываем
			if errors.Is(err, ErrSalonNotFound) {
				return nil, nil, ErrWindowNotFound
			}
			return nil, nil, err
		}

		return win, salon, nil
	}

	salon, err := uc.getVisibleSalon(txCtx, *req.SalonID, req.Actor)
	if err != nil {
		return nil, nil, err
	}

	iv := domain.Interval{Start: *req.StartTime, End: *req.EndTime}

	// Интервал должен лежать в рабочем времени салона
	if !salon.ContainsInterval(iv) {
		uc.logger.Warn("CreateReservation: interval %s-%s outside working hours %s-%s of salon=%d",
			iv.Start, iv.End, salon.WorkFrom, salon.WorkTo, salon.ID)
		return nil, nil, ErrOutOfHours
	}

	// И совпадать с настроенной длительностью слота
	duration, err := iv.Start.DiffMinutes(iv.End)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}
	if duration != salon.SlotDurationMinutes {
		uc.logger.Warn("CreateReservation: interval duration %d != salon slot duration %d",
			duration, salon.SlotDurationMinutes)
		return nil, nil, ErrWrongDuration
	}

	// Подбираем свободного работника детерминированно
	workers, err := uc.workerRepo.ListActiveBySalon(txCtx, salon.ID)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to list workers for salon=%d: %v", salon.ID, err)
		return nil, nil, fmt.Errorf("%w: failed to list workers: %v", ErrInternal, err)
	}
	if len(workers) == 0 {
		uc.logger.Warn("CreateReservation: salon=%d has no active workers", salon.ID)
		return nil, nil, ErrNoActiveWorkers
	}

	occupiedIDs, err := uc.windowRepo.OccupiedWorkerIDs(txCtx, salon.ID, *req.Date, iv)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get occupied workers: %v", err)
		return nil, nil, fmt.Errorf("%w: failed to get occupied workers: %v", ErrInternal, err)
	}

	worker := allocateWorker(workers, occupiedIDs)
	if worker == nil {
		uc.logger.Warn("CreateReservation: no free worker in salon=%d for %s %s-%s",
			salon.ID, req.Date.Format(domain.DateFormat), iv.Start, iv.End)
		return nil, nil, ErrSlotFull
	}

	// Материализуем окно; гонку двух создателей разрешает уникальное
	// ограничение БД внутри FindOrCreate
	win, err := uc.windowRepo.FindOrCreate(txCtx, salon.ID, worker.ID, *req.Date, iv)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to find or create window: %v", err)
		return nil, nil, fmt.Errorf("%w: failed to find or create window: %v", ErrInternal, err)
	}

	// Точка сериализации: дальше состояние окна меняется только под блокировкой
	locked, err := uc.windowRepo.GetByIDForUpdate(txCtx, win.ID)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to lock window id=%d: %v", win.ID, err)
		return nil, nil, fmt.Errorf("%w: failed to lock window: %v", ErrInternal, err)
	}

	return locked, salon, nil
}

// upsertReservation переиспользует отменённую резервацию окна или создает новую
func (uc *UseCase) upsertReservation(txCtx context.Context, req *Request, windowID int64) (*domain.Reservation, error) {
	existing, err := uc.reservationRepo.GetByWindowIDForUpdate(txCtx, windowID)
	switch {
	case err == nil:
		if !existing.IsCancelled() {
			// Гонка на пути find-or-create: другой клиент успел раньше
			uc.logger.Warn("CreateReservation: window id=%d already has active reservation id=%d",
				windowID, existing.ID)
			return nil, ErrSlotFull
		}

		if err := uc.reservationRepo.Rebook(txCtx, existing.ID, req.Actor.UserID, req.Note); err != nil {
			uc.logger.Error("CreateReservation: failed to rebook reservation id=%d: %v", existing.ID, err)
			return nil, fmt.Errorf("%w: failed to rebook reservation: %v", ErrInternal, err)
		}

		existing.CustomerID = req.Actor.UserID
		existing.Status = domain.StatusConfirmed
		existing.Note = req.Note
		return existing, nil

	case errors.Is(err, reservationRepo.ErrReservationNotFound):
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			CustomerID: req.Actor.UserID,
			WindowID:   windowID,
			Status:     domain.StatusConfirmed,
			Note:       req.Note,
		})
		if err != nil {
			if errors.Is(err, reservationRepo.ErrDuplicateReservation) {
				// Неразличимо от занятого окна с точки зрения клиента
				return nil, ErrSlotFull
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}
		return created, nil

	default:
		uc.logger.Error("CreateReservation: failed to get reservation for window id=%d: %v", windowID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}
}

func (uc *UseCase) getVisibleSalon(txCtx context.Context, salonID int64, actor access.Actor) (*domain.Salon, error) {
	salon, err := uc.salonRepo.GetByID(txCtx, salonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			uc.logger.Warn("CreateReservation: salon id=%d not found", salonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("CreateReservation: failed to get salon id=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	if !access.CanViewSalon(actor, salon) {
		uc.logger.Warn("CreateReservation: salon id=%d not visible to user=%d", salonID, actor.UserID)
		return nil, ErrSalonNotFound
	}

	return salon, nil
}
