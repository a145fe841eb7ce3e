package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/frizerio/salon-booking-service/internal/access"
	"github.com/frizerio/salon-booking-service/internal/domain"
	reservationRepo "github.com/frizerio/salon-booking-service/internal/infra/storage/reservation"
	"github.com/frizerio/salon-booking-service/internal/service/reservations/models"
)

// Service сервис для работы с существующими резервациями: чтение, отмена,
// смена статуса и удаление. Создание резерваций - отдельный use case.
type Service struct {
	reservationRepo ReservationRepository
	windowRepo      WindowRepository
	salonRepo       SalonRepository
	workerRepo      WorkerRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса резерваций
func NewService(
	reservationRepo ReservationRepository,
	windowRepo WindowRepository,
	salonRepo SalonRepository,
	workerRepo WorkerRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		windowRepo:      windowRepo,
		salonRepo:       salonRepo,
		workerRepo:      workerRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает резервацию по ID.
// Клиент видит только свою резервацию, администратор - резервации своих салонов.
func (s *Service) GetByID(ctx context.Context, id int64, actor access.Actor) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, actor.UserID)

	res, win, salon, err := s.loadAuthorized(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	worker, err := s.workerRepo.GetByID(ctx, win.WorkerID)
	if err != nil {
		s.logger.Error("GetByID: failed to get worker id=%d: %v", win.WorkerID, err)
		return nil, fmt.Errorf("%w: GetByID - failed to get worker: %v", ErrInternal, err)
	}

	return models.FromDomainDetails(&domain.ReservationDetails{
		Reservation: *res,
		SalonID:     salon.ID,
		SalonName:   salon.Name,
		WorkerID:    worker.ID,
		WorkerName:  worker.FullName,
		Date:        win.Date,
		StartTime:   win.StartTime,
		EndTime:     win.EndTime,
	}), nil
}

// List получает резервации актора, сначала новые.
// Клиент видит свои резервации, администратор - все резервации своих салонов.
func (s *Service) List(ctx context.Context, actor access.Actor) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching reservations for user=%d, admin=%t", actor.UserID, actor.IsAdmin)

	var (
		details []*domain.ReservationDetails
		err     error
	)

	if actor.IsAdmin {
		details, err = s.reservationRepo.ListDetailsBySalonOwner(ctx, actor.UserID)
	} else {
		details, err = s.reservationRepo.ListDetailsByCustomer(ctx, actor.UserID)
	}

	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", actor.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations for user=%d", len(details), actor.UserID)
	return models.FromDomainDetailsList(details), nil
}

// Cancel отменяет резервацию и освобождает её окно.
// На уровне окна операция идемпотентна: повторная отмена снова снимает флаг.
func (s *Service) Cancel(ctx context.Context, id int64, actor access.Actor) error {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", id, actor.UserID)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		res, _, _, err := s.loadAuthorized(txCtx, id, actor)
		if err != nil {
			return err
		}

		if err := s.reservationRepo.UpdateStatus(txCtx, res.ID, domain.StatusCancelled); err != nil {
			s.logger.Error("Cancel: failed to update status for id=%d: %v", res.ID, err)
			return fmt.Errorf("%w: Cancel - failed to update status: %v", ErrInternal, err)
		}

		return s.freeWindow(txCtx, res.WindowID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Cancel: reservation id=%d cancelled", id)
	return nil
}

// UpdateStatus обновляет статус резервации.
// Переход в cancelled освобождает окно; только отмена трогает флаг окна.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string, actor access.Actor) error {
	s.logger.Info("UpdateStatus: updating reservation id=%d to status=%s by user=%d", id, status, actor.UserID)

	newStatus, err := models.ToDomainStatus(status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%d", status, id)
		return ErrInvalidStatus
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		res, _, _, err := s.loadAuthorized(txCtx, id, actor)
		if err != nil {
			return err
		}

		if err := s.reservationRepo.UpdateStatus(txCtx, res.ID, newStatus); err != nil {
			s.logger.Error("UpdateStatus: failed to update status for id=%d: %v", res.ID, err)
			return fmt.Errorf("%w: UpdateStatus - failed to update status: %v", ErrInternal, err)
		}

		if newStatus == domain.StatusCancelled {
			return s.freeWindow(txCtx, res.WindowID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("UpdateStatus: reservation id=%d updated to status=%s", id, newStatus)
	return nil
}

// Delete удаляет резервацию (физическое удаление) и освобождает её окно.
// Само окно остаётся и сразу доступно для нового бронирования.
func (s *Service) Delete(ctx context.Context, id int64, actor access.Actor) error {
	s.logger.Info("Delete: deleting reservation id=%d by user=%d", id, actor.UserID)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		res, _, _, err := s.loadAuthorized(txCtx, id, actor)
		if err != nil {
			return err
		}

		if err := s.reservationRepo.Delete(txCtx, res.ID); err != nil {
			s.logger.Error("Delete: failed to delete reservation id=%d: %v", res.ID, err)
			return fmt.Errorf("%w: Delete - failed to delete reservation: %v", ErrInternal, err)
		}

		return s.freeWindow(txCtx, res.WindowID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Delete: reservation id=%d deleted", id)
	return nil
}

// loadAuthorized получает резервацию с её окном и салоном и проверяет права
// актора. Клиенту чужая резервация отвечает как несуществующая; администратор
// чужого салона получает явный отказ в доступе.
func (s *Service) loadAuthorized(ctx context.Context, id int64, actor access.Actor) (*domain.Reservation, *domain.Window, *domain.Salon, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("loadAuthorized: reservation id=%d not found", id)
			return nil, nil, nil, ErrReservationNotFound
		}
		s.logger.Error("loadAuthorized: repository error for reservation id=%d: %v", id, err)
		return nil, nil, nil, fmt.Errorf("%w: loadAuthorized - repository error: %v", ErrInternal, err)
	}

	win, err := s.windowRepo.GetByID(ctx, res.WindowID)
	if err != nil {
		s.logger.Error("loadAuthorized: failed to get window id=%d: %v", res.WindowID, err)
		return nil, nil, nil, fmt.Errorf("%w: loadAuthorized - failed to get window: %v", ErrInternal, err)
	}

	salon, err := s.salonRepo.GetByID(ctx, win.SalonID)
	if err != nil {
		s.logger.Error("loadAuthorized: failed to get salon id=%d: %v", win.SalonID, err)
		return nil, nil, nil, fmt.Errorf("%w: loadAuthorized - failed to get salon: %v", ErrInternal, err)
	}

	if !access.CanModifyReservation(actor, res, salon) {
		s.logger.Warn("loadAuthorized: user=%d has no access to reservation id=%d", actor.UserID, id)
		if actor.IsAdmin {
			return nil, nil, nil, ErrAccessDenied
		}
		return nil, nil, nil, ErrReservationNotFound
	}

	return res, win, salon, nil
}

func (s *Service) freeWindow(txCtx context.Context, windowID int64) error {
	if err := s.windowRepo.SetOccupied(txCtx, windowID, false); err != nil {
		s.logger.Error("freeWindow: failed to free window id=%d: %v", windowID, err)
		return fmt.Errorf("%w: failed to free window: %v", ErrInternal, err)
	}
	return nil
}
