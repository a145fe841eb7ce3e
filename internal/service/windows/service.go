package windows

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/frizerio/salon-booking-service/internal/access"
	salonRepo "github.com/frizerio/salon-booking-service/internal/infra/storage/salon"
	"github.com/frizerio/salon-booking-service/internal/service/windows/models"
)

// Service сервис чтения окон салона. Чтение идёт без транзакции:
// список - снимок на момент запроса, актуальность проверяет бронирование.
type Service struct {
	windowRepo WindowRepository
	salonRepo  SalonRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса окон
func NewService(windowRepo WindowRepository, salonRepo SalonRepository, logger Logger) *Service {
	return &Service{
		windowRepo: windowRepo,
		salonRepo:  salonRepo,
		logger:     logger,
	}
}

// ListBySalonDate получает окна салона на дату.
// Неактивный салон виден только своему администратору.
func (s *Service) ListBySalonDate(ctx context.Context, salonID int64, date time.Time, onlyFree bool, actor access.Actor) (*models.WindowListResponse, error) {
	s.logger.Info("ListBySalonDate: salon=%d, date=%s, onlyFree=%t, user=%d",
		salonID, date.Format("2006-01-02"), onlyFree, actor.UserID)

	salon, err := s.salonRepo.GetByID(ctx, salonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			s.logger.Warn("ListBySalonDate: salon id=%d not found", salonID)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("ListBySalonDate: failed to get salon id=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: ListBySalonDate - failed to get salon: %v", ErrInternal, err)
	}

	if !access.CanViewSalon(actor, salon) {
		s.logger.Warn("ListBySalonDate: salon id=%d is not visible to user=%d", salonID, actor.UserID)
		return nil, ErrSalonNotFound
	}

	wins, err := s.windowRepo.ListBySalonDate(ctx, salonID, date, onlyFree)
	if err != nil {
		s.logger.Error("ListBySalonDate: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: ListBySalonDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBySalonDate: fetched %d windows for salon=%d", len(wins), salonID)
	return models.FromDomainList(wins), nil
}
