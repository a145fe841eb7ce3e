package create_reservation

import (
	"errors"
	"net/http"

	"github.com/frizerio/salon-booking-service/internal/api/handlers"
	"github.com/frizerio/salon-booking-service/internal/api/middleware"
	createReservation "github.com/frizerio/salon-booking-service/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени"
	msgMissingData        = "укажите окно либо салон, дату и интервал"
	msgInvalidInterval    = "начало интервала должно быть раньше конца"
	msgOutOfHours         = "интервал выходит за рабочее время салона"
	msgWrongDuration      = "длительность интервала не совпадает с длительностью слота салона"
	msgNoActiveWorkers    = "в салоне нет активных работников"
	msgSlotFull           = "выбранный слот уже занят"
	msgDuplicateBooking   = "у вас уже есть резервация в этом салоне на это время"
	msgSalonNotFound      = "салон не найден"
	msgWindowNotFound     = "окно не найдено"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFromContext(r.Context())

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /reservations - Validation failed: user_id=%d, error=%v", actor.UserID, err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: user_id=%d, error=%v", actor.UserID, err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrMissingData):
			h.logger.Warn("POST /reservations - Missing reservation data: user_id=%d", actor.UserID)
			handlers.RespondBadRequest(w, msgMissingData)

		case errors.Is(err, createReservation.ErrInvalidInterval):
			h.logger.Warn("POST /reservations - Invalid interval: user_id=%d", actor.UserID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, createReservation.ErrOutOfHours):
			h.logger.Warn("POST /reservations - Interval out of working hours: user_id=%d", actor.UserID)
			handlers.RespondBadRequest(w, msgOutOfHours)

		case errors.Is(err, createReservation.ErrWrongDuration):
			h.logger.Warn("POST /reservations - Wrong interval duration: user_id=%d", actor.UserID)
			handlers.RespondBadRequest(w, msgWrongDuration)

		case errors.Is(err, createReservation.ErrNoActiveWorkers):
			h.logger.Warn("POST /reservations - No active workers: user_id=%d", actor.UserID)
			handlers.RespondConflict(w, msgNoActiveWorkers)

		case errors.Is(err, createReservation.ErrSlotFull):
			h.logger.Warn("POST /reservations - Slot full: user_id=%d", actor.UserID)
			handlers.RespondConflict(w, msgSlotFull)

		case errors.Is(err, createReservation.ErrDuplicateBooking):
			h.logger.Warn("POST /reservations - Duplicate booking: user_id=%d", actor.UserID)
			handlers.RespondConflict(w, msgDuplicateBooking)

		case errors.Is(err, createReservation.ErrSalonNotFound):
			h.logger.Warn("POST /reservations - Salon not found: user_id=%d", actor.UserID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, createReservation.ErrWindowNotFound):
			h.logger.Warn("POST /reservations - Window not found: user_id=%d", actor.UserID)
			handlers.RespondNotFound(w, msgWindowNotFound)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, error=%v",
				actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, user_id=%d, window_id=%d",
		result.ID, actor.UserID, result.WindowID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
