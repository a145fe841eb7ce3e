package create_window

import (
	"errors"
	"net/http"

	"github.com/frizerio/salon-booking-service/internal/api/handlers"
	"github.com/frizerio/salon-booking-service/internal/api/middleware"
	createWindow "github.com/frizerio/salon-booking-service/internal/usecase/create_window"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени"
	msgForbidden          = "требуются права администратора"
	msgForeignSalon       = "салон принадлежит другому администратору"
	msgSalonNotFound      = "салон не найден"
	msgWorkerNotFound     = "работник не найден"
	msgWorkerMismatch     = "работник не принадлежит этому салону"
	msgInvalidInterval    = "начало интервала должно быть раньше конца"
	msgDuplicateWindow    = "окно с таким интервалом уже существует"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateWindowUseCase
	logger  Logger
}

func NewHandler(useCase CreateWindowUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/windows
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFromContext(r.Context())

	var req CreateWindowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /windows - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /windows - Validation failed: user_id=%d, error=%v", actor.UserID, err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor)
	if err != nil {
		h.logger.Warn("POST /windows - Failed to parse request: user_id=%d, error=%v", actor.UserID, err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createWindow.ErrForbidden):
			h.logger.Warn("POST /windows - Administrator access required: user_id=%d", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createWindow.ErrForeignSalon):
			h.logger.Warn("POST /windows - Foreign salon: user_id=%d, salon_id=%d", actor.UserID, req.SalonID)
			handlers.RespondForbidden(w, msgForeignSalon)

		case errors.Is(err, createWindow.ErrSalonNotFound):
			h.logger.Warn("POST /windows - Salon not found: salon_id=%d", req.SalonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, createWindow.ErrWorkerNotFound):
			h.logger.Warn("POST /windows - Worker not found: worker_id=%d", req.WorkerID)
			handlers.RespondNotFound(w, msgWorkerNotFound)

		case errors.Is(err, createWindow.ErrWorkerMismatch):
			h.logger.Warn("POST /windows - Worker mismatch: worker_id=%d, salon_id=%d", req.WorkerID, req.SalonID)
			handlers.RespondBadRequest(w, msgWorkerMismatch)

		case errors.Is(err, createWindow.ErrInvalidInterval):
			h.logger.Warn("POST /windows - Invalid interval: user_id=%d", actor.UserID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, createWindow.ErrDuplicateWindow):
			h.logger.Warn("POST /windows - Duplicate window: worker_id=%d, date=%s", req.WorkerID, req.Date)
			handlers.RespondConflict(w, msgDuplicateWindow)

		case errors.Is(err, createWindow.ErrInvalidInput):
			h.logger.Warn("POST /windows - Invalid input: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /windows - Failed to create window: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /windows - Window created successfully: window_id=%d, user_id=%d", result.ID, actor.UserID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
