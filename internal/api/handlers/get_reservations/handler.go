package get_reservations

import (
	"net/http"

	"github.com/frizerio/salon-booking-service/internal/api/handlers"
	"github.com/frizerio/salon-booking-service/internal/api/middleware"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations
// Клиент получает свои резервации, администратор - резервации своих салонов.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFromContext(r.Context())

	result, err := h.service.List(r.Context(), actor)
	if err != nil {
		h.logger.Error("GET /reservations - Failed to list reservations: user_id=%d, error=%v",
			actor.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations - Reservations retrieved successfully: user_id=%d, count=%d",
		actor.UserID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
