package get_salon_windows

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/frizerio/salon-booking-service/internal/api/handlers"
	"github.com/frizerio/salon-booking-service/internal/api/middleware"
	"github.com/frizerio/salon-booking-service/internal/domain"
	"github.com/frizerio/salon-booking-service/internal/service/windows"
)

const (
	msgInvalidSalonID = "некорректный ID салона"
	msgMissingDate    = "дата обязательна"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSalonNotFound  = "салон не найден"
)

type Handler struct {
	service WindowService
	logger  Logger
}

func NewHandler(service WindowService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/windows
// Query params: date (required, YYYY-MM-DD), onlyFree (optional, "true")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFromContext(r.Context())

	vars := mux.Vars(r)
	salonIDStr := vars["salonId"]

	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/windows - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /salons/{id}/windows - Missing date: salon_id=%d", salonID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/windows - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	onlyFree := r.URL.Query().Get("onlyFree") == "true"

	result, err := h.service.ListBySalonDate(r.Context(), salonID, date, onlyFree, actor)
	if err != nil {
		switch {
		case errors.Is(err, windows.ErrSalonNotFound):
			h.logger.Warn("GET /salons/{id}/windows - Salon not found: salon_id=%d, user_id=%d",
				salonID, actor.UserID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		default:
			h.logger.Error("GET /salons/{id}/windows - Failed to list windows: salon_id=%d, error=%v",
				salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{id}/windows - Windows retrieved successfully: salon_id=%d, date=%s, count=%d",
		salonID, dateStr, len(result.Windows))
	handlers.RespondJSON(w, http.StatusOK, result)
}
