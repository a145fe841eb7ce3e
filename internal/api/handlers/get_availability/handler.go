package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/frizerio/salon-booking-service/internal/api/handlers"
	"github.com/frizerio/salon-booking-service/internal/api/middleware"
	getAvailability "github.com/frizerio/salon-booking-service/internal/usecase/get_availability"
)

const (
	msgInvalidSalonID = "некорректный ID салона"
	msgMissingDate    = "дата обязательна"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSalonNotFound  = "салон не найден"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/availability
// Query params: date (required, YYYY-MM-DD), onlyFree (optional, "true")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFromContext(r.Context())

	vars := mux.Vars(r)
	salonIDStr := vars["salonId"]

	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/availability - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /salons/{id}/availability - Missing date: salon_id=%d", salonID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	onlyFree := r.URL.Query().Get("onlyFree") == "true"

	useCaseReq, err := ToUseCaseRequest(actor, salonID, dateStr, onlyFree)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrSalonNotFound):
			h.logger.Warn("GET /salons/{id}/availability - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /salons/{id}/availability - Invalid input: salon_id=%d, error=%v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /salons/{id}/availability - Failed to get availability: salon_id=%d, error=%v",
				salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /salons/{id}/availability - Availability retrieved: salon_id=%d, date=%s, windows_count=%d",
		salonID, dateStr, len(result.Windows))
	handlers.RespondJSON(w, http.StatusOK, response)
}
