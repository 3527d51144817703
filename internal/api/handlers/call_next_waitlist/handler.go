package call_next_waitlist

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tablerow/FRB-ReservationService/internal/api/handlers"
)

const msgInvalidRestaurantID = "некорректный ID ресторана"

type Handler struct {
	service WaitlistService
	logger  Logger
}

func NewHandler(service WaitlistService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/restaurants/{id}/waitlist/call-next
//
// Пустая очередь - не ошибка: возвращается 204 без тела.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || restaurantID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	result, err := h.service.CallNext(r.Context(), restaurantID)
	if err != nil {
		h.logger.Error("POST /restaurants/%d/waitlist/call-next - Unexpected error: %v", restaurantID, err)
		handlers.RespondInternalError(w)
		return
	}

	if result == nil {
		h.logger.Info("POST /restaurants/%d/waitlist/call-next - Waitlist is empty", restaurantID)
		handlers.RespondJSON(w, http.StatusNoContent, nil)
		return
	}

	h.logger.Info("POST /restaurants/%d/waitlist/call-next - Entry id=%d called", restaurantID, result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
