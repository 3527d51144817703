package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/tablerow/FRB-ReservationService/internal/api/handlers"
	"github.com/tablerow/FRB-ReservationService/internal/domain"
	getSlots "github.com/tablerow/FRB-ReservationService/internal/usecase/get_available_slots"
)

const (
	msgInvalidTableID     = "некорректный ID стола"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgTableNotFound      = "стол не найден"
	msgRestaurantNotFound = "ресторан не найден"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tables/{id}/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tableID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || tableID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /tables/%d/slots - Invalid date: %v", tableID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getSlots.Request{
		TableID: tableID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getSlots.ErrTableNotFound):
			h.logger.Warn("GET /tables/%d/slots - Table not found", tableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, getSlots.ErrRestaurantNotFound):
			h.logger.Warn("GET /tables/%d/slots - Restaurant not found", tableID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, getSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /tables/%d/slots - Unexpected error: %v", tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tables/%d/slots - %d slots returned for date=%s",
		tableID, len(result.Slots), result.Date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
