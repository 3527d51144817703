package get_waitlist_entry

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tablerow/FRB-ReservationService/internal/api/handlers"
	waitlistService "github.com/tablerow/FRB-ReservationService/internal/service/waitlist"
)

const (
	msgInvalidEntryID = "некорректный ID записи листа ожидания"
	msgEntryNotFound  = "запись листа ожидания не найдена"
	msgInvalidInput   = "некорректные входные данные"
)

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

// Handle GET /api/v1/waitlist/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	entryID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || entryID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidEntryID)
		return
	}

	result, err := h.service.GetEntry(r.Context(), entryID)
	if err != nil {
		switch {
		case errors.Is(err, waitlistService.ErrEntryNotFound):
			h.logger.Warn("GET /waitlist/%d - Entry not found", entryID)
			handlers.RespondNotFound(w, msgEntryNotFound)

		case errors.Is(err, waitlistService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /waitlist/%d - Unexpected error: %v", entryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /waitlist/%d - Entry fetched, position=%d", entryID, result.Position)
	handlers.RespondJSON(w, http.StatusOK, result)
}
