package cancel_waitlist

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tablerow/FRB-ReservationService/internal/api/handlers"
	"github.com/tablerow/FRB-ReservationService/internal/api/middleware"
	"github.com/tablerow/FRB-ReservationService/internal/domain"
	waitlistService "github.com/tablerow/FRB-ReservationService/internal/service/waitlist"
)

const (
	msgInvalidEntryID = "некорректный ID записи листа ожидания"
	msgEntryNotFound  = "запись листа ожидания не найдена"
	msgNotOwner       = "запись принадлежит другому клиенту"
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

// Handle DELETE /api/v1/waitlist/{id}
//
// Отмена переводит запись в CANCELLED; строка остается в хранилище.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "пользователь не аутентифицирован")
		return
	}

	entryID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || entryID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidEntryID)
		return
	}

	if err := h.service.Cancel(r.Context(), entryID, customerID); err != nil {
		if conflict, ok := domain.AsConflict(err); ok {
			h.logger.Warn("DELETE /waitlist/%d - Conflict [%s]: %s", entryID, conflict.Code, conflict.Message)
			handlers.RespondConflict(w, conflict)
			return
		}

		switch {
		case errors.Is(err, waitlistService.ErrEntryNotFound):
			h.logger.Warn("DELETE /waitlist/%d - Entry not found", entryID)
			handlers.RespondNotFound(w, msgEntryNotFound)

		case errors.Is(err, waitlistService.ErrNotOwner):
			h.logger.Warn("DELETE /waitlist/%d - Access denied for customer=%d", entryID, customerID)
			handlers.RespondForbidden(w, msgNotOwner)

		case errors.Is(err, waitlistService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("DELETE /waitlist/%d - Unexpected error: %v", entryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /waitlist/%d - Entry cancelled by customer=%d", entryID, customerID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
