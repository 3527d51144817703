package confirm_waitlist

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tablerow/FRB-ReservationService/internal/api/handlers"
	"github.com/tablerow/FRB-ReservationService/internal/domain"
	confirmWaitlist "github.com/tablerow/FRB-ReservationService/internal/usecase/confirm_waitlist"
	createBooking "github.com/tablerow/FRB-ReservationService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidEntryID     = "некорректный ID записи листа ожидания"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC 3339"
	msgEntryNotFound      = "запись листа ожидания не найдена"
	msgNotOwner           = "запись принадлежит другому ресторану"
	msgTableNotFound      = "стол не найден"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase ConfirmWaitlistUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmWaitlistUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/waitlist/{id}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	entryID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || entryID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidEntryID)
		return
	}

	var req ConfirmWaitlistRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /waitlist/%d/confirm - Invalid request body: %v", entryID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(entryID)
	if err != nil {
		h.logger.Warn("POST /waitlist/%d/confirm - Failed to parse confirmed time: %v", entryID, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if conflict, ok := domain.AsConflict(err); ok {
			h.logger.Warn("POST /waitlist/%d/confirm - Conflict [%s]: %s", entryID, conflict.Code, conflict.Message)
			handlers.RespondConflict(w, conflict)
			return
		}

		switch {
		case errors.Is(err, confirmWaitlist.ErrEntryNotFound):
			h.logger.Warn("POST /waitlist/%d/confirm - Entry not found", entryID)
			handlers.RespondNotFound(w, msgEntryNotFound)

		case errors.Is(err, confirmWaitlist.ErrNotOwner):
			h.logger.Warn("POST /waitlist/%d/confirm - Entry belongs to another restaurant: restaurant_id=%d",
				entryID, req.RestaurantID)
			handlers.RespondForbidden(w, msgNotOwner)

		case errors.Is(err, createBooking.ErrTableNotFound):
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, confirmWaitlist.ErrInvalidInput), errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /waitlist/%d/confirm - Unexpected error: %v", entryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /waitlist/%d/confirm - Booking id=%d created, entry seated", entryID, result.BookingID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
