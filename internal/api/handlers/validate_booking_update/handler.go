package validate_booking_update

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tablerow/FRB-ReservationService/internal/api/handlers"
	"github.com/tablerow/FRB-ReservationService/internal/api/middleware"
	"github.com/tablerow/FRB-ReservationService/internal/domain"
	createBooking "github.com/tablerow/FRB-ReservationService/internal/usecase/create_booking"
	validateUpdate "github.com/tablerow/FRB-ReservationService/internal/usecase/validate_booking_update"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidTime        = "некорректный формат времени бронирования, ожидается RFC 3339"
	msgBookingNotFound    = "бронирование не найдено"
	msgNotOwner           = "бронирование принадлежит другому клиенту"
	msgCustomerNotFound   = "клиент не найден"
	msgRestaurantNotFound = "ресторан не найден"
	msgTableNotFound      = "стол не найден"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase ValidateBookingUpdateUseCase
	logger  Logger
}

func NewHandler(useCase ValidateBookingUpdateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{id}/validate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "пользователь не аутентифицирован")
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req ValidateBookingUpdateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/%d/validate - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /bookings/%d/validate - Failed to parse booking time: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	if err := h.useCase.Execute(r.Context(), bookingID, useCaseReq, customerID); err != nil {
		if conflict, ok := domain.AsConflict(err); ok {
			h.logger.Warn("POST /bookings/%d/validate - Conflict [%s]: %s", bookingID, conflict.Code, conflict.Message)
			handlers.RespondConflict(w, conflict)
			return
		}

		switch {
		case errors.Is(err, validateUpdate.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/%d/validate - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, validateUpdate.ErrNotOwner):
			h.logger.Warn("POST /bookings/%d/validate - Access denied for customer=%d", bookingID, customerID)
			handlers.RespondForbidden(w, msgNotOwner)

		case errors.Is(err, createBooking.ErrCustomerNotFound):
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createBooking.ErrRestaurantNotFound):
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, createBooking.ErrTableNotFound):
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/%d/validate - Unexpected error: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/%d/validate - Update is conflict-free for customer=%d", bookingID, customerID)
	handlers.RespondJSON(w, http.StatusOK, ValidateBookingUpdateResponse{Valid: true})
}
