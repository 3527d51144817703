package create_booking

import (
	"errors"
	"net/http"

	"github.com/tablerow/FRB-ReservationService/internal/api/handlers"
	"github.com/tablerow/FRB-ReservationService/internal/api/middleware"
	"github.com/tablerow/FRB-ReservationService/internal/domain"
	createBooking "github.com/tablerow/FRB-ReservationService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени бронирования, ожидается RFC 3339"
	msgCustomerNotFound   = "клиент не найден"
	msgRestaurantNotFound = "ресторан не найден"
	msgTableNotFound      = "стол не найден"
	msgTableWrongOwner    = "стол принадлежит другому ресторану"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "пользователь не аутентифицирован")
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse booking time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if conflict, ok := domain.AsConflict(err); ok {
			h.logger.Warn("POST /bookings - Conflict [%s] for customer=%d: %s", conflict.Code, customerID, conflict.Message)
			handlers.RespondConflict(w, conflict)
			return
		}

		switch {
		case errors.Is(err, createBooking.ErrCustomerNotFound):
			h.logger.Warn("POST /bookings - Customer not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createBooking.ErrRestaurantNotFound):
			h.logger.Warn("POST /bookings - Restaurant not found: restaurant_id=%d", req.RestaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, createBooking.ErrTableNotFound):
			h.logger.Warn("POST /bookings - Table not found: restaurant_id=%d, tables=%v", req.RestaurantID, req.TableIDs)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, createBooking.ErrTableNotInRestaurant):
			h.logger.Warn("POST /bookings - Table from another restaurant: restaurant_id=%d, tables=%v", req.RestaurantID, req.TableIDs)
			handlers.RespondBadRequest(w, msgTableWrongOwner)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: customer_id=%d, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, customer_id=%d, restaurant_id=%d",
		result.ID, customerID, req.RestaurantID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
