package join_waitlist

import (
	"errors"
	"net/http"

	"github.com/tablerow/FRB-ReservationService/internal/api/handlers"
	"github.com/tablerow/FRB-ReservationService/internal/api/middleware"
	"github.com/tablerow/FRB-ReservationService/internal/domain"
	joinWaitlist "github.com/tablerow/FRB-ReservationService/internal/usecase/join_waitlist"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgCustomerNotFound   = "клиент не найден"
	msgRestaurantNotFound = "ресторан не найден"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase JoinWaitlistUseCase
	logger  Logger
}

func NewHandler(useCase JoinWaitlistUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/waitlist
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "пользователь не аутентифицирован")
		return
	}

	var req JoinWaitlistRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /waitlist - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(customerID))
	if err != nil {
		if conflict, ok := domain.AsConflict(err); ok {
			h.logger.Warn("POST /waitlist - Conflict [%s] for customer=%d: %s", conflict.Code, customerID, conflict.Message)
			handlers.RespondConflict(w, conflict)
			return
		}

		switch {
		case errors.Is(err, joinWaitlist.ErrCustomerNotFound):
			h.logger.Warn("POST /waitlist - Customer not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, joinWaitlist.ErrRestaurantNotFound):
			h.logger.Warn("POST /waitlist - Restaurant not found: restaurant_id=%d", req.RestaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, joinWaitlist.ErrInvalidInput):
			h.logger.Warn("POST /waitlist - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /waitlist - Failed to join waitlist: customer_id=%d, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /waitlist - Entry created: entry_id=%d, customer_id=%d, position=%d",
		result.ID, customerID, result.Position)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
