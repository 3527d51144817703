package join_waitlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/tablerow/FRB-ReservationService/internal/domain"
	customerRepo "github.com/tablerow/FRB-ReservationService/internal/infra/storage/customer"
	restaurantRepo "github.com/tablerow/FRB-ReservationService/internal/infra/storage/restaurant"
)

// UseCase use case постановки клиента в лист ожидания ресторана
type UseCase struct {
	waitlistRepo   WaitlistRepository
	restaurantRepo RestaurantRepository
	customerRepo   CustomerRepository
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	waitlistRepo WaitlistRepository,
	restaurantRepo RestaurantRepository,
	customerRepo CustomerRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		waitlistRepo:   waitlistRepo,
		restaurantRepo: restaurantRepo,
		customerRepo:   customerRepo,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute ставит клиента в очередь ожидания ресторана.
// Позиция вычисляется как число WAITING записей + 1, оценка ожидания -
// 30 минут на позицию. Повторная постановка при живой WAITING записи
// отклоняется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("JoinWaitlist: customer=%d, restaurant=%d, partySize=%d",
		req.CustomerID, req.RestaurantID, req.PartySize)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("JoinWaitlist: validation failed: %v", err)
		return nil, err
	}
	if err := validatePartySize(req.PartySize); err != nil {
		uc.logger.Warn("JoinWaitlist: party size rejected: %v", err)
		return nil, err
	}

	if _, err := uc.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}
	if _, err := uc.restaurantRepo.GetByID(ctx, req.RestaurantID); err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	var created *domain.Waitlist
	var position int

	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		exists, err := uc.waitlistRepo.ExistsWaiting(ctx, req.CustomerID, req.RestaurantID)
		if err != nil {
			return fmt.Errorf("%w: failed to check existing entry: %v", ErrInternal, err)
		}
		if exists {
			return domain.NewConflict(domain.ConflictAlreadyWaitlisted,
				"customer %d is already waiting at restaurant %d", req.CustomerID, req.RestaurantID)
		}

		count, err := uc.waitlistRepo.CountWaiting(ctx, req.RestaurantID)
		if err != nil {
			return fmt.Errorf("%w: failed to count waiting entries: %v", ErrInternal, err)
		}
		position = count + 1

		entry := &domain.Waitlist{
			CustomerID:           req.CustomerID,
			RestaurantID:         req.RestaurantID,
			PartySize:            req.PartySize,
			Status:               domain.WaitlistWaiting,
			JoinTime:             uc.timeProvider.Now(),
			EstimatedWaitMinutes: position * domain.WaitMinutesPerPosition,
		}

		created, err = uc.waitlistRepo.Create(ctx, entry)
		if err != nil {
			return fmt.Errorf("%w: failed to create waitlist entry: %v", ErrInternal, err)
		}

		if err := uc.waitlistRepo.AddDishes(ctx, created.ID, dishLines(created.ID, req.Dishes)); err != nil {
			return fmt.Errorf("%w: failed to add dishes: %v", ErrInternal, err)
		}
		if err := uc.waitlistRepo.AddServices(ctx, created.ID, serviceLines(created.ID, req.Services)); err != nil {
			return fmt.Errorf("%w: failed to add services: %v", ErrInternal, err)
		}
		if err := uc.waitlistRepo.AddTables(ctx, created.ID, req.TableIDs); err != nil {
			return fmt.Errorf("%w: failed to add tables: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("JoinWaitlist: entry id=%d created, position=%d, wait=%d min",
		created.ID, position, created.EstimatedWaitMinutes)

	return responseFromEntry(created, position), nil
}

func dishLines(waitlistID int64, items []LineItem) []domain.WaitlistDish {
	dishes := make([]domain.WaitlistDish, 0, len(items))
	for _, item := range items {
		dishes = append(dishes, domain.WaitlistDish{
			WaitlistID: waitlistID,
			DishID:     item.ID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
		})
	}
	return dishes
}

func serviceLines(waitlistID int64, items []LineItem) []domain.WaitlistServiceItem {
	services := make([]domain.WaitlistServiceItem, 0, len(items))
	for _, item := range items {
		services = append(services, domain.WaitlistServiceItem{
			WaitlistID: waitlistID,
			ServiceID:  item.ID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
		})
	}
	return services
}
