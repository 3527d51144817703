package restaurant

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/tablerow/FRB-ReservationService/internal/domain"
	"github.com/tablerow/FRB-ReservationService/pkg/psqlbuilder"
	"github.com/tablerow/FRB-ReservationService/pkg/txmanager"
)

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("restaurant.repository: restaurant not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("restaurant.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("restaurant.repository: failed to scan row")
)

// Repository репозиторий для чтения ресторанов
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресторанов
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает ресторан по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "opening_hours", "created_at", "updated_at",
	).
		From("restaurants").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var rest domain.Restaurant
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rest.ID, &rest.Name, &rest.OpeningHours, &createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan restaurant: %v", ErrScanRow, err)
	}

	rest.CreatedAt = createdAt.Time
	rest.UpdatedAt = updatedAt.Time
	return &rest, nil
}
