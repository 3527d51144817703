package customer

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
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("customer.repository: customer not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("customer.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("customer.repository: failed to scan row")
)

// Repository репозиторий для чтения клиентов
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "full_name", "email").
		From("customers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Customer
	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.FullName, &c.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan customer: %v", ErrScanRow, err)
	}
	return &c, nil
}
