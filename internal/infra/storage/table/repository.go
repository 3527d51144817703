package table

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
	// ErrTableNotFound возвращается, когда стол не найден
	ErrTableNotFound = errors.New("table.repository: table not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("table.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("table.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("table.repository: failed to scan row")
)

// Repository репозиторий для чтения столов ресторанов
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория столов
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает стол по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Table, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "restaurant_id", "name", "capacity", "status", "deposit_amount", "created_at", "updated_at",
	).
		From("restaurant_tables").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanTable(executor.QueryRowContext(ctx, query, args...))
}

// GetByIDs получает несколько столов по списку ID.
// Порядок результата соответствует порядку в БД, не в запросе.
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Table, error) {
	if len(ids) == 0 {
		return []*domain.Table{}, nil
	}
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "restaurant_id", "name", "capacity", "status", "deposit_amount", "created_at", "updated_at",
	).
		From("restaurant_tables").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tables := make([]*domain.Table, 0, len(ids))
	for rows.Next() {
		var t domain.Table
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(
			&t.ID, &t.RestaurantID, &t.Name, &t.Capacity, &t.Status, &t.DepositAmount, &createdAt, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: GetByIDs - scan table: %v", ErrScanRow, err)
		}
		t.CreatedAt = createdAt.Time
		t.UpdatedAt = updatedAt.Time
		tables = append(tables, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - rows error: %v", ErrScanRow, err)
	}
	return tables, nil
}

func (r *Repository) scanTable(row *sql.Row) (*domain.Table, error) {
	var t domain.Table
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(&t.ID, &t.RestaurantID, &t.Name, &t.Capacity, &t.Status, &t.DepositAmount, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTableNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan table: %v", ErrScanRow, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time
	return &t, nil
}
