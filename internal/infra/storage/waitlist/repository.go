package waitlist

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

// Repository репозиторий для работы с листом ожидания.
// Записи никогда не удаляются - только меняют статус.
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория листа ожидания
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись листа ожидания
func (r *Repository) Create(ctx context.Context, entry *domain.Waitlist) (*domain.Waitlist, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("waitlist").
		Columns(
			"customer_id",
			"restaurant_id",
			"party_size",
			"status",
			"join_time",
			"estimated_wait_minutes",
		).
		Values(
			entry.CustomerID,
			entry.RestaurantID,
			entry.PartySize,
			entry.Status,
			entry.JoinTime,
			entry.EstimatedWaitMinutes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	entry.CreatedAt = createdAt.Time
	entry.UpdatedAt = updatedAt.Time
	return entry, nil
}

// GetByID получает запись листа ожидания по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Waitlist, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := r.selectEntries().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries, err := r.scanEntries(rows)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrEntryNotFound
	}
	return entries[0], nil
}

// ExistsWaiting проверяет, есть ли у клиента запись в статусе WAITING
// в этом ресторане
func (r *Repository) ExistsWaiting(ctx context.Context, customerID, restaurantID int64) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From("waitlist").
		Where(squirrel.Eq{
			"customer_id":   customerID,
			"restaurant_id": restaurantID,
			"status":        domain.WaitlistWaiting,
		}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsWaiting - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsWaiting - execute query: %v", ErrExecQuery, err)
	}
	return true, nil
}

// CountWaiting возвращает число записей в статусе WAITING у ресторана
func (r *Repository) CountWaiting(ctx context.Context, restaurantID int64) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("waitlist").
		Where(squirrel.Eq{
			"restaurant_id": restaurantID,
			"status":        domain.WaitlistWaiting,
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountWaiting - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountWaiting - execute query: %v", ErrExecQuery, err)
	}
	return count, nil
}

// ListWaiting возвращает записи WAITING ресторана, упорядоченные по времени
// присоединения (FIFO). Позиция в очереди вычисляется из этого порядка,
// отдельная колонка ранга не хранится.
func (r *Repository) ListWaiting(ctx context.Context, restaurantID int64) ([]*domain.Waitlist, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := r.selectEntries().
		Where(squirrel.Eq{
			"restaurant_id": restaurantID,
			"status":        domain.WaitlistWaiting,
		}).
		OrderBy("join_time ASC, id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWaiting - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWaiting - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

// FirstWaiting возвращает самую раннюю запись WAITING ресторана.
// Если очередь пуста, возвращает ErrEntryNotFound.
func (r *Repository) FirstWaiting(ctx context.Context, restaurantID int64) (*domain.Waitlist, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := r.selectEntries().
		Where(squirrel.Eq{
			"restaurant_id": restaurantID,
			"status":        domain.WaitlistWaiting,
		}).
		OrderBy("join_time ASC, id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FirstWaiting - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FirstWaiting - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries, err := r.scanEntries(rows)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrEntryNotFound
	}
	return entries[0], nil
}

// UpdateStatusIf атомарно переводит запись из статуса from в статус to.
// Возвращает false, если запись уже не в статусе from (конкурирующий вызов
// успел раньше) - вызывающая сторона решает, ошибка это или нет.
func (r *Repository) UpdateStatusIf(ctx context.Context, id int64, from, to domain.WaitlistStatus) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("waitlist").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: UpdateStatusIf - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: UpdateStatusIf - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: UpdateStatusIf - get rows affected: %v", ErrExecQuery, err)
	}
	return rowsAffected > 0, nil
}

// AddDishes сохраняет предварительно выбранные блюда записи
func (r *Repository) AddDishes(ctx context.Context, waitlistID int64, dishes []domain.WaitlistDish) error {
	if len(dishes) == 0 {
		return nil
	}
	executor := txmanager.GetExecutor(ctx, r.db)

	insert := psqlbuilder.Insert("waitlist_dishes").
		Columns("waitlist_id", "dish_id", "name", "price", "quantity")
	for _, d := range dishes {
		insert = insert.Values(waitlistID, d.DishID, d.Name, d.Price, d.Quantity)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddDishes - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AddDishes - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// AddServices сохраняет предварительно выбранные услуги записи
func (r *Repository) AddServices(ctx context.Context, waitlistID int64, services []domain.WaitlistServiceItem) error {
	if len(services) == 0 {
		return nil
	}
	executor := txmanager.GetExecutor(ctx, r.db)

	insert := psqlbuilder.Insert("waitlist_services").
		Columns("waitlist_id", "service_id", "name", "price", "quantity")
	for _, s := range services {
		insert = insert.Values(waitlistID, s.ServiceID, s.Name, s.Price, s.Quantity)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddServices - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AddServices - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// AddTables сохраняет предварительно выбранные столы записи
func (r *Repository) AddTables(ctx context.Context, waitlistID int64, tableIDs []int64) error {
	if len(tableIDs) == 0 {
		return nil
	}
	executor := txmanager.GetExecutor(ctx, r.db)

	insert := psqlbuilder.Insert("waitlist_tables").Columns("waitlist_id", "table_id")
	for _, tableID := range tableIDs {
		insert = insert.Values(waitlistID, tableID)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddTables - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AddTables - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// GetDishes возвращает предварительно выбранные блюда записи
func (r *Repository) GetDishes(ctx context.Context, waitlistID int64) ([]domain.WaitlistDish, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "waitlist_id", "dish_id", "name", "price", "quantity").
		From("waitlist_dishes").
		Where(squirrel.Eq{"waitlist_id": waitlistID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDishes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDishes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dishes := make([]domain.WaitlistDish, 0)
	for rows.Next() {
		var d domain.WaitlistDish
		if err := rows.Scan(&d.ID, &d.WaitlistID, &d.DishID, &d.Name, &d.Price, &d.Quantity); err != nil {
			return nil, fmt.Errorf("%w: GetDishes - scan dish: %v", ErrScanRow, err)
		}
		dishes = append(dishes, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetDishes - rows error: %v", ErrScanRow, err)
	}
	return dishes, nil
}

// GetServices возвращает предварительно выбранные услуги записи
func (r *Repository) GetServices(ctx context.Context, waitlistID int64) ([]domain.WaitlistServiceItem, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "waitlist_id", "service_id", "name", "price", "quantity").
		From("waitlist_services").
		Where(squirrel.Eq{"waitlist_id": waitlistID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]domain.WaitlistServiceItem, 0)
	for rows.Next() {
		var s domain.WaitlistServiceItem
		if err := rows.Scan(&s.ID, &s.WaitlistID, &s.ServiceID, &s.Name, &s.Price, &s.Quantity); err != nil {
			return nil, fmt.Errorf("%w: GetServices - scan service: %v", ErrScanRow, err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetServices - rows error: %v", ErrScanRow, err)
	}
	return services, nil
}

// GetTableIDs возвращает ID предварительно выбранных столов записи
func (r *Repository) GetTableIDs(ctx context.Context, waitlistID int64) ([]int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("table_id").
		From("waitlist_tables").
		Where(squirrel.Eq{"waitlist_id": waitlistID}).
		OrderBy("table_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetTableIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTableIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tableIDs := make([]int64, 0)
	for rows.Next() {
		var tableID int64
		if err := rows.Scan(&tableID); err != nil {
			return nil, fmt.Errorf("%w: GetTableIDs - scan table_id: %v", ErrScanRow, err)
		}
		tableIDs = append(tableIDs, tableID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetTableIDs - rows error: %v", ErrScanRow, err)
	}
	return tableIDs, nil
}

func (r *Repository) selectEntries() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"customer_id",
		"restaurant_id",
		"party_size",
		"status",
		"join_time",
		"estimated_wait_minutes",
		"created_at",
		"updated_at",
	).From("waitlist")
}

func (r *Repository) scanEntries(rows *sql.Rows) ([]*domain.Waitlist, error) {
	entries := make([]*domain.Waitlist, 0)
	for rows.Next() {
		var e domain.Waitlist
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(
			&e.ID,
			&e.CustomerID,
			&e.RestaurantID,
			&e.PartySize,
			&e.Status,
			&e.JoinTime,
			&e.EstimatedWaitMinutes,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanEntries - scan row: %v", ErrScanRow, err)
		}
		e.CreatedAt = createdAt.Time
		e.UpdatedAt = updatedAt.Time
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEntries - rows error: %v", ErrScanRow, err)
	}
	return entries, nil
}
