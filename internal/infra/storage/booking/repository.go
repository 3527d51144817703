package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/tablerow/FRB-ReservationService/internal/domain"
	"github.com/tablerow/FRB-ReservationService/pkg/psqlbuilder"
	"github.com/tablerow/FRB-ReservationService/pkg/txmanager"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте есть активная транзакция, использует её - путь создания
// бронирования всегда выполняется внутри сериализуемой транзакции вместе
// с проверкой пересечений (см. usecase create_booking).
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"customer_id",
			"restaurant_id",
			"booking_time",
			"duration_minutes",
			"guest_count",
			"status",
			"deposit_amount",
			"total_amount",
			"notes",
		).
		Values(
			booking.CustomerID,
			booking.RestaurantID,
			booking.BookingTime,
			booking.DurationMinutes,
			booking.GuestCount,
			booking.Status,
			booking.DepositAmount,
			booking.TotalAmount,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// AssignTables привязывает таблицы к бронированию
func (r *Repository) AssignTables(ctx context.Context, bookingID int64, tableIDs []int64) error {
	if len(tableIDs) == 0 {
		return nil
	}
	executor := txmanager.GetExecutor(ctx, r.db)

	insert := psqlbuilder.Insert("booking_tables").Columns("booking_id", "table_id")
	for _, tableID := range tableIDs {
		insert = insert.Values(bookingID, tableID)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: AssignTables - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AssignTables - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// AddDishes сохраняет денормализованные позиции меню бронирования
func (r *Repository) AddDishes(ctx context.Context, bookingID int64, dishes []domain.BookingDish) error {
	if len(dishes) == 0 {
		return nil
	}
	executor := txmanager.GetExecutor(ctx, r.db)

	insert := psqlbuilder.Insert("booking_dishes").
		Columns("booking_id", "dish_id", "name", "price", "quantity")
	for _, d := range dishes {
		insert = insert.Values(bookingID, d.DishID, d.Name, d.Price, d.Quantity)
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

// AddServices сохраняет денормализованные сервисные позиции бронирования
func (r *Repository) AddServices(ctx context.Context, bookingID int64, services []domain.BookingServiceItem) error {
	if len(services) == 0 {
		return nil
	}
	executor := txmanager.GetExecutor(ctx, r.db)

	insert := psqlbuilder.Insert("booking_services").
		Columns("booking_id", "service_id", "name", "price", "quantity")
	for _, s := range services {
		insert = insert.Values(bookingID, s.ServiceID, s.Name, s.Price, s.Quantity)
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

// GetByID получает бронирование по ID вместе со списком привязанных столов
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"customer_id",
		"restaurant_id",
		"booking_time",
		"duration_minutes",
		"guest_count",
		"status",
		"deposit_amount",
		"total_amount",
		"notes",
		"created_at",
		"updated_at",
	).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.CustomerID,
		&booking.RestaurantID,
		&booking.BookingTime,
		&booking.DurationMinutes,
		&booking.GuestCount,
		&booking.Status,
		&booking.DepositAmount,
		&booking.TotalAmount,
		&booking.Notes,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	tableIDs, err := r.getTableIDs(ctx, executor, id)
	if err != nil {
		return nil, err
	}
	booking.TableIDs = tableIDs

	return &booking, nil
}

// ExistsOverlap проверяет, пересекается ли интервал [start, end] с каким-либо
// активным бронированием указанного стола. excludeBookingID исключает одно
// бронирование из проверки (используется при обновлении).
//
// Корректность под конкурентной нагрузкой обеспечивается сериализуемой
/// транзакцией вызывающей стороны: внутри транзакции найденные строки
// блокируются через FOR UPDATE, а serialization failure при одновременной
// вставке транслируется в повтор транзакции (см. pkg/txmanager).
func (r *Repository) ExistsOverlap(ctx context.Context, tableID int64, start, end time.Time, excludeBookingID *int64) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	inactive := make([]string, len(domain.InactiveBookingStatuses))
	for i, s := range domain.InactiveBookingStatuses {
		inactive[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select("b.id").
		From("booking_tables bt").
		Join("bookings b ON b.id = bt.booking_id").
		Where(squirrel.Eq{"bt.table_id": tableID}).
		Where(squirrel.NotEq{"b.status": inactive}).
		// Строгие неравенства: существующий интервал [booking_time, booking_time+duration)
		// против проверяемого окна [start, end]
		Where(squirrel.Lt{"b.booking_time": end}).
		Where(squirrel.Expr("b.booking_time + make_interval(mins => b.duration_minutes) > ?", start)).
		Limit(1)

	if excludeBookingID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"b.id": *excludeBookingID})
	}

	// Внутри транзакции блокируем конфликтующее бронирование
	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF b")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsOverlap - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsOverlap - execute query: %v", ErrExecQuery, err)
	}
	return true, nil
}

// getTableIDs возвращает ID столов, привязанных к бронированию
func (r *Repository) getTableIDs(ctx context.Context, executor DBExecutor, bookingID int64) ([]int64, error) {
	query, args, err := psqlbuilder.Select("table_id").
		From("booking_tables").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("table_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getTableIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getTableIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tableIDs := make([]int64, 0)
	for rows.Next() {
		var tableID int64
		if err := rows.Scan(&tableID); err != nil {
			return nil, fmt.Errorf("%w: getTableIDs - scan table_id: %v", ErrScanRow, err)
		}
		tableIDs = append(tableIDs, tableID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getTableIDs - rows error: %v", ErrScanRow, err)
	}
	return tableIDs, nil
}
