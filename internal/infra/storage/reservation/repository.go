package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/frizerio/salon-booking-service/internal/domain"
	"github.com/frizerio/salon-booking-service/pkg/dbmetrics"
	"github.com/frizerio/salon-booking-service/pkg/psqlbuilder"
	"github.com/frizerio/salon-booking-service/pkg/types"
)

const table = "reservations"

// Код ошибки PostgreSQL для нарушения уникального ограничения
const pqUniqueViolation = "23505"

var columns = []string{
	"id",
	"customer_id",
	"window_id",
	"status",
	"note",
	"created_at",
}

var detailsColumns = []string{
	"r.id",
	"r.customer_id",
	"r.window_id",
	"r.status",
	"r.note",
	"r.created_at",
	"s.id",
	"s.name",
	"wk.id",
	"wk.full_name",
	"w.date",
	"w.start_time",
	"w.end_time",
}

// Repository репозиторий для работы с резервациями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория резерваций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую резервацию
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("customer_id", "window_id", "status", "note").
		Values(res.CustomerID, res.WindowID, res.Status, res.Note).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrDuplicateReservation
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	return res, nil
}

// GetByID получает резервацию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanReservation(executor.QueryRowContext(ctx, query, args...))
}

// GetByWindowIDForUpdate получает резервацию окна с эксклюзивной блокировкой
// строки. Окно имеет не более одной резервации (one-to-one); вызывать можно
// только внутри транзакции.
func (r *Repository) GetByWindowIDForUpdate(ctx context.Context, windowID int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"window_id": windowID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWindowIDForUpdate - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanReservation(executor.QueryRowContext(ctx, query, args...))
}

// Rebook переиспользует отменённую резервацию окна: перезаписывает клиента
// и заметку, возвращает статус confirmed
func (r *Repository) Rebook(ctx context.Context, id int64, customerID int64, note string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("customer_id", customerID).
		Set("status", domain.StatusConfirmed).
		Set("note", note).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Rebook - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Rebook")
}

// UpdateStatus обновляет статус резервации
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateStatus")
}

// Delete удаляет резервацию (физическое удаление).
// Окно резервации остаётся и освобождается на уровне сервиса.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Delete")
}

// ExistsConfirmedAt проверяет, держит ли клиент подтверждённую резервацию
// в салоне на эту дату и время начала. Работник и время конца намеренно
// не учитываются: клиент не может занимать один слот дважды даже у разных
// работников.
func (r *Repository) ExistsConfirmedAt(ctx context.Context, customerID, salonID int64, date time.Time, start types.TimeString) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(table + " r").
		Join("windows w ON w.id = r.window_id").
		Where(squirrel.Eq{
			"r.customer_id": customerID,
			"r.status":      domain.StatusConfirmed,
			"w.salon_id":    salonID,
			"w.date":        date,
			"w.start_time":  start,
		}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsConfirmedAt - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsConfirmedAt - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// ListDetailsByCustomer получает резервации клиента с данными окна и салона,
// сначала новые
func (r *Repository) ListDetailsByCustomer(ctx context.Context, customerID int64) ([]*domain.ReservationDetails, error) {
	return r.listDetails(ctx, squirrel.Eq{"r.customer_id": customerID})
}

// ListDetailsBySalonOwner получает резервации во всех салонах, которыми
// владеет администратор, сначала новые
func (r *Repository) ListDetailsBySalonOwner(ctx context.Context, ownerID int64) ([]*domain.ReservationDetails, error) {
	return r.listDetails(ctx, squirrel.Eq{"s.owner_id": ownerID})
}

func (r *Repository) listDetails(ctx context.Context, where squirrel.Eq) ([]*domain.ReservationDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(detailsColumns...).
		From(table + " r").
		Join("windows w ON w.id = r.window_id").
		Join("salons s ON s.id = w.salon_id").
		Join("workers wk ON wk.id = w.worker_id").
		Where(where).
		OrderBy("r.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: listDetails - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listDetails - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	details := make([]*domain.ReservationDetails, 0)
	for rows.Next() {
		var d domain.ReservationDetails
		var createdAt sql.NullTime

		err := rows.Scan(
			&d.ID,
			&d.CustomerID,
			&d.WindowID,
			&d.Status,
			&d.Note,
			&createdAt,
			&d.SalonID,
			&d.SalonName,
			&d.WorkerID,
			&d.WorkerName,
			&d.Date,
			&d.StartTime,
			&d.EndTime,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: listDetails - scan row: %v", ErrScanRow, err)
		}

		d.CreatedAt = createdAt.Time
		details = append(details, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listDetails - rows error: %v", ErrScanRow, err)
	}

	return details, nil
}

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

func (r *Repository) scanReservation(row *sql.Row) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.CustomerID,
		&res.WindowID,
		&res.Status,
		&res.Note,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanReservation - scan reservation: %v", ErrScanRow, err)
	}

	res.CreatedAt = createdAt.Time
	return &res, nil
}
