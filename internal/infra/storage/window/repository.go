package window

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

const table = "windows"

// Код ошибки PostgreSQL для нарушения уникального ограничения
const pqUniqueViolation = "23505"

var columns = []string{
	"id",
	"salon_id",
	"worker_id",
	"date",
	"start_time",
	"end_time",
	"occupied",
}

// Repository репозиторий для работы с окнами (терминами)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория окон
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает окно по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Window, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate получает окно по ID с эксклюзивной блокировкой строки
// (SELECT ... FOR UPDATE). Это точка сериализации конкурентных бронирований
// одного окна; вызывать можно только внутри транзакции.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Window, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id int64, forUpdate bool) (*domain.Window, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanWindow(executor.QueryRowContext(ctx, query, args...))
}

// Create создает новое окно.
// Возвращает ErrDuplicateWindow, если у работника уже есть окно с таким
// интервалом на эту дату (уникальное ограничение на уровне БД).
func (r *Repository) Create(ctx context.Context, w *domain.Window) (*domain.Window, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("salon_id", "worker_id", "date", "start_time", "end_time", "occupied").
		Values(w.SalonID, w.WorkerID, w.Date, w.StartTime, w.EndTime, w.Occupied).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&w.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrDuplicateWindow
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return w, nil
}

// FindByWorkerInterval получает окно работника на точный интервал даты
func (r *Repository) FindByWorkerInterval(ctx context.Context, workerID int64, date time.Time, iv domain.Interval) (*domain.Window, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{
			"worker_id":  workerID,
			"date":       date,
			"start_time": iv.Start,
			"end_time":   iv.End,
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByWorkerInterval - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanWindow(executor.QueryRowContext(ctx, query, args...))
}

// FindOrCreate находит окно работника на точный интервал или создает новое
// свободное окно. Вызывается внутри открытой транзакции, поэтому проигравший
// гонку insert не должен падать с 23505: ошибка оператора прервала бы всю
// транзакцию и перечитать строку победителя было бы уже нельзя. ON CONFLICT
// DO NOTHING возвращает ноль строк вместо ошибки, транзакция остаётся живой,
// и проигравший перечитывает строку победителя обычным select.
func (r *Repository) FindOrCreate(ctx context.Context, salonID, workerID int64, date time.Time, iv domain.Interval) (*domain.Window, error) {
	existing, err := r.FindByWorkerInterval(ctx, workerID, date, iv)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrWindowNotFound) {
		return nil, err
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("salon_id", "worker_id", "date", "start_time", "end_time", "occupied").
		Values(salonID, workerID, date, iv.Start, iv.End, false).
		Suffix("ON CONFLICT (worker_id, date, start_time, end_time) DO NOTHING RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOrCreate - build insert query: %v", ErrBuildQuery, err)
	}

	w := &domain.Window{
		SalonID:   salonID,
		WorkerID:  workerID,
		Date:      date,
		StartTime: iv.Start,
		EndTime:   iv.End,
		Occupied:  false,
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&w.ID)
	if err == nil {
		return w, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: FindOrCreate - execute insert: %v", ErrExecQuery, err)
	}

	// Ноль строк от RETURNING: конкурент создал окно первым
	return r.FindByWorkerInterval(ctx, workerID, date, iv)
}

// OccupiedWorkerIDs получает ID работников, у которых занято окно на точный
// интервал в салоне на указанную дату
func (r *Repository) OccupiedWorkerIDs(ctx context.Context, salonID int64, date time.Time, iv domain.Interval) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("worker_id").
		From(table).
		Where(squirrel.Eq{
			"salon_id":   salonID,
			"date":       date,
			"start_time": iv.Start,
			"end_time":   iv.End,
			"occupied":   true,
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: OccupiedWorkerIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: OccupiedWorkerIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: OccupiedWorkerIDs - scan worker_id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: OccupiedWorkerIDs - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}

// CountOccupiedByInterval получает количество занятых окон салона на дату,
// сгруппированное по интервалу
func (r *Repository) CountOccupiedByInterval(ctx context.Context, salonID int64, date time.Time) (map[domain.Interval]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("start_time", "end_time", "COUNT(id)").
		From(table).
		Where(squirrel.Eq{
			"salon_id": salonID,
			"date":     date,
			"occupied": true,
		}).
		GroupBy("start_time", "end_time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountOccupiedByInterval - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountOccupiedByInterval - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[domain.Interval]int)
	for rows.Next() {
		var start, end types.TimeString
		var count int
		if err := rows.Scan(&start, &end, &count); err != nil {
			return nil, fmt.Errorf("%w: CountOccupiedByInterval - scan row: %v", ErrScanRow, err)
		}
		counts[domain.Interval{Start: start, End: end}] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountOccupiedByInterval - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// SetOccupied устанавливает флаг занятости окна.
// Идемпотентна: повторная установка того же значения не ошибка.
func (r *Repository) SetOccupied(ctx context.Context, id int64, occupied bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("occupied", occupied).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetOccupied - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetOccupied - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetOccupied - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrWindowNotFound
	}

	return nil
}

// ListBySalonDate получает окна салона на дату, опционально только свободные.
// Порядок: по времени начала, затем по работнику.
func (r *Repository) ListBySalonDate(ctx context.Context, salonID int64, date time.Time, onlyFree bool) ([]*domain.Window, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"salon_id": salonID, "date": date}).
		OrderBy("start_time ASC", "worker_id ASC")

	if onlyFree {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"occupied": false})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySalonDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySalonDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	windows := make([]*domain.Window, 0)
	for rows.Next() {
		var w domain.Window
		if err := rows.Scan(&w.ID, &w.SalonID, &w.WorkerID, &w.Date, &w.StartTime, &w.EndTime, &w.Occupied); err != nil {
			return nil, fmt.Errorf("%w: ListBySalonDate - scan row: %v", ErrScanRow, err)
		}
		windows = append(windows, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBySalonDate - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}

func (r *Repository) scanWindow(row *sql.Row) (*domain.Window, error) {
	var w domain.Window
	err := row.Scan(
		&w.ID,
		&w.SalonID,
		&w.WorkerID,
		&w.Date,
		&w.StartTime,
		&w.EndTime,
		&w.Occupied,
	)

	if err == sql.ErrNoRows {
		return nil, ErrWindowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanWindow - scan window: %v", ErrScanRow, err)
	}

	return &w, nil
}
