package worker

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/frizerio/salon-booking-service/internal/domain"
	"github.com/frizerio/salon-booking-service/pkg/dbmetrics"
	"github.com/frizerio/salon-booking-service/pkg/psqlbuilder"
)

const table = "workers"

var columns = []string{
	"id",
	"salon_id",
	"full_name",
	"active",
}

// Repository репозиторий для работы с работниками салонов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория работников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает работника по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Worker, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var w domain.Worker
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&w.ID,
		&w.SalonID,
		&w.FullName,
		&w.Active,
	)

	if err == sql.ErrNoRows {
		return nil, ErrWorkerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan worker: %v", ErrScanRow, err)
	}

	return &w, nil
}

// ListActiveBySalon получает активных работников салона.
// Порядок по возрастанию ID фиксирован: от него зависит детерминированность
// выбора работника при бронировании.
func (r *Repository) ListActiveBySalon(ctx context.Context, salonID int64) ([]*domain.Worker, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"salon_id": salonID, "active": true}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveBySalon - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveBySalon - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	workers := make([]*domain.Worker, 0)
	for rows.Next() {
		var w domain.Worker
		if err := rows.Scan(&w.ID, &w.SalonID, &w.FullName, &w.Active); err != nil {
			return nil, fmt.Errorf("%w: ListActiveBySalon - scan row: %v", ErrScanRow, err)
		}
		workers = append(workers, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveBySalon - rows error: %v", ErrScanRow, err)
	}

	return workers, nil
}

// CountActiveBySalon получает количество активных работников салона
func (r *Repository) CountActiveBySalon(ctx context.Context, salonID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(id)").
		From(table).
		Where(squirrel.Eq{"salon_id": salonID, "active": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveBySalon - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveBySalon - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}
