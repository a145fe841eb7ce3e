package salon

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/frizerio/salon-booking-service/internal/domain"
	"github.com/frizerio/salon-booking-service/pkg/dbmetrics"
	"github.com/frizerio/salon-booking-service/pkg/psqlbuilder"
)

const table = "salons"

var columns = []string{
	"id",
	"owner_id",
	"name",
	"address",
	"description",
	"active",
	"work_from",
	"work_to",
	"slot_duration_minutes",
}

// Repository репозиторий для работы с салонами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория салонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает салон по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Salon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Salon
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.OwnerID,
		&s.Name,
		&s.Address,
		&s.Description,
		&s.Active,
		&s.WorkFrom,
		&s.WorkTo,
		&s.SlotDurationMinutes,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSalonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan salon: %v", ErrScanRow, err)
	}

	return &s, nil
}
