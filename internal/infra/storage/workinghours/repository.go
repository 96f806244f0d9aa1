package workinghours

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий рабочих часов сотрудников
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByStaffID получает рабочие часы сотрудника.
// Если их нет, возвращает ErrWorkingHoursNotFound - вызывающий использует значения по умолчанию
func (r *Repository) GetByStaffID(ctx context.Context, staffID int64) (*domain.StaffWorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"staff_id",
		"work_start",
		"work_end",
		"interval_minutes",
		"created_at",
		"updated_at",
	).
		From("staff_working_hours").
		Where(squirrel.Eq{"staff_id": staffID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffID - build select query: %v", ErrBuildQuery, err)
	}

	var wh domain.StaffWorkingHours
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&wh.ID,
		&wh.StaffID,
		&wh.Start,
		&wh.End,
		&wh.IntervalMinutes,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWorkingHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffID - scan working hours: %v", ErrScanRow, err)
	}

	wh.CreatedAt = createdAt.Time
	wh.UpdatedAt = updatedAt.Time

	return &wh, nil
}

// Upsert создает или заменяет рабочие часы сотрудника
func (r *Repository) Upsert(ctx context.Context, wh *domain.StaffWorkingHours) (*domain.StaffWorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("staff_working_hours").
		Columns("staff_id", "work_start", "work_end", "interval_minutes").
		Values(wh.StaffID, wh.Start, wh.End, wh.IntervalMinutes).
		Suffix(`ON CONFLICT (staff_id) DO UPDATE SET
			work_start = EXCLUDED.work_start,
			work_end = EXCLUDED.work_end,
			interval_minutes = EXCLUDED.interval_minutes,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&wh.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	wh.CreatedAt = createdAt.Time
	wh.UpdatedAt = updatedAt.Time

	return wh, nil
}

// DeleteByStaffID удаляет рабочие часы сотрудника, после чего действуют значения по умолчанию
func (r *Repository) DeleteByStaffID(ctx context.Context, staffID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("staff_working_hours").
		Where(squirrel.Eq{"staff_id": staffID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByStaffID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByStaffID - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByStaffID - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrWorkingHoursNotFound
	}

	return nil
}
