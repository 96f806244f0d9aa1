package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Колонки записи вместе с данными услуги (LEFT JOIN services)
var selectColumns = []string{
	"a.id",
	"a.staff_id",
	"a.customer_id",
	"a.service_id",
	"COALESCE(s.name, '')",
	"s.duration_minutes",
	"a.appointment_date",
	"a.start_time",
	"a.status",
	"a.notes",
	"a.created_at",
	"a.updated_at",
}

// Repository репозиторий для работы с записями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись
// Если в контексте передана активная транзакция, использует её.
// Нарушение уникального индекса активных записей возвращает ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"staff_id",
			"customer_id",
			"service_id",
			"appointment_date",
			"start_time",
			"status",
			"notes",
		).
		Values(
			appointment.StaffID,
			appointment.CustomerID,
			appointment.ServiceID,
			appointment.Date.Format(domain.DateFormat),
			appointment.StartTime,
			appointment.Status,
			appointment.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appointment.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if IsSlotTaken(err) {
			return nil, fmt.Errorf("%w: Create: %v", ErrSlotTaken, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appointment.CreatedAt = createdAt.Time
	appointment.UpdatedAt = updatedAt.Time

	return appointment, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("appointments a").
		LeftJoin("services s ON s.id = a.service_id").
		Where(squirrel.Eq{"a.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appointment, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appointment, nil
}

// ListByFilter получает записи сотрудника, отсортированные по дате и времени
//
// Примеры использования:
//
// 1. Все активные записи сотрудника:
//    filter := domain.AppointmentsFilter{StaffID: 7}
//
// 2. Записи на конкретную дату (для расчета слотов):
//    filter := domain.AppointmentsFilter{StaffID: 7, Date: &date}
//
// 3. Все записи включая отмененные:
//    filter := domain.AppointmentsFilter{StaffID: 7, IncludeInactive: true}
func (r *Repository) ListByFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("appointments a").
		LeftJoin("services s ON s.id = a.service_id").
		Where(squirrel.Eq{"a.staff_id": filter.StaffID})

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.appointment_date": filter.Date.Format(domain.DateFormat)})
	}

	if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"a.status": inactiveStatuses()})
	}

	selectBuilder = selectBuilder.OrderBy("a.appointment_date ASC", "a.start_time ASC")

	// В транзакции на запись блокируем записи дня (usecase создания/переноса записи).
	// OF a: строки services с nullable стороны LEFT JOIN заблокировать нельзя
	if dbmetrics.CanLockRows(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF a")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// ExistsAt проверяет, есть ли активная запись сотрудника, начинающаяся ровно в startTime.
// excludeID исключает саму переносимую запись.
func (r *Repository) ExistsAt(
	ctx context.Context,
	staffID int64,
	date time.Time,
	startTime types.TimeString,
	excludeID *int64,
) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(squirrel.Eq{
			"staff_id":         staffID,
			"appointment_date": date.Format(domain.DateFormat),
			"start_time":       startTime,
		}).
		Where(squirrel.NotEq{"status": inactiveStatuses()})

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsAt - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: ExistsAt - execute query: %v", ErrExecQuery, err)
	}

	return count > 0, nil
}

// Update обновляет изменяемые поля записи
func (r *Repository) Update(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("service_id", appointment.ServiceID).
		Set("appointment_date", appointment.Date.Format(domain.DateFormat)).
		Set("start_time", appointment.StartTime).
		Set("status", appointment.Status).
		Set("notes", appointment.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": appointment.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		if IsSlotTaken(err) {
			return nil, fmt.Errorf("%w: Update: %v", ErrSlotTaken, err)
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	appointment.UpdatedAt = updatedAt.Time

	return appointment, nil
}

// Delete удаляет запись
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appointment domain.Appointment
	var serviceID sql.NullInt64
	var duration sql.NullInt64
	var notes sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appointment.ID,
		&appointment.StaffID,
		&appointment.CustomerID,
		&serviceID,
		&appointment.ServiceName,
		&duration,
		&appointment.Date,
		&appointment.StartTime,
		&appointment.Status,
		&notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if serviceID.Valid {
		appointment.ServiceID = &serviceID.Int64
	}
	if duration.Valid {
		d := int(duration.Int64)
		appointment.ServiceDurationMinutes = &d
	}
	if notes.Valid {
		appointment.Notes = &notes.String
	}
	appointment.CreatedAt = createdAt.Time
	appointment.UpdatedAt = updatedAt.Time

	return &appointment, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

func inactiveStatuses() []string {
	statuses := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		statuses[i] = string(s)
	}
	return statuses
}
