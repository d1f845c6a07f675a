package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/momonail/booking-service/internal/domain"
	"github.com/momonail/booking-service/pkg/dbmetrics"
	"github.com/momonail/booking-service/pkg/psqlbuilder"
	"github.com/momonail/booking-service/pkg/types"
)

// DBExecutor интерфейс для выполнения запросов (см. dbmetrics)
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с расписанием салона:
// недельный шаблон, переопределения по датам и явные слоты (slot mode)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeeklyByWeekday получает недельное расписание салона на день недели
// Возвращает ErrScheduleNotFound, если день не настроен (трактуется как закрытый)
func (r *Repository) GetWeeklyByWeekday(ctx context.Context, salonID int64, weekday time.Weekday) (*domain.WeeklyDefaultSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"salon_id",
		"weekday",
		"is_closed",
		"opening_time",
		"closing_time",
		"created_at",
		"updated_at",
	).
		From("weekly_default_schedules").
		Where(squirrel.Eq{"salon_id": salonID}).
		Where(squirrel.Eq{"weekday": int(weekday)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyByWeekday - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanWeekly(executor.QueryRowContext(ctx, query, args...))
}

// GetWeeklyBySalon получает все строки недельного расписания салона
func (r *Repository) GetWeeklyBySalon(ctx context.Context, salonID int64) ([]*domain.WeeklyDefaultSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"salon_id",
		"weekday",
		"is_closed",
		"opening_time",
		"closing_time",
		"created_at",
		"updated_at",
	).
		From("weekly_default_schedules").
		Where(squirrel.Eq{"salon_id": salonID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyBySalon - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyBySalon - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make([]*domain.WeeklyDefaultSchedule, 0)
	for rows.Next() {
		var s domain.WeeklyDefaultSchedule
		var weekday int
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&s.ID, &s.SalonID, &weekday, &s.IsClosed,
			&s.OpeningTime, &s.ClosingTime, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: GetWeeklyBySalon - scan row: %w", ErrScanRow, err)
		}

		s.Weekday = time.Weekday(weekday)
		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time
		schedules = append(schedules, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyBySalon - rows error: %w", ErrScanRow, err)
	}

	return schedules, nil
}

// UpsertWeekly создает или обновляет недельное расписание на день недели
// Уникальность пары (salon_id, weekday) обеспечивается ограничением в БД
func (r *Repository) UpsertWeekly(ctx context.Context, schedule *domain.WeeklyDefaultSchedule) (*domain.WeeklyDefaultSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("weekly_default_schedules").
		Columns("salon_id", "weekday", "is_closed", "opening_time", "closing_time").
		Values(schedule.SalonID, int(schedule.Weekday), schedule.IsClosed, schedule.OpeningTime, schedule.ClosingTime).
		Suffix(`ON CONFLICT (salon_id, weekday) DO UPDATE SET
			is_closed = EXCLUDED.is_closed,
			opening_time = EXCLUDED.opening_time,
			closing_time = EXCLUDED.closing_time,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertWeekly - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&schedule.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: UpsertWeekly - execute upsert: %w", ErrExecQuery, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return schedule, nil
}

// GetDateSchedule получает переопределение расписания на конкретную дату
// Возвращает ErrScheduleNotFound при отсутствии строки (fallback на недельное расписание)
func (r *Repository) GetDateSchedule(ctx context.Context, salonID int64, date time.Time) (*domain.DateSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"salon_id",
		"schedule_date",
		"is_closed",
		"opening_time",
		"closing_time",
		"created_at",
		"updated_at",
	).
		From("date_schedules").
		Where(squirrel.Eq{"salon_id": salonID}).
		Where(squirrel.Eq{"schedule_date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDateSchedule - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.DateSchedule
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID, &s.SalonID, &s.Date, &s.IsClosed,
		&s.OpeningTime, &s.ClosingTime, &createdAt, &updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDateSchedule - scan row: %w", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// GetDateSchedulesInRange получает переопределения расписания за период (для месячной доступности)
func (r *Repository) GetDateSchedulesInRange(ctx context.Context, salonID int64, from, to time.Time) ([]*domain.DateSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"salon_id",
		"schedule_date",
		"is_closed",
		"opening_time",
		"closing_time",
		"created_at",
		"updated_at",
	).
		From("date_schedules").
		Where(squirrel.Eq{"salon_id": salonID}).
		Where(squirrel.GtOrEq{"schedule_date": from}).
		Where(squirrel.LtOrEq{"schedule_date": to}).
		OrderBy("schedule_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDateSchedulesInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDateSchedulesInRange - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make([]*domain.DateSchedule, 0)
	for rows.Next() {
		var s domain.DateSchedule
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&s.ID, &s.SalonID, &s.Date, &s.IsClosed,
			&s.OpeningTime, &s.ClosingTime, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: GetDateSchedulesInRange - scan row: %w", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time
		schedules = append(schedules, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetDateSchedulesInRange - rows error: %w", ErrScanRow, err)
	}

	return schedules, nil
}

// UpsertDateSchedule создает или обновляет переопределение расписания на дату
func (r *Repository) UpsertDateSchedule(ctx context.Context, schedule *domain.DateSchedule) (*domain.DateSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("date_schedules").
		Columns("salon_id", "schedule_date", "is_closed", "opening_time", "closing_time").
		Values(schedule.SalonID, schedule.Date, schedule.IsClosed, schedule.OpeningTime, schedule.ClosingTime).
		Suffix(`ON CONFLICT (salon_id, schedule_date) DO UPDATE SET
			is_closed = EXCLUDED.is_closed,
			opening_time = EXCLUDED.opening_time,
			closing_time = EXCLUDED.closing_time,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertDateSchedule - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&schedule.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: UpsertDateSchedule - execute upsert: %w", ErrExecQuery, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return schedule, nil
}

// GetSlotsByDate получает явные слоты на дату (slot mode), по возрастанию времени
func (r *Repository) GetSlotsByDate(ctx context.Context, salonID int64, date time.Time) ([]*domain.AvailableTimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "salon_id", "slot_date", "slot_time").
		From("available_time_slots").
		Where(squirrel.Eq{"salon_id": salonID}).
		Where(squirrel.Eq{"slot_date": date}).
		OrderBy("slot_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotsByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotsByDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// GetSlotsInRange получает явные слоты за период (для месячной доступности)
func (r *Repository) GetSlotsInRange(ctx context.Context, salonID int64, from, to time.Time) ([]*domain.AvailableTimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "salon_id", "slot_date", "slot_time").
		From("available_time_slots").
		Where(squirrel.Eq{"salon_id": salonID}).
		Where(squirrel.GtOrEq{"slot_date": from}).
		Where(squirrel.LtOrEq{"slot_date": to}).
		OrderBy("slot_date ASC, slot_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotsInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotsInRange - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// ReplaceDaySlots атомарно заменяет слоты даты: delete-then-bulk-insert
// Вызывается внутри транзакции (сервис оборачивает вызов в txManager.Do) -
// частично обновленный набор слотов не должен быть виден читателям
func (r *Repository) ReplaceDaySlots(ctx context.Context, salonID int64, date time.Time, slotTimes []types.TimeString) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("available_time_slots").
		Where(squirrel.Eq{"salon_id": salonID}).
		Where(squirrel.Eq{"slot_date": date}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceDaySlots - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceDaySlots - execute delete: %w", ErrExecQuery, err)
	}

	if len(slotTimes) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("available_time_slots").
		Columns("salon_id", "slot_date", "slot_time")

	for _, slotTime := range slotTimes {
		insertBuilder = insertBuilder.Values(salonID, date, slotTime)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceDaySlots - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceDaySlots - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// scanWeekly сканирует одну строку недельного расписания
func (r *Repository) scanWeekly(row *sql.Row) (*domain.WeeklyDefaultSchedule, error) {
	var s domain.WeeklyDefaultSchedule
	var weekday int
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(&s.ID, &s.SalonID, &weekday, &s.IsClosed,
		&s.OpeningTime, &s.ClosingTime, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanWeekly - scan row: %w", ErrScanRow, err)
	}

	s.Weekday = time.Weekday(weekday)
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// scanSlots сканирует результаты запроса в слайс слотов
func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.AvailableTimeSlot, error) {
	slots := make([]*domain.AvailableTimeSlot, 0)

	for rows.Next() {
		var slot domain.AvailableTimeSlot
		if err := rows.Scan(&slot.ID, &slot.SalonID, &slot.Date, &slot.Time); err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %w", ErrScanRow, err)
		}
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %w", ErrScanRow, err)
	}

	return slots, nil
}
