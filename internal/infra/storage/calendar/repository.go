package calendar

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/pawline/PGS-BookingService/internal/domain"
	"github.com/pawline/PGS-BookingService/pkg/dbmetrics"
	"github.com/pawline/PGS-BookingService/pkg/psqlbuilder"
)

var calendarColumns = []string{
	"id",
	"open_hour",
	"close_hour",
	"working_weekdays",
	"slot_interval_minutes",
	"minimum_lead_minutes",
	"advance_booking_days",
	"created_at",
	"updated_at",
}

// Repository репозиторий конфигурации календаря салона
// Календарь хранится одной строкой и редактируется из бэк-офиса
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория календаря
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает календарь салона
func (r *Repository) Get(ctx context.Context) (*domain.SalonCalendar, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(calendarColumns...).
		From("salon_calendar").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	cal, err := r.scanCalendar(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCalendarNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan calendar: %v", ErrScanRow, err)
	}

	return cal, nil
}

// Create создает календарь салона (первичная настройка)
func (r *Repository) Create(ctx context.Context, cal *domain.SalonCalendar) (*domain.SalonCalendar, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("salon_calendar").
		Columns(
			"open_hour",
			"close_hour",
			"working_weekdays",
			"slot_interval_minutes",
			"minimum_lead_minutes",
			"advance_booking_days",
		).
		Values(
			cal.OpenHour,
			cal.CloseHour,
			pq.Array(weekdaysToInts(cal.WorkingWeekdays)),
			cal.SlotIntervalMinutes,
			cal.MinimumLeadMinutes,
			cal.AdvanceBookingDays,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&cal.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	cal.CreatedAt = createdAt.Time
	cal.UpdatedAt = updatedAt.Time

	return cal, nil
}

// Update обновляет календарь салона
func (r *Repository) Update(ctx context.Context, id int64, cal *domain.SalonCalendar) (*domain.SalonCalendar, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("salon_calendar").
		Set("open_hour", cal.OpenHour).
		Set("close_hour", cal.CloseHour).
		Set("working_weekdays", pq.Array(weekdaysToInts(cal.WorkingWeekdays))).
		Set("slot_interval_minutes", cal.SlotIntervalMinutes).
		Set("minimum_lead_minutes", cal.MinimumLeadMinutes).
		Set("advance_booking_days", cal.AdvanceBookingDays).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrCalendarNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	cal.ID = id
	cal.CreatedAt = createdAt.Time
	cal.UpdatedAt = updatedAt.Time

	return cal, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanCalendar(row rowScanner) (*domain.SalonCalendar, error) {
	var cal domain.SalonCalendar
	var weekdays []int64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&cal.ID,
		&cal.OpenHour,
		&cal.CloseHour,
		pq.Array(&weekdays),
		&cal.SlotIntervalMinutes,
		&cal.MinimumLeadMinutes,
		&cal.AdvanceBookingDays,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	cal.WorkingWeekdays = intsToWeekdays(weekdays)
	cal.CreatedAt = createdAt.Time
	cal.UpdatedAt = updatedAt.Time

	return &cal, nil
}

func weekdaysToInts(days []time.Weekday) []int64 {
	result := make([]int64, len(days))
	for i, d := range days {
		result[i] = int64(d)
	}
	return result
}

func intsToWeekdays(values []int64) []time.Weekday {
	result := make([]time.Weekday, len(values))
	for i, v := range values {
		result[i] = time.Weekday(v)
	}
	return result
}
