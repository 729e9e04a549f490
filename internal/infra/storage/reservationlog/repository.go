package reservationlog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/sansan-reserve/booking-service/pkg/psqlbuilder"
)

// Entry запись журнала бронирований.
// Журнал append-only и служит только для операторской отчетности:
// источником правды о занятых интервалах остается календарь
type Entry struct {
	ID              int64
	EventID         string // ID события, присвоенный календарем
	Menu            string
	MenuDisplayName string
	StartTime       time.Time
	EndTime         time.Time
	LastName        string
	FirstName       string
	Email           string
	Phone           string
	GuestCount      int
	HasPet          bool
	RequestedAt     time.Time
	CreatedAt       time.Time
}

// Repository репозиторий журнала бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет запись о созданном бронировании
func (r *Repository) Append(ctx context.Context, entry *Entry) error {
	query, args, err := psqlbuilder.Insert("reservation_log").
		Columns(
			"event_id",
			"menu",
			"menu_display_name",
			"start_time",
			"end_time",
			"last_name",
			"first_name",
			"email",
			"phone",
			"guest_count",
			"has_pet",
			"requested_at",
		).
		Values(
			entry.EventID,
			entry.Menu,
			entry.MenuDisplayName,
			entry.StartTime,
			entry.EndTime,
			entry.LastName,
			entry.FirstName,
			entry.Email,
			entry.Phone,
			entry.GuestCount,
			entry.HasPet,
			entry.RequestedAt,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &createdAt)
	if err != nil {
		return fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	entry.CreatedAt = createdAt.Time
	return nil
}

// ListByDateRange возвращает записи журнала, чье начало попадает в [from, to)
// Сортировка по времени начала записи (ASC)
func (r *Repository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*Entry, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"event_id",
		"menu",
		"menu_display_name",
		"start_time",
		"end_time",
		"last_name",
		"first_name",
		"email",
		"phone",
		"guest_count",
		"has_pet",
		"requested_at",
		"created_at",
	).
		From("reservation_log").
		Where(squirrel.GtOrEq{"start_time": from}).
		Where(squirrel.Lt{"start_time": to}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// scanEntries сканирует результаты запроса в слайс записей журнала
func scanEntries(rows *sql.Rows) ([]*Entry, error) {
	entries := make([]*Entry, 0)

	for rows.Next() {
		var entry Entry
		var createdAt sql.NullTime

		err := rows.Scan(
			&entry.ID,
			&entry.EventID,
			&entry.Menu,
			&entry.MenuDisplayName,
			&entry.StartTime,
			&entry.EndTime,
			&entry.LastName,
			&entry.FirstName,
			&entry.Email,
			&entry.Phone,
			&entry.GuestCount,
			&entry.HasPet,
			&entry.RequestedAt,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanEntries - scan row: %v", ErrScanRow, err)
		}

		entry.CreatedAt = createdAt.Time
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEntries - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
