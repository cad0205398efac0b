package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-InventoryService/internal/domain"
	"github.com/m04kA/SMC-InventoryService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-InventoryService/pkg/types"
)

const tableBookings = "bookings"

var bookingColumns = []string{
	"id",
	"hotel_id",
	"room_id",
	"check_in",
	"check_out",
	"COALESCE(rooms_requested, 1)",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetConfirmedByRoom получает подтвержденные бронирования типа номера,
// пересекающиеся с полуинтервалом [from, to)
func (r *Repository) GetConfirmedByRoom(ctx context.Context, roomID int64, from, to types.Day) ([]*domain.Booking, error) {
	return r.getConfirmed(ctx, "GetConfirmedByRoom", squirrel.Eq{"room_id": roomID}, from, to)
}

// GetConfirmedByHotel получает подтвержденные бронирования всех номеров отеля,
// пересекающиеся с полуинтервалом [from, to)
func (r *Repository) GetConfirmedByHotel(ctx context.Context, hotelID int64, from, to types.Day) ([]*domain.Booking, error) {
	return r.getConfirmed(ctx, "GetConfirmedByHotel", squirrel.Eq{"hotel_id": hotelID}, from, to)
}

func (r *Repository) getConfirmed(ctx context.Context, op string, scope squirrel.Sqlizer, from, to types.Day) ([]*domain.Booking, error) {
	if !from.Before(to) {
		return nil, fmt.Errorf("%w: %s - from=%s to=%s", ErrInvalidRange, op, from, to)
	}

	query, args, err := confirmedOverlapQuery(scope, from, to).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrScanRow, op, err)
	}

	return bookings, nil
}

// confirmedOverlapQuery выборка пересечения [check_in, check_out) с [from, to)
func confirmedOverlapQuery(scope squirrel.Sqlizer, from, to types.Day) squirrel.SelectBuilder {
	statuses := make([]string, len(domain.InventoryStatuses))
	for i, s := range domain.InventoryStatuses {
		statuses[i] = string(s)
	}

	return psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(scope).
		Where(squirrel.Eq{"status": statuses}).
		Where(squirrel.Lt{"check_in": to}).
		Where(squirrel.Gt{"check_out": from}).
		OrderBy("check_in ASC", "id ASC")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking              domain.Booking
		status               string
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.HotelID,
		&booking.RoomID,
		&booking.CheckIn,
		&booking.CheckOut,
		&booking.RoomsRequested,
		&status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Status = domain.BookingStatus(status)
	if !domain.IsValidStatus(booking.Status) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var bookings []*domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}
