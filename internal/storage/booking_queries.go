package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"sweet-booking/internal/models"
)

// Creating a booking credits the user with a fixed reward.
const bookingRewardPoints = 50

// CreateBooking inserts a booking and credits the booking reward in a single
// transaction, so a failed insert never leaves stray points behind.
func (p *DatabaseProvider) CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var sweet models.Sweet
	err = tx.QueryRow(ctx, `
		SELECT id, name, description, image_url, tag, created_at
		FROM sweets
		WHERE id = $1
	`, input.SweetID).Scan(&sweet.ID, &sweet.Name, &sweet.Description, &sweet.ImageURL, &sweet.Tag, &sweet.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load sweet for booking: %w", err)
	}

	booking := models.Booking{
		Reference: uuid.New().String(),
		UserID:    input.UserID,
		SweetID:   input.SweetID,
		Date:      input.Date,
		TimeSlot:  input.TimeSlot,
		Status:    models.BookingStatusPending,
		Note:      input.Note,
		Sweet:     &sweet,
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO bookings (reference, user_id, sweet_id, date, time_slot, status, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_TIMESTAMP)
		RETURNING id, created_at
	`, booking.Reference, booking.UserID, booking.SweetID, booking.Date, booking.TimeSlot, booking.Status, booking.Note).
		Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}

	result, err := tx.Exec(ctx, `
		UPDATE users SET reward_points = reward_points + $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`, bookingRewardPoints, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to credit booking reward: %w", err)
	}
	if result.RowsAffected() != 1 {
		return nil, ErrNotFound
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO reward_logs (user_id, delta, reason, created_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
	`, input.UserID, bookingRewardPoints, fmt.Sprintf("預約 %s", sweet.Name))
	if err != nil {
		return nil, fmt.Errorf("failed to record booking reward: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit booking: %w", err)
	}

	return &booking, nil
}

// ListBookingsForUser returns a user's bookings, newest first, with the
// booked sweet attached.
func (p *DatabaseProvider) ListBookingsForUser(ctx context.Context, userID int64) ([]models.Booking, error) {
	query := `
		SELECT b.id, b.reference, b.user_id, b.sweet_id, b.date, b.time_slot, b.status, b.note, b.created_at,
		       s.id, s.name, s.description, s.image_url, s.tag, s.created_at
		FROM bookings b
		JOIN sweets s ON s.id = b.sweet_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
	`

	rows, err := p.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		var booking models.Booking
		var sweet models.Sweet

		err := rows.Scan(
			&booking.ID,
			&booking.Reference,
			&booking.UserID,
			&booking.SweetID,
			&booking.Date,
			&booking.TimeSlot,
			&booking.Status,
			&booking.Note,
			&booking.CreatedAt,
			&sweet.ID,
			&sweet.Name,
			&sweet.Description,
			&sweet.ImageURL,
			&sweet.Tag,
			&sweet.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}

		booking.Sweet = &sweet
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookings: %w", err)
	}

	return bookings, nil
}
