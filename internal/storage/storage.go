package storage

import (
	"context"
	"errors"
	"time"

	"sweet-booking/internal/models"
)

//go:generate mockgen -source=storage.go -destination=../mocks/storage.go -package=mocks

// ErrNotFound is returned when a referenced row does not exist.
var ErrNotFound = errors.New("not found")

type CreateBookingInput struct {
	UserID   int64
	SweetID  int64
	Date     time.Time
	TimeSlot string
	Note     string
}

// noinspection GoNameStartsWithPackageName
type StorageProvider interface {
	Close()
	Ping(ctx context.Context) error
	RunMigrations() error

	// UpsertLineUser creates or refreshes the local user mapped to a LINE
	// subject. The upsert is idempotent and keyed on lineUserID.
	UpsertLineUser(ctx context.Context, lineUserID, displayName, avatar string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)

	ListSweets(ctx context.Context) ([]models.Sweet, error)
	GetSweetByID(ctx context.Context, id int64) (*models.Sweet, error)

	CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error)
	ListBookingsForUser(ctx context.Context, userID int64) ([]models.Booking, error)

	GetRewardSummary(ctx context.Context, userID int64) (*models.RewardSummary, error)
	SetRewardPoints(ctx context.Context, userID int64, rewardPoints int, reason string) (*models.User, int, error)
}
