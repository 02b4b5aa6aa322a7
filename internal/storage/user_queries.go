package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"sweet-booking/internal/models"
)

const defaultDisplayName = "小夜用戶"

// UpsertLineUser adds the user mapped to a LINE subject, or refreshes the
// profile fields of the existing row. Empty profile fields never overwrite
// previously stored values.
func (p *DatabaseProvider) UpsertLineUser(ctx context.Context, lineUserID, displayName, avatar string) (*models.User, error) {
	if lineUserID == "" {
		return nil, fmt.Errorf("line user id is required")
	}

	insertDisplayName := displayName
	if insertDisplayName == "" {
		insertDisplayName = defaultDisplayName
	}

	query := `
		INSERT INTO users (line_user_id, display_name, avatar, created_at, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (line_user_id)
		DO UPDATE SET
			display_name = CASE WHEN $4 = '' THEN users.display_name ELSE $4 END,
			avatar       = CASE WHEN $3 = '' THEN users.avatar ELSE $3 END,
			updated_at   = CURRENT_TIMESTAMP
		RETURNING id, line_user_id, display_name, avatar, reward_points, created_at, updated_at
	`

	var user models.User
	err := p.pool.QueryRow(ctx, query, lineUserID, insertDisplayName, avatar, displayName).Scan(
		&user.ID,
		&user.LineUserID,
		&user.DisplayName,
		&user.Avatar,
		&user.RewardPoints,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return &user, nil
}

func (p *DatabaseProvider) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, line_user_id, display_name, avatar, reward_points, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.LineUserID,
		&user.DisplayName,
		&user.Avatar,
		&user.RewardPoints,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &user, nil
}
