package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"sweet-booking/internal/models"
)

func (p *DatabaseProvider) GetRewardSummary(ctx context.Context, userID int64) (*models.RewardSummary, error) {
	summary := models.RewardSummary{UserID: userID, Logs: []models.RewardLog{}}

	err := p.pool.QueryRow(ctx, `SELECT reward_points FROM users WHERE id = $1`, userID).
		Scan(&summary.RewardPoints)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get reward points: %w", err)
	}

	rows, err := p.pool.Query(ctx, `
		SELECT id, user_id, delta, reason, created_at
		FROM reward_logs
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reward logs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var log models.RewardLog
		if err := rows.Scan(&log.ID, &log.UserID, &log.Delta, &log.Reason, &log.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reward log: %w", err)
		}
		summary.Logs = append(summary.Logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reward logs: %w", err)
	}

	return &summary, nil
}

// SetRewardPoints sets a user's balance to an absolute value and records the
// delta when it is nonzero. Returns the updated user and the applied delta.
func (p *DatabaseProvider) SetRewardPoints(ctx context.Context, userID int64, rewardPoints int, reason string) (*models.User, int, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var current int
	err = tx.QueryRow(ctx, `SELECT reward_points FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, fmt.Errorf("failed to read reward points: %w", err)
	}

	delta := rewardPoints - current

	var user models.User
	err = tx.QueryRow(ctx, `
		UPDATE users SET reward_points = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
		RETURNING id, line_user_id, display_name, avatar, reward_points, created_at, updated_at
	`, rewardPoints, userID).Scan(
		&user.ID,
		&user.LineUserID,
		&user.DisplayName,
		&user.Avatar,
		&user.RewardPoints,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to update reward points: %w", err)
	}

	if delta != 0 {
		_, err = tx.Exec(ctx, `
			INSERT INTO reward_logs (user_id, delta, reason, created_at)
			VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		`, userID, delta, reason)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to record reward adjustment: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, 0, fmt.Errorf("failed to commit reward adjustment: %w", err)
	}

	return &user, delta, nil
}
