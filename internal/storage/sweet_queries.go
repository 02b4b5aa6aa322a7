package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"sweet-booking/internal/models"
)

func (p *DatabaseProvider) ListSweets(ctx context.Context) ([]models.Sweet, error) {
	query := `
		SELECT id, name, description, image_url, tag, created_at
		FROM sweets
		ORDER BY id ASC
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sweets: %w", err)
	}
	defer rows.Close()

	sweets := []models.Sweet{}
	for rows.Next() {
		var sweet models.Sweet
		if err := rows.Scan(&sweet.ID, &sweet.Name, &sweet.Description, &sweet.ImageURL, &sweet.Tag, &sweet.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sweet: %w", err)
		}
		sweets = append(sweets, sweet)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sweets: %w", err)
	}

	return sweets, nil
}

func (p *DatabaseProvider) GetSweetByID(ctx context.Context, id int64) (*models.Sweet, error) {
	query := `
		SELECT id, name, description, image_url, tag, created_at
		FROM sweets
		WHERE id = $1
	`

	var sweet models.Sweet
	err := p.pool.QueryRow(ctx, query, id).Scan(&sweet.ID, &sweet.Name, &sweet.Description, &sweet.ImageURL, &sweet.Tag, &sweet.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get sweet by id: %w", err)
	}

	return &sweet, nil
}
