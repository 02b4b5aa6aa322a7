package models

import "time"

type Sweet struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Tag         string    `json:"tag,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
