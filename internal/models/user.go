package models

import "time"

type User struct {
	ID           int64     `json:"id"`
	LineUserID   string    `json:"lineUserId"`
	DisplayName  string    `json:"displayName"`
	Avatar       string    `json:"avatar,omitempty"`
	RewardPoints int       `json:"rewardPoints"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// LineProfile is the identity asserted by LINE after id-token verification.
// Only Sub is guaranteed to be present.
type LineProfile struct {
	Sub     string
	Name    string
	Picture string
}
