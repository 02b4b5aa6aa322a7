package models

import "time"

type RewardLog struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Delta     int       `json:"delta"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

// RewardSummary is the point balance of a user together with its history.
type RewardSummary struct {
	UserID       int64       `json:"id"`
	RewardPoints int         `json:"rewardPoints"`
	Logs         []RewardLog `json:"logs"`
}
