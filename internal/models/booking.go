package models

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

type Booking struct {
	ID        int64         `json:"id"`
	Reference string        `json:"reference"`
	UserID    int64         `json:"userId"`
	SweetID   int64         `json:"sweetId"`
	Date      time.Time     `json:"date"`
	TimeSlot  string        `json:"timeSlot"`
	Status    BookingStatus `json:"status"`
	Note      string        `json:"note,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`

	// Sweet is populated on reads that join the catalog.
	Sweet *Sweet `json:"sweet,omitempty"`
}
