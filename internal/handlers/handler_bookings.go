package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"sweet-booking/internal/middlewares"
	"sweet-booking/internal/storage"
)

type createBookingRequest struct {
	SweetID  int64  `json:"sweetId"`
	Date     string `json:"date"`
	TimeSlot string `json:"timeSlot"`
	Note     string `json:"note"`
}

// Accepted formats for the booking date. The LIFF client sends a bare day,
// older clients send full timestamps.
var bookingDateFormats = []string{time.RFC3339, "2006-01-02"}

// POSTBookingHandler creates a booking for the authenticated user and
// credits the booking reward.
func POSTBookingHandler(ctx *middlewares.AppContext) {
	user := ctx.GetPrincipal()
	if user == nil {
		ctx.SetJSONError(http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body createBookingRequest
	if err := json.NewDecoder(ctx.Request.Body).Decode(&body); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.SweetID <= 0 || body.Date == "" || body.TimeSlot == "" {
		ctx.SetJSONError(http.StatusBadRequest, "Invalid request body")
		return
	}

	date, err := parseBookingDate(body.Date)
	if err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "Invalid booking date")
		return
	}

	booking, err := ctx.Storage.CreateBooking(ctx, storage.CreateBookingInput{
		UserID:   user.ID,
		SweetID:  body.SweetID,
		Date:     date,
		TimeSlot: body.TimeSlot,
		Note:     body.Note,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.SetJSONError(http.StatusNotFound, "Sweet not found")
			return
		}

		ctx.Logger.Error("Failed to create booking", "error", err, "user_id", user.ID)
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.Logger.Info("Booking created", "booking_id", booking.ID, "reference", booking.Reference, "user_id", user.ID)

	ctx.WriteJSON(http.StatusCreated, map[string]any{"booking": booking})
}

// GETBookingsHandler lists a user's bookings. Users may only read their own.
func GETBookingsHandler(ctx *middlewares.AppContext) {
	user := ctx.GetPrincipal()
	if user == nil {
		ctx.SetJSONError(http.StatusUnauthorized, "Unauthorized")
		return
	}

	requestedID, err := pathUserID(ctx)
	if err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "Invalid userId")
		return
	}

	if requestedID != user.ID {
		ctx.SetJSONError(http.StatusForbidden, "Cannot view other users' bookings")
		return
	}

	bookings, err := ctx.Storage.ListBookingsForUser(ctx, requestedID)
	if err != nil {
		ctx.Logger.Error("Failed to list bookings", "error", err, "user_id", requestedID)
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.WriteJSON(http.StatusOK, map[string]any{"bookings": bookings})
}

func parseBookingDate(raw string) (time.Time, error) {
	var lastErr error
	for _, format := range bookingDateFormats {
		t, err := time.Parse(format, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
