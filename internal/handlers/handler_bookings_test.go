package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"sweet-booking/internal/models"
	"sweet-booking/internal/storage"
	"sweet-booking/internal/testutil"
)

func withURLParam(tc *testutil.TestContext, key, value string) {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)

	req := tc.Request.WithContext(context.WithValue(tc.Request.Context(), chi.RouteCtxKey, rctx))
	tc.Request = req
	tc.AppContext.Request = req
	tc.AppContext.Context = req.Context()
}

func TestCreateBooking(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/booking")
	tc.AppContext.SetPrincipal(&models.User{ID: 42})
	tc.WithBody(t, "POST", "/api/booking", map[string]any{
		"sweetId":  int64(3),
		"date":     "2026-09-05",
		"timeSlot": "19:00-20:00",
		"note":     "第一次預約",
	})

	created := &models.Booking{
		ID:        7,
		Reference: "3e2f0a46-6f67-4294-a1df-5ad0cf4bd3a5",
		UserID:    42,
		SweetID:   3,
		Status:    models.BookingStatusPending,
	}

	tc.MockStorage.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input storage.CreateBookingInput) (*models.Booking, error) {
			assert.Equal(t, int64(42), input.UserID)
			assert.Equal(t, int64(3), input.SweetID)
			assert.Equal(t, "19:00-20:00", input.TimeSlot)
			assert.Equal(t, "第一次預約", input.Note)
			assert.Equal(t, time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC), input.Date)
			return created, nil
		})

	tc.CallHandler(POSTBookingHandler)

	tc.AssertStatus(t, http.StatusCreated)

	response := tc.GetJSONResponse(t)
	booking, ok := response["booking"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, created.Reference, booking["reference"])
}

func TestCreateBookingInvalidDate(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/booking")
	tc.AppContext.SetPrincipal(&models.User{ID: 42})
	tc.WithBody(t, "POST", "/api/booking", map[string]any{
		"sweetId":  int64(3),
		"date":     "not-a-date",
		"timeSlot": "19:00-20:00",
	})

	tc.CallHandler(POSTBookingHandler)

	tc.AssertStatus(t, http.StatusBadRequest)
	tc.AssertJSONString(t, "error", "Invalid booking date")
}

func TestCreateBookingMissingFields(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/booking")
	tc.AppContext.SetPrincipal(&models.User{ID: 42})
	tc.WithBody(t, "POST", "/api/booking", map[string]any{"sweetId": int64(3)})

	tc.CallHandler(POSTBookingHandler)

	tc.AssertStatus(t, http.StatusBadRequest)
	tc.AssertJSONString(t, "error", "Invalid request body")
}

func TestCreateBookingUnknownSweet(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/booking")
	tc.AppContext.SetPrincipal(&models.User{ID: 42})
	tc.WithBody(t, "POST", "/api/booking", map[string]any{
		"sweetId":  int64(999),
		"date":     "2026-09-05",
		"timeSlot": "19:00-20:00",
	})

	tc.MockStorage.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)

	tc.CallHandler(POSTBookingHandler)

	tc.AssertStatus(t, http.StatusNotFound)
	tc.AssertJSONString(t, "error", "Sweet not found")
}

func TestListBookings(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/booking/42")
	tc.AppContext.SetPrincipal(&models.User{ID: 42})
	withURLParam(tc, "userId", "42")

	tc.MockStorage.EXPECT().ListBookingsForUser(gomock.Any(), int64(42)).Return([]models.Booking{
		{ID: 7, UserID: 42, SweetID: 3, Sweet: &models.Sweet{ID: 3, Name: "草莓塔"}},
	}, nil)

	tc.CallHandler(GETBookingsHandler)

	tc.AssertStatus(t, http.StatusOK)

	response := tc.GetJSONResponse(t)
	bookings, ok := response["bookings"].([]interface{})
	require.True(t, ok)
	assert.Len(t, bookings, 1)
}

func TestListBookingsOtherUser(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/booking/7")
	tc.AppContext.SetPrincipal(&models.User{ID: 42})
	withURLParam(tc, "userId", "7")

	tc.CallHandler(GETBookingsHandler)

	tc.AssertStatus(t, http.StatusForbidden)
	tc.AssertJSONString(t, "error", "Cannot view other users' bookings")
}

func TestListBookingsBadUserID(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/booking/abc")
	tc.AppContext.SetPrincipal(&models.User{ID: 42})
	withURLParam(tc, "userId", "abc")

	tc.CallHandler(GETBookingsHandler)

	tc.AssertStatus(t, http.StatusBadRequest)
	tc.AssertJSONString(t, "error", "Invalid userId")
}
