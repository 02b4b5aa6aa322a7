package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"sweet-booking/internal/models"
	"sweet-booking/internal/storage"
	"sweet-booking/internal/testutil"
)

func TestGetRewardSummary(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/reward/42")
	tc.AppContext.SetPrincipal(&models.User{ID: 42})
	withURLParam(tc, "userId", "42")

	tc.MockStorage.EXPECT().GetRewardSummary(gomock.Any(), int64(42)).Return(&models.RewardSummary{
		UserID:       42,
		RewardPoints: 150,
		Logs: []models.RewardLog{
			{ID: 3, UserID: 42, Delta: 50, Reason: "預約 草莓塔"},
		},
	}, nil)

	tc.CallHandler(GETRewardHandler)

	tc.AssertStatus(t, http.StatusOK)

	response := tc.GetJSONResponse(t)
	reward, ok := response["reward"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(150), reward["rewardPoints"])
}

func TestGetRewardOtherUser(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/reward/7")
	tc.AppContext.SetPrincipal(&models.User{ID: 42})
	withURLParam(tc, "userId", "7")

	tc.CallHandler(GETRewardHandler)

	tc.AssertStatus(t, http.StatusForbidden)
	tc.AssertJSONString(t, "error", "Cannot view other users' rewards")
}

func TestUpdateRewardPoints(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "PUT", "/api/reward/42")
	tc.AppContext.SetPrincipal(&models.User{ID: 42})
	tc.WithBody(t, "PUT", "/api/reward/42", map[string]any{
		"rewardPoints": 200,
		"reason":       "活動加碼",
	})
	withURLParam(tc, "userId", "42")

	updated := &models.User{ID: 42, RewardPoints: 200}
	tc.MockStorage.EXPECT().SetRewardPoints(gomock.Any(), int64(42), 200, "活動加碼").Return(updated, 50, nil)

	tc.CallHandler(PUTRewardHandler)

	tc.AssertStatus(t, http.StatusOK)

	response := tc.GetJSONResponse(t)
	assert.Equal(t, float64(50), response["delta"])
}

func TestUpdateRewardPointsDefaultReason(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "PUT", "/api/reward/42")
	tc.AppContext.SetPrincipal(&models.User{ID: 42})
	tc.WithBody(t, "PUT", "/api/reward/42", map[string]any{"rewardPoints": 120})
	withURLParam(tc, "userId", "42")

	tc.MockStorage.EXPECT().SetRewardPoints(gomock.Any(), int64(42), 120, "調整積分").Return(&models.User{ID: 42, RewardPoints: 120}, -30, nil)

	tc.CallHandler(PUTRewardHandler)

	tc.AssertStatus(t, http.StatusOK)
}

func TestUpdateRewardPointsNegative(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "PUT", "/api/reward/42")
	tc.AppContext.SetPrincipal(&models.User{ID: 42})
	tc.WithBody(t, "PUT", "/api/reward/42", map[string]any{"rewardPoints": -1})
	withURLParam(tc, "userId", "42")

	tc.CallHandler(PUTRewardHandler)

	tc.AssertStatus(t, http.StatusBadRequest)
	tc.AssertJSONString(t, "error", "Invalid request body")
}

func TestUpdateRewardUnknownUser(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "PUT", "/api/reward/42")
	tc.AppContext.SetPrincipal(&models.User{ID: 42})
	tc.WithBody(t, "PUT", "/api/reward/42", map[string]any{"rewardPoints": 10})
	withURLParam(tc, "userId", "42")

	tc.MockStorage.EXPECT().SetRewardPoints(gomock.Any(), int64(42), 10, "調整積分").Return(nil, 0, storage.ErrNotFound)

	tc.CallHandler(PUTRewardHandler)

	tc.AssertStatus(t, http.StatusNotFound)
	tc.AssertJSONString(t, "error", "User not found")
}
