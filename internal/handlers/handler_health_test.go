package handlers

import (
	"errors"
	"net/http"
	"testing"

	"go.uber.org/mock/gomock"

	"sweet-booking/internal/testutil"
)

func TestHandlerHealth(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/healthz")

	tc.CallHandler(HandlerHealth)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONString(t, "status", "OK")
}

func TestHandlerReady(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/readyz")

	tc.MockStorage.EXPECT().Ping(gomock.Any()).Return(nil)
	tc.MockCache.EXPECT().Ping(gomock.Any()).Return(nil)

	tc.CallHandler(HandlerReady)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONString(t, "status", "OK")
}

func TestHandlerReadyStorageDown(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/readyz")

	tc.MockStorage.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

	tc.CallHandler(HandlerReady)

	tc.AssertStatus(t, http.StatusServiceUnavailable)
	tc.AssertJSONString(t, "error", "storage unavailable")
}
