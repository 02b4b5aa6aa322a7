package testutil

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"sweet-booking/internal/config"
	"sweet-booking/internal/middlewares"
	"sweet-booking/internal/mocks"
	"sweet-booking/internal/token"
)

// TestSigningSecret signs every token minted inside tests.
const TestSigningSecret = "test-signing-secret"

// TestContext holds everything needed for testing a handler.
type TestContext struct {
	AppContext     *middlewares.AppContext
	Request        *http.Request
	Response       *httptest.ResponseRecorder
	Codec          *token.Codec
	MockController *gomock.Controller
	MockStorage    *mocks.MockStorageProvider
	MockCache      *mocks.MockCacheProvider
	MockLine       *mocks.MockLineProvider
	LogHandler     *TestLogHandler
}

// TestConfig returns the configuration handlers see in tests.
func TestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:    4000,
			BaseURL: "https://api.example.com",
		},
		Line: config.LineConfig{
			LoginChannelID:     "1234567890",
			LoginChannelSecret: "channel-secret",
			Scopes:             []string{"profile", "openid"},
		},
		Auth: config.AuthConfig{
			JWTSecret:      TestSigningSecret,
			FrontendOrigin: "https://liff.example.com",
			LoginStateTTL:  10 * time.Minute,
			SessionTTL:     7 * 24 * time.Hour,
		},
	}
}

// NewTestContextWithURL creates a complete test setup with sensible defaults.
func NewTestContextWithURL(t *testing.T, method, url string) *TestContext {
	cfg := TestConfig()

	logHandler := NewTestLogHandler()
	logger := slog.New(logHandler)

	codec, err := token.NewCodec(TestSigningSecret)
	if err != nil {
		t.Fatalf("Could not build token codec: %v", err)
	}

	ctrl := gomock.NewController(t)

	mockStorage := mocks.NewMockStorageProvider(ctrl)
	mockCache := mocks.NewMockCacheProvider(ctrl)
	mockLine := mocks.NewMockLineProvider(ctrl)

	req := httptest.NewRequest(method, url, nil)
	rr := httptest.NewRecorder()

	appCtx := &middlewares.AppContext{
		Context:  req.Context(),
		Config:   cfg,
		Logger:   logger,
		Storage:  mockStorage,
		Cache:    mockCache,
		Line:     mockLine,
		Tokens:   codec,
		Request:  req,
		Response: rr,
	}

	return &TestContext{
		AppContext:     appCtx,
		Request:        req,
		Response:       rr,
		Codec:          codec,
		MockController: ctrl,
		MockStorage:    mockStorage,
		MockCache:      mockCache,
		MockLine:       mockLine,
		LogHandler:     logHandler,
	}
}

// CallHandler executes a handler with the test context.
func (tc *TestContext) CallHandler(handler middlewares.AppHandler) {
	handler(tc.AppContext)
}

// AssertStatus checks the HTTP status code.
func (tc *TestContext) AssertStatus(t *testing.T, expectedStatus int) {
	if tc.Response.Code != expectedStatus {
		t.Errorf("Expected status %d, got %d", expectedStatus, tc.Response.Code)
	}
}

// GetJSONResponse parses the response body as JSON.
func (tc *TestContext) GetJSONResponse(t *testing.T) map[string]interface{} {
	var response map[string]interface{}
	if err := json.Unmarshal(tc.Response.Body.Bytes(), &response); err != nil {
		t.Fatalf("Could not parse JSON response: %v", err)
	}
	return response
}

// GetJSONResponseArray parses the response body as a JSON array.
func (tc *TestContext) GetJSONResponseArray(t *testing.T) []interface{} {
	var response []interface{}
	if err := json.Unmarshal(tc.Response.Body.Bytes(), &response); err != nil {
		t.Fatalf("Could not parse JSON array response: %v", err)
	}
	return response
}

// AssertJSONString checks a specific string field in a JSON response.
func (tc *TestContext) AssertJSONString(t *testing.T, field string, expected string) {
	response := tc.GetJSONResponse(t)
	actual, exists := response[field]

	if !exists {
		t.Errorf("Field %s not found in response", field)
		return
	}

	actualString, ok := actual.(string)
	if !ok {
		t.Errorf("Expected %s to be a string, got %T", field, actual)
		return
	}

	if actualString != expected {
		t.Errorf("Expected %s to be %q, got %q", field, expected, actualString)
	}
}

// AssertLogContains checks that a log record with the given level and message
// was emitted.
func (tc *TestContext) AssertLogContains(t *testing.T, level slog.Level, message string) {
	if !tc.LogHandler.ContainsMessage(level, message) {
		t.Errorf("Expected to find log entry with level %v containing message: %s", level, message)
	}
}

// WithConfig allows you to override the default config for specific tests.
func (tc *TestContext) WithConfig(cfg *config.Config) *TestContext {
	tc.AppContext.Config = cfg
	return tc
}

// WithQueryParam adds a query parameter to the request.
func (tc *TestContext) WithQueryParam(key, value string) *TestContext {
	q := tc.Request.URL.Query()
	q.Add(key, value)
	tc.Request.URL.RawQuery = q.Encode()
	return tc
}

// WithHeader sets a request header.
func (tc *TestContext) WithHeader(key, value string) *TestContext {
	tc.Request.Header.Set(key, value)
	return tc
}

// WithBody replaces the request with one carrying the given body.
func (tc *TestContext) WithBody(t *testing.T, method, url string, body any) *TestContext {
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Could not marshal request body: %v", err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	tc.Request = req
	tc.AppContext.Request = req
	tc.AppContext.Context = req.Context()
	return tc
}
