package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"sweet-booking/internal/middlewares"
)

func TestClientIPMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "direct connection keeps remote addr",
			remoteAddr: "192.0.2.10:54321",
			want:       "192.0.2.10:54321",
		},
		{
			name:       "x-real-ip wins",
			remoteAddr: "10.0.0.1:54321",
			headers:    map[string]string{"X-Real-IP": "203.0.113.7", "X-Forwarded-For": "198.51.100.9"},
			want:       "203.0.113.7:54321",
		},
		{
			name:       "x-forwarded-for first entry",
			remoteAddr: "10.0.0.1:54321",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2, 10.0.0.1"},
			want:       "203.0.113.7:54321",
		},
		{
			name:       "garbage header falls back to remote addr",
			remoteAddr: "192.0.2.10:54321",
			headers:    map[string]string{"X-Forwarded-For": "not-an-ip"},
			want:       "192.0.2.10:54321",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			handler := middlewares.ClientIPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.RemoteAddr
			}))

			r := httptest.NewRequest("GET", "/api/sweets", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}

			handler.ServeHTTP(httptest.NewRecorder(), r)
			assert.Equal(t, tt.want, got)
		})
	}
}
