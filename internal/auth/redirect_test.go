package auth

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeRedirect(t *testing.T) {
	fallback, err := url.Parse("https://liff.example.com")
	require.NoError(t, err)

	tests := []struct {
		name      string
		candidate string
		expected  string
	}{
		{
			name:      "empty candidate yields fallback",
			candidate: "",
			expected:  "https://liff.example.com",
		},
		{
			name:      "path resolves against fallback origin",
			candidate: "/booking?date=2026-09-01",
			expected:  "https://liff.example.com/booking?date=2026-09-01",
		},
		{
			name:      "same origin absolute url is kept",
			candidate: "https://liff.example.com/rewards",
			expected:  "https://liff.example.com/rewards",
		},
		{
			name:      "foreign origin yields fallback",
			candidate: "https://evil.example.com/phish",
			expected:  "https://liff.example.com",
		},
		{
			name:      "scheme mismatch yields fallback",
			candidate: "http://liff.example.com/rewards",
			expected:  "https://liff.example.com",
		},
		{
			name:      "port mismatch yields fallback",
			candidate: "https://liff.example.com:8443/rewards",
			expected:  "https://liff.example.com",
		},
		{
			name:      "protocol relative url yields fallback",
			candidate: "//evil.example.com/phish",
			expected:  "https://liff.example.com",
		},
		{
			name:      "unparseable candidate yields fallback",
			candidate: "https://liff.example.com/%zz\x7f",
			expected:  "https://liff.example.com",
		},
		{
			name:      "bare relative path yields fallback",
			candidate: "booking",
			expected:  "https://liff.example.com",
		},
		{
			name:      "javascript scheme yields fallback",
			candidate: "javascript:alert(1)",
			expected:  "https://liff.example.com",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := SanitizeRedirect(tc.candidate, fallback)
			assert.Equal(t, tc.expected, result.String())
			assert.Equal(t, fallback.Scheme, result.Scheme)
			assert.Equal(t, fallback.Host, result.Host)
		})
	}
}
