package auth

import (
	"net/url"
	"strings"
)

// SanitizeRedirect resolves a caller-supplied return URL against the trusted
// fallback. The result always shares the fallback's origin:
//
//  1. an absent candidate yields the fallback itself
//  2. a path starting with "/" is resolved against the fallback's origin
//  3. an absolute URL is kept only when its origin matches the fallback's
//  4. anything unparseable yields the fallback
//
// The fallback comes from fixed configuration, never from request input.
func SanitizeRedirect(candidate string, fallback *url.URL) *url.URL {
	if candidate == "" {
		return fallback
	}

	if strings.HasPrefix(candidate, "/") {
		resolved, err := url.Parse(candidate)
		if err != nil {
			return fallback
		}
		// Protocol-relative URLs ("//evil.example/...") parse as paths but
		// carry a host; resolving one would leave the trusted origin.
		if resolved.Host != "" {
			return fallback
		}
		return fallback.ResolveReference(resolved)
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return fallback
	}

	if !sameOrigin(parsed, fallback) {
		return fallback
	}

	return parsed
}

func sameOrigin(a, b *url.URL) bool {
	return a.Scheme == b.Scheme && a.Host == b.Host
}
