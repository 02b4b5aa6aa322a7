package auth

import "time"

// LINE Login v2.1 endpoints.
const (
	LineAuthorizeEndpoint = "https://access.line.me/oauth2/v2.1/authorize"
	LineTokenEndpoint     = "https://api.line.me/oauth2/v2.1/token"
	LineVerifyEndpoint    = "https://api.line.me/oauth2/v2.1/verify"
)

// Authorization codes are single-use, so a timed-out exchange is reported as
// a login failure rather than retried.
const lineRequestTimeout = 10 * time.Second
