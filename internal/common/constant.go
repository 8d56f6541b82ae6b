package common

const (
	// AuthHeaderName is the HTTP header carrying the bearer access token.
	AuthHeaderName = "Authorization"

	// BearerPrefix prefixes the access token in AuthHeaderName.
	BearerPrefix = "Bearer "

	// RequestIDHeaderName carries a per-request correlation id.
	RequestIDHeaderName = "X-Request-Id"
)
