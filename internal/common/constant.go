package common

// AuthorizationHeaderName is the HTTP header used to carry the access token
// on outbound requests.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName carries a client-generated correlation id so that a
// failed call can be matched against server logs.
const RequestIDHeaderName = "X-Request-Id"

// Fixed names of the two credential entries in the token file.
const (
	AccessTokenKey  = "accessToken"
	RefreshTokenKey = "refreshToken"
)
