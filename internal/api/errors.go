package api

import "fmt"

// errorPayload is the error body shape the backend returns.
type errorPayload struct {
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
	Error   string `json:"error,omitempty"`
}

// AuthenticationError signals rejected credentials on an unauthenticated
// endpoint (login). The message comes from the server.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	if e.Message == "" {
		return "authentication failed"
	}
	return e.Message
}

// ValidationError signals a payload the server rejected (duplicate username,
// password policy violation, malformed profile edit). The message is
// server-supplied and suitable for direct display.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return "validation failed"
	}
	return e.Message
}

// NetworkError signals a transport failure with no server response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
