// Package api holds the wire types and helpers shared by every HTTP handler.
package api

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Timestamp string `json:"timestamp"`
}

// SuccessResponse carries a human-readable confirmation.
type SuccessResponse struct {
	Success string `json:"success"`
}

// TokenResponse is returned by register and login.
type TokenResponse struct {
	Success string `json:"success"`
	Token   string `json:"token"`
}
