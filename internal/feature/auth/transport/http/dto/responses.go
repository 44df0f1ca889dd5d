package dto

// MessageResponse is a generic success message body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a generic error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TokenResponse carries the JWT issued on a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}
