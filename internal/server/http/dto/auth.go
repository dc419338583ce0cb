package dto

// LoginQuery carries the CAS redirect parameters.
type LoginQuery struct {
	Ticket  string `form:"ticket"`
	Service string `form:"service"`
}

// LoginResponse is returned after a successful CAS validation.
type LoginResponse struct {
	UserID          string `json:"user_id"`
	ProfileComplete bool   `json:"profile_complete"`
}

// StatusResponse is the generic envelope for endpoints without a payload.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the envelope for every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
