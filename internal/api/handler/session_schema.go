package handler

import "time"

// errorResponse documents the envelope written by the central error handler.
type errorResponse struct {
	Error string `json:"error"`
}

// credentialsForm is posted by the HTML login and register forms.
type credentialsForm struct {
	Login    string `form:"login"`
	Password string `form:"password"`
}

type credentialsRequest struct {
	Login    string `json:"login"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Authenticated bool       `json:"authenticated"`
	Login         string     `json:"login,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

type registerResponse struct {
	Message string `json:"message"`
}

// containerResponse carries the raw fields alongside their display labels.
type containerResponse struct {
	ID        int       `json:"id"`
	IPAddress string    `json:"ip_address"`
	LastPing  time.Time `json:"last_ping"`
	Status    bool      `json:"status"`
	PingTime  *float64  `json:"ping_time,omitempty"`
	Labels    labels    `json:"labels"`
}

type labels struct {
	Status   string `json:"status"`
	LastPing string `json:"last_ping"`
	PingTime string `json:"ping_time"`
}
