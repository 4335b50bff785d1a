package models

import (
	"fmt"
	"time"
)

// EndpointClass groups routes that share one request budget.
type EndpointClass string

const (
	// ClassAuth covers registration and login.
	ClassAuth EndpointClass = "auth"
	// ClassWrite covers authenticated mutations.
	ClassWrite EndpointClass = "write"
)

// Limit is a sliding-window request budget.
type Limit struct {
	RequestsPerWindow int
	Window            time.Duration
}

// Result is the outcome of one rate limit check.
type Result struct {
	Allowed    bool      `json:"allowed"`
	Limit      int       `json:"limit"`
	Remaining  int       `json:"remaining"`
	ResetAt    time.Time `json:"reset_at"`
	RetryAfter int       `json:"retry_after,omitempty"`
}

// KeyForIP is the bucket key for a client IP within a class.
func KeyForIP(class EndpointClass, ip string) string {
	return fmt.Sprintf("ratelimit:%s:ip:%s", class, ip)
}

// ExceededResponse is the 429 body.
type ExceededResponse struct {
	Error      string `json:"error"`
	Message    string `json:"error_description"`
	RetryAfter int    `json:"retry_after"`
}
