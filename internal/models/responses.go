package models

import "time"

// HealthResponse represents a basic health check response
// @Description Health check response
type HealthResponse struct {
	Status    string    `json:"status" example:"healthy"`                 // Health status
	Timestamp time.Time `json:"timestamp" example:"2023-01-01T00:00:00Z"` // Timestamp of the check
	Version   string    `json:"version" example:"1.0.0"`                  // Application version
}

// ChatRequest represents the request body for the chat endpoint
// @Description Chat request payload
type ChatRequest struct {
	Message   string `json:"message" example:"What is C-PACE financing?"` // User message
	SessionID string `json:"session_id,omitempty"`                        // Optional session identifier; generated when absent
}

// ChatResponse represents the response from the chat endpoint
// @Description Chat response payload
type ChatResponse struct {
	Response  string `json:"response,omitempty"` // Assistant reply
	SessionID string `json:"session_id,omitempty"`
	Error     string `json:"error,omitempty" example:""` // Error message if any
}

// SessionListResponse lists known session identifiers
// @Description Active session list
type SessionListResponse struct {
	Sessions []string `json:"sessions"`
}

// SessionClearedResponse confirms a session deletion
type SessionClearedResponse struct {
	Message string `json:"message"`
}

// EmailGenerationRequest represents the request body for email generation
// @Description Email generation request payload
type EmailGenerationRequest struct {
	FocusType string `json:"focus_type" example:"industry"` // industry, location, events, social
}

// EmailGenerationResponse wraps a generated email with contact identity
// @Description Email generation response payload
type EmailGenerationResponse struct {
	ContactID    int             `json:"contact_id"`
	ContactName  string          `json:"contact_name"`
	ContactEmail string          `json:"contact_email"`
	Email        *GeneratedEmail `json:"email,omitempty"`
	Error        string          `json:"error,omitempty"`
}

// SendEmailRequest represents the request body for sending a drafted email
// @Description Send email request payload
type SendEmailRequest struct {
	SubjectLine string `json:"subject_line"`
	EmailBody   string `json:"email_body"`
}

// SendEmailResponse represents the response from the send email endpoint
// @Description Send email response payload
type SendEmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// CacheClearResponse reports cache state after a clear operation
type CacheClearResponse struct {
	Message string `json:"message"`
	Entries int    `json:"entries"` // Entries remaining after the clear
}

// ErrorResponse is the generic error payload for upstream and validation
// failures
type ErrorResponse struct {
	Error string `json:"error"`
}
