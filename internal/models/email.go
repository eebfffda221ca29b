package models

import (
	"fmt"
	"strings"
)

// FocusType selects which facet of a contact's profile an outreach email
// should foreground.
type FocusType string

const (
	FocusIndustry FocusType = "industry"
	FocusLocation FocusType = "location"
	FocusEvents   FocusType = "events"
	FocusSocial   FocusType = "social"
)

// ValidFocusTypes lists the accepted focus types in display order.
var ValidFocusTypes = []FocusType{FocusIndustry, FocusLocation, FocusEvents, FocusSocial}

// Valid reports whether the focus type is a known enum value.
func (f FocusType) Valid() bool {
	switch f {
	case FocusIndustry, FocusLocation, FocusEvents, FocusSocial:
		return true
	}
	return false
}

// FocusTypeNames renders the valid focus types for error messages.
func FocusTypeNames() string {
	names := make([]string, len(ValidFocusTypes))
	for i, f := range ValidFocusTypes {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// EmailOutput is the validated JSON schema the model must return for email
// generation.
type EmailOutput struct {
	SubjectLine string    `json:"subject_line"`
	EmailBody   string    `json:"email_body"`
	SalesNotes  string    `json:"sales_notes"`
	FocusType   FocusType `json:"focus_type"`
}

// Validate checks required keys and enum membership.
func (e *EmailOutput) Validate() error {
	if e.SubjectLine == "" {
		return fmt.Errorf("subject_line is required")
	}
	if e.EmailBody == "" {
		return fmt.Errorf("email_body is required")
	}
	if e.SalesNotes == "" {
		return fmt.Errorf("sales_notes is required")
	}
	if !e.FocusType.Valid() {
		return fmt.Errorf("focus_type must be one of %s; got %q", FocusTypeNames(), e.FocusType)
	}
	return nil
}

// GeneratedEmail is the result of email generation. RawResponse keeps the
// verbatim model text for audit and debugging.
type GeneratedEmail struct {
	SubjectLine string    `json:"subject_line"`
	EmailBody   string    `json:"email_body"`
	SalesNotes  string    `json:"sales_notes"`
	FocusType   FocusType `json:"focus_type"`
	RawResponse string    `json:"raw_response"`
}
