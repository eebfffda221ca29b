package handlers

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"cpace/internal/email"
	"cpace/internal/models"

	"github.com/labstack/echo/v4"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// EmailGenerator writes a personalized outreach email for one contact.
type EmailGenerator interface {
	Generate(ctx context.Context, contact models.Contact, focus models.FocusType, events []models.Event, posts []models.Post) (*models.GeneratedEmail, error)
}

// GenerateEmailHandler handles AI outreach email generation requests
// @Summary Generate an outreach email
// @Description Generate a personalized email for a contact, foregrounding the requested focus type. Focus types without underlying data are rejected with alternatives before any generation is attempted.
// @Tags email
// @Accept json
// @Produce json
// @Param contactId path int true "Contact ID"
// @Param request body models.EmailGenerationRequest true "Focus type"
// @Success 200 {object} models.EmailGenerationResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/contacts/{contactId}/generate-email [post]
func GenerateEmailHandler(crmClient ContactReader, emails EmailGenerator) echo.HandlerFunc {
	return func(c echo.Context) error {
		contactID, err := contactIDParam(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		}

		var req models.EmailGenerationRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: fmt.Sprintf("Invalid request body: %v", err),
			})
		}

		focus := models.FocusType(req.FocusType)
		if !focus.Valid() {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: fmt.Sprintf("Invalid focus_type. Must be one of: %s", models.FocusTypeNames()),
			})
		}

		ctx := c.Request().Context()

		detail, err := crmClient.GetContact(ctx, contactID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("CRM API error: %v", err),
			})
		}

		// Reject focus types with no underlying data before spending an LLM
		// call, suggesting the focus types that do have data.
		if !focusAvailable(detail.Data, detail.Counts, focus) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: missingFocusMessage(detail.Data, detail.Counts, focus),
			})
		}

		// Focus-specific context is best-effort; a failed fetch degrades to
		// an empty list.
		var events []models.Event
		var posts []models.Post
		switch focus {
		case models.FocusEvents:
			if fetched, err := crmClient.GetContactEvents(ctx, contactID); err == nil {
				events = fetched
			}
		case models.FocusSocial:
			if fetched, err := crmClient.GetContactMessages(ctx, contactID); err == nil {
				posts = fetched
			}
		}

		generated, err := emails.Generate(ctx, detail.Data, focus, events, posts)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("Email generation error: %v", err),
			})
		}

		return c.JSON(http.StatusOK, models.EmailGenerationResponse{
			ContactID:    contactID,
			ContactName:  detail.Data.FullName(),
			ContactEmail: detail.Data.Email,
			Email:        generated,
		})
	}
}

// SendEmailHandler handles sending a drafted outreach email via SendGrid
// @Summary Send a drafted email
// @Description Send a previously generated subject and body to the contact's email address
// @Tags email
// @Accept json
// @Produce json
// @Param contactId path int true "Contact ID"
// @Param request body models.SendEmailRequest true "Drafted email"
// @Success 200 {object} models.SendEmailResponse
// @Failure 400 {object} models.SendEmailResponse
// @Failure 500 {object} models.SendEmailResponse
// @Failure 503 {object} models.SendEmailResponse
// @Router /api/contacts/{contactId}/send-email [post]
func SendEmailHandler(crmClient ContactReader, sender *email.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		contactID, err := contactIDParam(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.SendEmailResponse{Error: err.Error()})
		}

		if !sender.Configured() {
			return c.JSON(http.StatusServiceUnavailable, models.SendEmailResponse{
				Error: "Email sending is not configured",
			})
		}

		var req models.SendEmailRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.SendEmailResponse{
				Error: fmt.Sprintf("Invalid request body: %v", err),
			})
		}
		if strings.TrimSpace(req.SubjectLine) == "" || strings.TrimSpace(req.EmailBody) == "" {
			return c.JSON(http.StatusBadRequest, models.SendEmailResponse{
				Error: "subject_line and email_body are required",
			})
		}

		detail, err := crmClient.GetContact(c.Request().Context(), contactID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.SendEmailResponse{
				Error: fmt.Sprintf("CRM API error: %v", err),
			})
		}

		if !emailRegex.MatchString(detail.Data.Email) {
			return c.JSON(http.StatusBadRequest, models.SendEmailResponse{
				Error: "Contact has no valid email address",
			})
		}

		if err := sender.SendOutreach(detail.Data.Email, detail.Data.FullName(), req.SubjectLine, req.EmailBody); err != nil {
			return c.JSON(http.StatusInternalServerError, models.SendEmailResponse{
				Error: fmt.Sprintf("Failed to send email: %v", err),
			})
		}

		return c.JSON(http.StatusOK, models.SendEmailResponse{
			Success: true,
			Message: fmt.Sprintf("Email sent to %s", detail.Data.Email),
		})
	}
}

// focusAvailable reports whether the contact has the data a focus type
// needs. Counts from the CRM detail envelope and the contact's own counter
// fields are both consulted; either being populated is enough.
func focusAvailable(contact models.Contact, counts models.EngagementCounts, focus models.FocusType) bool {
	switch focus {
	case models.FocusIndustry:
		return contact.Industry != ""
	case models.FocusLocation:
		return contact.State != "" || contact.Location != ""
	case models.FocusEvents:
		return contact.EventsCount > 0 || counts.Events > 0
	case models.FocusSocial:
		return contact.SocialPostsCount+contact.BlogPostsCount > 0 ||
			counts.SocialPosts+counts.BlogPosts > 0
	}
	return false
}

// missingFocusMessage builds the precondition rejection, listing the focus
// types that do have data as alternatives.
func missingFocusMessage(contact models.Contact, counts models.EngagementCounts, focus models.FocusType) string {
	var suggestions []string
	for _, candidate := range models.ValidFocusTypes {
		if candidate == focus {
			continue
		}
		if focusAvailable(contact, counts, candidate) {
			suggestions = append(suggestions, string(candidate))
		}
	}

	var label, missing string
	switch focus {
	case models.FocusIndustry:
		label, missing = "industry-focused", "industry data"
	case models.FocusLocation:
		label, missing = "location-focused", "location data"
	case models.FocusEvents:
		label, missing = "events-focused", "events data"
	case models.FocusSocial:
		label, missing = "social media-focused", "social media posts"
	}

	msg := fmt.Sprintf("Cannot generate %s email. This contact has no %s.", label, missing)
	if len(suggestions) > 0 {
		return fmt.Sprintf("%s Consider using: %s focus instead.", msg, strings.Join(suggestions, ", "))
	}
	return msg + " No alternative focus types are available for this contact."
}
