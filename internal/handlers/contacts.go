package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"cpace/internal/crm"
	"cpace/internal/models"

	"github.com/labstack/echo/v4"
)

// ContactReader is the read-only slice of the CRM API the handlers consume.
type ContactReader interface {
	ListContacts(ctx context.Context, opts crm.ListOptions) (*models.ContactsPage, error)
	GetContact(ctx context.Context, contactID int) (*models.ContactDetail, error)
	GetContactEvents(ctx context.Context, contactID int) ([]models.Event, error)
	GetContactMessages(ctx context.Context, contactID int) ([]models.Post, error)
}

// ListContactsHandler handles the CRM contact listing pass-through
func ListContactsHandler(crmClient ContactReader) echo.HandlerFunc {
	return func(c echo.Context) error {
		opts := crm.ListOptions{
			Company:  c.QueryParam("company"),
			State:    c.QueryParam("state"),
			Industry: c.QueryParam("industry"),
		}
		if perPage, err := strconv.Atoi(c.QueryParam("per_page")); err == nil {
			opts.PerPage = perPage
		}
		if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
			opts.Page = page
		}

		contacts, err := crmClient.ListContacts(c.Request().Context(), opts)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("CRM API error: %v", err),
			})
		}

		return c.JSON(http.StatusOK, contacts)
	}
}

// GetContactHandler handles the CRM contact detail pass-through
func GetContactHandler(crmClient ContactReader) echo.HandlerFunc {
	return func(c echo.Context) error {
		contactID, err := contactIDParam(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		}

		detail, err := crmClient.GetContact(c.Request().Context(), contactID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("CRM API error: %v", err),
			})
		}

		return c.JSON(http.StatusOK, detail)
	}
}

// ContactEventsHandler handles the CRM contact events pass-through
func ContactEventsHandler(crmClient ContactReader) echo.HandlerFunc {
	return func(c echo.Context) error {
		contactID, err := contactIDParam(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		}

		events, err := crmClient.GetContactEvents(c.Request().Context(), contactID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("CRM API error: %v", err),
			})
		}
		if events == nil {
			events = []models.Event{}
		}

		return c.JSON(http.StatusOK, map[string][]models.Event{"data": events})
	}
}

// ContactMessagesHandler handles the CRM contact posts pass-through
func ContactMessagesHandler(crmClient ContactReader) echo.HandlerFunc {
	return func(c echo.Context) error {
		contactID, err := contactIDParam(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		}

		posts, err := crmClient.GetContactMessages(c.Request().Context(), contactID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("CRM API error: %v", err),
			})
		}
		if posts == nil {
			posts = []models.Post{}
		}

		return c.JSON(http.StatusOK, map[string][]models.Post{"data": posts})
	}
}

func contactIDParam(c echo.Context) (int, error) {
	contactID, err := strconv.Atoi(c.Param("contactId"))
	if err != nil {
		return 0, fmt.Errorf("invalid contact id %q", c.Param("contactId"))
	}
	return contactID, nil
}
