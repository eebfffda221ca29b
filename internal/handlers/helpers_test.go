package handlers

import (
	"context"
	"net/http/httptest"
	"strings"

	"cpace/internal/crm"
	"cpace/internal/models"

	"github.com/labstack/echo/v4"
)

// stubCRM implements ContactReader with canned responses and call counters.
type stubCRM struct {
	page    *models.ContactsPage
	pageErr error

	detail    *models.ContactDetail
	detailErr error

	events    []models.Event
	eventsErr error

	posts    []models.Post
	postsErr error

	listOpts         []crm.ListOptions
	getContactCalls  int
	getEventsCalls   int
	getMessagesCalls int
}

func (s *stubCRM) ListContacts(_ context.Context, opts crm.ListOptions) (*models.ContactsPage, error) {
	s.listOpts = append(s.listOpts, opts)
	return s.page, s.pageErr
}

func (s *stubCRM) GetContact(_ context.Context, _ int) (*models.ContactDetail, error) {
	s.getContactCalls++
	return s.detail, s.detailErr
}

func (s *stubCRM) GetContactEvents(_ context.Context, _ int) ([]models.Event, error) {
	s.getEventsCalls++
	return s.events, s.eventsErr
}

func (s *stubCRM) GetContactMessages(_ context.Context, _ int) ([]models.Post, error) {
	s.getMessagesCalls++
	return s.posts, s.postsErr
}

// newJSONContext builds an Echo context for a request with an optional JSON
// body and an optional contactId path parameter.
func newJSONContext(method, target, body, contactID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if contactID != "" {
		c.SetParamNames("contactId")
		c.SetParamValues(contactID)
	}
	return c, rec
}
