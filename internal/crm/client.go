// Package crm is a read-only client for the CRM REST API. The CRM is the
// source of truth for contacts and their engagement data; nothing here is
// persisted locally.
package crm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"cpace/internal/config"
	"cpace/internal/models"
)

const maxPerPage = 100

// Client calls the CRM API with bearer authentication and a fixed per-call
// timeout.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a CRM client from configuration.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.CRMBaseURL, "/"),
		apiKey:  cfg.CRMAPIKey,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.CRMTimeout) * time.Second,
		},
	}
}

// ListOptions filters and paginates the contact list.
type ListOptions struct {
	Company  string
	State    string
	Industry string
	PerPage  int
	Page     int
}

// ListContacts returns one page of contacts with optional filtering.
func (c *Client) ListContacts(ctx context.Context, opts ListOptions) (*models.ContactsPage, error) {
	perPage := opts.PerPage
	if perPage <= 0 {
		perPage = 15
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	page := opts.Page
	if page <= 0 {
		page = 1
	}

	query := url.Values{}
	query.Set("per_page", strconv.Itoa(perPage))
	query.Set("page", strconv.Itoa(page))
	if opts.Company != "" {
		query.Set("company", opts.Company)
	}
	if opts.State != "" {
		query.Set("state", opts.State)
	}
	if opts.Industry != "" {
		query.Set("industry", opts.Industry)
	}

	var contacts models.ContactsPage
	if err := c.get(ctx, "/contacts", query, &contacts); err != nil {
		return nil, err
	}
	return &contacts, nil
}

// GetContact returns a contact with its aggregated engagement counts.
func (c *Client) GetContact(ctx context.Context, contactID int) (*models.ContactDetail, error) {
	var detail models.ContactDetail
	if err := c.get(ctx, fmt.Sprintf("/contacts/%d", contactID), nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// GetContactEvents returns the events a contact has attended.
func (c *Client) GetContactEvents(ctx context.Context, contactID int) ([]models.Event, error) {
	var envelope struct {
		Data []models.Event `json:"data"`
	}
	if err := c.get(ctx, fmt.Sprintf("/contacts/%d/events", contactID), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// GetContactMessages returns a contact's social media and blog posts.
func (c *Client) GetContactMessages(ctx context.Context, contactID int) ([]models.Post, error) {
	var envelope struct {
		Data []models.Post `json:"data"`
	}
	if err := c.get(ctx, fmt.Sprintf("/contacts/%d/messages", contactID), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// get issues one authenticated GET and decodes the JSON response. Any
// non-2xx status is an upstream error carrying the response body.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build CRM request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("CRM request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read CRM response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("CRM API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode CRM response: %w", err)
	}
	return nil
}
