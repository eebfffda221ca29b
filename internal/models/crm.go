package models

import "strings"

// Contact represents a contact record owned by the CRM. All fields are
// read-only from this service's perspective.
type Contact struct {
	ID               int      `json:"id"`
	FirstName        string   `json:"first_name"`
	LastName         string   `json:"last_name"`
	Title            string   `json:"title,omitempty"`
	Email            string   `json:"email,omitempty"`
	Phone            string   `json:"phone,omitempty"`
	Location         string   `json:"location,omitempty"`
	State            string   `json:"state,omitempty"`
	Company          string   `json:"company,omitempty"`
	Industry         string   `json:"industry,omitempty"`
	CompanySize      string   `json:"company_size,omitempty"`
	EmployeeCount    *int     `json:"employee_count,omitempty"`
	Revenue          *float64 `json:"revenue,omitempty"`
	CPACEFitScore    *float64 `json:"c_pace_fit_score,omitempty"`
	EventsCount      int      `json:"events_count,omitempty"`
	SocialPostsCount int      `json:"social_posts_count,omitempty"`
	BlogPostsCount   int      `json:"blog_posts_count,omitempty"`
}

// FullName joins the name parts, tolerating either being empty.
func (c Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Event represents an event a contact attended, as recorded by the CRM.
// The CRM is inconsistent about the date field name, so both are kept.
type Event struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date,omitempty"`
	EventDate   string `json:"event_date,omitempty"`
	Location    string `json:"location,omitempty"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// When returns the best available date string for the event.
func (e Event) When() string {
	if e.Date != "" {
		return e.Date
	}
	if e.EventDate != "" {
		return e.EventDate
	}
	return "Unknown date"
}

// Post represents a social media or blog post authored by a contact.
type Post struct {
	ID       int    `json:"id"`
	Type     string `json:"type"` // social_post or blog_post
	Title    string `json:"title,omitempty"`
	Content  string `json:"content,omitempty"`
	Excerpt  string `json:"excerpt,omitempty"`
	Date     string `json:"date,omitempty"`
	PostedAt string `json:"posted_at,omitempty"`
}

// Posted returns the best available date string for the post.
func (p Post) Posted() string {
	if p.Date != "" {
		return p.Date
	}
	return p.PostedAt
}

// EngagementCounts aggregates a contact's engagement, computed by the CRM.
type EngagementCounts struct {
	SocialPosts int `json:"social_posts"`
	BlogPosts   int `json:"blog_posts"`
	Events      int `json:"events"`
}

// ContactsPage is a page of contacts from the CRM list endpoint.
type ContactsPage struct {
	Data  []Contact      `json:"data"`
	Total int            `json:"total,omitempty"`
	Page  int            `json:"page,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
}

// ContactDetail is the CRM detail envelope: the contact plus aggregated
// counts of its related records.
type ContactDetail struct {
	Data   Contact          `json:"data"`
	Counts EngagementCounts `json:"counts"`
}
