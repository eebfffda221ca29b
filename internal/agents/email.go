package agents

import (
	"context"
	"fmt"
	"strings"

	"cpace/internal/llm"
	"cpace/internal/models"
)

const (
	emailMaxTokens   = 800
	emailTemperature = 0.3

	// Caps on focus-specific context; entries beyond them are dropped.
	maxFocusEvents = 5
	maxSocialPosts = 3
	maxBlogPosts   = 3
)

// EmailAgent writes personalized outreach emails using the completion
// backend.
type EmailAgent struct {
	llm    llm.Completer
	skills string
}

// NewEmailAgent creates an email generation agent with the given system
// prompt.
func NewEmailAgent(completer llm.Completer, skills string) *EmailAgent {
	return &EmailAgent{llm: completer, skills: skills}
}

// Generate writes an outreach email foregrounding the requested focus type.
// The model must echo the requested focus_type; a mismatch is a shape
// failure and goes through the single repair attempt like any other.
func (a *EmailAgent) Generate(ctx context.Context, contact models.Contact, focus models.FocusType, events []models.Event, posts []models.Post) (*models.GeneratedEmail, error) {
	contactPrompt := formatContactForEmail(contact, focus, events, posts)

	var output models.EmailOutput
	raw, err := llm.GenerateStructured(ctx, a.llm, llm.StructuredRequest{
		System:       a.skills,
		Prompt:       buildEmailPrompt(contactPrompt),
		RepairPrompt: buildEmailRepairPrompt(contactPrompt),
		MaxTokens:    emailMaxTokens,
		Temperature:  emailTemperature,
		Parse: func(raw string) error {
			output = models.EmailOutput{}
			if err := llm.ParseInto(raw, &output); err != nil {
				return err
			}
			if output.FocusType != focus {
				return &llm.ParseError{Reason: fmt.Sprintf("focus_type must be %q, got %q", focus, output.FocusType)}
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return &models.GeneratedEmail{
		SubjectLine: output.SubjectLine,
		EmailBody:   output.EmailBody,
		SalesNotes:  output.SalesNotes,
		FocusType:   output.FocusType,
		RawResponse: raw,
	}, nil
}

// formatContactForEmail renders the contact block plus the focus-specific
// data section. Missing optional inputs degrade to a placeholder sentence
// telling the model to write a general email.
func formatContactForEmail(contact models.Contact, focus models.FocusType, events []models.Event, posts []models.Post) string {
	firstName := contact.FirstName
	if firstName == "" {
		firstName = "there"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Contact Information\n")
	fmt.Fprintf(&b, "- **Name**: %s\n", contact.FullName())
	fmt.Fprintf(&b, "- **First Name**: %s\n", firstName)
	fmt.Fprintf(&b, "- **Title**: %s\n", orUnknown(contact.Title))
	fmt.Fprintf(&b, "- **Email**: %s\n", orUnknown(contact.Email))
	fmt.Fprintf(&b, "- **Company**: %s\n", orUnknown(contact.Company))
	fmt.Fprintf(&b, "- **Industry**: %s\n", orUnknown(contact.Industry))
	fmt.Fprintf(&b, "- **Location**: %s\n", orUnknown(contact.Location))
	fmt.Fprintf(&b, "- **State**: %s\n", orUnknown(contact.State))
	fmt.Fprintf(&b, "- **Company Size**: %s\n", orUnknown(contact.CompanySize))
	fmt.Fprintf(&b, "- **Employee Count**: %s\n", intOrUnknown(contact.EmployeeCount))
	fmt.Fprintf(&b, "- **Revenue**: $%s\n", floatOrUnknown(contact.Revenue))

	switch focus {
	case models.FocusIndustry:
		industry := contact.Industry
		if industry == "" {
			industry = "their"
		}
		fmt.Fprintf(&b, "\n## Email Focus: INDUSTRY\n")
		fmt.Fprintf(&b, "Write an email focused on how C-PACE financing benefits the **%s** industry specifically.\n", industry)
		fmt.Fprintf(&b, "Highlight industry-specific use cases, ROI, and operational benefits.\n")

	case models.FocusLocation:
		state := contact.State
		if state == "" {
			state = "their state"
		}
		fmt.Fprintf(&b, "\n## Email Focus: LOCATION & C-PACE DEVELOPMENTS\n")
		fmt.Fprintf(&b, "Write an email focused on C-PACE opportunities in **%s**.\n", state)
		fmt.Fprintf(&b, "Reference the state's C-PACE program status, recent developments, and local success stories.\n")
		fmt.Fprintf(&b, "Make it feel relevant to their geographic market.\n")

	case models.FocusEvents:
		fmt.Fprintf(&b, "\n## Email Focus: EVENTS ATTENDED\n")
		fmt.Fprintf(&b, "Write an email that references events they have attended and connects those interests to C-PACE.\n")
		if len(events) > 0 {
			fmt.Fprintf(&b, "\n### Events Attended:\n")
			for _, event := range truncateEvents(events, maxFocusEvents) {
				fmt.Fprintf(&b, "- **%s** (%s)", eventName(event), event.When())
				if event.Location != "" {
					fmt.Fprintf(&b, " at %s", event.Location)
				}
				if event.Type != "" {
					fmt.Fprintf(&b, " - Type: %s", event.Type)
				}
				b.WriteString("\n")
			}
		} else {
			fmt.Fprintf(&b, "\n*No specific events data available. Write a general networking-style email.*\n")
		}

	case models.FocusSocial:
		fmt.Fprintf(&b, "\n## Email Focus: SOCIAL MEDIA ACTIVITY\n")
		fmt.Fprintf(&b, "Write an email that references their recent social media posts or blog content.\n")
		fmt.Fprintf(&b, "Show genuine engagement with their thought leadership and connect it to C-PACE opportunities.\n")
		social, blog := splitPosts(posts)
		if len(social) == 0 && len(blog) == 0 {
			fmt.Fprintf(&b, "\n*No specific social media data available. Write an email that invites them to connect and share insights.*\n")
			break
		}
		if len(social) > 0 {
			fmt.Fprintf(&b, "\n### Recent Social Posts:\n")
			for _, post := range social[:min(len(social), maxSocialPosts)] {
				fmt.Fprintf(&b, "- %q... (%s)\n", clip(postContent(post), 200), post.Posted())
			}
		}
		if len(blog) > 0 {
			fmt.Fprintf(&b, "\n### Recent Blog Posts:\n")
			for _, post := range blog[:min(len(blog), maxBlogPosts)] {
				fmt.Fprintf(&b, "- **%s**: %q...\n", postTitle(post), clip(postExcerpt(post), 150))
			}
		}
	}

	return b.String()
}

const emailSchema = `{
  "subject_line": string,
  "email_body": string,
  "sales_notes": string,
  "focus_type": "industry" | "location" | "events" | "social"
}`

func buildEmailPrompt(contactPrompt string) string {
	return fmt.Sprintf(`Generate a personalized outreach email for this contact:

%s

Return ONLY a single RFC8259-compliant JSON object with the following keys:
%s

Remember:
- Keep the email under 150 words
- Make it personal and specific to their situation
- Use a warm, consultative tone
- Include one clear, low-pressure call-to-action
- Reference specific details from their profile
- Use double quotes for all keys and strings
- Do not include markdown, backticks, or commentary outside the JSON
`, contactPrompt, emailSchema)
}

func buildEmailRepairPrompt(contactPrompt string) string {
	return fmt.Sprintf(`Your previous response was invalid JSON. Return ONLY valid JSON.

%s

Return ONLY a single JSON object with this schema:
%s

Rules:
- Use double quotes for all keys and strings.
- No markdown, no trailing text, JSON only.
`, contactPrompt, emailSchema)
}

func splitPosts(posts []models.Post) (social, blog []models.Post) {
	for _, post := range posts {
		switch post.Type {
		case "social_post":
			social = append(social, post)
		case "blog_post":
			blog = append(blog, post)
		}
	}
	return social, blog
}

func postContent(post models.Post) string {
	if post.Content != "" {
		return post.Content
	}
	return post.Excerpt
}

func postExcerpt(post models.Post) string {
	if post.Excerpt != "" {
		return post.Excerpt
	}
	return post.Content
}

func postTitle(post models.Post) string {
	if post.Title == "" {
		return "Untitled"
	}
	return post.Title
}

func clip(text string, limit int) string {
	if len(text) > limit {
		return text[:limit]
	}
	return text
}
