// Package agents holds the three LLM-backed agents: chat, lead
// qualification, and email generation. The lead and email agents share the
// structured-output pipeline in internal/llm; the chat agent returns free
// text with no schema.
package agents

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"cpace/internal/llm"
	"cpace/internal/models"
)

const (
	leadMaxTokens   = 1024
	leadTemperature = 0.3

	// Prompt size bounds: sustainability events are the qualification
	// signal, so they get the larger share.
	maxSustainabilityEvents = 10
	maxOtherEvents          = 5
)

// LeadAgent qualifies leads for C-PACE financing using the completion
// backend.
type LeadAgent struct {
	llm    llm.Completer
	skills string
}

// NewLeadAgent creates a lead qualification agent with the given system
// prompt.
func NewLeadAgent(completer llm.Completer, skills string) *LeadAgent {
	return &LeadAgent{llm: completer, skills: skills}
}

// Analyze runs the qualification analysis for a contact. Event counts are
// derived locally and always overwrite whatever the model emitted; the
// score is clamped into [1,10] after parsing.
func (a *LeadAgent) Analyze(ctx context.Context, contact models.Contact, counts *models.EngagementCounts, events []models.Event) (*models.LeadAnalysis, error) {
	sustainability, _ := SplitEvents(events)
	contactPrompt := formatContactForAnalysis(contact, counts, events)

	var analysis models.LeadAnalysis
	raw, err := llm.GenerateStructured(ctx, a.llm, llm.StructuredRequest{
		System:       a.skills,
		Prompt:       buildAnalysisPrompt(contactPrompt),
		RepairPrompt: buildAnalysisRepairPrompt(contactPrompt),
		MaxTokens:    leadMaxTokens,
		Temperature:  leadTemperature,
		Parse: func(raw string) error {
			analysis = models.LeadAnalysis{}
			return llm.ParseInto(raw, &analysis)
		},
	})
	if err != nil {
		return nil, err
	}

	attended := events
	if attended == nil {
		attended = []models.Event{}
	}
	analysis.EventsAttended = attended
	analysis.SustainabilityEventsCount = len(sustainability)
	analysis.Score = clampScore(analysis.Score)
	analysis.RawAnalysis = raw

	return &analysis, nil
}

// clampScore forces a model-emitted score into [1,10]. The parser accepts
// out-of-range scores as decoded; clamping here keeps the surfaced result
// within bounds without rejecting an otherwise valid analysis.
func clampScore(score int) int {
	if score < 1 {
		return 1
	}
	if score > 10 {
		return 10
	}
	return score
}

// formatContactForAnalysis renders the contact, engagement counts, and event
// history as a prompt block. Absent fields render as an explicit "Unknown"
// placeholder so the model never infers missing data silently.
func formatContactForAnalysis(contact models.Contact, counts *models.EngagementCounts, events []models.Event) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## Contact Information\n")
	fmt.Fprintf(&b, "- **Name**: %s\n", contact.FullName())
	fmt.Fprintf(&b, "- **Title**: %s\n", orUnknown(contact.Title))
	fmt.Fprintf(&b, "- **Email**: %s\n", orUnknown(contact.Email))
	fmt.Fprintf(&b, "- **Phone**: %s\n", orUnknown(contact.Phone))
	fmt.Fprintf(&b, "- **Location**: %s\n", orUnknown(contact.Location))
	fmt.Fprintf(&b, "- **State**: %s\n\n", orUnknown(contact.State))

	fmt.Fprintf(&b, "## Company Information\n")
	fmt.Fprintf(&b, "- **Company**: %s\n", orUnknown(contact.Company))
	fmt.Fprintf(&b, "- **Industry**: %s\n", orUnknown(contact.Industry))
	fmt.Fprintf(&b, "- **Company Size**: %s\n", orUnknown(contact.CompanySize))
	fmt.Fprintf(&b, "- **Employee Count**: %s\n", intOrUnknown(contact.EmployeeCount))
	fmt.Fprintf(&b, "- **Revenue**: $%s\n\n", floatOrUnknown(contact.Revenue))

	fmt.Fprintf(&b, "## Current CRM Score\n")
	fmt.Fprintf(&b, "- **Existing C-PACE Fit Score**: %s/10\n", fitScore(contact.CPACEFitScore))

	if counts != nil {
		fmt.Fprintf(&b, "\n## Engagement Metrics\n")
		fmt.Fprintf(&b, "- **Social Posts**: %d\n", counts.SocialPosts)
		fmt.Fprintf(&b, "- **Blog Posts**: %d\n", counts.BlogPosts)
		fmt.Fprintf(&b, "- **Events Attended**: %d\n", counts.Events)
	}

	if len(events) > 0 {
		sustainability, other := SplitEvents(events)

		fmt.Fprintf(&b, "\n## Events Attended (%d total)\n", len(events))

		if len(sustainability) > 0 {
			fmt.Fprintf(&b, "\n### Sustainability-Focused Events (%d) - HIGH VALUE FOR C-PACE\n", len(sustainability))
			for _, event := range truncateEvents(sustainability, maxSustainabilityEvents) {
				fmt.Fprintf(&b, "- **%s** (%s)", eventName(event), event.When())
				if event.Location != "" {
					fmt.Fprintf(&b, " - %s", event.Location)
				}
				b.WriteString("\n")
			}
		}

		if len(other) > 0 {
			fmt.Fprintf(&b, "\n### Other Events (%d)\n", len(other))
			for _, event := range truncateEvents(other, maxOtherEvents) {
				fmt.Fprintf(&b, "- %s (%s)\n", eventName(event), event.When())
			}
		}

		fmt.Fprintf(&b, "\n**Note**: This contact has attended %d sustainability-focused events, which indicates strong alignment with C-PACE financing interests. Consider adding +1 to the qualification score for sustainability engagement.\n", len(sustainability))
	}

	return b.String()
}

const leadSchema = `{
  "score": integer from 1 to 10,
  "level": "Strong" | "Moderate" | "Weak",
  "summary": string (2-3 sentence executive summary),
  "location_ineligibility": string (location ineligibility reason, or empty string),
  "company_indicators_ineligibility": string (company indicators ineligibility reason, or empty string),
  "strengths": array of strings,
  "concerns": array of strings,
  "recommended_actions": array of strings,
  "talking_points": array of strings
}`

func buildAnalysisPrompt(contactPrompt string) string {
	return fmt.Sprintf(`Analyze this lead for C-PACE financing qualification:

%s

Return ONLY a single RFC8259-compliant JSON object with the following keys:
%s

Remember:
- Be specific and reference the actual data provided
- Focus on actionable insights for the sales team
- Use double quotes for all keys and strings
- Do not include markdown, backticks, or commentary outside the JSON
`, contactPrompt, leadSchema)
}

func buildAnalysisRepairPrompt(contactPrompt string) string {
	return fmt.Sprintf(`Your previous response was invalid JSON. Return ONLY valid JSON.

%s

Return ONLY a single JSON object with this schema:
%s

Rules:
- Use double quotes for all keys and strings.
- No markdown, no trailing text, JSON only.
`, contactPrompt, leadSchema)
}

func truncateEvents(events []models.Event, limit int) []models.Event {
	if len(events) > limit {
		return events[:limit]
	}
	return events
}

func eventName(event models.Event) string {
	if event.Name == "" {
		return "Unnamed Event"
	}
	return event.Name
}

func orUnknown(value string) string {
	if value == "" {
		return "Unknown"
	}
	return value
}

func intOrUnknown(value *int) string {
	if value == nil {
		return "Unknown"
	}
	return strconv.Itoa(*value)
}

func floatOrUnknown(value *float64) string {
	if value == nil {
		return "Unknown"
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}

func fitScore(value *float64) string {
	if value == nil {
		return "Not set"
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}
