package agents

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"cpace/internal/models"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type completionCall struct {
	messages    []openai.ChatCompletionMessage
	maxTokens   int
	temperature float32
}

type stubCompleter struct {
	responses []string
	err       error
	calls     []completionCall
}

func (s *stubCompleter) Complete(_ context.Context, messages []openai.ChatCompletionMessage, maxTokens int, temperature float32) (string, error) {
	i := len(s.calls)
	s.calls = append(s.calls, completionCall{messages: messages, maxTokens: maxTokens, temperature: temperature})
	if s.err != nil {
		return "", s.err
	}
	if i < len(s.responses) {
		return s.responses[i], nil
	}
	return "", fmt.Errorf("unexpected call %d", i)
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestIsSustainabilityEvent(t *testing.T) {
	tests := []struct {
		name     string
		event    models.Event
		expected bool
	}{
		{
			name:     "solar keyword in name",
			event:    models.Event{Name: "Solar Summit 2024"},
			expected: true,
		},
		{
			name:     "hvac keyword in name",
			event:    models.Event{Name: "HVAC Retrofit Conference"},
			expected: true,
		},
		{
			name:     "keyword in description only",
			event:    models.Event{Name: "Annual Gathering", Description: "Panels on renewable financing"},
			expected: true,
		},
		{
			name:     "keyword in type only",
			event:    models.Event{Name: "Fall Mixer", Type: "Sustainability Networking"},
			expected: true,
		},
		{
			name:     "case insensitive",
			event:    models.Event{Name: "NET ZERO ROUNDTABLE"},
			expected: true,
		},
		{
			name:     "unrelated event",
			event:    models.Event{Name: "Quarterly Golf Outing"},
			expected: false,
		},
		{
			name:     "empty event",
			event:    models.Event{},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsSustainabilityEvent(tt.event))
		})
	}
}

func TestSplitEvents_PreservesOrder(t *testing.T) {
	events := []models.Event{
		{Name: "Quarterly Golf Outing"},
		{Name: "Solar Summit"},
		{Name: "Dinner Gala"},
		{Name: "LEED Workshop"},
	}

	sustainability, other := SplitEvents(events)
	require.Len(t, sustainability, 2)
	require.Len(t, other, 2)
	assert.Equal(t, "Solar Summit", sustainability[0].Name)
	assert.Equal(t, "LEED Workshop", sustainability[1].Name)
	assert.Equal(t, "Quarterly Golf Outing", other[0].Name)
	assert.Equal(t, "Dinner Gala", other[1].Name)
}

func TestFormatContactForAnalysis_MissingFieldsRenderPlaceholders(t *testing.T) {
	contact := models.Contact{ID: 1, FirstName: "Dana", LastName: "Reed"}

	prompt := formatContactForAnalysis(contact, nil, nil)

	assert.Contains(t, prompt, "- **Name**: Dana Reed")
	assert.Contains(t, prompt, "- **Title**: Unknown")
	assert.Contains(t, prompt, "- **Email**: Unknown")
	assert.Contains(t, prompt, "- **Phone**: Unknown")
	assert.Contains(t, prompt, "- **Location**: Unknown")
	assert.Contains(t, prompt, "- **State**: Unknown")
	assert.Contains(t, prompt, "- **Company**: Unknown")
	assert.Contains(t, prompt, "- **Industry**: Unknown")
	assert.Contains(t, prompt, "- **Company Size**: Unknown")
	assert.Contains(t, prompt, "- **Employee Count**: Unknown")
	assert.Contains(t, prompt, "- **Revenue**: $Unknown")
	assert.Contains(t, prompt, "- **Existing C-PACE Fit Score**: Not set/10")

	// Optional blocks are omitted entirely when there is no data.
	assert.NotContains(t, prompt, "Engagement Metrics")
	assert.NotContains(t, prompt, "Events Attended")
}

func TestFormatContactForAnalysis_PopulatedFields(t *testing.T) {
	contact := models.Contact{
		FirstName:     "Dana",
		LastName:      "Reed",
		Title:         "Facilities Director",
		State:         "TX",
		Industry:      "Manufacturing",
		EmployeeCount: intPtr(250),
		Revenue:       floatPtr(12500000),
		CPACEFitScore: floatPtr(7),
	}
	counts := &models.EngagementCounts{SocialPosts: 4, BlogPosts: 2, Events: 3}

	prompt := formatContactForAnalysis(contact, counts, nil)

	assert.Contains(t, prompt, "- **Title**: Facilities Director")
	assert.Contains(t, prompt, "- **Employee Count**: 250")
	assert.Contains(t, prompt, "- **Revenue**: $12500000")
	assert.Contains(t, prompt, "- **Existing C-PACE Fit Score**: 7/10")
	assert.Contains(t, prompt, "## Engagement Metrics")
	assert.Contains(t, prompt, "- **Social Posts**: 4")
	assert.Contains(t, prompt, "- **Events Attended**: 3")
}

func TestFormatContactForAnalysis_EventPartitionAndTruncation(t *testing.T) {
	var events []models.Event
	for i := 1; i <= 12; i++ {
		events = append(events, models.Event{Name: fmt.Sprintf("Solar Forum %d", i), Date: "2024-01-01"})
	}
	for i := 1; i <= 7; i++ {
		events = append(events, models.Event{Name: fmt.Sprintf("Trade Dinner %d", i), Date: "2024-02-01"})
	}

	prompt := formatContactForAnalysis(models.Contact{FirstName: "Dana"}, nil, events)

	assert.Contains(t, prompt, "## Events Attended (19 total)")
	assert.Contains(t, prompt, "### Sustainability-Focused Events (12) - HIGH VALUE FOR C-PACE")
	assert.Contains(t, prompt, "### Other Events (7)")

	// Sustainability list is truncated to 10 entries, other events to 5.
	assert.Contains(t, prompt, "Solar Forum 10")
	assert.NotContains(t, prompt, "Solar Forum 11")
	assert.Contains(t, prompt, "Trade Dinner 5")
	assert.NotContains(t, prompt, "Trade Dinner 6")

	// The score bonus hint uses the full sustainability count.
	assert.Contains(t, prompt, "has attended 12 sustainability-focused events")
}

func validLeadJSON(score int, sustainabilityCount int) string {
	return fmt.Sprintf(`{
		"score": %d,
		"level": "Strong",
		"summary": "Great fit for C-PACE.",
		"location_ineligibility": "",
		"company_indicators_ineligibility": "",
		"strengths": ["Decision maker"],
		"concerns": ["None noted"],
		"recommended_actions": ["Schedule a call"],
		"talking_points": ["Solar event attendance"],
		"sustainability_events_count": %d
	}`, score, sustainabilityCount)
}

func TestLeadAgent_Analyze_DerivedFieldsComputedLocally(t *testing.T) {
	// The model claims 99 sustainability events; the derived count wins.
	stub := &stubCompleter{responses: []string{validLeadJSON(8, 99)}}
	agent := NewLeadAgent(stub, "lead skills")

	events := []models.Event{
		{Name: "Solar Summit"},
		{Name: "HVAC Retrofit Conference"},
		{Name: "Quarterly Golf Outing"},
		{Name: "Downtown Dinner Gala"},
	}

	analysis, err := agent.Analyze(context.Background(), models.Contact{FirstName: "Dana"}, nil, events)
	require.NoError(t, err)

	assert.Equal(t, 2, analysis.SustainabilityEventsCount)
	assert.Equal(t, events, analysis.EventsAttended)
	assert.Equal(t, 8, analysis.Score)
	assert.Equal(t, models.LevelStrong, analysis.Level)
	assert.NotEmpty(t, analysis.RawAnalysis)
	require.Len(t, stub.calls, 1)
	assert.Equal(t, float32(0.3), stub.calls[0].temperature)
	assert.Equal(t, 1024, stub.calls[0].maxTokens)
	assert.Equal(t, "lead skills", stub.calls[0].messages[0].Content)
}

func TestLeadAgent_Analyze_ScoreClamped(t *testing.T) {
	tests := []struct {
		name     string
		raw      int
		expected int
	}{
		{name: "above range", raw: 14, expected: 10},
		{name: "below range", raw: 0, expected: 1},
		{name: "negative", raw: -3, expected: 1},
		{name: "in range", raw: 7, expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubCompleter{responses: []string{validLeadJSON(tt.raw, 0)}}
			agent := NewLeadAgent(stub, "lead skills")

			analysis, err := agent.Analyze(context.Background(), models.Contact{FirstName: "Dana"}, nil, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, analysis.Score)
		})
	}
}

func TestLeadAgent_Analyze_NoEventsYieldsEmptyList(t *testing.T) {
	stub := &stubCompleter{responses: []string{validLeadJSON(5, 0)}}
	agent := NewLeadAgent(stub, "lead skills")

	analysis, err := agent.Analyze(context.Background(), models.Contact{FirstName: "Dana"}, nil, nil)
	require.NoError(t, err)

	require.NotNil(t, analysis.EventsAttended)
	assert.Empty(t, analysis.EventsAttended)
	assert.Zero(t, analysis.SustainabilityEventsCount)
}

func TestLeadAgent_Analyze_RepairsInvalidFirstResponse(t *testing.T) {
	stub := &stubCompleter{responses: []string{
		"Sure! Here's my analysis in prose form.",
		validLeadJSON(6, 0),
	}}
	agent := NewLeadAgent(stub, "lead skills")

	analysis, err := agent.Analyze(context.Background(), models.Contact{FirstName: "Dana"}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, analysis.Score)

	require.Len(t, stub.calls, 2)
	assert.Equal(t, float32(0), stub.calls[1].temperature)
	assert.Contains(t, stub.calls[1].messages[1].Content, "previous response was invalid JSON")
}

func TestLeadAgent_Analyze_InvalidLevelFailsBothAttempts(t *testing.T) {
	badLevel := strings.ReplaceAll(validLeadJSON(5, 0), `"Strong"`, `"Excellent"`)
	stub := &stubCompleter{responses: []string{badLevel, badLevel}}
	agent := NewLeadAgent(stub, "lead skills")

	_, err := agent.Analyze(context.Background(), models.Contact{FirstName: "Dana"}, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generation failed validation")
	assert.Len(t, stub.calls, 2)
}
