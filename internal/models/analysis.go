package models

import "fmt"

// Qualification levels the analysis schema accepts.
const (
	LevelStrong   = "Strong"
	LevelModerate = "Moderate"
	LevelWeak     = "Weak"
)

// LeadAnalysis is the validated schema for an AI lead qualification result.
// The events_attended and sustainability_events_count fields are derived
// locally and always overwritten after parsing; model output for them is
// never trusted.
type LeadAnalysis struct {
	Score                          int      `json:"score"`
	Level                          string   `json:"level"`
	Summary                        string   `json:"summary"`
	LocationIneligibility          string   `json:"location_ineligibility"`
	CompanyIndicatorsIneligibility string   `json:"company_indicators_ineligibility"`
	Strengths                      []string `json:"strengths"`
	Concerns                       []string `json:"concerns"`
	RecommendedActions             []string `json:"recommended_actions"`
	TalkingPoints                  []string `json:"talking_points"`
	EventsAttended                 []Event  `json:"events_attended"`
	SustainabilityEventsCount      int      `json:"sustainability_events_count"`
	RawAnalysis                    string   `json:"raw_analysis,omitempty"`
}

// Validate checks the decoded analysis against the schema: level must be a
// known enum value and the list fields must all be present (a missing key
// decodes to a nil slice). Score bounds are not checked here; the lead agent
// clamps the score into [1,10] after parsing.
func (a *LeadAnalysis) Validate() error {
	switch a.Level {
	case LevelStrong, LevelModerate, LevelWeak:
	default:
		return fmt.Errorf("level must be one of %s, %s, %s; got %q", LevelStrong, LevelModerate, LevelWeak, a.Level)
	}
	if a.Summary == "" {
		return fmt.Errorf("summary is required")
	}
	if a.Strengths == nil {
		return fmt.Errorf("strengths is required")
	}
	if a.Concerns == nil {
		return fmt.Errorf("concerns is required")
	}
	if a.RecommendedActions == nil {
		return fmt.Errorf("recommended_actions is required")
	}
	if a.TalkingPoints == nil {
		return fmt.Errorf("talking_points is required")
	}
	return nil
}

// AnalysisResult is the cached and returned envelope for a lead analysis.
// Cached distinguishes a cache hit from a fresh computation.
type AnalysisResult struct {
	ContactID   int          `json:"contact_id"`
	ContactName string       `json:"contact_name"`
	Analysis    LeadAnalysis `json:"analysis"`
	Cached      bool         `json:"cached"`
}
