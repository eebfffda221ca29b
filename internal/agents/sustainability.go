package agents

import (
	"strings"

	"cpace/internal/models"
)

// sustainabilityKeywords is the fixed vocabulary that marks an event as
// sustainability-focused. Matching is an English substring check; behavior
// on non-English event text is a known limitation.
var sustainabilityKeywords = []string{
	"sustainability", "sustainable", "green", "energy", "renewable",
	"solar", "wind", "efficiency", "carbon", "climate", "environmental",
	"esg", "clean", "eco", "conservation", "net zero", "decarbonization",
	"leed", "pace", "c-pace", "building performance", "retrofit",
	"hvac", "lighting", "insulation", "smart building",
}

// IsSustainabilityEvent reports whether an event matches the sustainability
// vocabulary, checking name, description, and type case-insensitively.
func IsSustainabilityEvent(event models.Event) bool {
	combined := strings.ToLower(event.Name + " " + event.Description + " " + event.Type)
	for _, keyword := range sustainabilityKeywords {
		if strings.Contains(combined, keyword) {
			return true
		}
	}
	return false
}

// SplitEvents partitions events into sustainability-focused and other,
// preserving input order within each group.
func SplitEvents(events []models.Event) (sustainability, other []models.Event) {
	for _, event := range events {
		if IsSustainabilityEvent(event) {
			sustainability = append(sustainability, event)
		} else {
			other = append(other, event)
		}
	}
	return sustainability, other
}
