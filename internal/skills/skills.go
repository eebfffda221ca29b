// Package skills loads the system prompt ("skills") files that steer each
// agent. Each file is read once at startup; a missing file falls back to a
// fixed one-line prompt so the agents always have a system message.
package skills

import "os"

// Fallback prompts used when a skills file is absent.
const (
	ChatFallback  = "You are a helpful assistant."
	LeadFallback  = "You are a lead qualification specialist for C-PACE financing."
	EmailFallback = "You are an email copywriter for C-PACE financing outreach."
)

// Load reads a skills file, returning the fallback when the file does not
// exist or cannot be read.
func Load(path, fallback string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return fallback
	}
	return string(data)
}
