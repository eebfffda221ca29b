package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "1.0.0", cfg.Version)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "meta-llama/Llama-3.1-8B-Instruct", cfg.HFModel)
	assert.Equal(t, "https://router.huggingface.co/v1", cfg.HFBaseURL)
	assert.Equal(t, 60, cfg.LLMTimeout)
	assert.Equal(t, "https://api.30apps.dev/api/v1", cfg.CRMBaseURL)
	assert.Equal(t, 30, cfg.CRMTimeout)
	assert.Equal(t, "skills.md", cfg.SkillsFile)
	assert.Equal(t, "lead_qualification_skills.md", cfg.LeadSkillsFile)
	assert.Equal(t, "email_generation_skills.md", cfg.EmailSkillsFile)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HF_MODEL", "mistralai/Mistral-7B-Instruct-v0.3")
	t.Setenv("LLM_TIMEOUT", "120")
	t.Setenv("CRM_BASE_URL", "http://localhost:3000/api/v1")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "mistralai/Mistral-7B-Instruct-v0.3", cfg.HFModel)
	assert.Equal(t, 120, cfg.LLMTimeout)
	assert.Equal(t, "http://localhost:3000/api/v1", cfg.CRMBaseURL)
}

func TestGetEnvInt_InvalidValueFallsBack(t *testing.T) {
	t.Setenv("CRM_TIMEOUT", "not-a-number")

	cfg := Load()
	assert.Equal(t, 30, cfg.CRMTimeout)
}

func TestSetupLogger(t *testing.T) {
	cfg := &Config{Version: "1.0.0", LogLevel: "debug"}
	logger := cfg.SetupLogger()
	assert.Equal(t, "debug", logger.GetLevel().String())

	cfg.LogLevel = "bogus"
	logger = cfg.SetupLogger()
	assert.Equal(t, "info", logger.GetLevel().String())
}
