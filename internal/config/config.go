package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds all configuration for the application
type Config struct {
	Port            string
	Version         string
	LogLevel        string
	HFAPIToken      string // Hugging Face router API token
	HFModel         string // Chat completion model id
	HFBaseURL       string // OpenAI-compatible router base URL
	LLMTimeout      int    // Completion API timeout in seconds
	CRMBaseURL      string // CRM REST API base URL
	CRMAPIKey       string // CRM bearer token
	CRMTimeout      int    // CRM API timeout in seconds
	SkillsFile      string // Chat agent system prompt file
	LeadSkillsFile  string // Lead qualification system prompt file
	EmailSkillsFile string // Email generation system prompt file
	SendGridAPIKey  string // SendGrid API key for sending drafted outreach emails
	SalesFromEmail  string // From address for outreach emails
}

// Load initializes and returns application configuration
func Load() *Config {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Port:            getEnv("PORT", "8080"),
		Version:         getEnv("VERSION", "1.0.0"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		HFAPIToken:      os.Getenv("HF_API_TOKEN"),
		HFModel:         getEnv("HF_MODEL", "meta-llama/Llama-3.1-8B-Instruct"),
		HFBaseURL:       getEnv("HF_BASE_URL", "https://router.huggingface.co/v1"),
		LLMTimeout:      getEnvInt("LLM_TIMEOUT", 60),
		CRMBaseURL:      getEnv("CRM_BASE_URL", "https://api.30apps.dev/api/v1"),
		CRMAPIKey:       os.Getenv("CRM_API_KEY"),
		CRMTimeout:      getEnvInt("CRM_TIMEOUT", 30),
		SkillsFile:      getEnv("SKILLS_FILE", "skills.md"),
		LeadSkillsFile:  getEnv("LEAD_SKILLS_FILE", "lead_qualification_skills.md"),
		EmailSkillsFile: getEnv("EMAIL_SKILLS_FILE", "email_generation_skills.md"),
		SendGridAPIKey:  os.Getenv("SENDGRID_API_KEY"),
		SalesFromEmail:  getEnv("SALES_FROM_EMAIL", "outreach@cpace.dev"),
	}

	return config
}

// getEnv gets an environment variable with a default fallback
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as integer with a default fallback
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// SetupLogger configures zerolog with JSON output and single-line format
func (c *Config) SetupLogger() zerolog.Logger {
	// Configure zerolog to output JSON without newlines
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Create logger with JSON output to stdout
	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "cpace").
		Str("version", c.Version).
		Logger()

	// Set log level based on configuration
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger = logger.Level(level)

	return logger
}
