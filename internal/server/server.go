package server

import (
	"time"

	"cpace/internal/agents"
	"cpace/internal/cache"
	"cpace/internal/config"
	"cpace/internal/crm"
	"cpace/internal/email"
	"cpace/internal/handlers"
	"cpace/internal/llm"
	"cpace/internal/session"
	"cpace/internal/skills"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server represents the application server
type Server struct {
	echo     *echo.Echo
	config   *config.Config
	logger   zerolog.Logger
	crm      *crm.Client
	chat     *agents.ChatAgent
	leads    *agents.LeadAgent
	emails   *agents.EmailAgent
	sessions *session.Store
	analyses *cache.AnalysisCache
	sender   *email.Service
}

// New creates a new server instance with all collaborators wired
func New(cfg *config.Config, logger zerolog.Logger) *Server {
	completer := llm.NewClient(cfg)
	sessions := session.New()

	return &Server{
		config:   cfg,
		logger:   logger,
		crm:      crm.NewClient(cfg),
		chat:     agents.NewChatAgent(completer, skills.Load(cfg.SkillsFile, skills.ChatFallback), sessions),
		leads:    agents.NewLeadAgent(completer, skills.Load(cfg.LeadSkillsFile, skills.LeadFallback)),
		emails:   agents.NewEmailAgent(completer, skills.Load(cfg.EmailSkillsFile, skills.EmailFallback)),
		sessions: sessions,
		analyses: cache.New(),
		sender:   email.NewService(cfg.SendGridAPIKey, cfg.SalesFromEmail),
	}
}

// zerologMiddleware creates a zerolog-based logging middleware for Echo
func (s *Server) zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			req := c.Request()
			res := c.Response()

			s.logger.Info().
				Str("method", req.Method).
				Str("uri", req.RequestURI).
				Str("remote_ip", c.RealIP()).
				Int("status", res.Status).
				Int64("latency_ms", time.Since(start).Milliseconds()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return err
		}
	}
}

// Initialize sets up the Echo framework with middleware and routes
func (s *Server) Initialize() {
	s.echo = echo.New()

	// Middleware
	s.echo.Use(s.zerologMiddleware())
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.CORS())

	// Hide Echo banner
	s.echo.HideBanner = true

	// Setup routes
	s.setupRoutes()
}

// setupRoutes configures all the application routes
func (s *Server) setupRoutes() {
	// Swagger documentation
	s.echo.GET("/swagger/*", echoSwagger.WrapHandler)

	// Health endpoint (kept at root level for monitoring)
	s.echo.GET("/healthz", handlers.HealthHandler(s.config.Version))

	// Chat and session endpoints
	s.echo.POST("/chat", handlers.ChatHandler(s.chat))
	s.echo.DELETE("/session/:sessionId", handlers.ClearSessionHandler(s.sessions))
	s.echo.GET("/sessions", handlers.ListSessionsHandler(s.sessions))

	// API endpoints under /api prefix
	api := s.echo.Group("/api")
	api.GET("/", handlers.RootHandler(s.config.Version))

	// CRM pass-through
	api.GET("/contacts", handlers.ListContactsHandler(s.crm))
	api.GET("/contacts/:contactId", handlers.GetContactHandler(s.crm))
	api.GET("/contacts/:contactId/messages", handlers.ContactMessagesHandler(s.crm))
	api.GET("/contacts/:contactId/events", handlers.ContactEventsHandler(s.crm))

	// AI lead analysis and email generation
	api.POST("/contacts/:contactId/analyze", handlers.AnalyzeContactHandler(s.crm, s.leads, s.analyses))
	api.POST("/contacts/:contactId/generate-email", handlers.GenerateEmailHandler(s.crm, s.emails))
	api.POST("/contacts/:contactId/send-email", handlers.SendEmailHandler(s.crm, s.sender))
	api.DELETE("/analysis-cache", handlers.ClearAnalysisCacheHandler(s.analyses))
	api.DELETE("/analysis-cache/:contactId", handlers.ClearAnalysisCacheHandler(s.analyses))

	// Serve static files (this should be last to avoid conflicts)
	s.echo.Static("/", "static")
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info().Str("port", s.config.Port).Msg("Server starting")
	return s.echo.Start(":" + s.config.Port)
}
