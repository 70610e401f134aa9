// Package httpserver exposes the exchange service to browsers: the catalog pages as a
// JSON API, the chat operations and a WebSocket stream of the open conversation.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"skillswap/exchange-service/internal/chatsync"
	"skillswap/exchange-service/internal/config"
	"skillswap/exchange-service/internal/identity"
	"skillswap/exchange-service/internal/service"
)

type Deps struct {
	Chat      service.ChatService
	Matches   service.MatchService
	Catalog   service.CatalogService
	Validator *identity.Validator
	// Ready reports whether storage can serve requests. Nil means always ready.
	Ready  func(ctx context.Context) error
	Logger *logrus.Logger
}

type Server struct {
	addr            string
	shutdownTimeout time.Duration
	engine          *gin.Engine

	chat      service.ChatService
	matches   service.MatchService
	catalog   service.CatalogService
	validator *identity.Validator
	sync      chatsync.Config
	ready     func(ctx context.Context) error
	logger    *logrus.Logger
}

func New(cfg *config.Config, deps Deps) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), observe(deps.Logger))

	s := &Server{
		addr:            cfg.HTTP.Addr(),
		shutdownTimeout: cfg.GRPC.ShutdownTimeout,
		engine:          engine,
		chat:            deps.Chat,
		matches:         deps.Matches,
		catalog:         deps.Catalog,
		validator:       deps.Validator,
		sync: chatsync.Config{
			Interval:     cfg.Sync.PollInterval,
			FetchTimeout: cfg.Sync.FetchTimeout,
		},
		ready:  deps.Ready,
		logger: deps.Logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.addr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("Starting HTTP server on %s", s.addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server...")
	case err := <-errCh:
		return err
	}

	timeout := s.shutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func (s *Server) registerRoutes() {
	e := s.engine

	e.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "exchange", "status": "ok"})
	})
	e.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	e.GET("/readyz", s.readyz)
	e.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := e.Group("/api/v1", s.validator.Middleware())

	api.GET("/home", s.home)
	api.GET("/discovery", s.discover)
	api.GET("/users", s.listUsers)
	api.GET("/users/:id", s.getUser)
	api.GET("/skills", s.listSkills)
	api.GET("/skills/:id", s.getSkill)
	api.GET("/skill-listings", s.listSkillListings)
	api.GET("/locations", s.listLocations)
	api.GET("/matches", s.listMatches)
	api.GET("/matches/:id", s.getMatch)
	api.POST("/contact", s.submitContact)
	api.GET("/me", s.me)

	member := api.Group("", identity.RequireMember())
	member.GET("/onboarding", s.getOnboarding)
	member.POST("/onboarding", s.completeOnboarding)
	member.POST("/matches/:id/conversation", s.startConversation)
	member.GET("/chats", s.listConversations)
	member.GET("/chat/:id", s.loadConversation)
	member.GET("/chat/:id/stream", s.streamConversation)
	member.POST("/chat/:id/messages", s.sendMessage)
	member.POST("/chat/:id/contact-requests", s.requestContact)
	member.POST("/chat/:id/read", s.markRead)
	member.POST("/chat/:id/archive", s.archiveConversation)
	member.POST("/contact-requests/:id/approve", s.approveContactRequest)
	member.POST("/contact-requests/:id/decline", s.declineContactRequest)

	e.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/")
	})
}

func (s *Server) readyz(c *gin.Context) {
	if s.ready != nil {
		if err := s.ready(c.Request.Context()); err != nil {
			s.logger.WithError(err).Warn("Readiness check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

func memberID(c *gin.Context) string {
	return identity.SessionFrom(c).MemberID
}
