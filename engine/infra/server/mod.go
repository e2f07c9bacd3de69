package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"

	"github.com/Parthiban024/jira-automation/engine/asana"
	"github.com/Parthiban024/jira-automation/engine/webhook"
	"github.com/Parthiban024/jira-automation/pkg/config"
	"github.com/Parthiban024/jira-automation/pkg/logger"
)

// Server hosts the inbound webhook endpoint and owns process lifecycle.
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	ctx    context.Context
	cancel context.CancelFunc
}

func NewServer(cfg *config.Config) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{cfg: cfg, ctx: ctx, cancel: cancel}
}

func (s *Server) buildRouter() error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(logger.GetDefault()))

	metrics, err := webhook.NewMetrics(otel.Meter("jira-automation/webhook"))
	if err != nil {
		return fmt.Errorf("failed to init webhook metrics: %w", err)
	}
	tasks := asana.NewClient(&s.cfg.Asana)
	webhook.Register(r, webhook.NewService(tasks, metrics, 1<<20))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router = r
	return nil
}

// Run builds the router, starts the HTTP server and blocks until a
// shutdown signal arrives.
func (s *Server) Run() error {
	if err := s.buildRouter(); err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}
	srv := s.createHTTPServer()
	go s.startServer(srv)
	return s.handleGracefulShutdown(srv)
}

func (s *Server) createHTTPServer() *http.Server {
	addr := s.cfg.Server.FullAddress()
	logger.Info("Starting Jira to Asana sync server",
		"address", fmt.Sprintf("http://%s", addr),
	)
	return &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout: s.cfg.Server.Timeout,
		// The handler blocks on the outbound Asana call before answering,
		// so the write timeout must outlast the outbound timeout.
		WriteTimeout: s.cfg.Asana.Timeout + s.cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}
}

func (s *Server) startServer(srv *http.Server) {
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}

func (s *Server) handleGracefulShutdown(srv *http.Server) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Debug("Received shutdown signal, initiating graceful shutdown")

	s.cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.Info("Server shutdown completed successfully")
	return nil
}
