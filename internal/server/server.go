// Package server exposes the quiz content and scoring over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/minatbakat/internal/content"
	"github.com/abhisek/minatbakat/internal/metrics"
	"github.com/abhisek/minatbakat/internal/notify"
	"github.com/abhisek/minatbakat/internal/quiz"
	"github.com/abhisek/minatbakat/internal/scoring"
	"github.com/abhisek/minatbakat/internal/session"
)

// Options wires the server's collaborators.
type Options struct {
	Source     content.Source
	CodeLength scoring.CodeLength
	Notifier   *notify.Notifier
	Metrics    *metrics.Metrics
	Gatherer   prometheus.Gatherer
	Logger     *zap.Logger
	Debug      bool
	// CORSOrigins lists browser origins allowed to call the API; "*"
	// allows any. Empty disables CORS headers.
	CORSOrigins []string
}

// Server serves the quiz API.
type Server struct {
	opts   Options
	engine *gin.Engine
	logger *zap.Logger
}

// New builds the gin engine and registers routes.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Source == nil {
		opts.Source = content.Embedded()
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	if opts.CodeLength == 0 {
		opts.CodeLength = scoring.DefaultCodeLength
	}
	if !opts.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{opts: opts, engine: engine, logger: opts.Logger.Named("server")}
	engine.Use(s.accessLog())
	if len(opts.CORSOrigins) > 0 {
		engine.Use(corsFor(opts.CORSOrigins))
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.engine.GET("/healthz", s.handleHealth)
	s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.opts.Gatherer, promhttp.HandlerOpts{})))

	s.engine.GET("/"+content.QuestionsFile, s.handleQuestions)
	s.engine.GET("/"+content.ProfilesFile, s.handleProfiles)

	api := s.engine.Group("/api")
	{
		api.POST("/score", s.handleScore)
	}
}

// Handler returns the http.Handler for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.opts.Notifier.Wait()
	return nil
}

func corsFor(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
		}
	}
	if !cfg.AllowAllOrigins {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

// Preflight loads questions and profiles concurrently so a broken
// content location fails at startup rather than on the first request.
func Preflight(ctx context.Context, src content.Source) (questions, profiles int, err error) {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		bank, err := src.Questions(ctx)
		if err != nil {
			return err
		}
		questions = bank.Len()
		return nil
	})
	g.Go(func() error {
		table, err := src.Profiles(ctx)
		if err != nil {
			return err
		}
		profiles = len(table)
		return nil
	})
	err = g.Wait()
	return questions, profiles, err
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleQuestions(c *gin.Context) {
	bank, err := s.opts.Source.Questions(c.Request.Context())
	if err != nil {
		s.loadFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, bank.Questions())
}

func (s *Server) handleProfiles(c *gin.Context) {
	table, err := s.opts.Source.Profiles(c.Request.Context())
	if err != nil {
		s.loadFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

// scoreRequest is the POST /api/score body. Answers are keyed by
// question ID.
type scoreRequest struct {
	Participant quiz.Participant `json:"participant"`
	Answers     map[int]int      `json:"answers" binding:"required"`
}

func (s *Server) handleScore(c *gin.Context) {
	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	bank, err := s.opts.Source.Questions(ctx)
	if err != nil {
		s.loadFailed(c, err)
		return
	}

	runID := uuid.NewString()
	st, err := session.Replay(runID, req.Participant, bank, req.Answers)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	table, err := s.opts.Source.Profiles(ctx)
	if err != nil {
		s.loadFailed(c, err)
		return
	}

	outcome := session.Result(st, table, s.opts.CodeLength)
	rep := outcome.Report(st)

	s.opts.Metrics.RecordResult(rep.MBTIType, rep.RIASECCode, rep.Found)
	s.logger.Info("scored",
		zap.String("run", runID),
		zap.String("mbti", rep.MBTIType),
		zap.String("riasec", rep.RIASECCode),
		zap.Bool("matched", rep.Found),
		zap.Int("answered", st.Answered()),
	)

	if p, ok := notify.FromReport(rep); ok {
		s.opts.Notifier.Fire(p)
	}

	c.JSON(http.StatusOK, rep)
}

func (s *Server) loadFailed(c *gin.Context, err error) {
	msg := content.QuestionsFailedMessage
	var le *content.LoadError
	if errors.As(err, &le) {
		s.opts.Metrics.RecordLoadFailure(le.What)
		msg = le.UserMessage()
	}
	s.logger.Warn("content load failed", zap.Error(err))
	c.JSON(http.StatusBadGateway, gin.H{"error": msg})
}
