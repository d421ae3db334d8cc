// Package server answers solve queries over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/milden6/wordpool"
	"github.com/milden6/wordpool/internal/cache"
	"github.com/milden6/wordpool/pkg/logger"
)

type Options struct {
	Addr    string
	GinMode string
	// Requests per Per are allowed across all clients. Zero disables limiting.
	Requests int
	Per      time.Duration
	// MaxLetters caps the board length /solve accepts. Zero means no cap.
	MaxLetters int
}

type Server struct {
	router *gin.Engine
	finder wordpool.Finder
	solver cache.Solver
	log    logger.Logger
	addr   string

	maxLetters int
}

// New serves finder. Boards are solved through solver when it is not nil,
// which lets a cache sit in front of the tree.
func New(log logger.Logger, finder wordpool.Finder, solver cache.Solver, o Options) *Server {
	if o.GinMode != "" {
		gin.SetMode(o.GinMode)
	}
	if solver == nil {
		solver = finder
	}

	s := &Server{
		router: gin.New(),
		finder: finder,
		solver: solver,
		log:    log,
		addr:   o.Addr,

		maxLetters: o.MaxLetters,
	}

	s.router.Use(gin.Recovery(), s.logRequests())
	if o.Requests > 0 && o.Per > 0 {
		limiter := rate.NewLimiter(rate.Every(o.Per/time.Duration(o.Requests)), o.Requests)
		s.router.Use(rateLimit(limiter))
	}

	s.router.GET("/healthz", s.health)
	s.router.GET("/solve", s.solve)
	s.router.GET("/words/:word", s.word)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := s.newServer(s.addr, s.router)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) newServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("Request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"took", time.Since(start),
		)
	}
}

func rateLimit(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
