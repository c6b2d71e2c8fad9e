package slack

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/custodia-labs/sercha-assist/internal/core/domain"
	"github.com/custodia-labs/sercha-assist/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-assist/internal/logger"
)

// Messages shown to Slack users.
const (
	AckMessage   = "Searching…"
	UsageMessage = "Ask me a question, for example `/ask How do I request time off?`"
)

// answerTimeout bounds one background answer.
const answerTimeout = 2 * time.Minute

// Config holds chat transport configuration.
type Config struct {
	// SigningSecret verifies inbound requests (required).
	SigningSecret string

	// BotToken authorises chat.postMessage.
	BotToken string

	// APIBaseURL overrides the Slack Web API root.
	APIBaseURL string
}

// Server is the HTTP server for Slack commands and events.
type Server struct {
	router chi.Router
	answer driving.AnswerService
	poster *Poster
	secret string

	wg sync.WaitGroup
}

// NewServer creates and configures the HTTP server.
func NewServer(cfg Config, answer driving.AnswerService) (*Server, error) {
	if cfg.SigningSecret == "" {
		return nil, fmt.Errorf("%w: slack signing secret", domain.ErrNotConfigured)
	}
	if answer == nil {
		return nil, errors.New("slack: answer service is required")
	}

	s := &Server{
		answer: answer,
		poster: NewPoster(cfg.BotToken, cfg.APIBaseURL),
		secret: cfg.SigningSecret,
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger)

	r.Get("/healthz", s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(VerifySignature(s.secret))

		r.Post("/slack/commands", s.handleCommand)
		r.Post("/slack/events", s.handleEvent)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// ListenAndServe serves on addr until ctx is cancelled, then waits for
// in-flight answers to finish.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	logger.Info("slack transport listening on %s", addr)
	err := httpServer.ListenAndServe()
	s.Wait()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Wait blocks until all background answers have been delivered.
func (s *Server) Wait() {
	s.wg.Wait()
}

// background runs fn detached from the request, which has already been
// acknowledged.
func (s *Server) background(r *http.Request, fn func(ctx context.Context)) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), answerTimeout)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()
		fn(ctx)
	}()
}

// answerText runs the pipeline and converts faults into the generic
// failure message.
func (s *Server) answerText(ctx context.Context, question string) string {
	answer, err := s.answer.Answer(ctx, question)
	if err != nil {
		logger.With("request_id", middleware.GetReqID(ctx)).Error("answer failed: %v", err)
		return domain.GenericFailureMessage
	}
	return answer
}

func writeJSON(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}
