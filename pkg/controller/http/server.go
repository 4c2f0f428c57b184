package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hemanth0525/contribuzz/pkg/domain/interfaces"
)

// config holds internal HTTP server configuration
type config struct {
	addr    string
	baseURL string
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithBaseURL sets the public origin used in generated embed snippets
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server exposing the wall API
func NewServer(
	ctx context.Context,
	contributorUC interfaces.ContributorUseCase,
	wallUC interfaces.WallUseCase,
	subscriberUC interfaces.SubscriberUseCase,
	feedbackUC interfaces.FeedbackUseCase,
	opts ...Option,
) (*Server, error) {
	cfg := &config{
		addr:    "localhost:8080",
		baseURL: "https://contri.buzz",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	h := &handler{
		contributors: contributorUC,
		walls:        wallUC,
		subscribers:  subscriberUC,
		feedback:     feedbackUC,
		baseURL:      cfg.baseURL,
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	router.Get("/health", handleHealth)

	router.Route("/api", func(r chi.Router) {
		r.Get("/wall", h.handleWall)
		r.Get("/embed", h.handleEmbed)
		r.Get("/log", h.handleLog)
		r.Post("/fetchContributors", h.handleFetchContributors)
		r.Post("/githubRepo", h.handleGithubRepo)
		r.Post("/generateWall", h.handleGenerateWall)
		r.Post("/save-full-wall", h.handleSaveFullWall)
		r.Post("/save-avatar-wall", h.handleSaveAvatarWall)
		r.Post("/addSubscriber", h.handleAddSubscriber)
		r.Post("/sendFeedback", h.handleSendFeedback)
	})

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}

// handler carries the use cases every endpoint dispatches into
type handler struct {
	contributors interfaces.ContributorUseCase
	walls        interfaces.WallUseCase
	subscribers  interfaces.SubscriberUseCase
	feedback     interfaces.FeedbackUseCase
	baseURL      string
}
