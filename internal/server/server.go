// Package server exposes the rendering engine over HTTP for live previews.
// Sessions hold in-memory answer state only; nothing survives a restart.
package server

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/sells-group/draft-cli/internal/answers"
	"github.com/sells-group/draft-cli/internal/config"
	"github.com/sells-group/draft-cli/internal/engine"
	"github.com/sells-group/draft-cli/internal/schema"
)

// Server owns the engine and the live preview sessions.
type Server struct {
	eng *engine.Engine
	doc *schema.Document
	cfg config.ServerConfig

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	mu      sync.Mutex
	ans     *answers.Store
	limiter *rate.Limiter
}

// New creates a Server over an engine.
func New(eng *engine.Engine, cfg config.ServerConfig) *Server {
	return &Server{
		eng:      eng,
		doc:      eng.Document(),
		cfg:      cfg,
		sessions: make(map[string]*session),
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/health", s.handleHealth)
	r.Get("/schema", s.handleSchema)

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.handleCreateSession)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Delete("/", s.handleDeleteSession)
			r.Patch("/answers", s.handlePatchAnswer)
		})
	})

	return r
}

func (s *Server) newSession() (string, *session) {
	id := uuid.New().String()
	sess := &session{
		ans:     answers.Seed(s.doc),
		limiter: rate.NewLimiter(rate.Limit(s.cfg.RendersPerSecond), s.cfg.RenderBurst),
	}
	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()
	return id, sess
}

func (s *Server) session(id string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *Server) dropSession(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}
