package web

import (
	"log"
	"net/http"

	"github.com/cube-groups/solver/internal/solve"
	"github.com/gorilla/mux"
)

type Server struct {
	router *mux.Router
	engine *solve.Engine
}

// NewServer builds a server with its own solve.Engine, shared across every
// request's lifetime so the pipelines' heuristic caches are built once
// rather than once per /api/solve call.
func NewServer() *Server {
	s := &Server{
		router: mux.NewRouter(),
		engine: solve.NewEngine(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// API routes. SPEC_FULL.md's HTTP section names /solve and
	// /benchmark/stream; /health is a plain liveness check. Beyond these,
	// the teacher's unauthenticated /api/exec (shelled out to a compiled
	// cube binary with a client-supplied command string) and the /terminal
	// page that drove it are dropped rather than carried forward silently.
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/solve", s.handleSolve).Methods("POST")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
	api.HandleFunc("/benchmark/stream", s.handleBenchmarkStream).Methods("GET")

	// Static files
	s.router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("./internal/web/static/"))))

	// Serve main page
	s.router.HandleFunc("/", s.handleIndex).Methods("GET")
}

func (s *Server) Start(addr string) error {
	log.Printf("Server starting on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
