// Package server exposes the HTTP API: quiz generation and analysis, study
// plan generation and retrieval, tutor chat, and topic notes. Handlers stay
// thin; generation logic lives in the domain packages.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/ravitej/prepmate/internal/quizgen"
	"github.com/ravitej/prepmate/internal/store"
	"github.com/ravitej/prepmate/internal/studyplan"
	"github.com/ravitej/prepmate/internal/tutor"
)

// Server wires the domain services into a chi router.
type Server struct {
	quiz   *quizgen.Generator
	plans  *studyplan.Assembler
	tutor  *tutor.Tutor
	repo   store.PlanRepo
	logger *zap.Logger
}

// New creates a Server. repo may be nil, in which case plans are served but
// not persisted.
func New(quiz *quizgen.Generator, plans *studyplan.Assembler, tut *tutor.Tutor, repo store.PlanRepo, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{quiz: quiz, plans: plans, tutor: tut, repo: repo, logger: logger}
}

// Handler builds the routing table.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/quiz/generate", s.handleQuizGenerate)
		r.Post("/quiz/analyze", s.handleQuizAnalyze)
		r.Post("/quiz/topic", s.handleQuizTopic)

		r.Post("/plan/generate", s.handlePlanGenerate)
		r.Post("/plan/finalize", s.handlePlanFinalize)
		r.Post("/plan/foundation", s.handlePlanFoundation)
		r.Get("/plan/latest", s.handlePlanLatest)
		r.Get("/plan/history", s.handlePlanHistory)

		r.Post("/chat", s.handleChat)
		r.Post("/learn/topic", s.handleLearnTopic)
		r.Post("/practice/questions", s.handlePracticeQuestions)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "prepmate",
	})
}
