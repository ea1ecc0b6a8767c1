package server

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/ravitej/prepmate/internal/quizgen"
	"github.com/ravitej/prepmate/internal/store"
	"github.com/ravitej/prepmate/internal/studyplan"
	"github.com/ravitej/prepmate/internal/syllabus"
	"github.com/ravitej/prepmate/internal/tutor"
)

func (s *Server) handleQuizGenerate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Stream  string   `json:"stream"`
		Year    string   `json:"year"`
		History []string `json:"history"`
	}
	if err := decodeJSON(r, &body); err != nil || body.Stream == "" || body.Year == "" {
		writeError(w, http.StatusBadRequest, "Stream and Year required")
		return
	}

	questions, err := s.quiz.GenerateDiagnostic(r.Context(),
		syllabus.Stream(body.Stream), syllabus.Year(body.Year), body.History)
	if err != nil || len(questions) == 0 {
		writeError(w, http.StatusInternalServerError, "Failed to generate quiz")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"questions": questions})
}

func (s *Server) handleQuizAnalyze(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Answers []quizgen.AnswerRecord `json:"answers"`
	}
	if err := decodeJSON(r, &body); err != nil || body.Answers == nil {
		writeError(w, http.StatusBadRequest, "Answers required")
		return
	}

	analysis, err := s.quiz.Analyze(r.Context(), body.Answers)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Analysis failed")
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (s *Server) handleQuizTopic(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Topic    string `json:"topic"`
		Standard string `json:"standard"`
	}
	if err := decodeJSON(r, &body); err != nil || body.Topic == "" {
		writeError(w, http.StatusBadRequest, "Topic required")
		return
	}
	if body.Standard == "" {
		body.Standard = "2nd"
	}

	questions, err := s.quiz.GenerateTopicQuiz(r.Context(), body.Topic, body.Standard, 0)
	if err != nil {
		questions = []quizgen.PracticeQuestion{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"questions": questions})
}

// planRequest is the shared body shape of the plan routes.
type planRequest struct {
	UserProfile *studyplan.Profile `json:"userProfile"`
	QuizResults *quizgen.Analysis  `json:"quizResults"`
	UserID      string             `json:"userId"`
}

func (s *Server) handlePlanGenerate(w http.ResponseWriter, r *http.Request) {
	var body planRequest
	if err := decodeJSON(r, &body); err != nil || body.UserProfile == nil {
		writeError(w, http.StatusBadRequest, "User profile required")
		return
	}
	profile := *body.UserProfile

	// "Never return nothing": whatever goes wrong below, the client gets a
	// structurally valid plan.
	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error("plan generation panic", zap.Any("panic", rec))
			writeJSON(w, http.StatusOK, map[string]any{"plan": studyplan.Skeleton(profile.Year)})
		}
	}()

	var planDoc any
	if profile.StartType == "foundation" {
		planDoc = s.plans.GenerateFoundational(r.Context(), profile)
	} else {
		planDoc = s.plans.GenerateOverview(r.Context(), profile, body.QuizResults)
	}

	s.savePlan(r.Context(), body, planDoc, store.PlanStatusDraft)
	writeJSON(w, http.StatusOK, map[string]any{"plan": planDoc})
}

func (s *Server) handlePlanFinalize(w http.ResponseWriter, r *http.Request) {
	var body planRequest
	if err := decodeJSON(r, &body); err != nil || body.UserProfile == nil {
		writeError(w, http.StatusBadRequest, "User profile required")
		return
	}

	plan := s.plans.GenerateFull(r.Context(), *body.UserProfile, body.QuizResults)
	if plan == nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate full plan")
		return
	}

	s.savePlan(r.Context(), body, plan, store.PlanStatusActive)
	writeJSON(w, http.StatusOK, map[string]any{"plan": plan})
}

func (s *Server) handlePlanFoundation(w http.ResponseWriter, r *http.Request) {
	var body planRequest
	if err := decodeJSON(r, &body); err != nil || body.UserProfile == nil {
		writeError(w, http.StatusBadRequest, "User profile required")
		return
	}

	overview := s.plans.GenerateOverview(r.Context(), *body.UserProfile, nil)
	if overview == nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate plan")
		return
	}

	s.savePlan(r.Context(), body, overview, store.PlanStatusDraft)
	writeJSON(w, http.StatusOK, map[string]any{"plan": overview})
}

func (s *Server) handlePlanLatest(w http.ResponseWriter, r *http.Request) {
	if s.repo == nil {
		writeError(w, http.StatusNotFound, "No plan found")
		return
	}
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		userID = "anonymous"
	}

	plan, err := s.repo.Latest(r.Context(), userID)
	if err != nil {
		s.logger.Error("plan lookup failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Plan lookup failed")
		return
	}
	if plan == nil {
		writeError(w, http.StatusNotFound, "No plan found")
		return
	}
	writeJSON(w, http.StatusOK, savedPlanResponse(plan))
}

func (s *Server) handlePlanHistory(w http.ResponseWriter, r *http.Request) {
	if s.repo == nil {
		writeJSON(w, http.StatusOK, map[string]any{"plans": []any{}})
		return
	}
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		userID = "anonymous"
	}

	plans, err := s.repo.History(r.Context(), userID, 20)
	if err != nil {
		s.logger.Error("plan history failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Plan lookup failed")
		return
	}

	out := make([]map[string]any, len(plans))
	for i := range plans {
		out[i] = savedPlanResponse(&plans[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"plans": out})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var body struct {
		History []tutor.Message `json:"history"`
		Message string          `json:"message"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	reply := s.tutor.Chat(r.Context(), body.History, body.Message)
	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

func (s *Server) handleLearnTopic(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Topic   string `json:"topic"`
		Subject string `json:"subject"`
		Year    string `json:"year"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Subject == "" {
		body.Subject = "General"
	}
	if body.Year == "" {
		body.Year = "2nd Year"
	}

	content := s.tutor.TopicNotes(r.Context(), body.Topic, body.Subject, body.Year)
	writeJSON(w, http.StatusOK, map[string]string{"content": content})
}

func (s *Server) handlePracticeQuestions(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Topic   string `json:"topic"`
		Subject string `json:"subject"`
		Count   int    `json:"count"`
	}
	if err := decodeJSON(r, &body); err != nil || body.Topic == "" || body.Subject == "" {
		writeError(w, http.StatusBadRequest, "Topic and subject required")
		return
	}

	questions, err := s.quiz.GenerateTopicQuiz(r.Context(), body.Topic, body.Subject, body.Count)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate practice questions")
		return
	}
	if questions == nil {
		questions = []quizgen.PracticeQuestion{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"questions": questions})
}

// savePlan persists a generated plan best-effort: a database failure is
// logged, never surfaced to the client.
func (s *Server) savePlan(ctx context.Context, body planRequest, planDoc any, status string) {
	if s.repo == nil {
		return
	}

	saved := &store.SavedPlan{
		UserID:        body.UserID,
		SelectedYear:  body.UserProfile.Year,
		GeneratedPlan: toMap(planDoc),
		Status:        status,
	}
	if body.UserProfile.Board != "" {
		saved.SyllabusVersion = body.UserProfile.Board
	}
	if body.QuizResults != nil {
		saved.TestResults = toMap(body.QuizResults)
	} else {
		saved.TestResults = map[string]any{"type": "foundation"}
	}

	if err := s.repo.Save(ctx, saved); err != nil {
		s.logger.Error("plan save failed", zap.Error(err))
	}
}

// savedPlanResponse shapes a stored plan for API responses.
func savedPlanResponse(plan *store.SavedPlan) map[string]any {
	return map[string]any{
		"planId":       plan.PlanID.String(),
		"userId":       plan.UserID,
		"selectedYear": plan.SelectedYear,
		"status":       plan.Status,
		"createdAt":    plan.CreatedAt,
		"plan":         plan.GeneratedPlan,
		"testResults":  plan.TestResults,
		"syllabus":     plan.SyllabusVersion,
	}
}
