package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"alcyxob/trainer-backoffice/internal/ai"
	"alcyxob/trainer-backoffice/internal/domain"
	"alcyxob/trainer-backoffice/internal/metrics"
	"alcyxob/trainer-backoffice/internal/repository"
)

// --- Error Definitions ---
var (
	ErrAIUnavailable = errors.New("ai plan generation failed")
)

// Texts shown to the trainer when the gateway cannot help.
const (
	PlanFailureMessage = "Falha ao gerar treino. Verifique sua chave API ou tente novamente."
	AnswerOnFailure    = "Desculpe, não consegui processar sua pergunta."
	AnswerOnEmpty      = "I couldn't generate an answer at this time."
)

const (
	aiKindPlan     = "plan"
	aiKindQuestion = "question"
	aiOutcomeOK    = "ok"
	aiOutcomeError = "error"
	aiOutcomeEmpty = "empty"
)

// AdvisorService drafts workout plans and answers free-text questions through
// the AI gateway.
type AdvisorService interface {
	GeneratePlan(ctx context.Context, req ai.PlanRequest) (*ai.Plan, error)
	// SavePlan stores a drafted plan at the front of the workout library.
	SavePlan(ctx context.Context, goal string, plan ai.Plan) (*domain.Workout, error)
	// Ask never fails on gateway errors; it answers with a fallback text instead.
	Ask(ctx context.Context, question string) (string, error)
}

type advisorService struct {
	gateway     ai.Gateway
	workoutRepo repository.WorkoutRepository
	metrics     *metrics.Manager
	logger      *zap.Logger
}

func NewAdvisorService(
	gateway ai.Gateway,
	workoutRepo repository.WorkoutRepository,
	metricsManager *metrics.Manager,
	logger *zap.Logger,
) AdvisorService {
	return &advisorService{
		gateway:     gateway,
		workoutRepo: workoutRepo,
		metrics:     metricsManager,
		logger:      logger,
	}
}

func (s *advisorService) GeneratePlan(ctx context.Context, req ai.PlanRequest) (*ai.Plan, error) {
	// 1. Validate Input
	if strings.TrimSpace(req.Goal) == "" || strings.TrimSpace(req.Level) == "" {
		return nil, fmt.Errorf("%w: goal and level are required", ErrValidationFailed)
	}
	if req.DaysPerWeek < 1 || req.DaysPerWeek > 7 {
		return nil, fmt.Errorf("%w: days per week must be within 1-7", ErrValidationFailed)
	}

	// 2. Single attempt against the gateway
	plan, err := s.gateway.GeneratePlan(ctx, req)
	if err != nil {
		s.metrics.CounterAIRequests.WithLabelValues(aiKindPlan, aiOutcomeError).Inc()
		s.logger.Warn("plan generation failed", zap.Error(err))
		return nil, fmt.Errorf("%w (%v)", ErrAIUnavailable, err)
	}
	if plan == nil || len(plan.Exercises) == 0 {
		s.metrics.CounterAIRequests.WithLabelValues(aiKindPlan, aiOutcomeEmpty).Inc()
		return nil, fmt.Errorf("%w (%v)", ErrAIUnavailable, ai.ErrMalformedResponse)
	}

	s.metrics.CounterAIRequests.WithLabelValues(aiKindPlan, aiOutcomeOK).Inc()
	return plan, nil
}

func (s *advisorService) SavePlan(ctx context.Context, goal string, plan ai.Plan) (*domain.Workout, error) {
	if len(plan.Exercises) == 0 {
		return nil, fmt.Errorf("%w: plan has no exercises", ErrValidationFailed)
	}

	title := strings.TrimSpace(plan.Title)
	if title == "" {
		title = "Treino AI - " + strings.TrimSpace(goal)
	}
	sets := make([]domain.ExerciseSet, 0, len(plan.Exercises))
	for _, e := range plan.Exercises {
		sets = append(sets, domain.ExerciseSet{
			Name: e.Name,
			Sets: e.Sets,
			Reps: e.Reps,
			Obs:  e.Obs,
		})
	}
	if err := validateSets(sets); err != nil {
		return nil, err
	}

	w := domain.Workout{Title: title, Exercises: sets, AIGenerated: true}
	if _, err := s.workoutRepo.Prepend(ctx, &w); err != nil {
		return nil, err
	}
	s.logger.Info("ai plan saved", zap.Int64("workout_id", w.ID), zap.String("title", w.Title))
	return &w, nil
}

func (s *advisorService) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("%w: question is required", ErrValidationFailed)
	}

	answer, err := s.gateway.Ask(ctx, question)
	switch {
	case errors.Is(err, ai.ErrEmptyResponse):
		s.metrics.CounterAIRequests.WithLabelValues(aiKindQuestion, aiOutcomeEmpty).Inc()
		return AnswerOnEmpty, nil
	case err != nil:
		s.metrics.CounterAIRequests.WithLabelValues(aiKindQuestion, aiOutcomeError).Inc()
		s.logger.Warn("question failed", zap.Error(err))
		return AnswerOnFailure, nil
	case strings.TrimSpace(answer) == "":
		s.metrics.CounterAIRequests.WithLabelValues(aiKindQuestion, aiOutcomeEmpty).Inc()
		return AnswerOnEmpty, nil
	}

	s.metrics.CounterAIRequests.WithLabelValues(aiKindQuestion, aiOutcomeOK).Inc()
	return answer, nil
}
