// Package ai talks to the external text-generation service used for workout
// plan drafts and the trainer's question box. Every call is a single attempt.
package ai

//go:generate mockgen -source=$GOFILE -destination=../service/ai_mocks_test.go -package=service_test

import (
	"context"
	"errors"

	"alcyxob/trainer-backoffice/internal/domain"
)

var (
	ErrUnavailable       = errors.New("ai gateway is not configured")
	ErrEmptyResponse     = errors.New("ai gateway returned no content")
	ErrMalformedResponse = errors.New("ai gateway returned malformed plan")
)

// PlanRequest describes the client a plan is drafted for.
type PlanRequest struct {
	Goal        string `json:"goal" binding:"required"`
	Level       string `json:"level" binding:"required"`
	DaysPerWeek int    `json:"daysPerWeek" binding:"required,min=1,max=7"`
	Equipment   string `json:"equipment"`
}

// PlanExercise is one exercise of a drafted session.
type PlanExercise struct {
	Name string          `json:"name"`
	Sets domain.SetCount `json:"sets"`
	Reps string          `json:"reps"`
	Obs  string          `json:"obs"`
}

// Plan is a drafted representative workout session.
type Plan struct {
	Title     string         `json:"title"`
	Exercises []PlanExercise `json:"exercises"`
}

// Gateway is the external text-generation collaborator.
type Gateway interface {
	GeneratePlan(ctx context.Context, req PlanRequest) (*Plan, error)
	Ask(ctx context.Context, question string) (string, error)
}
