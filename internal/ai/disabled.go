package ai

import "context"

// Disabled is the gateway used when no API key is configured. Every call
// fails with ErrUnavailable.
type Disabled struct{}

func (Disabled) GeneratePlan(context.Context, PlanRequest) (*Plan, error) {
	return nil, ErrUnavailable
}

func (Disabled) Ask(context.Context, string) (string, error) {
	return "", ErrUnavailable
}
