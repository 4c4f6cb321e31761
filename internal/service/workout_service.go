package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"alcyxob/trainer-backoffice/internal/domain"
	"alcyxob/trainer-backoffice/internal/repository"
)

var ErrWorkoutNotFound = errors.New("workout not found")

// CloneOptions controls where a workout copy goes. At least one destination
// is required.
type CloneOptions struct {
	Title          string // empty -> "<source title> (Cópia)"
	ResetLoads     bool
	AddToLibrary   bool
	TargetClientID int64 // 0 -> no client
}

// CloneResult holds the copies a clone request produced.
type CloneResult struct {
	LibraryWorkout *domain.Workout `json:"libraryWorkout,omitempty"`
	ClientWorkout  *domain.Workout `json:"clientWorkout,omitempty"`
	ClientID       int64           `json:"clientId,omitempty"`
}

type WorkoutService interface {
	CreateWorkout(ctx context.Context, title string, sets []domain.ExerciseSet) (*domain.Workout, error)
	GetWorkoutByID(ctx context.Context, id int64) (*domain.Workout, error)
	ListWorkouts(ctx context.Context) ([]domain.Workout, error)
	DeleteWorkout(ctx context.Context, id int64) error
	CloneWorkout(ctx context.Context, sourceID int64, opts CloneOptions) (*CloneResult, error)
	ReorderExercises(ctx context.Context, id int64, from, to int) (*domain.Workout, error)
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo repository.WorkoutRepository
	clientRepo  repository.ClientRepository
	logger      *zap.Logger
}

func NewWorkoutService(workoutRepo repository.WorkoutRepository, clientRepo repository.ClientRepository, logger *zap.Logger) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
		clientRepo:  clientRepo,
		logger:      logger,
	}
}

// validateSets rejects exercise lines without a name.
func validateSets(sets []domain.ExerciseSet) error {
	for i, set := range sets {
		if strings.TrimSpace(set.Name) == "" {
			return fmt.Errorf("%w: exercise %d has no name", ErrValidationFailed, i)
		}
	}
	return nil
}

// CreateWorkout adds a workout to the library.
func (s *workoutService) CreateWorkout(ctx context.Context, title string, sets []domain.ExerciseSet) (*domain.Workout, error) {
	// 1. Validate Input
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidationFailed)
	}
	if len(sets) == 0 {
		return nil, fmt.Errorf("%w: at least one exercise is required", ErrValidationFailed)
	}
	if err := validateSets(sets); err != nil {
		return nil, err
	}

	// 2. Store a private copy
	w := domain.Workout{Title: title, Exercises: sets}.Clone()
	if _, err := s.workoutRepo.Create(ctx, &w); err != nil {
		return nil, err
	}

	s.logger.Info("workout created", zap.Int64("workout_id", w.ID), zap.Int("exercises", len(w.Exercises)))
	return &w, nil
}

func (s *workoutService) GetWorkoutByID(ctx context.Context, id int64) (*domain.Workout, error) {
	w, err := s.workoutRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return w, nil
}

func (s *workoutService) ListWorkouts(ctx context.Context) ([]domain.Workout, error) {
	return s.workoutRepo.List(ctx)
}

// DeleteWorkout removes a library workout. Copies held by clients stay.
func (s *workoutService) DeleteWorkout(ctx context.Context, id int64) error {
	if err := s.workoutRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}
	s.logger.Info("workout deleted", zap.Int64("workout_id", id))
	return nil
}

// CloneWorkout copies a library workout into the library, onto a client, or
// both. Each copy gets its own identifier.
func (s *workoutService) CloneWorkout(ctx context.Context, sourceID int64, opts CloneOptions) (*CloneResult, error) {
	// 1. Validate Input
	if !opts.AddToLibrary && opts.TargetClientID == 0 {
		return nil, fmt.Errorf("%w: choose the library, a client, or both", ErrValidationFailed)
	}

	// 2. Verify the source and the target exist before touching anything
	source, err := s.GetWorkoutByID(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	if opts.TargetClientID != 0 {
		if _, err := s.clientRepo.GetByID(ctx, opts.TargetClientID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrClientNotFound
			}
			return nil, err
		}
	}

	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = source.Title + " (Cópia)"
	}

	result := &CloneResult{}

	// 3. Client copy first: it is the step that can still be rejected
	if opts.TargetClientID != 0 {
		id, err := s.workoutRepo.NextID(ctx)
		if err != nil {
			return nil, err
		}
		copyForClient := source.CloneAs(id, title, opts.ResetLoads)
		if _, err := s.clientRepo.Update(ctx, opts.TargetClientID, func(c *domain.Client) error {
			c.AssignedWorkouts = append(c.AssignedWorkouts, copyForClient.Clone())
			return nil
		}); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrClientNotFound
			}
			return nil, err
		}
		result.ClientWorkout = &copyForClient
		result.ClientID = opts.TargetClientID
	}

	// 4. Library copy
	if opts.AddToLibrary {
		id, err := s.workoutRepo.NextID(ctx)
		if err != nil {
			return nil, err
		}
		copyForLibrary := source.CloneAs(id, title, opts.ResetLoads)
		if _, err := s.workoutRepo.Create(ctx, &copyForLibrary); err != nil {
			return nil, err
		}
		result.LibraryWorkout = &copyForLibrary
	}

	s.logger.Info("workout cloned",
		zap.Int64("source_id", sourceID),
		zap.Bool("library", result.LibraryWorkout != nil),
		zap.Int64("client_id", result.ClientID),
		zap.Bool("reset_loads", opts.ResetLoads),
	)
	return result, nil
}

// ReorderExercises moves one exercise of a library workout to a new position.
func (s *workoutService) ReorderExercises(ctx context.Context, id int64, from, to int) (*domain.Workout, error) {
	w, err := s.workoutRepo.Update(ctx, id, func(w *domain.Workout) error {
		reordered, err := domain.ReorderExercises(w.Exercises, from, to)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrValidationFailed, err)
		}
		w.Exercises = reordered
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return w, nil
}
