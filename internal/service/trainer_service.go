package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"alcyxob/trainer-backoffice/internal/domain"
	"alcyxob/trainer-backoffice/internal/messaging"
	"alcyxob/trainer-backoffice/internal/repository"
)

// --- Error Definitions ---
var (
	ErrWorkoutAlreadyAssigned = errors.New("workout is already assigned to this client")
	ErrWorkoutNotAssigned     = errors.New("workout is not assigned to this client")
	ErrAssignedExerciseIndex  = errors.New("assigned exercise index out of range")
)

// ExercisePrescription is a standalone exercise prescribed to a client.
type ExercisePrescription struct {
	ExerciseID int64
	Sets       domain.SetCount // empty -> 3
	Reps       string          // empty -> "10"
	Load       string
	Obs        string
}

// CompletionResult is what a finished workout produces.
type CompletionResult struct {
	Client *domain.Client     `json:"client"`
	Log    domain.ProgressLog `json:"log"`
	Share  messaging.Message  `json:"share"`
}

// TrainerService covers what the trainer prescribes to a client and the
// training sessions the client reports back.
type TrainerService interface {
	AssignWorkout(ctx context.Context, clientID, workoutID int64) (*domain.Client, error)
	RemoveAssignedWorkout(ctx context.Context, clientID, workoutID int64) (*domain.Client, error)
	AssignExercise(ctx context.Context, clientID int64, p ExercisePrescription) (*domain.Client, error)
	RemoveAssignedExercise(ctx context.Context, clientID int64, index int) (*domain.Client, error)
	CompleteWorkout(ctx context.Context, clientID, workoutID int64) (*CompletionResult, error)
}

// trainerService implements the TrainerService interface.
type trainerService struct {
	clientRepo    repository.ClientRepository
	workoutRepo   repository.WorkoutRepository
	exerciseRepo  repository.ExerciseRepository
	defaultWeight float64
	now           Clock
	logger        *zap.Logger
}

// NewTrainerService creates a new instance of trainerService.
func NewTrainerService(
	clientRepo repository.ClientRepository,
	workoutRepo repository.WorkoutRepository,
	exerciseRepo repository.ExerciseRepository,
	defaults ClientDefaults,
	now Clock,
	logger *zap.Logger,
) TrainerService {
	weight := defaults.Weight
	if weight <= 0 {
		weight = defaultClientWeight
	}
	return &trainerService{
		clientRepo:    clientRepo,
		workoutRepo:   workoutRepo,
		exerciseRepo:  exerciseRepo,
		defaultWeight: weight,
		now:           now,
		logger:        logger,
	}
}

func clientNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrClientNotFound
	}
	return err
}

// AssignWorkout gives the client a private copy of a library workout.
func (s *trainerService) AssignWorkout(ctx context.Context, clientID, workoutID int64) (*domain.Client, error) {
	// 1. Verify the workout exists
	w, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	// 2. Append the copy unless the id is already assigned
	c, err := s.clientRepo.Update(ctx, clientID, func(c *domain.Client) error {
		if c.HasWorkout(w.ID) {
			return ErrWorkoutAlreadyAssigned
		}
		c.AssignedWorkouts = append(c.AssignedWorkouts, w.Clone())
		return nil
	})
	if err != nil {
		return nil, clientNotFound(err)
	}

	s.logger.Info("workout assigned", zap.Int64("client_id", clientID), zap.Int64("workout_id", workoutID))
	return c, nil
}

// RemoveAssignedWorkout drops every assigned copy carrying workoutID.
func (s *trainerService) RemoveAssignedWorkout(ctx context.Context, clientID, workoutID int64) (*domain.Client, error) {
	c, err := s.clientRepo.Update(ctx, clientID, func(c *domain.Client) error {
		kept := make([]domain.Workout, 0, len(c.AssignedWorkouts))
		for _, w := range c.AssignedWorkouts {
			if w.ID != workoutID {
				kept = append(kept, w)
			}
		}
		if len(kept) == len(c.AssignedWorkouts) {
			return ErrWorkoutNotAssigned
		}
		c.AssignedWorkouts = kept
		return nil
	})
	if err != nil {
		return nil, clientNotFound(err)
	}
	return c, nil
}

// AssignExercise prescribes a catalog exercise on its own. The same exercise
// may be prescribed any number of times.
func (s *trainerService) AssignExercise(ctx context.Context, clientID int64, p ExercisePrescription) (*domain.Client, error) {
	ex, err := s.exerciseRepo.GetByID(ctx, p.ExerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	sets := domain.SetCount(strings.TrimSpace(string(p.Sets)))
	if sets == "" {
		sets = domain.Sets(3)
	}
	reps := strings.TrimSpace(p.Reps)
	if reps == "" {
		reps = "10"
	}
	assigned := domain.AssignedExercise{
		ExerciseSet: domain.ExerciseSet{
			Name: ex.Name,
			Sets: sets,
			Reps: reps,
			Load: p.Load,
			Obs:  p.Obs,
		},
		OriginalID: ex.ID,
	}

	c, err := s.clientRepo.Update(ctx, clientID, func(c *domain.Client) error {
		c.AssignedExercises = append(c.AssignedExercises, assigned)
		return nil
	})
	if err != nil {
		return nil, clientNotFound(err)
	}
	return c, nil
}

func (s *trainerService) RemoveAssignedExercise(ctx context.Context, clientID int64, index int) (*domain.Client, error) {
	c, err := s.clientRepo.Update(ctx, clientID, func(c *domain.Client) error {
		if index < 0 || index >= len(c.AssignedExercises) {
			return fmt.Errorf("%w: %d", ErrAssignedExerciseIndex, index)
		}
		c.AssignedExercises = append(c.AssignedExercises[:index:index], c.AssignedExercises[index+1:]...)
		return nil
	})
	if err != nil {
		return nil, clientNotFound(err)
	}
	return c, nil
}

// CompleteWorkout records a finished session of an assigned workout and
// composes the message shared with the client.
func (s *trainerService) CompleteWorkout(ctx context.Context, clientID, workoutID int64) (*CompletionResult, error) {
	now := s.now()
	todayShort := domain.ShortDate(now)
	todayLong := domain.LongDate(now)

	var (
		done     domain.Workout
		todayLog domain.ProgressLog
	)
	c, err := s.clientRepo.Update(ctx, clientID, func(c *domain.Client) error {
		// 1. The workout must be one of the client's copies
		found := false
		for _, w := range c.AssignedWorkouts {
			if w.ID == workoutID {
				done = w.Clone()
				found = true
				break
			}
		}
		if !found {
			return ErrWorkoutNotAssigned
		}

		// 2. Bump today's log or open one carrying the latest weight
		idx := -1
		for i, l := range c.ProgressLogs {
			if l.Date == todayShort {
				idx = i
				break
			}
		}
		if idx >= 0 {
			c.ProgressLogs[idx].WorkoutsCompleted++
		} else {
			weight := s.defaultWeight
			if last, ok := c.LatestLog(); ok {
				weight = last.Weight
			}
			zero := 0.0
			c.ProgressLogs = append(c.ProgressLogs, domain.ProgressLog{
				Date:              todayShort,
				Weight:            weight,
				WorkoutsCompleted: 1,
				VolumeLoad:        &zero,
			})
			idx = len(c.ProgressLogs) - 1
		}
		todayLog = c.ProgressLogs[idx].Clone()

		// 3. Training keeps the client active
		c.Status = domain.ClientActive
		c.LastTraining = todayLong
		return nil
	})
	if err != nil {
		return nil, clientNotFound(err)
	}

	s.logger.Info("workout completed",
		zap.Int64("client_id", clientID),
		zap.Int64("workout_id", workoutID),
		zap.Int("workouts_today", todayLog.WorkoutsCompleted),
	)

	return &CompletionResult{
		Client: c,
		Log:    todayLog,
		Share:  messaging.NewMessage(messaging.WorkoutCompleted(c.Name, todayLong, done)),
	}, nil
}
