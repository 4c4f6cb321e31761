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
	"alcyxob/trainer-backoffice/internal/storage"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrValidationFailed = errors.New("validation failed")
)

// AllMuscleGroups disables the muscle group filter.
const AllMuscleGroups = "Todos"

const placeholderImageBase = "https://placehold.co/800x600/e2e8f0/1e293b?text="

// --- Service Interface ---
type ExerciseService interface {
	// ListExercises filters the catalog by a case-insensitive name substring
	// and an exact muscle group. Empty values and AllMuscleGroups match everything.
	ListExercises(ctx context.Context, search, muscle string) ([]domain.Exercise, error)
	GetExerciseByID(ctx context.Context, id int64) (*domain.Exercise, error)
	// MuscleGroups lists distinct muscle groups in catalog order.
	MuscleGroups(ctx context.Context) ([]string, error)
	ImageURL(ctx context.Context, id int64) (string, error)
}

// --- Service Implementation ---

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	images       storage.ImageStorage // nil when no bucket is configured
	logger       *zap.Logger
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository, images storage.ImageStorage, logger *zap.Logger) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
		images:       images,
		logger:       logger,
	}
}

func (s *exerciseService) ListExercises(ctx context.Context, search, muscle string) ([]domain.Exercise, error) {
	all, err := s.exerciseRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(strings.TrimSpace(search))
	filterMuscle := muscle != "" && muscle != AllMuscleGroups

	out := make([]domain.Exercise, 0, len(all))
	for _, ex := range all {
		if search != "" && !strings.Contains(strings.ToLower(ex.Name), search) {
			continue
		}
		if filterMuscle && ex.MuscleGroup != muscle {
			continue
		}
		out = append(out, ex)
	}
	return out, nil
}

func (s *exerciseService) GetExerciseByID(ctx context.Context, id int64) (*domain.Exercise, error) {
	ex, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return ex, nil
}

func (s *exerciseService) MuscleGroups(ctx context.Context) ([]string, error) {
	all, err := s.exerciseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	groups := []string{}
	for _, ex := range all {
		if _, ok := seen[ex.MuscleGroup]; ok {
			continue
		}
		seen[ex.MuscleGroup] = struct{}{}
		groups = append(groups, ex.MuscleGroup)
	}
	return groups, nil
}

// ImageURL resolves the picture shown for an exercise: an absolute URL is
// used as is, an object key is presigned when storage is configured, and
// anything else falls back to a placeholder carrying the exercise name.
func (s *exerciseService) ImageURL(ctx context.Context, id int64) (string, error) {
	ex, err := s.GetExerciseByID(ctx, id)
	if err != nil {
		return "", err
	}

	ref := strings.TrimSpace(ex.ImageRef)
	switch {
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return ref, nil
	case ref != "" && s.images != nil:
		signed, err := s.images.PresignedImageURL(ctx, ref)
		if err != nil {
			s.logger.Warn("presign failed, using placeholder", zap.Int64("exercise_id", id), zap.Error(err))
			break
		}
		return signed, nil
	}
	return fmt.Sprintf("%s%s", placeholderImageBase, messaging.EncodeComponent(ex.Name)), nil
}
