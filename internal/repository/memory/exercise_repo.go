package memory

import (
	"context"

	"alcyxob/trainer-backoffice/internal/domain"
	"alcyxob/trainer-backoffice/internal/repository"
)

// exerciseRepository implements repository.ExerciseRepository
type exerciseRepository struct {
	store *Store
}

func (r *exerciseRepository) GetByID(_ context.Context, id int64) (*domain.Exercise, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, ex := range r.store.exercises {
		if ex.ID == id {
			found := ex
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *exerciseRepository) List(_ context.Context) ([]domain.Exercise, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Exercise, len(r.store.exercises))
	copy(out, r.store.exercises)
	return out, nil
}

func (r *exerciseRepository) Count(_ context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.exercises), nil
}
