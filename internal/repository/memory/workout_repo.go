package memory

import (
	"context"
	"errors"

	"alcyxob/trainer-backoffice/internal/domain"
	"alcyxob/trainer-backoffice/internal/repository"
)

// workoutRepository implements repository.WorkoutRepository
type workoutRepository struct {
	store *Store
}

func (r *workoutRepository) NextID(_ context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.takeWorkoutID(), nil
}

func (r *workoutRepository) Create(ctx context.Context, w *domain.Workout) (int64, error) {
	return r.insert(w, false)
}

func (r *workoutRepository) Prepend(ctx context.Context, w *domain.Workout) (int64, error) {
	return r.insert(w, true)
}

func (r *workoutRepository) insert(w *domain.Workout, front bool) (int64, error) {
	if w == nil || w.Title == "" {
		return 0, errors.New("workout requires a title")
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if w.ID == 0 {
		w.ID = r.store.takeWorkoutID()
	} else if r.indexOf(w.ID) >= 0 {
		return 0, repository.ErrDuplicateID
	} else {
		r.store.bumpWorkoutSeq(w.ID)
	}

	stored := w.Clone()
	if front {
		r.store.workouts = append([]domain.Workout{stored}, r.store.workouts...)
	} else {
		r.store.workouts = append(r.store.workouts, stored)
	}
	return w.ID, nil
}

func (r *workoutRepository) GetByID(_ context.Context, id int64) (*domain.Workout, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	w := r.store.workouts[i].Clone()
	return &w, nil
}

func (r *workoutRepository) List(_ context.Context) ([]domain.Workout, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Workout, len(r.store.workouts))
	for i, w := range r.store.workouts {
		out[i] = w.Clone()
	}
	return out, nil
}

func (r *workoutRepository) Update(_ context.Context, id int64, fn repository.WorkoutMutator) (*domain.Workout, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	draft := r.store.workouts[i].Clone()
	if err := fn(&draft); err != nil {
		return nil, err
	}
	if draft.ID != id {
		return nil, repository.ErrUpdateFailed
	}
	r.store.workouts[i] = draft

	out := draft.Clone()
	return &out, nil
}

func (r *workoutRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.store.workouts = append(r.store.workouts[:i:i], r.store.workouts[i+1:]...)
	return nil
}

func (r *workoutRepository) Count(_ context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.workouts), nil
}

// must hold mu
func (r *workoutRepository) indexOf(id int64) int {
	for i := range r.store.workouts {
		if r.store.workouts[i].ID == id {
			return i
		}
	}
	return -1
}
