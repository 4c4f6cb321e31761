package memory

import (
	"context"
	"errors"

	"alcyxob/trainer-backoffice/internal/domain"
	"alcyxob/trainer-backoffice/internal/repository"
)

// clientRepository implements repository.ClientRepository
type clientRepository struct {
	store *Store
}

func (r *clientRepository) Create(_ context.Context, c *domain.Client) (int64, error) {
	if c == nil || c.Name == "" {
		return 0, errors.New("client requires a name")
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if c.ID == 0 {
		c.ID = r.store.takeClientID()
	} else if r.indexOf(c.ID) >= 0 {
		return 0, repository.ErrDuplicateID
	} else if c.ID >= r.store.nextClientID {
		r.store.nextClientID = c.ID + 1
	}
	for _, w := range c.AssignedWorkouts {
		r.store.bumpWorkoutSeq(w.ID)
	}

	r.store.clients = append(r.store.clients, c.Clone())
	return c.ID, nil
}

func (r *clientRepository) GetByID(_ context.Context, id int64) (*domain.Client, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	c := r.store.clients[i].Clone()
	return &c, nil
}

func (r *clientRepository) List(_ context.Context) ([]domain.Client, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Client, len(r.store.clients))
	for i, c := range r.store.clients {
		out[i] = c.Clone()
	}
	return out, nil
}

func (r *clientRepository) Update(_ context.Context, id int64, fn repository.ClientMutator) (*domain.Client, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	draft := r.store.clients[i].Clone()
	if err := fn(&draft); err != nil {
		return nil, err
	}
	if draft.ID != id {
		return nil, repository.ErrUpdateFailed
	}
	for _, w := range draft.AssignedWorkouts {
		r.store.bumpWorkoutSeq(w.ID)
	}
	r.store.clients[i] = draft

	out := draft.Clone()
	return &out, nil
}

func (r *clientRepository) UpdateAll(_ context.Context, fn repository.ClientMutator) ([]domain.Client, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	drafts := make([]domain.Client, len(r.store.clients))
	for i, c := range r.store.clients {
		drafts[i] = c.Clone()
		if err := fn(&drafts[i]); err != nil {
			return nil, err
		}
		if drafts[i].ID != c.ID {
			return nil, repository.ErrUpdateFailed
		}
	}
	r.store.clients = drafts

	out := make([]domain.Client, len(drafts))
	for i, c := range drafts {
		out[i] = c.Clone()
	}
	return out, nil
}

func (r *clientRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.store.clients = append(r.store.clients[:i:i], r.store.clients[i+1:]...)
	return nil
}

func (r *clientRepository) Count(_ context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.clients), nil
}

// must hold mu
func (r *clientRepository) indexOf(id int64) int {
	for i := range r.store.clients {
		if r.store.clients[i].ID == id {
			return i
		}
	}
	return -1
}
