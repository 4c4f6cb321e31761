// Package memory holds the single in-process copy of the back-office data.
// Reads hand out deep copies and writes go through mutator closures, so no
// caller ever holds a reference into the stored state.
package memory

import (
	"fmt"
	"sync"

	"alcyxob/trainer-backoffice/internal/domain"
	"alcyxob/trainer-backoffice/internal/repository"
)

// Store owns all collections. One mutex guards everything: commands run one
// at a time, reads may run concurrently.
type Store struct {
	mu sync.RWMutex

	exercises []domain.Exercise
	workouts  []domain.Workout
	clients   []domain.Client

	nextWorkoutID int64
	nextClientID  int64
}

// NewStore builds a store from seed data. Identifiers must be unique within
// each collection; sequences continue after the highest seeded identifier.
func NewStore(exercises []domain.Exercise, workouts []domain.Workout, clients []domain.Client) (*Store, error) {
	s := &Store{nextWorkoutID: 1, nextClientID: 1}

	seen := make(map[int64]struct{}, len(exercises))
	for _, ex := range exercises {
		if _, dup := seen[ex.ID]; dup {
			return nil, fmt.Errorf("exercise %d: %w", ex.ID, repository.ErrDuplicateID)
		}
		seen[ex.ID] = struct{}{}
		s.exercises = append(s.exercises, ex)
	}

	seen = make(map[int64]struct{}, len(workouts))
	for _, w := range workouts {
		if _, dup := seen[w.ID]; dup {
			return nil, fmt.Errorf("workout %d: %w", w.ID, repository.ErrDuplicateID)
		}
		seen[w.ID] = struct{}{}
		s.workouts = append(s.workouts, w.Clone())
		s.bumpWorkoutSeq(w.ID)
	}

	seen = make(map[int64]struct{}, len(clients))
	for _, c := range clients {
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("client %d: %w", c.ID, repository.ErrDuplicateID)
		}
		seen[c.ID] = struct{}{}
		s.clients = append(s.clients, c.Clone())
		if c.ID >= s.nextClientID {
			s.nextClientID = c.ID + 1
		}
		for _, w := range c.AssignedWorkouts {
			s.bumpWorkoutSeq(w.ID)
		}
	}

	return s, nil
}

// Exercises returns the catalog repository view of the store.
func (s *Store) Exercises() repository.ExerciseRepository {
	return &exerciseRepository{store: s}
}

// Workouts returns the workout library repository view of the store.
func (s *Store) Workouts() repository.WorkoutRepository {
	return &workoutRepository{store: s}
}

// Clients returns the client registry repository view of the store.
func (s *Store) Clients() repository.ClientRepository {
	return &clientRepository{store: s}
}

func (s *Store) bumpWorkoutSeq(id int64) {
	if id >= s.nextWorkoutID {
		s.nextWorkoutID = id + 1
	}
}

// must hold mu for writing
func (s *Store) takeWorkoutID() int64 {
	id := s.nextWorkoutID
	s.nextWorkoutID++
	return id
}

// must hold mu for writing
func (s *Store) takeClientID() int64 {
	id := s.nextClientID
	s.nextClientID++
	return id
}
