package service

import (
	"context"

	"alcyxob/trainer-backoffice/internal/repository"
)

// DashboardStats are the headline counters of the back office.
type DashboardStats struct {
	Clients   int `json:"clients"`
	Workouts  int `json:"workouts"`
	Exercises int `json:"exercises"`
}

type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

type dashboardService struct {
	clientRepo   repository.ClientRepository
	workoutRepo  repository.WorkoutRepository
	exerciseRepo repository.ExerciseRepository
}

func NewDashboardService(
	clientRepo repository.ClientRepository,
	workoutRepo repository.WorkoutRepository,
	exerciseRepo repository.ExerciseRepository,
) DashboardService {
	return &dashboardService{clientRepo: clientRepo, workoutRepo: workoutRepo, exerciseRepo: exerciseRepo}
}

func (s *dashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	clients, err := s.clientRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	workouts, err := s.workoutRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	exercises, err := s.exerciseRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &DashboardStats{Clients: clients, Workouts: workouts, Exercises: exercises}, nil
}
