package service

//go:generate mockgen -source=exercise_service.go -destination=mocks/exercise_service_mock.go -package=mocks

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"fmt"
)

// ExerciseService exposes the exercise catalog.
type ExerciseService interface {
	ListExercises(ctx context.Context) ([]domain.Exercise, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
	}
}

// ListExercises returns the whole catalog.
func (s *exerciseService) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	exercises, err := s.exerciseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return exercises, nil
}
