package repository

import (
	"alcyxob/workout-tracker/internal/domain"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ExerciseRepository reads the exercise catalog.
type ExerciseRepository interface {
	GetAll(ctx context.Context) ([]domain.Exercise, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
}

// WorkoutPlanRepository defines the interface for interacting with workout plan data.
type WorkoutPlanRepository interface {
	Create(ctx context.Context, plan *domain.WorkoutPlan) (primitive.ObjectID, error)
	GetAll(ctx context.Context) ([]domain.WorkoutPlan, error)
}

// WorkoutSessionRepository defines the interface for interacting with workout session data.
type WorkoutSessionRepository interface {
	Create(ctx context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error)
	GetAll(ctx context.Context) ([]domain.WorkoutSession, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error)
}

// PlanExerciseRepository stores the exercises planned for a session.
type PlanExerciseRepository interface {
	Create(ctx context.Context, planExercise *domain.WorkoutPlanExercise) (primitive.ObjectID, error)
	GetBySessionID(ctx context.Context, sessionID primitive.ObjectID) ([]domain.WorkoutPlanExercise, error)
}

// CompletedWorkoutRepository defines the interface for interacting with logged workouts.
type CompletedWorkoutRepository interface {
	Create(ctx context.Context, workout *domain.CompletedWorkout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.CompletedWorkout, error)
	GetAll(ctx context.Context) ([]domain.CompletedWorkout, error) // Newest workout_date first
	DeleteAll(ctx context.Context) (int64, error)
}

// CompletedExerciseRepository defines the interface for interacting with logged sets.
type CompletedExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.CompletedExercise) (primitive.ObjectID, error)
	GetByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) ([]domain.CompletedExercise, error)
	GetAll(ctx context.Context) ([]domain.CompletedExercise, error)
	DeleteAll(ctx context.Context) (int64, error)
}
