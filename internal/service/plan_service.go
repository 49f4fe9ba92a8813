package service

//go:generate mockgen -source=plan_service.go -destination=mocks/plan_service_mock.go -package=mocks

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlannedExerciseInput is one exercise of a session in a new plan.
type PlannedExerciseInput struct {
	ExerciseID string
	Sets       int
}

// SessionInput is one session of a new plan.
type SessionInput struct {
	Name      string
	Exercises []PlannedExerciseInput
}

// CreateWorkoutPlanInput is everything needed to create a plan.
type CreateWorkoutPlanInput struct {
	Name     string
	Sessions []SessionInput
}

// SessionExercise is a planned exercise joined with its catalog entry.
type SessionExercise struct {
	ExerciseID   primitive.ObjectID
	ExerciseName string
	Sets         int
}

// PlanService manages workout plans and their sessions.
type PlanService interface {
	CreateWorkoutPlan(ctx context.Context, input CreateWorkoutPlanInput) error
	ListWorkoutPlans(ctx context.Context) ([]domain.WorkoutPlan, error)
	ListWorkoutSessions(ctx context.Context) ([]domain.WorkoutSession, error)
	ListSessionExercises(ctx context.Context, sessionID string) ([]SessionExercise, error)
}

type planService struct {
	planRepo         repository.WorkoutPlanRepository
	sessionRepo      repository.WorkoutSessionRepository
	planExerciseRepo repository.PlanExerciseRepository
	exerciseRepo     repository.ExerciseRepository
}

// NewPlanService creates a new instance of planService.
func NewPlanService(
	planRepo repository.WorkoutPlanRepository,
	sessionRepo repository.WorkoutSessionRepository,
	planExerciseRepo repository.PlanExerciseRepository,
	exerciseRepo repository.ExerciseRepository,
) PlanService {
	return &planService{
		planRepo:         planRepo,
		sessionRepo:      sessionRepo,
		planExerciseRepo: planExerciseRepo,
		exerciseRepo:     exerciseRepo,
	}
}

// CreateWorkoutPlan inserts the plan, then each session, then each planned
// exercise of that session, in order. The whole input is validated first so
// a bad request writes nothing. The inserts themselves are not atomic: a
// store failure part way leaves the earlier documents in place.
//
// Sessions are not linked back to the plan (workout_plan_id stays unset).
func (s *planService) CreateWorkoutPlan(ctx context.Context, input CreateWorkoutPlanInput) error {
	exerciseIDs, err := validatePlanInput(input)
	if err != nil {
		return err
	}

	planID, err := s.planRepo.Create(ctx, &domain.WorkoutPlan{Name: input.Name})
	if err != nil {
		return fmt.Errorf("create workout plan: %w", err)
	}
	log.Debugf("created workout plan %s (%q)", planID.Hex(), input.Name)

	for i, sessionInput := range input.Sessions {
		sessionID, err := s.sessionRepo.Create(ctx, &domain.WorkoutSession{Name: sessionInput.Name})
		if err != nil {
			return fmt.Errorf("create workout session %q of plan %s: %w", sessionInput.Name, planID.Hex(), err)
		}

		for j, exerciseInput := range sessionInput.Exercises {
			_, err := s.planExerciseRepo.Create(ctx, &domain.WorkoutPlanExercise{
				WorkoutSessionID: sessionID,
				ExerciseID:       exerciseIDs[i][j],
				Sets:             exerciseInput.Sets,
			})
			if err != nil {
				return fmt.Errorf("add exercise %s to session %s: %w", exerciseInput.ExerciseID, sessionID.Hex(), err)
			}
		}
	}

	return nil
}

// validatePlanInput checks every exercise id and set count and returns the
// parsed ids indexed by session and exercise position. Empty plan and
// session names are allowed.
func validatePlanInput(input CreateWorkoutPlanInput) ([][]primitive.ObjectID, error) {
	v := &ValidationError{}

	exerciseIDs := make([][]primitive.ObjectID, len(input.Sessions))
	for i, session := range input.Sessions {
		exerciseIDs[i] = make([]primitive.ObjectID, len(session.Exercises))
		for j, exercise := range session.Exercises {
			field := fmt.Sprintf("sessions[%d].exercises[%d]", i, j)
			exerciseIDs[i][j] = v.parseInto(field+".exercise_id", exercise.ExerciseID)
			if exercise.Sets <= 0 {
				v.add(field+".sets", "must be greater than 0")
			}
		}
	}

	if err := v.errOrNil(); err != nil {
		return nil, err
	}
	return exerciseIDs, nil
}

// ListWorkoutPlans returns every plan document as stored.
func (s *planService) ListWorkoutPlans(ctx context.Context) ([]domain.WorkoutPlan, error) {
	plans, err := s.planRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workout plans: %w", err)
	}
	return plans, nil
}

// ListWorkoutSessions returns every session.
func (s *planService) ListWorkoutSessions(ctx context.Context) ([]domain.WorkoutSession, error) {
	sessions, err := s.sessionRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workout sessions: %w", err)
	}
	return sessions, nil
}

// ListSessionExercises returns the planned exercises of a session with their
// names. Links to exercises that no longer exist are skipped. An unknown
// session simply has no exercises.
func (s *planService) ListSessionExercises(ctx context.Context, sessionID string) ([]SessionExercise, error) {
	id, err := ParseID("session_id", sessionID)
	if err != nil {
		return nil, err
	}

	planExercises, err := s.planExerciseRepo.GetBySessionID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list exercises of session %s: %w", sessionID, err)
	}

	result := make([]SessionExercise, 0, len(planExercises))
	for _, pe := range planExercises {
		exercise, err := s.exerciseRepo.GetByID(ctx, pe.ExerciseID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				log.Debugf("session %s references missing exercise %s", sessionID, pe.ExerciseID.Hex())
				continue
			}
			return nil, fmt.Errorf("get exercise %s: %w", pe.ExerciseID.Hex(), err)
		}
		result = append(result, SessionExercise{
			ExerciseID:   exercise.ID,
			ExerciseName: exercise.ExerciseName,
			Sets:         pe.Sets,
		})
	}
	return result, nil
}
