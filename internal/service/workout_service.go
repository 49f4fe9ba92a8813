package service

//go:generate mockgen -source=workout_service.go -destination=mocks/workout_service_mock.go -package=mocks

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"alcyxob/workout-tracker/internal/storage"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UnknownName replaces the name of a session or exercise that no longer exists.
const UnknownName = "Unknown"

const archiveKeyPrefix = "completed-workouts/"

// CompletedSetInput is one performed set. Notes are accepted but not stored.
type CompletedSetInput struct {
	Weight         int
	Reps           int
	SupersetWeight *int
	SupersetReps   *int
	Notes          *string
}

// CompletedExerciseInput groups the sets performed for one exercise.
type CompletedExerciseInput struct {
	ExerciseID string
	Sets       []CompletedSetInput
}

// LogWorkoutInput is a finished workout as reported by the client.
type LogWorkoutInput struct {
	WorkoutSessionID string
	WorkoutLength    int
	WorkoutDate      int64
	Exercises        []CompletedExerciseInput
}

// CompletedWorkoutSummary is a history entry.
type CompletedWorkoutSummary struct {
	ID            primitive.ObjectID
	WorkoutDate   int64
	WorkoutLength int
	SessionName   string
}

// CompletedExerciseDetail is a logged set with its exercise name.
type CompletedExerciseDetail struct {
	ExerciseID     primitive.ObjectID
	ExerciseName   string
	Weight         int
	Reps           int
	SupersetWeight *int
	SupersetReps   *int
	TotalWeight    int
}

// CompletedWorkoutDetail is one completed workout with all of its sets.
type CompletedWorkoutDetail struct {
	ID            primitive.ObjectID
	WorkoutLength int
	WorkoutDate   int64
	SessionName   string
	Exercises     []CompletedExerciseDetail
}

// archiveSnapshot is the document uploaded before a reset.
type archiveSnapshot struct {
	ArchivedAt time.Time                  `json:"archived_at"`
	Workouts   []domain.CompletedWorkout  `json:"completed_workouts"`
	Exercises  []domain.CompletedExercise `json:"completed_exercises"`
}

// WorkoutService logs performed workouts and serves the history.
type WorkoutService interface {
	LogWorkout(ctx context.Context, input LogWorkoutInput) error
	ListCompletedWorkouts(ctx context.Context) ([]CompletedWorkoutSummary, error)
	GetCompletedWorkout(ctx context.Context, workoutID string) (*CompletedWorkoutDetail, error)
	ResetCompletedWorkouts(ctx context.Context) error
}

type workoutService struct {
	completedWorkoutRepo  repository.CompletedWorkoutRepository
	completedExerciseRepo repository.CompletedExerciseRepository
	sessionRepo           repository.WorkoutSessionRepository
	exerciseRepo          repository.ExerciseRepository
	archive               storage.ObjectStorage // nil disables archiving
	now                   func() time.Time
}

// NewWorkoutService creates a new instance of workoutService.
// archive may be nil, in which case resets are not archived.
func NewWorkoutService(
	completedWorkoutRepo repository.CompletedWorkoutRepository,
	completedExerciseRepo repository.CompletedExerciseRepository,
	sessionRepo repository.WorkoutSessionRepository,
	exerciseRepo repository.ExerciseRepository,
	archive storage.ObjectStorage,
) WorkoutService {
	return &workoutService{
		completedWorkoutRepo:  completedWorkoutRepo,
		completedExerciseRepo: completedExerciseRepo,
		sessionRepo:           sessionRepo,
		exerciseRepo:          exerciseRepo,
		archive:               archive,
		now:                   time.Now,
	}
}

// LogWorkout stores the workout and one CompletedExercise per set.
// Sets with zero reps are dropped. Like plan creation the inserts are
// sequential and not rolled back on failure.
func (s *workoutService) LogWorkout(ctx context.Context, input LogWorkoutInput) error {
	v := &ValidationError{}
	sessionID := v.parseInto("workout_session_id", input.WorkoutSessionID)
	exerciseIDs := make([]primitive.ObjectID, len(input.Exercises))
	for i, exercise := range input.Exercises {
		exerciseIDs[i] = v.parseInto(fmt.Sprintf("exercises[%d].exercise_id", i), exercise.ExerciseID)
	}
	if err := v.errOrNil(); err != nil {
		return err
	}

	workoutID, err := s.completedWorkoutRepo.Create(ctx, &domain.CompletedWorkout{
		WorkoutSessionID: sessionID,
		WorkoutLength:    input.WorkoutLength,
		WorkoutDate:      input.WorkoutDate,
	})
	if err != nil {
		return fmt.Errorf("create completed workout: %w", err)
	}

	stored := 0
	for i, exercise := range input.Exercises {
		for _, set := range exercise.Sets {
			if set.Reps == 0 {
				continue
			}

			_, err := s.completedExerciseRepo.Create(ctx, &domain.CompletedExercise{
				CompletedWorkoutID: workoutID,
				ExerciseID:         exerciseIDs[i],
				Weight:             set.Weight,
				Reps:               set.Reps,
				SupersetWeight:     set.SupersetWeight,
				SupersetReps:       set.SupersetReps,
				TotalWeight:        domain.TotalWeight(set.Weight, set.Reps, set.SupersetWeight, set.SupersetReps),
			})
			if err != nil {
				return fmt.Errorf("store set of exercise %s for workout %s: %w", exercise.ExerciseID, workoutID.Hex(), err)
			}
			stored++
		}
	}

	log.Debugf("logged workout %s with %d sets", workoutID.Hex(), stored)
	return nil
}

// ListCompletedWorkouts returns the history, newest workout_date first.
func (s *workoutService) ListCompletedWorkouts(ctx context.Context) ([]CompletedWorkoutSummary, error) {
	workouts, err := s.completedWorkoutRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list completed workouts: %w", err)
	}

	result := make([]CompletedWorkoutSummary, 0, len(workouts))
	for _, w := range workouts {
		sessionName, err := s.sessionName(ctx, w.WorkoutSessionID)
		if err != nil {
			return nil, err
		}
		result = append(result, CompletedWorkoutSummary{
			ID:            w.ID,
			WorkoutDate:   w.WorkoutDate,
			WorkoutLength: w.WorkoutLength,
			SessionName:   sessionName,
		})
	}
	return result, nil
}

// GetCompletedWorkout assembles a workout with every logged set.
func (s *workoutService) GetCompletedWorkout(ctx context.Context, workoutID string) (*CompletedWorkoutDetail, error) {
	id, err := ParseID("workout_id", workoutID)
	if err != nil {
		return nil, err
	}

	workout, err := s.completedWorkoutRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCompletedWorkoutNotFound
		}
		return nil, fmt.Errorf("get completed workout %s: %w", workoutID, err)
	}

	sessionName, err := s.sessionName(ctx, workout.WorkoutSessionID)
	if err != nil {
		return nil, err
	}

	exercises, err := s.completedExerciseRepo.GetByWorkoutID(ctx, workout.ID)
	if err != nil {
		return nil, fmt.Errorf("list sets of workout %s: %w", workoutID, err)
	}

	detail := &CompletedWorkoutDetail{
		ID:            workout.ID,
		WorkoutLength: workout.WorkoutLength,
		WorkoutDate:   workout.WorkoutDate,
		SessionName:   sessionName,
		Exercises:     make([]CompletedExerciseDetail, 0, len(exercises)),
	}
	for _, e := range exercises {
		exerciseName, err := s.exerciseName(ctx, e.ExerciseID)
		if err != nil {
			return nil, err
		}
		detail.Exercises = append(detail.Exercises, CompletedExerciseDetail{
			ExerciseID:     e.ExerciseID,
			ExerciseName:   exerciseName,
			Weight:         e.Weight,
			Reps:           e.Reps,
			SupersetWeight: e.SupersetWeight,
			SupersetReps:   e.SupersetReps,
			TotalWeight:    e.TotalWeight,
		})
	}
	return detail, nil
}

// ResetCompletedWorkouts deletes the whole workout history. When archive
// storage is configured the history is uploaded first and nothing is
// deleted if that upload fails.
func (s *workoutService) ResetCompletedWorkouts(ctx context.Context) error {
	if s.archive != nil {
		if err := s.archiveHistory(ctx); err != nil {
			return err
		}
	}

	workouts, err := s.completedWorkoutRepo.DeleteAll(ctx)
	if err != nil {
		return fmt.Errorf("delete completed workouts: %w", err)
	}
	sets, err := s.completedExerciseRepo.DeleteAll(ctx)
	if err != nil {
		return fmt.Errorf("delete completed exercises: %w", err)
	}

	log.Infof("reset completed workouts: deleted %d workouts and %d sets", workouts, sets)
	return nil
}

func (s *workoutService) archiveHistory(ctx context.Context) error {
	workouts, err := s.completedWorkoutRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("read completed workouts for archive: %w", err)
	}
	exercises, err := s.completedExerciseRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("read completed exercises for archive: %w", err)
	}
	if len(workouts) == 0 && len(exercises) == 0 {
		return nil
	}

	now := s.now().UTC()
	body, err := json.Marshal(archiveSnapshot{
		ArchivedAt: now,
		Workouts:   workouts,
		Exercises:  exercises,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrArchiveFailed, err)
	}

	key := fmt.Sprintf("%s%s-%s.json", archiveKeyPrefix, now.Format("20060102T150405Z"), uuid.NewString())
	if err := s.archive.PutObject(ctx, key, "application/json", body); err != nil {
		return fmt.Errorf("%w: %v", ErrArchiveFailed, err)
	}

	log.Infof("archived %d completed workouts to %s", len(workouts), key)
	return nil
}

func (s *workoutService) sessionName(ctx context.Context, id primitive.ObjectID) (string, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return UnknownName, nil
		}
		return "", fmt.Errorf("get workout session %s: %w", id.Hex(), err)
	}
	return session.Name, nil
}

func (s *workoutService) exerciseName(ctx context.Context, id primitive.ObjectID) (string, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return UnknownName, nil
		}
		return "", fmt.Errorf("get exercise %s: %w", id.Hex(), err)
	}
	return exercise.ExerciseName, nil
}
