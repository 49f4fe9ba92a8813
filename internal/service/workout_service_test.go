package service_test

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/service"
	"alcyxob/workout-tracker/internal/storage"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func intPtr(v int) *int { return &v }

func newWorkoutService(s *memStore, archive storage.ObjectStorage) service.WorkoutService {
	return service.NewWorkoutService(completedWorkoutRepo{s}, completedExerciseRepo{s}, sessionRepo{s}, exerciseRepo{s}, archive)
}

// seedSession adds a session named name and returns its hex id.
func seedSession(s *memStore, name string) string {
	id, _ := sessionRepo{s}.Create(context.Background(), &domain.WorkoutSession{Name: name})
	return id.Hex()
}

func TestLogWorkout(t *testing.T) {
	s := newMemStore("Bench Press")
	svc := newWorkoutService(s, nil)
	sessionID := seedSession(s, "Push")
	bench := s.exerciseID("Bench Press").Hex()

	err := svc.LogWorkout(context.Background(), service.LogWorkoutInput{
		WorkoutSessionID: sessionID,
		WorkoutLength:    3600,
		WorkoutDate:      1700000000,
		Exercises: []service.CompletedExerciseInput{{
			ExerciseID: bench,
			Sets: []service.CompletedSetInput{
				{Weight: 100, Reps: 5},
				{Weight: 100, Reps: 5, SupersetWeight: intPtr(30), SupersetReps: intPtr(5)},
				{Weight: 100, Reps: 0},
			},
		}},
	})
	require.NoError(t, err)

	require.Len(t, s.completedWorkouts, 1)
	workout := s.completedWorkouts[0]
	assert.Equal(t, 3600, workout.WorkoutLength)
	assert.Equal(t, int64(1700000000), workout.WorkoutDate)
	assert.Equal(t, sessionID, workout.WorkoutSessionID.Hex())

	require.Len(t, s.completedExercises, 2)
	assert.Equal(t, 500, s.completedExercises[0].TotalWeight)
	assert.Nil(t, s.completedExercises[0].SupersetWeight)
	assert.Equal(t, 650, s.completedExercises[1].TotalWeight)
	for _, e := range s.completedExercises {
		assert.Equal(t, workout.ID, e.CompletedWorkoutID)
	}
}

func TestLogWorkout_MalformedIDsWriteNothing(t *testing.T) {
	s := newMemStore("Bench Press")
	svc := newWorkoutService(s, nil)

	err := svc.LogWorkout(context.Background(), service.LogWorkoutInput{
		WorkoutSessionID: "nope",
		Exercises: []service.CompletedExerciseInput{
			{ExerciseID: s.exerciseID("Bench Press").Hex(), Sets: []service.CompletedSetInput{{Weight: 1, Reps: 1}}},
			{ExerciseID: "also-nope", Sets: []service.CompletedSetInput{{Weight: 1, Reps: 1}}},
		},
	})

	var validationErr *service.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Fields, 2)
	assert.Equal(t, "workout_session_id", validationErr.Fields[0].Field)
	assert.Equal(t, "exercises[1].exercise_id", validationErr.Fields[1].Field)
	assert.Zero(t, s.writes())
}

func TestLogWorkout_SetInsertFailure(t *testing.T) {
	s := newMemStore("Bench Press")
	s.failSetInsert = true
	svc := newWorkoutService(s, nil)

	err := svc.LogWorkout(context.Background(), service.LogWorkoutInput{
		WorkoutSessionID: seedSession(s, "Push"),
		Exercises: []service.CompletedExerciseInput{
			{ExerciseID: s.exerciseID("Bench Press").Hex(), Sets: []service.CompletedSetInput{{Weight: 1, Reps: 1}}},
		},
	})
	assert.ErrorIs(t, err, errStore)
	assert.Len(t, s.completedWorkouts, 1)
}

func TestListCompletedWorkouts(t *testing.T) {
	s := newMemStore()
	svc := newWorkoutService(s, nil)
	ctx := context.Background()
	push := seedSession(s, "Push")

	empty, err := svc.ListCompletedWorkouts(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, date := range []int64{100, 300, 200} {
		require.NoError(t, svc.LogWorkout(ctx, service.LogWorkoutInput{
			WorkoutSessionID: push,
			WorkoutLength:    60,
			WorkoutDate:      date,
		}))
	}
	require.NoError(t, svc.LogWorkout(ctx, service.LogWorkoutInput{
		WorkoutSessionID: primitive.NewObjectID().Hex(),
		WorkoutDate:      50,
	}))

	workouts, err := svc.ListCompletedWorkouts(ctx)
	require.NoError(t, err)
	require.Len(t, workouts, 4)
	assert.Equal(t, int64(300), workouts[0].WorkoutDate)
	assert.Equal(t, int64(200), workouts[1].WorkoutDate)
	assert.Equal(t, int64(100), workouts[2].WorkoutDate)
	assert.Equal(t, "Push", workouts[0].SessionName)
	assert.Equal(t, service.UnknownName, workouts[3].SessionName)

	s.failSessionLookup = true
	_, err = svc.ListCompletedWorkouts(ctx)
	assert.ErrorIs(t, err, errStore)
}

func TestGetCompletedWorkout(t *testing.T) {
	s := newMemStore("Bench Press", "Dips")
	svc := newWorkoutService(s, nil)
	ctx := context.Background()

	require.NoError(t, svc.LogWorkout(ctx, service.LogWorkoutInput{
		WorkoutSessionID: seedSession(s, "Push"),
		WorkoutLength:    1800,
		WorkoutDate:      1700000000,
		Exercises: []service.CompletedExerciseInput{
			{ExerciseID: s.exerciseID("Bench Press").Hex(), Sets: []service.CompletedSetInput{
				{Weight: 100, Reps: 5, SupersetWeight: intPtr(30), SupersetReps: intPtr(5)},
			}},
			{ExerciseID: s.exerciseID("Dips").Hex(), Sets: []service.CompletedSetInput{
				{Weight: 0, Reps: 12},
			}},
		},
	}))
	workoutID := s.completedWorkouts[0].ID.Hex()

	t.Run("found", func(t *testing.T) {
		detail, err := svc.GetCompletedWorkout(ctx, workoutID)
		require.NoError(t, err)
		assert.Equal(t, "Push", detail.SessionName)
		assert.Equal(t, 1800, detail.WorkoutLength)
		require.Len(t, detail.Exercises, 2)
		assert.Equal(t, "Bench Press", detail.Exercises[0].ExerciseName)
		assert.Equal(t, 650, detail.Exercises[0].TotalWeight)
		assert.Equal(t, 30, *detail.Exercises[0].SupersetWeight)
		assert.Equal(t, "Dips", detail.Exercises[1].ExerciseName)
		assert.Equal(t, 0, detail.Exercises[1].TotalWeight)
	})

	t.Run("deleted exercise is unknown", func(t *testing.T) {
		s.mu.Lock()
		s.exercises = s.exercises[1:]
		s.mu.Unlock()

		detail, err := svc.GetCompletedWorkout(ctx, workoutID)
		require.NoError(t, err)
		assert.Equal(t, service.UnknownName, detail.Exercises[0].ExerciseName)
		assert.Equal(t, "Dips", detail.Exercises[1].ExerciseName)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetCompletedWorkout(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, service.ErrCompletedWorkoutNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := svc.GetCompletedWorkout(ctx, "xyz")
		assert.ErrorIs(t, err, service.ErrValidationFailed)
	})
}

func logOneWorkout(t *testing.T, s *memStore, svc service.WorkoutService) {
	t.Helper()
	require.NoError(t, svc.LogWorkout(context.Background(), service.LogWorkoutInput{
		WorkoutSessionID: seedSession(s, "Push"),
		WorkoutDate:      1700000000,
		Exercises: []service.CompletedExerciseInput{
			{ExerciseID: primitive.NewObjectID().Hex(), Sets: []service.CompletedSetInput{{Weight: 10, Reps: 10}}},
		},
	}))
}

func TestResetCompletedWorkouts(t *testing.T) {
	s := newMemStore()
	svc := newWorkoutService(s, nil)
	ctx := context.Background()
	logOneWorkout(t, s, svc)

	require.NoError(t, svc.ResetCompletedWorkouts(ctx))
	assert.Empty(t, s.completedWorkouts)
	assert.Empty(t, s.completedExercises)
	assert.Len(t, s.sessions, 1)

	// A second reset on an empty history is fine.
	require.NoError(t, svc.ResetCompletedWorkouts(ctx))

	workouts, err := svc.ListCompletedWorkouts(ctx)
	require.NoError(t, err)
	assert.Empty(t, workouts)
}

func TestResetCompletedWorkouts_DeleteFailure(t *testing.T) {
	s := newMemStore()
	svc := newWorkoutService(s, nil)
	logOneWorkout(t, s, svc)
	s.failDelete = true

	err := svc.ResetCompletedWorkouts(context.Background())
	assert.ErrorIs(t, err, errStore)
}

func TestResetCompletedWorkouts_Archive(t *testing.T) {
	t.Run("uploads snapshot before deleting", func(t *testing.T) {
		s := newMemStore()
		archive := &fakeArchive{}
		svc := newWorkoutService(s, archive)
		logOneWorkout(t, s, svc)

		require.NoError(t, svc.ResetCompletedWorkouts(context.Background()))
		require.Len(t, archive.puts, 1)
		put := archive.puts[0]
		assert.True(t, strings.HasPrefix(put.key, "completed-workouts/"))
		assert.True(t, strings.HasSuffix(put.key, ".json"))
		assert.Equal(t, "application/json", put.contentType)

		var snapshot struct {
			Workouts  []json.RawMessage `json:"completed_workouts"`
			Exercises []json.RawMessage `json:"completed_exercises"`
		}
		require.NoError(t, json.Unmarshal(put.body, &snapshot))
		assert.Len(t, snapshot.Workouts, 1)
		assert.Len(t, snapshot.Exercises, 1)
		assert.Empty(t, s.completedWorkouts)
	})

	t.Run("empty history is not uploaded", func(t *testing.T) {
		s := newMemStore()
		archive := &fakeArchive{}
		svc := newWorkoutService(s, archive)

		require.NoError(t, svc.ResetCompletedWorkouts(context.Background()))
		assert.Empty(t, archive.puts)
	})

	t.Run("upload failure keeps history", func(t *testing.T) {
		s := newMemStore()
		archive := &fakeArchive{err: errors.New("bucket gone")}
		svc := newWorkoutService(s, archive)
		logOneWorkout(t, s, svc)

		err := svc.ResetCompletedWorkouts(context.Background())
		assert.ErrorIs(t, err, service.ErrArchiveFailed)
		assert.Len(t, s.completedWorkouts, 1)
		assert.Len(t, s.completedExercises, 1)
	})
}
