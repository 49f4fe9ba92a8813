package service_test

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"errors"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errStore = errors.New("store unavailable")

// memStore keeps every collection in memory so service tests can check
// exactly which documents were written.
type memStore struct {
	mu                 sync.Mutex
	exercises          []domain.Exercise
	plans              []domain.WorkoutPlan
	sessions           []domain.WorkoutSession
	planExercises      []domain.WorkoutPlanExercise
	completedWorkouts  []domain.CompletedWorkout
	completedExercises []domain.CompletedExercise

	failExerciseLookup bool
	failSessionLookup  bool
	failSetInsert      bool
	failDelete         bool
}

func newMemStore(exerciseNames ...string) *memStore {
	s := &memStore{}
	for _, name := range exerciseNames {
		s.exercises = append(s.exercises, domain.Exercise{ID: primitive.NewObjectID(), ExerciseName: name})
	}
	return s
}

func (s *memStore) exerciseID(name string) primitive.ObjectID {
	for _, e := range s.exercises {
		if e.ExerciseName == name {
			return e.ID
		}
	}
	return primitive.NilObjectID
}

func (s *memStore) writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.plans) + len(s.sessions) + len(s.planExercises) + len(s.completedWorkouts) + len(s.completedExercises)
}

type exerciseRepo struct{ s *memStore }

func (r exerciseRepo) GetAll(ctx context.Context) ([]domain.Exercise, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]domain.Exercise{}, r.s.exercises...), nil
}

func (r exerciseRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failExerciseLookup {
		return nil, errStore
	}
	for _, e := range r.s.exercises {
		if e.ID == id {
			found := e
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

type planRepo struct{ s *memStore }

func (r planRepo) Create(ctx context.Context, plan *domain.WorkoutPlan) (primitive.ObjectID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	plan.ID = primitive.NewObjectID()
	r.s.plans = append(r.s.plans, *plan)
	return plan.ID, nil
}

func (r planRepo) GetAll(ctx context.Context) ([]domain.WorkoutPlan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]domain.WorkoutPlan{}, r.s.plans...), nil
}

type sessionRepo struct{ s *memStore }

func (r sessionRepo) Create(ctx context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	session.ID = primitive.NewObjectID()
	r.s.sessions = append(r.s.sessions, *session)
	return session.ID, nil
}

func (r sessionRepo) GetAll(ctx context.Context) ([]domain.WorkoutSession, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]domain.WorkoutSession{}, r.s.sessions...), nil
}

func (r sessionRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failSessionLookup {
		return nil, errStore
	}
	for _, session := range r.s.sessions {
		if session.ID == id {
			found := session
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

type planExerciseRepo struct{ s *memStore }

func (r planExerciseRepo) Create(ctx context.Context, pe *domain.WorkoutPlanExercise) (primitive.ObjectID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	pe.ID = primitive.NewObjectID()
	r.s.planExercises = append(r.s.planExercises, *pe)
	return pe.ID, nil
}

func (r planExerciseRepo) GetBySessionID(ctx context.Context, sessionID primitive.ObjectID) ([]domain.WorkoutPlanExercise, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []domain.WorkoutPlanExercise
	for _, pe := range r.s.planExercises {
		if pe.WorkoutSessionID == sessionID {
			result = append(result, pe)
		}
	}
	return result, nil
}

type completedWorkoutRepo struct{ s *memStore }

func (r completedWorkoutRepo) Create(ctx context.Context, w *domain.CompletedWorkout) (primitive.ObjectID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	w.ID = primitive.NewObjectID()
	r.s.completedWorkouts = append(r.s.completedWorkouts, *w)
	return w.ID, nil
}

func (r completedWorkoutRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.CompletedWorkout, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, w := range r.s.completedWorkouts {
		if w.ID == id {
			found := w
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r completedWorkoutRepo) GetAll(ctx context.Context) ([]domain.CompletedWorkout, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	result := append([]domain.CompletedWorkout{}, r.s.completedWorkouts...)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].WorkoutDate > result[j].WorkoutDate
	})
	return result, nil
}

func (r completedWorkoutRepo) DeleteAll(ctx context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failDelete {
		return 0, errStore
	}
	n := int64(len(r.s.completedWorkouts))
	r.s.completedWorkouts = nil
	return n, nil
}

type completedExerciseRepo struct{ s *memStore }

func (r completedExerciseRepo) Create(ctx context.Context, e *domain.CompletedExercise) (primitive.ObjectID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failSetInsert {
		return primitive.NilObjectID, errStore
	}
	e.ID = primitive.NewObjectID()
	r.s.completedExercises = append(r.s.completedExercises, *e)
	return e.ID, nil
}

func (r completedExerciseRepo) GetByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) ([]domain.CompletedExercise, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []domain.CompletedExercise
	for _, e := range r.s.completedExercises {
		if e.CompletedWorkoutID == workoutID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (r completedExerciseRepo) GetAll(ctx context.Context) ([]domain.CompletedExercise, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]domain.CompletedExercise{}, r.s.completedExercises...), nil
}

func (r completedExerciseRepo) DeleteAll(ctx context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := int64(len(r.s.completedExercises))
	r.s.completedExercises = nil
	return n, nil
}

type putCall struct {
	key         string
	contentType string
	body        []byte
}

type fakeArchive struct {
	puts []putCall
	err  error
}

func (a *fakeArchive) PutObject(ctx context.Context, objectKey, contentType string, body []byte) error {
	if a.err != nil {
		return a.err
	}
	a.puts = append(a.puts, putCall{key: objectKey, contentType: contentType, body: body})
	return nil
}
