// internal/repository/mongo/plan_exercise_repo.go
package mongo

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoPlanExerciseRepository implements repository.PlanExerciseRepository
type mongoPlanExerciseRepository struct {
	collection *mongo.Collection
}

// NewMongoPlanExerciseRepository creates a new repository for the exercises planned per session.
func NewMongoPlanExerciseRepository(db *mongo.Database) repository.PlanExerciseRepository {
	return &mongoPlanExerciseRepository{
		collection: db.Collection(planExerciseCollectionName),
	}
}

// Create inserts a session/exercise link.
func (r *mongoPlanExerciseRepository) Create(ctx context.Context, planExercise *domain.WorkoutPlanExercise) (primitive.ObjectID, error) {
	if planExercise.Sets <= 0 {
		return primitive.NilObjectID, errors.New("plan exercise sets must be greater than zero")
	}
	planExercise.ID = primitive.NewObjectID()

	result, err := r.collection.InsertOne(ctx, planExercise)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted plan exercise ID")
	}
	return insertedID, nil
}

// GetBySessionID retrieves all planned exercises of a session.
func (r *mongoPlanExerciseRepository) GetBySessionID(ctx context.Context, sessionID primitive.ObjectID) ([]domain.WorkoutPlanExercise, error) {
	var planExercises []domain.WorkoutPlanExercise
	filter := bson.M{"workout_session_id": sessionID}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &planExercises); err != nil {
		return nil, err
	}
	return planExercises, nil
}

// EnsurePlanExerciseIndexes creates necessary indexes. Call during startup.
func EnsurePlanExerciseIndexes(ctx context.Context, collection *mongo.Collection) {
	createIndexes(ctx, collection, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "workout_session_id", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "exercise_id", Value: 1}},
			Options: options.Index(),
		},
	})
}
