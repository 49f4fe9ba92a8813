// internal/repository/mongo/completed_exercise_repo.go
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

// mongoCompletedExerciseRepository implements repository.CompletedExerciseRepository
type mongoCompletedExerciseRepository struct {
	collection *mongo.Collection
}

// NewMongoCompletedExerciseRepository creates a new repository for logged sets.
func NewMongoCompletedExerciseRepository(db *mongo.Database) repository.CompletedExerciseRepository {
	return &mongoCompletedExerciseRepository{
		collection: db.Collection(completedExerciseCollectionName),
	}
}

// Create inserts a logged set. TotalWeight must already be computed.
func (r *mongoCompletedExerciseRepository) Create(ctx context.Context, exercise *domain.CompletedExercise) (primitive.ObjectID, error) {
	exercise.ID = primitive.NewObjectID()

	result, err := r.collection.InsertOne(ctx, exercise)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted completed exercise ID")
	}
	return insertedID, nil
}

// GetByWorkoutID retrieves the logged sets of one workout in insertion order.
func (r *mongoCompletedExerciseRepository) GetByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) ([]domain.CompletedExercise, error) {
	return r.find(ctx, bson.M{"completed_workout_id": workoutID})
}

// GetAll retrieves every logged set.
func (r *mongoCompletedExerciseRepository) GetAll(ctx context.Context) ([]domain.CompletedExercise, error) {
	return r.find(ctx, bson.D{})
}

func (r *mongoCompletedExerciseRepository) find(ctx context.Context, filter interface{}) ([]domain.CompletedExercise, error) {
	var exercises []domain.CompletedExercise

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

// DeleteAll removes every logged set and reports how many were deleted.
func (r *mongoCompletedExerciseRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// EnsureCompletedExerciseIndexes creates necessary indexes. Call during startup.
func EnsureCompletedExerciseIndexes(ctx context.Context, collection *mongo.Collection) {
	createIndexes(ctx, collection, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "completed_workout_id", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "exercise_id", Value: 1}},
			Options: options.Index(),
		},
	})
}
