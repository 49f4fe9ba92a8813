// internal/repository/mongo/completed_workout_repo.go
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

// mongoCompletedWorkoutRepository implements repository.CompletedWorkoutRepository
type mongoCompletedWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoCompletedWorkoutRepository creates a new CompletedWorkout repository.
func NewMongoCompletedWorkoutRepository(db *mongo.Database) repository.CompletedWorkoutRepository {
	return &mongoCompletedWorkoutRepository{
		collection: db.Collection(completedWorkoutCollectionName),
	}
}

// Create inserts a logged workout.
func (r *mongoCompletedWorkoutRepository) Create(ctx context.Context, workout *domain.CompletedWorkout) (primitive.ObjectID, error) {
	workout.ID = primitive.NewObjectID()

	result, err := r.collection.InsertOne(ctx, workout)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted workout ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single logged workout by its ID.
func (r *mongoCompletedWorkoutRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.CompletedWorkout, error) {
	var workout domain.CompletedWorkout
	filter := bson.M{"_id": id}
	err := r.collection.FindOne(ctx, filter).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// GetAll retrieves every logged workout, newest workout_date first.
func (r *mongoCompletedWorkoutRepository) GetAll(ctx context.Context) ([]domain.CompletedWorkout, error) {
	var workouts []domain.CompletedWorkout
	findOptions := options.Find().SetSort(bson.D{{Key: "workout_date", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// DeleteAll removes every logged workout and reports how many were deleted.
func (r *mongoCompletedWorkoutRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// EnsureCompletedWorkoutIndexes creates necessary indexes. Call during startup.
func EnsureCompletedWorkoutIndexes(ctx context.Context, collection *mongo.Collection) {
	createIndexes(ctx, collection, []mongo.IndexModel{
		{
			// History is always listed newest first
			Keys:    bson.D{{Key: "workout_date", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "workout_session_id", Value: 1}},
			Options: options.Index(),
		},
	})
}
