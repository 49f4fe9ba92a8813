// internal/repository/mongo/workout_session_repo.go
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

// mongoWorkoutSessionRepository implements repository.WorkoutSessionRepository
type mongoWorkoutSessionRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutSessionRepository creates a new WorkoutSession repository.
func NewMongoWorkoutSessionRepository(db *mongo.Database) repository.WorkoutSessionRepository {
	return &mongoWorkoutSessionRepository{
		collection: db.Collection(workoutSessionCollectionName),
	}
}

// Create inserts a new workout session.
func (r *mongoWorkoutSessionRepository) Create(ctx context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error) {
	session.ID = primitive.NewObjectID()

	result, err := r.collection.InsertOne(ctx, session)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted session ID")
	}
	return insertedID, nil
}

// GetAll retrieves every workout session.
func (r *mongoWorkoutSessionRepository) GetAll(ctx context.Context) ([]domain.WorkoutSession, error) {
	var sessions []domain.WorkoutSession

	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// GetByID retrieves a single workout session by its ID.
func (r *mongoWorkoutSessionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error) {
	var session domain.WorkoutSession
	filter := bson.M{"_id": id}
	err := r.collection.FindOne(ctx, filter).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// EnsureWorkoutSessionIndexes creates necessary indexes. Call during startup.
func EnsureWorkoutSessionIndexes(ctx context.Context, collection *mongo.Collection) {
	createIndexes(ctx, collection, []mongo.IndexModel{
		{
			// Sparse: sessions created through plan creation have no plan link
			Keys:    bson.D{{Key: "workout_plan_id", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	})
}
