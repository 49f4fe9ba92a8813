package mongo

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

// Collection names, one per document model.
const (
	exerciseCollectionName          = "exercises"
	workoutPlanCollectionName       = "workout_plans"
	workoutSessionCollectionName    = "workout_sessions"
	planExerciseCollectionName      = "workout_plan_exercises"
	completedWorkoutCollectionName  = "completed_workouts"
	completedExerciseCollectionName = "completed_exercises"
)

// ConnectDB establishes a connection to MongoDB using the provided URI.
// It returns the mongo.Client which can be used to access databases and collections.
func ConnectDB(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Connect is lazy; ping the primary so a bad URI fails at startup.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	err = client.Ping(pingCtx, readpref.Primary())
	if err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, err
	}

	return client, nil
}

// DisconnectDB gracefully disconnects the MongoDB client.
func DisconnectDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// EnsureIndexes registers every document model with the database by creating
// the indexes its queries rely on. Failures are logged, not returned: the
// service still works without them, only slower.
func EnsureIndexes(ctx context.Context, db *mongo.Database) {
	EnsureExerciseIndexes(ctx, db.Collection(exerciseCollectionName))
	EnsureWorkoutPlanIndexes(ctx, db.Collection(workoutPlanCollectionName))
	EnsureWorkoutSessionIndexes(ctx, db.Collection(workoutSessionCollectionName))
	EnsurePlanExerciseIndexes(ctx, db.Collection(planExerciseCollectionName))
	EnsureCompletedWorkoutIndexes(ctx, db.Collection(completedWorkoutCollectionName))
	EnsureCompletedExerciseIndexes(ctx, db.Collection(completedExerciseCollectionName))
}

func createIndexes(ctx context.Context, collection *mongo.Collection, indexes []mongo.IndexModel) {
	names, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		log.Warnf("failed to create indexes for collection %s: %v", collection.Name(), err)
		return
	}
	log.Debugf("indexes %v ensured for collection %s", names, collection.Name())
}
