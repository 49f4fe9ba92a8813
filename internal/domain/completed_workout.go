// internal/domain/completed_workout.go
package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CompletedWorkout is one performed workout of a session.
type CompletedWorkout struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	WorkoutSessionID primitive.ObjectID `bson:"workout_session_id" json:"workout_session_id"`
	WorkoutLength    int                `bson:"workout_length" json:"workout_length"` // Seconds
	WorkoutDate      int64              `bson:"workout_date" json:"workout_date"`     // Unix timestamp
}

// CompletedExercise is a single logged set of a completed workout.
// Superset values are nil when the set had no superset.
type CompletedExercise struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CompletedWorkoutID primitive.ObjectID `bson:"completed_workout_id" json:"completed_workout_id"`
	ExerciseID         primitive.ObjectID `bson:"exercise_id" json:"exercise_id"`
	Weight             int                `bson:"weight" json:"weight"`
	Reps               int                `bson:"reps" json:"reps"`
	SupersetWeight     *int               `bson:"superset_weight" json:"superset_weight"`
	SupersetReps       *int               `bson:"superset_reps" json:"superset_reps"`
	TotalWeight        int                `bson:"total_weight" json:"total_weight"`
}

// TotalWeight returns the volume moved in a set: weight*reps plus the
// superset contribution, where a missing superset value counts as zero.
func TotalWeight(weight, reps int, supersetWeight, supersetReps *int) int {
	total := weight * reps
	if supersetWeight != nil && supersetReps != nil {
		total += *supersetWeight * *supersetReps
	}
	return total
}
