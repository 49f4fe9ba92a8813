// internal/domain/exercise.go
package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is an entry in the exercise catalog. Plans and logged workouts
// reference it by ID.
type Exercise struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ExerciseName string             `bson:"exercise_name" json:"exercise_name"`
}
