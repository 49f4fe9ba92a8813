// internal/domain/workout_plan.go
package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutPlan is a named collection of sessions.
// Sessions are not linked back to the plan when it is created, so the plan
// document only carries its name.
type WorkoutPlan struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id"` // Served as the raw document
	Name string             `bson:"name" json:"name"`
}

// WorkoutSession is a single session (e.g. "Day A") that a plan is made of.
type WorkoutSession struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name          string              `bson:"name" json:"name"`
	WorkoutPlanID *primitive.ObjectID `bson:"workout_plan_id,omitempty" json:"workout_plan_id,omitempty"` // Never written by plan creation
}

// WorkoutPlanExercise links an exercise to a session together with the
// planned number of sets.
type WorkoutPlanExercise struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	WorkoutSessionID primitive.ObjectID `bson:"workout_session_id" json:"workout_session_id"`
	ExerciseID       primitive.ObjectID `bson:"exercise_id" json:"exercise_id"`
	Sets             int                `bson:"sets" json:"sets"` // Always > 0
}
