package api

import (
	"alcyxob/workout-tracker/internal/config"
	"alcyxob/workout-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	exerciseService service.ExerciseService,
	planService service.PlanService,
	workoutService service.WorkoutService,
) {
	exerciseHandler := NewExerciseHandler(exerciseService)
	planHandler := NewPlanHandler(planService)
	workoutHandler := NewWorkoutHandler(workoutService)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, MessageResponse{Message: "Hello from the workout tracker backend!"})
	})
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router.GET("/exercises", exerciseHandler.ListExercises)

	// --- Plans ---
	router.POST("/create-workout-plan", planHandler.CreateWorkoutPlan)
	router.GET("/workout-plans", planHandler.ListWorkoutPlans)
	router.GET("/workout-sessions", planHandler.ListWorkoutSessions)
	router.GET("/workout-sessions/:session_id/exercises", planHandler.ListSessionExercises)

	// --- Completed workouts ---
	router.POST("/log-workout", workoutHandler.LogWorkout)
	router.GET("/completed-workouts", workoutHandler.ListCompletedWorkouts)
	router.GET("/completed-workouts/:workout_id", workoutHandler.GetCompletedWorkout)
	router.DELETE("/reset-completed-workouts", workoutHandler.ResetCompletedWorkouts)
}

// NewRouter builds the engine with the middleware every route shares.
func NewRouter(corsCfg config.CORSConfig) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestIDMiddleware(),
		RequestLoggerMiddleware(),
		CORSMiddleware(corsCfg),
	)
	return router
}
