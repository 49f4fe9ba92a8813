package api

import (
	"alcyxob/workout-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler serves logged workouts.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs ---

type CompletedSetRequest struct {
	Weight         *int    `json:"weight" binding:"required"`
	Reps           *int    `json:"reps" binding:"required"`
	SupersetWeight *int    `json:"superset_weight"`
	SupersetReps   *int    `json:"superset_reps"`
	Notes          *string `json:"notes"`
}

type CompletedExerciseRequest struct {
	ExerciseID string                `json:"exercise_id" binding:"required,objectid"`
	Sets       []CompletedSetRequest `json:"sets" binding:"required,dive"`
}

// LogWorkoutRequest is the body of POST /log-workout.
type LogWorkoutRequest struct {
	WorkoutSessionID string                     `json:"workout_session_id" binding:"required,objectid"`
	WorkoutLength    *int                       `json:"workout_length" binding:"required"`
	WorkoutDate      *int64                     `json:"workout_date" binding:"required"`
	Exercises        []CompletedExerciseRequest `json:"exercises" binding:"required,dive"`
}

type CompletedWorkoutResponse struct {
	ID            string `json:"id"`
	WorkoutDate   int64  `json:"workout_date"`
	WorkoutLength int    `json:"workout_length"`
	SessionName   string `json:"session_name"`
}

type CompletedExerciseResponse struct {
	ExerciseID     string `json:"exercise_id"`
	ExerciseName   string `json:"exercise_name"`
	Weight         int    `json:"weight"`
	Reps           int    `json:"reps"`
	SupersetWeight *int   `json:"superset_weight"`
	SupersetReps   *int   `json:"superset_reps"`
	TotalWeight    int    `json:"total_weight"`
}

type CompletedWorkoutDetailResponse struct {
	ID            string                      `json:"id"`
	WorkoutLength int                         `json:"workout_length"`
	WorkoutDate   int64                       `json:"workout_date"`
	SessionName   string                      `json:"session_name"`
	Exercises     []CompletedExerciseResponse `json:"exercises"`
}

func (r LogWorkoutRequest) toInput() service.LogWorkoutInput {
	input := service.LogWorkoutInput{
		WorkoutSessionID: r.WorkoutSessionID,
		WorkoutLength:    *r.WorkoutLength,
		WorkoutDate:      *r.WorkoutDate,
		Exercises:        make([]service.CompletedExerciseInput, len(r.Exercises)),
	}
	for i, e := range r.Exercises {
		sets := make([]service.CompletedSetInput, len(e.Sets))
		for j, s := range e.Sets {
			sets[j] = service.CompletedSetInput{
				Weight:         *s.Weight,
				Reps:           *s.Reps,
				SupersetWeight: s.SupersetWeight,
				SupersetReps:   s.SupersetReps,
				Notes:          s.Notes,
			}
		}
		input.Exercises[i] = service.CompletedExerciseInput{ExerciseID: e.ExerciseID, Sets: sets}
	}
	return input
}

func MapCompletedWorkoutsToResponse(workouts []service.CompletedWorkoutSummary) []CompletedWorkoutResponse {
	responses := make([]CompletedWorkoutResponse, len(workouts))
	for i, w := range workouts {
		responses[i] = CompletedWorkoutResponse{
			ID:            w.ID.Hex(),
			WorkoutDate:   w.WorkoutDate,
			WorkoutLength: w.WorkoutLength,
			SessionName:   w.SessionName,
		}
	}
	return responses
}

func MapCompletedWorkoutDetailToResponse(detail *service.CompletedWorkoutDetail) CompletedWorkoutDetailResponse {
	exercises := make([]CompletedExerciseResponse, len(detail.Exercises))
	for i, e := range detail.Exercises {
		exercises[i] = CompletedExerciseResponse{
			ExerciseID:     e.ExerciseID.Hex(),
			ExerciseName:   e.ExerciseName,
			Weight:         e.Weight,
			Reps:           e.Reps,
			SupersetWeight: e.SupersetWeight,
			SupersetReps:   e.SupersetReps,
			TotalWeight:    e.TotalWeight,
		}
	}
	return CompletedWorkoutDetailResponse{
		ID:            detail.ID.Hex(),
		WorkoutLength: detail.WorkoutLength,
		WorkoutDate:   detail.WorkoutDate,
		SessionName:   detail.SessionName,
		Exercises:     exercises,
	}
}

// --- Handler Methods ---

// LogWorkout godoc
// @Summary Log a completed workout
// @Description Stores the workout and one record per set. Sets with 0 reps are skipped.
// @Tags Workouts
// @Accept json
// @Produce json
// @Param workout body LogWorkoutRequest true "Performed workout"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /log-workout [post]
func (h *WorkoutHandler) LogWorkout(c *gin.Context) {
	var req LogWorkoutRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.workoutService.LogWorkout(c.Request.Context(), req.toInput()); err != nil {
		handleServiceError(c, err, "Failed to log workout.")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Workout logged successfully"})
}

// ListCompletedWorkouts godoc
// @Summary List completed workouts, newest first
// @Tags Workouts
// @Produce json
// @Success 200 {array} CompletedWorkoutResponse
// @Router /completed-workouts [get]
func (h *WorkoutHandler) ListCompletedWorkouts(c *gin.Context) {
	workouts, err := h.workoutService.ListCompletedWorkouts(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve completed workouts.")
		return
	}

	c.JSON(http.StatusOK, MapCompletedWorkoutsToResponse(workouts))
}

// GetCompletedWorkout godoc
// @Summary Get one completed workout with all sets
// @Tags Workouts
// @Produce json
// @Param workout_id path string true "Completed workout ID"
// @Success 200 {object} CompletedWorkoutDetailResponse
// @Failure 400 {object} gin.H "Invalid workout ID"
// @Failure 404 {object} gin.H "Workout not found"
// @Router /completed-workouts/{workout_id} [get]
func (h *WorkoutHandler) GetCompletedWorkout(c *gin.Context) {
	detail, err := h.workoutService.GetCompletedWorkout(c.Request.Context(), c.Param("workout_id"))
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve completed workout.")
		return
	}

	c.JSON(http.StatusOK, MapCompletedWorkoutDetailToResponse(detail))
}

// ResetCompletedWorkouts godoc
// @Summary Delete the whole workout history
// @Tags Workouts
// @Success 204 "History deleted"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /reset-completed-workouts [delete]
func (h *WorkoutHandler) ResetCompletedWorkouts(c *gin.Context) {
	if err := h.workoutService.ResetCompletedWorkouts(c.Request.Context()); err != nil {
		handleServiceError(c, err, "Failed to reset completed workouts.")
		return
	}

	c.Status(http.StatusNoContent)
}
