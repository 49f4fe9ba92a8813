package api

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PlanHandler serves workout plans and sessions.
type PlanHandler struct {
	planService service.PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// --- DTOs ---

type PlannedExerciseRequest struct {
	ExerciseID string `json:"exercise_id" binding:"required,objectid"`
	Sets       *int   `json:"sets" binding:"required,gt=0"`
}

type SessionRequest struct {
	Name      *string                  `json:"name" binding:"required"` // may be empty
	Exercises []PlannedExerciseRequest `json:"exercises" binding:"required,dive"`
}

// CreateWorkoutPlanRequest is the body of POST /create-workout-plan.
type CreateWorkoutPlanRequest struct {
	Name     *string          `json:"name" binding:"required"` // may be empty
	Sessions []SessionRequest `json:"sessions" binding:"required,dive"`
}

// WorkoutPlanResponse keeps the stored document's "_id" key.
type WorkoutPlanResponse struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type WorkoutSessionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SessionExerciseResponse struct {
	ID           string `json:"id"`
	ExerciseName string `json:"exercise_name"`
	Sets         int    `json:"sets"`
}

// MessageResponse is returned by write endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

func (r CreateWorkoutPlanRequest) toInput() service.CreateWorkoutPlanInput {
	input := service.CreateWorkoutPlanInput{
		Name:     *r.Name,
		Sessions: make([]service.SessionInput, len(r.Sessions)),
	}
	for i, s := range r.Sessions {
		exercises := make([]service.PlannedExerciseInput, len(s.Exercises))
		for j, e := range s.Exercises {
			exercises[j] = service.PlannedExerciseInput{ExerciseID: e.ExerciseID, Sets: *e.Sets}
		}
		input.Sessions[i] = service.SessionInput{Name: *s.Name, Exercises: exercises}
	}
	return input
}

func MapWorkoutPlansToResponse(plans []domain.WorkoutPlan) []WorkoutPlanResponse {
	responses := make([]WorkoutPlanResponse, len(plans))
	for i, p := range plans {
		responses[i] = WorkoutPlanResponse{ID: p.ID.Hex(), Name: p.Name}
	}
	return responses
}

func MapWorkoutSessionsToResponse(sessions []domain.WorkoutSession) []WorkoutSessionResponse {
	responses := make([]WorkoutSessionResponse, len(sessions))
	for i, s := range sessions {
		responses[i] = WorkoutSessionResponse{ID: s.ID.Hex(), Name: s.Name}
	}
	return responses
}

func MapSessionExercisesToResponse(exercises []service.SessionExercise) []SessionExerciseResponse {
	responses := make([]SessionExerciseResponse, len(exercises))
	for i, e := range exercises {
		responses[i] = SessionExerciseResponse{
			ID:           e.ExerciseID.Hex(),
			ExerciseName: e.ExerciseName,
			Sets:         e.Sets,
		}
	}
	return responses
}

// --- Handler Methods ---

// CreateWorkoutPlan godoc
// @Summary Create a workout plan
// @Description Creates the plan, its sessions and the planned exercises of each session.
// @Tags Plans
// @Accept json
// @Produce json
// @Param plan body CreateWorkoutPlanRequest true "Plan with sessions"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /create-workout-plan [post]
func (h *PlanHandler) CreateWorkoutPlan(c *gin.Context) {
	var req CreateWorkoutPlanRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.planService.CreateWorkoutPlan(c.Request.Context(), req.toInput()); err != nil {
		handleServiceError(c, err, "Failed to create workout plan.")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Workout plan created successfully!"})
}

// ListWorkoutPlans godoc
// @Summary List workout plans
// @Tags Plans
// @Produce json
// @Success 200 {array} WorkoutPlanResponse
// @Router /workout-plans [get]
func (h *PlanHandler) ListWorkoutPlans(c *gin.Context) {
	plans, err := h.planService.ListWorkoutPlans(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve workout plans.")
		return
	}

	c.JSON(http.StatusOK, MapWorkoutPlansToResponse(plans))
}

// ListWorkoutSessions godoc
// @Summary List workout sessions
// @Tags Plans
// @Produce json
// @Success 200 {array} WorkoutSessionResponse
// @Router /workout-sessions [get]
func (h *PlanHandler) ListWorkoutSessions(c *gin.Context) {
	sessions, err := h.planService.ListWorkoutSessions(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve workout sessions.")
		return
	}

	c.JSON(http.StatusOK, MapWorkoutSessionsToResponse(sessions))
}

// ListSessionExercises godoc
// @Summary List the planned exercises of a session
// @Tags Plans
// @Produce json
// @Param session_id path string true "Workout session ID"
// @Success 200 {array} SessionExerciseResponse
// @Failure 400 {object} gin.H "Invalid session ID"
// @Router /workout-sessions/{session_id}/exercises [get]
func (h *PlanHandler) ListSessionExercises(c *gin.Context) {
	exercises, err := h.planService.ListSessionExercises(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve session exercises.")
		return
	}

	c.JSON(http.StatusOK, MapSessionExercisesToResponse(exercises))
}
