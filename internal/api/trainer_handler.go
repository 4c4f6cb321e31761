// internal/api/trainer_handler.go
package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"alcyxob/trainer-backoffice/internal/domain"
	"alcyxob/trainer-backoffice/internal/messaging"
	"alcyxob/trainer-backoffice/internal/service"
)

type TrainerHandler struct {
	trainerService service.TrainerService
}

func NewTrainerHandler(trainerService service.TrainerService) *TrainerHandler {
	return &TrainerHandler{trainerService: trainerService}
}

// --- DTOs for Prescriptions ---

type AssignWorkoutRequest struct {
	WorkoutID int64 `json:"workoutId" binding:"required,min=1"`
}

type AssignExerciseRequest struct {
	ExerciseID int64           `json:"exerciseId" binding:"required,min=1"`
	Sets       domain.SetCount `json:"sets"` // empty -> 3
	Reps       string          `json:"reps"` // empty -> "10"
	Load       string          `json:"load"`
	Obs        string          `json:"obs"`
}

// CompleteWorkoutResponse is the outcome of a finished session.
type CompleteWorkoutResponse struct {
	Client ClientResponse     `json:"client"`
	Log    domain.ProgressLog `json:"log"`
	Share  messaging.Message  `json:"share"`
}

// --- Handler Methods ---

// AssignWorkout godoc
// @Summary Assign a library workout to a client
// @Description The client receives a private copy; later library edits do not reach it.
// @Tags Prescriptions
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Param assignment body AssignWorkoutRequest true "Workout to assign"
// @Success 200 {object} ClientResponse
// @Failure 404 {object} gin.H "Client or workout not found"
// @Failure 409 {object} gin.H "Workout already assigned"
// @Router /clients/{id}/workouts [post]
func (h *TrainerHandler) AssignWorkout(c *gin.Context) {
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req AssignWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	client, err := h.trainerService.AssignWorkout(c.Request.Context(), clientID, req.WorkoutID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to assign workout.")
		return
	}
	c.JSON(http.StatusOK, MapClientToResponse(client))
}

func (h *TrainerHandler) RemoveAssignedWorkout(c *gin.Context) {
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	workoutID, ok := parseIDParam(c, "workoutId")
	if !ok {
		return
	}

	client, err := h.trainerService.RemoveAssignedWorkout(c.Request.Context(), clientID, workoutID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to remove workout.")
		return
	}
	c.JSON(http.StatusOK, MapClientToResponse(client))
}

// CompleteWorkout godoc
// @Summary Record a finished session of an assigned workout
// @Description Bumps today's progress log (or opens one) and returns the share message with its WhatsApp link.
// @Tags Prescriptions
// @Produce json
// @Param id path int true "Client ID"
// @Param workoutId path int true "Assigned workout ID"
// @Success 200 {object} CompleteWorkoutResponse
// @Failure 404 {object} gin.H "Client not found or workout not assigned"
// @Router /clients/{id}/workouts/{workoutId}/complete [post]
func (h *TrainerHandler) CompleteWorkout(c *gin.Context) {
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	workoutID, ok := parseIDParam(c, "workoutId")
	if !ok {
		return
	}

	res, err := h.trainerService.CompleteWorkout(c.Request.Context(), clientID, workoutID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to complete workout.")
		return
	}
	c.JSON(http.StatusOK, CompleteWorkoutResponse{
		Client: MapClientToResponse(res.Client),
		Log:    res.Log,
		Share:  res.Share,
	})
}

func (h *TrainerHandler) AssignExercise(c *gin.Context) {
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req AssignExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	client, err := h.trainerService.AssignExercise(c.Request.Context(), clientID, service.ExercisePrescription{
		ExerciseID: req.ExerciseID,
		Sets:       req.Sets,
		Reps:       req.Reps,
		Load:       req.Load,
		Obs:        req.Obs,
	})
	if err != nil {
		abortWithServiceError(c, err, "Failed to assign exercise.")
		return
	}
	c.JSON(http.StatusOK, MapClientToResponse(client))
}

// RemoveAssignedExercise drops the standalone prescription at a position.
func (h *TrainerHandler) RemoveAssignedExercise(c *gin.Context) {
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid index format.")
		return
	}

	client, err := h.trainerService.RemoveAssignedExercise(c.Request.Context(), clientID, index)
	if err != nil {
		abortWithServiceError(c, err, "Failed to remove exercise.")
		return
	}
	c.JSON(http.StatusOK, MapClientToResponse(client))
}
