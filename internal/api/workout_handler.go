package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alcyxob/trainer-backoffice/internal/domain"
	"alcyxob/trainer-backoffice/internal/service"
)

type WorkoutHandler struct {
	workoutService service.WorkoutService
}

func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs for Workout Library ---

// ExerciseSetRequest is one prescribed line of a workout.
type ExerciseSetRequest struct {
	Name string          `json:"name" binding:"required"`
	Sets domain.SetCount `json:"sets" binding:"required"` // number or token such as "Máx"
	Reps string          `json:"reps" binding:"required"`
	Load string          `json:"load"`
	Obs  string          `json:"obs"`
}

type CreateWorkoutRequest struct {
	Title     string               `json:"title" binding:"required"`
	Exercises []ExerciseSetRequest `json:"exercises" binding:"required,min=1,dive"`
}

type CloneWorkoutRequest struct {
	Title          string `json:"title"`
	ResetLoads     bool   `json:"resetLoads"`
	AddToLibrary   bool   `json:"addToLibrary"`
	TargetClientID int64  `json:"targetClientId" binding:"omitempty,min=1"`
}

type ReorderExercisesRequest struct {
	From *int `json:"from" binding:"required"`
	To   *int `json:"to" binding:"required"`
}

type WorkoutResponse struct {
	ID          int64                `json:"id"`
	Title       string               `json:"title"`
	Exercises   []domain.ExerciseSet `json:"exercises"`
	AIGenerated bool                 `json:"aiGenerated"`
}

type CloneWorkoutResponse struct {
	LibraryWorkout *WorkoutResponse `json:"libraryWorkout,omitempty"`
	ClientWorkout  *WorkoutResponse `json:"clientWorkout,omitempty"`
	ClientID       int64            `json:"clientId,omitempty"`
}

func MapWorkoutToResponse(w *domain.Workout) WorkoutResponse {
	if w == nil {
		return WorkoutResponse{}
	}
	exercises := w.Exercises
	if exercises == nil {
		exercises = []domain.ExerciseSet{}
	}
	return WorkoutResponse{
		ID:          w.ID,
		Title:       w.Title,
		Exercises:   exercises,
		AIGenerated: w.AIGenerated,
	}
}

func MapWorkoutsToResponse(workouts []domain.Workout) []WorkoutResponse {
	responses := make([]WorkoutResponse, len(workouts))
	for i := range workouts {
		responses[i] = MapWorkoutToResponse(&workouts[i])
	}
	return responses
}

func mapExerciseSets(reqs []ExerciseSetRequest) []domain.ExerciseSet {
	sets := make([]domain.ExerciseSet, len(reqs))
	for i, r := range reqs {
		sets[i] = domain.ExerciseSet{Name: r.Name, Sets: r.Sets, Reps: r.Reps, Load: r.Load, Obs: r.Obs}
	}
	return sets
}

// --- Handler Methods for Workout Library ---

// ListWorkouts godoc
// @Summary List the workout library
// @Tags Workouts
// @Produce json
// @Success 200 {array} WorkoutResponse "Library in listing order"
// @Router /workouts [get]
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	workouts, err := h.workoutService.ListWorkouts(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve workouts.")
		return
	}
	c.JSON(http.StatusOK, MapWorkoutsToResponse(workouts))
}

// CreateWorkout godoc
// @Summary Create a library workout
// @Tags Workouts
// @Accept json
// @Produce json
// @Param workout body CreateWorkoutRequest true "Workout details"
// @Success 201 {object} WorkoutResponse "Workout created successfully"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /workouts [post]
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	w, err := h.workoutService.CreateWorkout(c.Request.Context(), req.Title, mapExerciseSets(req.Exercises))
	if err != nil {
		abortWithServiceError(c, err, "Failed to create workout.")
		return
	}
	c.JSON(http.StatusCreated, MapWorkoutToResponse(w))
}

func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	w, err := h.workoutService.GetWorkoutByID(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve workout.")
		return
	}
	c.JSON(http.StatusOK, MapWorkoutToResponse(w))
}

// DeleteWorkout removes a library workout. Client copies are untouched.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.workoutService.DeleteWorkout(c.Request.Context(), id); err != nil {
		abortWithServiceError(c, err, "Failed to delete workout.")
		return
	}
	c.Status(http.StatusNoContent)
}

// CloneWorkout godoc
// @Summary Clone a library workout
// @Description Copies a workout into the library, onto a client, or both. Loads can be reset on the copy.
// @Tags Workouts
// @Accept json
// @Produce json
// @Param id path int true "Source workout ID"
// @Param clone body CloneWorkoutRequest true "Clone options"
// @Success 201 {object} CloneWorkoutResponse
// @Failure 400 {object} gin.H "No destination chosen"
// @Failure 404 {object} gin.H "Workout or client not found"
// @Router /workouts/{id}/clone [post]
func (h *WorkoutHandler) CloneWorkout(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req CloneWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	res, err := h.workoutService.CloneWorkout(c.Request.Context(), id, service.CloneOptions{
		Title:          req.Title,
		ResetLoads:     req.ResetLoads,
		AddToLibrary:   req.AddToLibrary,
		TargetClientID: req.TargetClientID,
	})
	if err != nil {
		abortWithServiceError(c, err, "Failed to clone workout.")
		return
	}

	resp := CloneWorkoutResponse{ClientID: res.ClientID}
	if res.LibraryWorkout != nil {
		lw := MapWorkoutToResponse(res.LibraryWorkout)
		resp.LibraryWorkout = &lw
	}
	if res.ClientWorkout != nil {
		cw := MapWorkoutToResponse(res.ClientWorkout)
		resp.ClientWorkout = &cw
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *WorkoutHandler) ReorderExercises(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req ReorderExercisesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	w, err := h.workoutService.ReorderExercises(c.Request.Context(), id, *req.From, *req.To)
	if err != nil {
		abortWithServiceError(c, err, "Failed to reorder exercises.")
		return
	}
	c.JSON(http.StatusOK, MapWorkoutToResponse(w))
}
