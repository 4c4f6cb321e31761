package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alcyxob/trainer-backoffice/internal/domain"
	"alcyxob/trainer-backoffice/internal/service"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs for API (Data Transfer Objects) ---

// ExerciseResponse is the DTO for returning catalog entries.
type ExerciseResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	MuscleGroup  string `json:"muscleGroup"`
	Instructions string `json:"instructions,omitempty"`
}

// ExerciseImageResponse carries the resolved picture of an exercise.
type ExerciseImageResponse struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

// MapExerciseToResponse converts a domain.Exercise to ExerciseResponse DTO.
func MapExerciseToResponse(ex *domain.Exercise) ExerciseResponse {
	if ex == nil {
		return ExerciseResponse{}
	}
	return ExerciseResponse{
		ID:           ex.ID,
		Name:         ex.Name,
		MuscleGroup:  ex.MuscleGroup,
		Instructions: ex.Instructions,
	}
}

// MapExercisesToResponse converts a slice of domain.Exercise to a slice of ExerciseResponse DTO.
func MapExercisesToResponse(exercises []domain.Exercise) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i := range exercises {
		responses[i] = MapExerciseToResponse(&exercises[i])
	}
	return responses
}

// --- Handler Methods ---

// ListExercises godoc
// @Summary List the exercise catalog
// @Description Filters by a case-insensitive name search and by muscle group ("Todos" disables the filter).
// @Tags Exercises
// @Produce json
// @Param search query string false "Name substring"
// @Param muscle query string false "Muscle group"
// @Success 200 {array} ExerciseResponse "List of exercises"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /exercises [get]
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	exercises, err := h.exerciseService.ListExercises(c.Request.Context(), c.Query("search"), c.Query("muscle"))
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve exercises.")
		return
	}
	c.JSON(http.StatusOK, MapExercisesToResponse(exercises))
}

// GetMuscleGroups returns the distinct muscle groups in catalog order.
func (h *ExerciseHandler) GetMuscleGroups(c *gin.Context) {
	groups, err := h.exerciseService.MuscleGroups(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve muscle groups.")
		return
	}
	c.JSON(http.StatusOK, groups)
}

// GetExerciseByID godoc
// @Summary Get one catalog exercise
// @Tags Exercises
// @Produce json
// @Param id path int true "Exercise ID"
// @Success 200 {object} ExerciseResponse
// @Failure 400 {object} gin.H "Invalid exercise ID format"
// @Failure 404 {object} gin.H "Exercise not found"
// @Router /exercises/{id} [get]
func (h *ExerciseHandler) GetExerciseByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	ex, err := h.exerciseService.GetExerciseByID(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve exercise.")
		return
	}
	c.JSON(http.StatusOK, MapExerciseToResponse(ex))
}

// GetExerciseImage resolves the picture URL shown for an exercise.
func (h *ExerciseHandler) GetExerciseImage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	url, err := h.exerciseService.ImageURL(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err, "Failed to resolve exercise image.")
		return
	}
	c.JSON(http.StatusOK, ExerciseImageResponse{ID: id, URL: url})
}
