package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alcyxob/trainer-backoffice/internal/ai"
	"alcyxob/trainer-backoffice/internal/service"
)

type AdvisorHandler struct {
	advisorService service.AdvisorService
}

func NewAdvisorHandler(advisorService service.AdvisorService) *AdvisorHandler {
	return &AdvisorHandler{advisorService: advisorService}
}

// --- DTOs for the AI advisor ---

type SavePlanRequest struct {
	Goal string  `json:"goal"`
	Plan ai.Plan `json:"plan"`
}

type QuestionRequest struct {
	Question string `json:"question" binding:"required"`
}

type AnswerResponse struct {
	Answer string `json:"answer"`
}

// GeneratePlan godoc
// @Summary Draft a workout plan with the AI gateway
// @Tags AI
// @Accept json
// @Produce json
// @Param request body ai.PlanRequest true "Client profile"
// @Success 200 {object} ai.Plan
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 502 {object} gin.H "AI gateway failure"
// @Router /ai/plans [post]
func (h *AdvisorHandler) GeneratePlan(c *gin.Context) {
	var req ai.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	plan, err := h.advisorService.GeneratePlan(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err, service.PlanFailureMessage)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// SavePlan stores a reviewed draft at the front of the library.
func (h *AdvisorHandler) SavePlan(c *gin.Context) {
	var req SavePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	w, err := h.advisorService.SavePlan(c.Request.Context(), req.Goal, req.Plan)
	if err != nil {
		abortWithServiceError(c, err, "Failed to save plan.")
		return
	}
	c.JSON(http.StatusCreated, MapWorkoutToResponse(w))
}

func (h *AdvisorHandler) Ask(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	answer, err := h.advisorService.Ask(c.Request.Context(), req.Question)
	if err != nil {
		abortWithServiceError(c, err, service.AnswerOnFailure)
		return
	}
	c.JSON(http.StatusOK, AnswerResponse{Answer: answer})
}
