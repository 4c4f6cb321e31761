// internal/api/client_handler.go
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alcyxob/trainer-backoffice/internal/domain"
	"alcyxob/trainer-backoffice/internal/service"
)

type ClientHandler struct {
	clientService service.ClientService
}

func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// --- DTOs ---

// ClientRequest is the body of both create and update. On update, omitted
// fields keep their current value.
type ClientRequest struct {
	Name            string               `json:"name" binding:"required"`
	Goal            string               `json:"goal"`
	Status          domain.ClientStatus  `json:"status"`
	PlanType        domain.PlanType      `json:"planType"`
	MonthlyFee      *float64             `json:"monthlyFee" binding:"omitempty,gte=0"`
	PaymentStatus   domain.PaymentStatus `json:"paymentStatus"`
	PaymentMethod   string               `json:"paymentMethod"`
	PaymentDay      int                  `json:"paymentDay" binding:"omitempty,min=1,max=31"`
	NextPaymentDate string               `json:"nextPaymentDate"` // DD/MM/YYYY
	Height          *float64             `json:"height" binding:"omitempty,gt=0"`
	Age             *int                 `json:"age" binding:"omitempty,gt=0"`
	Gender          domain.Gender        `json:"gender"`
	Weight          *float64             `json:"weight" binding:"omitempty,gte=0"`
	BodyFat         *float64             `json:"bodyFat" binding:"omitempty,gte=0,lte=100"`
}

func (r ClientRequest) toInput() service.ClientInput {
	return service.ClientInput{
		Name:            r.Name,
		Goal:            r.Goal,
		Status:          r.Status,
		PlanType:        r.PlanType,
		MonthlyFee:      r.MonthlyFee,
		PaymentStatus:   r.PaymentStatus,
		PaymentMethod:   r.PaymentMethod,
		PaymentDay:      r.PaymentDay,
		NextPaymentDate: r.NextPaymentDate,
		HeightCM:        r.Height,
		Age:             r.Age,
		Gender:          r.Gender,
		Weight:          r.Weight,
		BodyFat:         r.BodyFat,
	}
}

// ClientResponse is the full client record plus the current body metrics
// taken from the latest progress log.
type ClientResponse struct {
	domain.Client
	CurrentWeight  *float64 `json:"currentWeight,omitempty"`
	CurrentBodyFat *float64 `json:"currentBodyFat,omitempty"`
}

func MapClientToResponse(c *domain.Client) ClientResponse {
	if c == nil {
		return ClientResponse{}
	}
	resp := ClientResponse{Client: *c}
	if last, ok := c.LatestLog(); ok {
		weight := last.Weight
		resp.CurrentWeight = &weight
		resp.CurrentBodyFat = last.BodyFat
	}
	return resp
}

func MapClientsToResponse(clients []domain.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = MapClientToResponse(&clients[i])
	}
	return responses
}

// --- Handler Methods ---

// ListClients godoc
// @Summary List clients
// @Description Optional case-insensitive search over name and goal.
// @Tags Clients
// @Produce json
// @Param search query string false "Name or goal substring"
// @Success 200 {array} ClientResponse
// @Router /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.clientService.ListClients(c.Request.Context(), c.Query("search"))
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve clients.")
		return
	}
	c.JSON(http.StatusOK, MapClientsToResponse(clients))
}

// CreateClient godoc
// @Summary Register a client
// @Tags Clients
// @Accept json
// @Produce json
// @Param client body ClientRequest true "Client details"
// @Success 201 {object} ClientResponse "Client created successfully"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), req.toInput())
	if err != nil {
		abortWithServiceError(c, err, "Failed to create client.")
		return
	}
	c.JSON(http.StatusCreated, MapClientToResponse(client))
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	client, err := h.clientService.GetClientByID(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve client.")
		return
	}
	c.JSON(http.StatusOK, MapClientToResponse(client))
}

// UpdateClient godoc
// @Summary Edit a client
// @Description A changed weight or body fat amends today's progress log or appends a new one.
// @Tags Clients
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Param client body ClientRequest true "Client details"
// @Success 200 {object} ClientResponse
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 404 {object} gin.H "Client not found"
// @Router /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), id, req.toInput())
	if err != nil {
		abortWithServiceError(c, err, "Failed to update client.")
		return
	}
	c.JSON(http.StatusOK, MapClientToResponse(client))
}

func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.clientService.DeleteClient(c.Request.Context(), id); err != nil {
		abortWithServiceError(c, err, "Failed to delete client.")
		return
	}
	c.Status(http.StatusNoContent)
}
