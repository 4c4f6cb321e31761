package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"alcyxob/trainer-backoffice/internal/billing"
	"alcyxob/trainer-backoffice/internal/service"
)

type BillingHandler struct {
	billingService   service.BillingService
	dashboardService service.DashboardService
}

func NewBillingHandler(billingService service.BillingService, dashboardService service.DashboardService) *BillingHandler {
	return &BillingHandler{billingService: billingService, dashboardService: dashboardService}
}

// BillingSummaryResponse is the financial overview.
type BillingSummaryResponse struct {
	MRR             float64               `json:"mrr"`
	MRRFormatted    string                `json:"mrrFormatted"` // "R$ 1.350,00"
	RevenueByPlan   []billing.PlanRevenue `json:"revenueByPlan"`
	PendingPayments int                   `json:"pendingPayments"`
	PendingClients  []ClientResponse      `json:"pendingClients"`
	OverdueClients  []ClientResponse      `json:"overdueClients"`
}

// Dashboard returns the headline counters.
func (h *BillingHandler) Dashboard(c *gin.Context) {
	stats, err := h.dashboardService.Stats(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err, "Failed to load dashboard.")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Summary godoc
// @Summary Financial overview
// @Description MRR of active clients, revenue by plan and the clients with pending or overdue payments.
// @Tags Billing
// @Produce json
// @Success 200 {object} BillingSummaryResponse
// @Router /billing/summary [get]
func (h *BillingHandler) Summary(c *gin.Context) {
	s, err := h.billingService.Summary(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err, "Failed to load billing summary.")
		return
	}
	c.JSON(http.StatusOK, BillingSummaryResponse{
		MRR:             s.MRR,
		MRRFormatted:    "R$ " + billing.FormatBRL(s.MRR),
		RevenueByPlan:   s.RevenueByPlan,
		PendingPayments: s.PendingPayments,
		PendingClients:  MapClientsToResponse(s.PendingClients),
		OverdueClients:  MapClientsToResponse(s.OverdueClients),
	})
}

// ProcessRecurring godoc
// @Summary Run the recurring charge simulation
// @Description Active online and hybrid clients with a card on file become current and their due date moves one month ahead.
// @Tags Billing
// @Produce json
// @Success 200 {object} service.RecurringResult
// @Router /billing/recurring [post]
func (h *BillingHandler) ProcessRecurring(c *gin.Context) {
	res, err := h.billingService.ProcessRecurringCharges(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err, "Failed to process recurring charges.")
		return
	}
	c.JSON(http.StatusOK, res)
}

// ConfirmPayment marks a client as paid; ?history=true also records the payment.
func (h *BillingHandler) ConfirmPayment(c *gin.Context) {
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	withHistory, err := strconv.ParseBool(c.DefaultQuery("history", "false"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid history flag.")
		return
	}

	client, err := h.billingService.ConfirmPayment(c.Request.Context(), clientID, withHistory)
	if err != nil {
		abortWithServiceError(c, err, "Failed to confirm payment.")
		return
	}
	c.JSON(http.StatusOK, MapClientToResponse(client))
}

func (h *BillingHandler) PaymentReminder(c *gin.Context) {
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	msg, err := h.billingService.PaymentReminder(c.Request.Context(), clientID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to compose reminder.")
		return
	}
	c.JSON(http.StatusOK, msg)
}
