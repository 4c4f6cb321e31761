package service

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alcyxob/trainer-backoffice/internal/billing"
	"alcyxob/trainer-backoffice/internal/domain"
	"alcyxob/trainer-backoffice/internal/messaging"
	"alcyxob/trainer-backoffice/internal/metrics"
	"alcyxob/trainer-backoffice/internal/repository"
)

// BillingSummary is the financial overview of the roster.
type BillingSummary struct {
	MRR             float64               `json:"mrr"`
	RevenueByPlan   []billing.PlanRevenue `json:"revenueByPlan"`
	PendingPayments int                   `json:"pendingPayments"` // pending + overdue
	PendingClients  []domain.Client       `json:"pendingClients"`
	OverdueClients  []domain.Client       `json:"overdueClients"`
}

// RecurringResult reports a recurring charge run.
type RecurringResult struct {
	ChargedClientIDs []int64 `json:"chargedClientIds"`
}

type BillingService interface {
	Summary(ctx context.Context) (*BillingSummary, error)
	// ProcessRecurringCharges charges every eligible client in one step.
	ProcessRecurringCharges(ctx context.Context) (*RecurringResult, error)
	// ConfirmPayment marks a client as paid, recording a history entry when withHistory is set.
	ConfirmPayment(ctx context.Context, clientID int64, withHistory bool) (*domain.Client, error)
	// PaymentReminder composes the reminder for a client. The client is not modified.
	PaymentReminder(ctx context.Context, clientID int64) (*messaging.Message, error)
}

// billingService implements the BillingService interface.
type billingService struct {
	clientRepo repository.ClientRepository
	engine     *billing.Engine
	now        Clock
	metrics    *metrics.Manager
	logger     *zap.Logger
}

func NewBillingService(
	clientRepo repository.ClientRepository,
	engine *billing.Engine,
	now Clock,
	metricsManager *metrics.Manager,
	logger *zap.Logger,
) BillingService {
	return &billingService{
		clientRepo: clientRepo,
		engine:     engine,
		now:        now,
		metrics:    metricsManager,
		logger:     logger,
	}
}

func (s *billingService) Summary(ctx context.Context) (*BillingSummary, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &BillingSummary{
		MRR:             billing.ComputeMRR(clients),
		RevenueByPlan:   billing.RevenueByPlan(clients),
		PendingPayments: billing.CountPendingPayments(clients),
		PendingClients:  billing.FilterByPaymentStatus(clients, domain.PaymentPending),
		OverdueClients:  billing.FilterByPaymentStatus(clients, domain.PaymentOverdue),
	}, nil
}

func (s *billingService) ProcessRecurringCharges(ctx context.Context) (*RecurringResult, error) {
	result := &RecurringResult{ChargedClientIDs: []int64{}}
	_, err := s.clientRepo.UpdateAll(ctx, func(c *domain.Client) error {
		if s.engine.Charge(c) {
			result.ChargedClientIDs = append(result.ChargedClientIDs, c.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.CounterRecurringCharged.Add(float64(len(result.ChargedClientIDs)))
	s.logger.Info("recurring charges processed", zap.Int64s("charged", result.ChargedClientIDs))
	return result, nil
}

func (s *billingService) ConfirmPayment(ctx context.Context, clientID int64, withHistory bool) (*domain.Client, error) {
	now := s.now()
	c, err := s.clientRepo.Update(ctx, clientID, func(c *domain.Client) error {
		if withHistory {
			billing.ConfirmPaymentWithHistory(c, uuid.NewString(), now)
		} else {
			billing.ConfirmPayment(c)
		}
		return nil
	})
	if err != nil {
		return nil, clientNotFound(err)
	}

	s.metrics.CounterPaymentsConfirmed.WithLabelValues(strconv.FormatBool(withHistory)).Inc()
	s.logger.Info("payment confirmed", zap.Int64("client_id", clientID), zap.Bool("history", withHistory))
	return c, nil
}

func (s *billingService) PaymentReminder(ctx context.Context, clientID int64) (*messaging.Message, error) {
	c, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, clientNotFound(err)
	}
	msg := messaging.NewMessage(billing.ReminderMessage(c))
	return &msg, nil
}
