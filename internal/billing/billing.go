// Package billing computes revenue aggregates and simulates the monthly
// billing cycle over client records. Nothing here performs I/O.
package billing

import (
	"strings"
	"time"

	"alcyxob/trainer-backoffice/internal/domain"
)

// ManualMethod tags payment history entries confirmed by the trainer in the app.
const ManualMethod = "Manual (Via App)"

// DefaultCardBrands are the payment method markers that identify a card on file.
var DefaultCardBrands = []string{"Mastercard", "Visa", "Elo", "Amex"}

// PlanRevenue is the monthly revenue contributed by one plan type.
type PlanRevenue struct {
	Plan  domain.PlanType `json:"plan"`
	Label string          `json:"label"`
	Total float64         `json:"total"`
}

// ComputeMRR sums the monthly fee of every active client.
func ComputeMRR(clients []domain.Client) float64 {
	var total float64
	for _, c := range clients {
		if c.Status == domain.ClientActive {
			total += c.MonthlyFee
		}
	}
	return total
}

// RevenueByPlan groups active revenue by plan type in display order. Plans
// with a zero total are left out.
func RevenueByPlan(clients []domain.Client) []PlanRevenue {
	totals := make(map[domain.PlanType]float64, len(domain.PlanTypes))
	for _, c := range clients {
		if c.Status == domain.ClientActive {
			totals[c.PlanType] += c.MonthlyFee
		}
	}

	out := make([]PlanRevenue, 0, len(totals))
	for _, p := range domain.PlanTypes {
		if t := totals[p]; t > 0 {
			out = append(out, PlanRevenue{Plan: p, Label: p.Label(), Total: t})
		}
	}
	return out
}

// CountPendingPayments counts clients that are pending or overdue.
func CountPendingPayments(clients []domain.Client) int {
	n := 0
	for _, c := range clients {
		if c.PaymentStatus == domain.PaymentPending || c.PaymentStatus == domain.PaymentOverdue {
			n++
		}
	}
	return n
}

// FilterByPaymentStatus returns the clients whose payment status is s, in input order.
func FilterByPaymentStatus(clients []domain.Client, s domain.PaymentStatus) []domain.Client {
	out := []domain.Client{}
	for _, c := range clients {
		if c.PaymentStatus == s {
			out = append(out, c)
		}
	}
	return out
}

// ConfirmPayment marks the client as paid. Dates and history are untouched.
func ConfirmPayment(c *domain.Client) {
	c.PaymentStatus = domain.PaymentCurrent
}

// ConfirmPaymentWithHistory marks the client as paid and records the payment
// dated now for the client's current monthly fee.
func ConfirmPaymentWithHistory(c *domain.Client, id string, now time.Time) domain.PaymentHistory {
	c.PaymentStatus = domain.PaymentCurrent
	entry := domain.PaymentHistory{
		ID:     id,
		Date:   domain.LongDate(now),
		Amount: c.MonthlyFee,
		Status: domain.PaymentCurrent,
		Method: ManualMethod,
	}
	c.PaymentHistory = append(c.PaymentHistory, entry)
	return entry
}

// Engine runs the recurring charge simulation.
type Engine struct {
	brands []string
	loc    *time.Location
}

// NewEngine builds an engine recognising the given card brand markers. Due
// dates are interpreted in loc.
func NewEngine(brands []string, loc *time.Location) *Engine {
	if len(brands) == 0 {
		brands = DefaultCardBrands
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Engine{brands: append([]string(nil), brands...), loc: loc}
}

// HasCard reports whether the payment method names a recognised card brand.
func (e *Engine) HasCard(method string) bool {
	for _, b := range e.brands {
		if strings.Contains(method, b) {
			return true
		}
	}
	return false
}

// Eligible reports whether the client is charged automatically: active, on an
// online or hybrid plan, with a card on file.
func (e *Engine) Eligible(c *domain.Client) bool {
	if c.Status != domain.ClientActive {
		return false
	}
	if c.PlanType != domain.PlanOnline && c.PlanType != domain.PlanHybrid {
		return false
	}
	return e.HasCard(c.PaymentMethod)
}

// Charge applies one recurring charge to an eligible client: the status
// becomes current and the due date moves one month ahead. An unparseable due
// date is kept as is. Ineligible clients are not touched. Charge reports
// whether the client was charged.
func (e *Engine) Charge(c *domain.Client) bool {
	if !e.Eligible(c) {
		return false
	}
	c.PaymentStatus = domain.PaymentCurrent
	if due, err := domain.ParseLongDate(c.NextPaymentDate, e.loc); err == nil {
		c.NextPaymentDate = domain.LongDate(domain.AddMonth(due))
	}
	return true
}
