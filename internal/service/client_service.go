package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"alcyxob/trainer-backoffice/internal/domain"
	"alcyxob/trainer-backoffice/internal/repository"
)

// --- Error Definitions ---
var (
	ErrClientNotFound = errors.New("client not found")
)

// Registration defaults for fields the trainer leaves blank.
const (
	DefaultMonthlyFee   = 150.0
	noTrainingYet       = "-"
	defaultPaymentDay   = 10
	defaultClientWeight = 70.0
)

// ClientInput carries the editable fields of a client. On update, zero or
// nil fields keep their current value.
type ClientInput struct {
	Name            string
	Goal            string
	Status          domain.ClientStatus
	PlanType        domain.PlanType
	MonthlyFee      *float64
	PaymentStatus   domain.PaymentStatus
	PaymentMethod   string
	PaymentDay      int
	NextPaymentDate string
	HeightCM        *float64
	Age             *int
	Gender          domain.Gender
	// Weight and BodyFat are the initial measurements on create and the
	// current ones on update.
	Weight  *float64
	BodyFat *float64
}

// ClientDefaults are the registration defaults that come from configuration.
type ClientDefaults struct {
	PaymentDay int
	Weight     float64 // carried into a new log when no measurement exists
}

type ClientService interface {
	CreateClient(ctx context.Context, in ClientInput) (*domain.Client, error)
	GetClientByID(ctx context.Context, id int64) (*domain.Client, error)
	// ListClients filters by a case-insensitive substring of name or goal.
	ListClients(ctx context.Context, search string) ([]domain.Client, error)
	UpdateClient(ctx context.Context, id int64, in ClientInput) (*domain.Client, error)
	DeleteClient(ctx context.Context, id int64) error
}

// clientService implements the ClientService interface.
type clientService struct {
	clientRepo repository.ClientRepository
	defaults   ClientDefaults
	now        Clock
	logger     *zap.Logger
}

// NewClientService creates a new instance of clientService.
func NewClientService(clientRepo repository.ClientRepository, defaults ClientDefaults, now Clock, logger *zap.Logger) ClientService {
	if defaults.PaymentDay < 1 || defaults.PaymentDay > 31 {
		defaults.PaymentDay = defaultPaymentDay
	}
	return &clientService{
		clientRepo: clientRepo,
		defaults:   defaults,
		now:        now,
		logger:     logger,
	}
}

func validateClientInput(in ClientInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidationFailed)
	}
	if in.Status != "" && !in.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidationFailed, in.Status)
	}
	if in.PlanType != "" && !in.PlanType.Valid() {
		return fmt.Errorf("%w: unknown plan type %q", ErrValidationFailed, in.PlanType)
	}
	if in.PaymentStatus != "" && !in.PaymentStatus.Valid() {
		return fmt.Errorf("%w: unknown payment status %q", ErrValidationFailed, in.PaymentStatus)
	}
	if in.Gender != "" && !in.Gender.Valid() {
		return fmt.Errorf("%w: unknown gender %q", ErrValidationFailed, in.Gender)
	}
	if in.MonthlyFee != nil && *in.MonthlyFee < 0 {
		return fmt.Errorf("%w: monthly fee must not be negative", ErrValidationFailed)
	}
	if in.PaymentDay < 0 || in.PaymentDay > 31 {
		return fmt.Errorf("%w: payment day must be within 1-31", ErrValidationFailed)
	}
	if in.NextPaymentDate != "" {
		if _, err := domain.ParseLongDate(in.NextPaymentDate, time.UTC); err != nil {
			return fmt.Errorf("%w: next payment date: %v", ErrValidationFailed, err)
		}
	}
	if in.Weight != nil && *in.Weight < 0 {
		return fmt.Errorf("%w: weight must not be negative", ErrValidationFailed)
	}
	return nil
}

// CreateClient registers a client, filling defaults for blank fields.
func (s *clientService) CreateClient(ctx context.Context, in ClientInput) (*domain.Client, error) {
	// 1. Validate Input
	if err := validateClientInput(in); err != nil {
		return nil, err
	}
	now := s.now()

	// 2. Build the record with defaults
	c := domain.Client{
		Name:              strings.TrimSpace(in.Name),
		Goal:              in.Goal,
		Status:            domain.ClientActive,
		LastTraining:      noTrainingYet,
		AssignedWorkouts:  []domain.Workout{},
		AssignedExercises: []domain.AssignedExercise{},
		ProgressLogs:      []domain.ProgressLog{},
		HeightCM:          in.HeightCM,
		Age:               in.Age,
		Gender:            in.Gender,
		PlanType:          domain.PlanOnline,
		MonthlyFee:        DefaultMonthlyFee,
		PaymentStatus:     domain.PaymentCurrent,
		PaymentMethod:     in.PaymentMethod,
		PaymentDay:        s.defaults.PaymentDay,
		PaymentHistory:    []domain.PaymentHistory{},
	}
	if in.Status != "" {
		c.Status = in.Status
	}
	if in.PlanType != "" {
		c.PlanType = in.PlanType
	}
	if in.MonthlyFee != nil {
		c.MonthlyFee = *in.MonthlyFee
	}
	if in.PaymentStatus != "" {
		c.PaymentStatus = in.PaymentStatus
	}
	if in.PaymentDay != 0 {
		c.PaymentDay = in.PaymentDay
	}
	c.NextPaymentDate = in.NextPaymentDate
	if c.NextPaymentDate == "" {
		c.NextPaymentDate = domain.LongDate(domain.NextDueDate(now, c.PaymentDay))
	}

	// 3. First progress log from the initial measurements
	if in.Weight != nil && *in.Weight > 0 {
		zero := 0.0
		c.ProgressLogs = append(c.ProgressLogs, domain.ProgressLog{
			Date:              domain.ShortDate(now),
			Weight:            *in.Weight,
			BodyFat:           in.BodyFat,
			WorkoutsCompleted: 0,
			VolumeLoad:        &zero,
		})
	}

	// 4. Save
	if _, err := s.clientRepo.Create(ctx, &c); err != nil {
		return nil, err
	}
	s.logger.Info("client created", zap.Int64("client_id", c.ID), zap.String("plan", string(c.PlanType)))
	return &c, nil
}

func (s *clientService) GetClientByID(ctx context.Context, id int64) (*domain.Client, error) {
	c, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *clientService) ListClients(ctx context.Context, search string) ([]domain.Client, error) {
	all, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return all, nil
	}
	out := []domain.Client{}
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.Name), search) || strings.Contains(strings.ToLower(c.Goal), search) {
			out = append(out, c)
		}
	}
	return out, nil
}

// UpdateClient overwrites the supplied fields. A supplied weight that differs
// from the latest log amends today's log or starts a new one.
func (s *clientService) UpdateClient(ctx context.Context, id int64, in ClientInput) (*domain.Client, error) {
	if err := validateClientInput(in); err != nil {
		return nil, err
	}
	today := domain.ShortDate(s.now())

	c, err := s.clientRepo.Update(ctx, id, func(c *domain.Client) error {
		c.Name = strings.TrimSpace(in.Name)
		c.Goal = in.Goal
		if in.Status != "" {
			c.Status = in.Status
		}
		if in.PlanType != "" {
			c.PlanType = in.PlanType
		}
		if in.MonthlyFee != nil {
			c.MonthlyFee = *in.MonthlyFee
		}
		if in.PaymentStatus != "" {
			c.PaymentStatus = in.PaymentStatus
		}
		if in.PaymentMethod != "" {
			c.PaymentMethod = in.PaymentMethod
		}
		if in.PaymentDay != 0 {
			c.PaymentDay = in.PaymentDay
		}
		if in.NextPaymentDate != "" {
			c.NextPaymentDate = in.NextPaymentDate
		}
		if in.HeightCM != nil {
			c.HeightCM = in.HeightCM
		}
		if in.Age != nil {
			c.Age = in.Age
		}
		if in.Gender != "" {
			c.Gender = in.Gender
		}
		if in.Weight != nil && *in.Weight > 0 {
			recordMeasurement(c, today, *in.Weight, in.BodyFat)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return c, nil
}

// recordMeasurement applies an edited weight and body fat to the log list.
// Nothing changes when both match the latest log.
func recordMeasurement(c *domain.Client, today string, weight float64, bodyFat *float64) {
	last, ok := c.LatestLog()
	if ok && last.Weight == weight && sameFloat(last.BodyFat, bodyFat) {
		return
	}
	if ok && last.Date == today {
		i := len(c.ProgressLogs) - 1
		c.ProgressLogs[i].Weight = weight
		c.ProgressLogs[i].BodyFat = bodyFat
		return
	}
	zero := 0.0
	c.ProgressLogs = append(c.ProgressLogs, domain.ProgressLog{
		Date:              today,
		Weight:            weight,
		BodyFat:           bodyFat,
		WorkoutsCompleted: 0,
		VolumeLoad:        &zero,
	})
}

func sameFloat(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (s *clientService) DeleteClient(ctx context.Context, id int64) error {
	if err := s.clientRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrClientNotFound
		}
		return err
	}
	s.logger.Info("client deleted", zap.Int64("client_id", id))
	return nil
}
