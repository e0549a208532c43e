package action

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/cloud-portal/pkg/models/domain"
	"github.com/de-tools/cloud-portal/pkg/services/simulation"
	"github.com/de-tools/cloud-portal/pkg/services/workflow"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultProvider receives submissions made while every provider is selected.
const DefaultProvider = "aws"

// DefaultDelay mimics the round trip of submitting to a provisioning backend.
const DefaultDelay = 800 * time.Millisecond

var (
	ErrRequestNotFound   = errors.New("request not found")
	ErrNotPending        = errors.New("request is not pending")
	ErrInvalidSubmission = errors.New("invalid submission")
	ErrInvalidDecision   = errors.New("invalid decision")
)

type Decision string

const (
	Approve Decision = "approve"
	Reject  Decision = "reject"
)

func (d Decision) Valid() bool {
	return d == Approve || d == Reject
}

// Submission is a new resource request as entered in the request form.
type Submission struct {
	Title         string  `validate:"required,max=200"`
	Description   string  `validate:"max=2000"`
	Provider      string  `validate:"max=64"`
	ResourceType  string  `validate:"omitempty,oneof=ec2 s3 rds lambda storage compute"`
	AccessLevel   string  `validate:"omitempty,oneof=read write admin"`
	Manager       string  `validate:"max=64"`
	Justification string  `validate:"max=2000"`
	EstimatedCost float64 `validate:"gte=0"`

	// GlobalProvider is the header selection, used when Provider is empty.
	GlobalProvider string
	Requester      string
}

type DecisionRequest struct {
	RequestID string
	Decision  Decision
	Approver  string
}

type Result struct {
	ID                   string
	RequestID            string
	Status               domain.RequestStatus
	Provider             string
	AutoApprovalEligible bool
	Message              string
	CompletedAt          time.Time
}

// Service performs request actions. Implementations report success once the
// action has been accepted.
type Service interface {
	Submit(ctx context.Context, s Submission) (Result, error)
	Decide(ctx context.Context, d DecisionRequest) (Result, error)
}

// Source is the read-only data a demo service works against.
type Source interface {
	Provider(id string) (domain.CloudProvider, bool)
	Request(id string) (domain.Request, bool)
	Workflow() domain.ApprovalWorkflow
}

type Options struct {
	Delay time.Duration
	Now   func() time.Time
	NewID func() string
}

var validate = validator.New()

type demoService struct {
	src  Source
	opts Options
}

// NewDemoService returns a Service that waits opts.Delay and then reports
// success without changing any data.
func NewDemoService(src Source, opts Options) Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	return &demoService{src: src, opts: opts}
}

func (s *demoService) Submit(ctx context.Context, sub Submission) (Result, error) {
	logger := zerolog.Ctx(ctx)

	if err := validate.Struct(sub); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidSubmission, err)
	}

	provider := sub.Provider
	if provider == "" {
		provider = sub.GlobalProvider
	}
	if provider == "" || provider == domain.AllProviders {
		provider = DefaultProvider
	}
	if _, ok := s.src.Provider(provider); !ok {
		return Result{}, fmt.Errorf("%w: unknown provider %q", ErrInvalidSubmission, provider)
	}

	if err := simulation.Wait(ctx, s.opts.Delay); err != nil {
		return Result{}, err
	}

	res := Result{
		ID:                   s.opts.NewID(),
		Status:               domain.RequestPending,
		Provider:             provider,
		AutoApprovalEligible: workflow.AutoApprovable(s.src.Workflow(), sub.EstimatedCost),
		Message:              fmt.Sprintf("Request %q submitted for approval", sub.Title),
		CompletedAt:          s.opts.Now().UTC(),
	}

	logger.Info().
		Str("submission_id", res.ID).
		Str("provider", provider).
		Str("requester", sub.Requester).
		Float64("estimated_cost", sub.EstimatedCost).
		Bool("auto_approval_eligible", res.AutoApprovalEligible).
		Msg("request submitted")
	return res, nil
}

func (s *demoService) Decide(ctx context.Context, d DecisionRequest) (Result, error) {
	logger := zerolog.Ctx(ctx)

	if !d.Decision.Valid() {
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidDecision, d.Decision)
	}
	req, ok := s.src.Request(d.RequestID)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrRequestNotFound, d.RequestID)
	}
	if req.Status != domain.RequestPending {
		return Result{}, fmt.Errorf("%w: %s is %s", ErrNotPending, req.ID, req.Status)
	}

	if err := simulation.Wait(ctx, s.opts.Delay); err != nil {
		return Result{}, err
	}

	status := domain.RequestApproved
	if d.Decision == Reject {
		status = domain.RequestRejected
	}
	res := Result{
		ID:          s.opts.NewID(),
		RequestID:   req.ID,
		Status:      status,
		Provider:    req.Provider,
		Message:     fmt.Sprintf("Request %s %s", req.ID, status),
		CompletedAt: s.opts.Now().UTC(),
	}

	logger.Info().
		Str("request_id", req.ID).
		Str("decision", string(d.Decision)).
		Str("approver", d.Approver).
		Msg("request decided")
	return res, nil
}
