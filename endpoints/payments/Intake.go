package payments

import (
	"context"

	"github.com/nutanixdev/payments-api/models"
)

// StoreContract is the slice of the store the intake service needs.
type StoreContract interface {
	Create(ctx context.Context, candidate *PaymentCreate) (*models.Payment, error)
}

// Service orchestrates intake: schema validation, then a single store
// attempt. No retries, no compensation.
type Service struct {
	store StoreContract
}

func NewService(store StoreContract) *Service {
	return &Service{store: store}
}

// Intake validates the candidate and persists it. On validation
// failure the returned error is a *ValidationError and nothing is
// written; store errors pass through unmodified.
func (s *Service) Intake(ctx context.Context, candidate *PaymentCreate) (*models.Payment, error) {
	if verr := candidate.Validate(); verr != nil {
		return nil, verr
	}
	return s.store.Create(ctx, candidate)
}
