package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/greatowlmarketing/site/internal/entity"
	"github.com/greatowlmarketing/site/internal/infra/http/middleware"
)

// CaptureLeadUseCase persists a validated lead and then attempts the
// best-effort mailing-list subscription. Persistence failures propagate;
// subscription failures never do.
type CaptureLeadUseCase struct {
	Repo       entity.LeadRepositoryInterface
	Subscriber Subscriber
	Logger     *zap.Logger
}

func NewCaptureLeadUseCase(repo entity.LeadRepositoryInterface, subscriber Subscriber, logger *zap.Logger) *CaptureLeadUseCase {
	return &CaptureLeadUseCase{
		Repo:       repo,
		Subscriber: subscriber,
		Logger:     logger,
	}
}

// Execute expects already-validated input. The subscription is attempted
// even when the lead already existed, so a visitor who never received the
// guide can retry by resubmitting the form.
func (uc *CaptureLeadUseCase) Execute(ctx context.Context, input CaptureLeadInput) (*CaptureLeadOutput, error) {
	lead, wasCreated, err := uc.Repo.GetOrCreate(ctx, input.Email, input.Name, input.Consent)
	if err != nil {
		uc.Logger.Error("lead persistence failed", zap.Error(err))
		return nil, err
	}

	if wasCreated {
		middleware.RecordLeadCaptured()
	}

	outcome := uc.Subscriber.Subscribe(ctx, input.Name, input.Email)
	middleware.RecordSubscriptionOutcome(outcome.Status.String())

	uc.Logger.Info("lead captured",
		zap.String("lead_id", lead.ID),
		zap.Bool("created", wasCreated),
		zap.String("subscription", outcome.Status.String()),
	)

	return &CaptureLeadOutput{
		Lead:       lead,
		WasCreated: wasCreated,
		Subscribed: outcome.Subscribed(),
		Outcome:    outcome,
	}, nil
}
