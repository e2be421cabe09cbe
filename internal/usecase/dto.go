package usecase

import (
	"context"

	"github.com/greatowlmarketing/site/internal/entity"
	"github.com/greatowlmarketing/site/internal/infra/integration/getresponse"
)

type CaptureLeadInput struct {
	Name    string
	Email   string
	Consent bool
}

type CaptureLeadOutput struct {
	Lead       *entity.Lead
	WasCreated bool
	Subscribed bool
	Outcome    getresponse.Outcome
}

type Subscriber interface {
	Subscribe(ctx context.Context, name, email string) getresponse.Outcome
}
