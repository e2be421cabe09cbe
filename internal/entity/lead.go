package entity

import (
	"context"
	"time"
)

// Lead is a captured contact record. Email is the identity key: at most
// one Lead exists per address and the first submission wins.
type Lead struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Consent   bool      `json:"consent"`
	CreatedAt time.Time `json:"created_at"`
}

type LeadRepositoryInterface interface {

	// GetOrCreate returns the Lead for email, creating it if absent.
	// The bool reports whether a new record was created. The insert must
	// be atomic: concurrent calls with the same email never produce
	// duplicate rows. Any error means the store is unavailable.
	GetOrCreate(ctx context.Context, email, name string, consent bool) (*Lead, bool, error)
}
