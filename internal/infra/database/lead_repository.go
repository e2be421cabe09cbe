package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/greatowlmarketing/site/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// getOrCreateQuery inserts only when no row holds the email, then reads
// back whichever row won. The CTE keeps insert and read in one statement
// so two simultaneous submissions of the same email race inside Postgres
// on the unique index, not in application code.
const getOrCreateQuery = `
	WITH new_lead AS (
		INSERT INTO leads (id, email, name, consent, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (email) DO NOTHING
		RETURNING id, email, name, consent, created_at
	)
	SELECT id, email, name, consent, created_at, TRUE AS was_created FROM new_lead
	UNION ALL
	SELECT id, email, name, consent, created_at, FALSE FROM leads WHERE email = $2
	LIMIT 1
`

func (r *LeadRepository) GetOrCreate(ctx context.Context, email, name string, consent bool) (*entity.Lead, bool, error) {
	lead, wasCreated, err := r.getOrCreateOnce(ctx, email, name, consent)
	if errors.Is(err, sql.ErrNoRows) {
		// A concurrent insert committed after our statement snapshot was
		// taken: neither branch of the CTE saw a row. The loser retries and
		// finds the committed record.
		lead, wasCreated, err = r.getOrCreateOnce(ctx, email, name, consent)
	}
	if err != nil {
		return nil, false, fmt.Errorf("lead store unavailable: %w", err)
	}
	return lead, wasCreated, nil
}

func (r *LeadRepository) getOrCreateOnce(ctx context.Context, email, name string, consent bool) (*entity.Lead, bool, error) {
	lead := &entity.Lead{}
	var storedName sql.NullString
	var wasCreated bool

	err := r.DB.QueryRowContext(
		ctx,
		getOrCreateQuery,
		uuid.New().String(),
		email,
		nullString(name),
		consent,
	).Scan(
		&lead.ID,
		&lead.Email,
		&storedName,
		&lead.Consent,
		&lead.CreatedAt,
		&wasCreated,
	)
	if err != nil {
		return nil, false, err
	}

	lead.Name = storedName.String
	return lead, wasCreated, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
