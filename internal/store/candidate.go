package store

import (
	"context"
	"fmt"
	"time"

	"fornecedores/internal/utils"
	"fornecedores/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const candidateTableName = "fornecedores.candidates"

var candidateColumns = utils.StructTagValues(types.Candidate{})

type CandidateRepository struct {
	pool *pgxpool.Pool
}

func NewCandidateRepository(pool *pgxpool.Pool) *CandidateRepository {
	return &CandidateRepository{pool: pool}
}

func (r *CandidateRepository) Candidates(ctx context.Context) ([]*types.Candidate, error) {
	query, args, err := psql().Select(candidateColumns...).
		From(candidateTableName).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate candidate list query: %w", err)
	}

	candidates := make([]*types.Candidate, 0)
	err = pgxscan.Select(ctx, r.pool, &candidates, query, args...)
	if err != nil {
		return nil, err
	}

	return candidates, nil
}

func (r *CandidateRepository) Candidate(ctx context.Context, candidateID string) (*types.Candidate, error) {
	query, args, err := psql().Select(candidateColumns...).
		From(candidateTableName).
		Where(sq.Eq{"id": candidateID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate candidate query: %w", err)
	}

	var candidate = new(types.Candidate)
	err = pgxscan.Get(ctx, r.pool, candidate, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrCandidateNotFound
		}
		return nil, err
	}

	return candidate, nil
}

// CreateCandidate records a public submission. Status always starts
// Pendente regardless of the submitted payload.
func (r *CandidateRepository) CreateCandidate(ctx context.Context, candidate *types.Candidate) error {
	now := time.Now()
	candidate.ID = utils.NanoID()
	candidate.CreatedAt = now
	candidate.SubmittedAt = utils.TimePtr(now)
	candidate.Status = types.CandidateStatusPendente

	query, args, err := psql().Insert(candidateTableName).
		SetMap(utils.StructToMap(candidate)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert candidate query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create candidate")
}

// UpdateStatus records an administrative review decision.
func (r *CandidateRepository) UpdateStatus(ctx context.Context, candidateID string, status types.CandidateStatus, reviewedBy string) error {
	query, args, err := psql().Update(candidateTableName).
		Set("status", status).
		Set("reviewed_at", time.Now()).
		Set("reviewed_by", nullable(reviewedBy)).
		Where(sq.Eq{"id": candidateID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate candidate status query for %s: %w", candidateID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to update candidate status")
}
