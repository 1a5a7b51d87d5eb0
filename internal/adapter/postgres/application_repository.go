package postgres

import (
	"context"
	"errors"
	"iter"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"collabhub/internal/core/domain"
)

// ApplicationRepository implements port.ApplicationRepository. The primary
// key (campaign_id, influencer_id) enforces one application per pair.
type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool}
}

const applicationColumns = `campaign_id, influencer_id, offer, message, decision, submitted_at, decided_at`

func scanApplication(row pgx.Row) (domain.Application, error) {
	var a domain.Application
	err := row.Scan(&a.CampaignID, &a.InfluencerID, &a.Offer, &a.Message, &a.Decision, &a.SubmittedAt, &a.DecidedAt)
	return a, err
}

func (r *ApplicationRepository) CreateApplication(ctx context.Context, a domain.Application) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
        INSERT INTO applications (`+applicationColumns+`)
        VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		a.CampaignID, a.InfluencerID, a.Offer, a.Message, string(a.Decision), a.SubmittedAt, a.DecidedAt)
	if isUniqueViolation(err) {
		return &domain.Error{Kind: domain.KindConflict, Message: "an application for this campaign already exists", Cause: err}
	}
	return mapErr("create application", err)
}

func (r *ApplicationRepository) GetApplication(ctx context.Context, campaignID, influencerID string) (*domain.Application, error) {
	a, err := scanApplication(conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE campaign_id = $1 AND influencer_id = $2`,
		campaignID, influencerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapErr("get application", err)
	}
	return &a, nil
}

// CompareAndSetDecision is a conditional UPDATE; concurrent callers queue
// on the row lock and all but one observe zero affected rows.
func (r *ApplicationRepository) CompareAndSetDecision(ctx context.Context, campaignID, influencerID string, expected, next domain.Decision, at time.Time) (bool, error) {
	tag, err := conn(ctx, r.pool).Exec(ctx, `
        UPDATE applications SET decision = $4, decided_at = $5
        WHERE campaign_id = $1 AND influencer_id = $2 AND decision = $3`,
		campaignID, influencerID, string(expected), string(next), at)
	if err != nil {
		return false, mapErr("set decision", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListByInfluencer streams rows as they are read. Each range issues a new
// query.
func (r *ApplicationRepository) ListByInfluencer(ctx context.Context, influencerID string, onlyAccepted bool) iter.Seq2[domain.Application, error] {
	return func(yield func(domain.Application, error) bool) {
		rows, err := conn(ctx, r.pool).Query(ctx, `
            SELECT `+applicationColumns+` FROM applications
            WHERE influencer_id = $1 AND (NOT $2::boolean OR decision = 'accepted')
            ORDER BY submitted_at DESC, campaign_id`,
			influencerID, onlyAccepted)
		if err != nil {
			yield(domain.Application{}, mapErr("list applications", err))
			return
		}
		defer rows.Close()
		for rows.Next() {
			a, err := scanApplication(rows)
			if err != nil {
				yield(domain.Application{}, mapErr("list applications", err))
				return
			}
			if !yield(a, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(domain.Application{}, mapErr("list applications", err))
		}
	}
}

func (r *ApplicationRepository) ListByCampaign(ctx context.Context, campaignID string, decision domain.Decision) ([]domain.Application, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `
        SELECT `+applicationColumns+` FROM applications
        WHERE campaign_id = $1 AND ($2::text = '' OR decision = $2)
        ORDER BY submitted_at DESC, influencer_id`,
		campaignID, string(decision))
	if err != nil {
		return nil, mapErr("list campaign applications", err)
	}
	apps, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Application, error) {
		return scanApplication(row)
	})
	if err != nil {
		return nil, mapErr("list campaign applications", err)
	}
	return apps, nil
}
