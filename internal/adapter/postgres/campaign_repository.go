package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"collabhub/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Membership lives in campaign_members keyed by the pair.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `
        c.id,
        c.brand_id,
        c.title,
        c.start_date,
        c.end_date,
        c.budget,
        c.target_audience,
        c.geographic_focus,
        c.influencer_type,
        c.primary_goals,
        c.collaboration,
        c.tracking,
        c.status,
        c.is_deleted,
        c.created_at,
        c.updated_at,
        ARRAY(SELECT m.influencer_id FROM campaign_members m WHERE m.campaign_id = c.id ORDER BY m.influencer_id)`

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.BrandID,
		&c.Title,
		&c.StartDate,
		&c.EndDate,
		&c.Budget,
		&c.TargetAudience,
		&c.GeographicFocus,
		&c.InfluencerType,
		&c.PrimaryGoals,
		&c.Collaboration,
		&c.Tracking,
		&c.Status,
		&c.IsDeleted,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.MemberInfluencerIDs,
	)
	return c, err
}

// CreateCampaign inserts the campaign row. Members are never supplied at
// creation.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c domain.Campaign) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
        INSERT INTO campaigns (
            id, brand_id, title, start_date, end_date, budget, target_audience,
            geographic_focus, influencer_type, primary_goals, collaboration, tracking,
            status, is_deleted, created_at, updated_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,false,$14,$15)`,
		c.ID, c.BrandID, c.Title, c.StartDate, c.EndDate, c.Budget, c.TargetAudience,
		c.GeographicFocus, c.InfluencerType, c.PrimaryGoals, c.Collaboration, c.Tracking,
		string(c.Status), c.CreatedAt, c.UpdatedAt,
	)
	return mapErr("create campaign", err)
}

// GetCampaign returns a campaign by id, soft-deleted ones included.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := scanCampaign(conn(ctx, r.pool).QueryRow(ctx, `SELECT`+campaignColumns+` FROM campaigns c WHERE c.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapErr("get campaign", err)
	}
	return &c, nil
}

// AddMember inserts the pair into campaign_members. A second insert of the
// same pair is absorbed by the primary key.
func (r *CampaignRepository) AddMember(ctx context.Context, campaignID, influencerID string) (bool, error) {
	q := conn(ctx, r.pool)
	tag, err := q.Exec(ctx, `
        INSERT INTO campaign_members (campaign_id, influencer_id, added_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (campaign_id, influencer_id) DO NOTHING`,
		campaignID, influencerID, time.Now().UTC())
	if err != nil {
		return false, mapErr("add member", err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}
	if _, err = q.Exec(ctx, `UPDATE campaigns SET updated_at = now() WHERE id = $1`, campaignID); err != nil {
		return false, mapErr("add member", err)
	}
	return true, nil
}

// CompareAndSetStatus moves a live campaign from expected to next.
func (r *CampaignRepository) CompareAndSetStatus(ctx context.Context, id string, expected, next domain.CampaignStatus) (bool, error) {
	tag, err := conn(ctx, r.pool).Exec(ctx, `
        UPDATE campaigns SET status = $3, updated_at = now()
        WHERE id = $1 AND status = $2 AND NOT is_deleted`,
		id, string(expected), string(next))
	if err != nil {
		return false, mapErr("set campaign status", err)
	}
	return tag.RowsAffected() == 1, nil
}

// SoftDeleteCampaign flags a live campaign deleted.
func (r *CampaignRepository) SoftDeleteCampaign(ctx context.Context, id string) (bool, error) {
	tag, err := conn(ctx, r.pool).Exec(ctx, `
        UPDATE campaigns SET is_deleted = true, updated_at = now()
        WHERE id = $1 AND NOT is_deleted`, id)
	if err != nil {
		return false, mapErr("delete campaign", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListCampaigns returns one page of live campaigns and the total count.
func (r *CampaignRepository) ListCampaigns(ctx context.Context, filter domain.CampaignFilter, page domain.PageRequest) ([]domain.Campaign, int64, error) {
	q := conn(ctx, r.pool)
	where := campaignWhere(filter)

	var total int64
	if err := q.QueryRow(ctx, `SELECT count(*) FROM campaigns c `+where.String(), where.args...).Scan(&total); err != nil {
		return nil, 0, mapErr("count campaigns", err)
	}
	if total == 0 {
		return []domain.Campaign{}, 0, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM campaigns c %s ORDER BY c.created_at DESC, c.id LIMIT %s OFFSET %s`,
		campaignColumns, where.String(), where.next(1), where.next(2))
	args := append(where.args, page.PageSize, page.Offset())
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, mapErr("list campaigns", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
	if err != nil {
		return nil, 0, mapErr("list campaigns", err)
	}
	return items, total, nil
}
