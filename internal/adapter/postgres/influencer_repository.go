package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"collabhub/internal/core/domain"
)

// InfluencerRepository implements port.InfluencerRepository over the
// influencers projection table.
type InfluencerRepository struct {
	pool *pgxpool.Pool
}

func NewInfluencerRepository(pool *pgxpool.Pool) *InfluencerRepository {
	return &InfluencerRepository{pool: pool}
}

// UpsertInfluencer writes the profile projection. created_at is kept from
// the first write so ordering stays stable across updates.
func (r *InfluencerRepository) UpsertInfluencer(ctx context.Context, inf domain.Influencer) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
        INSERT INTO influencers (id, username, primary_niche, secondary_niche, country, created_at)
        VALUES ($1,$2,$3,$4,$5,$6)
        ON CONFLICT (id) DO UPDATE SET
            username = EXCLUDED.username,
            primary_niche = EXCLUDED.primary_niche,
            secondary_niche = EXCLUDED.secondary_niche,
            country = EXCLUDED.country`,
		inf.ID, inf.Username, inf.PrimaryNiche, inf.SecondaryNiche, inf.Country, inf.CreatedAt)
	return mapErr("upsert influencer", err)
}

func (r *InfluencerRepository) SearchInfluencers(ctx context.Context, filter domain.InfluencerFilter, page domain.PageRequest) ([]domain.Influencer, int64, error) {
	q := conn(ctx, r.pool)
	where := influencerWhere(filter)

	var total int64
	if err := q.QueryRow(ctx, `SELECT count(*) FROM influencers `+where.String(), where.args...).Scan(&total); err != nil {
		return nil, 0, mapErr("count influencers", err)
	}
	if total == 0 {
		return []domain.Influencer{}, 0, nil
	}

	query := fmt.Sprintf(`
        SELECT id, username, primary_niche, secondary_niche, country, created_at
        FROM influencers %s
        ORDER BY created_at, id
        LIMIT %s OFFSET %s`, where.String(), where.next(1), where.next(2))
	rows, err := q.Query(ctx, query, append(where.args, page.PageSize, page.Offset())...)
	if err != nil {
		return nil, 0, mapErr("search influencers", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Influencer, error) {
		var inf domain.Influencer
		err := row.Scan(&inf.ID, &inf.Username, &inf.PrimaryNiche, &inf.SecondaryNiche, &inf.Country, &inf.CreatedAt)
		return inf, err
	})
	if err != nil {
		return nil, 0, mapErr("search influencers", err)
	}
	return items, total, nil
}
