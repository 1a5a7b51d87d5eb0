package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"collabhub/internal/core/domain"
)

func TestInfluencerWhere(t *testing.T) {
	w := influencerWhere(domain.InfluencerFilter{})
	assert.Equal(t, "", w.String())
	assert.Empty(t, w.args)

	w = influencerWhere(domain.InfluencerFilter{Username: "50%_off", Country: "NG"})
	assert.Equal(t, `WHERE username ILIKE '%' || $1 || '%' AND lower(country) = lower($2)`, w.String())
	assert.Equal(t, []any{`50\%\_off`, "NG"}, w.args)
	assert.Equal(t, "$3", w.next(1))

	w = influencerWhere(domain.InfluencerFilter{PrimaryNiche: "tech", SecondaryNiche: "gaming"})
	assert.Equal(t, "WHERE lower(primary_niche) = lower($1) AND lower(secondary_niche) = lower($2)", w.String())
}

func TestCampaignWhere(t *testing.T) {
	assert.Equal(t, "WHERE NOT c.is_deleted", campaignWhere(domain.CampaignFilter{}).String())

	w := campaignWhere(domain.CampaignFilter{BrandID: "b1", Status: domain.CampaignActive})
	assert.Equal(t, "WHERE NOT c.is_deleted AND c.brand_id = $1 AND c.status = $2", w.String())
	assert.Equal(t, []any{"b1", "active"}, w.args)
}
