package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collabhub/internal/adapter/memory"
	"collabhub/internal/core/domain"
)

// TestSearchInfluencersPaginationLaw concatenates every page and checks
// nothing is duplicated or missing and the next page is empty.
func TestSearchInfluencersPaginationLaw(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 37; i++ {
		niche := "tech"
		if i%3 == 0 {
			niche = "fashion"
		}
		require.NoError(t, store.UpsertInfluencer(ctx, domain.Influencer{
			ID:           fmt.Sprintf("inf-%03d", i),
			Username:     fmt.Sprintf("creator%d", i),
			PrimaryNiche: niche,
			Country:      "NG",
			CreatedAt:    base.Add(time.Duration(i%5) * time.Second),
		}))
	}
	u := NewDiscoveryUseCase(store, store, Options{})

	for _, size := range []int{1, 4, 10, 36, 37, 100} {
		filter := domain.InfluencerFilter{PrimaryNiche: "tech", Country: "ng"}
		first, err := u.SearchInfluencers(ctx, filter, domain.PageRequest{Page: 1, PageSize: size})
		require.NoError(t, err)
		n := first.TotalCount
		require.Equal(t, int64(24), n)
		require.Equal(t, domain.TotalPages(n, size), first.TotalPages)

		seen := map[string]bool{}
		for page := 1; page <= first.TotalPages; page++ {
			p, err := u.SearchInfluencers(ctx, filter, domain.PageRequest{Page: page, PageSize: size})
			require.NoError(t, err)
			assert.Equal(t, n, p.TotalCount)
			for _, inf := range p.Items {
				assert.False(t, seen[inf.ID], "duplicate %s at size %d", inf.ID, size)
				seen[inf.ID] = true
			}
		}
		assert.Len(t, seen, int(n))

		past, err := u.SearchInfluencers(ctx, filter, domain.PageRequest{Page: first.TotalPages + 1, PageSize: size})
		require.NoError(t, err)
		assert.Empty(t, past.Items)
		assert.Equal(t, n, past.TotalCount)
		assert.Equal(t, first.TotalPages, past.TotalPages)
	}
}

func TestSearchInfluencersDefaults(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	for i := 0; i < 12; i++ {
		require.NoError(t, store.UpsertInfluencer(ctx, domain.Influencer{ID: fmt.Sprintf("i%02d", i), Username: "u"}))
	}
	u := NewDiscoveryUseCase(store, store, Options{})
	p, err := u.SearchInfluencers(ctx, domain.InfluencerFilter{Username: "  "}, domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, domain.DefaultPageSize, p.PageSize)
	assert.Len(t, p.Items, domain.DefaultPageSize)
	assert.Equal(t, 2, p.TotalPages)
}

func TestListCampaignsExcludesDeleted(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	campaigns := NewCampaignUseCase(store, discard, Options{})
	u := NewDiscoveryUseCase(store, store, Options{})
	owner := domain.Actor{ID: "brand-1", Role: domain.RoleBrand}

	var ids []string
	for i := 0; i < 3; i++ {
		c, err := campaigns.CreateCampaign(ctx, owner.ID, campaignInput())
		require.NoError(t, err)
		ids = append(ids, c.ID)
	}
	_, err := campaigns.CreateCampaign(ctx, "brand-2", campaignInput())
	require.NoError(t, err)
	require.NoError(t, campaigns.DeleteCampaign(ctx, ids[0], owner))

	mine, err := u.ListCampaignsForBrand(ctx, owner.ID, domain.PageRequest{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), mine.TotalCount)
	for _, c := range mine.Items {
		assert.NotEqual(t, ids[0], c.ID)
		assert.Equal(t, owner.ID, c.BrandID)
	}

	all, err := u.ListAllCampaigns(ctx, domain.PageRequest{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), all.TotalCount)
	assert.Equal(t, 2, all.TotalPages)
	assert.Len(t, all.Items, 2)

	_, err = u.ListCampaignsForBrand(ctx, "", domain.PageRequest{})
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

// TestHugePageIsEmpty returns an empty page for page numbers whose offset
// would not fit an int.
func TestHugePageIsEmpty(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	for i := range 3 {
		require.NoError(t, store.UpsertInfluencer(ctx, domain.Influencer{ID: fmt.Sprintf("inf-%d", i), Username: "u"}))
	}
	u := NewDiscoveryUseCase(store, store, Options{})

	for _, page := range []int{math.MaxInt64 / 50, math.MaxInt} {
		var res domain.Page[domain.Influencer]
		var err error
		require.NotPanics(t, func() {
			res, err = u.SearchInfluencers(ctx, domain.InfluencerFilter{}, domain.PageRequest{Page: page, PageSize: 100})
		})
		require.NoError(t, err)
		assert.Empty(t, res.Items)
		assert.EqualValues(t, 3, res.TotalCount)

		_, err = u.ListAllCampaigns(ctx, domain.PageRequest{Page: page, PageSize: 100})
		require.NoError(t, err)
	}
}
