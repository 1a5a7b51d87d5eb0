package usecase

import (
	"context"
	"strings"

	"collabhub/internal/core/domain"
	"collabhub/internal/core/port"
)

// DiscoveryUseCase answers paginated queries over influencers and
// campaigns.
type DiscoveryUseCase struct {
	influencers port.InfluencerRepository
	campaigns   port.CampaignRepository
	opts        Options
}

func NewDiscoveryUseCase(influencers port.InfluencerRepository, campaigns port.CampaignRepository, opts Options) *DiscoveryUseCase {
	return &DiscoveryUseCase{influencers: influencers, campaigns: campaigns, opts: opts.withDefaults()}
}

// SearchInfluencers returns one page of influencers matching every set
// filter field. Pages past the end are empty.
func (u *DiscoveryUseCase) SearchInfluencers(ctx context.Context, filter domain.InfluencerFilter, page domain.PageRequest) (domain.Page[domain.Influencer], error) {
	page = page.Normalize()
	filter = domain.InfluencerFilter{
		Username:       strings.TrimSpace(filter.Username),
		PrimaryNiche:   strings.TrimSpace(filter.PrimaryNiche),
		SecondaryNiche: strings.TrimSpace(filter.SecondaryNiche),
		Country:        strings.TrimSpace(filter.Country),
	}
	type result struct {
		items []domain.Influencer
		total int64
	}
	r, err := call(ctx, u.opts.StoreTimeout, "search influencers", func(ctx context.Context) (result, error) {
		items, total, err := u.influencers.SearchInfluencers(ctx, filter, page)
		return result{items, total}, err
	})
	if err != nil {
		return domain.Page[domain.Influencer]{}, err
	}
	return domain.NewPage(r.items, r.total, page), nil
}

// ListCampaignsForBrand pages through one brand's live campaigns.
func (u *DiscoveryUseCase) ListCampaignsForBrand(ctx context.Context, brandID string, page domain.PageRequest) (domain.Page[domain.Campaign], error) {
	if strings.TrimSpace(brandID) == "" {
		var errs domain.ValidationErrors
		errs.Add("brandId", "is required")
		return domain.Page[domain.Campaign]{}, errs.Err()
	}
	return u.listCampaigns(ctx, domain.CampaignFilter{BrandID: brandID}, page)
}

// ListAllCampaigns pages through every live campaign.
func (u *DiscoveryUseCase) ListAllCampaigns(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Campaign], error) {
	return u.listCampaigns(ctx, domain.CampaignFilter{}, page)
}

func (u *DiscoveryUseCase) listCampaigns(ctx context.Context, filter domain.CampaignFilter, page domain.PageRequest) (domain.Page[domain.Campaign], error) {
	page = page.Normalize()
	type result struct {
		items []domain.Campaign
		total int64
	}
	r, err := call(ctx, u.opts.StoreTimeout, "list campaigns", func(ctx context.Context) (result, error) {
		items, total, err := u.campaigns.ListCampaigns(ctx, filter, page)
		return result{items, total}, err
	})
	if err != nil {
		return domain.Page[domain.Campaign]{}, err
	}
	return domain.NewPage(r.items, r.total, page), nil
}
