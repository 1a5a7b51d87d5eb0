package port

import (
	"context"
	"iter"

	"collabhub/internal/core/domain"
)

// CampaignUseCase covers campaign creation and the lifecycle calls that are
// orthogonal to matching.
type CampaignUseCase interface {
	// CreateCampaign validates input and stores a pending campaign owned by
	// brandID.
	CreateCampaign(ctx context.Context, brandID string, in domain.CampaignInput) (*domain.Campaign, error)
	// GetCampaign returns a non-deleted campaign.
	GetCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error)
	// ActivateCampaign moves a pending campaign to active.
	ActivateCampaign(ctx context.Context, campaignID string, actor domain.Actor) (*domain.Campaign, error)
	// CompleteCampaign moves a pending or active campaign to completed.
	CompleteCampaign(ctx context.Context, campaignID string, actor domain.Actor) (*domain.Campaign, error)
	// DeleteCampaign soft-deletes the campaign.
	DeleteCampaign(ctx context.Context, campaignID string, actor domain.Actor) error
}

// MatchingUseCase is the Matching Engine. It is the only writer of
// application decisions and campaign membership.
type MatchingUseCase interface {
	// SubmitApplication records a pending application. No notification is
	// emitted.
	SubmitApplication(ctx context.Context, in domain.ApplicationInput) (*domain.Application, error)
	// GetApplication returns the application for the pair.
	GetApplication(ctx context.Context, campaignID, influencerID string) (*domain.Application, error)
	// DecideApplication accepts or rejects a pending application on behalf
	// of the owning brand and notifies the influencer.
	DecideApplication(ctx context.Context, campaignID, influencerID string, verdict domain.Verdict, brandID string) (*domain.Application, error)
	// ListApplicationsForInfluencer lazily yields the influencer's
	// applications, newest first.
	ListApplicationsForInfluencer(ctx context.Context, influencerID string, mode domain.ListMode) iter.Seq2[domain.Application, error]
	// ListApplicationsForCampaign returns the applications of a campaign
	// for its owner, optionally filtered by decision.
	ListApplicationsForCampaign(ctx context.Context, campaignID string, actor domain.Actor, decision domain.Decision) ([]domain.Application, error)
}

// DiscoveryUseCase is the paginated query surface over influencers and
// campaigns.
type DiscoveryUseCase interface {
	SearchInfluencers(ctx context.Context, filter domain.InfluencerFilter, page domain.PageRequest) (domain.Page[domain.Influencer], error)
	ListCampaignsForBrand(ctx context.Context, brandID string, page domain.PageRequest) (domain.Page[domain.Campaign], error)
	ListAllCampaigns(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Campaign], error)
}
