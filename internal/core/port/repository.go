package port

import (
	"context"
	"iter"
	"time"

	"collabhub/internal/core/domain"
)

// CampaignRepository is the Campaign Store. It is an outbound port in
// hexagonal architecture. Implementations must be concurrency-safe; calls
// made with a context handed out by Transactor.WithinTx join that unit.
type CampaignRepository interface {
	// CreateCampaign stores a new campaign with its initial status.
	CreateCampaign(ctx context.Context, c domain.Campaign) error
	// GetCampaign returns a campaign by id including soft-deleted ones, or
	// nil when it does not exist.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	// AddMember inserts influencerID into the campaign's member set. Adding
	// an existing member is a no-op; added reports whether the set changed.
	AddMember(ctx context.Context, campaignID, influencerID string) (added bool, err error)
	// CompareAndSetStatus moves the campaign from expected to next. It
	// returns false when the current status is not expected.
	CompareAndSetStatus(ctx context.Context, id string, expected, next domain.CampaignStatus) (bool, error)
	// SoftDeleteCampaign flags the campaign deleted. It returns false when
	// the campaign is missing or already deleted.
	SoftDeleteCampaign(ctx context.Context, id string) (bool, error)
	// ListCampaigns returns one page of non-deleted campaigns ordered by
	// creation time descending, then id, together with the total count.
	ListCampaigns(ctx context.Context, filter domain.CampaignFilter, page domain.PageRequest) ([]domain.Campaign, int64, error)
}

// ApplicationRepository is the Application Ledger.
type ApplicationRepository interface {
	// CreateApplication stores a new application. An existing application
	// for the same pair yields a domain.ErrConflict error.
	CreateApplication(ctx context.Context, a domain.Application) error
	// GetApplication returns the application for the pair, or nil.
	GetApplication(ctx context.Context, campaignID, influencerID string) (*domain.Application, error)
	// CompareAndSetDecision sets the decision to next if it currently equals
	// expected. It returns false when the precondition does not hold.
	CompareAndSetDecision(ctx context.Context, campaignID, influencerID string, expected, next domain.Decision, at time.Time) (bool, error)
	// ListByInfluencer yields the influencer's applications ordered by
	// submission time descending. When onlyAccepted is set only accepted
	// applications are yielded. Each range over the sequence reads afresh.
	ListByInfluencer(ctx context.Context, influencerID string, onlyAccepted bool) iter.Seq2[domain.Application, error]
	// ListByCampaign returns the campaign's applications ordered by
	// submission time descending, optionally restricted to one decision.
	ListByCampaign(ctx context.Context, campaignID string, decision domain.Decision) ([]domain.Application, error)
}

// InfluencerRepository backs the influencer side of the Discovery Index.
type InfluencerRepository interface {
	// UpsertInfluencer projects a profile into the index.
	UpsertInfluencer(ctx context.Context, inf domain.Influencer) error
	// SearchInfluencers returns one page of matches ordered by creation time
	// then id, together with the total number of matches.
	SearchInfluencers(ctx context.Context, filter domain.InfluencerFilter, page domain.PageRequest) ([]domain.Influencer, int64, error)
}

// Transactor runs fn as a single atomic unit. Either every store write made
// through the supplied context commits or none does.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
