package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"collabhub/internal/core/domain"
	"collabhub/internal/core/port"
)

// CampaignUseCase implements port.CampaignUseCase on top of the Campaign
// Store.
type CampaignUseCase struct {
	campaigns port.CampaignRepository
	logger    *slog.Logger
	opts      Options
}

// NewCampaignUseCase creates a campaign use case backed by campaigns.
func NewCampaignUseCase(campaigns port.CampaignRepository, logger *slog.Logger, opts Options) *CampaignUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &CampaignUseCase{campaigns: campaigns, logger: logger, opts: opts.withDefaults()}
}

// CreateCampaign validates the input and stores a pending campaign. Nothing
// is written when validation fails.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, brandID string, in domain.CampaignInput) (*domain.Campaign, error) {
	if strings.TrimSpace(brandID) == "" {
		var errs domain.ValidationErrors
		errs.Add("brandId", "is required")
		return nil, errs.Err()
	}
	now := u.opts.Now()
	if err := domain.ValidateCampaign(in, now); err != nil {
		return nil, err
	}
	c := domain.Campaign{
		ID:              uuid.NewString(),
		BrandID:         brandID,
		Title:           strings.TrimSpace(in.Title),
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		Budget:          in.Budget,
		TargetAudience:  strings.TrimSpace(in.TargetAudience),
		GeographicFocus: strings.TrimSpace(in.GeographicFocus),
		InfluencerType:  strings.TrimSpace(in.InfluencerType),
		PrimaryGoals:    domain.NormalizeSet(in.PrimaryGoals),
		Collaboration: domain.Collaboration{
			PreviousCollaborations: in.Collaboration.PreviousCollaborations,
			ExclusiveContent:       in.Collaboration.ExclusiveContent,
			Type:                   strings.TrimSpace(in.Collaboration.Type),
			Styles:                 domain.NormalizeSet(in.Collaboration.Styles),
		},
		Tracking:            in.Tracking,
		Status:              domain.CampaignPending,
		MemberInfluencerIDs: []string{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if c.StartDate.IsZero() {
		c.StartDate = now
	}
	_, err := call(ctx, u.opts.StoreTimeout, "create campaign", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, u.campaigns.CreateCampaign(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	u.logger.Info("campaign created", slog.String("campaign_id", c.ID), slog.String("brand_id", brandID))
	return &c, nil
}

// GetCampaign returns a campaign unless it is missing or soft-deleted.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	return loadCampaign(ctx, u.campaigns, u.opts.StoreTimeout, campaignID)
}

// ActivateCampaign moves a pending campaign to active.
func (u *CampaignUseCase) ActivateCampaign(ctx context.Context, campaignID string, actor domain.Actor) (*domain.Campaign, error) {
	return u.transition(ctx, campaignID, actor, domain.CampaignActive)
}

// CompleteCampaign closes a campaign to new applications and decisions.
func (u *CampaignUseCase) CompleteCampaign(ctx context.Context, campaignID string, actor domain.Actor) (*domain.Campaign, error) {
	return u.transition(ctx, campaignID, actor, domain.CampaignCompleted)
}

// DeleteCampaign soft-deletes a campaign owned by the actor.
func (u *CampaignUseCase) DeleteCampaign(ctx context.Context, campaignID string, actor domain.Actor) error {
	c, err := loadCampaign(ctx, u.campaigns, u.opts.StoreTimeout, campaignID)
	if err != nil {
		return err
	}
	if err = authorizeOwner(c, actor); err != nil {
		return err
	}
	deleted, err := call(ctx, u.opts.StoreTimeout, "delete campaign", func(ctx context.Context) (bool, error) {
		return u.campaigns.SoftDeleteCampaign(ctx, campaignID)
	})
	if err != nil {
		return err
	}
	if !deleted {
		return domain.NotFound("campaign", campaignID)
	}
	u.logger.Info("campaign deleted", slog.String("campaign_id", campaignID), slog.String("actor_id", actor.ID))
	return nil
}

func (u *CampaignUseCase) transition(ctx context.Context, campaignID string, actor domain.Actor, next domain.CampaignStatus) (*domain.Campaign, error) {
	c, err := loadCampaign(ctx, u.campaigns, u.opts.StoreTimeout, campaignID)
	if err != nil {
		return nil, err
	}
	if err = authorizeOwner(c, actor); err != nil {
		return nil, err
	}
	if !c.Status.CanTransitionTo(next) {
		return nil, domain.InvalidState("campaign cannot move from " + string(c.Status) + " to " + string(next))
	}
	swapped, err := call(ctx, u.opts.StoreTimeout, "update campaign status", func(ctx context.Context) (bool, error) {
		return u.campaigns.CompareAndSetStatus(ctx, campaignID, c.Status, next)
	})
	if err != nil {
		return nil, err
	}
	if !swapped {
		return nil, domain.InvalidState("campaign status changed concurrently")
	}
	u.logger.Info("campaign status changed",
		slog.String("campaign_id", campaignID),
		slog.String("from", string(c.Status)),
		slog.String("to", string(next)))
	return loadCampaign(ctx, u.campaigns, u.opts.StoreTimeout, campaignID)
}

// loadCampaign fetches a live campaign, treating soft-deleted campaigns as
// missing.
func loadCampaign(ctx context.Context, campaigns port.CampaignRepository, timeout time.Duration, id string) (*domain.Campaign, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.NotFound("campaign", id)
	}
	c, err := call(ctx, timeout, "get campaign", func(ctx context.Context) (*domain.Campaign, error) {
		return campaigns.GetCampaign(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	if c == nil || c.IsDeleted {
		return nil, domain.NotFound("campaign", id)
	}
	return c, nil
}

// authorizeOwner allows the owning brand and administrators.
func authorizeOwner(c *domain.Campaign, actor domain.Actor) error {
	if actor.IsAdmin() || c.OwnedBy(actor.ID) {
		return nil
	}
	return domain.Forbidden("only the owning brand may manage this campaign")
}
