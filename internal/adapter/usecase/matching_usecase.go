package usecase

import (
	"context"
	"iter"
	"log/slog"
	"strings"

	"collabhub/internal/core/domain"
	"collabhub/internal/core/port"
)

// MatchingUseCase is the Matching Engine. It validates state transitions,
// mutates the Campaign Store and Application Ledger together and hands the
// resulting notification to the emitter once the decision has committed.
type MatchingUseCase struct {
	campaigns    port.CampaignRepository
	applications port.ApplicationRepository
	tx           port.Transactor
	notifier     port.Notifier
	gaps         port.DeliveryGapRecorder
	logger       *slog.Logger
	opts         Options
}

// NewMatchingUseCase wires the engine. gaps may be nil, in which case
// undeliverable notifications are only logged.
func NewMatchingUseCase(
	campaigns port.CampaignRepository,
	applications port.ApplicationRepository,
	tx port.Transactor,
	notifier port.Notifier,
	gaps port.DeliveryGapRecorder,
	logger *slog.Logger,
	opts Options,
) *MatchingUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &MatchingUseCase{
		campaigns:    campaigns,
		applications: applications,
		tx:           tx,
		notifier:     notifier,
		gaps:         gaps,
		logger:       logger,
		opts:         opts.withDefaults(),
	}
}

// SubmitApplication records a pending application for a live, not yet
// completed campaign. Input is validated before any store access. A second
// submission for the same pair is a conflict whatever the first one's
// decision.
func (u *MatchingUseCase) SubmitApplication(ctx context.Context, in domain.ApplicationInput) (*domain.Application, error) {
	in.Message = strings.TrimSpace(in.Message)
	if err := domain.ValidateApplication(in); err != nil {
		return nil, err
	}
	c, err := loadCampaign(ctx, u.campaigns, u.opts.StoreTimeout, in.CampaignID)
	if err != nil {
		return nil, err
	}
	if c.Status == domain.CampaignCompleted {
		return nil, domain.InvalidState("campaign is completed and no longer accepts applications")
	}
	app := domain.Application{
		CampaignID:   in.CampaignID,
		InfluencerID: in.InfluencerID,
		Offer:        in.Offer,
		Message:      in.Message,
		Decision:     domain.DecisionPending,
		SubmittedAt:  u.opts.Now(),
	}
	_, err = call(ctx, u.opts.StoreTimeout, "create application", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, u.applications.CreateApplication(ctx, app)
	})
	if err != nil {
		return nil, err
	}
	u.logger.Info("application submitted",
		slog.String("campaign_id", app.CampaignID),
		slog.String("influencer_id", app.InfluencerID))
	return &app, nil
}

// GetApplication returns the application for the pair.
func (u *MatchingUseCase) GetApplication(ctx context.Context, campaignID, influencerID string) (*domain.Application, error) {
	app, err := call(ctx, u.opts.StoreTimeout, "get application", func(ctx context.Context) (*domain.Application, error) {
		return u.applications.GetApplication(ctx, campaignID, influencerID)
	})
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.NotFound("application", campaignID+"/"+influencerID)
	}
	return app, nil
}

// DecideApplication applies the brand's verdict. The decision and, for an
// accept, the membership insert commit as one unit; the compare-and-set on
// the decision picks a single winner among concurrent deciders and every
// loser gets an invalid-state error. The influencer is notified after the
// commit. A failed notification never undoes the decision.
func (u *MatchingUseCase) DecideApplication(ctx context.Context, campaignID, influencerID string, verdict domain.Verdict, brandID string) (*domain.Application, error) {
	next, ok := verdict.Decision()
	if !ok {
		var errs domain.ValidationErrors
		errs.Add("decision", "must be accept or reject")
		return nil, errs.Err()
	}
	c, err := loadCampaign(ctx, u.campaigns, u.opts.StoreTimeout, campaignID)
	if err != nil {
		return nil, err
	}
	if !c.OwnedBy(brandID) {
		return nil, domain.Forbidden("only the owning brand may decide applications")
	}
	if c.Status == domain.CampaignCompleted {
		return nil, domain.InvalidState("campaign is completed")
	}
	app, err := u.GetApplication(ctx, campaignID, influencerID)
	if err != nil {
		return nil, err
	}
	if app.Decision != domain.DecisionPending {
		return nil, domain.InvalidState("application already " + string(app.Decision))
	}

	decidedAt := u.opts.Now()
	_, err = call(ctx, u.opts.StoreTimeout, "decide application", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, u.tx.WithinTx(ctx, func(ctx context.Context) error {
			swapped, err := u.applications.CompareAndSetDecision(ctx, campaignID, influencerID, domain.DecisionPending, next, decidedAt)
			if err != nil {
				return err
			}
			if !swapped {
				return domain.InvalidState("application was decided concurrently")
			}
			if next == domain.DecisionAccepted {
				if _, err = u.campaigns.AddMember(ctx, campaignID, influencerID); err != nil {
					return err
				}
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	app.Decision = next
	app.DecidedAt = &decidedAt
	u.logger.Info("application decided",
		slog.String("campaign_id", campaignID),
		slog.String("influencer_id", influencerID),
		slog.String("decision", string(next)))

	u.dispatch(ctx, decisionNotification(c, app, decidedAt))
	return app, nil
}

// ListApplicationsForInfluencer returns a lazy sequence of the influencer's
// applications, newest first. Ranging over it again re-reads the ledger.
func (u *MatchingUseCase) ListApplicationsForInfluencer(ctx context.Context, influencerID string, mode domain.ListMode) iter.Seq2[domain.Application, error] {
	return func(yield func(domain.Application, error) bool) {
		var errs domain.ValidationErrors
		if strings.TrimSpace(influencerID) == "" {
			errs.Add("influencerId", "is required")
		}
		if !mode.Valid() {
			errs.Add("status", "must be applied or registered")
		}
		if err := errs.Err(); err != nil {
			yield(domain.Application{}, err)
			return
		}
		ctx, cancel := context.WithTimeout(ctx, u.opts.StoreTimeout)
		defer cancel()
		for app, err := range u.applications.ListByInfluencer(ctx, influencerID, mode == domain.ListRegistered) {
			if err != nil {
				yield(domain.Application{}, storeErr("list applications", err))
				return
			}
			if !yield(app, nil) {
				return
			}
		}
	}
}

// ListApplicationsForCampaign returns the campaign's applications for its
// owner. An empty decision returns all of them.
func (u *MatchingUseCase) ListApplicationsForCampaign(ctx context.Context, campaignID string, actor domain.Actor, decision domain.Decision) ([]domain.Application, error) {
	if decision != "" && !decision.Valid() {
		var errs domain.ValidationErrors
		errs.Add("decision", "must be pending, accepted or rejected")
		return nil, errs.Err()
	}
	c, err := loadCampaign(ctx, u.campaigns, u.opts.StoreTimeout, campaignID)
	if err != nil {
		return nil, err
	}
	if err = authorizeOwner(c, actor); err != nil {
		return nil, err
	}
	return call(ctx, u.opts.StoreTimeout, "list campaign applications", func(ctx context.Context) ([]domain.Application, error) {
		return u.applications.ListByCampaign(ctx, campaignID, decision)
	})
}
