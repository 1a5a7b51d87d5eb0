package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"collabhub/internal/core/domain"
)

func decisionNotification(c *domain.Campaign, app *domain.Application, at time.Time) domain.Notification {
	body := fmt.Sprintf("Your application to %q has been rejected.", c.Title)
	if app.Decision == domain.DecisionAccepted {
		body = fmt.Sprintf("Your application to %q has been accepted. Welcome aboard!", c.Title)
	}
	return domain.Notification{
		ID:          uuid.NewString(),
		RecipientID: app.InfluencerID,
		Category:    domain.CategoryEventAction,
		Subject:     c.Title,
		Body:        body,
		SenderID:    c.BrandID,
		CampaignID:  c.ID,
		Timestamp:   at,
	}
}

// dispatch hands n to the notifier with bounded retries. It is detached
// from the caller's cancellation so a disconnecting client does not lose
// the event, and it never waits longer than NotifyTimeout for delivery.
// Undelivered notifications go to the gap recorder.
func (u *MatchingUseCase) dispatch(ctx context.Context, n domain.Notification) {
	base := context.WithoutCancel(ctx)
	sendCtx, cancel := context.WithTimeout(base, u.opts.NotifyTimeout)
	defer cancel()

	var err error
retry:
	for attempt := 1; ; attempt++ {
		if err = u.notifier.Notify(sendCtx, n); err == nil {
			return
		}
		u.logger.Warn("notification attempt failed",
			slog.String("notification_id", n.ID),
			slog.Int("attempt", attempt),
			slog.Any("error", err))
		if attempt >= u.opts.NotifyAttempts {
			break
		}
		wait := time.NewTimer(time.Duration(attempt) * u.opts.NotifyBackoff)
		select {
		case <-sendCtx.Done():
			wait.Stop()
			err = fmt.Errorf("%w (last attempt: %v)", sendCtx.Err(), err)
			break retry
		case <-wait.C:
		}
	}
	u.recordGap(base, n, err)
}

func (u *MatchingUseCase) recordGap(ctx context.Context, n domain.Notification, cause error) {
	attrs := []any{
		slog.String("notification_id", n.ID),
		slog.String("recipient_id", n.RecipientID),
		slog.String("campaign_id", n.CampaignID),
		slog.Any("error", cause),
	}
	if u.gaps == nil {
		u.logger.Error("notification undelivered", attrs...)
		return
	}
	ctx, cancel := context.WithTimeout(ctx, u.opts.NotifyTimeout)
	defer cancel()
	if err := u.gaps.RecordGap(ctx, n, cause); err != nil {
		u.logger.Error("notification undelivered and gap not recorded", append(attrs, slog.Any("record_error", err))...)
		return
	}
	u.logger.Error("notification undelivered, recorded for replay", attrs...)
}
