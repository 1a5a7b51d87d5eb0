package events

import (
	"context"
	"log/slog"

	"collabhub/internal/core/domain"
)

// LogNotifier writes notifications to the structured log. It stands in for
// a broker in local runs.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (l *LogNotifier) Notify(ctx context.Context, n domain.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.logger.InfoContext(ctx, "notification",
		slog.String("id", n.ID),
		slog.String("recipient_id", n.RecipientID),
		slog.String("sender_id", n.SenderID),
		slog.String("campaign_id", n.CampaignID),
		slog.String("category", n.Category),
		slog.String("subject", n.Subject),
		slog.String("body", n.Body),
	)
	return nil
}
