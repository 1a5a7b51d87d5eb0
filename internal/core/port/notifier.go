package port

import (
	"context"

	"collabhub/internal/core/domain"
)

// Notifier is the notification collaborator. It persists or delivers the
// event; the engine only needs success or failure.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}

// DeliveryGapRecorder keeps notifications that could not be handed off so
// they can be replayed. It is the at-least-once backstop for Notifier.
type DeliveryGapRecorder interface {
	RecordGap(ctx context.Context, n domain.Notification, cause error) error
}
