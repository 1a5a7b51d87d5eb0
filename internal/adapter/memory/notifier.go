package memory

import (
	"context"
	"slices"
	"sync"

	"collabhub/internal/core/domain"
)

// Notifier records notifications in memory.
type Notifier struct {
	mu   sync.Mutex
	sent []domain.Notification
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Notify(ctx context.Context, note domain.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n.mu.Lock()
	n.sent = append(n.sent, note)
	n.mu.Unlock()
	return nil
}

// Sent returns the notifications recorded so far, oldest first.
func (n *Notifier) Sent() []domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.sent)
}
