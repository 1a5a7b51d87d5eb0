package memory

import (
	"context"
	"slices"
	"sync"
)

type journalKey struct{}

// journal collects undo steps for the writes made inside one transaction
// and the record locks it holds until the transaction ends.
type journal struct {
	mu   sync.Mutex
	undo []func()
	held []*sync.Mutex
}

func journalFrom(ctx context.Context) *journal {
	j, _ := ctx.Value(journalKey{}).(*journal)
	return j
}

func (j *journal) add(fn func()) {
	if j == nil {
		return
	}
	j.mu.Lock()
	j.undo = append(j.undo, fn)
	j.mu.Unlock()
}

// hold locks m until the transaction ends. Undo steps registered for a held
// record run with the lock already taken and must not lock it again.
func (j *journal) hold(m *sync.Mutex) {
	j.mu.Lock()
	owned := slices.Contains(j.held, m)
	j.mu.Unlock()
	if owned {
		return
	}
	m.Lock()
	j.mu.Lock()
	j.held = append(j.held, m)
	j.mu.Unlock()
}

func (j *journal) release() {
	j.mu.Lock()
	defer j.mu.Unlock()
	for i := len(j.held) - 1; i >= 0; i-- {
		j.held[i].Unlock()
	}
	j.held = nil
}

func (j *journal) rollback() {
	j.mu.Lock()
	defer j.mu.Unlock()
	for i := len(j.undo) - 1; i >= 0; i-- {
		j.undo[i]()
	}
	j.undo = nil
}

// WithinTx runs fn and reverts every write it made if fn fails or the
// context ends before fn returns. Nested calls join the outer transaction.
// Decisions made inside the unit keep their pair locked until it ends, so a
// rival decider waits for the outcome instead of seeing an uncommitted one.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if journalFrom(ctx) != nil {
		return fn(ctx)
	}
	j := &journal{}
	err := fn(context.WithValue(ctx, journalKey{}, j))
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		j.rollback()
		j.release()
		return err
	}
	j.release()
	return nil
}
