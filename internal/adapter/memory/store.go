// Package memory provides in-process implementations of the store ports.
// It backs tests and single-node local runs; writes are visible to other
// goroutines as they happen and are undone if the enclosing transaction
// fails.
package memory

import (
	"cmp"
	"context"
	"iter"
	"slices"
	"strings"
	"sync"
	"time"

	"collabhub/internal/core/domain"
)

type pairKey struct {
	campaignID   string
	influencerID string
}

type campaignRecord struct {
	mu      sync.Mutex
	c       domain.Campaign
	members map[string]struct{}
}

func (r *campaignRecord) snapshot() domain.Campaign {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.c
	c.PrimaryGoals = slices.Clone(r.c.PrimaryGoals)
	c.Collaboration.Styles = slices.Clone(r.c.Collaboration.Styles)
	c.MemberInfluencerIDs = make([]string, 0, len(r.members))
	for id := range r.members {
		c.MemberInfluencerIDs = append(c.MemberInfluencerIDs, id)
	}
	slices.Sort(c.MemberInfluencerIDs)
	return c
}

type applicationRecord struct {
	mu  sync.Mutex
	app domain.Application
}

func (r *applicationRecord) snapshot() domain.Application {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := r.app
	if r.app.DecidedAt != nil {
		t := *r.app.DecidedAt
		a.DecidedAt = &t
	}
	return a
}

// Store implements the Campaign Store, Application Ledger, influencer index
// and Transactor ports. Locks are held per campaign and per application
// pair; the maps themselves are guarded separately so unrelated pairs never
// contend beyond a map lookup.
type Store struct {
	campaignsMu sync.RWMutex
	campaigns   map[string]*campaignRecord

	appsMu sync.RWMutex
	apps   map[pairKey]*applicationRecord

	influencersMu sync.RWMutex
	influencers   map[string]domain.Influencer

	now func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		campaigns:   make(map[string]*campaignRecord),
		apps:        make(map[pairKey]*applicationRecord),
		influencers: make(map[string]domain.Influencer),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) campaign(id string) *campaignRecord {
	s.campaignsMu.RLock()
	defer s.campaignsMu.RUnlock()
	return s.campaigns[id]
}

// CreateCampaign stores c. Its member list is ignored; membership only
// grows through AddMember.
func (s *Store) CreateCampaign(ctx context.Context, c domain.Campaign) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rec := &campaignRecord{c: c, members: make(map[string]struct{})}
	rec.c.PrimaryGoals = slices.Clone(c.PrimaryGoals)
	rec.c.Collaboration.Styles = slices.Clone(c.Collaboration.Styles)
	rec.c.MemberInfluencerIDs = nil

	s.campaignsMu.Lock()
	if _, exists := s.campaigns[c.ID]; exists {
		s.campaignsMu.Unlock()
		return domain.Conflict("campaign " + c.ID + " already exists")
	}
	s.campaigns[c.ID] = rec
	s.campaignsMu.Unlock()

	journalFrom(ctx).add(func() {
		s.campaignsMu.Lock()
		delete(s.campaigns, c.ID)
		s.campaignsMu.Unlock()
	})
	return nil
}

func (s *Store) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec := s.campaign(id)
	if rec == nil {
		return nil, nil
	}
	c := rec.snapshot()
	return &c, nil
}

// AddMember inserts influencerID into the campaign's member set.
func (s *Store) AddMember(ctx context.Context, campaignID, influencerID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	rec := s.campaign(campaignID)
	if rec == nil {
		return false, domain.NotFound("campaign", campaignID)
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if _, ok := rec.members[influencerID]; ok {
		return false, nil
	}
	rec.members[influencerID] = struct{}{}
	rec.c.UpdatedAt = s.now()
	journalFrom(ctx).add(func() {
		rec.mu.Lock()
		delete(rec.members, influencerID)
		rec.mu.Unlock()
	})
	return true, nil
}

func (s *Store) CompareAndSetStatus(ctx context.Context, id string, expected, next domain.CampaignStatus) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	rec := s.campaign(id)
	if rec == nil {
		return false, nil
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.c.IsDeleted || rec.c.Status != expected {
		return false, nil
	}
	prev := rec.c.UpdatedAt
	rec.c.Status = next
	rec.c.UpdatedAt = s.now()
	journalFrom(ctx).add(func() {
		rec.mu.Lock()
		if rec.c.Status == next {
			rec.c.Status = expected
			rec.c.UpdatedAt = prev
		}
		rec.mu.Unlock()
	})
	return true, nil
}

func (s *Store) SoftDeleteCampaign(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	rec := s.campaign(id)
	if rec == nil {
		return false, nil
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.c.IsDeleted {
		return false, nil
	}
	rec.c.IsDeleted = true
	rec.c.UpdatedAt = s.now()
	journalFrom(ctx).add(func() {
		rec.mu.Lock()
		rec.c.IsDeleted = false
		rec.mu.Unlock()
	})
	return true, nil
}

func (s *Store) ListCampaigns(ctx context.Context, filter domain.CampaignFilter, page domain.PageRequest) ([]domain.Campaign, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	s.campaignsMu.RLock()
	recs := make([]*campaignRecord, 0, len(s.campaigns))
	for _, rec := range s.campaigns {
		recs = append(recs, rec)
	}
	s.campaignsMu.RUnlock()

	matched := make([]domain.Campaign, 0, len(recs))
	for _, rec := range recs {
		c := rec.snapshot()
		if c.IsDeleted {
			continue
		}
		if filter.BrandID != "" && c.BrandID != filter.BrandID {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		matched = append(matched, c)
	}
	slices.SortFunc(matched, func(a, b domain.Campaign) int {
		if n := b.CreatedAt.Compare(a.CreatedAt); n != 0 {
			return n
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return window(matched, page), int64(len(matched)), nil
}

// CreateApplication stores a pending application. Any existing application
// for the pair is a conflict.
func (s *Store) CreateApplication(ctx context.Context, a domain.Application) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := pairKey{a.CampaignID, a.InfluencerID}
	s.appsMu.Lock()
	if _, exists := s.apps[key]; exists {
		s.appsMu.Unlock()
		return domain.Conflict("an application for this campaign already exists")
	}
	s.apps[key] = &applicationRecord{app: a}
	s.appsMu.Unlock()

	journalFrom(ctx).add(func() {
		s.appsMu.Lock()
		delete(s.apps, key)
		s.appsMu.Unlock()
	})
	return nil
}

func (s *Store) application(campaignID, influencerID string) *applicationRecord {
	s.appsMu.RLock()
	defer s.appsMu.RUnlock()
	return s.apps[pairKey{campaignID, influencerID}]
}

func (s *Store) GetApplication(ctx context.Context, campaignID, influencerID string) (*domain.Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec := s.application(campaignID, influencerID)
	if rec == nil {
		return nil, nil
	}
	a := rec.snapshot()
	return &a, nil
}

// CompareAndSetDecision swaps the decision under the pair's lock. Inside a
// transaction the lock is held until the transaction ends.
func (s *Store) CompareAndSetDecision(ctx context.Context, campaignID, influencerID string, expected, next domain.Decision, at time.Time) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	rec := s.application(campaignID, influencerID)
	if rec == nil {
		return false, nil
	}
	j := journalFrom(ctx)
	if j != nil {
		j.hold(&rec.mu)
	} else {
		rec.mu.Lock()
		defer rec.mu.Unlock()
	}
	if rec.app.Decision != expected {
		return false, nil
	}
	prevAt := rec.app.DecidedAt
	rec.app.Decision = next
	rec.app.DecidedAt = &at
	// runs while the journal still holds rec.mu
	j.add(func() {
		rec.app.Decision = expected
		rec.app.DecidedAt = prevAt
	})
	return true, nil
}

func (s *Store) applications(match func(domain.Application) bool) []domain.Application {
	s.appsMu.RLock()
	recs := make([]*applicationRecord, 0, len(s.apps))
	for _, rec := range s.apps {
		recs = append(recs, rec)
	}
	s.appsMu.RUnlock()

	out := make([]domain.Application, 0)
	for _, rec := range recs {
		if a := rec.snapshot(); match(a) {
			out = append(out, a)
		}
	}
	slices.SortFunc(out, func(a, b domain.Application) int {
		if n := b.SubmittedAt.Compare(a.SubmittedAt); n != 0 {
			return n
		}
		if n := cmp.Compare(a.CampaignID, b.CampaignID); n != 0 {
			return n
		}
		return cmp.Compare(a.InfluencerID, b.InfluencerID)
	})
	return out
}

// ListByInfluencer snapshots the ledger each time the sequence is ranged.
func (s *Store) ListByInfluencer(ctx context.Context, influencerID string, onlyAccepted bool) iter.Seq2[domain.Application, error] {
	return func(yield func(domain.Application, error) bool) {
		if err := ctx.Err(); err != nil {
			yield(domain.Application{}, err)
			return
		}
		apps := s.applications(func(a domain.Application) bool {
			return a.InfluencerID == influencerID && (!onlyAccepted || a.Decision == domain.DecisionAccepted)
		})
		for _, a := range apps {
			if !yield(a, nil) {
				return
			}
		}
	}
}

func (s *Store) ListByCampaign(ctx context.Context, campaignID string, decision domain.Decision) ([]domain.Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.applications(func(a domain.Application) bool {
		return a.CampaignID == campaignID && (decision == "" || a.Decision == decision)
	}), nil
}

// UpsertInfluencer inserts or replaces a profile projection. The original
// creation time is kept so pagination order stays stable.
func (s *Store) UpsertInfluencer(ctx context.Context, inf domain.Influencer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.influencersMu.Lock()
	defer s.influencersMu.Unlock()
	if prev, ok := s.influencers[inf.ID]; ok {
		inf.CreatedAt = prev.CreatedAt
	} else if inf.CreatedAt.IsZero() {
		inf.CreatedAt = s.now()
	}
	s.influencers[inf.ID] = inf
	return nil
}

func (s *Store) SearchInfluencers(ctx context.Context, filter domain.InfluencerFilter, page domain.PageRequest) ([]domain.Influencer, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	s.influencersMu.RLock()
	matched := make([]domain.Influencer, 0, len(s.influencers))
	for _, inf := range s.influencers {
		if matchInfluencer(inf, filter) {
			matched = append(matched, inf)
		}
	}
	s.influencersMu.RUnlock()

	slices.SortFunc(matched, func(a, b domain.Influencer) int {
		if n := a.CreatedAt.Compare(b.CreatedAt); n != 0 {
			return n
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return window(matched, page), int64(len(matched)), nil
}

func matchInfluencer(inf domain.Influencer, f domain.InfluencerFilter) bool {
	if f.Username != "" && !strings.Contains(strings.ToLower(inf.Username), strings.ToLower(f.Username)) {
		return false
	}
	if f.PrimaryNiche != "" && !strings.EqualFold(inf.PrimaryNiche, f.PrimaryNiche) {
		return false
	}
	if f.SecondaryNiche != "" && !strings.EqualFold(inf.SecondaryNiche, f.SecondaryNiche) {
		return false
	}
	if f.Country != "" && !strings.EqualFold(inf.Country, f.Country) {
		return false
	}
	return true
}

// window returns the page of items selected by page.
func window[T any](items []T, page domain.PageRequest) []T {
	page = page.Normalize()
	start := page.Offset()
	if start < 0 || start >= len(items) {
		return []T{}
	}
	end := min(start+page.PageSize, len(items))
	return items[start:end]
}
