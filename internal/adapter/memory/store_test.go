package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collabhub/internal/core/domain"
)

func seedCampaign(t *testing.T, s *Store, id, brand string, createdAt time.Time) {
	t.Helper()
	require.NoError(t, s.CreateCampaign(context.Background(), domain.Campaign{
		ID:        id,
		BrandID:   brand,
		Title:     "Campaign " + id,
		Status:    domain.CampaignPending,
		CreatedAt: createdAt,
	}))
}

// TestAddMemberIdempotent ensures repeated inserts leave the member set unchanged.
func TestAddMemberIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seedCampaign(t, s, "c1", "b1", time.Now())

	added, err := s.AddMember(ctx, "c1", "i1")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = s.AddMember(ctx, "c1", "i1")
	require.NoError(t, err)
	assert.False(t, added)

	c, err := s.GetCampaign(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"i1"}, c.MemberInfluencerIDs)
}

// TestAddMemberConcurrent inserts many members into one campaign at once.
func TestAddMemberConcurrent(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seedCampaign(t, s, "c1", "b1", time.Now())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		id := fmt.Sprintf("i%02d", i)
		for range 2 {
			go func() {
				defer wg.Done()
				_, _ = s.AddMember(ctx, "c1", id)
			}()
		}
	}
	wg.Wait()

	c, err := s.GetCampaign(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, c.MemberInfluencerIDs, 50)
}

func TestAddMemberMissingCampaign(t *testing.T) {
	_, err := NewStore().AddMember(context.Background(), "nope", "i1")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCreateApplicationConflict(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	app := domain.Application{CampaignID: "c1", InfluencerID: "i1", Decision: domain.DecisionPending}
	require.NoError(t, s.CreateApplication(ctx, app))
	assert.True(t, errors.Is(s.CreateApplication(ctx, app), domain.ErrConflict))
}

func TestCompareAndSetDecisionSingleWinner(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.CreateApplication(ctx, domain.Application{CampaignID: "c1", InfluencerID: "i1", Decision: domain.DecisionPending}))

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for _, next := range []domain.Decision{domain.DecisionAccepted, domain.DecisionRejected, domain.DecisionAccepted, domain.DecisionRejected} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := s.CompareAndSetDecision(ctx, "c1", "i1", domain.DecisionPending, next, time.Now())
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, wins)

	app, err := s.GetApplication(ctx, "c1", "i1")
	require.NoError(t, err)
	assert.True(t, app.Decision.Terminal())
	assert.NotNil(t, app.DecidedAt)
}

func TestWithinTxRollsBack(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seedCampaign(t, s, "c1", "b1", time.Now())
	require.NoError(t, s.CreateApplication(ctx, domain.Application{CampaignID: "c1", InfluencerID: "i1", Decision: domain.DecisionPending}))

	boom := errors.New("boom")
	err := s.WithinTx(ctx, func(ctx context.Context) error {
		ok, err := s.CompareAndSetDecision(ctx, "c1", "i1", domain.DecisionPending, domain.DecisionAccepted, time.Now())
		require.NoError(t, err)
		require.True(t, ok)
		_, err = s.AddMember(ctx, "c1", "i1")
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	app, err := s.GetApplication(ctx, "c1", "i1")
	require.NoError(t, err)
	assert.Equal(t, domain.DecisionPending, app.Decision)
	assert.Nil(t, app.DecidedAt)

	c, err := s.GetCampaign(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, c.MemberInfluencerIDs)
}

// TestDecisionRivalWaitsForRollback ensures a rival decider cannot observe an
// uncommitted decision and wins once the first transaction rolls back.
func TestDecisionRivalWaitsForRollback(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seedCampaign(t, s, "c1", "b1", time.Now())
	require.NoError(t, s.CreateApplication(ctx, domain.Application{CampaignID: "c1", InfluencerID: "i1", Decision: domain.DecisionPending}))

	type result struct {
		ok  bool
		err error
	}
	rival := make(chan result, 1)
	boom := errors.New("boom")
	err := s.WithinTx(ctx, func(txCtx context.Context) error {
		ok, err := s.CompareAndSetDecision(txCtx, "c1", "i1", domain.DecisionPending, domain.DecisionAccepted, time.Now())
		require.NoError(t, err)
		require.True(t, ok)

		go func() {
			ok, err := s.CompareAndSetDecision(ctx, "c1", "i1", domain.DecisionPending, domain.DecisionRejected, time.Now())
			rival <- result{ok, err}
		}()
		select {
		case r := <-rival:
			t.Fatalf("rival decided before the transaction ended: %+v", r)
		case <-time.After(20 * time.Millisecond):
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	select {
	case r := <-rival:
		require.NoError(t, r.err)
		assert.True(t, r.ok)
	case <-time.After(time.Second):
		t.Fatal("rival never decided")
	}

	app, err := s.GetApplication(ctx, "c1", "i1")
	require.NoError(t, err)
	assert.Equal(t, domain.DecisionRejected, app.Decision)
}

// TestDecisionRivalLosesAfterCommit ensures the lock is released on commit.
func TestDecisionRivalLosesAfterCommit(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.CreateApplication(ctx, domain.Application{CampaignID: "c1", InfluencerID: "i1", Decision: domain.DecisionPending}))

	require.NoError(t, s.WithinTx(ctx, func(txCtx context.Context) error {
		ok, err := s.CompareAndSetDecision(txCtx, "c1", "i1", domain.DecisionPending, domain.DecisionAccepted, time.Now())
		require.NoError(t, err)
		require.True(t, ok)
		return nil
	}))

	ok, err := s.CompareAndSetDecision(ctx, "c1", "i1", domain.DecisionPending, domain.DecisionRejected, time.Now())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWithinTxCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := NewStore()
	seedCampaign(t, s, "c1", "b1", time.Now())

	err := s.WithinTx(ctx, func(txCtx context.Context) error {
		_, err := s.AddMember(txCtx, "c1", "i1")
		cancel()
		return err
	})
	assert.ErrorIs(t, err, context.Canceled)

	c, err := s.GetCampaign(context.Background(), "c1")
	require.NoError(t, err)
	assert.Empty(t, c.MemberInfluencerIDs)
}

// TestListCampaignsPagination checks that walking every page yields each
// live campaign exactly once and that the page after the last is empty.
func TestListCampaignsPagination(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 23; i++ {
		// pairs share a timestamp to exercise the id tie-break
		seedCampaign(t, s, fmt.Sprintf("c%02d", i), "b1", base.Add(time.Duration(i/2)*time.Minute))
	}
	seedCampaign(t, s, "other", "b2", base)
	seedCampaign(t, s, "gone", "b1", base)
	ok, err := s.SoftDeleteCampaign(ctx, "gone")
	require.NoError(t, err)
	require.True(t, ok)

	filter := domain.CampaignFilter{BrandID: "b1"}
	pageSize := 5
	seen := map[string]bool{}
	var total int64
	for page := 1; ; page++ {
		items, n, err := s.ListCampaigns(ctx, filter, domain.PageRequest{Page: page, PageSize: pageSize})
		require.NoError(t, err)
		total = n
		if page > domain.TotalPages(n, pageSize) {
			assert.Empty(t, items)
			break
		}
		for _, c := range items {
			assert.False(t, seen[c.ID], "duplicate %s", c.ID)
			seen[c.ID] = true
		}
	}
	assert.Equal(t, int64(23), total)
	assert.Len(t, seen, 23)
	assert.False(t, seen["gone"])
	assert.False(t, seen["other"])

	first, _, err := s.ListCampaigns(ctx, filter, domain.PageRequest{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"c22", "c20"}, []string{first[0].ID, first[1].ID})
}

func TestSearchInfluencersFilters(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	profiles := []domain.Influencer{
		{ID: "1", Username: "TechTunde", PrimaryNiche: "tech", SecondaryNiche: "gaming", Country: "NG", CreatedAt: base},
		{ID: "2", Username: "tunde_eats", PrimaryNiche: "food", SecondaryNiche: "travel", Country: "NG", CreatedAt: base.Add(time.Minute)},
		{ID: "3", Username: "ama.codes", PrimaryNiche: "tech", SecondaryNiche: "education", Country: "GH", CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, p := range profiles {
		require.NoError(t, s.UpsertInfluencer(ctx, p))
	}

	ids := func(f domain.InfluencerFilter) []string {
		items, _, err := s.SearchInfluencers(ctx, f, domain.PageRequest{})
		require.NoError(t, err)
		out := []string{}
		for _, it := range items {
			out = append(out, it.ID)
		}
		return out
	}
	assert.Equal(t, []string{"1", "2", "3"}, ids(domain.InfluencerFilter{}))
	assert.Equal(t, []string{"1", "2"}, ids(domain.InfluencerFilter{Username: "TUNDE"}))
	assert.Equal(t, []string{"1"}, ids(domain.InfluencerFilter{Username: "tunde", PrimaryNiche: "Tech"}))
	assert.Equal(t, []string{"3"}, ids(domain.InfluencerFilter{Country: "gh"}))
	assert.Equal(t, []string{}, ids(domain.InfluencerFilter{SecondaryNiche: "music"}))

	// re-projecting a profile keeps its position
	require.NoError(t, s.UpsertInfluencer(ctx, domain.Influencer{ID: "1", Username: "tech_tunde", PrimaryNiche: "tech", Country: "NG"}))
	assert.Equal(t, []string{"1", "2", "3"}, ids(domain.InfluencerFilter{}))
}

func TestListByInfluencerRestartable(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.CreateApplication(ctx, domain.Application{CampaignID: "a", InfluencerID: "i1", Decision: domain.DecisionPending, SubmittedAt: base}))
	require.NoError(t, s.CreateApplication(ctx, domain.Application{CampaignID: "b", InfluencerID: "i1", Decision: domain.DecisionAccepted, SubmittedAt: base.Add(time.Hour)}))
	require.NoError(t, s.CreateApplication(ctx, domain.Application{CampaignID: "c", InfluencerID: "i2", Decision: domain.DecisionPending, SubmittedAt: base}))

	seq := s.ListByInfluencer(ctx, "i1", false)
	collect := func() []string {
		var out []string
		for a, err := range seq {
			require.NoError(t, err)
			out = append(out, a.CampaignID)
		}
		return out
	}
	assert.Equal(t, []string{"b", "a"}, collect())

	require.NoError(t, s.CreateApplication(ctx, domain.Application{CampaignID: "d", InfluencerID: "i1", Decision: domain.DecisionPending, SubmittedAt: base.Add(2 * time.Hour)}))
	assert.Equal(t, []string{"d", "b", "a"}, collect())

	var accepted []string
	for a, err := range s.ListByInfluencer(ctx, "i1", true) {
		require.NoError(t, err)
		accepted = append(accepted, a.CampaignID)
	}
	assert.Equal(t, []string{"b"}, accepted)
}
