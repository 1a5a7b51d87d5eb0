package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"collabhub/internal/adapter/memory"
	"collabhub/internal/core/domain"
	"collabhub/internal/core/port/mocks"
)

func TestCreateCampaignValidationWritesNothing(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	u := NewCampaignUseCase(repo, discard, Options{})

	in := campaignInput()
	in.Budget = 2_000_000
	in.PrimaryGoals = nil
	_, err := u.CreateCampaign(context.Background(), "brand-1", in)

	var derr *domain.Error
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, domain.KindValidation, derr.Kind)
	assert.Len(t, derr.Fields, 2)
	repo.AssertNotCalled(t, "CreateCampaign", mock.Anything, mock.Anything)
}

func TestCreateCampaignNormalizes(t *testing.T) {
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	repo := mocks.NewMockCampaignRepository(t)
	u := NewCampaignUseCase(repo, discard, Options{Now: func() time.Time { return now }})

	in := campaignInput()
	in.Title = "  Glow  "
	in.PrimaryGoals = []string{"awareness", " awareness ", ""}
	in.EndDate = now.Add(time.Hour)

	repo.EXPECT().
		CreateCampaign(mock.Anything, mock.MatchedBy(func(c domain.Campaign) bool {
			return c.BrandID == "brand-1" &&
				c.Title == "Glow" &&
				c.Status == domain.CampaignPending &&
				len(c.PrimaryGoals) == 1 &&
				c.StartDate.Equal(now) &&
				c.ID != ""
		})).
		Return(nil).
		Once()

	c, err := u.CreateCampaign(context.Background(), "brand-1", in)
	require.NoError(t, err)
	assert.Equal(t, now, c.CreatedAt)
	assert.Empty(t, c.MemberInfluencerIDs)
}

func TestCampaignLifecycle(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	u := NewCampaignUseCase(store, discard, Options{})
	owner := domain.Actor{ID: "brand-1", Role: domain.RoleBrand}
	other := domain.Actor{ID: "brand-2", Role: domain.RoleBrand}

	c, err := u.CreateCampaign(ctx, owner.ID, campaignInput())
	require.NoError(t, err)

	_, err = u.ActivateCampaign(ctx, c.ID, other)
	assert.True(t, errors.Is(err, domain.ErrForbidden))

	active, err := u.ActivateCampaign(ctx, c.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignActive, active.Status)

	_, err = u.ActivateCampaign(ctx, c.ID, owner)
	assert.True(t, errors.Is(err, domain.ErrInvalidState))

	done, err := u.CompleteCampaign(ctx, c.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignCompleted, done.Status)

	_, err = u.CompleteCampaign(ctx, c.ID, owner)
	assert.True(t, errors.Is(err, domain.ErrInvalidState))

	assert.True(t, errors.Is(u.DeleteCampaign(ctx, c.ID, other), domain.ErrForbidden))
	require.NoError(t, u.DeleteCampaign(ctx, c.ID, owner))
	_, err = u.GetCampaign(ctx, c.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.True(t, errors.Is(u.DeleteCampaign(ctx, c.ID, owner), domain.ErrNotFound))
}

func TestTransitionLostRace(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	u := NewCampaignUseCase(repo, discard, Options{})
	c := &domain.Campaign{ID: "c1", BrandID: "brand-1", Status: domain.CampaignPending}

	repo.EXPECT().GetCampaign(mock.Anything, "c1").Return(c, nil).Once()
	repo.EXPECT().CompareAndSetStatus(mock.Anything, "c1", domain.CampaignPending, domain.CampaignActive).Return(false, nil).Once()

	_, err := u.ActivateCampaign(context.Background(), "c1", domain.Actor{ID: "brand-1", Role: domain.RoleBrand})
	assert.True(t, errors.Is(err, domain.ErrInvalidState))
}
