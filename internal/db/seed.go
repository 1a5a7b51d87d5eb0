package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"collabhub/internal/core/domain"
	"collabhub/internal/core/port"
)

// Seed fills the stores with demo influencers and campaigns. It goes through
// the store ports so it works for every driver. Influencer ids are stable,
// so reseeding updates them in place; campaigns are added each run.
func Seed(ctx context.Context, influencers port.InfluencerRepository, campaigns port.CampaignRepository) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	niches := []string{"fashion", "tech", "fitness", "food", "travel", "gaming"}
	countries := []string{"US", "GB", "NG", "DE", "BR"}
	for i := 1; i <= 30; i++ {
		inf := domain.Influencer{
			ID:             fmt.Sprintf("influencer-%d", i),
			Username:       fmt.Sprintf("creator_%02d", i),
			PrimaryNiche:   niches[r.Intn(len(niches))],
			SecondaryNiche: niches[r.Intn(len(niches))],
			Country:        countries[r.Intn(len(countries))],
			CreatedAt:      now.Add(time.Duration(i) * time.Minute),
		}
		if err := influencers.UpsertInfluencer(ctx, inf); err != nil {
			return fmt.Errorf("seed influencer %s: %w", inf.ID, err)
		}
	}

	for i := 1; i <= 5; i++ {
		c := domain.Campaign{
			ID:              uuid.NewString(),
			BrandID:         fmt.Sprintf("brand-%d", (i-1)%2+1),
			Title:           fmt.Sprintf("Campaign %d", i),
			StartDate:       now.AddDate(0, 0, -1),
			EndDate:         now.AddDate(0, 1, 0),
			Budget:          float64(1000 * (r.Intn(50) + 1)),
			TargetAudience:  "18-34",
			GeographicFocus: countries[r.Intn(len(countries))],
			InfluencerType:  []string{"nano", "micro", "macro"}[r.Intn(3)],
			PrimaryGoals:    []string{"awareness", "engagement"},
			Collaboration: domain.Collaboration{
				Type:   "sponsored-post",
				Styles: []string{"review", "unboxing"},
			},
			Tracking: domain.Tracking{
				ReportFrequency:     domain.ReportWeekly,
				PerformanceTracking: true,
			},
			Status:              domain.CampaignPending,
			MemberInfluencerIDs: []string{},
			CreatedAt:           now.Add(time.Duration(i) * time.Second),
			UpdatedAt:           now,
		}
		if err := campaigns.CreateCampaign(ctx, c); err != nil {
			return fmt.Errorf("seed campaign %d: %w", i, err)
		}
	}
	return nil
}
