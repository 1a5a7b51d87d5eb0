package domain

import (
	"math"
	"strings"
	"time"
)

// ValidateCampaign checks a campaign input against the creation rules and
// returns every violated field at once. now is the creation instant.
func ValidateCampaign(in CampaignInput, now time.Time) error {
	var errs ValidationErrors
	if strings.TrimSpace(in.Title) == "" {
		errs.Add("title", "is required")
	}
	switch {
	case in.EndDate.IsZero():
		errs.Add("endDate", "is required")
	case !in.EndDate.After(now):
		errs.Add("endDate", "must be in the future")
	}
	if !in.StartDate.IsZero() && !in.EndDate.IsZero() && in.StartDate.After(in.EndDate) {
		errs.Add("startDate", "must not be after endDate")
	}
	switch {
	case math.IsNaN(in.Budget) || math.IsInf(in.Budget, 0) || in.Budget <= 0:
		errs.Add("budget", "must be a positive number")
	case in.Budget > MaxBudget:
		errs.Add("budget", "must not exceed %d", MaxBudget)
	}
	if strings.TrimSpace(in.TargetAudience) == "" {
		errs.Add("targetAudience", "is required")
	}
	if strings.TrimSpace(in.GeographicFocus) == "" {
		errs.Add("geographicFocus", "is required")
	}
	if strings.TrimSpace(in.InfluencerType) == "" {
		errs.Add("influencerType", "is required")
	}
	if !nonBlankSet(in.PrimaryGoals) {
		errs.Add("primaryGoals", "must contain at least one goal")
	}
	if strings.TrimSpace(in.Collaboration.Type) == "" {
		errs.Add("collaboration.type", "is required")
	}
	if !nonBlankSet(in.Collaboration.Styles) {
		errs.Add("collaboration.styles", "must contain at least one style")
	}
	if !in.Tracking.ReportFrequency.Valid() {
		errs.Add("tracking.reportFrequency", "must be one of daily, weekly, biweekly, monthly")
	}
	return errs.Err()
}

// ValidateApplication checks a submission payload. Identity fields come from
// the caller; offer and message from the influencer.
func ValidateApplication(in ApplicationInput) error {
	var errs ValidationErrors
	if strings.TrimSpace(in.CampaignID) == "" {
		errs.Add("campaignId", "is required")
	}
	if strings.TrimSpace(in.InfluencerID) == "" {
		errs.Add("influencerId", "is required")
	}
	if math.IsNaN(in.Offer) || math.IsInf(in.Offer, 0) || in.Offer < 0 {
		errs.Add("offer", "must be zero or greater")
	}
	if strings.TrimSpace(in.Message) == "" {
		errs.Add("message", "is required")
	}
	return errs.Err()
}

// NormalizeSet trims entries, drops blanks and duplicates and keeps the
// first-seen order.
func NormalizeSet(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func nonBlankSet(in []string) bool {
	return len(NormalizeSet(in)) > 0
}
