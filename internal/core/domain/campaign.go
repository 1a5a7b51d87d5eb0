package domain

import (
	"slices"
	"time"
)

// MaxBudget is the upper bound accepted for a campaign budget.
const MaxBudget = 1_000_000

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignPending   CampaignStatus = "pending"
	CampaignActive    CampaignStatus = "active"
	CampaignCompleted CampaignStatus = "completed"
)

// Valid reports whether s is a known status.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignPending, CampaignActive, CampaignCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether a lifecycle call may move a campaign from
// s to next.
func (s CampaignStatus) CanTransitionTo(next CampaignStatus) bool {
	switch s {
	case CampaignPending:
		return next == CampaignActive || next == CampaignCompleted
	case CampaignActive:
		return next == CampaignCompleted
	}
	return false
}

// ReportFrequency is how often a brand wants tracking reports.
type ReportFrequency string

const (
	ReportDaily    ReportFrequency = "daily"
	ReportWeekly   ReportFrequency = "weekly"
	ReportBiweekly ReportFrequency = "biweekly"
	ReportMonthly  ReportFrequency = "monthly"
)

func (f ReportFrequency) Valid() bool {
	switch f {
	case ReportDaily, ReportWeekly, ReportBiweekly, ReportMonthly:
		return true
	}
	return false
}

// Collaboration describes how the brand wants to work with influencers.
type Collaboration struct {
	PreviousCollaborations bool     `json:"previousCollaborations"`
	ExclusiveContent       bool     `json:"exclusiveContent"`
	Type                   string   `json:"type"`
	Styles                 []string `json:"styles"`
}

// Tracking holds reporting preferences.
type Tracking struct {
	ReportFrequency     ReportFrequency `json:"reportFrequency"`
	PerformanceTracking bool            `json:"performanceTracking"`
}

// Campaign is a brand-authored marketing engagement influencers apply to.
// BrandID never changes after creation. MemberInfluencerIDs is sorted and
// free of duplicates; only an accept decision adds to it.
type Campaign struct {
	ID                  string         `json:"id"`
	BrandID             string         `json:"brandId"`
	Title               string         `json:"title"`
	StartDate           time.Time      `json:"startDate"`
	EndDate             time.Time      `json:"endDate"`
	Budget              float64        `json:"budget"`
	TargetAudience      string         `json:"targetAudience"`
	GeographicFocus     string         `json:"geographicFocus"`
	InfluencerType      string         `json:"influencerType"`
	PrimaryGoals        []string       `json:"primaryGoals"`
	Collaboration       Collaboration  `json:"collaboration"`
	Tracking            Tracking       `json:"tracking"`
	Status              CampaignStatus `json:"status"`
	MemberInfluencerIDs []string       `json:"memberInfluencerIds"`
	IsDeleted           bool           `json:"-"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
}

// HasMember reports whether influencerID has been accepted into c.
func (c *Campaign) HasMember(influencerID string) bool {
	_, found := slices.BinarySearch(c.MemberInfluencerIDs, influencerID)
	return found
}

// OwnedBy reports whether brandID owns the campaign.
func (c *Campaign) OwnedBy(brandID string) bool {
	return brandID != "" && c.BrandID == brandID
}

// CampaignInput carries the brand-supplied fields of a new campaign.
type CampaignInput struct {
	Title           string        `json:"title"`
	StartDate       time.Time     `json:"startDate"`
	EndDate         time.Time     `json:"endDate"`
	Budget          float64       `json:"budget"`
	TargetAudience  string        `json:"targetAudience"`
	GeographicFocus string        `json:"geographicFocus"`
	InfluencerType  string        `json:"influencerType"`
	PrimaryGoals    []string      `json:"primaryGoals"`
	Collaboration   Collaboration `json:"collaboration"`
	Tracking        Tracking      `json:"tracking"`
}

// CampaignFilter narrows campaign listings. Deleted campaigns are always
// excluded.
type CampaignFilter struct {
	BrandID string
	Status  CampaignStatus
}
