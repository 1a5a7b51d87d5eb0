package domain

import "time"

// Influencer is the discovery projection of an influencer profile. Profiles
// themselves are owned by the profile service.
type Influencer struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	PrimaryNiche   string    `json:"primaryNiche"`
	SecondaryNiche string    `json:"secondaryNiche"`
	Country        string    `json:"country"`
	CreatedAt      time.Time `json:"createdAt"`
}

// InfluencerFilter holds optional search criteria. Set fields are combined
// with AND. Username matches as a case-insensitive substring, the remaining
// fields as case-insensitive equality.
type InfluencerFilter struct {
	Username       string
	PrimaryNiche   string
	SecondaryNiche string
	Country        string
}
