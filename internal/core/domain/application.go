package domain

import "time"

// Decision is the brand's verdict state on an application. Once it leaves
// DecisionPending it never changes again.
type Decision string

const (
	DecisionPending  Decision = "pending"
	DecisionAccepted Decision = "accepted"
	DecisionRejected Decision = "rejected"
)

func (d Decision) Valid() bool {
	switch d {
	case DecisionPending, DecisionAccepted, DecisionRejected:
		return true
	}
	return false
}

// Terminal reports whether d is a final decision.
func (d Decision) Terminal() bool {
	return d == DecisionAccepted || d == DecisionRejected
}

// Verdict is what a brand submits when deciding an application.
type Verdict string

const (
	VerdictAccept Verdict = "accept"
	VerdictReject Verdict = "reject"
)

// Decision maps the verdict to the resulting decision. ok is false for an
// unknown verdict.
func (v Verdict) Decision() (d Decision, ok bool) {
	switch v {
	case VerdictAccept:
		return DecisionAccepted, true
	case VerdictReject:
		return DecisionRejected, true
	}
	return "", false
}

// ListMode selects which applications an influencer listing returns.
type ListMode string

const (
	// ListApplied returns every application regardless of decision.
	ListApplied ListMode = "applied"
	// ListRegistered returns only accepted applications.
	ListRegistered ListMode = "registered"
)

func (m ListMode) Valid() bool {
	return m == ListApplied || m == ListRegistered
}

// Application is one influencer's request to join one campaign. The pair
// (CampaignID, InfluencerID) identifies it.
type Application struct {
	CampaignID   string     `json:"campaignId"`
	InfluencerID string     `json:"influencerId"`
	Offer        float64    `json:"offer"`
	Message      string     `json:"message"`
	Decision     Decision   `json:"decision"`
	SubmittedAt  time.Time  `json:"submittedAt"`
	DecidedAt    *time.Time `json:"decidedAt,omitempty"`
}

// ApplicationInput is the payload of a submission.
type ApplicationInput struct {
	CampaignID   string  `json:"campaignId"`
	InfluencerID string  `json:"influencerId"`
	Offer        float64 `json:"offer"`
	Message      string  `json:"message"`
}
