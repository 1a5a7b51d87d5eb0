package domain

import "time"

// CategoryEventAction is the notification category used for matching
// outcomes.
const CategoryEventAction = "eventAction"

// Notification is the logical event produced by a successful decision.
// Delivery and persistence belong to the notification collaborator.
type Notification struct {
	ID          string    `json:"id"`
	RecipientID string    `json:"recipientId"`
	Category    string    `json:"category"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	SenderID    string    `json:"senderId"`
	CampaignID  string    `json:"campaignId"`
	Timestamp   time.Time `json:"timestamp"`
}
