package entities

import "time"

// Influencer is a creator profile, provisioned on first session start.
type Influencer struct {
	ID          uint
	UserID      string // opaque identifier from the hosted auth provider
	DisplayName string
	Email       string
	AvatarURL   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
