package models

import "time"

// Business verticals supported by the platform.
const (
	VerticalMassage = "massage"
	VerticalDental  = "dental"
	VerticalBeauty  = "beauty"
)

// Business is a tenant on the platform, managed by superadmins.
type Business struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Vertical    string    `bson:"vertical" json:"vertical"` // massage | dental | beauty
	PricingTier string    `bson:"pricing_tier" json:"pricing_tier"`
	Currency    string    `bson:"currency" json:"currency"`
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// KnownVertical reports whether v is one of the supported verticals.
func KnownVertical(v string) bool {
	switch v {
	case VerticalMassage, VerticalDental, VerticalBeauty:
		return true
	}
	return false
}
