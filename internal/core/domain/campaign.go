package domain

import "time"

// Campaign statuses eligible for optimization. Campaigns in any other
// status (ENDED, REMOVED, ...) are skipped by the task generator.
const (
	CampaignStatusEnabled = "ENABLED"
	CampaignStatusPaused  = "PAUSED"
)

// Campaign is the slice of an advertising campaign the optimizer needs:
// identity, lifecycle status and the owning offer's pricing fields used
// to derive a per-conversion value. ProductPrice and CommissionPayout
// are raw strings as entered by the user (e.g. "$49.99", "70%") and may
// be absent when the campaign has no linked offer.
type Campaign struct {
	ID               int64
	UserID           int64
	Name             string
	Status           string
	CreatedAt        time.Time
	ProductPrice     *string
	CommissionPayout *string
}
