package domain

import "time"

// PerformanceTotals are the raw volume counters aggregated over a date
// range of campaign_performance rows. Zero-valued when no rows exist
// for the range.
type PerformanceTotals struct {
	Impressions int64
	Clicks      int64
	Cost        float64
	Conversions int64
}

// PerformanceRow is one day of reported performance for a campaign, as
// delivered by the ads platform sync. The optimizer only ever reads
// aggregates of these rows; it never writes them.
type PerformanceRow struct {
	CampaignID  int64     `json:"campaign_id"`
	UserID      int64     `json:"user_id"`
	Date        time.Time `json:"date"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	Cost        float64   `json:"cost"`
	Conversions int64     `json:"conversions"`
}
