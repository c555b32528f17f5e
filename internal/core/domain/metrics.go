package domain

import "time"

// Provenance of the per-conversion value used for ROI. A derived value
// comes from the offer's product price and commission payout; the
// estimated value is the fixed fallback applied when pricing fields are
// missing or unparsable. Downstream reporting can filter on this tag
// instead of trusting every ROI figure equally.
const (
	ConversionValueDerived   = "derived"
	ConversionValueEstimated = "estimated"
)

// DefaultConversionValue is the fallback value of a single conversion,
// in the campaign's currency, used when the owning offer carries no
// parsable pricing.
const DefaultConversionValue = 50.0

// CampaignMetrics is a snapshot of one campaign's trailing-window
// performance. All ratios are precomputed by the caller with
// zero-denominator guards; rule evaluation only reads them and never
// divides.
type CampaignMetrics struct {
	CampaignID   int64   `json:"campaignId"`
	CampaignName string  `json:"campaignName"`
	Status       string  `json:"status"`
	Impressions  int64   `json:"impressions"`
	Clicks       int64   `json:"clicks"`
	Cost         float64 `json:"cost"`
	Conversions  int64   `json:"conversions"`
	CTR          float64 `json:"ctr"`
	CPC          float64 `json:"cpc"`
	CPA          float64 `json:"cpa"`
	ConvRate     float64 `json:"conversionRate"`
	ROI          float64 `json:"roi"`
	DaysRunning  int     `json:"daysRunning"`

	// ConversionValue is the per-conversion value used to compute ROI,
	// tagged with its provenance (derived vs estimated).
	ConversionValue       float64 `json:"conversionValue"`
	ConversionValueSource string  `json:"conversionValueSource"`
}

// MetricsSnapshot is the structured record persisted with every task at
// generation time. It is immutable after insert; stored historical
// snapshots must remain readable, so fields are only ever added.
type MetricsSnapshot struct {
	Impressions           int64     `json:"impressions"`
	Clicks                int64     `json:"clicks"`
	Cost                  float64   `json:"cost"`
	Conversions           int64     `json:"conversions"`
	CTR                   float64   `json:"ctr"`
	CPC                   float64   `json:"cpc"`
	ConvRate              float64   `json:"conversionRate"`
	ROI                   float64   `json:"roi"`
	DaysRunning           int       `json:"daysRunning"`
	ConversionValueSource string    `json:"conversionValueSource,omitempty"`
	SnapshotDate          time.Time `json:"snapshotDate"`
}

// Snapshot captures the metrics into the persistent snapshot record.
func (m CampaignMetrics) Snapshot(at time.Time) MetricsSnapshot {
	return MetricsSnapshot{
		Impressions:           m.Impressions,
		Clicks:                m.Clicks,
		Cost:                  m.Cost,
		Conversions:           m.Conversions,
		CTR:                   m.CTR,
		CPC:                   m.CPC,
		ConvRate:              m.ConvRate,
		ROI:                   m.ROI,
		DaysRunning:           m.DaysRunning,
		ConversionValueSource: m.ConversionValueSource,
		SnapshotDate:          at,
	}
}
