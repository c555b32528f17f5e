package rules

import (
	"fmt"
	"sort"
	"sync/atomic"

	"adpilot/internal/core/domain"
)

// minImpressions is the global sample-size gate: campaigns with fewer
// impressions produce no recommendations from any rule.
const minImpressions = 10

// Engine evaluates the fixed battery of optimization rules against
// campaign metrics. Evaluation is pure and side-effect free; the
// active Config is held behind an atomic pointer so concurrent
// evaluations always read one coherent snapshot while UpdateConfig
// swaps in a new one.
type Engine struct {
	cfg atomic.Pointer[Config]
}

// NewEngine returns an engine with the default configuration,
// optionally adjusted by patches.
func NewEngine(patches ...ConfigPatch) *Engine {
	cfg := DefaultConfig()
	for _, p := range patches {
		cfg = p.apply(cfg)
	}
	e := &Engine{}
	e.cfg.Store(&cfg)
	return e
}

// UpdateConfig merges the patch into the current configuration.
// Replacement is per whole rule entry, not per field.
func (e *Engine) UpdateConfig(p ConfigPatch) {
	for {
		old := e.cfg.Load()
		next := p.apply(*old)
		if e.cfg.CompareAndSwap(old, &next) {
			return
		}
	}
}

// Config returns a copy of the active configuration.
func (e *Engine) Config() Config {
	return *e.cfg.Load()
}

// GenerateRecommendations runs all rules against one campaign in fixed
// order and returns the triggered ones, unsorted. Degenerate input
// (all zeros) simply fails every comparison and yields nothing.
func (e *Engine) GenerateRecommendations(m domain.CampaignMetrics) []domain.Recommendation {
	cfg := e.cfg.Load()

	var recs []domain.Recommendation
	if m.Impressions < minImpressions {
		return recs
	}

	checks := []func(*Config, domain.CampaignMetrics) *domain.Recommendation{
		checkCTRLow,
		checkConversionRateLow,
		checkCPCHigh,
		checkCostHighNoConversion,
		checkROINegative,
		checkROIHigh,
		checkCTRHigh,
		checkImpressionsLow,
		checkNewCampaign,
	}
	for _, check := range checks {
		if rec := check(cfg, m); rec != nil {
			recs = append(recs, *rec)
		}
	}
	return recs
}

// GenerateBatchRecommendations evaluates every campaign and returns the
// concatenated results sorted by priority, high first. The sort is
// stable: ties keep their relative input order.
func (e *Engine) GenerateBatchRecommendations(campaigns []domain.CampaignMetrics) []domain.Recommendation {
	var all []domain.Recommendation
	for _, m := range campaigns {
		all = append(all, e.GenerateRecommendations(m)...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Priority.Rank() < all[j].Priority.Rank()
	})
	return all
}

// Rule 1: low CTR. With enough clicks to trust the ratio, a CTR under
// the scaled threshold asks for a creative rework; under half the
// threshold it asks for a pause.
func checkCTRLow(cfg *Config, m domain.CampaignMetrics) *domain.Recommendation {
	if !cfg.CTRLow.Enabled {
		return nil
	}
	threshold := cfg.CTRLow.scaled()
	if m.Clicks < 50 || m.CTR >= threshold {
		return nil
	}

	action := domain.ActionOptimizeCreative
	advice := "Optimize the ad creatives, testing different headlines and descriptions"
	if m.CTR < threshold*0.5 {
		action = domain.ActionPauseCampaign
		advice = "Pause the campaign and rework creatives and keywords before relaunching"
	}
	return &domain.Recommendation{
		CampaignID:   m.CampaignID,
		CampaignName: m.CampaignName,
		Priority:     domain.PriorityHigh,
		Type:         action,
		Reason: fmt.Sprintf("CTR is too low (%.2f%%), far below the industry average (%.1f%%)",
			m.CTR*100, benchmarkCTR*100),
		Action:         advice,
		ExpectedImpact: "Expected to lift CTR above 2% and bring CPC down",
		Metrics: domain.RecommendationMetrics{
			Current: map[string]float64{"ctr": m.CTR, "clicks": float64(m.Clicks)},
			Target:  map[string]float64{"ctr": benchmarkCTR},
		},
	}
}

// Rule 2: low conversion rate.
func checkConversionRateLow(cfg *Config, m domain.CampaignMetrics) *domain.Recommendation {
	if !cfg.ConversionRateLow.Enabled {
		return nil
	}
	threshold := cfg.ConversionRateLow.scaled()
	if m.Clicks < 20 || m.ConvRate >= threshold {
		return nil
	}
	return &domain.Recommendation{
		CampaignID:   m.CampaignID,
		CampaignName: m.CampaignName,
		Priority:     domain.PriorityMedium,
		Type:         domain.ActionImproveLandingPage,
		Reason: fmt.Sprintf("Conversion rate is too low (%.2f%%), below the industry average (%.1f%%)",
			m.ConvRate*100, benchmarkConversionRate*100),
		Action:         "Improve the landing page experience, CTA buttons and the conversion flow",
		ExpectedImpact: "Expected to lift conversion rate above 3% and lower CPA",
		Metrics: domain.RecommendationMetrics{
			Current: map[string]float64{"conversionRate": m.ConvRate, "conversions": float64(m.Conversions)},
			Target:  map[string]float64{"conversionRate": benchmarkConversionRate},
		},
	}
}

// Rule 3: high CPC.
func checkCPCHigh(cfg *Config, m domain.CampaignMetrics) *domain.Recommendation {
	if !cfg.CPCHigh.Enabled {
		return nil
	}
	threshold := cfg.CPCHigh.scaled()
	if m.Clicks < 10 || m.CPC <= threshold {
		return nil
	}
	return &domain.Recommendation{
		CampaignID:   m.CampaignID,
		CampaignName: m.CampaignName,
		Priority:     domain.PriorityMedium,
		Type:         domain.ActionLowerCPC,
		Reason: fmt.Sprintf("CPC is too high ($%.2f), above the industry average ($%.2f)",
			m.CPC, benchmarkCPC),
		Action: "Lower the maximum CPC bid, or tighten keyword match types to PHRASE/EXACT",
		ExpectedImpact: fmt.Sprintf("Expected to bring CPC down to $%.2f, saving %.0f%% of spend",
			benchmarkCPC, (m.CPC-benchmarkCPC)/m.CPC*100),
		Metrics: domain.RecommendationMetrics{
			Current: map[string]float64{"cpc": m.CPC, "cost": m.Cost},
			Target:  map[string]float64{"cpc": benchmarkCPC},
		},
	}
}

// Rule 4: high spend with zero conversions. No per-rule volume gate
// beyond the global one.
func checkCostHighNoConversion(cfg *Config, m domain.CampaignMetrics) *domain.Recommendation {
	if !cfg.CostHigh.Enabled {
		return nil
	}
	threshold := cfg.CostHigh.scaled()
	if m.Cost <= threshold || m.Conversions != 0 {
		return nil
	}
	return &domain.Recommendation{
		CampaignID:     m.CampaignID,
		CampaignName:   m.CampaignName,
		Priority:       domain.PriorityHigh,
		Type:           domain.ActionPauseCampaign,
		Reason:         fmt.Sprintf("Spent $%.2f without a single conversion", m.Cost),
		Action:         "Pause immediately and re-evaluate keyword targeting, audience match and landing page quality",
		ExpectedImpact: "Stops further budget waste; relaunch after the campaign is reworked",
		Metrics: domain.RecommendationMetrics{
			Current: map[string]float64{"cost": m.Cost, "conversions": float64(m.Conversions)},
		},
	}
}

// Rule 5: negative ROI. The threshold is fixed at zero, so sensitivity
// scaling has no effect here.
func checkROINegative(cfg *Config, m domain.CampaignMetrics) *domain.Recommendation {
	if !cfg.ROINegative.Enabled {
		return nil
	}
	if m.Conversions <= 0 || m.ROI >= 0 {
		return nil
	}
	return &domain.Recommendation{
		CampaignID:     m.CampaignID,
		CampaignName:   m.CampaignName,
		Priority:       domain.PriorityHigh,
		Type:           domain.ActionDecreaseBudget,
		Reason:         fmt.Sprintf("ROI is negative (%.0f%%), spend is not paying back", m.ROI*100),
		Action:         "Cut the budget by 50%, while improving conversion rate and lowering CPC",
		ExpectedImpact: "Reduces losses; positive ROI expected after adjustment",
		Metrics: domain.RecommendationMetrics{
			Current: map[string]float64{"roi": m.ROI, "cost": m.Cost, "conversions": float64(m.Conversions)},
		},
	}
}

// Rule 6: high ROI.
func checkROIHigh(cfg *Config, m domain.CampaignMetrics) *domain.Recommendation {
	if !cfg.ROIHigh.Enabled {
		return nil
	}
	threshold := cfg.ROIHigh.scaled()
	if m.Conversions < 5 || m.ROI <= threshold {
		return nil
	}
	return &domain.Recommendation{
		CampaignID:   m.CampaignID,
		CampaignName: m.CampaignName,
		Priority:     domain.PriorityLow,
		Type:         domain.ActionIncreaseBudget,
		Reason: fmt.Sprintf("ROI is excellent (%.0f%%), well above the industry average (%.0f%%)",
			m.ROI*100, benchmarkROI*100),
		Action: "Raise the budget to 150% to capture more of this quality traffic",
		ExpectedImpact: fmt.Sprintf("Expected to add roughly %.0f conversions while keeping ROI high",
			float64(m.Conversions)*0.5),
		Metrics: domain.RecommendationMetrics{
			Current: map[string]float64{"roi": m.ROI, "cost": m.Cost, "conversions": float64(m.Conversions)},
			Target:  map[string]float64{"cost": m.Cost * 1.5},
		},
	}
}

// Rule 7: high CTR on a converting campaign.
func checkCTRHigh(cfg *Config, m domain.CampaignMetrics) *domain.Recommendation {
	if !cfg.CTRHigh.Enabled {
		return nil
	}
	threshold := cfg.CTRHigh.scaled()
	if m.Clicks < 50 || m.CTR <= threshold || m.Conversions <= 0 {
		return nil
	}
	return &domain.Recommendation{
		CampaignID:   m.CampaignID,
		CampaignName: m.CampaignName,
		Priority:     domain.PriorityLow,
		Type:         domain.ActionIncreaseBudget,
		Reason: fmt.Sprintf("CTR is excellent (%.2f%%), far above the industry average",
			m.CTR*100),
		Action:         "Increase the budget and work on conversion rate to lift overall ROI",
		ExpectedImpact: "Expected to grow impressions and clicks, expanding brand exposure",
		Metrics: domain.RecommendationMetrics{
			Current: map[string]float64{"ctr": m.CTR, "clicks": float64(m.Clicks)},
		},
	}
}

// Rule 8: low impressions after the campaign has had time to deliver.
func checkImpressionsLow(cfg *Config, m domain.CampaignMetrics) *domain.Recommendation {
	if !cfg.ImpressionsLow.Enabled {
		return nil
	}
	threshold := cfg.ImpressionsLow.scaled()
	if m.DaysRunning < 3 || float64(m.Impressions) >= threshold {
		return nil
	}
	return &domain.Recommendation{
		CampaignID:   m.CampaignID,
		CampaignName: m.CampaignName,
		Priority:     domain.PriorityMedium,
		Type:         domain.ActionExpandTargeting,
		Reason: fmt.Sprintf("Impressions are too low (%d) after %d days running",
			m.Impressions, m.DaysRunning),
		Action:         "Broaden the keyword list, add BROAD match types, or raise bids",
		ExpectedImpact: "Expected to lift impressions above 1000 per day",
		Metrics: domain.RecommendationMetrics{
			Current: map[string]float64{"impressions": float64(m.Impressions), "daysRunning": float64(m.DaysRunning)},
		},
	}
}

// Rule 9: new-campaign observation window. Always on; no threshold.
func checkNewCampaign(_ *Config, m domain.CampaignMetrics) *domain.Recommendation {
	if m.DaysRunning > 3 || m.Impressions < minImpressions {
		return nil
	}
	return &domain.Recommendation{
		CampaignID:     m.CampaignID,
		CampaignName:   m.CampaignName,
		Priority:       domain.PriorityLow,
		Type:           domain.ActionOptimizeCreative,
		Reason:         fmt.Sprintf("New campaign is in its observation window (%d days running)", m.DaysRunning),
		Action:         "Keep observing for 3-7 days and collect more data before optimizing",
		ExpectedImpact: "Enough data enables more accurate optimization decisions",
		Metrics: domain.RecommendationMetrics{
			Current: map[string]float64{"daysRunning": float64(m.DaysRunning), "impressions": float64(m.Impressions)},
		},
	}
}
