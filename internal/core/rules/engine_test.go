package rules

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
)

// baseMetrics returns a healthy campaign that triggers no rule; tests
// override the fields they care about.
func baseMetrics() domain.CampaignMetrics {
	return domain.CampaignMetrics{
		CampaignID:   1,
		CampaignName: "Test Campaign",
		Status:       domain.CampaignStatusEnabled,
		Impressions:  1000,
		Clicks:       20,
		Cost:         30,
		Conversions:  1,
		CTR:          0.02,
		CPC:          1.5,
		CPA:          30,
		ConvRate:     0.05,
		ROI:          0.67,
		DaysRunning:  7,
	}
}

func actionTypes(recs []domain.Recommendation) []domain.ActionType {
	types := make([]domain.ActionType, 0, len(recs))
	for _, r := range recs {
		types = append(types, r.Type)
	}
	return types
}

func TestImpressionsGate(t *testing.T) {
	engine := NewEngine()

	// Metrics bad enough to trigger several rules, but under the
	// global gate nothing may fire.
	m := baseMetrics()
	m.Impressions = 9
	m.Clicks = 100
	m.CTR = 0.001
	m.Cost = 500
	m.Conversions = 0
	m.ConvRate = 0

	assert.Empty(t, engine.GenerateRecommendations(m))
}

func TestZeroMetricsProduceNothing(t *testing.T) {
	engine := NewEngine()
	assert.Empty(t, engine.GenerateRecommendations(domain.CampaignMetrics{}))
}

func TestCTRLowPausesVeryLowCTR(t *testing.T) {
	engine := NewEngine()

	m := baseMetrics()
	m.Clicks = 100
	m.Impressions = 50000
	m.CTR = 0.002

	recs := engine.GenerateRecommendations(m)
	require.NotEmpty(t, recs)

	var ctrRec *domain.Recommendation
	for i := range recs {
		if strings.Contains(recs[i].Reason, "CTR is too low") {
			ctrRec = &recs[i]
			break
		}
	}
	require.NotNil(t, ctrRec)
	assert.Equal(t, domain.PriorityHigh, ctrRec.Priority)
	assert.Equal(t, domain.ActionPauseCampaign, ctrRec.Type)
	assert.Contains(t, ctrRec.Reason, "0.20%")
	assert.Contains(t, ctrRec.Reason, "2.0%")
	assert.Equal(t, benchmarkCTR, ctrRec.Metrics.Target["ctr"])
}

func TestCTRLowSuggestsCreativeReworkNearThreshold(t *testing.T) {
	engine := NewEngine()

	m := baseMetrics()
	m.Clicks = 60
	m.Impressions = 10000
	m.CTR = 0.006

	recs := engine.GenerateRecommendations(m)
	var found bool
	for _, r := range recs {
		if r.Type == domain.ActionOptimizeCreative && r.Priority == domain.PriorityHigh {
			found = true
		}
	}
	assert.True(t, found, "expected optimize_creative at high priority, got %v", actionTypes(recs))
}

func TestCTRLowRequiresClickSample(t *testing.T) {
	engine := NewEngine()

	m := baseMetrics()
	m.Clicks = 30
	m.Impressions = 10000
	m.CTR = 0.003

	for _, r := range engine.GenerateRecommendations(m) {
		assert.NotContains(t, r.Reason, "CTR is too low")
	}
}

func TestCostHighNoConversionFiresExactlyOnce(t *testing.T) {
	engine := NewEngine()

	m := baseMetrics()
	m.Clicks = 30 // below the CTR-low sample gate
	m.Cost = 150
	m.Conversions = 0
	m.ConvRate = 0
	m.ROI = 0

	recs := engine.GenerateRecommendations(m)
	var pauses []domain.Recommendation
	for _, r := range recs {
		if r.Type == domain.ActionPauseCampaign {
			pauses = append(pauses, r)
		}
	}
	require.Len(t, pauses, 1)
	assert.Equal(t, domain.PriorityHigh, pauses[0].Priority)
	assert.Contains(t, pauses[0].Reason, "$150.00")
}

func TestHealthyHighPerformerGetsTwoBudgetIncreases(t *testing.T) {
	engine := NewEngine()

	m := baseMetrics()
	m.Conversions = 10
	m.ROI = 1.5
	m.Clicks = 600
	m.Impressions = 10000
	m.CTR = 0.06
	m.Cost = 300
	m.CPC = 0.5
	m.ConvRate = float64(10) / 600

	recs := engine.GenerateRecommendations(m)
	var increases []domain.Recommendation
	for _, r := range recs {
		if r.Type == domain.ActionIncreaseBudget {
			increases = append(increases, r)
		}
	}
	require.Len(t, increases, 2, "ROI-high and CTR-high must both fire, got %v", actionTypes(recs))
	for _, r := range increases {
		assert.Equal(t, domain.PriorityLow, r.Priority)
	}
}

func TestROINegativeRequiresConversions(t *testing.T) {
	engine := NewEngine()

	m := baseMetrics()
	m.ROI = -0.4

	m.Conversions = 0
	m.ConvRate = 0
	for _, r := range engine.GenerateRecommendations(m) {
		assert.NotEqual(t, domain.ActionDecreaseBudget, r.Type)
	}

	m.Conversions = 2
	m.ConvRate = 0.1
	recs := engine.GenerateRecommendations(m)
	var found bool
	for _, r := range recs {
		if r.Type == domain.ActionDecreaseBudget {
			found = true
			assert.Equal(t, domain.PriorityHigh, r.Priority)
		}
	}
	assert.True(t, found)
}

func TestImpressionsLowAndNewCampaignWindows(t *testing.T) {
	engine := NewEngine()

	// Too young for the low-impressions rule, but in the observation
	// window.
	m := baseMetrics()
	m.DaysRunning = 2
	m.Impressions = 50
	m.Clicks = 5
	m.CTR = 0.1
	m.ConvRate = 1

	recs := engine.GenerateRecommendations(m)
	types := actionTypes(recs)
	assert.NotContains(t, types, domain.ActionExpandTargeting)
	assert.Contains(t, types, domain.ActionOptimizeCreative)

	// Past the window, impressions still starved.
	m.DaysRunning = 5
	recs = engine.GenerateRecommendations(m)
	types = actionTypes(recs)
	assert.Contains(t, types, domain.ActionExpandTargeting)
	assert.NotContains(t, types, domain.ActionOptimizeCreative)
}

// TestDisabledRulesNeverFire feeds each rule metrics it would fire on
// and asserts that disabling it removes its action from the output.
func TestDisabledRulesNeverFire(t *testing.T) {
	off := RuleConfig{Enabled: false, Threshold: 0, Sensitivity: SensitivityNormal}

	cases := []struct {
		name    string
		patch   ConfigPatch
		metrics func() domain.CampaignMetrics
		action  domain.ActionType
	}{
		{
			name:  "ctrLow",
			patch: ConfigPatch{CTRLow: &off},
			metrics: func() domain.CampaignMetrics {
				m := baseMetrics()
				m.Clicks, m.CTR = 100, 0.002
				return m
			},
			action: domain.ActionPauseCampaign,
		},
		{
			name:  "conversionRateLow",
			patch: ConfigPatch{ConversionRateLow: &off},
			metrics: func() domain.CampaignMetrics {
				m := baseMetrics()
				m.Clicks, m.Conversions, m.ConvRate = 100, 0, 0
				return m
			},
			action: domain.ActionImproveLandingPage,
		},
		{
			name:  "cpcHigh",
			patch: ConfigPatch{CPCHigh: &off},
			metrics: func() domain.CampaignMetrics {
				m := baseMetrics()
				m.CPC = 5
				return m
			},
			action: domain.ActionLowerCPC,
		},
		{
			name:  "costHigh",
			patch: ConfigPatch{CostHigh: &off},
			metrics: func() domain.CampaignMetrics {
				m := baseMetrics()
				m.Cost, m.Conversions, m.ConvRate = 200, 0, 0
				return m
			},
			action: domain.ActionPauseCampaign,
		},
		{
			name:  "roiNegative",
			patch: ConfigPatch{ROINegative: &off},
			metrics: func() domain.CampaignMetrics {
				m := baseMetrics()
				m.ROI = -0.5
				return m
			},
			action: domain.ActionDecreaseBudget,
		},
		{
			name:  "roiHigh",
			patch: ConfigPatch{ROIHigh: &off},
			metrics: func() domain.CampaignMetrics {
				m := baseMetrics()
				m.Conversions, m.ROI, m.ConvRate = 10, 2, 0.5
				return m
			},
			action: domain.ActionIncreaseBudget,
		},
		{
			name:  "ctrHigh",
			patch: ConfigPatch{CTRHigh: &off},
			metrics: func() domain.CampaignMetrics {
				m := baseMetrics()
				m.Clicks, m.CTR, m.Conversions = 100, 0.08, 2
				return m
			},
			action: domain.ActionIncreaseBudget,
		},
		{
			name:  "impressionsLow",
			patch: ConfigPatch{ImpressionsLow: &off},
			metrics: func() domain.CampaignMetrics {
				m := baseMetrics()
				m.Impressions, m.Clicks, m.CTR = 50, 5, 0.1
				m.ConvRate = 0.2
				return m
			},
			action: domain.ActionExpandTargeting,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			enabled := NewEngine()
			disabled := NewEngine(tc.patch)

			assert.Contains(t, actionTypes(enabled.GenerateRecommendations(tc.metrics())), tc.action,
				"sanity: rule must fire when enabled")
			assert.NotContains(t, actionTypes(disabled.GenerateRecommendations(tc.metrics())), tc.action)
		})
	}
}

// TestSensitivityMonotonicity checks, for the low-is-bad CTR rule, that
// strict triggers on a superset of normal's inputs and relaxed on a
// subset.
func TestSensitivityMonotonicity(t *testing.T) {
	fires := func(sensitivity Sensitivity, ctr float64) bool {
		engine := NewEngine(ConfigPatch{
			CTRLow: &RuleConfig{Enabled: true, Threshold: 0.01, Sensitivity: sensitivity},
		})
		m := baseMetrics()
		m.Clicks = 100
		m.CTR = ctr
		for _, r := range engine.GenerateRecommendations(m) {
			if strings.Contains(r.Reason, "CTR is too low") {
				return true
			}
		}
		return false
	}

	for _, ctr := range []float64{0.002, 0.0075, 0.009, 0.0105, 0.0115, 0.013} {
		if fires(SensitivityNormal, ctr) {
			assert.True(t, fires(SensitivityStrict, ctr),
				"strict must trigger whenever normal does (ctr=%v)", ctr)
		}
		if fires(SensitivityRelaxed, ctr) {
			assert.True(t, fires(SensitivityNormal, ctr),
				"normal must trigger whenever relaxed does (ctr=%v)", ctr)
		}
	}

	// The scaled thresholds are distinct, so some inputs must separate
	// the levels.
	assert.True(t, fires(SensitivityStrict, 0.0115))
	assert.False(t, fires(SensitivityNormal, 0.0115))
	assert.True(t, fires(SensitivityNormal, 0.009))
	assert.False(t, fires(SensitivityRelaxed, 0.009))
}

// TestBatchSortIsStable verifies high < medium < low ordering with
// input order preserved inside each priority band.
func TestBatchSortIsStable(t *testing.T) {
	engine := NewEngine()

	mk := func(id int64, mutate func(*domain.CampaignMetrics)) domain.CampaignMetrics {
		m := baseMetrics()
		m.CampaignID = id
		mutate(&m)
		return m
	}
	campaigns := []domain.CampaignMetrics{
		// low: high ROI performer
		mk(1, func(m *domain.CampaignMetrics) {
			m.Conversions, m.ROI, m.ConvRate = 10, 2, 0.5
		}),
		// high: burner without conversions
		mk(2, func(m *domain.CampaignMetrics) {
			m.Cost, m.Conversions, m.ConvRate, m.Clicks = 200, 0, 0, 15
		}),
		// medium: expensive clicks
		mk(3, func(m *domain.CampaignMetrics) {
			m.CPC = 6
		}),
		// high: another burner, must stay after campaign 2
		mk(4, func(m *domain.CampaignMetrics) {
			m.Cost, m.Conversions, m.ConvRate, m.Clicks = 300, 0, 0, 15
		}),
	}

	recs := engine.GenerateBatchRecommendations(campaigns)
	require.NotEmpty(t, recs)

	lastRank := -1
	for _, r := range recs {
		require.GreaterOrEqual(t, r.Priority.Rank(), lastRank, "priorities must be non-decreasing")
		lastRank = r.Priority.Rank()
	}

	var burnerOrder []int64
	for _, r := range recs {
		if r.Priority == domain.PriorityHigh && r.Type == domain.ActionPauseCampaign {
			burnerOrder = append(burnerOrder, r.CampaignID)
		}
	}
	assert.Equal(t, []int64{2, 4}, burnerOrder, "ties must preserve input order")
}

func TestConfigDefensiveCopyAndPatch(t *testing.T) {
	engine := NewEngine()

	cfg := engine.Config()
	cfg.CTRLow.Threshold = 0.5
	assert.Equal(t, 0.01, engine.Config().CTRLow.Threshold, "Config must return a copy")

	engine.UpdateConfig(ConfigPatch{
		CPCHigh: &RuleConfig{Enabled: false, Threshold: 9, Sensitivity: SensitivityRelaxed},
	})
	got := engine.Config()
	assert.False(t, got.CPCHigh.Enabled)
	assert.Equal(t, 9.0, got.CPCHigh.Threshold)
	// Untouched rules keep their defaults: replacement is per rule, not
	// per field.
	assert.Equal(t, 0.01, got.CTRLow.Threshold)
	assert.True(t, got.CTRLow.Enabled)
}

// TestConcurrentEvaluateAndUpdate exercises config swaps racing with
// evaluations; the atomic snapshot must keep both sides coherent.
func TestConcurrentEvaluateAndUpdate(t *testing.T) {
	engine := NewEngine()
	m := baseMetrics()
	m.Clicks = 100
	m.CTR = 0.002

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = engine.GenerateRecommendations(m)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				engine.UpdateConfig(ConfigPatch{
					CTRLow: &RuleConfig{Enabled: j%2 == 0, Threshold: 0.01, Sensitivity: SensitivityNormal},
				})
			}
		}()
	}
	wg.Wait()
}
