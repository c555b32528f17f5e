package domain

// Priority of a recommendation or task. Ordering is high before medium
// before low.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns the sort rank of the priority, lower is more urgent.
// Unknown values sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// ActionType is the kind of optimization a recommendation asks for.
type ActionType string

const (
	ActionPauseCampaign      ActionType = "pause_campaign"
	ActionIncreaseBudget     ActionType = "increase_budget"
	ActionDecreaseBudget     ActionType = "decrease_budget"
	ActionOptimizeCreative   ActionType = "optimize_creative"
	ActionAdjustKeywords     ActionType = "adjust_keywords"
	ActionLowerCPC           ActionType = "lower_cpc"
	ActionImproveLandingPage ActionType = "improve_landing_page"
	ActionExpandTargeting    ActionType = "expand_targeting"
)

// RecommendationMetrics carries the raw values a rule fired on and,
// for rules with a clear goal, the benchmark values to aim for. Keys
// are metric names (ctr, cpc, cost, ...).
type RecommendationMetrics struct {
	Current map[string]float64 `json:"current"`
	Target  map[string]float64 `json:"target,omitempty"`
}

// Recommendation is the transient output of the rules engine for one
// triggered rule on one campaign. The task generator turns surviving
// recommendations into durable tasks; the engine itself never persists
// anything.
type Recommendation struct {
	CampaignID     int64                 `json:"campaignId"`
	CampaignName   string                `json:"campaignName"`
	Priority       Priority              `json:"priority"`
	Type           ActionType            `json:"type"`
	Reason         string                `json:"reason"`
	Action         string                `json:"action"`
	ExpectedImpact string                `json:"expectedImpact"`
	Metrics        RecommendationMetrics `json:"metrics"`
}
