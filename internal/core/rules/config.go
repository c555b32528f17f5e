package rules

// Sensitivity scales a rule's configured threshold before comparison.
// The multiplier is applied to the threshold value itself; each rule
// decides whether being above or below the scaled threshold fires. For
// a low-is-bad rule strict raises the bar (fires at higher cutoffs),
// for a high-is-bad rule strict lowers it.
type Sensitivity string

const (
	SensitivityStrict  Sensitivity = "strict"
	SensitivityNormal  Sensitivity = "normal"
	SensitivityRelaxed Sensitivity = "relaxed"
)

// Multiplier returns the threshold scaling factor. Unknown values are
// treated as normal.
func (s Sensitivity) Multiplier() float64 {
	switch s {
	case SensitivityStrict:
		return 1.2
	case SensitivityRelaxed:
		return 0.8
	default:
		return 1.0
	}
}

// RuleConfig is the per-rule tunable: whether the rule runs at all, its
// base threshold and the sensitivity applied to it.
type RuleConfig struct {
	Enabled     bool        `json:"enabled"`
	Threshold   float64     `json:"threshold"`
	Sensitivity Sensitivity `json:"sensitivity"`
}

// scaled returns the effective threshold after sensitivity scaling.
func (c RuleConfig) scaled() float64 {
	return c.Threshold * c.Sensitivity.Multiplier()
}

// Config is the fixed named set of rule configurations the engine
// evaluates with. The new-campaign observation rule has no tunables
// and therefore no entry.
type Config struct {
	CTRLow            RuleConfig `json:"ctrLow"`
	CTRHigh           RuleConfig `json:"ctrHigh"`
	ConversionRateLow RuleConfig `json:"conversionRateLow"`
	CPCHigh           RuleConfig `json:"cpcHigh"`
	CostHigh          RuleConfig `json:"costHigh"`
	ROINegative       RuleConfig `json:"roiNegative"`
	ROIHigh           RuleConfig `json:"roiHigh"`
	ImpressionsLow    RuleConfig `json:"impressionsLow"`
}

// ConfigPatch is a partial Config for UpdateConfig. A nil entry leaves
// the current rule untouched; a non-nil entry replaces the whole rule
// config, not individual fields.
type ConfigPatch struct {
	CTRLow            *RuleConfig `json:"ctrLow,omitempty"`
	CTRHigh           *RuleConfig `json:"ctrHigh,omitempty"`
	ConversionRateLow *RuleConfig `json:"conversionRateLow,omitempty"`
	CPCHigh           *RuleConfig `json:"cpcHigh,omitempty"`
	CostHigh          *RuleConfig `json:"costHigh,omitempty"`
	ROINegative       *RuleConfig `json:"roiNegative,omitempty"`
	ROIHigh           *RuleConfig `json:"roiHigh,omitempty"`
	ImpressionsLow    *RuleConfig `json:"impressionsLow,omitempty"`
}

// DefaultConfig returns the hardcoded rule defaults.
func DefaultConfig() Config {
	return Config{
		CTRLow:            RuleConfig{Enabled: true, Threshold: 0.01, Sensitivity: SensitivityNormal},
		CTRHigh:           RuleConfig{Enabled: true, Threshold: 0.05, Sensitivity: SensitivityNormal},
		ConversionRateLow: RuleConfig{Enabled: true, Threshold: 0.01, Sensitivity: SensitivityNormal},
		CPCHigh:           RuleConfig{Enabled: true, Threshold: 3.0, Sensitivity: SensitivityNormal},
		CostHigh:          RuleConfig{Enabled: true, Threshold: 100, Sensitivity: SensitivityNormal},
		ROINegative:       RuleConfig{Enabled: true, Threshold: 0, Sensitivity: SensitivityNormal},
		ROIHigh:           RuleConfig{Enabled: true, Threshold: 1.0, Sensitivity: SensitivityNormal},
		ImpressionsLow:    RuleConfig{Enabled: true, Threshold: 100, Sensitivity: SensitivityNormal},
	}
}

// apply merges the patch into a copy of cfg, replacing whole rule
// entries where the patch is non-nil.
func (p ConfigPatch) apply(cfg Config) Config {
	if p.CTRLow != nil {
		cfg.CTRLow = *p.CTRLow
	}
	if p.CTRHigh != nil {
		cfg.CTRHigh = *p.CTRHigh
	}
	if p.ConversionRateLow != nil {
		cfg.ConversionRateLow = *p.ConversionRateLow
	}
	if p.CPCHigh != nil {
		cfg.CPCHigh = *p.CPCHigh
	}
	if p.CostHigh != nil {
		cfg.CostHigh = *p.CostHigh
	}
	if p.ROINegative != nil {
		cfg.ROINegative = *p.ROINegative
	}
	if p.ROIHigh != nil {
		cfg.ROIHigh = *p.ROIHigh
	}
	if p.ImpressionsLow != nil {
		cfg.ImpressionsLow = *p.ImpressionsLow
	}
	return cfg
}

// Industry benchmarks embedded in recommendation texts and targets.
const (
	benchmarkCTR            = 0.02
	benchmarkCPC            = 1.5
	benchmarkConversionRate = 0.03
	benchmarkROI            = 0.5
)
