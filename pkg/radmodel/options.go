package radmodel

// Hardcoded fallbacks used when neither the caller nor the platform
// provides a value.
const (
	DefaultAnomalyThreshold   = 3.0
	DefaultMinDurationMinutes = 5
)

// Defaults are the platform-advertised default tuning values. They are
// only consulted when the connected platform is new enough to provide
// them; otherwise the hardcoded fallbacks apply directly.
type Defaults struct {
	AnomalyThreshold   float64
	MinDurationMinutes int
}

// HardcodedDefaults returns the build-time fallback defaults.
func HardcodedDefaults() Defaults {
	return Defaults{
		AnomalyThreshold:   DefaultAnomalyThreshold,
		MinDurationMinutes: DefaultMinDurationMinutes,
	}
}

// EffectiveThreshold resolves the anomaly threshold for a subgroup.
// Cascade order: subgroup override, group override, platform default,
// hardcoded default.
func EffectiveThreshold(sub *SubgroupOptions, group GroupOptions, platform *Defaults) float64 {
	if sub != nil && sub.AnomalyThreshold != nil {
		return *sub.AnomalyThreshold
	}
	if group.AnomalyThreshold != nil {
		return *group.AnomalyThreshold
	}
	if platform != nil {
		return platform.AnomalyThreshold
	}
	return DefaultAnomalyThreshold
}

// EffectiveMinDuration resolves the minimal anomaly duration in minutes
// for a subgroup, with the same cascade order as EffectiveThreshold.
func EffectiveMinDuration(sub *SubgroupOptions, group GroupOptions, platform *Defaults) int {
	if sub != nil && sub.MinDurationMinutes != nil {
		return *sub.MinDurationMinutes
	}
	if group.MinDurationMinutes != nil {
		return *group.MinDurationMinutes
	}
	if platform != nil {
		return platform.MinDurationMinutes
	}
	return DefaultMinDurationMinutes
}
