package radmodel

import "time"

// Parameter is a single monitored parameter inside a subgroup: an opaque
// key understood by the platform plus a human-readable label.
type Parameter struct {
	Key   string
	Label string
}

// GroupOptions are group-level tuning options. Nil pointer fields mean
// "no override"; effective values are resolved through the cascade in
// options.go.
type GroupOptions struct {
	AnomalyThreshold   *float64
	MinDurationMinutes *int
	UpdateModel        bool
}

// SubgroupOptions are per-subgroup overrides of the group options.
type SubgroupOptions struct {
	AnomalyThreshold   *float64
	MinDurationMinutes *int
}

// SubgroupSettings describes one partition of a group's parameters.
// An empty Name falls back to the parent group name.
type SubgroupSettings struct {
	Name       string
	ID         string
	Parameters []Parameter
	Options    SubgroupOptions
}

// GroupSettings is the caller-owned desired configuration of a monitoring
// group. At least one subgroup is required.
type GroupSettings struct {
	Name      string
	Options   GroupOptions
	Subgroups []SubgroupSettings
}

// SubgroupInfo is the observed state of a subgroup as reported by the
// platform.
type SubgroupInfo struct {
	SubgroupSettings
	Monitored bool
}

// GroupInfo is the observed state of a group as reported by the platform.
// It is only ever received, never sent.
type GroupInfo struct {
	Name      string
	AgentID   string
	Options   GroupOptions
	Subgroups []SubgroupInfo
}

// TimeRange is a half-open [From, To) interval.
type TimeRange struct {
	From time.Time
	To   time.Time
}

// TrainingConfig selects the data used for (re)training a group's model:
// explicit time ranges plus subgroup indices to leave out.
type TrainingConfig struct {
	Ranges            []TimeRange
	ExcludedSubgroups []int
}

// AnomalyPoint is one anomaly score sample reported by the platform.
type AnomalyPoint struct {
	Time       time.Time
	Score      float64
	SubgroupID string
}

// EffectiveName returns the subgroup name, falling back to the parent
// group name when the subgroup has none.
func (s SubgroupSettings) EffectiveName(groupName string) string {
	if s.Name == "" {
		return groupName
	}
	return s.Name
}

// HasOverrides reports whether any per-subgroup option override is set.
func (o SubgroupOptions) HasOverrides() bool {
	return o.AnomalyThreshold != nil || o.MinDurationMinutes != nil
}
