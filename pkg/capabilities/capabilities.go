// Package capabilities derives the feature flags of a connected platform
// from its advertised version. Every later schema decision in the client
// is gated on the set resolved here.
package capabilities

import "github.com/radwatch/radclient/pkg/version"

// Capability names a version-gated platform feature.
type Capability string

const (
	// SharedGroups allows groups with multiple subgroups and
	// per-subgroup option overrides (the rad.v2 schema generation).
	SharedGroups Capability = "shared_groups"

	// PlatformDefaults means the platform advertises its own default
	// threshold and duration values.
	PlatformDefaults Capability = "platform_defaults"

	// GroupInfoCache means group info can be fetched for all agents in
	// one aggregate request instead of per-agent enumeration.
	GroupInfoCache Capability = "group_info_cache"

	// AnomalyHistory allows querying historical anomalies.
	AnomalyHistory Capability = "anomaly_history"

	// TrainingConfig means create requests accept a training
	// configuration.
	TrainingConfig Capability = "training_config"
)

// thresholds is the ordered table of minimum platform versions per
// capability. Adding a protocol generation means adding a row here.
var thresholds = []struct {
	capability Capability
	minimum    version.Version
}{
	{SharedGroups, version.MustParse("1.8.0.0")},
	{PlatformDefaults, version.MustParse("1.8.0.0-1201")},
	{GroupInfoCache, version.MustParse("1.9.2.0")},
	{AnomalyHistory, version.MustParse("1.9.4.0")},
	{TrainingConfig, version.MustParse("1.10.0.0")},
}

// Set is the resolved capability flags of one session. Immutable after
// Resolve; safe for concurrent reads.
type Set struct {
	flags    map[Capability]bool
	remote   version.Version
	resolved bool
}

// Enabled reports whether the named capability was negotiated. Unknown
// names report false.
func (s *Set) Enabled(c Capability) bool {
	if s == nil {
		return false
	}
	return s.flags[c]
}

// RemoteVersion returns the parsed platform version the set was derived
// from. The second result is false when resolution failed closed.
func (s *Set) RemoteVersion() (version.Version, bool) {
	if s == nil {
		return version.Version{}, false
	}
	return s.remote, s.resolved
}

// All returns the flags in threshold-table order, for diagnostics.
func (s *Set) All() map[Capability]bool {
	out := make(map[Capability]bool, len(thresholds))
	for _, row := range thresholds {
		out[row.capability] = s.Enabled(row.capability)
	}
	return out
}

// emptySet is the fail-closed result: every flag false.
func emptySet() *Set {
	return &Set{flags: make(map[Capability]bool)}
}

// setFor evaluates every threshold row against a parsed remote version.
func setFor(remote version.Version) *Set {
	flags := make(map[Capability]bool, len(thresholds))
	for _, row := range thresholds {
		flags[row.capability] = remote.AtLeast(row.minimum)
	}
	return &Set{flags: flags, remote: remote, resolved: true}
}
