package radmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestEffectiveThreshold(t *testing.T) {
	tests := []struct {
		name     string
		sub      *SubgroupOptions
		group    GroupOptions
		platform *Defaults
		expected float64
	}{
		{
			name:     "subgroup_override_wins",
			sub:      &SubgroupOptions{AnomalyThreshold: floatPtr(7.5)},
			group:    GroupOptions{AnomalyThreshold: floatPtr(5.0)},
			platform: &Defaults{AnomalyThreshold: 4.0},
			expected: 7.5,
		},
		{
			name:     "group_override_without_platform_defaults",
			sub:      &SubgroupOptions{},
			group:    GroupOptions{AnomalyThreshold: floatPtr(5.0)},
			platform: nil,
			expected: 5.0,
		},
		{
			name:     "platform_default_when_no_overrides",
			sub:      nil,
			group:    GroupOptions{},
			platform: &Defaults{AnomalyThreshold: 4.2},
			expected: 4.2,
		},
		{
			name:     "hardcoded_fallback",
			sub:      nil,
			group:    GroupOptions{},
			platform: nil,
			expected: DefaultAnomalyThreshold,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveThreshold(tt.sub, tt.group, tt.platform)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEffectiveMinDuration(t *testing.T) {
	tests := []struct {
		name     string
		sub      *SubgroupOptions
		group    GroupOptions
		platform *Defaults
		expected int
	}{
		{
			name:     "subgroup_override_wins",
			sub:      &SubgroupOptions{MinDurationMinutes: intPtr(15)},
			group:    GroupOptions{MinDurationMinutes: intPtr(10)},
			platform: &Defaults{MinDurationMinutes: 8},
			expected: 15,
		},
		{
			name:     "group_override",
			sub:      nil,
			group:    GroupOptions{MinDurationMinutes: intPtr(10)},
			expected: 10,
		},
		{
			name:     "platform_default",
			group:    GroupOptions{},
			platform: &Defaults{MinDurationMinutes: 7},
			expected: 7,
		},
		{
			name:     "hardcoded_fallback",
			group:    GroupOptions{},
			expected: DefaultMinDurationMinutes,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveMinDuration(tt.sub, tt.group, tt.platform)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEffectiveName(t *testing.T) {
	named := SubgroupSettings{Name: "disk"}
	assert.Equal(t, "disk", named.EffectiveName("host-health"))

	unnamed := SubgroupSettings{}
	assert.Equal(t, "host-health", unnamed.EffectiveName("host-health"))
}
