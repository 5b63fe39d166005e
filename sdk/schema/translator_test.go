package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radwatch/radclient/pkg/radmodel"
	"github.com/radwatch/radclient/sdk/wire"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func multiSubgroupSettings() radmodel.GroupSettings {
	return radmodel.GroupSettings{
		Name: "checkout-service",
		Options: radmodel.GroupOptions{
			AnomalyThreshold:   floatPtr(4.5),
			MinDurationMinutes: intPtr(10),
			UpdateModel:        true,
		},
		Subgroups: []radmodel.SubgroupSettings{
			{
				Name: "latency",
				ID:   "sub-latency",
				Parameters: []radmodel.Parameter{
					{Key: "http.p99", Label: "p99 latency"},
					{Key: "http.p50", Label: "median latency"},
				},
				Options: radmodel.SubgroupOptions{AnomalyThreshold: floatPtr(6.0)},
			},
			{
				Name: "errors",
				ID:   "sub-errors",
				Parameters: []radmodel.Parameter{
					{Key: "http.5xx", Label: "server errors"},
				},
				Options: radmodel.SubgroupOptions{MinDurationMinutes: intPtr(2)},
			},
		},
	}
}

func TestSharedRoundTripIsLossless(t *testing.T) {
	settings := multiSubgroupSettings()

	group := ToSharedGroup(settings)
	info := FromSharedGroup("agent-7", group)

	assert.Equal(t, settings.Name, info.Name)
	assert.Equal(t, "agent-7", info.AgentID)
	assert.Equal(t, settings.Options, info.Options)

	require.Len(t, info.Subgroups, len(settings.Subgroups))
	for i, sub := range settings.Subgroups {
		got := info.Subgroups[i]
		assert.Equal(t, sub.Name, got.Name)
		assert.Equal(t, sub.ID, got.ID)
		assert.Equal(t, sub.Parameters, got.Parameters)
		assert.Equal(t, sub.Options, got.Options)
		assert.True(t, got.Monitored)
	}
}

func TestLegacyDownTranslationKeepsFirstSubgroupOnly(t *testing.T) {
	settings := multiSubgroupSettings()

	group := ToLegacyGroup(settings)

	assert.Equal(t, "checkout-service", group.Name)
	assert.Equal(t, settings.Options.AnomalyThreshold, group.AnomalyThreshold)
	assert.Equal(t, settings.Options.MinDurationMinutes, group.MinDurationMinutes)
	assert.True(t, group.UpdateModel)

	// Only the first subgroup's parameters survive.
	require.Len(t, group.Parameters, 2)
	assert.Equal(t, "http.p99", group.Parameters[0].Key)
	assert.Equal(t, "http.p50", group.Parameters[1].Key)
}

func TestLegacyUpTranslationSynthesizesSubgroup(t *testing.T) {
	legacy := wire.LegacyGroup{
		Name: "checkout-service",
		Parameters: []wire.Parameter{
			{Key: "http.p99", Label: "p99 latency"},
		},
		AnomalyThreshold: floatPtr(4.5),
		UpdateModel:      true,
	}

	info := FromLegacyGroup("agent-7", legacy)

	require.Len(t, info.Subgroups, 1)
	sub := info.Subgroups[0]
	assert.Empty(t, sub.Name)
	assert.NotEmpty(t, sub.ID)
	assert.True(t, sub.Monitored)
	assert.Equal(t, radmodel.SubgroupOptions{}, sub.Options)
	require.Len(t, sub.Parameters, 1)
	assert.Equal(t, "http.p99", sub.Parameters[0].Key)

	// The synthesized identifier is not stable across calls.
	again := FromLegacyGroup("agent-7", legacy)
	assert.NotEqual(t, sub.ID, again.Subgroups[0].ID)
}

func TestLegacyRoundTripLoss(t *testing.T) {
	settings := multiSubgroupSettings()

	info := FromLegacyGroup("agent-7", ToLegacyGroup(settings))

	// Lossy by design: one synthesized subgroup carrying only the first
	// subgroup's parameters, with default options.
	require.Len(t, info.Subgroups, 1)
	assert.Equal(t, settings.Subgroups[0].Parameters, info.Subgroups[0].Parameters)
	assert.Equal(t, radmodel.SubgroupOptions{}, info.Subgroups[0].Options)
}

func TestFromSharedGroupSkipsNilSubgroups(t *testing.T) {
	group := wire.SharedGroup{
		Name: "checkout-service",
		Subgroups: []*wire.SharedSubgroup{
			nil,
			{Name: "latency", ID: "sub-latency", Monitored: true},
			nil,
		},
	}

	info := FromSharedGroup("agent-7", group)

	require.Len(t, info.Subgroups, 1)
	assert.Equal(t, "sub-latency", info.Subgroups[0].ID)
}

func TestToSharedSubgroupAssignsIdentifier(t *testing.T) {
	sub := ToSharedSubgroup(radmodel.SubgroupSettings{Name: "latency"})
	assert.NotEmpty(t, sub.ID)
	assert.True(t, sub.Monitored)

	keep := ToSharedSubgroup(radmodel.SubgroupSettings{Name: "latency", ID: "sub-1"})
	assert.Equal(t, "sub-1", keep.ID)
}

func TestToTrainingSpec(t *testing.T) {
	assert.Nil(t, ToTrainingSpec(nil))

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	spec := ToTrainingSpec(&radmodel.TrainingConfig{
		Ranges:            []radmodel.TimeRange{{From: from, To: to}},
		ExcludedSubgroups: []int{1},
	})

	require.NotNil(t, spec)
	require.Len(t, spec.Ranges, 1)
	assert.Equal(t, from.UnixMilli(), spec.Ranges[0].FromMillis)
	assert.Equal(t, to.UnixMilli(), spec.Ranges[0].ToMillis)
	assert.Equal(t, []int{1}, spec.ExcludedSubgroups)
}

func TestFromAnomalyPoints(t *testing.T) {
	assert.Nil(t, FromAnomalyPoints(nil))

	points := FromAnomalyPoints([]wire.AnomalyPoint{
		{TimeMillis: 1_700_000_000_000, Score: 4.7, SubgroupID: "sub-latency"},
	})
	require.Len(t, points, 1)
	assert.Equal(t, time.UnixMilli(1_700_000_000_000), points[0].Time)
	assert.Equal(t, 4.7, points[0].Score)
	assert.Equal(t, "sub-latency", points[0].SubgroupID)
}
