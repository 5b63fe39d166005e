// Package schema translates between the stable domain model and the wire
// generations of the RAD protocol. Call sites never see which generation
// is in play; the dispatcher picks the translation that matches the
// negotiated capabilities.
package schema

import (
	"time"

	"github.com/google/uuid"

	"github.com/radwatch/radclient/pkg/radmodel"
	"github.com/radwatch/radclient/sdk/wire"
)

// ToLegacyGroup down-translates settings to the single-subgroup
// generation. Only the first subgroup's parameter list survives; group
// options carry over unchanged. Per-subgroup overrides must have been
// rejected before this path, the legacy schema has no concept of them.
func ToLegacyGroup(settings radmodel.GroupSettings) wire.LegacyGroup {
	group := wire.LegacyGroup{
		Name:               settings.Name,
		AnomalyThreshold:   settings.Options.AnomalyThreshold,
		MinDurationMinutes: settings.Options.MinDurationMinutes,
		UpdateModel:        settings.Options.UpdateModel,
	}
	if len(settings.Subgroups) > 0 {
		group.Parameters = toWireParameters(settings.Subgroups[0].Parameters)
	}
	return group
}

// FromLegacyGroup up-translates a legacy group into observed group info.
// The legacy format carries no subgroup identity, so exactly one subgroup
// is synthesized: empty name, a freshly generated identifier, monitored
// forced true, no option overrides. The identifier is not stable across
// calls.
func FromLegacyGroup(agentID string, group wire.LegacyGroup) radmodel.GroupInfo {
	return radmodel.GroupInfo{
		Name:    group.Name,
		AgentID: agentID,
		Options: radmodel.GroupOptions{
			AnomalyThreshold:   group.AnomalyThreshold,
			MinDurationMinutes: group.MinDurationMinutes,
			UpdateModel:        group.UpdateModel,
		},
		Subgroups: []radmodel.SubgroupInfo{
			{
				SubgroupSettings: radmodel.SubgroupSettings{
					ID:         uuid.New().String(),
					Parameters: fromWireParameters(group.Parameters),
				},
				Monitored: true,
			},
		},
	}
}

// ToSharedGroup translates settings to the multi-subgroup generation,
// one subgroup to one.
func ToSharedGroup(settings radmodel.GroupSettings) wire.SharedGroup {
	group := wire.SharedGroup{
		Name:               settings.Name,
		AnomalyThreshold:   settings.Options.AnomalyThreshold,
		MinDurationMinutes: settings.Options.MinDurationMinutes,
		UpdateModel:        settings.Options.UpdateModel,
		Subgroups:          make([]*wire.SharedSubgroup, 0, len(settings.Subgroups)),
	}
	for _, sub := range settings.Subgroups {
		translated := ToSharedSubgroup(sub)
		group.Subgroups = append(group.Subgroups, &translated)
	}
	return group
}

// ToSharedSubgroup translates one subgroup, assigning a fresh identifier
// when the caller did not provide one.
func ToSharedSubgroup(sub radmodel.SubgroupSettings) wire.SharedSubgroup {
	id := sub.ID
	if id == "" {
		id = uuid.New().String()
	}
	return wire.SharedSubgroup{
		Name:               sub.Name,
		ID:                 id,
		Parameters:         toWireParameters(sub.Parameters),
		AnomalyThreshold:   sub.Options.AnomalyThreshold,
		MinDurationMinutes: sub.Options.MinDurationMinutes,
		Monitored:          true,
	}
}

// FromSharedGroup up-translates a shared group into observed group info.
// Nil subgroup entries are skipped, partially populated payloads arrive
// during platform upgrades.
func FromSharedGroup(agentID string, group wire.SharedGroup) radmodel.GroupInfo {
	info := radmodel.GroupInfo{
		Name:    group.Name,
		AgentID: agentID,
		Options: radmodel.GroupOptions{
			AnomalyThreshold:   group.AnomalyThreshold,
			MinDurationMinutes: group.MinDurationMinutes,
			UpdateModel:        group.UpdateModel,
		},
	}
	for _, sub := range group.Subgroups {
		if sub == nil {
			continue
		}
		info.Subgroups = append(info.Subgroups, radmodel.SubgroupInfo{
			SubgroupSettings: radmodel.SubgroupSettings{
				Name:       sub.Name,
				ID:         sub.ID,
				Parameters: fromWireParameters(sub.Parameters),
				Options: radmodel.SubgroupOptions{
					AnomalyThreshold:   sub.AnomalyThreshold,
					MinDurationMinutes: sub.MinDurationMinutes,
				},
			},
			Monitored: sub.Monitored,
		})
	}
	return info
}

// ToTrainingSpec translates a training configuration. Nil in, nil out.
func ToTrainingSpec(training *radmodel.TrainingConfig) *wire.TrainingSpec {
	if training == nil {
		return nil
	}
	spec := &wire.TrainingSpec{
		ExcludedSubgroups: training.ExcludedSubgroups,
	}
	for _, r := range training.Ranges {
		spec.Ranges = append(spec.Ranges, wire.WireTimeRange{
			FromMillis: r.From.UnixMilli(),
			ToMillis:   r.To.UnixMilli(),
		})
	}
	return spec
}

// FromAnomalyPoints translates score samples into domain points.
func FromAnomalyPoints(points []wire.AnomalyPoint) []radmodel.AnomalyPoint {
	if len(points) == 0 {
		return nil
	}
	out := make([]radmodel.AnomalyPoint, 0, len(points))
	for _, p := range points {
		out = append(out, radmodel.AnomalyPoint{
			Time:       time.UnixMilli(p.TimeMillis),
			Score:      p.Score,
			SubgroupID: p.SubgroupID,
		})
	}
	return out
}

func toWireParameters(params []radmodel.Parameter) []wire.Parameter {
	out := make([]wire.Parameter, 0, len(params))
	for _, p := range params {
		out = append(out, wire.Parameter{Key: p.Key, Label: p.Label})
	}
	return out
}

func fromWireParameters(params []wire.Parameter) []radmodel.Parameter {
	out := make([]radmodel.Parameter, 0, len(params))
	for _, p := range params {
		out = append(out, radmodel.Parameter{Key: p.Key, Label: p.Label})
	}
	return out
}
