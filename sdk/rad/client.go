// Package rad is the public operation surface for relational anomaly
// monitoring groups. Every operation consults the capability set
// negotiated at construction, picks the matching wire-schema generation
// and shapes requests through the schema translator. The client holds no
// state across calls beyond that immutable set.
package rad

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/radwatch/radclient/pkg/capabilities"
	"github.com/radwatch/radclient/pkg/log"
	"github.com/radwatch/radclient/pkg/radmodel"
	"github.com/radwatch/radclient/sdk/net"
	"github.com/radwatch/radclient/sdk/schema"
	"github.com/radwatch/radclient/sdk/wire"
)

// agentFanout bounds concurrent per-agent queries on the enumeration
// fallback path.
const agentFanout = 4

// Client manages RAD monitoring groups on a connected platform. An empty
// agentID always means "resolve automatically"; the gateway routes the
// request to the primary agent.
type Client interface {
	// CreateGroup creates a monitoring group. Training configuration is
	// only accepted on platforms with the training capability.
	CreateGroup(ctx context.Context, agentID string, settings *radmodel.GroupSettings, training *radmodel.TrainingConfig) error

	// Groups fetches observed group info. With an empty agentID it
	// covers every agent, via the platform's group-info cache when
	// available and per-agent enumeration otherwise.
	Groups(ctx context.Context, agentID string) ([]radmodel.GroupInfo, error)

	// Group fetches a single group by name, nil when absent.
	Group(ctx context.Context, agentID, name string) (*radmodel.GroupInfo, error)

	// RenameGroup renames an existing group.
	RenameGroup(ctx context.Context, agentID, name, newName string) error

	// RemoveGroup deletes a group.
	RemoveGroup(ctx context.Context, agentID, name string) error

	// Retrain restarts model learning for a group. Excluding subgroups
	// requires the shared-groups capability.
	Retrain(ctx context.Context, agentID, name string, training *radmodel.TrainingConfig) error

	// AddSubgroup adds a subgroup to an existing group.
	AddSubgroup(ctx context.Context, agentID, group string, sub radmodel.SubgroupSettings) error

	// RemoveSubgroup removes a subgroup by identifier.
	RemoveSubgroup(ctx context.Context, agentID, group, subgroupID string) error

	// Anomalies fetches current anomaly scores for a group.
	Anomalies(ctx context.Context, agentID, group string, from, to time.Time) ([]radmodel.AnomalyPoint, error)

	// History fetches historical anomalies. Requires the history
	// capability.
	History(ctx context.Context, agentID, group string, from, to time.Time) ([]radmodel.AnomalyPoint, error)

	// Defaults returns the effective default tuning values, asking the
	// platform only when it advertises them.
	Defaults(ctx context.Context, agentID string) (radmodel.Defaults, error)

	// Capabilities exposes the negotiated capability set.
	Capabilities() *capabilities.Set

	// Close releases the transport.
	Close(ctx context.Context) error
}

type clientImpl struct {
	transport net.Transport
	caps      *capabilities.Set
	logger    log.Logger
}

// Verify interface compliance at compile time
var _ Client = (*clientImpl)(nil)

// NewClient performs the one-time capability handshake against the
// transport and returns a client bound to the resolved set.
func NewClient(ctx context.Context, transport net.Transport, logger log.Logger) (Client, error) {
	if transport == nil {
		return nil, fmt.Errorf("transport cannot be nil")
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}

	caps := capabilities.Resolve(ctx, transport, logger)

	return &clientImpl{
		transport: transport,
		caps:      caps,
		logger:    logger,
	}, nil
}

// NewClientForTesting wires a client around a pre-resolved capability
// set, skipping the handshake.
func NewClientForTesting(transport net.Transport, caps *capabilities.Set, logger log.Logger) Client {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &clientImpl{transport: transport, caps: caps, logger: logger}
}

func (c *clientImpl) Capabilities() *capabilities.Set { return c.caps }

func (c *clientImpl) CreateGroup(ctx context.Context, agentID string, settings *radmodel.GroupSettings, training *radmodel.TrainingConfig) error {
	if settings == nil {
		return fmt.Errorf("%w: settings must not be nil", ErrInvalidArgument)
	}
	if len(settings.Subgroups) == 0 {
		return fmt.Errorf("%w: at least one subgroup is required", ErrInvalidArgument)
	}
	if training != nil && !c.caps.Enabled(capabilities.TrainingConfig) {
		return fmt.Errorf("%w: training configuration on create", ErrUnsupportedFeature)
	}

	if !c.caps.Enabled(capabilities.SharedGroups) {
		if len(settings.Subgroups) > 1 {
			return fmt.Errorf("%w: groups with multiple subgroups", ErrUnsupportedFeature)
		}
		for _, sub := range settings.Subgroups {
			if sub.Options.HasOverrides() {
				return fmt.Errorf("%w: per-subgroup option overrides", ErrUnsupportedFeature)
			}
		}

		c.logger.Debug(ctx, "Creating group via legacy schema", "group", settings.Name, "agentID", agentID)
		return c.sendAck(ctx, &wire.LegacyCreateGroupRequest{
			AgentID: agentID,
			Group:   schema.ToLegacyGroup(*settings),
		}, "create group")
	}

	c.logger.Debug(ctx, "Creating group via shared schema",
		"group", settings.Name,
		"agentID", agentID,
		"subgroups", len(settings.Subgroups))
	return c.sendAck(ctx, &wire.SharedCreateGroupRequest{
		AgentID:  agentID,
		Group:    schema.ToSharedGroup(*settings),
		Training: schema.ToTrainingSpec(training),
	}, "create group")
}

func (c *clientImpl) Groups(ctx context.Context, agentID string) ([]radmodel.GroupInfo, error) {
	if agentID != "" {
		return c.agentGroups(ctx, agentID)
	}

	if c.caps.Enabled(capabilities.GroupInfoCache) {
		return c.cachedGroups(ctx)
	}
	return c.enumerateGroups(ctx)
}

// cachedGroups is the fast path: one aggregate request against the
// platform's group-info event cache.
func (c *clientImpl) cachedGroups(ctx context.Context) ([]radmodel.GroupInfo, error) {
	resp, err := c.transport.Send(ctx, &wire.CachedGroupsRequest{})
	if err != nil {
		return nil, fmt.Errorf("fetch cached groups failed: %w", err)
	}
	cached, ok := resp.(*wire.CachedGroupsResponse)
	if !ok {
		c.logger.Warn(ctx, "Unexpected response to cached groups query, treating as empty")
		return nil, nil
	}

	out := make([]radmodel.GroupInfo, 0, len(cached.Entries))
	for _, entry := range cached.Entries {
		if entry.Group == nil {
			continue
		}
		out = append(out, schema.FromSharedGroup(entry.AgentID, *entry.Group))
	}
	return out, nil
}

// enumerateGroups is the degradation path for platforms without the
// group-info cache: discover every agent, then query each one. The N+1
// shape is deliberate, older generations have no aggregate query.
func (c *clientImpl) enumerateGroups(ctx context.Context) ([]radmodel.GroupInfo, error) {
	resp, err := c.transport.Send(ctx, &wire.GetAgentsRequest{})
	if err != nil {
		return nil, fmt.Errorf("agent discovery failed: %w", err)
	}
	agents, ok := resp.(*wire.GetAgentsResponse)
	if !ok || len(agents.Agents) == 0 {
		c.logger.Warn(ctx, "No agents discovered for group enumeration")
		return nil, nil
	}

	perAgent := make([][]radmodel.GroupInfo, len(agents.Agents))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(agentFanout)
	for i, agent := range agents.Agents {
		i, agent := i, agent
		g.Go(func() error {
			infos, err := c.agentGroups(gctx, agent.ID)
			if err != nil {
				return err
			}
			perAgent[i] = infos
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []radmodel.GroupInfo
	for _, infos := range perAgent {
		out = append(out, infos...)
	}
	return out, nil
}

// agentGroups queries a single agent through whichever schema generation
// is negotiated.
func (c *clientImpl) agentGroups(ctx context.Context, agentID string) ([]radmodel.GroupInfo, error) {
	if c.caps.Enabled(capabilities.SharedGroups) {
		resp, err := c.transport.Send(ctx, &wire.SharedGroupsRequest{AgentID: agentID})
		if err != nil {
			return nil, fmt.Errorf("fetch groups for agent %s failed: %w", agentID, err)
		}
		groups, ok := resp.(*wire.SharedGroupsResponse)
		if !ok {
			return nil, nil
		}
		out := make([]radmodel.GroupInfo, 0, len(groups.Groups))
		for _, group := range groups.Groups {
			if group == nil {
				continue
			}
			out = append(out, schema.FromSharedGroup(agentID, *group))
		}
		return out, nil
	}

	resp, err := c.transport.Send(ctx, &wire.LegacyGroupsRequest{AgentID: agentID})
	if err != nil {
		return nil, fmt.Errorf("fetch groups for agent %s failed: %w", agentID, err)
	}
	groups, ok := resp.(*wire.LegacyGroupsResponse)
	if !ok {
		return nil, nil
	}
	out := make([]radmodel.GroupInfo, 0, len(groups.Groups))
	for _, group := range groups.Groups {
		if group == nil {
			continue
		}
		out = append(out, schema.FromLegacyGroup(agentID, *group))
	}
	return out, nil
}

func (c *clientImpl) Group(ctx context.Context, agentID, name string) (*radmodel.GroupInfo, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: group name must not be empty", ErrInvalidArgument)
	}

	groups, err := c.Groups(ctx, agentID)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		if groups[i].Name == name {
			return &groups[i], nil
		}
	}
	return nil, nil
}

func (c *clientImpl) RenameGroup(ctx context.Context, agentID, name, newName string) error {
	if name == "" || newName == "" {
		return fmt.Errorf("%w: group names must not be empty", ErrInvalidArgument)
	}

	if c.caps.Enabled(capabilities.SharedGroups) {
		return c.sendAck(ctx, &wire.SharedRenameGroupRequest{AgentID: agentID, Name: name, NewName: newName}, "rename group")
	}
	return c.sendAck(ctx, &wire.LegacyRenameGroupRequest{AgentID: agentID, Name: name, NewName: newName}, "rename group")
}

func (c *clientImpl) RemoveGroup(ctx context.Context, agentID, name string) error {
	if name == "" {
		return fmt.Errorf("%w: group name must not be empty", ErrInvalidArgument)
	}

	if c.caps.Enabled(capabilities.SharedGroups) {
		return c.sendAck(ctx, &wire.SharedRemoveGroupRequest{AgentID: agentID, Name: name}, "remove group")
	}
	return c.sendAck(ctx, &wire.LegacyRemoveGroupRequest{AgentID: agentID, Name: name}, "remove group")
}

func (c *clientImpl) Retrain(ctx context.Context, agentID, name string, training *radmodel.TrainingConfig) error {
	if name == "" {
		return fmt.Errorf("%w: group name must not be empty", ErrInvalidArgument)
	}

	if !c.caps.Enabled(capabilities.SharedGroups) {
		if training != nil && len(training.ExcludedSubgroups) > 0 {
			return fmt.Errorf("%w: retraining with excluded subgroups", ErrUnsupportedFeature)
		}
		if training != nil && len(training.Ranges) > 0 {
			c.logger.Warn(ctx, "Legacy retrain cannot carry training ranges, dropping them", "group", name)
		}
		return c.sendAck(ctx, &wire.LegacyRetrainRequest{AgentID: agentID, Name: name}, "retrain")
	}

	return c.sendAck(ctx, &wire.SharedRetrainRequest{
		AgentID:  agentID,
		Name:     name,
		Training: schema.ToTrainingSpec(training),
	}, "retrain")
}

func (c *clientImpl) AddSubgroup(ctx context.Context, agentID, group string, sub radmodel.SubgroupSettings) error {
	if group == "" {
		return fmt.Errorf("%w: group name must not be empty", ErrInvalidArgument)
	}
	if !c.caps.Enabled(capabilities.SharedGroups) {
		return fmt.Errorf("%w: subgroup management", ErrUnsupportedFeature)
	}

	return c.sendAck(ctx, &wire.AddSubgroupRequest{
		AgentID:  agentID,
		Group:    group,
		Subgroup: schema.ToSharedSubgroup(sub),
	}, "add subgroup")
}

func (c *clientImpl) RemoveSubgroup(ctx context.Context, agentID, group, subgroupID string) error {
	if group == "" || subgroupID == "" {
		return fmt.Errorf("%w: group name and subgroup id must not be empty", ErrInvalidArgument)
	}
	if !c.caps.Enabled(capabilities.SharedGroups) {
		return fmt.Errorf("%w: subgroup management", ErrUnsupportedFeature)
	}

	return c.sendAck(ctx, &wire.RemoveSubgroupRequest{
		AgentID:    agentID,
		Group:      group,
		SubgroupID: subgroupID,
	}, "remove subgroup")
}

func (c *clientImpl) Anomalies(ctx context.Context, agentID, group string, from, to time.Time) ([]radmodel.AnomalyPoint, error) {
	if group == "" {
		return nil, fmt.Errorf("%w: group name must not be empty", ErrInvalidArgument)
	}

	var req wire.Message
	if c.caps.Enabled(capabilities.SharedGroups) {
		req = &wire.SharedAnomaliesRequest{AgentID: agentID, Name: group, FromMillis: from.UnixMilli(), ToMillis: to.UnixMilli()}
	} else {
		req = &wire.LegacyAnomaliesRequest{AgentID: agentID, Name: group, FromMillis: from.UnixMilli(), ToMillis: to.UnixMilli()}
	}

	resp, err := c.transport.Send(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("fetch anomalies failed: %w", err)
	}
	points, ok := resp.(*wire.AnomaliesResponse)
	if !ok {
		return nil, nil
	}
	return schema.FromAnomalyPoints(points.Points), nil
}

func (c *clientImpl) History(ctx context.Context, agentID, group string, from, to time.Time) ([]radmodel.AnomalyPoint, error) {
	if group == "" {
		return nil, fmt.Errorf("%w: group name must not be empty", ErrInvalidArgument)
	}
	if !c.caps.Enabled(capabilities.AnomalyHistory) {
		return nil, fmt.Errorf("%w: historical anomaly query", ErrUnsupportedFeature)
	}

	resp, err := c.transport.Send(ctx, &wire.HistoryRequest{
		AgentID:    agentID,
		Name:       group,
		FromMillis: from.UnixMilli(),
		ToMillis:   to.UnixMilli(),
	})
	if err != nil {
		return nil, fmt.Errorf("fetch history failed: %w", err)
	}
	history, ok := resp.(*wire.HistoryResponse)
	if !ok {
		return nil, nil
	}
	return schema.FromAnomalyPoints(history.Points), nil
}

func (c *clientImpl) Defaults(ctx context.Context, agentID string) (radmodel.Defaults, error) {
	if !c.caps.Enabled(capabilities.PlatformDefaults) {
		return radmodel.HardcodedDefaults(), nil
	}

	resp, err := c.transport.Send(ctx, &wire.GetDefaultsRequest{AgentID: agentID})
	if err != nil {
		return radmodel.Defaults{}, fmt.Errorf("fetch defaults failed: %w", err)
	}
	defaults, ok := resp.(*wire.GetDefaultsResponse)
	if !ok {
		c.logger.Warn(ctx, "Unexpected response to defaults query, using hardcoded defaults")
		return radmodel.HardcodedDefaults(), nil
	}
	return radmodel.Defaults{
		AnomalyThreshold:   defaults.AnomalyThreshold,
		MinDurationMinutes: defaults.MinDurationMinutes,
	}, nil
}

func (c *clientImpl) Close(ctx context.Context) error {
	return c.transport.Close(ctx)
}

// sendAck issues a mutating request and interprets the generic ack. A
// missing or mismatched response is tolerated as "no data" to survive
// races during platform upgrades.
func (c *clientImpl) sendAck(ctx context.Context, req wire.Message, operation string) error {
	resp, err := c.transport.Send(ctx, req)
	if err != nil {
		return fmt.Errorf("%s failed: %w", operation, err)
	}
	if resp == nil {
		c.logger.Warn(ctx, "No response received", "operation", operation)
		return nil
	}
	ack, ok := resp.(*wire.AckResponse)
	if !ok {
		c.logger.Warn(ctx, "Unexpected response type", "operation", operation, "type", resp.MessageType())
		return nil
	}
	if !ack.OK {
		return fmt.Errorf("%s rejected by platform: %s", operation, ack.Message)
	}
	return nil
}
