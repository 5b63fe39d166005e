package capabilities

import (
	"context"
	"fmt"

	"github.com/radwatch/radclient/pkg/log"
	"github.com/radwatch/radclient/pkg/version"
	"github.com/radwatch/radclient/sdk/wire"
)

// Sender is the slice of the transport needed for negotiation.
type Sender interface {
	Send(ctx context.Context, msg wire.Message) (wire.Message, error)
}

// Resolve performs the one-time capability handshake: it queries the
// platform for its agents, takes the primary agent's version and build,
// and evaluates every capability threshold against it.
//
// Every failure mode is fail-closed: transport errors, missing agent
// information and unparseable versions all yield an all-false set. The
// handshake is never re-run mid-session.
func Resolve(ctx context.Context, sender Sender, logger log.Logger) *Set {
	if logger == nil {
		logger = log.NewNoopLogger()
	}

	resp, err := sender.Send(ctx, &wire.GetAgentsRequest{})
	if err != nil {
		logger.Error(ctx, "Capability handshake failed", "error", err)
		return emptySet()
	}

	agents, ok := resp.(*wire.GetAgentsResponse)
	if !ok || len(agents.Agents) == 0 {
		logger.Error(ctx, "No agent information returned, disabling all capabilities")
		return emptySet()
	}

	primary := agents.Agents[0]
	for _, agent := range agents.Agents {
		if agent.Primary {
			primary = agent
			break
		}
	}

	raw := fmt.Sprintf("%s-%d", primary.Version, primary.BuildID)
	remote, err := version.Parse(raw)
	if err != nil {
		logger.Warn(ctx, "Failed to parse platform version, disabling all capabilities",
			"version", raw,
			"agentID", primary.ID,
			"error", err)
		return emptySet()
	}

	set := setFor(remote)
	logger.Info(ctx, "Capabilities resolved",
		"platformVersion", remote.String(),
		"agentID", primary.ID,
		"flags", set.All())
	return set
}
