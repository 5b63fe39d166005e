package wire

// Parameter is a monitored parameter reference shared by both schema
// generations.
type Parameter struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// LegacyGroup is the single-subgroup wire shape used by older platforms.
// It carries no subgroup identity: the group is its only partition.
type LegacyGroup struct {
	Name               string      `json:"name"`
	Parameters         []Parameter `json:"parameters"`
	AnomalyThreshold   *float64    `json:"anomalyThreshold,omitempty"`
	MinDurationMinutes *int        `json:"minDurationMinutes,omitempty"`
	UpdateModel        bool        `json:"updateModel"`
}

type LegacyCreateGroupRequest struct {
	AgentID string      `json:"agentId,omitempty"`
	Group   LegacyGroup `json:"group"`
}

func (*LegacyCreateGroupRequest) MessageType() string { return "rad.v1.CreateGroupRequest" }

type LegacyGroupsRequest struct {
	AgentID string `json:"agentId,omitempty"`
}

func (*LegacyGroupsRequest) MessageType() string { return "rad.v1.GroupsRequest" }

type LegacyGroupsResponse struct {
	AgentID string         `json:"agentId,omitempty"`
	Groups  []*LegacyGroup `json:"groups"`
}

func (*LegacyGroupsResponse) MessageType() string { return "rad.v1.GroupsResponse" }

type LegacyRenameGroupRequest struct {
	AgentID string `json:"agentId,omitempty"`
	Name    string `json:"name"`
	NewName string `json:"newName"`
}

func (*LegacyRenameGroupRequest) MessageType() string { return "rad.v1.RenameGroupRequest" }

type LegacyRemoveGroupRequest struct {
	AgentID string `json:"agentId,omitempty"`
	Name    string `json:"name"`
}

func (*LegacyRemoveGroupRequest) MessageType() string { return "rad.v1.RemoveGroupRequest" }

// LegacyRetrainRequest restarts model learning for a group. The legacy
// generation accepts no training configuration.
type LegacyRetrainRequest struct {
	AgentID string `json:"agentId,omitempty"`
	Name    string `json:"name"`
}

func (*LegacyRetrainRequest) MessageType() string { return "rad.v1.RetrainRequest" }

type LegacyAnomaliesRequest struct {
	AgentID    string `json:"agentId,omitempty"`
	Name       string `json:"name"`
	FromMillis int64  `json:"fromMillis"`
	ToMillis   int64  `json:"toMillis"`
}

func (*LegacyAnomaliesRequest) MessageType() string { return "rad.v1.AnomaliesRequest" }
