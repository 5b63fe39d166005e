package wire

// SharedSubgroup is one partition of a shared-model group.
type SharedSubgroup struct {
	Name               string      `json:"name,omitempty"`
	ID                 string      `json:"id"`
	Parameters         []Parameter `json:"parameters"`
	AnomalyThreshold   *float64    `json:"anomalyThreshold,omitempty"`
	MinDurationMinutes *int        `json:"minDurationMinutes,omitempty"`
	Monitored          bool        `json:"monitored"`
}

// SharedGroup is the multi-subgroup wire shape introduced by newer
// platforms. Subgroup entries may arrive nil in partially populated
// payloads and are skipped on translation.
type SharedGroup struct {
	Name               string            `json:"name"`
	AnomalyThreshold   *float64          `json:"anomalyThreshold,omitempty"`
	MinDurationMinutes *int              `json:"minDurationMinutes,omitempty"`
	UpdateModel        bool              `json:"updateModel"`
	Subgroups          []*SharedSubgroup `json:"subgroups"`
}

// WireTimeRange is a closed-open millisecond interval.
type WireTimeRange struct {
	FromMillis int64 `json:"fromMillis"`
	ToMillis   int64 `json:"toMillis"`
}

// TrainingSpec selects training data for create and retrain requests.
type TrainingSpec struct {
	Ranges            []WireTimeRange `json:"ranges,omitempty"`
	ExcludedSubgroups []int           `json:"excludedSubgroups,omitempty"`
}

type SharedCreateGroupRequest struct {
	AgentID  string        `json:"agentId,omitempty"`
	Group    SharedGroup   `json:"group"`
	Training *TrainingSpec `json:"training,omitempty"`
}

func (*SharedCreateGroupRequest) MessageType() string { return "rad.v2.CreateGroupRequest" }

type SharedGroupsRequest struct {
	AgentID string `json:"agentId,omitempty"`
}

func (*SharedGroupsRequest) MessageType() string { return "rad.v2.GroupsRequest" }

type SharedGroupsResponse struct {
	AgentID string         `json:"agentId,omitempty"`
	Groups  []*SharedGroup `json:"groups"`
}

func (*SharedGroupsResponse) MessageType() string { return "rad.v2.GroupsResponse" }

// CachedGroupsRequest queries the platform's group-info event cache: a
// single aggregate request covering every agent. Only valid when the
// cache capability is negotiated.
type CachedGroupsRequest struct{}

func (*CachedGroupsRequest) MessageType() string { return "rad.v2.CachedGroupsRequest" }

type CachedGroupEntry struct {
	AgentID string       `json:"agentId"`
	Group   *SharedGroup `json:"group"`
}

type CachedGroupsResponse struct {
	Entries []CachedGroupEntry `json:"entries"`
}

func (*CachedGroupsResponse) MessageType() string { return "rad.v2.CachedGroupsResponse" }

type SharedRenameGroupRequest struct {
	AgentID string `json:"agentId,omitempty"`
	Name    string `json:"name"`
	NewName string `json:"newName"`
}

func (*SharedRenameGroupRequest) MessageType() string { return "rad.v2.RenameGroupRequest" }

type SharedRemoveGroupRequest struct {
	AgentID string `json:"agentId,omitempty"`
	Name    string `json:"name"`
}

func (*SharedRemoveGroupRequest) MessageType() string { return "rad.v2.RemoveGroupRequest" }

type SharedRetrainRequest struct {
	AgentID  string        `json:"agentId,omitempty"`
	Name     string        `json:"name"`
	Training *TrainingSpec `json:"training,omitempty"`
}

func (*SharedRetrainRequest) MessageType() string { return "rad.v2.RetrainRequest" }

type AddSubgroupRequest struct {
	AgentID  string         `json:"agentId,omitempty"`
	Group    string         `json:"group"`
	Subgroup SharedSubgroup `json:"subgroup"`
}

func (*AddSubgroupRequest) MessageType() string { return "rad.v2.AddSubgroupRequest" }

type RemoveSubgroupRequest struct {
	AgentID    string `json:"agentId,omitempty"`
	Group      string `json:"group"`
	SubgroupID string `json:"subgroupId"`
}

func (*RemoveSubgroupRequest) MessageType() string { return "rad.v2.RemoveSubgroupRequest" }

type SharedAnomaliesRequest struct {
	AgentID    string `json:"agentId,omitempty"`
	Name       string `json:"name"`
	FromMillis int64  `json:"fromMillis"`
	ToMillis   int64  `json:"toMillis"`
}

func (*SharedAnomaliesRequest) MessageType() string { return "rad.v2.AnomaliesRequest" }

// HistoryRequest queries historical anomalies. Only valid when the
// history capability is negotiated.
type HistoryRequest struct {
	AgentID    string `json:"agentId,omitempty"`
	Name       string `json:"name"`
	FromMillis int64  `json:"fromMillis"`
	ToMillis   int64  `json:"toMillis"`
}

func (*HistoryRequest) MessageType() string { return "rad.v2.HistoryRequest" }

// AnomalyPoint is one score sample in an anomalies or history response.
type AnomalyPoint struct {
	TimeMillis int64   `json:"timeMillis"`
	Score      float64 `json:"score"`
	SubgroupID string  `json:"subgroupId,omitempty"`
}

// AnomaliesResponse carries current anomaly scores. Both generations use
// the same shape.
type AnomaliesResponse struct {
	Points []AnomalyPoint `json:"points"`
}

func (*AnomaliesResponse) MessageType() string { return "rad.v1.AnomaliesResponse" }

type HistoryResponse struct {
	Points []AnomalyPoint `json:"points"`
}

func (*HistoryResponse) MessageType() string { return "rad.v2.HistoryResponse" }
