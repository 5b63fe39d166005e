package wire

// AgentInfo describes one remote analytics agent as reported by the
// platform's self-description endpoint.
type AgentInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Version string `json:"version"`
	BuildID int    `json:"buildId"`
	Primary bool   `json:"primary"`
}

// GetAgentsRequest asks the platform for its known agents. The primary
// agent's version and build drive capability negotiation.
type GetAgentsRequest struct{}

func (*GetAgentsRequest) MessageType() string { return "rad.v1.GetAgentsRequest" }

// GetAgentsResponse lists every agent known to the platform.
type GetAgentsResponse struct {
	Agents []AgentInfo `json:"agents"`
}

func (*GetAgentsResponse) MessageType() string { return "rad.v1.GetAgentsResponse" }

// GetDefaultsRequest asks an agent for its advertised default tuning
// values. Only valid on platforms with the defaults capability.
type GetDefaultsRequest struct {
	AgentID string `json:"agentId"`
}

func (*GetDefaultsRequest) MessageType() string { return "rad.v1.GetDefaultsRequest" }

// GetDefaultsResponse carries the platform-advertised defaults.
type GetDefaultsResponse struct {
	AnomalyThreshold   float64 `json:"anomalyThreshold"`
	MinDurationMinutes int     `json:"minDurationMinutes"`
}

func (*GetDefaultsResponse) MessageType() string { return "rad.v1.GetDefaultsResponse" }

// AckResponse is the generic acknowledgement returned by mutating
// operations in both generations.
type AckResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

func (*AckResponse) MessageType() string { return "rad.v1.AckResponse" }
