// Package wire defines the typed messages of the RAD gateway protocol.
//
// Two mutually exclusive request/response generations coexist: the legacy
// single-subgroup generation (rad.v1) and the shared multi-subgroup
// generation (rad.v2). Which generation is in play for a session is decided
// once by capability negotiation; message types themselves are plain data.
package wire

// Message is implemented by every request and response that can travel
// through a Transport. The type string doubles as the envelope routing key.
type Message interface {
	MessageType() string
}

// registry maps envelope type strings to response factories so the
// transport can decode replies into concrete messages.
var registry = map[string]func() Message{}

func register(factory func() Message) {
	m := factory()
	registry[m.MessageType()] = factory
}

// New returns a fresh message value for the given envelope type string.
func New(msgType string) (Message, bool) {
	factory, ok := registry[msgType]
	if !ok {
		return nil, false
	}
	return factory(), true
}

func init() {
	// Discovery and defaults.
	register(func() Message { return &GetAgentsRequest{} })
	register(func() Message { return &GetAgentsResponse{} })
	register(func() Message { return &GetDefaultsRequest{} })
	register(func() Message { return &GetDefaultsResponse{} })

	// Legacy generation (rad.v1).
	register(func() Message { return &LegacyCreateGroupRequest{} })
	register(func() Message { return &LegacyGroupsRequest{} })
	register(func() Message { return &LegacyGroupsResponse{} })
	register(func() Message { return &LegacyRenameGroupRequest{} })
	register(func() Message { return &LegacyRemoveGroupRequest{} })
	register(func() Message { return &LegacyRetrainRequest{} })
	register(func() Message { return &LegacyAnomaliesRequest{} })
	register(func() Message { return &AnomaliesResponse{} })

	// Shared generation (rad.v2).
	register(func() Message { return &SharedCreateGroupRequest{} })
	register(func() Message { return &SharedGroupsRequest{} })
	register(func() Message { return &SharedGroupsResponse{} })
	register(func() Message { return &CachedGroupsRequest{} })
	register(func() Message { return &CachedGroupsResponse{} })
	register(func() Message { return &SharedRenameGroupRequest{} })
	register(func() Message { return &SharedRemoveGroupRequest{} })
	register(func() Message { return &SharedRetrainRequest{} })
	register(func() Message { return &AddSubgroupRequest{} })
	register(func() Message { return &RemoveSubgroupRequest{} })
	register(func() Message { return &SharedAnomaliesRequest{} })
	register(func() Message { return &HistoryRequest{} })
	register(func() Message { return &HistoryResponse{} })

	register(func() Message { return &AckResponse{} })
}
