package net

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radwatch/radclient/sdk/wire"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	req := &wire.SharedGroupsRequest{AgentID: "agent-7"}

	env, err := encodeEnvelope(req)
	require.NoError(t, err)
	assert.Equal(t, "rad.v2.GroupsRequest", env.Type)

	// Simulate the frame crossing the wire.
	raw, err := jsonCodec{}.Marshal(env)
	require.NoError(t, err)
	received := &envelope{}
	require.NoError(t, jsonCodec{}.Unmarshal(raw, received))

	msg, err := decodeEnvelope(received)
	require.NoError(t, err)
	decoded, ok := msg.(*wire.SharedGroupsRequest)
	require.True(t, ok)
	assert.Equal(t, "agent-7", decoded.AgentID)
}

func TestDecodeEnvelopeToleratesUnknownFrames(t *testing.T) {
	tests := []struct {
		name string
		env  *envelope
	}{
		{name: "nil_frame", env: nil},
		{name: "empty_type", env: &envelope{}},
		{name: "unknown_type", env: &envelope{Type: "rad.v9.FutureRequest"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := decodeEnvelope(tt.env)
			assert.NoError(t, err)
			assert.Nil(t, msg)
		})
	}
}

func TestDecodeEnvelopeBadPayload(t *testing.T) {
	msg, err := decodeEnvelope(&envelope{
		Type:    "rad.v1.GetAgentsResponse",
		Payload: []byte(`{"agents": "not-a-list"}`),
	})
	assert.Error(t, err)
	assert.Nil(t, msg)
}
