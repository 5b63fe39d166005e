package net

import (
	"encoding/json"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/radwatch/radclient/sdk/wire"
)

// envelope is the generic frame carried over the gateway RPC. The type
// string selects the concrete message; the payload is its JSON body.
type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// jsonCodec lets grpc carry jsoniter-encoded envelopes without generated
// protobuf stubs.
type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return jsonAPI.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return jsonAPI.Unmarshal(data, v)
}

func (jsonCodec) Name() string { return "radjson" }

func encodeEnvelope(msg wire.Message) (*envelope, error) {
	payload, err := jsonAPI.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", msg.MessageType(), err)
	}
	return &envelope{Type: msg.MessageType(), Payload: payload}, nil
}

// decodeEnvelope turns a response frame back into a typed message. An
// empty frame or an unknown type decodes to nil, the callers treat that
// as "no data".
func decodeEnvelope(env *envelope) (wire.Message, error) {
	if env == nil || env.Type == "" {
		return nil, nil
	}
	msg, ok := wire.New(env.Type)
	if !ok {
		return nil, nil
	}
	if len(env.Payload) > 0 {
		if err := jsonAPI.Unmarshal(env.Payload, msg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", env.Type, err)
		}
	}
	return msg, nil
}
