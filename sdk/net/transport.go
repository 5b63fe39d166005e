package net

//go:generate mockgen -source=transport.go -destination=mocks/transport_mock.go -package=mocks

import (
	"context"

	"github.com/radwatch/radclient/sdk/wire"
)

// Transport is the RPC channel the client sends typed messages through.
// Implementations own connection lifecycle, serialization, retry and
// timeout policy; the layers above never retry.
//
// Send returns (nil, nil) when the platform produced no response for the
// request, callers treat that as "no data".
type Transport interface {
	// Send issues one request and waits for its single response.
	Send(ctx context.Context, msg wire.Message) (wire.Message, error)

	// SendAll issues one request and collects every response the
	// platform streams back.
	SendAll(ctx context.Context, msg wire.Message) ([]wire.Message, error)

	// Close releases the underlying connection.
	Close(ctx context.Context) error
}
