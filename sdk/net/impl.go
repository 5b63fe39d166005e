package net

import (
	"context"
	"io"

	"github.com/cenkalti/backoff/v4"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/ratelimit"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/radwatch/radclient/pkg/log"
	"github.com/radwatch/radclient/sdk/wire"
)

const (
	gatewaySendMethod    = "/rad.gateway.v1.Gateway/Send"
	gatewaySendAllMethod = "/rad.gateway.v1.Gateway/SendAll"

	agentCacheKey = "agents"
)

var sendAllStreamDesc = &grpc.StreamDesc{
	StreamName:    "SendAll",
	ServerStreams: true,
}

// gatewayTransport implements Transport over a gRPC connection to the
// platform gateway.
type gatewayTransport struct {
	conn       *grpc.ClientConn
	limiter    ratelimit.Limiter
	agentCache *gocache.Cache
	maxRetries uint64
	logger     log.Logger
}

// Verify interface compliance at compile time
var _ Transport = (*gatewayTransport)(nil)

func (t *gatewayTransport) Send(ctx context.Context, msg wire.Message) (wire.Message, error) {
	// Agent discovery barely changes; memoize it so the capability
	// handshake and enumeration fallbacks don't hammer the gateway.
	if _, ok := msg.(*wire.GetAgentsRequest); ok && t.agentCache != nil {
		if cached, found := t.agentCache.Get(agentCacheKey); found {
			t.logger.Debug(ctx, "Serving agent list from cache")
			return cached.(*wire.GetAgentsResponse), nil
		}
	}

	reqEnv, err := encodeEnvelope(msg)
	if err != nil {
		return nil, err
	}

	respEnv := &envelope{}
	invoke := func() error {
		t.limiter.Take()
		err := t.conn.Invoke(ctx, gatewaySendMethod, reqEnv, respEnv, grpc.ForceCodec(jsonCodec{}))
		if err == nil {
			return nil
		}
		if status.Code(err) == codes.Unavailable {
			t.logger.Warn(ctx, "Gateway unavailable, retrying", "type", msg.MessageType(), "error", err)
			return err
		}
		return backoff.Permanent(err)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), t.maxRetries), ctx)
	if err := backoff.Retry(invoke, policy); err != nil {
		return nil, err
	}

	resp, err := decodeEnvelope(respEnv)
	if err != nil {
		return nil, err
	}

	if agents, ok := resp.(*wire.GetAgentsResponse); ok && t.agentCache != nil {
		t.agentCache.SetDefault(agentCacheKey, agents)
	}

	return resp, nil
}

func (t *gatewayTransport) SendAll(ctx context.Context, msg wire.Message) ([]wire.Message, error) {
	reqEnv, err := encodeEnvelope(msg)
	if err != nil {
		return nil, err
	}

	t.limiter.Take()
	stream, err := t.conn.NewStream(ctx, sendAllStreamDesc, gatewaySendAllMethod, grpc.ForceCodec(jsonCodec{}))
	if err != nil {
		return nil, err
	}
	if err := stream.SendMsg(reqEnv); err != nil {
		return nil, err
	}
	if err := stream.CloseSend(); err != nil {
		return nil, err
	}

	var out []wire.Message
	for {
		respEnv := &envelope{}
		if err := stream.RecvMsg(respEnv); err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		resp, err := decodeEnvelope(respEnv)
		if err != nil {
			return nil, err
		}
		if resp != nil {
			out = append(out, resp)
		}
	}
	return out, nil
}

func (t *gatewayTransport) Close(ctx context.Context) error {
	if t.conn != nil {
		t.logger.Debug(ctx, "Closing gateway connection")
		return t.conn.Close()
	}
	return nil
}
