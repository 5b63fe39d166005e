package net

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"go.uber.org/ratelimit"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/radwatch/radclient/pkg/log"
)

// Options configures the gateway transport.
type Options struct {
	// Address is the host:port of the platform gateway.
	Address string

	// RequestsPerSecond paces outgoing requests. Zero or negative
	// disables pacing.
	RequestsPerSecond int

	// AgentCacheTTL bounds how long a discovered agent list is reused.
	// Zero disables the cache.
	AgentCacheTTL time.Duration

	// MaxRetries bounds transparent retries on transient gateway
	// failures.
	MaxRetries uint64
}

// DefaultOptions returns the options used when the caller passes nil.
func DefaultOptions() *Options {
	return &Options{
		RequestsPerSecond: 50,
		AgentCacheTTL:     30 * time.Second,
		MaxRetries:        3,
	}
}

// NewGatewayTransport dials the platform gateway and returns a Transport
// over it.
func NewGatewayTransport(ctx context.Context, opts *Options, logger log.Logger) (Transport, error) {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Address == "" {
		return nil, errors.New("gateway address cannot be empty")
	}

	conn, err := grpc.NewClient(opts.Address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to gateway %s", opts.Address)
	}

	logger.Info(ctx, "Connected to RAD gateway", "address", opts.Address)

	limiter := ratelimit.NewUnlimited()
	if opts.RequestsPerSecond > 0 {
		limiter = ratelimit.New(opts.RequestsPerSecond)
	}

	var agentCache *gocache.Cache
	if opts.AgentCacheTTL > 0 {
		agentCache = gocache.New(opts.AgentCacheTTL, 2*opts.AgentCacheTTL)
	}

	return &gatewayTransport{
		conn:       conn,
		limiter:    limiter,
		agentCache: agentCache,
		maxRetries: opts.MaxRetries,
		logger:     logger,
	}, nil
}
