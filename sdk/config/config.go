package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/radwatch/radclient/sdk/net"
)

// Config is the client-side configuration. Capability thresholds are
// build constants and deliberately not configurable here.
type Config struct {
	Gateway GatewayConfig `mapstructure:"gateway"`
}

// GatewayConfig configures the connection to the platform gateway.
type GatewayConfig struct {
	Address              string `mapstructure:"address"`
	RequestsPerSecond    int    `mapstructure:"requests_per_second"`
	AgentCacheTTLSeconds int    `mapstructure:"agent_cache_ttl_seconds"`
	MaxRetries           uint64 `mapstructure:"max_retries"`
}

// LoadConfig reads a YAML configuration file and applies defaults.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("gateway.requests_per_second", 50)
	v.SetDefault("gateway.agent_cache_ttl_seconds", 30)
	v.SetDefault("gateway.max_retries", 3)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Gateway.Address == "" {
		return nil, fmt.Errorf("gateway.address is required in %s", path)
	}

	return &config, nil
}

// TransportOptions maps the configuration onto gateway transport options.
func (c *Config) TransportOptions() *net.Options {
	return &net.Options{
		Address:           c.Gateway.Address,
		RequestsPerSecond: c.Gateway.RequestsPerSecond,
		AgentCacheTTL:     time.Duration(c.Gateway.AgentCacheTTLSeconds) * time.Second,
		MaxRetries:        c.Gateway.MaxRetries,
	}
}
