package config

import (
	"fmt"
	"net"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateResolver(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateResolver() error {
	if c.Resolver.PreferIPv4 && c.Resolver.PreferIPv6 {
		return fmt.Errorf("resolver.prefer_ipv4 and resolver.prefer_ipv6 are mutually exclusive")
	}
	for _, host := range c.Resolver.ProbeHosts {
		if _, _, err := net.SplitHostPort(host); err != nil {
			return fmt.Errorf("resolver.probe_hosts entry %q must be host:port: %w", host, err)
		}
	}
	if c.Resolver.FallbackPort > 65535 {
		return fmt.Errorf("resolver.fallback_port %d exceeds 65535", c.Resolver.FallbackPort)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
