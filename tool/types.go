package tool

import (
	"time"
)

// MCPTransportType represents the transport type for MCP servers
type MCPTransportType string

const (
	MCPTransportStdio MCPTransportType = "stdio"
	MCPTransportSSE   MCPTransportType = "sse"
	MCPTransportHTTP  MCPTransportType = "http"
)

// MCPServerConfig represents the configuration for an MCP server
type MCPServerConfig struct {
	// Transport type (stdio, sse, http)
	Transport MCPTransportType `json:"transport,omitempty" yaml:"transport,omitempty"`

	// For stdio transport
	Command string            `json:"command,omitempty" yaml:"command,omitempty"`
	Args    []string          `json:"args,omitempty" yaml:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty" yaml:"env,omitempty"`

	// For SSE/HTTP transports
	URL     string            `json:"url,omitempty" yaml:"url,omitempty"`
	Headers map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`

	// Connection settings
	Timeout time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// GetTransport returns the transport type, defaulting to stdio if not specified
func (c *MCPServerConfig) GetTransport() MCPTransportType {
	if c.Transport == "" {
		// Auto-detect based on config
		if c.URL != "" {
			return MCPTransportSSE
		}
		return MCPTransportStdio
	}
	return c.Transport
}
