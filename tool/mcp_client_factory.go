package tool

import (
	"fmt"
	"net/http"
	"time"

	mcpclient "github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	"github.com/pkg/errors"
)

// MCPClientFactory creates MCP clients based on the server configuration
type MCPClientFactory struct {
	httpClient *http.Client
}

// NewMCPClientFactory creates a new MCP client factory
func NewMCPClientFactory() *MCPClientFactory {
	return &MCPClientFactory{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CreateClient creates an MCP client based on the server configuration
func (f *MCPClientFactory) CreateClient(config MCPServerConfig) (*mcpclient.Client, error) {
	transportType := config.GetTransport()

	switch transportType {
	case MCPTransportStdio:
		return f.createStdioClient(config)

	case MCPTransportSSE:
		return f.createSSEClient(config)

	case MCPTransportHTTP:
		return f.createStreamableClient(config)

	default:
		return nil, fmt.Errorf("unsupported transport type: %s", transportType)
	}
}

// createStdioClient creates a stdio-based MCP client
func (f *MCPClientFactory) createStdioClient(config MCPServerConfig) (*mcpclient.Client, error) {
	if config.Command == "" {
		return nil, errors.New("command is required for stdio transport")
	}

	var envs []string
	for key, val := range config.Env {
		envs = append(envs, fmt.Sprintf("%s=%s", key, val))
	}

	return mcpclient.NewStdioMCPClient(config.Command, envs, config.Args...)
}

// createSSEClient creates an SSE-based MCP client
func (f *MCPClientFactory) createSSEClient(config MCPServerConfig) (*mcpclient.Client, error) {
	if config.URL == "" {
		return nil, errors.New("URL is required for SSE transport")
	}

	opts := []transport.ClientOption{
		transport.WithHTTPClient(f.httpClient),
	}

	if len(config.Headers) > 0 {
		opts = append(opts, transport.WithHeaders(config.Headers))
	}

	return mcpclient.NewSSEMCPClient(config.URL, opts...)
}

// createStreamableClient creates a streamable HTTP MCP client
func (f *MCPClientFactory) createStreamableClient(config MCPServerConfig) (*mcpclient.Client, error) {
	if config.URL == "" {
		return nil, errors.New("URL is required for streamable transport")
	}

	return mcpclient.NewStreamableHttpClient(config.URL, transport.WithHTTPHeaders(config.Headers))
}
