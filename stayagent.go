package stayagent

import (
	"context"
	"log/slog"

	"github.com/openstay/stayagent/config"
	"github.com/openstay/stayagent/engine"
	"github.com/openstay/stayagent/errors"
	"github.com/openstay/stayagent/internal/mylog"
	"github.com/openstay/stayagent/tool"
)

type (
	// Agent ties a set of MCP tool servers to a model and answers travel
	// queries through the tool-calling loop.
	Agent struct {
		logger      *slog.Logger
		toolManager tool.Manager
		engine      *engine.Engine
	}

	options struct {
		apiKey  string
		model   string
		logger  *slog.Logger
		servers map[string]config.MCPServer
		engine  *config.EngineConfig
	}

	Option func(*options)
)

func WithAnthropicAPIKey(key string) Option {
	return func(o *options) {
		o.apiKey = key
	}
}

func WithModel(model string) Option {
	return func(o *options) {
		o.model = model
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithServers replaces the default Airbnb server set.
func WithServers(servers map[string]config.MCPServer) Option {
	return func(o *options) {
		o.servers = servers
	}
}

func WithEngineConfig(conf *config.EngineConfig) Option {
	return func(o *options) {
		o.engine = conf
	}
}

// New builds an Agent, launches its MCP servers and registers their tools.
// Callers must Close the agent to shut the server processes down.
func New(ctx context.Context, opts ...Option) (*Agent, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.apiKey == "" || o.model == "" {
		anthropicConf := config.NewAnthropicConfig()
		if o.apiKey == "" {
			o.apiKey = anthropicConf.APIKey
		}
		if o.model == "" {
			o.model = anthropicConf.Model
		}
	}
	if o.apiKey == "" {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "anthropic api key is required")
	}

	if o.logger == nil {
		logConf := config.NewLogConfig()
		o.logger = mylog.NewLogger(logConf.LogLevel, logConf.LogHandler)
	}

	if o.engine == nil {
		o.engine = config.NewEngineConfig()
	}

	if o.servers == nil {
		o.servers = config.DefaultServers()
	}

	toolManager := tool.NewManager(o.logger)
	for name, server := range o.servers {
		req := tool.RegisterServerRequest{
			ServerName: name,
			Config: tool.MCPServerConfig{
				Transport: tool.MCPTransportType(server.Transport),
				Command:   server.Command,
				Args:      server.Args,
				Env:       server.Env,
				URL:       server.URL,
				Headers:   server.Headers,
			},
		}
		if err := toolManager.RegisterServer(ctx, req); err != nil {
			toolManager.Close()
			return nil, err
		}
	}

	return &Agent{
		logger:      o.logger,
		toolManager: toolManager,
		engine: engine.NewEngine(
			o.logger,
			engine.NewAnthropicCaller(o.apiKey),
			toolManager,
			o.engine,
			o.model,
		),
	}, nil
}

// Run answers a travel query, driving tool calls as the model requests them.
func (a *Agent) Run(ctx context.Context, query string) (*engine.RunResponse, error) {
	return a.engine.Run(ctx, engine.RunRequest{Query: query})
}

// ExtractSearchParams pulls structured search parameters out of a query
// without running the full tool loop.
func (a *Agent) ExtractSearchParams(ctx context.Context, query string) (*engine.SearchParams, error) {
	return a.engine.ExtractSearchParams(ctx, query)
}

func (a *Agent) Close() {
	a.toolManager.Close()
}
