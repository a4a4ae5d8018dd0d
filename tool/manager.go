package tool

import (
	"context"
	"log/slog"
	"sync"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/jcooky/go-din"
	mcpclient "github.com/mark3labs/mcp-go/client"
	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/openstay/stayagent/internal/mylog"
)

type (
	Manager interface {
		RegisterServer(ctx context.Context, req RegisterServerRequest) error
		AnthropicTools() []anthropic.ToolUnionParam
		FindTool(toolName string) (mcpgo.Tool, bool)
		CallTool(ctx context.Context, toolName string, args map[string]any) (*CallResult, error)
		Close()
	}

	// CallResult is the text payload a tool server returned, plus whether the
	// server flagged it as an error.
	CallResult struct {
		Text    string
		IsError bool
	}

	toolEntry struct {
		serverName string
		def        mcpgo.Tool
	}

	manager struct {
		logger  *mylog.Logger
		factory *MCPClientFactory

		mtx        sync.Mutex
		mcpClients map[string]*mcpclient.Client
		tools      map[string]toolEntry
		toolOrder  []string
	}
)

var (
	_ Manager = (*manager)(nil)
)

func NewManager(logger *slog.Logger) Manager {
	return &manager{
		logger:     logger,
		factory:    NewMCPClientFactory(),
		mcpClients: make(map[string]*mcpclient.Client),
		tools:      make(map[string]toolEntry),
	}
}

func (m *manager) FindTool(toolName string) (mcpgo.Tool, bool) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	entry, ok := m.tools[toolName]
	return entry.def, ok
}

func (m *manager) Close() {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	for _, client := range m.mcpClients {
		if err := client.Close(); err != nil {
			return
		}
	}
}

func init() {
	din.RegisterT(func(c *din.Container) (Manager, error) {
		logger, err := din.Get[*mylog.Logger](c, mylog.Key)
		if err != nil {
			return nil, err
		}

		return NewManager(logger), nil
	})
}
