package tool

import (
	"bufio"
	"context"
	"io"
	"strings"

	mcpclient "github.com/mark3labs/mcp-go/client"
	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/openstay/stayagent/errors"
)

type RegisterServerRequest struct {
	ServerName string
	Config     MCPServerConfig
}

func (m *manager) RegisterServer(ctx context.Context, req RegisterServerRequest) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	mcpClient, ok := m.mcpClients[req.ServerName]
	if !ok {
		c, err := m.factory.CreateClient(req.Config)
		if err != nil {
			return errors.Wrapf(err, "failed to create MCP client")
		}

		if stderr, ok := mcpclient.GetStderr(c); ok {
			go func(stderr io.Reader) {
				rd := bufio.NewReader(stderr)
				for {
					line, err := rd.ReadString('\n')
					if err != nil {
						if err == io.EOF || strings.Contains(err.Error(), "already closed") {
							return
						}
						m.logger.Error("failed to copy stderr", "err", err, "serverName", req.ServerName)
						return
					}
					m.logger.Warn("[MCP] "+strings.TrimSpace(line), "serverName", req.ServerName)
				}
			}(stderr)
		}

		if req.Config.GetTransport() != MCPTransportStdio {
			if err := c.Start(ctx); err != nil {
				return errors.Wrapf(err, "failed to start MCP client")
			}
		}

		initRequest := mcpgo.InitializeRequest{}
		initRequest.Params.ProtocolVersion = mcpgo.LATEST_PROTOCOL_VERSION
		if _, err := c.Initialize(ctx, initRequest); err != nil {
			return errors.Wrapf(err, "failed to initialize MCP client")
		}

		m.mcpClients[req.ServerName] = c
		mcpClient = c
	}

	listToolsResult, err := mcpClient.ListTools(ctx, mcpgo.ListToolsRequest{})
	if err != nil {
		return errors.Wrapf(err, "failed to list tools")
	}
	for _, t := range listToolsResult.Tools {
		if prev, ok := m.tools[t.Name]; ok {
			m.logger.Warn("tool already registered", "tool", t.Name, "serverName", prev.serverName)
			continue
		}
		m.tools[t.Name] = toolEntry{serverName: req.ServerName, def: t}
		m.toolOrder = append(m.toolOrder, t.Name)
		m.logger.Debug("tool registered", "tool", t.Name, "serverName", req.ServerName)
	}

	return nil
}

func (m *manager) CallTool(ctx context.Context, toolName string, args map[string]any) (*CallResult, error) {
	m.mtx.Lock()
	entry, ok := m.tools[toolName]
	var client *mcpclient.Client
	if ok {
		client = m.mcpClients[entry.serverName]
	}
	m.mtx.Unlock()

	if !ok || client == nil {
		return nil, errors.Wrapf(errors.ErrToolNotFound, "unknown tool: %s", toolName)
	}

	if err := ValidateArguments(entry.def, args); err != nil {
		return nil, err
	}

	req := mcpgo.CallToolRequest{
		Request: mcpgo.Request{
			Method: "tools/call",
		},
	}
	req.Params.Name = toolName
	req.Params.Arguments = args

	result, err := client.CallTool(ctx, req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to call tool: %s", toolName)
	}

	return &CallResult{
		Text:    contentText(result.Content),
		IsError: result.IsError,
	}, nil
}

// ValidateArguments checks model-supplied arguments against the required
// properties declared by the tool's input schema, so a bad argument set is
// rejected before it reaches the server.
func ValidateArguments(def mcpgo.Tool, args map[string]any) error {
	for _, name := range def.InputSchema.Required {
		v, ok := args[name]
		if !ok || v == nil {
			return errors.Wrapf(errors.ErrInvalidToolArgs, "missing required argument %q for tool %q", name, def.Name)
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			return errors.Wrapf(errors.ErrInvalidToolArgs, "empty required argument %q for tool %q", name, def.Name)
		}
	}
	return nil
}

func contentText(contents []mcpgo.Content) string {
	text := ""
	for _, c := range contents {
		if t, ok := c.(mcpgo.TextContent); ok {
			text += t.Text
		}
	}

	return strings.TrimSpace(text)
}
