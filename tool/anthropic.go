package tool

import (
	"github.com/anthropics/anthropic-sdk-go"
	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/samber/lo"
)

// AnthropicTools returns every registered MCP tool converted to the tool
// parameter shape the Anthropic messages API expects. Order is registration
// order.
func (m *manager) AnthropicTools() []anthropic.ToolUnionParam {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	return lo.Map(m.toolOrder, func(name string, _ int) anthropic.ToolUnionParam {
		return convertTool(m.tools[name].def)
	})
}

func convertTool(def mcpgo.Tool) anthropic.ToolUnionParam {
	inputSchema := anthropic.ToolInputSchemaParam{
		Type:       "object",
		Properties: def.InputSchema.Properties,
	}
	if len(def.InputSchema.Required) > 0 {
		inputSchema.Required = def.InputSchema.Required
	}

	return anthropic.ToolUnionParam{
		OfTool: &anthropic.ToolParam{
			Name:        def.Name,
			Description: anthropic.String(def.Description),
			InputSchema: inputSchema,
		},
	}
}
