package tool_test

import (
	"testing"

	"github.com/jcooky/go-din"
	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/openstay/stayagent/errors"
	"github.com/openstay/stayagent/internal/mytesting"
	"github.com/openstay/stayagent/tool"
	"github.com/stretchr/testify/suite"
)

type ToolTestSuite struct {
	mytesting.Suite

	toolManager tool.Manager
}

func (s *ToolTestSuite) SetupTest() {
	s.Suite.SetupTest()

	s.toolManager = din.MustGetT[tool.Manager](s.Container)
}

func (s *ToolTestSuite) TearDownTest() {
	s.toolManager.Close()
	s.Suite.TearDownTest()
}

func (s *ToolTestSuite) TestFindToolUnknown() {
	_, ok := s.toolManager.FindTool("nope")
	s.False(ok)
}

func (s *ToolTestSuite) TestAnthropicToolsEmpty() {
	s.Empty(s.toolManager.AnthropicTools())
}

func (s *ToolTestSuite) TestCallToolUnknown() {
	_, err := s.toolManager.CallTool(s, "nope", nil)
	s.Require().ErrorIs(err, errors.ErrToolNotFound)
}

func TestTool(t *testing.T) {
	suite.Run(t, new(ToolTestSuite))
}

func TestValidateArguments(t *testing.T) {
	def := mcpgo.Tool{
		Name: "airbnb_search",
		InputSchema: mcpgo.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"location": map[string]any{"type": "string"},
				"adults":   map[string]any{"type": "integer"},
			},
			Required: []string{"location"},
		},
	}

	for _, tc := range []struct {
		name    string
		args    map[string]any
		wantErr bool
	}{
		{name: "valid", args: map[string]any{"location": "New York", "adults": 2}},
		{name: "optional omitted", args: map[string]any{"location": "New York"}},
		{name: "missing required", args: map[string]any{"adults": 2}, wantErr: true},
		{name: "nil required", args: map[string]any{"location": nil}, wantErr: true},
		{name: "blank required", args: map[string]any{"location": "   "}, wantErr: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tool.ValidateArguments(def, tc.args)
			if tc.wantErr {
				if !errors.Is(err, errors.ErrInvalidToolArgs) {
					t.Fatalf("expected ErrInvalidToolArgs, got %v", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestGetTransport(t *testing.T) {
	for _, tc := range []struct {
		name   string
		config tool.MCPServerConfig
		want   tool.MCPTransportType
	}{
		{name: "explicit stdio", config: tool.MCPServerConfig{Transport: tool.MCPTransportStdio}, want: tool.MCPTransportStdio},
		{name: "explicit http", config: tool.MCPServerConfig{Transport: tool.MCPTransportHTTP, URL: "http://localhost"}, want: tool.MCPTransportHTTP},
		{name: "url defaults to sse", config: tool.MCPServerConfig{URL: "http://localhost"}, want: tool.MCPTransportSSE},
		{name: "command defaults to stdio", config: tool.MCPServerConfig{Command: "npx"}, want: tool.MCPTransportStdio},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.config.GetTransport(); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
