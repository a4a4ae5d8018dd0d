package tool_test

import (
	"os/exec"

	"github.com/openstay/stayagent/tool"
)

func (s *ToolTestSuite) TestRegisterStdioServer() {
	if _, err := exec.LookPath("npx"); err != nil {
		s.T().Skip("npx is not installed")
	}

	s.Require().NoError(s.toolManager.RegisterServer(s, tool.RegisterServerRequest{
		ServerName: "filesystem",
		Config: tool.MCPServerConfig{
			Command: "npx",
			Args: []string{
				"-y", "@modelcontextprotocol/server-filesystem", ".",
			},
		},
	}))

	def, ok := s.toolManager.FindTool("list_directory")
	s.Require().True(ok)
	s.Equal("list_directory", def.Name)

	tools := s.toolManager.AnthropicTools()
	s.NotEmpty(tools)

	result, err := s.toolManager.CallTool(s, "list_directory", map[string]any{
		"path": ".",
	})
	s.Require().NoError(err)
	s.False(result.IsError)
	s.NotEmpty(result.Text)
	s.T().Logf("list_directory: %s", result.Text)
}
