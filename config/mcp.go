package config

import (
	"os"

	"github.com/goccy/go-yaml"
	"github.com/openstay/stayagent/errors"
)

type (
	// MCPServer describes one external tool server in a servers file.
	MCPServer struct {
		Transport string            `yaml:"transport,omitempty" json:"transport,omitempty"`
		Command   string            `yaml:"command,omitempty" json:"command,omitempty"`
		Args      []string          `yaml:"args,omitempty" json:"args,omitempty"`
		Env       map[string]string `yaml:"env,omitempty" json:"env,omitempty"`
		URL       string            `yaml:"url,omitempty" json:"url,omitempty"`
		Headers   map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"`
	}

	ServersFile struct {
		Servers map[string]MCPServer `yaml:"servers"`
	}
)

// DefaultServers returns the built-in accommodation search server,
// spawned on demand over stdio.
func DefaultServers() map[string]MCPServer {
	return map[string]MCPServer{
		"airbnb": {
			Command: "npx",
			Args:    []string{"-y", "@openbnb/mcp-server-airbnb", "--ignore-robots-txt"},
		},
	}
}

func LoadServersFromFile(path string) (map[string]MCPServer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read servers file: %s", path)
	}

	var file ServersFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal servers file: %s", path)
	}
	if len(file.Servers) == 0 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "no servers defined in %s", path)
	}

	return file.Servers, nil
}
