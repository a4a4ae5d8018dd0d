package config

import (
	"github.com/jcooky/go-din"
)

type AnthropicConfig struct {
	APIKey string `env:"ANTHROPIC_API_KEY"`
	Model  string `env:"ANTHROPIC_MODEL"`
}

func NewAnthropicConfig() *AnthropicConfig {
	conf := &AnthropicConfig{
		Model: "claude-3-7-sonnet-20250219",
	}
	_ = resolveConfig(conf, false)
	return conf
}

func init() {
	din.RegisterT(func(c *din.Container) (*AnthropicConfig, error) {
		conf := &AnthropicConfig{
			Model: "claude-3-7-sonnet-20250219",
		}
		return conf, resolveConfig(conf, c.Env == din.EnvTest)
	})
}
