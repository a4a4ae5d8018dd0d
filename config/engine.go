package config

import (
	"time"

	"github.com/jcooky/go-din"
)

type EngineConfig struct {
	// MaxToolCalls bounds the number of tool-call rounds in a single run.
	MaxToolCalls int     `env:"STAYAGENT_MAX_TOOL_CALLS"`
	MaxTokens    int64   `env:"STAYAGENT_MAX_TOKENS"`
	Temperature  float64 `env:"STAYAGENT_TEMPERATURE"`

	// Pacing between calls to the model API. The upstream rate limits are
	// strict for free-tier keys, so the defaults stay conservative.
	ToolRoundDelay time.Duration
	ModelCallDelay time.Duration
	RetryDelay     time.Duration
}

func NewEngineConfig() *EngineConfig {
	conf := defaultEngineConfig()
	_ = resolveConfig(conf, false)
	return conf
}

func defaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		MaxToolCalls:   5,
		MaxTokens:      4096,
		Temperature:    0.2,
		ToolRoundDelay: 3 * time.Second,
		ModelCallDelay: 2 * time.Second,
		RetryDelay:     5 * time.Second,
	}
}

func init() {
	din.RegisterT(func(c *din.Container) (*EngineConfig, error) {
		conf := defaultEngineConfig()
		return conf, resolveConfig(conf, c.Env == din.EnvTest)
	})
}
