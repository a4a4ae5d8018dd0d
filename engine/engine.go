package engine

import (
	"context"
	"log/slog"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/jcooky/go-din"
	"github.com/openstay/stayagent/config"
	"github.com/openstay/stayagent/internal/mylog"
	"github.com/openstay/stayagent/tool"
)

type (
	// ModelCaller is the outbound surface to the model provider. The real
	// implementation wraps the Anthropic SDK; tests substitute a scripted one.
	ModelCaller interface {
		NewMessage(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error)
	}

	Engine struct {
		logger *slog.Logger
		model  ModelCaller
		tools  tool.Manager
		config *config.EngineConfig

		modelName anthropic.Model
	}

	anthropicCaller struct {
		client anthropic.Client
	}
)

func (a *anthropicCaller) NewMessage(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	return a.client.Messages.New(ctx, params)
}

func NewAnthropicCaller(apiKey string) ModelCaller {
	return &anthropicCaller{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
	}
}

func NewEngine(logger *slog.Logger, model ModelCaller, tools tool.Manager, conf *config.EngineConfig, modelName string) *Engine {
	return &Engine{
		logger:    logger,
		model:     model,
		tools:     tools,
		config:    conf,
		modelName: anthropic.Model(modelName),
	}
}

func init() {
	din.RegisterT(func(c *din.Container) (*Engine, error) {
		logger, err := din.Get[*mylog.Logger](c, mylog.Key)
		if err != nil {
			return nil, err
		}
		anthropicConf, err := din.GetT[*config.AnthropicConfig](c)
		if err != nil {
			return nil, err
		}
		engineConf, err := din.GetT[*config.EngineConfig](c)
		if err != nil {
			return nil, err
		}
		toolManager, err := din.GetT[tool.Manager](c)
		if err != nil {
			return nil, err
		}

		return NewEngine(
			logger,
			NewAnthropicCaller(anthropicConf.APIKey),
			toolManager,
			engineConf,
			anthropicConf.Model,
		), nil
	})
}
