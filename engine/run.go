package engine

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/cenkalti/backoff/v4"
	"github.com/openstay/stayagent/errors"
	"github.com/tidwall/gjson"
)

type (
	RunRequest struct {
		Query string `json:"query"`
	}

	ToolCall struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
		Result    string          `json:"result"`
		IsError   bool            `json:"is_error,omitempty"`
	}

	RunResponse struct {
		Text      string     `json:"text"`
		ToolCalls []ToolCall `json:"tool_calls"`
		Rounds    int        `json:"rounds"`
	}
)

// Run drives the tool-calling conversation for a single query: send the query
// with the registered tool schemas, relay every tool call the model requests,
// and return the model's final text. The number of tool rounds is bounded by
// EngineConfig.MaxToolCalls.
func (e *Engine) Run(ctx context.Context, req RunRequest) (*RunResponse, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, errors.Wrapf(errors.ErrInvalidParams, "query is empty")
	}

	tools := e.tools.AnthropicTools()
	e.logger.Info("starting run", "query", req.Query, "tools", len(tools))

	transcript := []anthropic.MessageParam{
		anthropic.NewUserMessage(anthropic.NewTextBlock(req.Query)),
	}

	resp, err := e.createMessage(ctx, systemPrompt, transcript, tools)
	if err != nil {
		return nil, err
	}

	res := &RunResponse{}
	for hasToolUse(resp) {
		if res.Rounds >= e.config.MaxToolCalls {
			e.logger.Warn("tool call budget exhausted", "max", e.config.MaxToolCalls)
			break
		}
		res.Rounds++

		if res.Rounds > 1 {
			if err := e.pause(ctx, e.config.ToolRoundDelay); err != nil {
				return nil, err
			}
		}

		transcript = append(transcript, resp.ToParam())

		var results []anthropic.ContentBlockParamUnion
		for _, block := range resp.Content {
			toolUse, ok := block.AsAny().(anthropic.ToolUseBlock)
			if !ok {
				continue
			}

			call, resultBlock := e.invokeTool(ctx, toolUse)
			res.ToolCalls = append(res.ToolCalls, call)
			results = append(results, resultBlock)
		}
		transcript = append(transcript, anthropic.NewUserMessage(results...))

		if err := e.pause(ctx, e.config.ModelCallDelay); err != nil {
			return nil, err
		}
		if resp, err = e.createMessage(ctx, systemPrompt, transcript, tools); err != nil {
			return nil, err
		}
	}

	res.Text = finalText(resp)
	if res.Text == "" {
		if res.Rounds >= e.config.MaxToolCalls && hasToolUse(resp) {
			return res, errors.Wrapf(errors.ErrMaxToolCalls, "model still requesting tools after %d rounds", res.Rounds)
		}
		return res, errors.WithStack(errors.ErrNoFinalAnswer)
	}

	e.logger.Info("run finished", "rounds", res.Rounds, "toolCalls", len(res.ToolCalls))

	return res, nil
}

func (e *Engine) invokeTool(ctx context.Context, block anthropic.ToolUseBlock) (ToolCall, anthropic.ContentBlockParamUnion) {
	input := json.RawMessage(block.Input)
	call := ToolCall{
		Name:      block.Name,
		Arguments: input,
	}

	e.logger.Info("model is calling tool", "tool", block.Name, "arguments", string(input))

	var args map[string]any
	if len(input) > 0 {
		if err := json.Unmarshal(input, &args); err != nil {
			e.logger.Error("malformed tool arguments", "tool", block.Name, "err", err)
			call.Result = "invalid tool arguments: " + err.Error()
			call.IsError = true
			return call, anthropic.NewToolResultBlock(block.ID, call.Result, true)
		}
	}

	result, err := e.tools.CallTool(ctx, block.Name, args)
	if err != nil {
		e.logger.Error("tool call failed", "tool", block.Name, "err", err)
		call.Result = err.Error()
		call.IsError = true
		return call, anthropic.NewToolResultBlock(block.ID, call.Result, true)
	}

	call.Result = result.Text
	call.IsError = result.IsError
	if result.IsError {
		e.logger.Warn("tool returned an error", "tool", block.Name, "result", result.Text)
	} else {
		e.logger.Info("tool call succeeded", "tool", block.Name)
		if n := gjson.Get(result.Text, "searchResults.#"); n.Exists() {
			e.logger.Info("search results received", "count", n.Int())
		}
	}

	return call, anthropic.NewToolResultBlock(block.ID, result.Text, result.IsError)
}

// createMessage calls the model once, retrying exactly once after RetryDelay
// when the call fails. Rate-limited keys recover within that window.
func (e *Engine) createMessage(ctx context.Context, system string, messages []anthropic.MessageParam, tools []anthropic.ToolUnionParam) (*anthropic.Message, error) {
	params := anthropic.MessageNewParams{
		Model:       e.modelName,
		MaxTokens:   e.config.MaxTokens,
		Temperature: anthropic.Float(e.config.Temperature),
		Messages:    messages,
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}
	if len(tools) > 0 {
		params.Tools = tools
	}

	var resp *anthropic.Message
	operation := func() error {
		var err error
		resp, err = e.model.NewMessage(ctx, params)
		return err
	}
	notify := func(err error, _ time.Duration) {
		e.logger.Warn("model call failed, retrying once", "err", err, "delay", e.config.RetryDelay)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(e.config.RetryDelay), 1), ctx)
	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		return nil, errors.Wrapf(err, "model call failed")
	}

	return resp, nil
}

func (e *Engine) pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	e.logger.Debug("pacing before next model call", "delay", d)

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	case <-timer.C:
		return nil
	}
}

func hasToolUse(resp *anthropic.Message) bool {
	if resp == nil {
		return false
	}
	for _, block := range resp.Content {
		if _, ok := block.AsAny().(anthropic.ToolUseBlock); ok {
			return true
		}
	}
	return false
}

func finalText(resp *anthropic.Message) string {
	if resp == nil {
		return ""
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(text.Text)
		}
	}

	return strings.TrimSpace(sb.String())
}
