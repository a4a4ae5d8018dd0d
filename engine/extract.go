package engine

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/mitchellh/mapstructure"
	"github.com/openstay/stayagent/errors"
	"github.com/tidwall/gjson"
)

type SearchParams struct {
	Location string `json:"location" mapstructure:"location"`
	CheckIn  string `json:"checkin" mapstructure:"checkin"`
	CheckOut string `json:"checkout" mapstructure:"checkout"`
	Adults   int    `json:"adults" mapstructure:"adults"`
}

// ExtractSearchParams asks the model to pull structured search parameters out
// of a free-form travel query. A query without a recognizable location is an
// error; a missing guest count defaults to one adult.
func (e *Engine) ExtractSearchParams(ctx context.Context, query string) (*SearchParams, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.Wrapf(errors.ErrInvalidParams, "query is empty")
	}

	messages := []anthropic.MessageParam{
		anthropic.NewUserMessage(anthropic.NewTextBlock(query)),
	}
	resp, err := e.createMessage(ctx, extractPrompt, messages, nil)
	if err != nil {
		return nil, err
	}

	text := finalText(resp)
	raw := firstJSONObject(text)
	if raw == "" {
		return nil, errors.Wrapf(errors.ErrInvalidToolArgs, "no JSON object in model output: %q", text)
	}

	value, ok := gjson.Parse(raw).Value().(map[string]any)
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidToolArgs, "model output is not a JSON object: %q", raw)
	}

	var params SearchParams
	if err := mapstructure.WeakDecode(value, &params); err != nil {
		return nil, errors.Wrapf(err, "failed to decode search params")
	}

	if strings.TrimSpace(params.Location) == "" {
		return nil, errors.Wrapf(errors.ErrInvalidToolArgs, "no location found in query")
	}
	if params.Adults <= 0 {
		params.Adults = 1
	}

	e.logger.Info("extracted search params",
		"location", params.Location,
		"checkin", params.CheckIn,
		"checkout", params.CheckOut,
		"adults", params.Adults)

	return &params, nil
}

// firstJSONObject cuts the first balanced {...} out of text. Models sometimes
// wrap the JSON in prose or a code fence.
func firstJSONObject(text string) string {
	start := strings.Index(text, "{")
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		switch {
		case escaped:
			escaped = false
		case ch == '\\' && inString:
			escaped = true
		case ch == '"':
			inString = !inString
		case inString:
		case ch == '{':
			depth++
		case ch == '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}

	return ""
}
