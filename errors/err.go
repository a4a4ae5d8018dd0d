package errors

import (
	"fmt"
)

var (
	ErrInvalidConfig   = fmt.Errorf("stayagent: invalid config")
	ErrInvalidParams   = fmt.Errorf("stayagent: invalid params")
	ErrInvalidToolArgs = fmt.Errorf("stayagent: invalid tool arguments")
	ErrToolNotFound    = fmt.Errorf("stayagent: tool not found")
	ErrNoFinalAnswer   = fmt.Errorf("stayagent: no final answer")
	ErrMaxToolCalls    = fmt.Errorf("stayagent: max tool calls reached")
)
