package prebuilt

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/Prateek-Kumar98217/langraph-test/graph"
	"github.com/Prateek-Kumar98217/langraph-test/message"
	"github.com/Prateek-Kumar98217/langraph-test/tool"
)

// ToolFailed is the result content when a call and its fallback both fail.
const ToolFailed = "Tool failed"

// ToolNode executes the tool calls of the latest assistant message.
// Every call is attempted twice at most; a call that fails twice is answered
// by the registry's fallback_message tool, or by ToolFailed without one.
type ToolNode struct {
	registry *tool.Registry
	opts     options
}

// NewToolNode creates a tool node over registry.
func NewToolNode(registry *tool.Registry, opts ...Option) *ToolNode {
	return &ToolNode{registry: registry, opts: newOptions(opts)}
}

// Execute answers calls in order, one tool message per answered call.
func (n *ToolNode) Execute(ctx context.Context, calls []message.ToolCall) []message.Message {
	out := make([]message.Message, 0, len(calls))
	for _, call := range calls {
		t, ok := n.registry.Lookup(call.Name)
		if !ok {
			if n.opts.skipUnknown {
				n.opts.logger.Warn("[ToolNode] Unknown tool %q requested, skipping", call.Name)
				continue
			}
			n.opts.logger.Warn("[ToolNode] Unknown tool %q requested", call.Name)
			out = append(out, message.NewTool(call.ID, call.Name, fmt.Sprintf("Error: tool %q is not available", call.Name)))
			continue
		}

		content, err := n.invoke(ctx, t, call.Args)
		if err != nil {
			n.opts.logger.Warn("[ToolNode] Retry failed for %s: %v", call.Name, err)
			content = n.fallback(ctx)
		} else {
			n.opts.logger.Info("[ToolNode] %s returned: %s", call.Name, content)
		}
		out = append(out, message.NewTool(call.ID, call.Name, content))
	}
	return out
}

// invoke runs t with args, retrying once with the same arguments.
func (n *ToolNode) invoke(ctx context.Context, t tool.Tool, args map[string]any) (string, error) {
	var attempts atomic.Int32
	cfg := graph.RetryConfig{
		MaxAttempts: 2,
		Timeout:     n.opts.toolTimeout,
		OnRetry: func(_ int, err error) {
			n.opts.logger.Warn("[ToolNode] First attempt failed for %s: %v", t.Name(), err)
		},
	}
	return graph.Retry(ctx, cfg, func(ctx context.Context) (string, error) {
		attempt := int(attempts.Add(1))
		content, err := n.attempt(ctx, t, args)
		if err != nil {
			return "", &tool.InvocationError{Tool: t.Name(), Attempt: attempt, Err: err}
		}
		return content, nil
	})
}

func (n *ToolNode) attempt(ctx context.Context, t tool.Tool, args map[string]any) (content string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tool panicked: %v", r)
		}
	}()
	if err := n.registry.Validate(t.Name(), args); err != nil {
		return "", err
	}
	result, err := t.Call(ctx, args)
	if err != nil {
		return "", err
	}
	return tool.FormatResult(result)
}

func (n *ToolNode) fallback(ctx context.Context) string {
	fb, ok := n.registry.Lookup(tool.FallbackMessageID)
	if !ok {
		return ToolFailed
	}
	content, err := graph.WithTimeout(ctx, n.opts.toolTimeout, func(ctx context.Context) (string, error) {
		return n.attempt(ctx, fb, nil)
	})
	if err != nil {
		n.opts.logger.Error("[ToolNode] Fallback failed: %v", err)
		return ToolFailed
	}
	return content
}

// Node is the tool node as a graph node. A latest message without tool calls
// leaves the state unchanged.
func (n *ToolNode) Node(ctx context.Context, s ConversationState) (ConversationState, error) {
	last, err := message.Last(s.Messages)
	if err != nil {
		return s, err
	}
	if !last.HasToolCalls() {
		return ConversationState{}, nil
	}
	return ConversationState{Messages: n.Execute(ctx, last.ToolCalls)}, nil
}
