package tool

import "context"

// FallbackMessage is what the fallback tool answers with.
const FallbackMessage = "Sorry could not complete the requested action"

// NewFallbackMessage returns the fallback_message tool. It takes no arguments
// and is invoked by the tool node when a call fails twice.
func NewFallbackMessage() Tool {
	return NewFunctionTool(FallbackMessageID, "fallback message when tool execution fails", nil,
		func(context.Context, map[string]any) (any, error) {
			return FallbackMessage, nil
		})
}
