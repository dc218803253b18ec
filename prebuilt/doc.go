// Package prebuilt assembles the conversation graphs of this module from the
// graph, tool and memory packages.
//
// Graphs:
//
//   - CreateChatbot: START -> chatbot -> END
//   - CreateToolAgent: chatbot and tools in a loop until the model stops
//     requesting tools
//   - CreateToolSelector: an LLM picks calculator, weather or none and the
//     matching node answers
//   - CreateMemoryChatbot: the memory subgraph runs first, then the chatbot
//     answers with the recalled facts prepended to the user's message
//
// The building blocks are exported too: Chatbot, ToolNode, RouteTools and
// RouteMessages.
//
//	reg, _ := tool.NewRegistry(tool.NewAddTwoNumbers(), tool.NewFallbackMessage())
//	agent, err := prebuilt.CreateToolAgent(model, reg, prebuilt.WithCallTimeout(30*time.Second))
//	out, err := agent.Invoke(ctx, prebuilt.ConversationState{
//		Messages: []message.Message{message.NewUser("add 30 and 40")},
//	})
package prebuilt
