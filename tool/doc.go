// Package tool defines the tools a chatbot can call and the registry that binds
// them to a model.
//
// A Tool has a name, a description, a JSON schema for its arguments and a Call
// method. Registry is built once at startup; it rejects duplicate names and
// schemas that do not compile, validates call arguments with gojsonschema and
// exposes the tools to langchaingo through Definitions.
//
//	reg, err := tool.NewRegistry(
//		tool.NewAddTwoNumbers(),
//		tool.NewMultiplyTwoNumbers(),
//		tool.NewFallbackMessage(),
//	)
//
// Built-in tools:
//
//   - add_two_numbers and multiply_two_numbers
//   - fallback_message, used when a call fails twice
//   - web_search, backed by the Tavily API (TavilySearch)
//   - calculator, a safe arithmetic evaluator (Evaluate, Calculate)
//
// FormatResult turns a tool result into message content.
package tool
