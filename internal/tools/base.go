// Package tools exposes Airtable operations as host-callable tools.
//
// Each tool resolves a fresh client from the credential provider,
// delegates to the airtable package, and returns either the result as
// JSON text or a descriptive error string. Failures never surface as
// Go errors from Execute: the host framework treats any returned text
// as the tool outcome, so errors are rendered in-band as
// "Error <verb>ing <entity> '<id>' in '<container>': <Kind> - <message>".
package tools

import "context"

// Tool is the interface every exposed operation implements.
type Tool interface {
	// Name returns the tool name used in host function calls.
	Name() string

	// Description returns what the tool does.
	Description() string

	// Parameters returns the JSON Schema for tool parameters.
	Parameters() map[string]any

	// Execute runs the tool with the given arguments.
	Execute(ctx context.Context, args map[string]any) (string, error)
}

// ToSchema converts a tool to function-calling schema format.
func ToSchema(t Tool) map[string]any {
	return map[string]any{
		"type": "function",
		"function": map[string]any{
			"name":        t.Name(),
			"description": t.Description(),
			"parameters":  t.Parameters(),
		},
	}
}
