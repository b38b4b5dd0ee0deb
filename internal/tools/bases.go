package tools

import (
	"context"
	"fmt"
)

// ListBasesTool enumerates all bases accessible with the configured key.
type ListBasesTool struct {
	Adapter *Adapter
}

func (t *ListBasesTool) Name() string { return "list_bases" }
func (t *ListBasesTool) Description() string {
	return "List all Airtable bases accessible with the configured API key."
}
func (t *ListBasesTool) Parameters() map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}
}

func (t *ListBasesTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	client, err := t.Adapter.client()
	if err != nil {
		return fmt.Sprintf("Error listing bases: %s", describeError(err)), nil
	}
	bases, err := client.Bases(ctx)
	if err != nil {
		return fmt.Sprintf("Error listing bases: %s", describeError(err)), nil
	}
	return toJSON(bases)
}

// ListTablesTool enumerates the tables (with schema) of one base.
type ListTablesTool struct {
	Adapter *Adapter
}

func (t *ListTablesTool) Name() string { return "list_tables" }
func (t *ListTablesTool) Description() string {
	return "List all tables within a base, including field and view schemas."
}
func (t *ListTablesTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"base_id": map[string]any{"type": "string", "description": "The ID of the base"},
		},
		"required": []string{"base_id"},
	}
}

func (t *ListTablesTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	baseID := stringArg(args, "base_id")
	client, err := t.Adapter.client()
	if err != nil {
		return fmt.Sprintf("Error listing tables for base '%s': %s", baseID, describeError(err)), nil
	}
	tables, err := client.Base(baseID).Tables(ctx)
	if err != nil {
		return fmt.Sprintf("Error listing tables for base '%s': %s", baseID, describeError(err)), nil
	}
	return toJSON(tables)
}
