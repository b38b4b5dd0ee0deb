package tools

import (
	"context"
	"fmt"

	"github.com/dayuer/airtable-mcp-go/internal/airtable"
)

// BatchCreateRecordsTool creates multiple records; the client layer
// chunks requests to Airtable's per-request record limit.
type BatchCreateRecordsTool struct {
	Adapter *Adapter
}

func (t *BatchCreateRecordsTool) Name() string { return "batch_create_records" }
func (t *BatchCreateRecordsTool) Description() string {
	return "Create multiple records in a table in batches."
}
func (t *BatchCreateRecordsTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"base_id":          map[string]any{"type": "string", "description": "The ID of the base"},
			"table_id_or_name": map[string]any{"type": "string", "description": "The ID or name of the table"},
			"records": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "object"},
				"description": "One fields object per record to create",
			},
			"typecast": map[string]any{"type": "boolean"},
			"return_fields_by_field_id": map[string]any{"type": "boolean"},
		},
		"required": []string{"base_id", "table_id_or_name", "records"},
	}
}

func (t *BatchCreateRecordsTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	baseID := stringArg(args, "base_id")
	table := stringArg(args, "table_id_or_name")
	fail := func(err error) string {
		return fmt.Sprintf("Error batch creating records in '%s' in '%s': %s", table, baseID, describeError(err))
	}

	client, err := t.Adapter.client()
	if err != nil {
		return fail(err), nil
	}
	raw, _ := args["records"].([]any)
	records := make([]airtable.Fields, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(map[string]any); ok {
			records = append(records, airtable.Fields(m))
		}
	}
	opts := airtable.CreateRecordOptions{
		Typecast:              boolArg(args, "typecast"),
		ReturnFieldsByFieldID: boolArg(args, "return_fields_by_field_id"),
	}
	created, err := client.Table(baseID, table).BatchCreate(ctx, records, opts)
	if err != nil {
		return fail(err), nil
	}
	return toJSON(created)
}

// BatchUpdateRecordsTool updates multiple records; each input record
// must carry an id and a fields object.
type BatchUpdateRecordsTool struct {
	Adapter *Adapter
}

func (t *BatchUpdateRecordsTool) Name() string { return "batch_update_records" }
func (t *BatchUpdateRecordsTool) Description() string {
	return "Update multiple records in a table in batches. Each record needs 'id' and 'fields'."
}
func (t *BatchUpdateRecordsTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"base_id":          map[string]any{"type": "string", "description": "The ID of the base"},
			"table_id_or_name": map[string]any{"type": "string", "description": "The ID or name of the table"},
			"records": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "object"},
				"description": "Objects with 'id' and 'fields' for each record to update",
			},
			"typecast": map[string]any{"type": "boolean"},
			"replace":  map[string]any{"type": "boolean"},
			"return_fields_by_field_id": map[string]any{"type": "boolean"},
		},
		"required": []string{"base_id", "table_id_or_name", "records"},
	}
}

func (t *BatchUpdateRecordsTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	baseID := stringArg(args, "base_id")
	table := stringArg(args, "table_id_or_name")
	fail := func(err error) string {
		return fmt.Sprintf("Error batch updating records in '%s' in '%s': %s", table, baseID, describeError(err))
	}

	client, err := t.Adapter.client()
	if err != nil {
		return fail(err), nil
	}
	raw, _ := args["records"].([]any)
	records := make([]airtable.UpdateRecord, 0, len(raw))
	for _, v := range raw {
		m, ok := v.(map[string]any)
		if !ok {
			continue
		}
		id, _ := m["id"].(string)
		fields, _ := m["fields"].(map[string]any)
		records = append(records, airtable.UpdateRecord{ID: id, Fields: airtable.Fields(fields)})
	}
	opts := airtable.UpdateRecordOptions{
		Typecast:              boolArg(args, "typecast"),
		Replace:               boolArg(args, "replace"),
		ReturnFieldsByFieldID: boolArg(args, "return_fields_by_field_id"),
	}
	updated, err := client.Table(baseID, table).BatchUpdate(ctx, records, opts)
	if err != nil {
		return fail(err), nil
	}
	return toJSON(updated)
}

// BatchDeleteRecordsTool deletes multiple records by ID.
type BatchDeleteRecordsTool struct {
	Adapter *Adapter
}

func (t *BatchDeleteRecordsTool) Name() string { return "batch_delete_records" }
func (t *BatchDeleteRecordsTool) Description() string {
	return "Delete multiple records from a table in batches."
}
func (t *BatchDeleteRecordsTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"base_id":          map[string]any{"type": "string", "description": "The ID of the base"},
			"table_id_or_name": map[string]any{"type": "string", "description": "The ID or name of the table"},
			"record_ids": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []string{"base_id", "table_id_or_name", "record_ids"},
	}
}

func (t *BatchDeleteRecordsTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	baseID := stringArg(args, "base_id")
	table := stringArg(args, "table_id_or_name")
	fail := func(err error) string {
		return fmt.Sprintf("Error batch deleting records from '%s' in '%s': %s", table, baseID, describeError(err))
	}

	client, err := t.Adapter.client()
	if err != nil {
		return fail(err), nil
	}
	deleted, err := client.Table(baseID, table).BatchDelete(ctx, stringsArg(args, "record_ids"))
	if err != nil {
		return fail(err), nil
	}
	return toJSON(deleted)
}

// BatchUpsertRecordsTool creates or updates records in batches.
// Records carrying an id update that record; the rest are matched
// against existing rows by key_fields.
type BatchUpsertRecordsTool struct {
	Adapter *Adapter
}

func (t *BatchUpsertRecordsTool) Name() string { return "batch_upsert_records" }
func (t *BatchUpsertRecordsTool) Description() string {
	return "Update or create records in batches, matched by 'id' when present or by key_fields otherwise."
}
func (t *BatchUpsertRecordsTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"base_id":          map[string]any{"type": "string", "description": "The ID of the base"},
			"table_id_or_name": map[string]any{"type": "string", "description": "The ID or name of the table"},
			"records": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "object"},
				"description": "Objects with 'fields' (and optionally 'id') per record",
			},
			"key_fields": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Field names used to match records without an id",
			},
			"typecast": map[string]any{"type": "boolean"},
			"replace":  map[string]any{"type": "boolean"},
			"return_fields_by_field_id": map[string]any{"type": "boolean"},
		},
		"required": []string{"base_id", "table_id_or_name", "records", "key_fields"},
	}
}

func (t *BatchUpsertRecordsTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	baseID := stringArg(args, "base_id")
	table := stringArg(args, "table_id_or_name")
	fail := func(err error) string {
		return fmt.Sprintf("Error batch upserting records in '%s' in '%s': %s", table, baseID, describeError(err))
	}

	client, err := t.Adapter.client()
	if err != nil {
		return fail(err), nil
	}
	raw, _ := args["records"].([]any)
	records := make([]airtable.UpsertRecord, 0, len(raw))
	for _, v := range raw {
		m, ok := v.(map[string]any)
		if !ok {
			continue
		}
		id, _ := m["id"].(string)
		fields, _ := m["fields"].(map[string]any)
		records = append(records, airtable.UpsertRecord{ID: id, Fields: airtable.Fields(fields)})
	}
	opts := airtable.UpsertOptions{
		Typecast:              boolArg(args, "typecast"),
		Replace:               boolArg(args, "replace"),
		ReturnFieldsByFieldID: boolArg(args, "return_fields_by_field_id"),
	}
	result, err := client.Table(baseID, table).BatchUpsert(ctx, records, stringsArg(args, "key_fields"), opts)
	if err != nil {
		return fail(err), nil
	}
	return toJSON(result)
}
