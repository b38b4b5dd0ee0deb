package tools

import (
	"context"
	"fmt"

	"github.com/dayuer/airtable-mcp-go/internal/airtable"
)

// GetRecordTool retrieves a single record by ID.
type GetRecordTool struct {
	Adapter *Adapter
}

func (t *GetRecordTool) Name() string { return "get_record" }
func (t *GetRecordTool) Description() string {
	return "Retrieve a single record by its ID from a table within a base."
}
func (t *GetRecordTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"base_id":          map[string]any{"type": "string", "description": "The ID of the base"},
			"table_id_or_name": map[string]any{"type": "string", "description": "The ID or name of the table"},
			"record_id":        map[string]any{"type": "string", "description": "The ID of the record to retrieve"},
			"cell_format":      map[string]any{"type": "string", "enum": []string{"json", "string"}},
			"time_zone":        map[string]any{"type": "string", "description": "Time zone for string cell format"},
			"user_locale":      map[string]any{"type": "string", "description": "Locale for string cell format"},
			"return_fields_by_field_id": map[string]any{"type": "boolean"},
		},
		"required": []string{"base_id", "table_id_or_name", "record_id"},
	}
}

func (t *GetRecordTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	baseID := stringArg(args, "base_id")
	table := stringArg(args, "table_id_or_name")
	recordID := stringArg(args, "record_id")
	fail := func(err error) string {
		return fmt.Sprintf("Error getting record '%s' from '%s' in '%s': %s", recordID, table, baseID, describeError(err))
	}

	client, err := t.Adapter.client()
	if err != nil {
		return fail(err), nil
	}
	opts := airtable.GetRecordOptions{
		CellFormat:            stringArg(args, "cell_format"),
		TimeZone:              stringArg(args, "time_zone"),
		UserLocale:            stringArg(args, "user_locale"),
		ReturnFieldsByFieldID: boolArg(args, "return_fields_by_field_id"),
	}
	rec, err := client.Table(baseID, table).Get(ctx, recordID, opts)
	if err != nil {
		return fail(err), nil
	}
	return toJSON(rec)
}

// ListRecordsTool lists records from a table, with optional filtering.
type ListRecordsTool struct {
	Adapter *Adapter
}

func (t *ListRecordsTool) Name() string { return "list_records" }
func (t *ListRecordsTool) Description() string {
	return "List records from a table. The formula option accepts a formula string or a field-to-value mapping matched with AND equality."
}
func (t *ListRecordsTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"base_id":          map[string]any{"type": "string", "description": "The ID of the base"},
			"table_id_or_name": map[string]any{"type": "string", "description": "The ID or name of the table"},
			"view":             map[string]any{"type": "string", "description": "Name or ID of a view to list from"},
			"formula": map[string]any{
				"type":        []string{"string", "object"},
				"description": "Filter formula, or an object mapping field names to required values",
			},
			"fields":      map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"sort":        map[string]any{"type": "array", "items": map[string]any{"type": "object"}},
			"max_records": map[string]any{"type": "integer", "minimum": 1},
			"page_size":   map[string]any{"type": "integer", "minimum": 1, "maximum": 100},
			"cell_format": map[string]any{"type": "string", "enum": []string{"json", "string"}},
			"time_zone":   map[string]any{"type": "string"},
			"user_locale": map[string]any{"type": "string"},
			"return_fields_by_field_id": map[string]any{"type": "boolean"},
		},
		"required": []string{"base_id", "table_id_or_name"},
	}
}

func (t *ListRecordsTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	baseID := stringArg(args, "base_id")
	table := stringArg(args, "table_id_or_name")
	fail := func(err error) string {
		return fmt.Sprintf("Error listing records from '%s' in '%s': %s", table, baseID, describeError(err))
	}

	client, err := t.Adapter.client()
	if err != nil {
		return fail(err), nil
	}
	formula, err := formulaArg(args)
	if err != nil {
		return fail(err), nil
	}
	opts := airtable.ListRecordsOptions{
		View:                  stringArg(args, "view"),
		Formula:               formula,
		Fields:                stringsArg(args, "fields"),
		Sort:                  sortArg(args, "sort"),
		MaxRecords:            intArg(args, "max_records"),
		PageSize:              intArg(args, "page_size"),
		CellFormat:            stringArg(args, "cell_format"),
		TimeZone:              stringArg(args, "time_zone"),
		UserLocale:            stringArg(args, "user_locale"),
		ReturnFieldsByFieldID: boolArg(args, "return_fields_by_field_id"),
	}
	records, err := client.Table(baseID, table).List(ctx, opts)
	if err != nil {
		return fail(err), nil
	}
	return toJSON(records)
}

// CreateRecordTool creates one record.
type CreateRecordTool struct {
	Adapter *Adapter
}

func (t *CreateRecordTool) Name() string { return "create_record" }
func (t *CreateRecordTool) Description() string {
	return "Create a new record in a table."
}
func (t *CreateRecordTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"base_id":          map[string]any{"type": "string", "description": "The ID of the base"},
			"table_id_or_name": map[string]any{"type": "string", "description": "The ID or name of the table"},
			"fields": map[string]any{
				"type":        "object",
				"description": "Field names or IDs mapped to the values to write",
			},
			"typecast": map[string]any{"type": "boolean", "description": "Let Airtable coerce value types"},
			"return_fields_by_field_id": map[string]any{"type": "boolean"},
		},
		"required": []string{"base_id", "table_id_or_name", "fields"},
	}
}

func (t *CreateRecordTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	baseID := stringArg(args, "base_id")
	table := stringArg(args, "table_id_or_name")
	fail := func(err error) string {
		return fmt.Sprintf("Error creating record in '%s' in '%s': %s", table, baseID, describeError(err))
	}

	client, err := t.Adapter.client()
	if err != nil {
		return fail(err), nil
	}
	opts := airtable.CreateRecordOptions{
		Typecast:              boolArg(args, "typecast"),
		ReturnFieldsByFieldID: boolArg(args, "return_fields_by_field_id"),
	}
	rec, err := client.Table(baseID, table).Create(ctx, fieldsArg(args, "fields"), opts)
	if err != nil {
		return fail(err), nil
	}
	return toJSON(rec)
}

// UpdateRecordTool updates one record, partially or as a full replace.
type UpdateRecordTool struct {
	Adapter *Adapter
}

func (t *UpdateRecordTool) Name() string { return "update_record" }
func (t *UpdateRecordTool) Description() string {
	return "Update an existing record. Partial update by default; set replace to overwrite all fields."
}
func (t *UpdateRecordTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"base_id":          map[string]any{"type": "string", "description": "The ID of the base"},
			"table_id_or_name": map[string]any{"type": "string", "description": "The ID or name of the table"},
			"record_id":        map[string]any{"type": "string", "description": "The ID of the record to update"},
			"fields": map[string]any{
				"type":        "object",
				"description": "Field names or IDs mapped to the values to write",
			},
			"typecast": map[string]any{"type": "boolean"},
			"replace":  map[string]any{"type": "boolean", "description": "Replace the whole record instead of patching"},
			"return_fields_by_field_id": map[string]any{"type": "boolean"},
		},
		"required": []string{"base_id", "table_id_or_name", "record_id", "fields"},
	}
}

func (t *UpdateRecordTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	baseID := stringArg(args, "base_id")
	table := stringArg(args, "table_id_or_name")
	recordID := stringArg(args, "record_id")
	fail := func(err error) string {
		return fmt.Sprintf("Error updating record '%s' in '%s' in '%s': %s", recordID, table, baseID, describeError(err))
	}

	client, err := t.Adapter.client()
	if err != nil {
		return fail(err), nil
	}
	opts := airtable.UpdateRecordOptions{
		Typecast:              boolArg(args, "typecast"),
		Replace:               boolArg(args, "replace"),
		ReturnFieldsByFieldID: boolArg(args, "return_fields_by_field_id"),
	}
	rec, err := client.Table(baseID, table).Update(ctx, recordID, fieldsArg(args, "fields"), opts)
	if err != nil {
		return fail(err), nil
	}
	return toJSON(rec)
}

// DeleteRecordTool deletes one record.
type DeleteRecordTool struct {
	Adapter *Adapter
}

func (t *DeleteRecordTool) Name() string { return "delete_record" }
func (t *DeleteRecordTool) Description() string {
	return "Delete a record from a table."
}
func (t *DeleteRecordTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"base_id":          map[string]any{"type": "string", "description": "The ID of the base"},
			"table_id_or_name": map[string]any{"type": "string", "description": "The ID or name of the table"},
			"record_id":        map[string]any{"type": "string", "description": "The ID of the record to delete"},
		},
		"required": []string{"base_id", "table_id_or_name", "record_id"},
	}
}

func (t *DeleteRecordTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	baseID := stringArg(args, "base_id")
	table := stringArg(args, "table_id_or_name")
	recordID := stringArg(args, "record_id")
	fail := func(err error) string {
		return fmt.Sprintf("Error deleting record '%s' from '%s' in '%s': %s", recordID, table, baseID, describeError(err))
	}

	client, err := t.Adapter.client()
	if err != nil {
		return fail(err), nil
	}
	del, err := client.Table(baseID, table).Delete(ctx, recordID)
	if err != nil {
		return fail(err), nil
	}
	return toJSON(del)
}
