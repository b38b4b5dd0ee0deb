package airtable

// Fields maps field names (or field IDs) to cell values.
type Fields map[string]any

// Record is a single row in a table.
type Record struct {
	ID          string `json:"id"`
	CreatedTime string `json:"createdTime,omitempty"`
	Fields      Fields `json:"fields"`
}

// DeletedRecord confirms a deletion.
type DeletedRecord struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// BaseInfo describes a base visible to the API key.
type BaseInfo struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	PermissionLevel string `json:"permissionLevel,omitempty"`
}

// FieldInfo describes one column of a table schema.
type FieldInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// ViewInfo describes a saved view of a table.
type ViewInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// TableInfo describes a table inside a base.
type TableInfo struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Description    string      `json:"description,omitempty"`
	PrimaryFieldID string      `json:"primaryFieldId,omitempty"`
	Fields         []FieldInfo `json:"fields,omitempty"`
	Views          []ViewInfo  `json:"views,omitempty"`
}

// UpdateRecord pairs a record ID with the fields to write.
type UpdateRecord struct {
	ID     string `json:"id"`
	Fields Fields `json:"fields"`
}

// UpsertRecord is an upsert input: ID is optional, records without one
// are matched by the upsert key fields.
type UpsertRecord struct {
	ID     string `json:"id,omitempty"`
	Fields Fields `json:"fields"`
}

// UpsertResult separates which records an upsert created vs updated.
// Records holds every affected record in input order.
type UpsertResult struct {
	CreatedRecordIDs []string `json:"createdRecords"`
	UpdatedRecordIDs []string `json:"updatedRecords"`
	Records          []Record `json:"records"`
}
