package airtable

import (
	"context"
	"net/http"
	"net/url"
)

// Table is a stateless handle on one table, addressed by table ID or
// table name.
type Table struct {
	client *Client
	BaseID string
	Name   string
}

func (t *Table) path() string {
	return "/" + t.BaseID + "/" + url.PathEscape(t.Name)
}

// Get fetches a single record by ID.
func (t *Table) Get(ctx context.Context, recordID string, opts GetRecordOptions) (*Record, error) {
	var rec Record
	if err := t.client.do(ctx, http.MethodGet, t.path()+"/"+recordID, opts.query(), nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// List fetches records, following offset pagination until the server
// is exhausted or MaxRecords is reached.
func (t *Table) List(ctx context.Context, opts ListRecordsOptions) ([]Record, error) {
	var all []Record
	offset := ""
	for {
		q := opts.query()
		setStr(q, "offset", offset)
		var page struct {
			Records []Record `json:"records"`
			Offset  string   `json:"offset"`
		}
		if err := t.client.do(ctx, http.MethodGet, t.path(), q, nil, &page); err != nil {
			return nil, err
		}
		all = append(all, page.Records...)
		if opts.MaxRecords > 0 && len(all) >= opts.MaxRecords {
			return all[:opts.MaxRecords], nil
		}
		if page.Offset == "" {
			return all, nil
		}
		offset = page.Offset
	}
}

// Create inserts one record and returns it with its assigned ID.
func (t *Table) Create(ctx context.Context, fields Fields, opts CreateRecordOptions) (*Record, error) {
	body := map[string]any{"fields": fields}
	opts.apply(body)
	var rec Record
	if err := t.client.do(ctx, http.MethodPost, t.path(), nil, body, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update writes fields of an existing record. A partial update (PATCH)
// by default; opts.Replace performs a destructive full replace (PUT).
func (t *Table) Update(ctx context.Context, recordID string, fields Fields, opts UpdateRecordOptions) (*Record, error) {
	method := http.MethodPatch
	if opts.Replace {
		method = http.MethodPut
	}
	body := map[string]any{"fields": fields}
	opts.apply(body)
	var rec Record
	if err := t.client.do(ctx, method, t.path()+"/"+recordID, nil, body, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete removes one record.
func (t *Table) Delete(ctx context.Context, recordID string) (*DeletedRecord, error) {
	var del DeletedRecord
	if err := t.client.do(ctx, http.MethodDelete, t.path()+"/"+recordID, nil, nil, &del); err != nil {
		return nil, err
	}
	return &del, nil
}
