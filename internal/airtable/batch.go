package airtable

import (
	"context"
	"net/http"
	"net/url"
)

// batchSize is Airtable's documented cap on records per batch request.
// The client chunks transparently; callers never split their input.
const batchSize = 10

type recordsPage struct {
	Records []Record `json:"records"`
}

// BatchCreate inserts records in chunks of ten and returns the created
// records in input order.
func (t *Table) BatchCreate(ctx context.Context, records []Fields, opts CreateRecordOptions) ([]Record, error) {
	out := make([]Record, 0, len(records))
	for start := 0; start < len(records); start += batchSize {
		chunk := records[start:min(start+batchSize, len(records))]
		items := make([]map[string]any, len(chunk))
		for i, f := range chunk {
			items[i] = map[string]any{"fields": f}
		}
		body := map[string]any{"records": items}
		opts.apply(body)
		var page recordsPage
		if err := t.client.do(ctx, http.MethodPost, t.path(), nil, body, &page); err != nil {
			return nil, err
		}
		out = append(out, page.Records...)
	}
	return out, nil
}

// BatchUpdate writes fields of existing records in chunks of ten.
// Each input must carry the record ID. opts.Replace switches from
// partial update (PATCH) to full replace (PUT).
func (t *Table) BatchUpdate(ctx context.Context, records []UpdateRecord, opts UpdateRecordOptions) ([]Record, error) {
	method := http.MethodPatch
	if opts.Replace {
		method = http.MethodPut
	}
	out := make([]Record, 0, len(records))
	for start := 0; start < len(records); start += batchSize {
		chunk := records[start:min(start+batchSize, len(records))]
		body := map[string]any{"records": chunk}
		opts.apply(body)
		var page recordsPage
		if err := t.client.do(ctx, method, t.path(), nil, body, &page); err != nil {
			return nil, err
		}
		out = append(out, page.Records...)
	}
	return out, nil
}

// BatchDelete removes records in chunks of ten and returns one
// deletion confirmation per input ID, in input order.
func (t *Table) BatchDelete(ctx context.Context, recordIDs []string) ([]DeletedRecord, error) {
	out := make([]DeletedRecord, 0, len(recordIDs))
	for start := 0; start < len(recordIDs); start += batchSize {
		chunk := recordIDs[start:min(start+batchSize, len(recordIDs))]
		q := url.Values{}
		for _, id := range chunk {
			q.Add("records[]", id)
		}
		var page struct {
			Records []DeletedRecord `json:"records"`
		}
		if err := t.client.do(ctx, http.MethodDelete, t.path(), q, nil, &page); err != nil {
			return nil, err
		}
		out = append(out, page.Records...)
	}
	return out, nil
}

// BatchUpsert creates or updates records in chunks of ten. Records with
// an ID update that record; records without one are matched against
// existing rows by keyFields. Chunk results are merged in input order.
func (t *Table) BatchUpsert(ctx context.Context, records []UpsertRecord, keyFields []string, opts UpsertOptions) (*UpsertResult, error) {
	method := http.MethodPatch
	if opts.Replace {
		method = http.MethodPut
	}
	result := &UpsertResult{}
	for start := 0; start < len(records); start += batchSize {
		chunk := records[start:min(start+batchSize, len(records))]
		body := map[string]any{
			"performUpsert": map[string]any{"fieldsToMergeOn": keyFields},
			"records":       chunk,
		}
		opts.apply(body)
		var page UpsertResult
		if err := t.client.do(ctx, method, t.path(), nil, body, &page); err != nil {
			return nil, err
		}
		result.CreatedRecordIDs = append(result.CreatedRecordIDs, page.CreatedRecordIDs...)
		result.UpdatedRecordIDs = append(result.UpdatedRecordIDs, page.UpdatedRecordIDs...)
		result.Records = append(result.Records, page.Records...)
	}
	return result, nil
}
