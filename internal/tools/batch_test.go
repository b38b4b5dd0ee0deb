package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayuer/airtable-mcp-go/internal/airtable"
)

func TestBatchCreateRecordsTool_Contract(t *testing.T) {
	RunToolContractTests(t, &BatchCreateRecordsTool{})
}

func TestBatchUpdateRecordsTool_Contract(t *testing.T) {
	RunToolContractTests(t, &BatchUpdateRecordsTool{})
}

func TestBatchDeleteRecordsTool_Contract(t *testing.T) {
	RunToolContractTests(t, &BatchDeleteRecordsTool{})
}

func TestBatchUpsertRecordsTool_Contract(t *testing.T) {
	RunToolContractTests(t, &BatchUpsertRecordsTool{})
}

func TestBatchCreateRecordsTool_Success(t *testing.T) {
	var created int
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Records []struct {
				Fields airtable.Fields `json:"fields"`
			} `json:"records"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		out := struct {
			Records []airtable.Record `json:"records"`
		}{}
		for _, in := range body.Records {
			created++
			out.Records = append(out.Records, airtable.Record{ID: fmt.Sprintf("rec%d", created), Fields: in.Fields})
		}
		json.NewEncoder(w).Encode(out)
	})

	out, err := (&BatchCreateRecordsTool{Adapter: a}).Execute(context.Background(), map[string]any{
		"base_id":          "appX",
		"table_id_or_name": "Tasks",
		"records": []any{
			map[string]any{"Name": "One"},
			map[string]any{"Name": "Two"},
		},
	})
	require.NoError(t, err)

	var records []airtable.Record
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "One", records[0].Fields["Name"])
	assert.Equal(t, "Two", records[1].Fields["Name"])
}

func TestBatchUpdateRecordsTool_Success(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Records []airtable.UpdateRecord `json:"records"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Records, 1)
		assert.Equal(t, "rec1", body.Records[0].ID)
		out := struct {
			Records []airtable.Record `json:"records"`
		}{Records: []airtable.Record{{ID: "rec1", Fields: body.Records[0].Fields}}}
		json.NewEncoder(w).Encode(out)
	})

	out, err := (&BatchUpdateRecordsTool{Adapter: a}).Execute(context.Background(), map[string]any{
		"base_id":          "appX",
		"table_id_or_name": "Tasks",
		"records": []any{
			map[string]any{"id": "rec1", "fields": map[string]any{"Done": true}},
		},
	})
	require.NoError(t, err)

	var records []airtable.Record
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	assert.Equal(t, true, records[0].Fields["Done"])
}

func TestBatchDeleteRecordsTool_Success(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		ids := r.URL.Query()["records[]"]
		out := struct {
			Records []airtable.DeletedRecord `json:"records"`
		}{}
		for _, id := range ids {
			out.Records = append(out.Records, airtable.DeletedRecord{ID: id, Deleted: true})
		}
		json.NewEncoder(w).Encode(out)
	})

	out, err := (&BatchDeleteRecordsTool{Adapter: a}).Execute(context.Background(), map[string]any{
		"base_id":          "appX",
		"table_id_or_name": "Tasks",
		"record_ids":       []any{"rec1", "rec2"},
	})
	require.NoError(t, err)

	var deleted []airtable.DeletedRecord
	require.NoError(t, json.Unmarshal([]byte(out), &deleted))
	require.Len(t, deleted, 2)
	assert.True(t, deleted[0].Deleted)
}

func TestBatchUpsertRecordsTool_Success(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			PerformUpsert struct {
				FieldsToMergeOn []string `json:"fieldsToMergeOn"`
			} `json:"performUpsert"`
			Records []airtable.UpsertRecord `json:"records"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"Name"}, body.PerformUpsert.FieldsToMergeOn)

		json.NewEncoder(w).Encode(airtable.UpsertResult{
			CreatedRecordIDs: []string{"recNew"},
			UpdatedRecordIDs: []string{"recOld"},
			Records: []airtable.Record{
				{ID: "recOld", Fields: airtable.Fields{"Name": "Existing"}},
				{ID: "recNew", Fields: airtable.Fields{"Name": "Fresh"}},
			},
		})
	})

	out, err := (&BatchUpsertRecordsTool{Adapter: a}).Execute(context.Background(), map[string]any{
		"base_id":          "appX",
		"table_id_or_name": "Tasks",
		"records": []any{
			map[string]any{"id": "recOld", "fields": map[string]any{"Name": "Existing"}},
			map[string]any{"fields": map[string]any{"Name": "Fresh"}},
		},
		"key_fields": []any{"Name"},
	})
	require.NoError(t, err)

	var result airtable.UpsertResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, []string{"recNew"}, result.CreatedRecordIDs)
	assert.Equal(t, []string{"recOld"}, result.UpdatedRecordIDs)
	assert.Len(t, result.Records, 2)
}

func TestBatchUpsertRecordsTool_ErrorString(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":{"type":"INVALID_REQUEST_BODY","message":"fieldsToMergeOn must reference existing fields"}}`))
	})

	out, err := (&BatchUpsertRecordsTool{Adapter: a}).Execute(context.Background(), map[string]any{
		"base_id":          "appX",
		"table_id_or_name": "Tasks",
		"records":          []any{map[string]any{"fields": map[string]any{"Name": "X"}}},
		"key_fields":       []any{"Ghost"},
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Error batch upserting records in 'Tasks' in 'appX':")
	assert.Contains(t, out, "ValidationError")
}
