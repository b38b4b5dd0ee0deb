package airtable

import (
	"fmt"
	"net/url"
	"strconv"
)

// SortField orders a record listing by one field.
// Direction is "asc" or "desc"; empty means "asc".
type SortField struct {
	Field     string `json:"field"`
	Direction string `json:"direction,omitempty"`
}

// GetRecordOptions are the options Airtable accepts when fetching a
// single record.
type GetRecordOptions struct {
	CellFormat            string
	TimeZone              string
	UserLocale            string
	ReturnFieldsByFieldID bool
}

func (o GetRecordOptions) query() url.Values {
	q := url.Values{}
	setStr(q, "cellFormat", o.CellFormat)
	setStr(q, "timeZone", o.TimeZone)
	setStr(q, "userLocale", o.UserLocale)
	if o.ReturnFieldsByFieldID {
		q.Set("returnFieldsByFieldId", "true")
	}
	return q
}

// ListRecordsOptions are the options Airtable accepts when listing
// records. Formula is the already-serialized filter formula; use the
// formulas package to build one from a structured expression.
type ListRecordsOptions struct {
	View                  string
	Formula               string
	Fields                []string
	Sort                  []SortField
	MaxRecords            int
	PageSize              int
	CellFormat            string
	TimeZone              string
	UserLocale            string
	ReturnFieldsByFieldID bool
}

func (o ListRecordsOptions) query() url.Values {
	q := url.Values{}
	setStr(q, "view", o.View)
	setStr(q, "filterByFormula", o.Formula)
	setStr(q, "cellFormat", o.CellFormat)
	setStr(q, "timeZone", o.TimeZone)
	setStr(q, "userLocale", o.UserLocale)
	if o.MaxRecords > 0 {
		q.Set("maxRecords", strconv.Itoa(o.MaxRecords))
	}
	if o.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(o.PageSize))
	}
	if o.ReturnFieldsByFieldID {
		q.Set("returnFieldsByFieldId", "true")
	}
	for _, f := range o.Fields {
		q.Add("fields[]", f)
	}
	for i, s := range o.Sort {
		q.Set(fmt.Sprintf("sort[%d][field]", i), s.Field)
		dir := s.Direction
		if dir == "" {
			dir = "asc"
		}
		q.Set(fmt.Sprintf("sort[%d][direction]", i), dir)
	}
	return q
}

// CreateRecordOptions are the options Airtable accepts on create calls.
type CreateRecordOptions struct {
	Typecast              bool
	ReturnFieldsByFieldID bool
}

func (o CreateRecordOptions) apply(body map[string]any) {
	if o.Typecast {
		body["typecast"] = true
	}
	if o.ReturnFieldsByFieldID {
		body["returnFieldsByFieldId"] = true
	}
}

// UpdateRecordOptions are the options Airtable accepts on update calls.
// Replace selects a destructive full replace (PUT) over a partial
// update (PATCH).
type UpdateRecordOptions struct {
	Typecast              bool
	Replace               bool
	ReturnFieldsByFieldID bool
}

func (o UpdateRecordOptions) apply(body map[string]any) {
	if o.Typecast {
		body["typecast"] = true
	}
	if o.ReturnFieldsByFieldID {
		body["returnFieldsByFieldId"] = true
	}
}

// UpsertOptions are the options Airtable accepts on batch upserts.
type UpsertOptions struct {
	Typecast              bool
	Replace               bool
	ReturnFieldsByFieldID bool
}

func (o UpsertOptions) apply(body map[string]any) {
	if o.Typecast {
		body["typecast"] = true
	}
	if o.ReturnFieldsByFieldID {
		body["returnFieldsByFieldId"] = true
	}
}

func setStr(q url.Values, key, val string) {
	if val != "" {
		q.Set(key, val)
	}
}
