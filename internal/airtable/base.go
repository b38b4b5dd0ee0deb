package airtable

import (
	"context"
	"net/http"
)

// Base is a stateless handle on one Airtable base.
type Base struct {
	client *Client
	ID     string
}

// Table returns a handle on a table in this base, by ID or name.
func (b *Base) Table(tableIDOrName string) *Table {
	return &Table{client: b.client, BaseID: b.ID, Name: tableIDOrName}
}

// Tables lists the schema of every table in the base.
func (b *Base) Tables(ctx context.Context) ([]TableInfo, error) {
	var out struct {
		Tables []TableInfo `json:"tables"`
	}
	if err := b.client.do(ctx, http.MethodGet, "/meta/bases/"+b.ID+"/tables", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Tables, nil
}
