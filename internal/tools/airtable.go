package tools

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dayuer/airtable-mcp-go/internal/airtable"
	"github.com/dayuer/airtable-mcp-go/internal/credentials"
	"github.com/dayuer/airtable-mcp-go/internal/formulas"
)

// Adapter binds the Airtable tools to a credential source. The client
// handle is rebuilt per call from the provider; construction is cheap,
// side-effect-free, and yields a handle safe for concurrent use.
type Adapter struct {
	creds      credentials.Provider
	clientOpts []airtable.Option
}

// NewAdapter builds an Adapter. A nil provider is a configuration
// error and the only failure in this package that is returned as a Go
// error rather than rendered as tool text.
func NewAdapter(creds credentials.Provider, clientOpts ...airtable.Option) (*Adapter, error) {
	if creds == nil {
		return nil, errors.New("tools: credential provider is not set")
	}
	return &Adapter{creds: creds, clientOpts: clientOpts}, nil
}

// client resolves the API key and returns a fresh client handle.
func (a *Adapter) client() (*airtable.Client, error) {
	key, err := a.creds.APIKey()
	if err != nil {
		return nil, err
	}
	return airtable.NewClient(key, a.clientOpts...), nil
}

// RegisterAll registers the full capability surface: eleven tools.
func RegisterAll(r *Registry, a *Adapter) {
	for _, t := range []Tool{
		&ListBasesTool{Adapter: a},
		&ListTablesTool{Adapter: a},
		&GetRecordTool{Adapter: a},
		&ListRecordsTool{Adapter: a},
		&CreateRecordTool{Adapter: a},
		&UpdateRecordTool{Adapter: a},
		&DeleteRecordTool{Adapter: a},
		&BatchCreateRecordsTool{Adapter: a},
		&BatchUpdateRecordsTool{Adapter: a},
		&BatchDeleteRecordsTool{Adapter: a},
		&BatchUpsertRecordsTool{Adapter: a},
	} {
		r.Register(t)
	}
}

// describeError renders a failure as "<Kind> - <message>". Structured
// API errors carry their own kind; missing credentials read as an
// authentication failure since the key lookup happens per call.
func describeError(err error) string {
	var apiErr *airtable.Error
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	if errors.Is(err, credentials.ErrNoAPIKey) {
		return fmt.Sprintf("%s - %v", airtable.KindAuthentication, err)
	}
	return fmt.Sprintf("Error - %v", err)
}

// toJSON renders a successful result as indented JSON text.
func toJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// --- argument decoding ---

func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

func boolArg(args map[string]any, key string) bool {
	b, _ := args[key].(bool)
	return b
}

func intArg(args map[string]any, key string) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

func fieldsArg(args map[string]any, key string) airtable.Fields {
	m, _ := args[key].(map[string]any)
	return airtable.Fields(m)
}

func stringsArg(args map[string]any, key string) []string {
	raw, ok := args[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func sortArg(args map[string]any, key string) []airtable.SortField {
	raw, ok := args[key].([]any)
	if !ok {
		return nil
	}
	out := make([]airtable.SortField, 0, len(raw))
	for _, v := range raw {
		m, ok := v.(map[string]any)
		if !ok {
			continue
		}
		field, _ := m["field"].(string)
		dir, _ := m["direction"].(string)
		if field != "" {
			out = append(out, airtable.SortField{Field: field, Direction: dir})
		}
	}
	return out
}

// formulaArg serializes the formula argument, which may be a plain
// string or a structured expression object.
func formulaArg(args map[string]any) (string, error) {
	return formulas.Decode(args["formula"])
}
