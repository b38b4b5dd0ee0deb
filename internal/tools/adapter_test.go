package tools

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayuer/airtable-mcp-go/internal/credentials"
)

func TestNewAdapter_NilProvider(t *testing.T) {
	// The only failure in this package that surfaces as a Go error:
	// a missing credential source is a configuration error.
	a, err := NewAdapter(nil)
	assert.Error(t, err)
	assert.Nil(t, a)
}

func TestExecute_MissingKeyIsAuthenticationError(t *testing.T) {
	a, err := NewAdapter(credentials.Static(""))
	require.NoError(t, err)

	tool := &ListBasesTool{Adapter: a}
	out, err := tool.Execute(context.Background(), nil)
	require.NoError(t, err, "credential failures are absorbed, never raised")
	assert.Contains(t, out, "Error listing bases:")
	assert.Contains(t, out, "AuthenticationError")
}

func TestAdapter_ClientPerCall(t *testing.T) {
	var calls int
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"bases":[]}`))
	})

	tool := &ListBasesTool{Adapter: a}
	for i := 0; i < 3; i++ {
		_, err := tool.Execute(context.Background(), nil)
		require.NoError(t, err)
	}
	// One remote call per invocation; rebuilding the handle adds none.
	assert.Equal(t, 3, calls)
}
