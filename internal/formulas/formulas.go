// Package formulas builds Airtable filter formulas from structured
// expressions. Serialization is deterministic: equal expressions always
// render to byte-equal strings, so a structured filter and its
// pre-serialized form produce identical API requests.
package formulas

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Formula is a filter expression that can render itself as an Airtable
// formula string.
type Formula interface {
	FormulaString() string
}

// Field references a field by name, rendered in curly braces.
type Field string

func (f Field) FormulaString() string {
	return "{" + strings.ReplaceAll(string(f), "}", `\}`) + "}"
}

type comparison struct {
	op    string
	field Field
	value any
}

func (c comparison) FormulaString() string {
	return c.field.FormulaString() + c.op + Literal(c.value)
}

// EQ compares a field for equality with a value.
func EQ(field string, value any) Formula { return comparison{"=", Field(field), value} }

// NE compares a field for inequality with a value.
func NE(field string, value any) Formula { return comparison{"!=", Field(field), value} }

// GT compares a field strictly greater than a value.
func GT(field string, value any) Formula { return comparison{">", Field(field), value} }

// GTE compares a field greater than or equal to a value.
func GTE(field string, value any) Formula { return comparison{">=", Field(field), value} }

// LT compares a field strictly less than a value.
func LT(field string, value any) Formula { return comparison{"<", Field(field), value} }

// LTE compares a field less than or equal to a value.
func LTE(field string, value any) Formula { return comparison{"<=", Field(field), value} }

type call struct {
	name string
	args []Formula
}

func (c call) FormulaString() string {
	parts := make([]string, len(c.args))
	for i, a := range c.args {
		parts[i] = a.FormulaString()
	}
	return c.name + "(" + strings.Join(parts, ",") + ")"
}

// AND combines sub-expressions; all must hold.
func AND(args ...Formula) Formula { return call{"AND", args} }

// OR combines sub-expressions; at least one must hold.
func OR(args ...Formula) Formula { return call{"OR", args} }

// NOT negates an expression.
func NOT(arg Formula) Formula { return call{"NOT", []Formula{arg}} }

// Literal renders a Go value as an Airtable formula literal. Strings
// are single-quoted with embedded quotes doubled, booleans become
// TRUE()/FALSE(), nil becomes BLANK().
func Literal(v any) string {
	switch val := v.(type) {
	case nil:
		return "BLANK()"
	case bool:
		if val {
			return "TRUE()"
		}
		return "FALSE()"
	case string:
		return "'" + strings.ReplaceAll(val, "'", "''") + "'"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case Formula:
		return val.FormulaString()
	default:
		return "'" + strings.ReplaceAll(fmt.Sprint(val), "'", "''") + "'"
	}
}

// Match builds an equality filter over every entry of the mapping,
// combined with AND. Field names are visited in sorted order so the
// result is deterministic.
func Match(fields map[string]any) Formula {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	exprs := make([]Formula, len(names))
	for i, name := range names {
		exprs[i] = EQ(name, fields[name])
	}
	if len(exprs) == 1 {
		return exprs[0]
	}
	return AND(exprs...)
}

// Decode converts a caller-supplied filter into its formula string.
// Accepted forms: an already-serialized string (passed through), a
// Formula, or a mapping of field names to values (match semantics).
func Decode(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case Formula:
		return val.FormulaString(), nil
	case map[string]any:
		if len(val) == 0 {
			return "", nil
		}
		return Match(val).FormulaString(), nil
	default:
		return "", fmt.Errorf("unsupported formula type %T", v)
	}
}
