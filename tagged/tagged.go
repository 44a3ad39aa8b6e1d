// Package tagged converts a resolved value.Table into the BurntSushi
// toml-test tagged-value JSON schema named in spec.md §6, for the
// CLI-surface-only "decode" test harness. It is not part of the core's
// library contract.
package tagged

import (
	"github.com/awsqed/toml-semantics/internal/literal"
	"github.com/awsqed/toml-semantics/value"
)

// scalar is the {"type": T, "value": S} wrapper the toml-test harness
// expects around every leaf value.
type scalar struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Encode converts v into a JSON-marshalable tree: scalars become tagged
// {type, value} objects (a string's value is its raw text; every other
// scalar is rendered via internal/literal), arrays recurse into
// []interface{}, and tables recurse into map[string]interface{}.
func Encode(v value.Value) interface{} {
	switch v.Kind() {
	case value.Array:
		arr := v.Array()
		out := make([]interface{}, len(arr))
		for i, e := range arr {
			out[i] = Encode(e)
		}
		return out
	case value.TableKind:
		return EncodeTable(v.Table())
	default:
		return tagScalar(v)
	}
}

// EncodeTable converts a table directly, for the CLI's top-level document.
func EncodeTable(t *value.Table) map[string]interface{} {
	out := make(map[string]interface{}, t.Len())
	for _, k := range t.Keys() {
		v, _ := t.Get(k)
		out[k] = Encode(v)
	}
	return out
}

func tagScalar(v value.Value) scalar {
	if v.Kind() == value.String {
		return scalar{Type: tagType(v.Kind()), Value: v.Str()}
	}
	return scalar{Type: tagType(v.Kind()), Value: literal.String(v)}
}

func tagType(k value.Kind) string {
	switch k {
	case value.String:
		return "string"
	case value.Integer:
		return "integer"
	case value.Float:
		return "float"
	case value.Bool:
		return "bool"
	case value.TimeOfDay:
		return "time-local"
	case value.ZonedTime:
		return "datetime"
	case value.LocalDateTime:
		return "datetime-local"
	case value.LocalDate:
		return "date-local"
	default:
		return "unknown"
	}
}
