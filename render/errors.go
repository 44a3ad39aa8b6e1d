// Package render formats the semantic core's errors and the
// value-to-domain-object decoder's match messages into human-readable
// strings, per spec.md §4.6. It is the one slice of "the pretty-printer"
// this repo implements, since the full renderer is spec-external.
package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/awsqed/toml-semantics/semantics"
)

// bareKey matches a TOML bare key: it needs no quoting in a rendered
// message. Anything else is double-quoted with standard TOML escapes.
var bareKey = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// QuoteKey renders k the way a diagnostic should show it: unquoted if it is
// a bare key, double-quoted with TOML escapes otherwise.
func QuoteKey(k string) string {
	if bareKey.MatchString(k) {
		return k
	}
	return `"` + escapeBasic(k) + `"`
}

func escapeBasic(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 || r == 0x7F {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// Error renders a *semantics.SemanticError as
// "<line>:<column>: key error: <quoted-key> is <reason>", per spec.md §4.6.
func Error(err *semantics.SemanticError) string {
	reason := ""
	switch err.Kind {
	case semantics.AlreadyAssigned:
		reason = "is already assigned"
	case semantics.ClosedTable:
		reason = "is a closed table"
	case semantics.ImplicitlyTable:
		reason = "is already implicitly defined to be a table"
	default:
		reason = "is invalid"
	}
	return fmt.Sprintf("%s: key error: %s %s", err.Pos, QuoteKey(err.Key), reason)
}
