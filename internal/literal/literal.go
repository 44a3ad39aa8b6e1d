// Package literal renders a single resolved scalar value.Value back to its
// TOML literal text. This is the minimal slice of "the pretty-printer"
// spec.md §1 treats as external: just enough to fill the "S" field of the
// BurntSushi toml-test tagged JSON schema (spec.md §6) for non-string
// scalars. Strings are rendered quoted and escaped here, but the tagged
// package writes string values as their raw text instead.
//
// Grounded in the float/integer/string-escaping style of the retrieved
// maurice-toml mutate.go constructors (NewFloat, NewInteger, and its
// escapeBasicString), adapted to a read path instead of a builder.
package literal

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/awsqed/toml-semantics/value"
)

// String renders a scalar value.Value as TOML would write it.
func String(v value.Value) string {
	switch v.Kind() {
	case value.String:
		return `"` + escapeBasic(v.Str()) + `"`
	case value.Integer:
		return strconv.FormatInt(v.Int(), 10)
	case value.Float:
		return formatFloat(v.FloatVal())
	case value.Bool:
		if v.Bool() {
			return "true"
		}
		return "false"
	case value.LocalDate:
		d := v.LocalDate()
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	case value.TimeOfDay:
		return formatTime(v.TimeOfDay())
	case value.LocalDateTime:
		dt := v.LocalDateTime()
		return fmt.Sprintf("%04d-%02d-%02dT%s", dt.Date.Year, dt.Date.Month, dt.Date.Day, formatTime(dt.Time))
	case value.ZonedTime:
		z := v.ZonedTime()
		dt := z.DateTime
		date := fmt.Sprintf("%04d-%02d-%02dT%s", dt.Date.Year, dt.Date.Month, dt.Date.Day, formatTime(dt.Time))
		return date + formatOffset(z)
	default:
		return ""
	}
}

func formatTime(t value.LocalTime) string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Nanosecond > 0 {
		frac := fmt.Sprintf("%09d", t.Nanosecond)
		frac = strings.TrimRight(frac, "0")
		s += "." + frac
	}
	return s
}

func formatOffset(z value.Zoned) string {
	if z.OffsetUnknown {
		return "-00:00"
	}
	if z.OffsetMinutes == 0 {
		return "Z"
	}
	sign := "+"
	m := z.OffsetMinutes
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("%s%02d:%02d", sign, m/60, m%60)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
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
