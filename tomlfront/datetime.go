package tomlfront

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/awsqed/toml-semantics/value"
)

// These parse the fixed-width RFC 3339 profile TOML uses for its four
// date/time forms. The unstable parser has already validated the literal's
// shape (that's its job); these just read the known field widths out of
// it, the same approach the retrieved pelletier/go-toml/v2 decoder takes in
// its own unmarshalLocalDate/unmarshalLocalTime/unmarshalLocalDateTime
// family (github.com/pelletier/go-toml/v2/unmarshaler.go, vendored into
// this pack's gedw99-hugo-search example) — those functions are internal
// to that module, so this is a from-scratch read of the same fixed widths
// rather than a reused implementation.

func parseDate(s string) (value.Date, error) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return value.Date{}, fmt.Errorf("tomlfront: invalid local date %q", s)
	}
	y, err1 := strconv.Atoi(s[0:4])
	m, err2 := strconv.Atoi(s[5:7])
	d, err3 := strconv.Atoi(s[8:10])
	if err1 != nil || err2 != nil || err3 != nil {
		return value.Date{}, fmt.Errorf("tomlfront: invalid local date %q", s)
	}
	return value.Date{Year: y, Month: m, Day: d}, nil
}

func parseLocalTime(s string) (value.LocalTime, error) {
	if len(s) < 8 || s[2] != ':' || s[5] != ':' {
		return value.LocalTime{}, fmt.Errorf("tomlfront: invalid local time %q", s)
	}
	h, err1 := strconv.Atoi(s[0:2])
	mi, err2 := strconv.Atoi(s[3:5])
	se, err3 := strconv.Atoi(s[6:8])
	if err1 != nil || err2 != nil || err3 != nil {
		return value.LocalTime{}, fmt.Errorf("tomlfront: invalid local time %q", s)
	}
	ns := 0
	if len(s) > 8 && s[8] == '.' {
		frac := s[9:]
		frac = (frac + "000000000")[:9]
		n, err := strconv.Atoi(frac)
		if err != nil {
			return value.LocalTime{}, fmt.Errorf("tomlfront: invalid local time fraction %q", s)
		}
		ns = n
	}
	return value.LocalTime{Hour: h, Minute: mi, Second: se, Nanosecond: ns}, nil
}

func parseLocalDateTime(s string) (value.DateTime, error) {
	if len(s) < 19 || (s[10] != 'T' && s[10] != 't' && s[10] != ' ') {
		return value.DateTime{}, fmt.Errorf("tomlfront: invalid local date-time %q", s)
	}
	d, err := parseDate(s[0:10])
	if err != nil {
		return value.DateTime{}, err
	}
	t, err := parseLocalTime(s[11:])
	if err != nil {
		return value.DateTime{}, err
	}
	return value.DateTime{Date: d, Time: t}, nil
}

func parseZonedDateTime(s string) (value.Zoned, error) {
	// Split off the offset suffix: 'Z'/'z', or +HH:MM / -HH:MM.
	body := s
	var offsetStr string
	if idx := strings.IndexAny(s, "Zz"); idx >= 0 && idx == len(s)-1 {
		body = s[:idx]
		offsetStr = "Z"
	} else if idx := lastSignIndex(s); idx > 0 {
		body = s[:idx]
		offsetStr = s[idx:]
	} else {
		return value.Zoned{}, fmt.Errorf("tomlfront: invalid offset date-time %q", s)
	}

	dt, err := parseLocalDateTime(body)
	if err != nil {
		return value.Zoned{}, err
	}

	if offsetStr == "Z" {
		return value.Zoned{DateTime: dt}, nil
	}

	if len(offsetStr) != 6 || offsetStr[3] != ':' {
		return value.Zoned{}, fmt.Errorf("tomlfront: invalid offset %q", offsetStr)
	}
	sign := 1
	if offsetStr[0] == '-' {
		sign = -1
	}
	oh, err1 := strconv.Atoi(offsetStr[1:3])
	om, err2 := strconv.Atoi(offsetStr[4:6])
	if err1 != nil || err2 != nil {
		return value.Zoned{}, fmt.Errorf("tomlfront: invalid offset %q", offsetStr)
	}
	total := sign * (oh*60 + om)
	// TOML (via RFC 3339) reserves -00:00 for "local offset unknown".
	unknown := sign == -1 && oh == 0 && om == 0
	return value.Zoned{DateTime: dt, OffsetMinutes: total, OffsetUnknown: unknown}, nil
}

// lastSignIndex finds the '+' or '-' that introduces the zone offset,
// searching from the time portion onward so the '-' separators of the date
// can't be mistaken for it.
func lastSignIndex(s string) int {
	for i := 10; i < len(s); i++ {
		if s[i] == '+' || s[i] == '-' {
			return i
		}
	}
	return -1
}
