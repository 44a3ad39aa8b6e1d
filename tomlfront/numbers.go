package tomlfront

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// parseInteger parses a TOML integer literal: decimal, 0x/0o/0b prefixed,
// with optional leading sign and underscore digit separators.
func parseInteger(raw string) (int64, error) {
	s := strings.ReplaceAll(raw, "_", "")
	sign := int64(1)
	if strings.HasPrefix(s, "+") {
		s = s[1:]
	} else if strings.HasPrefix(s, "-") {
		sign = -1
		s = s[1:]
	}

	base := 10
	switch {
	case strings.HasPrefix(s, "0x"):
		base = 16
		s = s[2:]
	case strings.HasPrefix(s, "0o"):
		base = 8
		s = s[2:]
	case strings.HasPrefix(s, "0b"):
		base = 2
		s = s[2:]
	}

	v, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, fmt.Errorf("tomlfront: invalid integer %q: %w", raw, err)
	}
	return sign * int64(v), nil
}

// parseFloat parses a TOML float literal, including the special forms
// inf/-inf/+inf/nan/-nan/+nan and underscore digit separators.
func parseFloat(raw string) (float64, error) {
	s := strings.ReplaceAll(raw, "_", "")
	switch s {
	case "inf", "+inf":
		return math.Inf(1), nil
	case "-inf":
		return math.Inf(-1), nil
	case "nan", "+nan", "-nan":
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("tomlfront: invalid float %q: %w", raw, err)
	}
	return v, nil
}
