// Package amount converts between human decimal strings and the i64 stroop integers the network
// actually stores (1 unit = 10^7 stroops). Grounded on the teacher's FloatToString
// (internal/utils/float.go), generalized into a full parser since the spec bans binary floats
// entirely: amounts are parsed digit-by-digit into a fixed-point integer, never through
// strconv.ParseFloat.
package amount

import (
	"fmt"
	"math"
	"strings"
)

// Fractional precision: 1 unit = 10,000,000 stroops.
const scale = 10_000_000

// Error is the sentinel error kind for amount parsing, part of the InputInvalid taxonomy row.
type Error struct {
	Msg string
}

func (e *Error) Error() string { return fmt.Sprintf("amount: %s", e.Msg) }

// Parse converts a decimal string (at most 7 fractional digits, '.' separator only) into stroops.
// It never calls strconv.ParseFloat: amounts are parsed as an integer part and a zero-padded
// fractional part, combined without going through a binary floating-point representation.
func Parse(s string) (int64, error) {
	if s == "" {
		return 0, &Error{Msg: "empty amount string"}
	}
	if strings.Contains(s, ",") {
		return 0, &Error{Msg: "comma is not a valid decimal separator"}
	}
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" && (!hasFrac || frac == "") {
		return 0, &Error{Msg: "no digits"}
	}
	if whole == "" {
		whole = "0"
	}
	if !isDigits(whole) {
		return 0, &Error{Msg: "non-digit characters in integer part"}
	}
	if hasFrac {
		if len(frac) > 7 {
			return 0, &Error{Msg: "more than 7 fractional digits"}
		}
		if !isDigits(frac) {
			return 0, &Error{Msg: "non-digit characters in fractional part"}
		}
		frac = frac + strings.Repeat("0", 7-len(frac))
	} else {
		frac = "0000000"
	}

	var wholeVal int64
	for _, c := range whole {
		d := int64(c - '0')
		if wholeVal > (math.MaxInt64-d)/10 {
			return 0, &Error{Msg: "integer part overflows i64 stroops"}
		}
		wholeVal = wholeVal*10 + d
	}
	if wholeVal > math.MaxInt64/scale {
		return 0, &Error{Msg: "amount exceeds i64::MAX/10^7"}
	}
	whole64 := wholeVal * scale

	var fracVal int64
	for _, c := range frac {
		fracVal = fracVal*10 + int64(c-'0')
	}

	total := whole64 + fracVal
	if total < 0 {
		return 0, &Error{Msg: "amount exceeds i64::MAX/10^7"}
	}
	if neg {
		total = -total
	}
	return total, nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// String renders stroops as a decimal string with exactly as many fractional digits as needed
// (trailing zeros trimmed), matching the teacher's FloatToString output shape.
func String(stroops int64) string {
	neg := stroops < 0
	u := uint64(stroops)
	if neg {
		u = uint64(-stroops)
	}
	whole := u / scale
	frac := u % scale
	fracStr := fmt.Sprintf("%07d", frac)
	fracStr = strings.TrimRight(fracStr, "0")
	var out string
	if fracStr == "" {
		out = fmt.Sprintf("%d", whole)
	} else {
		out = fmt.Sprintf("%d.%s", whole, fracStr)
	}
	if neg {
		out = "-" + out
	}
	return out
}
