// Package field holds the atomic value validators used by the request
// schemas. A validator answers a single question about the shape of a
// decoded JSON value; it never mutates, never panics, and treats any
// unexpected type as invalid rather than an error.
//
// The transport decodes numbers with json.Decoder.UseNumber, so numeric
// values arrive as json.Number and integer-ness is judged on the literal:
// `1` is an integer, `1.0` is not.
package field

import (
	"encoding/json"
	"strconv"
	"time"
)

// Validator reports whether a decoded JSON value has the expected shape.
type Validator interface {
	IsValid(value any) bool
}

// Gender codes recognized by the Gender validator.
const (
	GenderUnknown = 0
	GenderMale    = 1
	GenderFemale  = 2
)

// DateLayout is the only accepted date format, DD.MM.YYYY.
const DateLayout = "02.01.2006"

// maxAgeYears bounds the birthday validator. The comparison is on calendar
// years only, not exact days; month and day are ignored on purpose.
const maxAgeYears = 70

// Char accepts any string.
type Char struct{}

func (Char) IsValid(value any) bool {
	_, ok := value.(string)
	return ok
}

// Arguments accepts a JSON object (the opaque method-arguments container).
type Arguments struct{}

func (Arguments) IsValid(value any) bool {
	_, ok := value.(map[string]any)
	return ok
}

// Email accepts a string containing "@".
type Email struct{}

func (Email) IsValid(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	for _, r := range s {
		if r == '@' {
			return true
		}
	}
	return false
}

// Phone accepts a string or an integer whose text form has exactly 11
// characters and starts with '7'.
type Phone struct{}

func (Phone) IsValid(value any) bool {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	default:
		n, ok := asInt(value)
		if !ok {
			return false
		}
		s = strconv.FormatInt(n, 10)
	}
	return len(s) == 11 && s[0] == '7'
}

// Date accepts a string in strict DD.MM.YYYY form. Other separators,
// two-digit years and ISO-8601 timestamps are invalid.
type Date struct{}

func (Date) IsValid(value any) bool {
	_, ok := parseDate(value)
	return ok
}

// BirthDay accepts a DD.MM.YYYY date whose year is less than maxAgeYears
// before the current year.
type BirthDay struct{}

func (BirthDay) IsValid(value any) bool {
	d, ok := parseDate(value)
	if !ok {
		return false
	}
	return time.Now().Year()-d.Year() < maxAgeYears
}

// Gender accepts exactly the codes 0, 1 and 2.
type Gender struct{}

func (Gender) IsValid(value any) bool {
	n, ok := asInt(value)
	return ok && (n == GenderUnknown || n == GenderMale || n == GenderFemale)
}

// ClientIDs accepts a non-empty list whose elements are all integers.
// Integer-valued strings do not count.
type ClientIDs struct{}

func (ClientIDs) IsValid(value any) bool {
	list, ok := value.([]any)
	if !ok || len(list) == 0 {
		return false
	}
	for _, item := range list {
		if _, ok := asInt(item); !ok {
			return false
		}
	}
	return true
}

func parseDate(value any) (time.Time, bool) {
	s, ok := value.(string)
	if !ok {
		return time.Time{}, false
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// asInt extracts an integer from a decoded JSON value. json.Number is
// integer only when its literal is (no fraction or exponent); floats and
// strings never are.
func asInt(value any) (int64, bool) {
	switch v := value.(type) {
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	case int:
		return int64(v), true
	case int64:
		return v, true
	default:
		return 0, false
	}
}
