// Package yyjson reads the relaxed JSON dialect GameMaker Studio 2 writes to
// its .yy and .yyp metadata files: standard JSON except that object and array
// literals may carry a trailing comma before the closing bracket.
//
// Parsed documents are generic value trees (map[string]any, []any, string,
// int64, float64, bool, nil). The accessor helpers in this package never
// panic on missing or mistyped fields; they return the caller's default so
// readers stay tolerant of the schema drift between GameMaker versions.
package yyjson

import (
	"fmt"
	"math"
	"os"
	"regexp"
	"strconv"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"

	"github.com/vibetools/gmforge/internal/errs"
)

// trailingComma matches a comma that precedes a closing bracket or brace
// across any whitespace. The IDE emits these; strict JSON parsers reject them.
var trailingComma = regexp.MustCompile(`,(\s*[\]}])`)

// Normalize strips trailing commas so a standard JSON parser accepts text.
// All other bytes pass through untouched.
func Normalize(text string) string {
	return trailingComma.ReplaceAllString(text, "$1")
}

// Parse decodes one relaxed-JSON document.
func Parse(text string) (any, error) {
	v, err := oj.ParseString(Normalize(text))
	if err != nil {
		return nil, errs.From(errs.Format, err)
	}
	return v, nil
}

// ParseFile reads and decodes one metadata file.
func ParseFile(path string) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Newf(errs.NotFound, "File not found: %s", path)
		}
		return nil, errs.Wrap(errs.IO, err, "read "+path)
	}
	return Parse(string(raw))
}

// Query evaluates a JSONPath selector against a parsed document and returns
// every value it selects.
func Query(doc any, selector string) ([]any, error) {
	x, err := jp.ParseString(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath '%s': %w", selector, err)
	}
	return x.Get(doc), nil
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// Has reports whether v is a map carrying key, whatever its value.
func Has(v any, key string) bool {
	_, ok := asMap(v)[key]
	return ok
}

// NonNull reports whether v is a map carrying key with a non-null value.
func NonNull(v any, key string) bool {
	val, ok := asMap(v)[key]
	return ok && val != nil
}

// Map returns the object stored under key, or nil when v is not a map, the
// key is absent, or the value is not an object.
func Map(v any, key string) map[string]any {
	return asMap(asMap(v)[key])
}

// Slice returns the array stored under key, or nil.
func Slice(v any, key string) []any {
	s, _ := asMap(v)[key].([]any)
	return s
}

// Str returns the string stored under key, or def.
func Str(v any, key, def string) string {
	if s, ok := asMap(v)[key].(string); ok {
		return s
	}
	return def
}

// Bool returns the boolean stored under key, or def.
func Bool(v any, key string, def bool) bool {
	if b, ok := asMap(v)[key].(bool); ok {
		return b
	}
	return def
}

// Scalar renders the value stored under key as display text, or def when the
// key is absent or null. Integers render without a decimal point; floats go
// through FormatFloat so whole-number floats keep theirs.
func Scalar(v any, key, def string) string {
	val, ok := asMap(v)[key]
	if !ok || val == nil {
		return def
	}
	if f, isFloat := val.(float64); isFloat {
		return FormatFloat(f)
	}
	return fmt.Sprintf("%v", val)
}

// FormatFloat renders f the way the IDE spells numbers in metadata files:
// whole-number floats keep one decimal ("1.0"), everything else uses the
// shortest exact form.
func FormatFloat(f float64) string {
	if !math.IsInf(f, 0) && f == math.Trunc(f) {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
