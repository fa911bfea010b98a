// Package jsval reproduces the handful of JavaScript value conversions the
// BaaS wire format was defined with: encodeURIComponent, String(v),
// truthiness, JSON.stringify and querystring.stringify.
//
// Values are whatever a caller may put into a parameter map: nil, strings,
// booleans, Go numbers, json.Number, encoding.TextMarshaler, slices, arrays,
// maps and structs. Pointers are followed.
package jsval

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

const upperhex = "0123456789ABCDEF"

func shouldEscape(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return false
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return false
	}
	return true
}

// EncodeURIComponent percent-encodes s byte by byte over its UTF-8 form,
// leaving A-Z a-z 0-9 - _ . ! ~ * ' ( ) untouched. Unlike url.QueryEscape a
// space becomes %20.
func EncodeURIComponent(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscape(c) {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func indirect(v any) reflect.Value {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

// IsNumber reports whether v is a Go number or a json.Number.
func IsNumber(v any) bool {
	if _, ok := v.(json.Number); ok {
		return true
	}
	rv := indirect(v)
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// IsComposite reports whether v is an array or an object in JavaScript
// terms: a slice, array, map or struct. Byte slices and TextMarshalers are
// scalars.
func IsComposite(v any) bool {
	rv := indirect(v)
	if !rv.IsValid() {
		return false
	}
	if _, ok := v.(encoding.TextMarshaler); ok {
		return false
	}
	switch rv.Kind() {
	case reflect.Slice:
		return rv.Type().Elem().Kind() != reflect.Uint8
	case reflect.Array, reflect.Map, reflect.Struct:
		return true
	}
	return false
}

// Truthy mirrors JavaScript truthiness for scalar values: nil, "", false,
// zero and NaN are falsy. Composite values are always truthy.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return err != nil || (f != 0 && !math.IsNaN(f))
	}
	rv := indirect(v)
	if !rv.IsValid() {
		return false
	}
	if IsComposite(v) {
		return true
	}
	if _, ok := v.(encoding.TextMarshaler); ok {
		return String(v) != ""
	}
	switch rv.Kind() {
	case reflect.String:
		return rv.Len() > 0
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Slice:
		// []byte, treated as a string.
		return rv.Len() > 0
	}
	return true
}

// FormatNumber renders f the way JavaScript's Number.prototype.toString does
// for the common cases: integers without a fraction, plain decimals between
// 1e-7 and 1e21, exponent notation outside that range.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		if digits == "" {
			digits = "0"
		}
		return mant + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// String converts v the way JavaScript's String(v) does. nil is "null",
// arrays are comma-joined and objects become "[object Object]".
func String(v any) string {
	if v == nil {
		return "null"
	}
	rv := indirect(v)
	if !rv.IsValid() {
		// Typed nil pointers are null too.
		return "null"
	}
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case encoding.TextMarshaler:
		b, err := t.MarshalText()
		if err != nil {
			return fmt.Sprintf("%v", rv.Interface())
		}
		return string(b)
	}
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return FormatNumber(float64(float32(rv.Float())))
	case reflect.Float64:
		return FormatNumber(rv.Float())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes())
		}
		parts := make([]string, rv.Len())
		for i := range parts {
			elem := rv.Index(i).Interface()
			if elem == nil || !indirect(elem).IsValid() {
				// null and undefined elements join as empty strings.
				continue
			}
			parts[i] = String(elem)
		}
		return strings.Join(parts, ",")
	case reflect.Map, reflect.Struct:
		return "[object Object]"
	}
	return fmt.Sprintf("%v", rv.Interface())
}

// Marshal is JSON.stringify: compact output without HTML escaping.
func Marshal(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// ToMap returns v as a map when it is a map with string keys.
func ToMap(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := indirect(v)
	if !rv.IsValid() || rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}

// queryPrimitive is querystring's stringifyPrimitive: strings, finite
// numbers and booleans keep their text, everything else is empty.
func queryPrimitive(v any) string {
	if v == nil {
		return ""
	}
	if IsNumber(v) {
		s := String(v)
		if s == "NaN" || s == "Infinity" || s == "-Infinity" {
			return ""
		}
		return s
	}
	if IsComposite(v) {
		return ""
	}
	rv := indirect(v)
	if !rv.IsValid() {
		return ""
	}
	return String(v)
}

// EncodeQuery is querystring.stringify over m with keys in sorted order.
// Array values repeat the key once per element.
//
// Go maps carry no insertion order, so the wire order of the fields is
// sorted rather than the declaration order querystring.stringify keeps.
// Servers read the fields by name and accept either.
func EncodeQuery(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var fields []string
	for _, k := range keys {
		ks := EncodeURIComponent(k) + "="
		v := m[k]
		rv := indirect(v)
		if IsComposite(v) && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
			for i := 0; i < rv.Len(); i++ {
				fields = append(fields, ks+EncodeURIComponent(queryPrimitive(rv.Index(i).Interface())))
			}
			continue
		}
		fields = append(fields, ks+EncodeURIComponent(queryPrimitive(v)))
	}
	return strings.Join(fields, "&")
}
