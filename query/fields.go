package query

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/opsdeck/opsdeck/types"
)

// fieldByPath resolves a dot-separated path against a record, traversing
// structs by JSON field name and maps by key. It reports false when any
// segment is missing, which callers treat the way a dynamic lookup would
// treat undefined: a filter on a missing field never matches.
func fieldByPath(rec any, path string) (any, bool) {
	rv := reflect.ValueOf(rec)
	for _, seg := range strings.Split(path, ".") {
		var ok bool
		rv, ok = lookupField(rv, seg)
		if !ok {
			return nil, false
		}
	}
	rv = indirect(rv)
	if !rv.IsValid() {
		return nil, false
	}
	return rv.Interface(), true
}

// lookupField finds one path segment on a struct or map value.
func lookupField(rv reflect.Value, name string) (reflect.Value, bool) {
	rv = indirect(rv)
	if !rv.IsValid() {
		return reflect.Value{}, false
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return reflect.Value{}, false
		}
		v := rv.MapIndex(reflect.ValueOf(name))
		if !v.IsValid() {
			return reflect.Value{}, false
		}
		return v, true
	case reflect.Struct:
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			if f.Anonymous && jsonName(f) == "" {
				// Embedded struct with promoted fields.
				if v, ok := lookupField(rv.Field(i), name); ok {
					return v, true
				}
				continue
			}
			if jsonName(f) == name || strings.EqualFold(f.Name, name) {
				return rv.Field(i), true
			}
		}
	}
	return reflect.Value{}, false
}

// jsonName returns the field's wire name from its json tag, or "" for
// untagged embedded fields.
func jsonName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" {
		if f.Anonymous {
			return ""
		}
		return f.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	return name
}

func indirect(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

// matchesSearch reports whether any top-level string field of the record
// contains the term case-insensitively. Only depth-1 fields are scanned;
// nested reference snapshots are deliberately excluded.
func matchesSearch(rec any, term string) bool {
	needle := strings.ToLower(term)
	for _, s := range stringFields(reflect.ValueOf(rec)) {
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

// stringFields collects the top-level string-typed field values of a
// struct or map record, promoting untagged embedded structs.
func stringFields(rv reflect.Value) []string {
	rv = indirect(rv)
	if !rv.IsValid() {
		return nil
	}

	var out []string
	switch rv.Kind() {
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			v := indirect(iter.Value())
			if v.IsValid() && v.Kind() == reflect.String {
				out = append(out, v.String())
			}
		}
	case reflect.Struct:
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			if f.Anonymous && jsonName(f) == "" {
				out = append(out, stringFields(rv.Field(i))...)
				continue
			}
			if rv.Field(i).Kind() == reflect.String {
				out = append(out, rv.Field(i).String())
			}
		}
	}
	return out
}

// matchesFilters applies the per-field equality filters. Values are
// compared through valueToString so typed strings, numbers and dates all
// behave; a missing field excludes the record.
func matchesFilters(rec any, filters map[string]any) bool {
	for key, want := range filters {
		if want == nil {
			continue
		}
		if s, ok := want.(string); ok && (s == "" || s == FilterAll) {
			continue
		}
		got, ok := fieldByPath(rec, key)
		if !ok {
			return false
		}
		if valueToString(got) != valueToString(want) {
			return false
		}
	}
	return true
}

// inDateRange resolves the record's primary date and checks it against
// the inclusive range. Records with no primary date are not date-bound
// and always pass.
func inDateRange(rec any, r DateRange) bool {
	if !r.active() {
		return true
	}
	d, ok := primaryDate(rec)
	if !ok {
		return true
	}
	return !d.Before(r.From) && !d.After(r.To)
}

// primaryDate probes the fixed priority list of date fields and returns
// the first one that resolves to a non-zero date.
func primaryDate(rec any) (time.Time, bool) {
	for _, path := range types.PrimaryDateFields {
		v, ok := fieldByPath(rec, path)
		if !ok {
			continue
		}
		if t, ok := toTime(v); ok && !t.IsZero() {
			return t, true
		}
	}
	return time.Time{}, false
}

// toTime coerces time values and the common ISO date string layouts.
func toTime(v any) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return val, true
	case string:
		for _, layout := range []string{
			time.RFC3339Nano,
			time.RFC3339,
			"2006-01-02T15:04:05",
			"2006-01-02 15:04:05",
			"2006-01-02",
		} {
			if t, err := time.Parse(layout, val); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// valueToString converts any value to a string for equality comparison.
// Datetimes are normalized to RFC3339Nano so a time.Time field matches an
// ISO string filter regardless of formatting.
func valueToString(v any) string {
	switch val := v.(type) {
	case time.Time:
		return val.Format(time.RFC3339Nano)
	case string:
		if t, ok := toTime(val); ok {
			return t.Format(time.RFC3339Nano)
		}
		return val
	default:
		rv := indirect(reflect.ValueOf(v))
		if rv.IsValid() && rv.Kind() == reflect.String {
			return rv.String()
		}
		return fmt.Sprintf("%v", v)
	}
}
