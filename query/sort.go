package query

import (
	"reflect"
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// sortRecords orders the slice by the value at the given field path.
// Strings compare with locale-aware collation, numbers numerically,
// times chronologically, and object values fall back to their "name"
// field. Missing or mismatched values compare as equal, so the sort is
// a stable no-op for those records.
func sortRecords[T any](records []T, path string, dir Direction) {
	coll := collate.New(language.English)
	desc := dir == Descending

	sort.SliceStable(records, func(i, j int) bool {
		a, _ := fieldByPath(records[i], path)
		b, _ := fieldByPath(records[j], path)
		c := compareValues(coll, a, b)
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func compareValues(coll *collate.Collator, a, b any) int {
	if a == nil || b == nil {
		return 0
	}

	if ta, ok := toTime(a); ok {
		if tb, ok := toTime(b); ok {
			return ta.Compare(tb)
		}
		return 0
	}

	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			}
			return 0
		}
		return 0
	}

	// Nested reference snapshots sort by their display name.
	if sa, ok := objectName(a); ok {
		sb, ok := objectName(b)
		if !ok {
			return 0
		}
		return coll.CompareString(sa, sb)
	}

	sa, aok := asString(a)
	sb, bok := asString(b)
	if aok && bok {
		return coll.CompareString(sa, sb)
	}
	return 0
}

func toFloat(v any) (float64, bool) {
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return 0, false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func asString(v any) (string, bool) {
	rv := indirect(reflect.ValueOf(v))
	if rv.IsValid() && rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

// objectName extracts the "name" field of a struct or map value, the
// comparison fallback for sorting on a reference column.
func objectName(v any) (string, bool) {
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return "", false
	}
	if _, isTime := rv.Interface().(time.Time); isTime {
		return "", false
	}
	if rv.Kind() != reflect.Struct && rv.Kind() != reflect.Map {
		return "", false
	}
	name, ok := lookupField(rv, "name")
	if !ok {
		return "", false
	}
	return asString(name.Interface())
}
