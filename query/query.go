// Package query implements the generic entity query engine: free-text
// search, per-field equality filters, date-range filtering, sorting and
// pagination over an in-memory collection. Stages always run in that
// order; pagination applies last so totals reflect the filtered set.
package query

import "time"

// Direction selects the sort order.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// FilterAll is the sentinel filter value meaning "no constraint". It is
// what a dashboard's "All" dropdown option sends.
const FilterAll = "all"

// DateRange restricts results to records whose primary date falls within
// [From, To] inclusive. It only takes effect when both bounds are set;
// records with no primary date always pass.
type DateRange struct {
	From time.Time `json:"from" yaml:"from"`
	To   time.Time `json:"to" yaml:"to"`
}

func (r DateRange) active() bool { return !r.From.IsZero() && !r.To.IsZero() }

// Options is the query descriptor. The zero value lists everything.
type Options struct {
	// Page is 1-based. Values below 1 are treated as 1.
	Page int `json:"page,omitempty" yaml:"page,omitempty"`
	// PageSize of 0 (or negative) disables pagination: the full result
	// set is returned as a single page.
	PageSize int `json:"pageSize,omitempty" yaml:"pageSize,omitempty"`
	// SortBy is a dot-separated field path over JSON field names, e.g.
	// "name" or "projectManager.name".
	SortBy  string    `json:"sortBy,omitempty" yaml:"sortBy,omitempty"`
	SortDir Direction `json:"sortDirection,omitempty" yaml:"sortDirection,omitempty"`
	// Search keeps records where any top-level string field contains the
	// text case-insensitively. Empty means no search filtering.
	Search string `json:"search,omitempty" yaml:"search,omitempty"`
	// Filters maps a field path to the exact value it must stringify to.
	// A nil, empty-string or FilterAll value means "no constraint" for
	// that field. Multiple filters are ANDed.
	Filters   map[string]any `json:"filters,omitempty" yaml:"filters,omitempty"`
	DateRange DateRange      `json:"dateRange,omitempty" yaml:"dateRange,omitempty"`
}

// Page is one page of query results plus the counts computed before
// pagination was applied.
type Page[T any] struct {
	Data       []T `json:"data" yaml:"data"`
	Total      int `json:"total" yaml:"total"`
	Page       int `json:"page" yaml:"page"`
	PageSize   int `json:"pageSize" yaml:"pageSize"`
	TotalPages int `json:"totalPages" yaml:"totalPages"`
}

// Apply runs the descriptor against a collection and returns the
// requested page. The input slice is not modified.
func Apply[T any](records []T, opts Options) Page[T] {
	filtered := make([]T, 0, len(records))
	for _, rec := range records {
		if opts.Search != "" && !matchesSearch(rec, opts.Search) {
			continue
		}
		if !matchesFilters(rec, opts.Filters) {
			continue
		}
		if !inDateRange(rec, opts.DateRange) {
			continue
		}
		filtered = append(filtered, rec)
	}

	if opts.SortBy != "" {
		sortRecords(filtered, opts.SortBy, opts.SortDir)
	}

	return paginate(len(records), filtered, opts)
}

// paginate slices the filtered result. When PageSize is omitted the page
// size defaults to the size of the whole collection, so an unpaginated
// query still reports a meaningful pageSize.
func paginate[T any](collectionSize int, filtered []T, opts Options) Page[T] {
	total := len(filtered)

	page := opts.Page
	if page < 1 {
		page = 1
	}
	size := opts.PageSize
	if size < 1 {
		size = collectionSize
	}

	totalPages := 0
	if size > 0 {
		totalPages = (total + size - 1) / size
	}

	start := (page - 1) * size
	end := start + size
	var data []T
	switch {
	case size == 0 || start >= total:
		// Past the last page (or an empty collection): empty data but
		// correct totals, never an error.
		data = []T{}
	case end > total:
		data = filtered[start:total]
	default:
		data = filtered[start:end]
	}

	return Page[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
	}
}
