package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/opsdeck/opsdeck/query"
)

// listFlags collects the shared query flags of every list command.
type listFlags struct {
	search   string
	filters  []string
	sortBy   string
	desc     bool
	page     int
	pageSize int
	from     string
	to       string
}

func addListFlags(cmd *cobra.Command, lf *listFlags) {
	cmd.Flags().StringVar(&lf.search, "search", "", "case-insensitive search across text fields")
	cmd.Flags().StringArrayVar(&lf.filters, "filter", nil, "field=value equality filter, repeatable (value 'all' disables)")
	cmd.Flags().StringVar(&lf.sortBy, "sort", "", "sort field, dot paths allowed (e.g. client.name)")
	cmd.Flags().BoolVar(&lf.desc, "desc", false, "sort descending")
	cmd.Flags().IntVar(&lf.page, "page", 1, "page number")
	cmd.Flags().IntVar(&lf.pageSize, "page-size", 0, "records per page (0 = everything on one page)")
	cmd.Flags().StringVar(&lf.from, "from", "", "primary-date range start, YYYY-MM-DD")
	cmd.Flags().StringVar(&lf.to, "to", "", "primary-date range end, YYYY-MM-DD (inclusive)")
}

func (lf listFlags) options() (query.Options, error) {
	opts := query.Options{
		Page:     lf.page,
		PageSize: lf.pageSize,
		SortBy:   lf.sortBy,
		Search:   lf.search,
	}
	if lf.desc {
		opts.SortDir = query.Descending
	}

	if len(lf.filters) > 0 {
		opts.Filters = make(map[string]any, len(lf.filters))
		for _, f := range lf.filters {
			key, value, ok := strings.Cut(f, "=")
			if !ok {
				return opts, fmt.Errorf("invalid --filter %q, want field=value", f)
			}
			opts.Filters[key] = value
		}
	}

	if lf.from != "" || lf.to != "" {
		var dr query.DateRange
		if lf.from != "" {
			from, err := time.Parse("2006-01-02", lf.from)
			if err != nil {
				return opts, fmt.Errorf("invalid --from date: %w", err)
			}
			dr.From = from
		}
		if lf.to != "" {
			to, err := time.Parse("2006-01-02", lf.to)
			if err != nil {
				return opts, fmt.Errorf("invalid --to date: %w", err)
			}
			// End of day so records dated on the boundary stay in range.
			dr.To = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		opts.DateRange = dr
	}
	return opts, nil
}

// decodeInput parses a create/update payload from --data. A value starting
// with @ names a JSON file; everything else is inline JSON.
func decodeInput[T any](data string) (T, error) {
	var in T
	if data == "" {
		return in, fmt.Errorf("--data payload is required")
	}
	raw := []byte(data)
	if strings.HasPrefix(data, "@") {
		var err error
		raw, err = os.ReadFile(data[1:])
		if err != nil {
			return in, fmt.Errorf("failed to read payload file: %w", err)
		}
	}
	if err := json.Unmarshal(raw, &in); err != nil {
		return in, fmt.Errorf("invalid payload: %w", err)
	}
	return in, nil
}
