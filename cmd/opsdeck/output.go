package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/opsdeck/opsdeck/query"
)

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printYAML(v any) error {
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(v)
}

// printRecord renders a single record. Table format falls back to YAML,
// which reads better than a one-row table for nested records.
func printRecord(v any) error {
	switch cfg.Format {
	case "json":
		return printJSON(v)
	default:
		return printYAML(v)
	}
}

// printPage renders a result page. Table format shows one row per record
// plus a paging footer; json and yaml emit the whole page envelope.
func printPage[T any](p query.Page[T], headers []string, row func(T) []string) error {
	switch cfg.Format {
	case "json":
		return printJSON(p)
	case "yaml":
		return printYAML(p)
	default:
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, strings.Join(headers, "\t"))
		for _, rec := range p.Data {
			fmt.Fprintln(w, strings.Join(row(rec), "\t"))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("\npage %d/%d, %d record(s)\n", p.Page, p.TotalPages, p.Total)
		return nil
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}
