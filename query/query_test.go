package query

import (
	"testing"
	"time"
)

type ownerInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Audit struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type org struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Status  string    `json:"status"`
	Owner   ownerInfo `json:"owner"`
	Balance float64   `json:"balance"`
	Audit
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleOrgs() []org {
	return []org{
		{
			ID:      "1",
			Name:    "Acme Industrial",
			Status:  "Active",
			Owner:   ownerInfo{ID: "u1", Name: "Zoe"},
			Balance: 1200,
			Audit:   Audit{CreatedAt: day("2026-01-10")},
		},
		{
			ID:      "2",
			Name:    "Globex Media",
			Status:  "Inactive",
			Owner:   ownerInfo{ID: "u2", Name: "Ben"},
			Balance: 450,
			Audit:   Audit{CreatedAt: day("2026-03-05")},
		},
	}
}

func ids[T any](data []T, id func(T) string) []string {
	out := make([]string, len(data))
	for i, rec := range data {
		out[i] = id(rec)
	}
	return out
}

func orgIDs(data []org) []string {
	return ids(data, func(o org) string { return o.ID })
}

func equalIDs(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got ids %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got ids %v, want %v", got, want)
		}
	}
}

func TestZeroOptionsReturnsEverything(t *testing.T) {
	page := Apply(sampleOrgs(), Options{})

	equalIDs(t, orgIDs(page.Data), []string{"1", "2"})
	if page.Total != 2 || page.Page != 1 || page.PageSize != 2 || page.TotalPages != 1 {
		t.Errorf("unexpected page counts: %+v", page)
	}
}

func TestFilterCountsReflectFilteredSet(t *testing.T) {
	page := Apply(sampleOrgs(), Options{
		Filters: map[string]any{"status": "Active"},
	})

	equalIDs(t, orgIDs(page.Data), []string{"1"})
	if page.Total != 1 {
		t.Errorf("Total = %d, want 1", page.Total)
	}
	// The default page size comes from the unfiltered collection.
	if page.PageSize != 2 {
		t.Errorf("PageSize = %d, want 2", page.PageSize)
	}
	if page.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1", page.TotalPages)
	}
}

func TestFilterSentinelsMeanNoConstraint(t *testing.T) {
	for name, value := range map[string]any{
		"nil":   nil,
		"empty": "",
		"all":   FilterAll,
	} {
		page := Apply(sampleOrgs(), Options{
			Filters: map[string]any{"status": value},
		})
		if page.Total != 2 {
			t.Errorf("filter %s: Total = %d, want 2", name, page.Total)
		}
	}
}

func TestFilterOnMissingFieldExcludesEverything(t *testing.T) {
	page := Apply(sampleOrgs(), Options{
		Filters: map[string]any{"nonexistent": "x"},
	})
	if page.Total != 0 {
		t.Errorf("Total = %d, want 0", page.Total)
	}
}

func TestFilterDotPath(t *testing.T) {
	page := Apply(sampleOrgs(), Options{
		Filters: map[string]any{"owner.name": "Ben"},
	})
	equalIDs(t, orgIDs(page.Data), []string{"2"})
}

func TestFilterDateNormalization(t *testing.T) {
	// A time.Time field must match an ISO string written in any supported
	// layout.
	page := Apply(sampleOrgs(), Options{
		Filters: map[string]any{"createdAt": "2026-01-10"},
	})
	equalIDs(t, orgIDs(page.Data), []string{"1"})
}

func TestFiltersAreANDed(t *testing.T) {
	page := Apply(sampleOrgs(), Options{
		Filters: map[string]any{"status": "Active", "owner.name": "Ben"},
	})
	if page.Total != 0 {
		t.Errorf("Total = %d, want 0", page.Total)
	}
}

func TestSearchMatchesTopLevelStringsCaseInsensitively(t *testing.T) {
	page := Apply(sampleOrgs(), Options{Search: "glob"})
	equalIDs(t, orgIDs(page.Data), []string{"2"})
}

func TestSearchIgnoresNestedFields(t *testing.T) {
	// "Ben" only appears inside the owner snapshot, which search skips.
	page := Apply(sampleOrgs(), Options{Search: "ben"})
	if page.Total != 0 {
		t.Errorf("Total = %d, want 0", page.Total)
	}
}

func TestSortByNameDescending(t *testing.T) {
	page := Apply(sampleOrgs(), Options{SortBy: "name", SortDir: Descending})
	equalIDs(t, orgIDs(page.Data), []string{"2", "1"})
}

func TestSortAscendingIsReverseOfDescending(t *testing.T) {
	asc := Apply(sampleOrgs(), Options{SortBy: "name", SortDir: Ascending})
	desc := Apply(sampleOrgs(), Options{SortBy: "name", SortDir: Descending})

	for i := range asc.Data {
		if asc.Data[i].ID != desc.Data[len(desc.Data)-1-i].ID {
			t.Fatalf("asc %v is not the reverse of desc %v", orgIDs(asc.Data), orgIDs(desc.Data))
		}
	}
}

func TestSortByNumber(t *testing.T) {
	page := Apply(sampleOrgs(), Options{SortBy: "balance"})
	equalIDs(t, orgIDs(page.Data), []string{"2", "1"})
}

func TestSortByDate(t *testing.T) {
	page := Apply(sampleOrgs(), Options{SortBy: "createdAt", SortDir: Descending})
	equalIDs(t, orgIDs(page.Data), []string{"2", "1"})
}

func TestSortByObjectUsesNameField(t *testing.T) {
	// Sorting on a reference column falls back to its display name:
	// Ben before Zoe.
	page := Apply(sampleOrgs(), Options{SortBy: "owner"})
	equalIDs(t, orgIDs(page.Data), []string{"2", "1"})
}

func TestSortOnMissingFieldKeepsOrder(t *testing.T) {
	page := Apply(sampleOrgs(), Options{SortBy: "nonexistent"})
	equalIDs(t, orgIDs(page.Data), []string{"1", "2"})
}

func TestSortIsStable(t *testing.T) {
	records := []org{
		{ID: "1", Status: "Active"},
		{ID: "2", Status: "Active"},
		{ID: "3", Status: "Active"},
	}
	page := Apply(records, Options{SortBy: "status"})
	equalIDs(t, orgIDs(page.Data), []string{"1", "2", "3"})
}

func TestPaginationSlicesFilteredSet(t *testing.T) {
	page := Apply(sampleOrgs(), Options{Page: 2, PageSize: 1})

	equalIDs(t, orgIDs(page.Data), []string{"2"})
	if page.Total != 2 || page.TotalPages != 2 {
		t.Errorf("unexpected page counts: %+v", page)
	}
}

func TestPaginationCoversEveryRecordExactlyOnce(t *testing.T) {
	records := sampleOrgs()
	seen := map[string]int{}
	for p := 1; ; p++ {
		page := Apply(records, Options{Page: p, PageSize: 1})
		if len(page.Data) == 0 {
			break
		}
		for _, rec := range page.Data {
			seen[rec.ID]++
		}
	}
	for _, rec := range records {
		if seen[rec.ID] != 1 {
			t.Errorf("record %s seen %d times, want 1", rec.ID, seen[rec.ID])
		}
	}
}

func TestPageBeyondEndIsEmptyNotError(t *testing.T) {
	page := Apply(sampleOrgs(), Options{Page: 9, PageSize: 10})

	if len(page.Data) != 0 {
		t.Errorf("Data = %v, want empty", orgIDs(page.Data))
	}
	if page.Total != 2 || page.Page != 9 {
		t.Errorf("unexpected page counts: %+v", page)
	}
}

func TestDateRangeInclusiveBounds(t *testing.T) {
	page := Apply(sampleOrgs(), Options{
		DateRange: DateRange{From: day("2026-01-10"), To: day("2026-01-10")},
	})
	equalIDs(t, orgIDs(page.Data), []string{"1"})
}

func TestDateRangeWithOneBoundIsInactive(t *testing.T) {
	page := Apply(sampleOrgs(), Options{
		DateRange: DateRange{From: day("2026-02-01")},
	})
	if page.Total != 2 {
		t.Errorf("Total = %d, want 2", page.Total)
	}
}

func TestDatelessRecordsPassDateRange(t *testing.T) {
	records := []org{
		{ID: "1", Audit: Audit{CreatedAt: day("2026-01-10")}},
		{ID: "2"}, // no primary date
	}
	page := Apply(records, Options{
		DateRange: DateRange{From: day("2026-02-01"), To: day("2026-02-28")},
	})
	equalIDs(t, orgIDs(page.Data), []string{"2"})
}

func TestStagesComposeInOrder(t *testing.T) {
	records := []org{
		{ID: "1", Name: "Acme One", Status: "Active"},
		{ID: "2", Name: "Acme Two", Status: "Active"},
		{ID: "3", Name: "Acme Three", Status: "Inactive"},
		{ID: "4", Name: "Globex", Status: "Active"},
	}
	page := Apply(records, Options{
		Search:   "acme",
		Filters:  map[string]any{"status": "Active"},
		SortBy:   "name",
		SortDir:  Descending,
		Page:     1,
		PageSize: 1,
	})

	equalIDs(t, orgIDs(page.Data), []string{"2"})
	if page.Total != 2 || page.TotalPages != 2 {
		t.Errorf("unexpected page counts: %+v", page)
	}
}
