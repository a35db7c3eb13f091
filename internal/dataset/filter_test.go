package dataset

import (
	"strings"
	"testing"
)

func TestApplyFiltersConjunctive(t *testing.T) {
	table := mustParse(t, `Asset ID,Building,Active
1,A,Yes
2,B,No
3,A,Yes
`)

	view := table.ApplyFilters(Selections{Building: "A"})
	if view.RowCount() != 2 {
		t.Fatalf("Building=A rows = %d, want 2", view.RowCount())
	}
	for i := 0; i < view.RowCount(); i++ {
		if got := view.Cell(i, "Building"); got != "A" {
			t.Errorf("row %d Building = %q, want A", i, got)
		}
	}

	// Filters compose by conjunction.
	view = table.ApplyFilters(Selections{Building: "A", Active: "No"})
	if view.RowCount() != 0 {
		t.Errorf("Building=A AND Active=No rows = %d, want 0", view.RowCount())
	}
}

func TestApplyFiltersAllSentinel(t *testing.T) {
	table := mustParse(t, sampleCSV)

	view := table.ApplyFilters(Selections{Company: All, Building: All, Active: All})
	if view.RowCount() != table.RowCount() {
		t.Errorf("All selections changed row count: %d != %d", view.RowCount(), table.RowCount())
	}
}

func TestApplyFiltersMissingColumn(t *testing.T) {
	table := mustParse(t, "Asset ID,Building\n1,A\n2,B\n")

	// No Status column: the selector is simply inert.
	view := table.ApplyFilters(Selections{Status: "Deployed"})
	if view.RowCount() != 2 {
		t.Errorf("filter on absent column dropped rows: %d, want 2", view.RowCount())
	}
}

func TestFilterEqualExactMatch(t *testing.T) {
	table := mustParse(t, "ID,Status\n1,Deployed\n2,deployed\n3,Deployed Again\n")

	view := table.FilterEqual("Status", "Deployed")
	if view.RowCount() != 1 {
		t.Errorf("exact match rows = %d, want 1", view.RowCount())
	}
}

func TestSearch(t *testing.T) {
	table := mustParse(t, sampleCSV)

	tests := []struct {
		name string
		term string
		want int
	}{
		{"empty term is identity", "", 4},
		{"case insensitive", "acme", 3},
		{"substring across any column", "server", 1},
		{"numeric column text form", "200", 1},
		{"date column text form", "2023-02", 2},
		{"no match", "zzz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.Search(tt.term).RowCount(); got != tt.want {
				t.Errorf("Search(%q) rows = %d, want %d", tt.term, got, tt.want)
			}
		})
	}
}

func TestSearchAfterFilterKeepsSubset(t *testing.T) {
	table := mustParse(t, sampleCSV)

	view := table.ApplyFilters(Selections{Building: "HQ"}).Search("lab")
	if view.RowCount() != 2 {
		t.Fatalf("rows = %d, want 2", view.RowCount())
	}
	for i := 0; i < view.RowCount(); i++ {
		if view.Cell(i, "Building") != "HQ" {
			t.Error("search result escaped the filtered subset")
		}
		if !strings.EqualFold(view.Cell(i, "Room Name"), "lab") {
			t.Errorf("row %d Room Name = %q", i, view.Cell(i, "Room Name"))
		}
	}
}

func TestSelectionsIsZero(t *testing.T) {
	if !(Selections{}).IsZero() {
		t.Error("empty selections should be zero")
	}
	if !(Selections{Company: All}).IsZero() {
		t.Error("All sentinel should count as zero")
	}
	if (Selections{Room: "Lab"}).IsZero() {
		t.Error("active selection should not be zero")
	}
}
