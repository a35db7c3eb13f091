package report

import (
	"strings"
	"testing"

	"assetdash/internal/dataset"
)

func mustParse(t *testing.T, csv string) *dataset.Table {
	t.Helper()
	table, err := dataset.ParseCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	return table
}

const assetsCSV = `Asset ID,Company,Building,Room Name,Status,Active,Date Added,Last Updated,Cost
A1,Acme,HQ,101,Deployed,Yes,2023-01-15,2023-03-01,10
A2,Acme,HQ,102,Deployed,No,2023-01-20,2023-03-01,bad
A3,Globex,Annex,101,Stored,Yes,2023-02-05,2023-03-10,30
A4,Acme,Annex,201,Stored,No,not-a-date,2023-03-10,
`

func TestSummarize(t *testing.T) {
	table := mustParse(t, assetsCSV)
	m := Summarize(table)

	if m.TotalAssets != 4 {
		t.Errorf("TotalAssets = %d, want 4", m.TotalAssets)
	}
	if !m.HasBuildings || m.Buildings != 2 {
		t.Errorf("Buildings = %d (has=%v), want 2", m.Buildings, m.HasBuildings)
	}
	if !m.HasRooms || m.Rooms != 3 {
		t.Errorf("Rooms = %d (has=%v), want 3", m.Rooms, m.HasRooms)
	}
	if !m.HasActive || m.ActiveAssets != 2 {
		t.Errorf("ActiveAssets = %d (has=%v), want 2", m.ActiveAssets, m.HasActive)
	}
}

func TestSummarizeMissingColumns(t *testing.T) {
	table := mustParse(t, "Asset ID,Status\nA1,Deployed\n")
	m := Summarize(table)

	if m.TotalAssets != 1 {
		t.Errorf("TotalAssets = %d, want 1", m.TotalAssets)
	}
	for label, got := range map[string]string{
		"buildings": m.BuildingsLabel(),
		"rooms":     m.RoomsLabel(),
		"active":    m.ActiveLabel(),
	} {
		if got != "N/A" {
			t.Errorf("%s label = %q, want N/A", label, got)
		}
	}
}

func TestSummarizeRespectsFilters(t *testing.T) {
	table := mustParse(t, assetsCSV)
	view := table.ApplyFilters(dataset.Selections{Building: "HQ"})
	m := Summarize(view)

	if m.TotalAssets != 2 {
		t.Errorf("TotalAssets = %d, want 2", m.TotalAssets)
	}
	if m.ActiveAssets != 1 {
		t.Errorf("ActiveAssets = %d, want 1", m.ActiveAssets)
	}
	if m.Buildings != 1 {
		t.Errorf("Buildings = %d, want 1", m.Buildings)
	}
}

func TestLabelsFormatCounts(t *testing.T) {
	m := Metrics{Buildings: 7, HasBuildings: true, Rooms: 12, HasRooms: true, ActiveAssets: 3, HasActive: true}
	if got := m.BuildingsLabel(); got != "7" {
		t.Errorf("BuildingsLabel = %q, want 7", got)
	}
	if got := m.RoomsLabel(); got != "12" {
		t.Errorf("RoomsLabel = %q, want 12", got)
	}
	if got := m.ActiveLabel(); got != "3" {
		t.Errorf("ActiveLabel = %q, want 3", got)
	}
}
