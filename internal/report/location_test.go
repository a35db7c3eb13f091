package report

import (
	"fmt"
	"strings"
	"testing"

	"github.com/go-echarts/go-echarts/v2/opts"
)

func TestLocationSummary(t *testing.T) {
	table := mustParse(t, assetsCSV)
	rows := LocationSummary(table)
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want 4 distinct combinations", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Count > rows[i-1].Count {
			t.Errorf("rows not sorted descending at %d", i)
		}
	}
}

func TestLocationSummaryAbsentColumns(t *testing.T) {
	if LocationSummary(mustParse(t, "Building\nHQ\n")) != nil {
		t.Error("expected nil without a Room Name column")
	}
}

func TestBuildingRoomSunburstTopTwenty(t *testing.T) {
	var b strings.Builder
	b.WriteString("Building,Room Name\n")
	for i := 0; i < 25; i++ {
		fmt.Fprintf(&b, "B%d,R%d\n", i, i)
	}
	table := mustParse(t, b.String())

	sb := BuildingRoomSunburst(table)
	if sb == nil {
		t.Fatal("BuildingRoomSunburst returned nil")
	}
	leaves := 0
	for _, s := range sb.MultiSeries {
		for _, d := range s.Data.([]opts.SunBurstData) {
			leaves += len(d.Children)
		}
	}
	if leaves != topPairs {
		t.Errorf("sunburst leaves = %d, want %d", leaves, topPairs)
	}
}

func TestBuildingTreemap(t *testing.T) {
	table := mustParse(t, assetsCSV)
	if BuildingTreemap(table) == nil {
		t.Error("BuildingTreemap returned nil")
	}
	if BuildingTreemap(mustParse(t, "Serial\nx\n")) != nil {
		t.Error("expected nil without a Building column")
	}
}
