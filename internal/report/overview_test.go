package report

import (
	"fmt"
	"strings"
	"testing"

	"github.com/go-echarts/go-echarts/v2/opts"
)

func TestBuildingBarTopTen(t *testing.T) {
	var b strings.Builder
	b.WriteString("Asset ID,Building\n")
	for i := 0; i < 12; i++ {
		// Building Bi appears i+1 times so the ordering is deterministic.
		for j := 0; j <= i; j++ {
			fmt.Fprintf(&b, "A%d-%d,B%d\n", i, j, i)
		}
	}
	table := mustParse(t, b.String())

	bar := BuildingBar(table)
	if bar == nil {
		t.Fatal("BuildingBar returned nil for present column")
	}
	if len(bar.MultiSeries) != 1 {
		t.Fatalf("series = %d, want 1", len(bar.MultiSeries))
	}
	data, ok := bar.MultiSeries[0].Data.([]opts.BarData)
	if !ok {
		t.Fatalf("series data has type %T", bar.MultiSeries[0].Data)
	}
	if len(data) != topGroups {
		t.Errorf("bar data points = %d, want %d", len(data), topGroups)
	}
}

func TestOverviewChartsNilOnAbsentColumns(t *testing.T) {
	table := mustParse(t, "Serial\nx\n")

	if BuildingBar(table) != nil {
		t.Error("BuildingBar should be nil without a Building column")
	}
	if RoomPie(table) != nil {
		t.Error("RoomPie should be nil without a Room Name column")
	}
	if ActiveBar(table) != nil {
		t.Error("ActiveBar should be nil without an Active column")
	}
}

func TestRoomPie(t *testing.T) {
	table := mustParse(t, assetsCSV)
	pie := RoomPie(table)
	if pie == nil {
		t.Fatal("RoomPie returned nil")
	}
	if len(pie.MultiSeries) != 1 {
		t.Errorf("series = %d, want 1", len(pie.MultiSeries))
	}
}

func TestActiveBar(t *testing.T) {
	table := mustParse(t, assetsCSV)
	bar := ActiveBar(table)
	if bar == nil {
		t.Fatal("ActiveBar returned nil")
	}
}
