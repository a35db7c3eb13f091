package report

import (
	"testing"

	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/shopspring/decimal"
)

func TestCostSummary(t *testing.T) {
	table := mustParse(t, assetsCSV)
	stats, ok := CostSummary(table)
	if !ok {
		t.Fatal("CostSummary reported no data")
	}

	// Costs are 10, bad, 30, blank: two parseable cells.
	if stats.Count != 2 {
		t.Errorf("Count = %d, want 2", stats.Count)
	}
	if !stats.Total.Equal(decimal.NewFromInt(40)) {
		t.Errorf("Total = %s, want 40", stats.Total)
	}
	if !stats.Mean.Equal(decimal.NewFromInt(20)) {
		t.Errorf("Mean = %s, want 20", stats.Mean)
	}
	if !stats.Median.Equal(decimal.NewFromInt(20)) {
		t.Errorf("Median = %s, want 20", stats.Median)
	}
}

func TestColumnStatsOddMedian(t *testing.T) {
	table := mustParse(t, "Cost\n$1.50\n3\n100\n")
	stats, ok := ColumnStats(table, "Cost")
	if !ok {
		t.Fatal("ColumnStats reported no data")
	}
	if !stats.Median.Equal(decimal.NewFromInt(3)) {
		t.Errorf("Median = %s, want 3", stats.Median)
	}
	if !stats.Total.Equal(decimal.NewFromFloat(104.5)) {
		t.Errorf("Total = %s, want 104.5", stats.Total)
	}
}

func TestCostSummaryNoData(t *testing.T) {
	for _, csv := range []string{"Serial\nx\n", "Cost\nbad\n\n"} {
		table := mustParse(t, csv)
		if _, ok := CostSummary(table); ok {
			t.Errorf("CostSummary ok = true for %q", csv)
		}
	}
}

func TestCostHistogram(t *testing.T) {
	table := mustParse(t, assetsCSV)
	bar := CostHistogram(table)
	if bar == nil {
		t.Fatal("CostHistogram returned nil")
	}
	data, ok := bar.MultiSeries[0].Data.([]opts.BarData)
	if !ok {
		t.Fatalf("series data has type %T", bar.MultiSeries[0].Data)
	}
	if len(data) != histogramBins {
		t.Errorf("bins = %d, want %d", len(data), histogramBins)
	}

	total := 0
	for _, d := range data {
		total += d.Value.(int)
	}
	if total != 2 {
		t.Errorf("binned cells = %d, want 2", total)
	}
}

func TestFinancialByBuilding(t *testing.T) {
	table := mustParse(t, assetsCSV)
	fin := FinancialByBuilding(table)
	if fin == nil {
		t.Fatal("FinancialByBuilding returned nil")
	}
	if len(fin.Columns) != 1 || fin.Columns[0] != "Cost" {
		t.Fatalf("Columns = %v, want [Cost]", fin.Columns)
	}
	if len(fin.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(fin.Rows))
	}

	// Annex holds the 30 cost, HQ the 10; rows sort by building name.
	if fin.Rows[0].Building != "Annex" || !fin.Rows[0].Totals[0].Equal(decimal.NewFromInt(30)) {
		t.Errorf("row 0 = %s %s, want Annex 30", fin.Rows[0].Building, fin.Rows[0].Totals[0])
	}
	if fin.Rows[1].Building != "HQ" || !fin.Rows[1].Totals[0].Equal(decimal.NewFromInt(10)) {
		t.Errorf("row 1 = %s %s, want HQ 10", fin.Rows[1].Building, fin.Rows[1].Totals[0])
	}
}

func TestFinancialByBuildingAlphabetical(t *testing.T) {
	table := mustParse(t, "Building,Cost\nZeta,900\nAlpha,1\nMid,50\n")
	fin := FinancialByBuilding(table)
	if fin == nil {
		t.Fatal("FinancialByBuilding returned nil")
	}

	want := []string{"Alpha", "Mid", "Zeta"}
	for i, name := range want {
		if fin.Rows[i].Building != name {
			t.Errorf("row %d = %s, want %s", i, fin.Rows[i].Building, name)
		}
	}
}

func TestFinancialByBuildingAbsent(t *testing.T) {
	if FinancialByBuilding(mustParse(t, "Cost\n10\n")) != nil {
		t.Error("expected nil without a Building column")
	}
	if FinancialByBuilding(mustParse(t, "Building\nHQ\n")) != nil {
		t.Error("expected nil without financial columns")
	}
}
