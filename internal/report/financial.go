package report

import (
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/shopspring/decimal"

	"assetdash/internal/dataset"
)

const histogramBins = 50

// CostStats are the scalar aggregates of a financial column. Only cells that
// parsed as amounts contribute; Count is the number of such cells.
type CostStats struct {
	Count  int
	Total  decimal.Decimal
	Mean   decimal.Decimal
	Median decimal.Decimal
}

// CostSummary aggregates the Cost column. The second return is false when the
// column is absent or holds no parseable amount.
func CostSummary(t *dataset.Table) (CostStats, bool) {
	return ColumnStats(t, "Cost")
}

// ColumnStats aggregates one financial column.
func ColumnStats(t *dataset.Table, col string) (CostStats, bool) {
	amounts := t.Amounts(col)
	if len(amounts) == 0 {
		return CostStats{}, false
	}

	stats := CostStats{Count: len(amounts)}
	for _, a := range amounts {
		stats.Total = stats.Total.Add(a)
	}
	stats.Mean = stats.Total.Div(decimal.NewFromInt(int64(stats.Count)))

	sorted := make([]decimal.Decimal, len(amounts))
	copy(sorted, amounts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		stats.Median = sorted[mid]
	} else {
		stats.Median = sorted[mid-1].Add(sorted[mid]).Div(decimal.NewFromInt(2))
	}
	return stats, true
}

// ColumnTotal sums one financial column. The second return is false when the
// column is absent or holds no parseable amount.
func ColumnTotal(t *dataset.Table, col string) (decimal.Decimal, bool) {
	amounts := t.Amounts(col)
	if len(amounts) == 0 {
		return decimal.Zero, false
	}
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total, true
}

// CostHistogram charts the distribution of the Cost column across fifty
// equal-width bins. Returns nil when no amount parsed.
func CostHistogram(t *dataset.Table) *charts.Bar {
	amounts := t.Amounts("Cost")
	if len(amounts) == 0 {
		return nil
	}

	min, max := amounts[0], amounts[0]
	for _, a := range amounts[1:] {
		if a.LessThan(min) {
			min = a
		}
		if a.GreaterThan(max) {
			max = a
		}
	}

	minF, _ := min.Float64()
	maxF, _ := max.Float64()
	width := (maxF - minF) / histogramBins
	bins := make([]int, histogramBins)
	for _, a := range amounts {
		v, _ := a.Float64()
		idx := histogramBins - 1
		if width > 0 {
			idx = int((v - minF) / width)
			if idx >= histogramBins {
				idx = histogramBins - 1
			}
		}
		bins[idx]++
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Asset Cost Distribution"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Cost",
			Type:      "category",
			AxisLabel: &opts.AxisLabel{Rotate: 45},
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Assets", Type: "value"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "400px"}),
	)

	labels := make([]string, histogramBins)
	data := make([]opts.BarData, histogramBins)
	for i := range bins {
		lo := decimal.NewFromFloat(minF + width*float64(i)).Round(2)
		labels[i] = "$" + lo.StringFixed(0)
		data[i] = opts.BarData{Value: bins[i]}
	}
	bar.SetXAxis(labels)
	bar.AddSeries("Assets", data)
	return bar
}

// BuildingFinancials is the per-building sum of each available financial
// column. Totals holds one entry per column in Columns; buildings with no
// parseable amount in a column carry zero there.
type BuildingFinancials struct {
	Columns []string
	Rows    []BuildingFinancialRow
}

// BuildingFinancialRow is one building's totals, aligned with Columns.
type BuildingFinancialRow struct {
	Building string
	Totals   []decimal.Decimal
}

// FinancialByBuilding sums every present financial column per building,
// sorted alphabetically by building. Returns nil when the Building column
// or every financial column is absent.
func FinancialByBuilding(t *dataset.Table) *BuildingFinancials {
	if !t.HasColumn("Building") {
		return nil
	}
	var cols []string
	for _, c := range dataset.FinancialColumns {
		if t.HasColumn(c) {
			cols = append(cols, c)
		}
	}
	if len(cols) == 0 {
		return nil
	}

	bIdx := t.ColumnIndex("Building")
	colIdx := make([]int, len(cols))
	for i, c := range cols {
		colIdx[i] = t.ColumnIndex(c)
	}

	totals := make(map[string][]decimal.Decimal)
	var order []string
	for _, row := range t.Rows {
		b := row[bIdx]
		if b == "" {
			continue
		}
		sums, seen := totals[b]
		if !seen {
			sums = make([]decimal.Decimal, len(cols))
			totals[b] = sums
			order = append(order, b)
		}
		for i, ci := range colIdx {
			if amt, ok := dataset.ParseAmount(row[ci]); ok {
				sums[i] = sums[i].Add(amt)
			}
		}
	}

	out := &BuildingFinancials{Columns: cols}
	for _, b := range order {
		out.Rows = append(out.Rows, BuildingFinancialRow{Building: b, Totals: totals[b]})
	}
	sort.SliceStable(out.Rows, func(i, j int) bool {
		return out.Rows[i].Building < out.Rows[j].Building
	})
	return out
}
