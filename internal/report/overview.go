package report

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"assetdash/internal/dataset"
)

const topGroups = 10

func topN(counts []dataset.GroupCount, n int) []dataset.GroupCount {
	if len(counts) > n {
		return counts[:n]
	}
	return counts
}

// BuildingBar charts row counts for the ten largest buildings, descending.
// Returns nil when the Building column is absent.
func BuildingBar(t *dataset.Table) *charts.Bar {
	if !t.HasColumn("Building") {
		return nil
	}
	counts := topN(t.GroupCounts("Building"), topGroups)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Assets by Building (Top 10)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Building",
			Type:      "category",
			AxisLabel: &opts.AxisLabel{Rotate: 30},
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Assets", Type: "value"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "400px"}),
	)

	labels := make([]string, len(counts))
	data := make([]opts.BarData, len(counts))
	for i, gc := range counts {
		labels[i] = gc.Key
		data[i] = opts.BarData{Value: gc.Count}
	}
	bar.SetXAxis(labels)
	bar.AddSeries("Assets", data)
	return bar
}

// RoomPie charts the share of assets across the ten largest rooms. Returns
// nil when the Room Name column is absent.
func RoomPie(t *dataset.Table) *charts.Pie {
	if !t.HasColumn("Room Name") {
		return nil
	}
	counts := topN(t.GroupCounts("Room Name"), topGroups)

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Assets by Room (Top 10)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "400px"}),
	)

	data := make([]opts.PieData, len(counts))
	for i, gc := range counts {
		data[i] = opts.PieData{Name: gc.Key, Value: gc.Count}
	}
	pie.AddSeries("Assets", data)
	return pie
}

// ActiveBar contrasts the counts of every Active-flag value, Yes against the
// rest. Returns nil when the Active column is absent.
func ActiveBar(t *dataset.Table) *charts.Bar {
	if !t.HasColumn("Active") {
		return nil
	}
	counts := t.GroupCounts("Active")

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Active vs Inactive Assets"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Status", Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Count", Type: "value"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "400px"}),
	)

	labels := make([]string, len(counts))
	data := make([]opts.BarData, len(counts))
	for i, gc := range counts {
		labels[i] = gc.Key
		color := "#e74c3c"
		if gc.Key == activeYes {
			color = "#2ecc71"
		}
		data[i] = opts.BarData{Value: gc.Count, ItemStyle: &opts.ItemStyle{Color: color}}
	}
	bar.SetXAxis(labels)
	bar.AddSeries("Count", data)
	return bar
}
