package report

import (
	"sort"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"assetdash/internal/dataset"
)

// DateCount is a calendar-day bucket of row counts.
type DateCount struct {
	Day   time.Time
	Count int
}

// MonthCount is a calendar year-month bucket of row counts.
type MonthCount struct {
	Month string // "2006-01"
	Count int
}

// DailyCounts buckets a coerced date column by calendar day, sorted
// chronologically. Rows with missing dates are excluded from the buckets only;
// they remain in the view for other panels. The second return is false when
// the column is absent.
func DailyCounts(t *dataset.Table, col string) ([]DateCount, bool) {
	dates, ok := t.Dates(col)
	if !ok {
		return nil, false
	}
	counts := make(map[time.Time]int)
	for _, ts := range dates {
		if ts.IsZero() {
			continue
		}
		day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
		counts[day]++
	}
	out := make([]DateCount, 0, len(counts))
	for day, n := range counts {
		out = append(out, DateCount{Day: day, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out, true
}

// MonthlyCounts buckets a coerced date column by calendar year-month, sorted
// chronologically.
func MonthlyCounts(t *dataset.Table, col string) ([]MonthCount, bool) {
	dates, ok := t.Dates(col)
	if !ok {
		return nil, false
	}
	counts := make(map[string]int)
	for _, ts := range dates {
		if ts.IsZero() {
			continue
		}
		counts[ts.Format("2006-01")]++
	}
	out := make([]MonthCount, 0, len(counts))
	for month, n := range counts {
		out = append(out, MonthCount{Month: month, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, true
}

// AdditionsLine charts daily counts of the Date Added column. Returns nil
// when the column is absent or no date parsed.
func AdditionsLine(t *dataset.Table) *charts.Line {
	daily, ok := DailyCounts(t, "Date Added")
	if !ok || len(daily) == 0 {
		return nil
	}
	return dailyLine("Assets Added Over Time", "Assets Added", daily, false)
}

// AdditionsMonthlyBar charts monthly counts of the Date Added column.
func AdditionsMonthlyBar(t *dataset.Table) *charts.Bar {
	monthly, ok := MonthlyCounts(t, "Date Added")
	if !ok || len(monthly) == 0 {
		return nil
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Assets Added by Month"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Month",
			Type:      "category",
			AxisLabel: &opts.AxisLabel{Rotate: 45},
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Assets Added", Type: "value"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "400px"}),
	)

	labels := make([]string, len(monthly))
	data := make([]opts.BarData, len(monthly))
	for i, mc := range monthly {
		labels[i] = mc.Month
		data[i] = opts.BarData{Value: mc.Count}
	}
	bar.SetXAxis(labels)
	bar.AddSeries("Assets Added", data)
	return bar
}

// UpdatesArea charts daily counts of the Last Updated column as an area
// chart.
func UpdatesArea(t *dataset.Table) *charts.Line {
	daily, ok := DailyCounts(t, "Last Updated")
	if !ok || len(daily) == 0 {
		return nil
	}
	return dailyLine("Assets Updated Over Time", "Assets Updated", daily, true)
}

func dailyLine(title, series string, daily []DateCount, area bool) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Date",
			Type:      "category",
			AxisLabel: &opts.AxisLabel{Rotate: 45},
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: series, Type: "value"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", Start: 0, End: 100}),
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "400px"}),
	)

	labels := make([]string, len(daily))
	data := make([]opts.LineData, len(daily))
	for i, dc := range daily {
		labels[i] = dc.Day.Format("2006-01-02")
		data[i] = opts.LineData{Value: dc.Count}
	}
	line.SetXAxis(labels)

	seriesOpts := []charts.SeriesOpts{
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}),
	}
	if area {
		seriesOpts = append(seriesOpts, charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: opts.Float(0.4)}))
	}
	line.AddSeries(series, data, seriesOpts...)
	return line
}
