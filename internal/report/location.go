package report

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"assetdash/internal/dataset"
)

const topPairs = 20

// LocationRow is one Building×Room combination with its asset count.
type LocationRow struct {
	Building string
	Room     string
	Count    int
}

// LocationSummary lists every Building×Room combination sorted descending by
// count, with no row limit. Returns nil unless both columns are present.
func LocationSummary(t *dataset.Table) []LocationRow {
	pairs := t.PairCounts("Building", "Room Name")
	if pairs == nil {
		return nil
	}
	rows := make([]LocationRow, len(pairs))
	for i, p := range pairs {
		rows[i] = LocationRow{Building: p.First, Room: p.Second, Count: p.Count}
	}
	return rows
}

// BuildingTreemap renders asset distribution per building as a hierarchical
// area chart. Returns nil when the Building column is absent.
func BuildingTreemap(t *dataset.Table) *charts.TreeMap {
	if !t.HasColumn("Building") {
		return nil
	}
	counts := t.GroupCounts("Building")

	tm := charts.NewTreeMap()
	tm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Asset Distribution by Building"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "450px"}),
	)

	nodes := make([]opts.TreeMapNode, len(counts))
	for i, gc := range counts {
		nodes[i] = opts.TreeMapNode{Name: gc.Key, Value: gc.Count}
	}
	tm.AddSeries("Buildings", nodes)
	return tm
}

// BuildingRoomSunburst renders the Building → Room hierarchy for the top 20
// combinations by count. Returns nil unless both columns are present.
func BuildingRoomSunburst(t *dataset.Table) *charts.Sunburst {
	pairs := t.PairCounts("Building", "Room Name")
	if pairs == nil {
		return nil
	}
	if len(pairs) > topPairs {
		pairs = pairs[:topPairs]
	}

	// Group the retained pairs back under their buildings.
	children := make(map[string][]*opts.SunBurstData)
	var order []string
	for _, p := range pairs {
		if _, seen := children[p.First]; !seen {
			order = append(order, p.First)
		}
		children[p.First] = append(children[p.First], &opts.SunBurstData{
			Name:  p.Second,
			Value: float64(p.Count),
		})
	}

	data := make([]opts.SunBurstData, len(order))
	for i, building := range order {
		data[i] = opts.SunBurstData{Name: building, Children: children[building]}
	}

	sb := charts.NewSunburst()
	sb.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Asset Distribution: Building → Room (Top 20)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "450px"}),
	)
	sb.AddSeries("Locations", data)
	return sb
}
