// Package report renders the dashboard panels. Every function here is a pure
// reduction of a filtered dataset view: panels never mutate the table and an
// empty view degrades to empty charts or placeholder values.
package report

import (
	"strconv"

	"assetdash/internal/dataset"
)

// activeYes is the literal affirmative value of the Active flag column.
const activeYes = "Yes"

// Metrics are the scalar summary cards shown above the panels.
type Metrics struct {
	TotalAssets  int
	Buildings    int
	HasBuildings bool
	Rooms        int
	HasRooms     bool
	ActiveAssets int
	HasActive    bool
}

// Summarize computes the key metrics for the current view.
func Summarize(t *dataset.Table) Metrics {
	m := Metrics{TotalAssets: t.RowCount()}

	if t.HasColumn("Building") {
		m.HasBuildings = true
		m.Buildings = t.DistinctCount("Building")
	}
	if t.HasColumn("Room Name") {
		m.HasRooms = true
		m.Rooms = t.DistinctCount("Room Name")
	}
	if t.HasColumn("Active") {
		m.HasActive = true
		idx := t.ColumnIndex("Active")
		for _, row := range t.Rows {
			if row[idx] == activeYes {
				m.ActiveAssets++
			}
		}
	}
	return m
}

// BuildingsLabel formats the distinct-building count, or "N/A" when the
// column is absent.
func (m Metrics) BuildingsLabel() string {
	if !m.HasBuildings {
		return "N/A"
	}
	return strconv.Itoa(m.Buildings)
}

// RoomsLabel formats the distinct-room count, or "N/A".
func (m Metrics) RoomsLabel() string {
	if !m.HasRooms {
		return "N/A"
	}
	return strconv.Itoa(m.Rooms)
}

// ActiveLabel formats the active-asset count, or "N/A".
func (m Metrics) ActiveLabel() string {
	if !m.HasActive {
		return "N/A"
	}
	return strconv.Itoa(m.ActiveAssets)
}
