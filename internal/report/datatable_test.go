package report

import (
	"testing"
	"time"
)

func TestDisplayColumns(t *testing.T) {
	table := mustParse(t, assetsCSV)

	tests := []struct {
		name     string
		selected []string
		want     []string
	}{
		{
			name:     "defaults when nothing selected",
			selected: nil,
			want:     []string{"Asset ID", "Company", "Building", "Room Name", "Status", "Active", "Date Added", "Last Updated"},
		},
		{
			name:     "selection kept in order",
			selected: []string{"Cost", "Asset ID"},
			want:     []string{"Cost", "Asset ID"},
		},
		{
			name:     "absent selections dropped",
			selected: []string{"Serial Number", "Status"},
			want:     []string{"Status"},
		},
		{
			name:     "fully absent selection falls back to defaults",
			selected: []string{"Serial Number"},
			want:     []string{"Asset ID", "Company", "Building", "Room Name", "Status", "Active", "Date Added", "Last Updated"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DisplayColumns(table, tt.selected)
			if len(got) != len(tt.want) {
				t.Fatalf("DisplayColumns = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("DisplayColumns = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestDisplayColumnsSkipsAbsentDefaults(t *testing.T) {
	table := mustParse(t, "Asset ID,Status\nA1,Deployed\n")
	got := DisplayColumns(table, nil)
	want := []string{"Asset ID", "Status"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("DisplayColumns = %v, want %v", got, want)
	}
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 30, 45, 0, time.UTC)
	if got := ExportFilename(now); got != "filtered_assets_20240315_093045.csv" {
		t.Errorf("ExportFilename = %q", got)
	}
}
