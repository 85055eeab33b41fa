package triage

import "testing"

func TestHasCenterGap(t *testing.T) {
	// Axis length 800, midpoint 400, minimum gap 8.
	const total = 800.0

	tests := []struct {
		name      string
		intervals []interval
		want      bool
	}{
		{
			name:      "empty list never splits",
			intervals: nil,
			want:      false,
		},
		{
			name: "clear gap around midpoint splits",
			intervals: []interval{
				{start: 100, end: 390},
				{start: 410, end: 700},
			},
			want: true,
		},
		{
			name: "gap below one percent does not split",
			intervals: []interval{
				{start: 100, end: 397},
				{start: 403, end: 700},
			},
			want: false,
		},
		{
			name: "interval straddling midpoint never splits",
			intervals: []interval{
				{start: 100, end: 200},
				{start: 300, end: 500},
				{start: 600, end: 700},
			},
			want: false,
		},
		{
			name: "tiled images merge into one block before gap check",
			intervals: []interval{
				{start: 100, end: 200},
				{start: 203, end: 390},
				{start: 410, end: 700},
			},
			want: true,
		},
		{
			name: "merge across midpoint suppresses split",
			intervals: []interval{
				{start: 100, end: 398},
				{start: 402, end: 700},
			},
			want: false,
		},
		{
			name: "all intervals on one side do not split",
			intervals: []interval{
				{start: 50, end: 150},
				{start: 200, end: 300},
			},
			want: false,
		},
		{
			name: "unsorted input is handled",
			intervals: []interval{
				{start: 410, end: 700},
				{start: 100, end: 390},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasCenterGap(tt.intervals, total); got != tt.want {
				t.Errorf("hasCenterGap() = %v, want %v", got, tt.want)
			}
		})
	}
}
