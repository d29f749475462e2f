package core

import (
	"testing"
	"time"
)

func TestSeriesKind_IsPrice(t *testing.T) {
	tests := []struct {
		kind SeriesKind
		want bool
	}{
		{SeriesOpen, true},
		{SeriesHigh, true},
		{SeriesLow, true},
		{SeriesClose, true},
		{SeriesVolume, true},
		{SeriesReal, false},
		{SeriesPeriods, false},
	}

	for _, tt := range tests {
		if got := tt.kind.IsPrice(); got != tt.want {
			t.Errorf("%s.IsPrice() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestBars_Column(t *testing.T) {
	now := time.Now()
	bars := Bars{
		{Time: now, Open: 1, High: 4, Low: 0.5, Close: 2, Volume: 100},
		{Time: now.Add(time.Minute), Open: 2, High: 5, Low: 1.5, Close: 3, Volume: 200},
	}

	tests := []struct {
		kind SeriesKind
		want []float64
	}{
		{SeriesOpen, []float64{1, 2}},
		{SeriesHigh, []float64{4, 5}},
		{SeriesLow, []float64{0.5, 1.5}},
		{SeriesClose, []float64{2, 3}},
		{SeriesVolume, []float64{100, 200}},
		{SeriesReal, []float64{2, 3}},
	}

	for _, tt := range tests {
		got := bars.Column(tt.kind)
		if len(got) != len(tt.want) {
			t.Fatalf("%s: expected %d values, got %d", tt.kind, len(tt.want), len(got))
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%s[%d] = %f, want %f", tt.kind, i, got[i], tt.want[i])
			}
		}
	}
}
