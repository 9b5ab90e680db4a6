package layout

import (
	"math"
	"testing"

	"github.com/motivationletter/plume/model"
)

func TestToPoints(t *testing.T) {
	tests := []struct {
		name    string
		margins *model.Margins
		want    PointMargins
	}{
		{
			name:    "nil margins fall back to defaults",
			margins: nil,
			want:    PointMargins{Top: 50, Right: 50, Bottom: 50, Left: 50},
		},
		{
			name:    "2.5cm per side",
			margins: &model.Margins{Top: 2.5, Right: 2.5, Bottom: 2.5, Left: 2.5},
			want:    PointMargins{Top: 70.875, Right: 70.875, Bottom: 70.875, Left: 70.875},
		},
		{
			name:    "asymmetric margins",
			margins: &model.Margins{Top: 1, Right: 2, Bottom: 3, Left: 4},
			want:    PointMargins{Top: 28.35, Right: 56.7, Bottom: 85.05, Left: 113.4},
		},
		{
			name:    "invalid sides fall back individually",
			margins: &model.Margins{Top: -1, Right: 0, Bottom: math.NaN(), Left: 2},
			want:    PointMargins{Top: 50, Right: 50, Bottom: 50, Left: 56.7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToPoints(tt.margins)
			if !almostEqual(got.Top, tt.want.Top) || !almostEqual(got.Right, tt.want.Right) ||
				!almostEqual(got.Bottom, tt.want.Bottom) || !almostEqual(got.Left, tt.want.Left) {
				t.Errorf("ToPoints() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestToTwips(t *testing.T) {
	tests := []struct {
		name    string
		margins *model.Margins
		want    TwipMargins
	}{
		{
			name:    "nil margins fall back to defaults",
			margins: nil,
			want:    TwipMargins{Top: 1134, Right: 1134, Bottom: 1134, Left: 1134},
		},
		{
			name:    "2.5cm per side",
			margins: &model.Margins{Top: 2.5, Right: 2.5, Bottom: 2.5, Left: 2.5},
			want:    TwipMargins{Top: 1417, Right: 1417, Bottom: 1417, Left: 1417},
		},
		{
			name:    "1cm rounds to 567",
			margins: &model.Margins{Top: 1, Right: 1, Bottom: 1, Left: 1},
			want:    TwipMargins{Top: 567, Right: 567, Bottom: 567, Left: 567},
		},
		{
			// Bottom is valid: 2cm rounds to 1134 twips, same as the default.
			name:    "invalid sides fall back individually",
			margins: &model.Margins{Top: math.Inf(1), Right: -3, Bottom: 2, Left: 0},
			want:    TwipMargins{Top: 1134, Right: 1134, Bottom: 1134, Left: 1134},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToTwips(tt.margins)
			if got != tt.want {
				t.Errorf("ToTwips() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMarginRoundTrip(t *testing.T) {
	// cm → pt → cm and cm → twips → cm must recover the original value
	// within rounding tolerance.
	for _, cm := range []float64{0.5, 1, 1.5, 2, 2.5, 3, 4.25} {
		m := &model.Margins{Top: cm, Right: cm, Bottom: cm, Left: cm}

		pts := ToPoints(m)
		if got := PointsToCM(pts.Top); math.Abs(got-cm) > 1.0/PointsPerCM {
			t.Errorf("cm→pt→cm: %v → %v → %v, outside ±1pt tolerance", cm, pts.Top, got)
		}

		twips := ToTwips(m)
		if got := TwipsToCM(twips.Top); math.Abs(got-cm) > 1.0/TwipsPerCM {
			t.Errorf("cm→twips→cm: %v → %v → %v, outside ±1 twip tolerance", cm, twips.Top, got)
		}
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
