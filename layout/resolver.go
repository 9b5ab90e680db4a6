package layout

import (
	"math"

	"github.com/motivationletter/plume/model"
)

// Unit conversion factors from centimeters.
const (
	// PointsPerCM converts centimeters to PDF points.
	PointsPerCM = 28.35
	// TwipsPerCM converts centimeters to DOCX twips (1/20 point).
	TwipsPerCM = 566.9
)

// Defaults applied when a margin value is absent or invalid.
const (
	// DefaultPoints is the fallback PDF margin (≈1.76cm).
	DefaultPoints = 50.0
	// DefaultTwips is the fallback DOCX margin (≈2cm).
	DefaultTwips = 1134
)

// PointMargins holds page margins in PDF points.
type PointMargins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// TwipMargins holds page margins in DOCX twips.
type TwipMargins struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// ToPoints converts centimeter margins into PDF points. A nil margins value
// or a non-positive side yields the default for that side.
func ToPoints(m *model.Margins) PointMargins {
	if m == nil {
		return PointMargins{Top: DefaultPoints, Right: DefaultPoints, Bottom: DefaultPoints, Left: DefaultPoints}
	}
	return PointMargins{
		Top:    cmToPoints(m.Top),
		Right:  cmToPoints(m.Right),
		Bottom: cmToPoints(m.Bottom),
		Left:   cmToPoints(m.Left),
	}
}

// ToTwips converts centimeter margins into DOCX twips. A nil margins value
// or a non-positive side yields the default for that side.
func ToTwips(m *model.Margins) TwipMargins {
	if m == nil {
		return TwipMargins{Top: DefaultTwips, Right: DefaultTwips, Bottom: DefaultTwips, Left: DefaultTwips}
	}
	return TwipMargins{
		Top:    cmToTwips(m.Top),
		Right:  cmToTwips(m.Right),
		Bottom: cmToTwips(m.Bottom),
		Left:   cmToTwips(m.Left),
	}
}

// PointsToCM converts PDF points back to centimeters.
func PointsToCM(points float64) float64 {
	return points / PointsPerCM
}

// TwipsToCM converts DOCX twips back to centimeters.
func TwipsToCM(twips int) float64 {
	return float64(twips) / TwipsPerCM
}

func cmToPoints(cm float64) float64 {
	if !validCM(cm) {
		return DefaultPoints
	}
	return cm * PointsPerCM
}

func cmToTwips(cm float64) int {
	if !validCM(cm) {
		return DefaultTwips
	}
	return int(math.Round(cm * TwipsPerCM))
}

// validCM rejects non-finite and non-positive values so malformed input
// degrades to the documented default instead of failing.
func validCM(cm float64) bool {
	return !math.IsNaN(cm) && !math.IsInf(cm, 0) && cm > 0
}
