package model

// Quality selects the compression profile of the generated file. It affects
// compression only, never content: all qualities produce the same text and
// layout.
type Quality string

const (
	// QualityStandard favors generation speed.
	QualityStandard Quality = "standard"
	// QualityHigh balances speed and output size.
	QualityHigh Quality = "high"
	// QualityUltra favors the smallest output size.
	QualityUltra Quality = "ultra"
)

// Valid reports whether the quality is one of the known profiles.
func (q Quality) Valid() bool {
	return q == QualityStandard || q == QualityHigh || q == QualityUltra
}

// Margins expresses page margins in centimeters. This is the unit used at
// every engine boundary; conversion into format-native units (points, twips)
// is internal to the layout package.
type Margins struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// DefaultMarginCM is the margin applied to each side when the caller does
// not supply margins.
const DefaultMarginCM = 2.5

// DefaultMargins returns 2.5cm margins on every side.
func DefaultMargins() Margins {
	return Margins{Top: DefaultMarginCM, Right: DefaultMarginCM, Bottom: DefaultMarginCM, Left: DefaultMarginCM}
}

// ExportOptions carries the caller-supplied rendering configuration.
type ExportOptions struct {
	Format           string   `json:"format" validate:"required,oneof=pdf docx txt html"`
	Quality          Quality  `json:"quality" validate:"omitempty,oneof=standard high ultra"`
	IncludeMetadata  bool     `json:"includeMetadata"`
	IncludeWatermark bool     `json:"includeWatermark"`
	FontSize         int      `json:"fontSize" validate:"omitempty,min=6,max=32"`
	FontFamily       string   `json:"fontFamily"`
	Margins          *Margins `json:"margins,omitempty"`
}

// DefaultExportOptions returns the options applied when a field is absent:
// PDF output, standard quality, 11pt Helvetica, 2.5cm margins.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		Format:     "pdf",
		Quality:    QualityStandard,
		FontSize:   11,
		FontFamily: "Helvetica",
	}
}

// Normalized returns a copy with absent fields replaced by defaults. The
// original value is not modified.
func (o ExportOptions) Normalized() ExportOptions {
	out := o
	if out.Quality == "" {
		out.Quality = QualityStandard
	}
	if out.FontSize == 0 {
		out.FontSize = 11
	}
	if out.FontFamily == "" {
		out.FontFamily = "Helvetica"
	}
	if out.Margins == nil {
		m := DefaultMargins()
		out.Margins = &m
	}
	return out
}
