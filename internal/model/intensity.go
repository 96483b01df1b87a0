package model

// IntensityLevel is the discrete classification of one day's spending
// relative to the total monthly budget, used to color the calendar
// heatmap. Levels are ordinal; higher means more spending.
type IntensityLevel int

const (
	IntensityNone IntensityLevel = iota
	IntensityLow
	IntensityMedium
	IntensityHigh
	IntensityCritical
	IntensityOverTheTop
)

var intensityNames = map[IntensityLevel]string{
	IntensityNone:       "NONE",
	IntensityLow:        "LOW",
	IntensityMedium:     "MEDIUM",
	IntensityHigh:       "HIGH",
	IntensityCritical:   "CRITICAL",
	IntensityOverTheTop: "OVERTHETOP",
}

func (l IntensityLevel) String() string {
	if name, ok := intensityNames[l]; ok {
		return name
	}
	return "NONE"
}
