package echem

import "strings"

// ExperimentMode identifies the electrochemical technique that produced an export.
type ExperimentMode int

const (
	ModeUnknown ExperimentMode = iota
	ModePotentiostatic
	ModeCyclicVoltammetry
	ModeChronoamperometry
)

// String returns the display name shown to the operator.
func (m ExperimentMode) String() string {
	switch m {
	case ModePotentiostatic:
		return "Potentiostatic electrolysis"
	case ModeCyclicVoltammetry:
		return "Cyclic voltammetry"
	case ModeChronoamperometry:
		return "Chronoamperometry"
	default:
		return "Unknown technique"
	}
}

// markerRule ties a technique marker substring to the mode it indicates.
// fold makes the match case-insensitive.
type markerRule struct {
	marker string
	fold   bool
	mode   ExperimentMode
}

// Marker rules in evaluation order. The full list is evaluated for every
// line and the last matching rule wins, so a document carrying several
// markers resolves to the final one in document order.
var markerRules = []markerRule{
	{marker: "ID_PotStatic", mode: ModePotentiostatic},
	{marker: "ID_CycVolt", mode: ModeCyclicVoltammetry},
	{marker: "chrono", fold: true, mode: ModeChronoamperometry},
}

func (r markerRule) matches(line string) bool {
	if r.fold {
		return strings.Contains(strings.ToLower(line), strings.ToLower(r.marker))
	}
	return strings.Contains(line, r.marker)
}

// DetectMode scans every line in order against the marker rules and returns
// the mode of the last match. Absence of any marker yields ModeUnknown.
func DetectMode(lines []string) ExperimentMode {
	mode := ModeUnknown
	for _, line := range lines {
		for _, r := range markerRules {
			if r.matches(line) {
				mode = r.mode
			}
		}
	}
	return mode
}
