// Package report composes the human-readable analysis report from the
// pipeline output and the chemistry knowledge base.
package report

import (
	"fmt"
	"strings"

	"github.com/KineticBytes/echem-cli/internal/chem"
	"github.com/KineticBytes/echem-cli/internal/echem"
)

// NoDataMessage is the entire report when no numeric rows were extracted.
const NoDataMessage = "No numerical experimental data detected."

// Conditions carries the optional environmental parameters supplied by the
// operator. A nil field means the parameter was not provided and its report
// section is omitted (power alone falls back to "not specified").
type Conditions struct {
	TemperatureC *float64
	WavelengthNm *float64
	PowerMW      *float64
}

const processingText = `The export was scanned line by line. Technique markers were matched
against the metadata, the first unit-annotated line was taken as the
column header, and every fully numeric line was admitted into the data
table. The dependent series was projected from the selected column and
averaged.`

const concludingText = `The processed series is consistent with the detected technique within
the limits of this summary. Verify electrode preparation and electrolyte
purity before comparing runs quantitatively.`

// Compose builds the full report for one analysis run. Sections appear in a
// fixed order; thermal, photoexcitation and chemical-interpretation sections
// are conditional. An analysis with no data degenerates to NoDataMessage.
func Compose(a *echem.Analysis, cond Conditions) string {
	if !a.HasData() {
		return NoDataMessage
	}

	var b strings.Builder

	b.WriteString("[GENERAL INFORMATION]\n")
	fmt.Fprintf(&b, "Technique: %s\n", a.Mode)
	fmt.Fprintf(&b, "Data rows: %d\n", len(a.Table))

	b.WriteString("\n[PROCESSING]\n")
	b.WriteString(processingText)
	b.WriteString("\n")

	b.WriteString("\n[QUANTITATIVE CHARACTERISTICS]\n")
	if len(a.YSeries) == 0 {
		b.WriteString("No rows wide enough for the selected axes; statistics unavailable.\n")
	} else {
		fmt.Fprintf(&b, "Mean %s: %s\n", a.Axes.YLabel, echem.FormatScientific(a.Stats.Mean))
		fmt.Fprintf(&b, "Min %s: %s\n", a.Axes.YLabel, echem.FormatScientific(a.Stats.Min))
		fmt.Fprintf(&b, "Max %s: %s\n", a.Axes.YLabel, echem.FormatScientific(a.Stats.Max))
		fmt.Fprintf(&b, "Std %s: %s\n", a.Axes.YLabel, echem.FormatScientific(a.Stats.Std))
		fmt.Fprintf(&b, "Series points: %d\n", len(a.YSeries))
	}
	if a.Skipped > 0 {
		fmt.Fprintf(&b, "Rows skipped (too narrow for selected axes): %d\n", a.Skipped)
	}

	if cond.TemperatureC != nil {
		b.WriteString("\n[THERMAL CONDITIONS]\n")
		fmt.Fprintf(&b, "Temperature: %.1f °C\n", *cond.TemperatureC)
	}

	if cond.WavelengthNm != nil {
		b.WriteString("\n[PHOTOEXCITATION CONDITIONS]\n")
		fmt.Fprintf(&b, "Wavelength: %.0f nm\n", *cond.WavelengthNm)
		if cond.PowerMW != nil {
			fmt.Fprintf(&b, "Power: %.2f mW\n", *cond.PowerMW)
		} else {
			b.WriteString("Power: not specified\n")
		}
	}

	if r, ok := chem.ReactionFor(a.Mode); ok {
		b.WriteString("\n[CHEMICAL INTERPRETATION]\n")
		fmt.Fprintf(&b, "Molecular: %s\n", r.Molecular)
		fmt.Fprintf(&b, "Ionic: %s\n", r.Ionic)
		fmt.Fprintf(&b, "Comment: %s\n", r.Comment)
	}

	// The silver entry is always reported; the fixed workflow targets
	// silver deposition regardless of the detected technique.
	if p, ok := chem.PropertiesFor(chem.Silver); ok {
		b.WriteString("\n[ELEMENT PROPERTIES]\n")
		fmt.Fprintf(&b, "%s (%s): %s\n", p.Name, chem.Silver, p.Class)
		fmt.Fprintf(&b, "Photosensitive: %s\n", yesNo(p.Photosensitive))
		fmt.Fprintf(&b, "Note: %s\n", p.Note)
	}

	b.WriteString("\n[CONCLUDING REMARKS]\n")
	b.WriteString(concludingText)
	b.WriteString("\n")

	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
