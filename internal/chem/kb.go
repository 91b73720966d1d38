// Package chem holds the fixed chemistry knowledge base used to enrich
// analysis reports: one reaction record per known technique and a small set
// of element property records. Both catalogs are immutable and keyed by
// typed values so an invalid key is a compile error, not a silent miss.
package chem

import "github.com/KineticBytes/echem-cli/internal/echem"

// Reaction describes the electrode chemistry associated with a technique.
type Reaction struct {
	Molecular string `yaml:"molecular"`
	Ionic     string `yaml:"ionic"`
	Comment   string `yaml:"comment"`
}

// ElementSymbol is a chemical element symbol known to the knowledge base.
type ElementSymbol string

const (
	Hydrogen ElementSymbol = "H"
	Nitrogen ElementSymbol = "N"
	Oxygen   ElementSymbol = "O"
	Copper   ElementSymbol = "Cu"
	Silver   ElementSymbol = "Ag"
	Platinum ElementSymbol = "Pt"
)

// ElementProperties is the fixed property record for an element.
type ElementProperties struct {
	Name           string `yaml:"name"`
	Photosensitive bool   `yaml:"photosensitive"`
	Class          string `yaml:"class"`
	Note           string `yaml:"note"`
}

var reactions = map[echem.ExperimentMode]Reaction{
	echem.ModePotentiostatic: {
		Molecular: "4 AgNO3 + 2 H2O -> 4 Ag + 4 HNO3 + O2",
		Ionic:     "Ag+ + e- -> Ag (cathode); 2 H2O -> O2 + 4 H+ + 4 e- (anode)",
		Comment:   "Silver deposits at the cathode under constant potential while oxygen evolves at the anode.",
	},
	echem.ModeCyclicVoltammetry: {
		Molecular: "Ag <-> Ag+ + e-",
		Ionic:     "Ag -> Ag+ + e- (anodic sweep); Ag+ + e- -> Ag (cathodic sweep)",
		Comment:   "The Ag/Ag+ couple is cycled; peak separation indicates the reversibility of the electrode process.",
	},
	echem.ModeChronoamperometry: {
		Molecular: "AgNO3 + e- -> Ag + NO3-",
		Ionic:     "Ag+ + e- -> Ag",
		Comment:   "After the potential step the deposition current decays with diffusion control (Cottrell behavior).",
	},
}

var elements = map[ElementSymbol]ElementProperties{
	Hydrogen: {
		Name:  "Hydrogen",
		Class: "nonmetal",
		Note:  "Evolves at the cathode in aqueous electrolysis when the deposition potential is exceeded.",
	},
	Nitrogen: {
		Name:  "Nitrogen",
		Class: "nonmetal",
		Note:  "Present as the nitrate counter-ion; electrochemically inert in this potential window.",
	},
	Oxygen: {
		Name:  "Oxygen",
		Class: "nonmetal",
		Note:  "Anodic product of water oxidation in nitrate electrolytes.",
	},
	Copper: {
		Name:  "Copper",
		Class: "transition metal",
		Note:  "Common substrate for silver deposition; displaces Ag+ from solution spontaneously.",
	},
	Silver: {
		Name:           "Silver",
		Photosensitive: true,
		Class:          "transition metal",
		Note:           "Its halides darken under illumination, the basis of classical photography; freshly deposited films are light-sensitive.",
	},
	Platinum: {
		Name:  "Platinum",
		Class: "transition metal",
		Note:  "Standard inert counter electrode material.",
	},
}

// ReactionFor returns the reaction record for a technique, if one exists.
func ReactionFor(mode echem.ExperimentMode) (Reaction, bool) {
	r, ok := reactions[mode]
	return r, ok
}

// PropertiesFor returns the property record for an element symbol, if known.
func PropertiesFor(sym ElementSymbol) (ElementProperties, bool) {
	p, ok := elements[sym]
	return p, ok
}

// KnownModes lists the techniques with a reaction record, in a stable order.
func KnownModes() []echem.ExperimentMode {
	return []echem.ExperimentMode{
		echem.ModePotentiostatic,
		echem.ModeCyclicVoltammetry,
		echem.ModeChronoamperometry,
	}
}

// KnownElements lists the catalogued element symbols in a stable order.
func KnownElements() []ElementSymbol {
	return []ElementSymbol{Hydrogen, Nitrogen, Oxygen, Copper, Silver, Platinum}
}
