package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KineticBytes/echem-cli/internal/chem"
)

var kbYAML bool

var kbCmd = &cobra.Command{
	Use:   "kb",
	Short: "Inspect the built-in chemistry knowledge base",
	Example: `  echem kb reactions
  echem kb reactions --yaml
  echem kb elements`,
}

var kbReactionsCmd = &cobra.Command{
	Use:   "reactions",
	Short: "List the reaction records per technique",
	RunE: func(cmd *cobra.Command, args []string) error {
		if kbYAML {
			type entry struct {
				Technique string        `yaml:"technique"`
				Reaction  chem.Reaction `yaml:"reaction"`
			}
			out := make([]entry, 0, len(chem.KnownModes()))
			for _, m := range chem.KnownModes() {
				r, ok := chem.ReactionFor(m)
				if !ok {
					continue
				}
				out = append(out, entry{Technique: m.String(), Reaction: r})
			}
			enc := yaml.NewEncoder(os.Stdout)
			defer enc.Close()
			return enc.Encode(out)
		}
		for _, m := range chem.KnownModes() {
			r, ok := chem.ReactionFor(m)
			if !ok {
				continue
			}
			fmt.Printf("%s\n", m)
			fmt.Printf("  molecular: %s\n", r.Molecular)
			fmt.Printf("  ionic:     %s\n", r.Ionic)
			fmt.Printf("  comment:   %s\n", r.Comment)
		}
		return nil
	},
}

var kbElementsCmd = &cobra.Command{
	Use:   "elements",
	Short: "List the element property records",
	RunE: func(cmd *cobra.Command, args []string) error {
		if kbYAML {
			type entry struct {
				Symbol     chem.ElementSymbol     `yaml:"symbol"`
				Properties chem.ElementProperties `yaml:"properties"`
			}
			out := make([]entry, 0, len(chem.KnownElements()))
			for _, s := range chem.KnownElements() {
				p, ok := chem.PropertiesFor(s)
				if !ok {
					continue
				}
				out = append(out, entry{Symbol: s, Properties: p})
			}
			enc := yaml.NewEncoder(os.Stdout)
			defer enc.Close()
			return enc.Encode(out)
		}
		for _, s := range chem.KnownElements() {
			p, ok := chem.PropertiesFor(s)
			if !ok {
				continue
			}
			photo := ""
			if p.Photosensitive {
				photo = ", photosensitive"
			}
			fmt.Printf("%-2s  %s (%s%s)\n", s, p.Name, p.Class, photo)
			fmt.Printf("    %s\n", p.Note)
		}
		return nil
	},
}

func init() {
	kbCmd.PersistentFlags().BoolVar(&kbYAML, "yaml", false, "emit the records as YAML")
	kbCmd.AddCommand(kbReactionsCmd)
	kbCmd.AddCommand(kbElementsCmd)
	rootCmd.AddCommand(kbCmd)
}
