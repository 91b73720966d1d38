package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/KineticBytes/echem-cli/internal/chart"
	cfgpkg "github.com/KineticBytes/echem-cli/internal/config"
	"github.com/KineticBytes/echem-cli/internal/echem"
	"github.com/KineticBytes/echem-cli/internal/report"
	"github.com/KineticBytes/echem-cli/internal/utils"
)

var (
	anaTemperature float64
	anaWavelength  float64
	anaPower       float64
	anaChartPath   string
	anaSaveChart   bool
	anaOutputPath  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze an instrument export and compose a report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read export: %w", err)
		}

		a := echem.Analyze(string(data))

		// Environmental parameters count as supplied only when the
		// operator actually set the flag.
		var cond report.Conditions
		f := cmd.Flags()
		if f.Changed("temperature") {
			cond.TemperatureC = &anaTemperature
		}
		if f.Changed("wavelength") {
			cond.WavelengthNm = &anaWavelength
		}
		if f.Changed("power") {
			cond.PowerMW = &anaPower
		}

		rep := report.Compose(a, cond)
		fmt.Printf("Detected technique: %s\n\n", a.Mode)
		fmt.Println(rep)

		if anaOutputPath != "" {
			if err := utils.SafeWriteFile(anaOutputPath, []byte(rep+"\n")); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Report written to %s\n", anaOutputPath)
		}

		chartPath := anaChartPath
		if chartPath == "" && anaSaveChart {
			c := cfg
			if c == nil {
				loaded, err := cfgpkg.Load(cfgFile)
				if err != nil {
					return fmt.Errorf("load config for chart dir: %w", err)
				}
				c = loaded
			}
			if err := utils.EnsureDir(c.ChartsDir); err != nil {
				return fmt.Errorf("mkdir charts dir: %w", err)
			}
			chartPath = filepath.Join(c.ChartsDir, a.RunID.String()+".png")
		}
		if chartPath != "" {
			if !a.HasData() || len(a.XSeries) == 0 {
				fmt.Fprintln(os.Stderr, "⚠ Warning: no plottable series; chart skipped")
				return nil
			}
			opt := chart.Options{Width: 1024, Height: 600}
			if cfg != nil {
				opt.Width = cfg.ChartWidth
				opt.Height = cfg.ChartHeight
			}
			if err := chart.Render(a, opt, chartPath); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Chart written to %s\n", chartPath)
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().Float64Var(&anaTemperature, "temperature", 0, "electrolyte temperature in °C (adds the thermal section)")
	analyzeCmd.Flags().Float64Var(&anaWavelength, "wavelength", 0, "illumination wavelength in nm (adds the photoexcitation section)")
	analyzeCmd.Flags().Float64Var(&anaPower, "power", 0, "illumination power in mW (reported alongside wavelength)")
	analyzeCmd.Flags().StringVar(&anaChartPath, "chart", "", "render the selected series to a PNG at this path")
	analyzeCmd.Flags().BoolVar(&anaSaveChart, "save-chart", false, "render the chart into the configured charts_dir, named by run ID")
	analyzeCmd.Flags().StringVar(&anaOutputPath, "output", "", "also write the report to this file")
	rootCmd.AddCommand(analyzeCmd)
}
