package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"go-hep.org/x/hep/hbook"

	"github.com/opendata-hep/hzz4l/ana"
	"github.com/opendata-hep/hzz4l/histio"
	"github.com/opendata-hep/hzz4l/metadata"
)

var runFlags struct {
	config   string
	lumi     float64
	fraction float64
	base     string
	output   string
	plot     string
	profile  bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "run the selection and export mass histograms",
	Args:  cobra.NoArgs,
	RunE:  runRun,
}

func init() {
	f := runCmd.Flags()
	f.StringVarP(&runFlags.config, "config", "c", "", "YAML run configuration (default: the standard 13 TeV run)")
	f.Float64Var(&runFlags.lumi, "lumi", 0, "integrated luminosity in 1/fb (overrides config)")
	f.Float64Var(&runFlags.fraction, "fraction", 0, "fraction of each file to read, in (0,1] (overrides config)")
	f.StringVar(&runFlags.base, "base", "", "sample store: local dir, http(s) or xrootd URL (overrides config)")
	f.StringVarP(&runFlags.output, "output", "o", "hzz4l.root", "output histogram container")
	f.StringVar(&runFlags.plot, "plot", "", "also draw the overlaid spectra to this file (png, pdf, ...)")
	f.BoolVar(&runFlags.profile, "profile", false, "write a CPU profile to the working directory")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	if runFlags.profile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	cfg := ana.DefaultConfig()
	if runFlags.config != "" {
		var err error
		cfg, err = ana.LoadConfig(runFlags.config)
		if err != nil {
			return err
		}
	}
	if runFlags.lumi != 0 {
		cfg.Luminosity = runFlags.lumi
	}
	if runFlags.fraction != 0 {
		cfg.Fraction = runFlags.fraction
	}
	if runFlags.base != "" {
		cfg.Base = runFlags.base
	}

	runner := &ana.Runner{
		Config: cfg,
		Table:  metadata.DefaultTable(),
		Log:    log.New(os.Stderr, "hzz4l: ", 0),
	}
	results, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	def := histio.DefaultDef()
	hists := make([]*hbook.H1D, 0, len(results))
	for _, res := range results {
		h, err := histio.Fill(def, res.Category.Name, res.Mass, res.Weight)
		if err != nil {
			return err
		}
		hists = append(hists, h)
	}

	if err := histio.Write(runFlags.output, hists); err != nil {
		return err
	}
	fmt.Printf("wrote %d histograms to %s\n", len(hists), runFlags.output)

	if runFlags.plot != "" {
		if err := drawOverlay(runFlags.plot, def, results, hists); err != nil {
			return err
		}
		fmt.Printf("wrote plot to %s\n", runFlags.plot)
	}
	return nil
}
