package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"colorelic/internal/model"
	"colorelic/internal/relic"
	"colorelic/internal/xsec"
)

// RelicOptions holds flags for the relic command.
type RelicOptions struct {
	*RootOptions
	Sommerfeld bool
	Points     int
}

// relicReport is the JSON payload of a relic computation.
type relicReport struct {
	Model      string               `json:"model"`
	Candidate  string               `json:"candidate"`
	Mass       float64              `json:"mass"`
	Sommerfeld bool                 `json:"sommerfeld"`
	Xf         float64              `json:"xf"`
	SigmaV     float64              `json:"sigma_v"`
	OmegaH2    float64              `json:"omega_h2"`
	Channels   []relic.ChannelShare `json:"channels"`
}

// NewRelicCommand creates the relic command.
func NewRelicCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RelicOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "relic <model.yaml>",
		Short: "Compute the relic abundance for a model file",
		Long: `Compute the thermal relic abundance of the dark-matter candidate.

The model file is validated against the schema, the lightest dark-sector
particle becomes the candidate, and the freeze-out is solved with the
annihilation cross sections of the correction engine.

Example:
  colorelic relic model.yaml
  colorelic relic model.yaml --sommerfeld --verbose`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelic(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Sommerfeld, "sommerfeld", false, "enable Sommerfeld enhancement")
	cmd.Flags().IntVar(&opts.Points, "points", 0, "quadrature points per thermal average (default 64)")

	return cmd
}

func runRelic(opts *RelicOptions, path string, cmd *cobra.Command) error {
	spectrum, err := model.Load(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load model", err)
	}

	candidate, err := spectrum.Candidate()
	if err != nil {
		return WrapExitError(ExitFailure, "cannot identify dark matter candidate", err)
	}

	slog.Info("model loaded",
		"model", spectrum.Model(),
		"candidate", candidate.Name,
		"mass", candidate.Mass,
		"sommerfeld", opts.Sommerfeld,
	)

	result, err := solveRelic(spectrum, candidate, opts.Sommerfeld, opts.Points)
	if err != nil {
		return WrapExitError(ExitFailure, "relic density computation failed", err)
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), relicReport{
			Model:      spectrum.Model(),
			Candidate:  candidate.Name,
			Mass:       candidate.Mass,
			Sommerfeld: opts.Sommerfeld,
			Xf:         result.Xf,
			SigmaV:     result.SigmaV,
			OmegaH2:    result.OmegaH2,
			Channels:   result.Channels,
		})
	}

	fmt.Fprint(cmd.OutOrStdout(), renderReport(spectrum, candidate, opts.Sommerfeld, result))
	return nil
}

// solveRelic builds the correction engine around the spectrum and runs the
// freeze-out with the engine registered as the cross-section callback.
func solveRelic(spectrum *model.Spectrum, candidate model.Particle, sommerfeld bool, points int) (relic.Result, error) {
	engine := xsec.New(spectrum, xsec.Config{
		Sommerfeld: sommerfeld,
		HardScale:  2.0 * candidate.Mass,
	})

	solver := relic.New(candidate, engine.Improve, relic.Options{Points: points})
	return solver.Solve()
}
