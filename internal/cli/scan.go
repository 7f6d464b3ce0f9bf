package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"colorelic/internal/model"
	"colorelic/internal/relic"
	"colorelic/internal/store"
)

// ScanOptions holds flags for the scan command.
type ScanOptions struct {
	*RootOptions
	DBPath     string
	Sommerfeld bool
	Points     int
	MinMass    float64
	MaxMass    float64
	Steps      int
}

// scanReport is the JSON payload of a mass scan.
type scanReport struct {
	Model  string          `json:"model"`
	Steps  int             `json:"steps"`
	Failed int             `json:"failed"`
	Points []scanPointView `json:"points"`
}

type scanPointView struct {
	RunID   string  `json:"run_id"`
	Mass    float64 `json:"mass"`
	Xf      float64 `json:"xf"`
	OmegaH2 float64 `json:"omega_h2"`
}

// NewScanCommand creates the scan command.
func NewScanCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ScanOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "scan <model.yaml>",
		Short: "Scan the candidate mass and record relic densities",
		Long: `Solve the relic density across a range of candidate masses.

Every point replaces the candidate mass in the model, solves the freeze-out
and records the result in a SQLite database. Points whose freeze-out does
not converge are logged and skipped.

Example:
  colorelic scan model.yaml --db scan.db --min 500 --max 3000 --steps 26`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DBPath, "db", "", "SQLite database for scan results (required)")
	cmd.Flags().BoolVar(&opts.Sommerfeld, "sommerfeld", false, "enable Sommerfeld enhancement")
	cmd.Flags().IntVar(&opts.Points, "points", 0, "quadrature points per thermal average (default 64)")
	cmd.Flags().Float64Var(&opts.MinMass, "min", 0, "lowest candidate mass in GeV")
	cmd.Flags().Float64Var(&opts.MaxMass, "max", 0, "highest candidate mass in GeV")
	cmd.Flags().IntVar(&opts.Steps, "steps", 0, "number of scan points")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runScan(opts *ScanOptions, path string, cmd *cobra.Command) error {
	if opts.Steps < 2 {
		return NewExitError(ExitCommandError, "scan needs --steps of at least 2")
	}
	if opts.MinMass <= 0 || opts.MaxMass <= opts.MinMass {
		return NewExitError(ExitCommandError, "scan needs 0 < --min < --max")
	}

	spectrum, err := model.Load(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load model", err)
	}

	candidate, err := spectrum.Candidate()
	if err != nil {
		return WrapExitError(ExitFailure, "cannot identify dark matter candidate", err)
	}

	db, err := store.Open(opts.DBPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open scan database", err)
	}
	defer db.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	report := scanReport{Model: spectrum.Model(), Steps: opts.Steps}
	stride := (opts.MaxMass - opts.MinMass) / float64(opts.Steps-1)

	for i := 0; i < opts.Steps; i++ {
		mass := opts.MinMass + float64(i)*stride

		point, err := scanPoint(spectrum, candidate, mass, opts.Sommerfeld, opts.Points)
		if err != nil {
			// A diverging point is data about the scan range, not a
			// reason to abandon the remaining points.
			slog.Warn("scan point failed", "mass", mass, "error", err)
			report.Failed++
			continue
		}

		run := store.Run{
			ID:         store.NewRunID(),
			Model:      spectrum.Model(),
			Candidate:  candidate.Name,
			Mass:       mass,
			Sommerfeld: opts.Sommerfeld,
			Result:     point,
		}
		if err := db.WriteRun(ctx, run); err != nil {
			return WrapExitError(ExitCommandError, "failed to record scan point", err)
		}

		slog.Info("scan point recorded", "mass", mass, "xf", point.Xf, "omega_h2", point.OmegaH2)
		report.Points = append(report.Points, scanPointView{
			RunID:   run.ID,
			Mass:    mass,
			Xf:      point.Xf,
			OmegaH2: point.OmegaH2,
		})
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), report)
	}
	return renderScan(cmd.OutOrStdout(), report)
}

// scanPoint rebuilds the spectrum with the candidate pinned to the given mass
// and solves the freeze-out for it.
func scanPoint(base *model.Spectrum, candidate model.Particle, mass float64, sommerfeld bool, points int) (relic.Result, error) {
	particles := base.Particles()
	for i := range particles {
		if particles[i].PDG == candidate.PDG {
			particles[i].Mass = mass
		}
	}

	spectrum, err := model.NewSpectrum(particles)
	if err != nil {
		return relic.Result{}, err
	}

	shifted := candidate
	shifted.Mass = mass
	return solveRelic(spectrum, shifted, sommerfeld, points)
}
