package cli

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"colorelic/internal/model"
	"colorelic/internal/pdg"
	"colorelic/internal/relic"
)

// renderReport formats the text report of a relic computation. Masses go
// through a locale-aware printer so multi-TeV spectra stay readable.
func renderReport(s *model.Spectrum, candidate model.Particle, sommerfeld bool, res relic.Result) string {
	p := message.NewPrinter(language.English)
	var b strings.Builder

	fmt.Fprintf(&b, "Model: %s\n", s.Model())
	fmt.Fprintf(&b, "Sommerfeld corrections enabled: %t\n\n", sommerfeld)

	fmt.Fprintf(&b, "Dark matter candidate is %q with spin code %d and mass %s GeV\n",
		candidate.Name, candidate.Spin, p.Sprintf("%.2f", candidate.Mass))
	if rep, ok := pdg.ClassifyRep(candidate.Color); ok {
		fmt.Fprintf(&b, "Candidate carries color representation %d\n", rep)
	}

	b.WriteString("\nParticle spectrum:\n")
	for _, part := range s.Particles() {
		fmt.Fprintf(&b, "  %-8s %9d  %s GeV\n", part.Name, part.PDG, p.Sprintf("%12.2f", part.Mass))
	}

	b.WriteString("\n==== Calculation of relic density ====\n")
	fmt.Fprintf(&b, "xf        = %.2f\n", res.Xf)
	fmt.Fprintf(&b, "<sigma v> = %.4e\n", res.SigmaV)
	fmt.Fprintf(&b, "omega h^2 = %.4e\n", res.OmegaH2)

	b.WriteString("\nChannel contributions:\n")
	for _, ch := range res.Channels {
		fmt.Fprintf(&b, "  %5.1f%%  %s\n", 100.0*ch.Share, ch.Label)
	}

	return b.String()
}

// renderScan formats the summary table of a mass scan.
func renderScan(w io.Writer, report scanReport) error {
	fmt.Fprintf(w, "Model: %s\n", report.Model)
	fmt.Fprintf(w, "Scan points: %d (%d failed)\n\n", report.Steps, report.Failed)

	fmt.Fprintf(w, "  %12s  %8s  %12s\n", "mass [GeV]", "xf", "omega h^2")
	for _, pt := range report.Points {
		fmt.Fprintf(w, "  %12.2f  %8.2f  %12.4e\n", pt.Mass, pt.Xf, pt.OmegaH2)
	}
	return nil
}
