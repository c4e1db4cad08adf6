package commands

import (
	"fmt"

	"github.com/drors3/NaturalSignals-WireScope/pkg/models/domain"
	"github.com/drors3/NaturalSignals-WireScope/pkg/runtime/terminal/export"
	"github.com/drors3/NaturalSignals-WireScope/pkg/services/diagnostics"
	"github.com/drors3/NaturalSignals-WireScope/pkg/services/simulator"
	"github.com/spf13/cobra"
)

type DiagnoseCmd struct {
	system         string
	nominalVoltage float64
	maxCurrent     float64
	scenario       string
	samples        int
	seed           int64
	reporter       *export.Reporter
}

// NewDiagnoseCmd runs the evaluator against a synthetic measurement history
// and prints the report.
func NewDiagnoseCmd(reporter *export.Reporter) *cobra.Command {
	dc := &DiagnoseCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "diagnose",
		Short: "Generate synthetic measurements and run a diagnosis",
		RunE:  dc.run,
	}

	cmd.Flags().StringVar(&dc.system, "system", "three-phase", "System type (single-phase, three-phase, dc)")
	cmd.Flags().Float64Var(&dc.nominalVoltage, "nominal-voltage", 400, "Nominal system voltage")
	cmd.Flags().Float64Var(&dc.maxCurrent, "max-current", 100, "Rated maximum phase current in amperes")
	cmd.Flags().StringVar(&dc.scenario, "scenario", "none", "Fault scenario to inject")
	cmd.Flags().IntVar(&dc.samples, "samples", 8, "Number of measurements to generate")
	cmd.Flags().Int64Var(&dc.seed, "seed", 0, "Random seed (0 uses the clock)")

	return cmd
}

func (dc *DiagnoseCmd) run(cmd *cobra.Command, _ []string) error {
	systemType := domain.SystemType(dc.system)
	if !systemType.Valid() {
		return fmt.Errorf("invalid system type: %q", dc.system)
	}
	scenario, err := simulator.ParseScenario(dc.scenario)
	if err != nil {
		return err
	}

	project := domain.Project{
		ID:             "cli",
		Name:           "cli session",
		SystemType:     systemType,
		NominalVoltage: dc.nominalVoltage,
		MaxCurrent:     dc.maxCurrent,
		Status:         domain.ProjectActive,
	}

	session := simulator.NewSession(project.ID, simulator.Config{
		SystemType:     systemType,
		NominalVoltage: dc.nominalVoltage,
		MaxCurrent:     dc.maxCurrent,
		Scenario:       scenario,
		Seed:           dc.seed,
	})

	history := make([]domain.Measurement, 0, dc.samples)
	for i := 0; i < dc.samples; i++ {
		m, err := session.Next()
		if err != nil {
			return fmt.Errorf("failed to generate measurement: %w", err)
		}
		history = append(history, m)
	}

	evaluator := diagnostics.NewEvaluator(diagnostics.DefaultConfig())
	diagnosis := evaluator.Evaluate(project, history)

	return dc.reporter.Handle(project, diagnosis)
}
