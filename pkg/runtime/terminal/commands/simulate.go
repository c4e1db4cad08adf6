package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/drors3/NaturalSignals-WireScope/pkg/adapters"
	"github.com/drors3/NaturalSignals-WireScope/pkg/models/domain"
	"github.com/drors3/NaturalSignals-WireScope/pkg/services/simulator"
	"github.com/spf13/cobra"
)

type SimulateCmd struct {
	system         string
	nominalVoltage float64
	maxCurrent     float64
	scenario       string
	count          int
	seed           int64
	output         io.Writer
}

// NewSimulateCmd prints generated measurements as JSON lines, one per row.
func NewSimulateCmd(output io.Writer) *cobra.Command {
	sc := &SimulateCmd{output: output}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Generate synthetic sensor measurements",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.system, "system", "three-phase", "System type (single-phase, three-phase, dc)")
	cmd.Flags().Float64Var(&sc.nominalVoltage, "nominal-voltage", 400, "Nominal system voltage")
	cmd.Flags().Float64Var(&sc.maxCurrent, "max-current", 100, "Rated maximum phase current in amperes")
	cmd.Flags().StringVar(&sc.scenario, "scenario", "none", "Fault scenario to inject")
	cmd.Flags().IntVar(&sc.count, "count", 10, "Number of measurements to generate")
	cmd.Flags().Int64Var(&sc.seed, "seed", 0, "Random seed (0 uses the clock)")

	return cmd
}

func (sc *SimulateCmd) run(cmd *cobra.Command, _ []string) error {
	systemType := domain.SystemType(sc.system)
	if !systemType.Valid() {
		return fmt.Errorf("invalid system type: %q", sc.system)
	}
	scenario, err := simulator.ParseScenario(sc.scenario)
	if err != nil {
		return err
	}

	session := simulator.NewSession("cli", simulator.Config{
		SystemType:     systemType,
		NominalVoltage: sc.nominalVoltage,
		MaxCurrent:     sc.maxCurrent,
		Scenario:       scenario,
		Seed:           sc.seed,
	})

	encoder := json.NewEncoder(sc.output)
	for i := 0; i < sc.count; i++ {
		m, err := session.Next()
		if err != nil {
			return fmt.Errorf("failed to generate measurement: %w", err)
		}
		if err := encoder.Encode(adapters.MapMeasurementDomainToApi(m)); err != nil {
			return fmt.Errorf("failed to encode measurement: %w", err)
		}
	}
	return nil
}
