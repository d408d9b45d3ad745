package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/hotelres/internal/scenario"
	"github.com/example/hotelres/internal/wire"
)

var runCmd = &cobra.Command{
	Use:   "run [scenario.yaml]",
	Short: "Replay a reservation scenario file",
	Long: `Replay a YAML scenario against the registry. Steps add, cancel, list or
assert on state; the run stops at the first unmet expectation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := scenario.LoadFile(args[0])
		if err != nil {
			return err
		}
		return runScenario(cmd, sc)
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in walkthrough scenario",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := scenario.Demo()
		if err != nil {
			return err
		}
		return runScenario(cmd, sc)
	},
}

func runScenario(cmd *cobra.Command, sc *scenario.Scenario) error {
	runner := scenario.NewRunner(wire.ReservationService(), cmd.OutOrStdout(), wire.Logger())
	_, err := runner.Run(commandContext(cmd), sc)
	return err
}
