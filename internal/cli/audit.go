package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/hotelres/internal/wire"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show the reservation ledger",
	Long: `Show recent ledger entries: successful adds and cancels, and rejected adds.
The ledger lives as long as the configured audit.dsn; the default is in memory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		summary, _ := cmd.Flags().GetBool("summary")

		adapter := wire.ReservationAdapterWithOutput(cmd.OutOrStdout())
		if summary {
			_, err := adapter.Summary(commandContext(cmd))
			return err
		}
		_, err := adapter.History(commandContext(cmd), limit)
		return err
	},
}

func init() {
	auditCmd.Flags().IntP("limit", "l", 20, "number of most recent entries to show (0 for all)")
	auditCmd.Flags().BoolP("summary", "s", false, "show entry counts per action instead of entries")
}
