package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/hotelres/internal/wire"
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price a stay without booking it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		guests, _ := cmd.Flags().GetInt("guests")
		days, _ := cmd.Flags().GetInt("days")
		breakfast, _ := cmd.Flags().GetBool("breakfast")

		_, err := wire.ReservationAdapterWithOutput(cmd.OutOrStdout()).Quote(commandContext(cmd), guests, days, breakfast)
		return err
	},
}

func init() {
	quoteCmd.Flags().IntP("guests", "n", 1, "number of guests")
	quoteCmd.Flags().IntP("days", "d", 0, "length of stay in days")
	quoteCmd.Flags().BoolP("breakfast", "b", false, "include breakfast")
	_ = quoteCmd.MarkFlagRequired("days")
}
