package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/hotelres/internal/wire"
)

var reservationCmd = &cobra.Command{
	Use:     "reservation",
	Aliases: []string{"res"},
	Short:   "Manage reservations",
	Long:    "Add, list, show, and cancel reservations in the hotel registry",
}

var reservationAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Book guests for a stay",
	Example: `  hotelres reservation add --guest "Goku:26:176" --guest "Vegeta:24:198" --days 2 --breakfast`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		values, _ := cmd.Flags().GetStringArray("guest")
		days, _ := cmd.Flags().GetInt("days")
		breakfast, _ := cmd.Flags().GetBool("breakfast")

		guests, err := ParseGuests(values)
		if err != nil {
			return err
		}

		_, err = wire.ReservationAdapterWithOutput(cmd.OutOrStdout()).Add(commandContext(cmd), guests, days, breakfast)
		return err
	},
}

var reservationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active reservations in booking order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.ReservationAdapterWithOutput(cmd.OutOrStdout()).List(commandContext(cmd))
		return err
	},
}

var reservationIDsCmd = &cobra.Command{
	Use:   "ids",
	Short: "List issued reservation IDs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.ReservationAdapterWithOutput(cmd.OutOrStdout()).IDs(commandContext(cmd))
		return err
	},
}

var reservationShowCmd = &cobra.Command{
	Use:   "show [reservation-id]",
	Short: "Show reservation details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.ReservationAdapterWithOutput(cmd.OutOrStdout()).Show(commandContext(cmd), args[0])
		return err
	},
}

var reservationCancelCmd = &cobra.Command{
	Use:   "cancel [reservation-id]",
	Short: "Cancel a reservation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.ReservationAdapterWithOutput(cmd.OutOrStdout()).Cancel(commandContext(cmd), args[0])
	},
}

func init() {
	reservationAddCmd.Flags().StringArrayP("guest", "g", nil, "guest as name:age:height (repeatable)")
	reservationAddCmd.Flags().IntP("days", "d", 0, "length of stay in days")
	reservationAddCmd.Flags().BoolP("breakfast", "b", false, "include breakfast")
	_ = reservationAddCmd.MarkFlagRequired("guest")
	_ = reservationAddCmd.MarkFlagRequired("days")

	reservationCmd.AddCommand(reservationAddCmd)
	reservationCmd.AddCommand(reservationListCmd)
	reservationCmd.AddCommand(reservationIDsCmd)
	reservationCmd.AddCommand(reservationShowCmd)
	reservationCmd.AddCommand(reservationCancelCmd)
}

// ReservationCmd returns the reservation command
func ReservationCmd() *cobra.Command {
	return reservationCmd
}
