package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/example/hotelres/internal/config"
	"github.com/example/hotelres/internal/ctxutil"
	"github.com/example/hotelres/internal/logging"
	"github.com/example/hotelres/internal/version"
	"github.com/example/hotelres/internal/wire"
)

var (
	cfgFile      string
	configLoaded bool
)

var rootCmd = &cobra.Command{
	Use:     "hotelres",
	Short:   "hotelres - reservation desk for a single hotel",
	Version: version.String(),
	Long: `hotelres books guests into a hotel, prices their stay and cancels
reservations. Reservations live in memory for the lifetime of the process;
use "hotelres shell" to keep a session open across commands.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .hotelres/config.yaml or ~/.config/hotelres/config.yaml)")
	rootCmd.PersistentFlags().String("clerk", "", "name recorded as the actor in the audit ledger")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable coloured output")

	_ = viper.BindPFlag("clerk", rootCmd.PersistentFlags().Lookup("clerk"))

	rootCmd.AddCommand(reservationCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(demoCmd)
}

// RootCmd returns the hotelres root command with every subcommand attached.
func RootCmd() *cobra.Command {
	return rootCmd
}

// loadConfig reads configuration once per process and hands it to wire.
// The shell re-enters the root command for every line; later calls only
// refresh the colour setting and refuse a new --config.
func loadConfig(cmd *cobra.Command, args []string) error {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		color.NoColor = true
	}

	if configLoaded {
		if cmd.Flags().Changed("config") {
			return fmt.Errorf("configuration is already loaded; restart hotelres to use %s", cfgFile)
		}
		return nil
	}

	cfg, err := config.Load(viper.GetViper(), cfgFile)
	if err != nil {
		return err
	}

	log, err := logging.New(os.Stderr, cfg.Log)
	if err != nil {
		return fmt.Errorf("invalid log configuration: %w", err)
	}

	wire.Configure(cfg, log)
	configLoaded = true

	log.Debug().Str("hotel", cfg.HotelName).Str("clerk", cfg.Clerk).Bool("audit", cfg.Audit.Enabled).Msg("configuration loaded")
	return nil
}

// commandContext carries the actor for one command: --clerk when given on
// this invocation, the configured clerk otherwise.
func commandContext(cmd *cobra.Command) context.Context {
	ctx := wire.Context()
	if cmd.Flags().Changed("clerk") {
		clerk, _ := cmd.Flags().GetString("clerk")
		ctx = ctxutil.WithActorID(ctx, clerk)
	}
	return ctx
}
