package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/courier-org/courier-cli/internal/cli/commands"
	"github.com/courier-org/courier-cli/internal/cli/config"
	"github.com/courier-org/courier-cli/internal/cli/update"
	"github.com/courier-org/courier-cli/internal/logger"
)

var version = "dev" // Will be set during build

var rootCmd = &cobra.Command{
	Use:   "courier",
	Short: "Courier - Track and manage shipments from the terminal",
	Long: `Courier CLI - Book shipments, follow deliveries and run the courier
network without leaving your terminal.

Credentials are kept in the OS keyring; tracking histories are cached
locally so 'courier track --offline' works without a connection.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if cfg, err := config.Load(); err == nil {
			logger.Init(cfg.ResolveLogLevel(), cfg.ResolveLogFormat())
		}

		// Skip update check for the version command
		if cmd.Name() == "version" {
			return
		}

		update.PrintUpdateNotification(version)
	},
}

func init() {
	// Add version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("courier version %s\n", version)
		},
	})

	// Add all subcommands
	rootCmd.AddCommand(commands.NewLoginCmd())
	rootCmd.AddCommand(commands.NewLogoutCmd())
	rootCmd.AddCommand(commands.NewRegisterCmd())
	rootCmd.AddCommand(commands.NewWhoamiCmd())
	rootCmd.AddCommand(commands.NewTrackCmd())
	rootCmd.AddCommand(commands.NewPackagesCmd())
	rootCmd.AddCommand(commands.NewTrackingCmd())
	rootCmd.AddCommand(commands.NewHubsCmd())
	rootCmd.AddCommand(commands.NewAdminCmd())
	rootCmd.AddCommand(commands.NewProfileCmd())
	rootCmd.AddCommand(commands.NewNotificationsCmd())
	rootCmd.AddCommand(commands.NewEnvCmd())
	rootCmd.AddCommand(commands.NewDashCmd())
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
