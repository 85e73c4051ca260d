// Package cli wires the cobra command tree for the email routing
// client.
package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"email-routing-cli/internal/cloudflare"
	"email-routing-cli/internal/config"
	"email-routing-cli/internal/service"
)

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "email-routing-cli",
		Short: "Manage email forwarding rules on your DNS zone",
		Long: `A client for the email routing API: list zones and rules,
create forwarding rules, and delete rules by fuzzy identifier.
Run the setup command once to store API credentials.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newSetupCmd(),
		newListCmd(),
		newAddressesCmd(),
		newZonesCmd(),
		newCreateCmd(),
		newDeleteCmd(),
	)

	return rootCmd
}

// newService loads the stored credentials and builds the resolution
// engine on top of a fresh API client.
func newService() (*service.Service, error) {
	creds, err := config.Load()
	if err != nil {
		return nil, err
	}

	client := cloudflare.NewClient(creds)
	return service.New(client), nil
}
