package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"email-routing-cli/internal/cloudflare"
	"email-routing-cli/internal/config"
)

func newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup <email> <api-token> <api-key>",
		Short: "Verify and store API credentials",
		Long: `Verifies the API token against the provider and stores the
credentials in the user config directory. The file is written in plain
text.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			creds := &config.Credentials{
				Email:    args[0],
				APIToken: args[1],
				APIKey:   args[2],
			}
			if err := creds.Validate(); err != nil {
				return err
			}

			client := cloudflare.NewClient(creds)

			logrus.Info("Verifying API token...")
			token, err := client.VerifyToken(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to verify token: %w", err)
			}
			if token.Status != cloudflare.TokenActive {
				return fmt.Errorf("%w: id %s, status %s", cloudflare.ErrCredentialsInvalid, token.ID, token.Status)
			}

			expiry := token.ExpiresOn
			if expiry == "" {
				expiry = "Never"
			}
			logrus.Infof("Token is valid (id: %s, status: %s, expires on: %s)", token.ID, token.Status, expiry)

			path, err := config.Save(creds)
			if err != nil {
				return err
			}

			logrus.Warn("Credentials are stored in plain text.")
			fmt.Printf("Config saved at %s\n", path)
			return nil
		},
	}
}
