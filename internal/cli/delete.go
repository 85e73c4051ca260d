package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"email-routing-cli/internal/service"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <identifier>",
		Short: "Delete a rule matched by ID or address fragment",
		Long: `Deletes the rule whose ID or matched address contains the given
fragment (case-insensitive). When several rules match, nothing is
deleted and the candidates are listed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			zone, err := svc.SelectZone(cmd.Context())
			if err != nil {
				return err
			}

			outcome, err := svc.DeleteRule(cmd.Context(), zone, args[0])
			if err != nil {
				return err
			}

			switch outcome.Kind {
			case service.DeleteNotFound:
				fmt.Printf("No rules found with identifier %s.\n", outcome.Fragment)
				fmt.Println("Available rules:")
				for _, rule := range outcome.Candidates {
					fmt.Printf("  - %s\n", rule)
				}
			case service.DeleteAmbiguous:
				fmt.Printf("Multiple rules found with identifier %s:\n", outcome.Fragment)
				for _, rule := range outcome.Candidates {
					fmt.Printf("  - %s\n", rule)
				}
				fmt.Println("Please specify a unique identifier.")
			default:
				fmt.Println("Rule deleted successfully.")
			}
			return nil
		},
	}
}
