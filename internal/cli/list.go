package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the routing rules of the selected zone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			zone, err := svc.SelectZone(cmd.Context())
			if err != nil {
				return err
			}

			rules, err := svc.ListRules(cmd.Context(), zone)
			if err != nil {
				return err
			}

			if len(rules) == 0 {
				fmt.Println("No rules found.")
				return nil
			}

			fmt.Println("Rules:")
			for _, rule := range rules {
				fmt.Printf("  - %s\n", rule)
			}
			return nil
		},
	}
}
