package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newZonesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "zones",
		Short: "List all zones visible to the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			zones, err := svc.ListZones(cmd.Context())
			if err != nil {
				return err
			}

			if len(zones) == 0 {
				fmt.Println("No zones found.")
				return nil
			}

			fmt.Println("Zones:")
			for _, zone := range zones {
				fmt.Printf("  - %s\n", zone)
			}
			return nil
		},
	}
}
