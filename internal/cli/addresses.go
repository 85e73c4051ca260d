package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAddressesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "addresses",
		Short: "List the destination addresses of the selected zone's account",
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

			addrs, err := svc.ListAddresses(cmd.Context(), zone)
			if err != nil {
				return err
			}

			if len(addrs) == 0 {
				fmt.Println("No addresses found.")
				return nil
			}

			fmt.Println("Addresses:")
			for _, addr := range addrs {
				fmt.Printf("  - %s\n", addr)
			}
			return nil
		},
	}
}
