package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"email-routing-cli/internal/model"
	"email-routing-cli/internal/service"
)

func newCreateCmd() *cobra.Command {
	var name string
	var priority uint

	createCmd := &cobra.Command{
		Use:   "create [matcher] [action]",
		Short: "Create a routing rule, filling in anything left out",
		Long: `Creates a routing rule. The matcher is "*" for catch-all, a full
address, or a bare local part completed with the zone's domain; when
omitted a random address is generated. The action is "drop" or a
destination address to forward to; when omitted the rule forwards to
the account's last destination address.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			zone, err := svc.SelectZone(cmd.Context())
			if err != nil {
				return err
			}

			params := service.CreateParams{Name: name}
			if len(args) > 0 {
				matcher := model.ParseMatcher(args[0])
				params.Matcher = &matcher
			}
			if len(args) > 1 {
				action := model.ParseAction(args[1])
				params.Action = &action
			}
			if cmd.Flags().Changed("priority") {
				p := priority
				params.Priority = &p
			}

			rule, err := svc.CreateRule(cmd.Context(), zone, params)
			if err != nil {
				return err
			}

			fmt.Printf("Rule created: %s\n", rule)
			return nil
		},
	}

	createCmd.Flags().StringVar(&name, "name", "", "rule name")
	createCmd.Flags().UintVar(&priority, "priority", 0, "rule priority (higher sorts first)")

	return createCmd
}
