package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"dochub/pkg/apiclient"

	"github.com/spf13/cobra"
)

var permsCmd = &cobra.Command{
	Use:   "perms",
	Short: "Manage document permissions",
}

var permsListCmd = &cobra.Command{
	Use:   "list <doc-id>",
	Short: "List a document's grants",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		perms, err := client.Permissions(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "LOGIN\tROLE\tUSER ID")
		for _, p := range perms {
			fmt.Fprintf(w, "%s\t%s\t%s\n", p.Login, p.Role, p.UserID)
		}

		return w.Flush()
	},
}

var permsGrantCmd = &cobra.Command{
	Use:   "grant <doc-id> <login> <role>",
	Short: "Grant a role (viewer, editor or owner) to a user",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		delta := apiclient.PermissionDelta{
			Add: []apiclient.Grant{{Login: args[1], Role: args[2]}},
		}

		if err := client.ChangePermissions(cmd.Context(), args[0], delta); err != nil {
			return err
		}

		fmt.Printf("granted %s to %s on %s\n", args[2], args[1], args[0])

		return nil
	},
}

var permsRevokeCmd = &cobra.Command{
	Use:   "revoke <doc-id> <login>",
	Short: "Revoke a user's access",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		delta := apiclient.PermissionDelta{
			Remove: []string{args[1]},
		}

		if err := client.ChangePermissions(cmd.Context(), args[0], delta); err != nil {
			return err
		}

		fmt.Printf("revoked access of %s on %s\n", args[1], args[0])

		return nil
	},
}

func init() {
	permsCmd.AddCommand(permsListCmd, permsGrantCmd, permsRevokeCmd)
}
