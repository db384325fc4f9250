package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var wsCmd = &cobra.Command{
	Use:   "ws",
	Short: "Manage workspaces",
}

var wsListCmd = &cobra.Command{
	Use:   "list <org-id>",
	Short: "List the workspaces of an organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		workspaces, err := client.Workspaces(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSLUG\tDESCRIPTION")
		for _, ws := range workspaces {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", ws.ID, ws.Name, ws.Slug, ws.Description)
		}

		return w.Flush()
	},
}

var wsCreateCmd = &cobra.Command{
	Use:   "create <org-id> <name> <slug> [description]",
	Short: "Create a workspace",
	Args:  cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		description := ""
		if len(args) == 4 {
			description = args[3]
		}

		ws, err := client.CreateWorkspace(cmd.Context(), args[0], args[1], args[2], description)
		if err != nil {
			return err
		}

		fmt.Println("created", ws.ID)

		return nil
	},
}

var wsRmCmd = &cobra.Command{
	Use:   "rm <workspace-id>",
	Short: "Delete a workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.DeleteWorkspace(cmd.Context(), args[0]); err != nil {
			return err
		}

		fmt.Println("deleted", args[0])

		return nil
	},
}

func init() {
	wsCmd.AddCommand(wsListCmd, wsCreateCmd, wsRmCmd)
}
