package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"dochub/pkg/apiclient"

	"github.com/spf13/cobra"
)

var orgsCmd = &cobra.Command{
	Use:   "orgs",
	Short: "Manage organizations",
}

var orgsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your organizations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		orgs, err := client.Orgs(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSLUG")
		for _, org := range orgs {
			fmt.Fprintf(w, "%s\t%s\t%s\n", org.ID, org.Name, org.Slug)
		}

		return w.Flush()
	},
}

var orgsGetCmd = &cobra.Command{
	Use:   "get <org-id>",
	Short: "Show one organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		org, err := client.Org(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		printOrg(org)

		return nil
	},
}

var orgsCreateCmd = &cobra.Command{
	Use:   "create <name> <slug>",
	Short: "Create an organization",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		org, err := client.CreateOrg(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		printOrg(org)

		return nil
	},
}

var orgsRmCmd = &cobra.Command{
	Use:   "rm <org-id>",
	Short: "Delete an organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.DeleteOrg(cmd.Context(), args[0]); err != nil {
			return err
		}

		fmt.Println("deleted", args[0])

		return nil
	},
}

func printOrg(org *apiclient.Organization) {
	fmt.Println("ID:     ", org.ID)
	fmt.Println("Name:   ", org.Name)
	fmt.Println("Slug:   ", org.Slug)
	fmt.Println("Owner:  ", org.OwnerID)
	fmt.Println("Created:", org.CreatedAt.Format("2006-01-02 15:04:05"))
}

func init() {
	orgsCmd.AddCommand(orgsListCmd, orgsGetCmd, orgsCreateCmd, orgsRmCmd)
}
