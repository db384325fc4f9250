package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <login> <password>",
	Short: "Open a session and print the token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		token, err := client.Login(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Println(token)
		fmt.Fprintln(cmd.ErrOrStderr(), "export DOCHUB_TOKEN="+token)

		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the user that owns the current session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		me, err := client.Me(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("%s\t%s\n", me.ID, me.Login)

		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Close the current session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.Logout(cmd.Context()); err != nil {
			return err
		}

		fmt.Println("session closed")

		return nil
	},
}
