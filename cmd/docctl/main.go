// docctl is a command line client for a dochub server. The server
// address and session token come from flags or the DOCHUB_ADDR and
// DOCHUB_TOKEN environment variables.
package main

import (
	"context"
	"fmt"
	"os"

	"dochub/pkg/apiclient"
	"dochub/pkg/tips"

	"github.com/spf13/cobra"
)

var (
	flagAddr   string
	flagToken  string
	flagNoTips bool
)

var rootCmd = &cobra.Command{
	Use:           "docctl",
	Short:         "Manage dochub organizations, workspaces and documents",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&flagAddr, "addr", "", "server address, e.g. http://localhost:8080 (env DOCHUB_ADDR)")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "session token (env DOCHUB_TOKEN)")
	rootCmd.PersistentFlags().BoolVar(&flagNoTips, "no-tips", false, "suppress first-time tips")

	rootCmd.AddCommand(loginCmd, whoamiCmd, logoutCmd, orgsCmd, wsCmd, docsCmd, permsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newClient() (*apiclient.Client, error) {
	addr := flagAddr
	if addr == "" {
		addr = os.Getenv("DOCHUB_ADDR")
	}
	if addr == "" {
		return nil, fmt.Errorf("server address is not set, use --addr or DOCHUB_ADDR")
	}

	token := flagToken
	if token == "" {
		token = os.Getenv("DOCHUB_TOKEN")
	}

	return apiclient.New(addr, apiclient.WithToken(token)), nil
}

// showTip prints a first-time hint once and records it as seen.
// Failures here never fail the command.
func showTip(ctx context.Context, client *apiclient.Client, tip tips.Tip) {
	if flagNoTips || client.Token() == "" {
		return
	}

	queue, err := tips.NewQueue(ctx, client)
	if err != nil {
		return
	}

	if !queue.Enqueue(tip) {
		return
	}

	pending, ok := queue.Pending()
	if !ok {
		return
	}

	fmt.Printf("\nTip: %s\n%s\n", pending.Title, pending.Body)

	_ = queue.Dismiss(ctx)
}
