package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"dochub/pkg/apiclient"
	"dochub/pkg/tips"

	"github.com/spf13/cobra"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Manage documents",
}

var docsListCmd = &cobra.Command{
	Use:   "list <workspace-id>",
	Short: "List the documents of a workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		title, _ := cmd.Flags().GetString("title")
		limit, _ := cmd.Flags().GetInt("limit")

		filter := apiclient.DocFilter{Limit: limit}
		if title != "" {
			filter.Key = "title"
			filter.Value = title
		}

		docs, err := client.Documents(cmd.Context(), args[0], filter)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tPUBLIC\tVERSION")
		for _, doc := range docs {
			fmt.Fprintf(w, "%s\t%s\t%t\t%d\n", doc.ID, doc.Title, doc.IsPublic, doc.Version)
		}

		return w.Flush()
	},
}

var docsGetCmd = &cobra.Command{
	Use:   "get <doc-id>",
	Short: "Show one document's metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		doc, err := client.Document(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Println("ID:       ", doc.ID)
		fmt.Println("Title:    ", doc.Title)
		fmt.Println("Workspace:", doc.WorkspaceID)
		fmt.Println("Owner:    ", doc.OwnerID)
		fmt.Println("Public:   ", doc.IsPublic)
		fmt.Println("Version:  ", doc.Version)

		return nil
	},
}

var docsCreateCmd = &cobra.Command{
	Use:   "create <workspace-id> <title>",
	Short: "Create a document",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		public, _ := cmd.Flags().GetBool("public")

		doc, err := client.CreateDocument(cmd.Context(), args[0], args[1], public)
		if err != nil {
			return err
		}

		fmt.Println("created", doc.ID)

		showTip(cmd.Context(), client, tips.Tip{
			Key:   "tip.share-doc",
			Title: "Share your document",
			Body:  "Grant access with: docctl perms grant " + doc.ID + " <login> <role>",
		})

		return nil
	},
}

var docsRenameCmd = &cobra.Command{
	Use:   "rename <doc-id> <new-title>",
	Short: "Rename a document",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.RenameDocument(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}

		fmt.Println("renamed", args[0])

		return nil
	},
}

var docsRmCmd = &cobra.Command{
	Use:   "rm <doc-id>",
	Short: "Delete a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.DeleteDocument(cmd.Context(), args[0]); err != nil {
			return err
		}

		fmt.Println("deleted", args[0])

		return nil
	},
}

var docsSnapshotCmd = &cobra.Command{
	Use:   "snapshot <doc-id>",
	Short: "Print a document's content and version",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		snap, err := client.Snapshot(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.ErrOrStderr(), "version:", snap.Version)
		fmt.Print(snap.Content)

		return nil
	},
}

var docsApplyCmd = &cobra.Command{
	Use:   "apply <doc-id> <base-version> <ops-json>",
	Short: "Apply edit operations to a document",
	Long: `Applies a JSON array of operations against a base version, e.g.:

  docctl apply d1 3 '[{"retain":5},{"insert":"hi"}]'

A version conflict means someone edited the document first; fetch a
fresh snapshot and retry.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		var baseVersion int64
		if _, err := fmt.Sscanf(args[1], "%d", &baseVersion); err != nil {
			return fmt.Errorf("invalid base version %q", args[1])
		}

		var ops []apiclient.Op
		if err := json.Unmarshal([]byte(args[2]), &ops); err != nil {
			return fmt.Errorf("invalid ops: %w", err)
		}

		version, err := client.Apply(cmd.Context(), args[0], baseVersion, ops)
		if err != nil {
			return err
		}

		fmt.Println("version:", version)

		showTip(cmd.Context(), client, tips.Tip{
			Key:   "tip.apply-ops",
			Title: "Concurrent edits",
			Body:  "If apply fails with a conflict, refetch the snapshot to get the latest version.",
		})

		return nil
	},
}

func init() {
	docsListCmd.Flags().String("title", "", "filter by exact title")
	docsListCmd.Flags().Int("limit", 0, "maximum number of documents")
	docsCreateCmd.Flags().Bool("public", false, "make the document publicly readable")

	docsCmd.AddCommand(docsListCmd, docsGetCmd, docsCreateCmd, docsRenameCmd, docsRmCmd, docsSnapshotCmd, docsApplyCmd)
}
