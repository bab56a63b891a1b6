package cmd

import (
	"fmt"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/peetj/lcd-character-creator/internal/share"
)

var shareBase string

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Print a share link for the working character",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		link := share.Link(shareBase, st.Current())
		fmt.Fprintln(cmd.OutOrStdout(), link)

		// Best effort; a denied clipboard is not our failure.
		if err := clipboard.WriteAll(link); err != nil {
			slog.Warn("Couldn't copy link to clipboard", "err", err)
		}
		return nil
	},
}

var loadCmd = &cobra.Command{
	Use:   "load <link-or-query>",
	Short: "Load a character from a share link or query string",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		c := share.Apply(share.Parse(args[0]), st.Current())
		if err := st.SetCurrent(c); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "loaded %s\n", share.Values(c).Encode())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(loadCmd)
	shareCmd.Flags().StringVar(&shareBase, "base", "https://lcdchar.app/", "Base URL for the share link")
}
