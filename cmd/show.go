package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/peetj/lcd-character-creator/internal/cli"
	"github.com/peetj/lcd-character-creator/internal/glyph"
)

var showCmd = &cobra.Command{
	Use:   "show [token]",
	Short: "Display the working character, or a share token",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		c := st.Current()
		if len(args) == 1 {
			rows, ok := glyph.DecodeToken(args[0])
			if !ok {
				return fmt.Errorf("%q is not a valid share token", args[0])
			}
			c.Rows = rows
		}

		fmt.Fprintln(cmd.OutOrStdout(), cli.RenderMatrix(c))
		fmt.Fprintf(cmd.OutOrStdout(), "token %s\n", glyph.EncodeToken(c.Rows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
