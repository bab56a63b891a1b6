package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/peetj/lcd-character-creator/internal/glyph"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Print the working character's share token",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		fmt.Fprintln(cmd.OutOrStdout(), glyph.EncodeToken(st.Current().Rows))
		return nil
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode <token>",
	Short: "Decode a share token into row values",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, ok := glyph.DecodeToken(args[0])
		if !ok {
			return fmt.Errorf("%q is not a valid share token", args[0])
		}
		for _, v := range rows {
			fmt.Fprintf(cmd.OutOrStdout(), "B%05b  0x%02X  %d\n", v, v, v)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
}
