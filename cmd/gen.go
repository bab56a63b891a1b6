package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/peetj/lcd-character-creator/internal/firmware"
	"github.com/peetj/lcd-character-creator/internal/glyph"
)

var (
	genInterfacing string
	genDatatype    string
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate Arduino firmware for the working character",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		c := st.Current()
		if genInterfacing != "" {
			c.Interfacing = glyph.ParseInterfacing(genInterfacing)
		}
		if genDatatype != "" {
			c.Datatype = glyph.ParseDatatype(genDatatype)
		}

		fmt.Fprintln(cmd.OutOrStdout(), firmware.Generate(c.Rows, c.Interfacing, c.Datatype))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(genCmd)
	genCmd.Flags().StringVar(&genInterfacing, "interfacing", "", "Wiring mode: parallel or i2c")
	genCmd.Flags().StringVar(&genDatatype, "datatype", "", "Literal style: bin or hex")
}
