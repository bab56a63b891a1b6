package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/peetj/lcd-character-creator/internal/record"
)

var (
	exportAll bool
	exportOut string
)

var exportCmd = &cobra.Command{
	Use:   "export [id]",
	Short: "Export the working character, a saved one, or the whole list",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		var data []byte
		switch {
		case exportAll:
			saves, err := st.Load()
			if err != nil {
				return err
			}
			if data, err = record.MarshalList(saves); err != nil {
				return err
			}
		case len(args) == 1:
			sv, err := st.Get(args[0])
			if err != nil {
				return err
			}
			if sv == nil {
				return fmt.Errorf("No saved character with id %s", args[0])
			}
			if data, err = record.MarshalSingle(sv.Character()); err != nil {
				return err
			}
		default:
			if data, err = record.MarshalSingle(st.Current()); err != nil {
				return err
			}
		}

		if exportOut == "" {
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}
		return os.WriteFile(exportOut, data, 0o644)
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import an exported character or list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		res, err := record.Import(data)
		if err != nil {
			return err
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if res.Character != nil {
			if err := st.SetCurrent(*res.Character); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "imported 1 character")
			return nil
		}
		if err := st.Merge(res.Saves); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d saved character(s)\n", len(res.Saves))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "Export the full saved list")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Write to a file instead of stdout")
}
