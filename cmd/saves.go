package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/peetj/lcd-character-creator/internal/glyph"
	"github.com/peetj/lcd-character-creator/internal/record"
)

var saveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the working character under a name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		sv := record.NewSaved(args[0], st.Current())
		if err := st.Add(sv); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "saved %q as %s\n", sv.Name, sv.ID)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved characters",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		saves, err := st.Load()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tTOKEN\tUPDATED")
		for _, sv := range saves {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				sv.ID, sv.Name, glyph.EncodeToken(sv.Rows), sv.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a saved character",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()
		return st.Rename(args[0], args[1])
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()
		return st.Delete(args[0])
	},
}

var openCmd = &cobra.Command{
	Use:   "open <id>",
	Short: "Make a saved character the working character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		sv, err := st.Get(args[0])
		if err != nil {
			return err
		}
		if sv == nil {
			return fmt.Errorf("No saved character with id %s", args[0])
		}
		return st.SetCurrent(sv.Character())
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(openCmd)
}
