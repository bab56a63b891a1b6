package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/peetj/lcd-character-creator/internal/cli"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the working character interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		editor := cli.NewEditor(st.Current())
		m, err := tea.NewProgram(editor).Run()
		if err != nil {
			return err
		}
		return st.SetCurrent(m.(*cli.Editor).Character())
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
