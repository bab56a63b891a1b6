// Package cmd wires the command line surface. Each command loads the
// working character from the store, runs one core operation, and
// persists the result.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/peetj/lcd-character-creator/internal/store"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "lcdchar",
	Short: "Design 5x8 LCD custom characters",
	Long: `Design HD44780-style 5x8 custom characters: edit interactively,
share as compact tokens or links, keep a library of named saves, and
generate Arduino firmware for parallel or I2C wiring.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDBPath(), "Path to the character database")
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "lcdchar.db"
	}
	return filepath.Join(dir, "lcdchar", "lcdchar.db")
}

func openStore() (*store.Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("Couldn't create database directory:\n%w", err)
		}
	}
	return store.Open(dbPath)
}
