package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/constell/cst/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the store directory",
	Long: `Create ~/.constellations, the directory that holds every
task record. The other commands never create it themselves; a missing
store directory is an error.

Example:
  $ cst init
  ✓ Created /home/you/.constellations`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runInit(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.StoreDir, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	green := color.New(color.FgGreen).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	fmt.Printf("%s Created %s\n", green("✓"), cfg.StoreDir)
	fmt.Printf("%s Next steps:\n", gray("→"))
	fmt.Printf("  %s\n", gray("cst new task"))
	fmt.Printf("  %s\n", gray("cst print tasks"))
	return nil
}
