package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/constell/cst/internal/config"
	"github.com/constell/cst/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "cst",
	Short: "Organize the constellations of your mind",
	Long: `cst is a personal task tracker. Each task lives in its own
.cstf record file under ~/.constellations.

Example:
  cst init         # create the store directory
  cst new task     # create a task through interactive prompts
  cst print tasks  # list every task with urgency coloring`,
}

func main() {
	// Cobra reports usage errors itself; command failures are printed
	// by each Run before exiting.
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openStore resolves the store directory and returns the file store
// rooted there. The directory is not created here; see `cst init`.
func openStore() (*store.FileStore, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return store.New(cfg.StoreDir), nil
}
