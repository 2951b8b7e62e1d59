package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print records",
}

var printTasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Print every task with urgency coloring",
	Long: `Load every .cstf record beneath ~/.constellations and print
it: title in blue, priority colored by band (0-2 cyan, 3-6 green, 7-9
yellow, 10+ red), due date colored by how soon it falls (within a day
red, a week yellow, two weeks green, later cyan), then the notes.

If any record fails to decode, nothing is printed.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPrintTasks(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	printCmd.AddCommand(printTasksCmd)
	rootCmd.AddCommand(printCmd)
}

func runPrintTasks() error {
	s, err := openStore()
	if err != nil {
		return err
	}

	tasks, err := s.ListTasks(context.Background())
	if err != nil {
		return err
	}

	now := today()
	for _, t := range tasks {
		renderTask(os.Stdout, t, now)
	}
	return nil
}
