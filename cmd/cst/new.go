package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/constell/cst/internal/prompt"
	"github.com/constell/cst/internal/task"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new record",
}

var newTaskCmd = &cobra.Command{
	Use:   "task",
	Short: "Create a task through interactive prompts",
	Long: `Create a task by answering four prompts: title, priority,
due date, and free-form notes. Notes end with ctrl-d (or ctrl-c);
every other prompt needs a completed line.

The task is written to ~/.constellations/<slug>.cstf, overwriting any
existing task with the same slug.

Example:
  $ cst new task
  What's the task?
  >> Buy Milk
  What's the priority? (1 - 10)
  >> 7
  What's the due date? (yyyy-mm-dd)
  >> 2026-09-04
  Any notes? (ctrl-d) to finish
  >> whole, not skim`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runNewTask(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	newCmd.AddCommand(newTaskCmd)
	rootCmd.AddCommand(newCmd)
}

// runNewTask collects the four task fields, shows the task, and saves
// it. Any failure aborts the whole flow with nothing written.
func runNewTask() error {
	s, err := openStore()
	if err != nil {
		return err
	}

	p, err := prompt.New()
	if err != nil {
		return err
	}
	defer p.Close()

	title, err := p.Line("What's the task?")
	if err != nil {
		return err
	}
	priority, err := p.Priority("What's the priority? (1 - 10)")
	if err != nil {
		return err
	}
	due, err := p.Date("What's the due date? (yyyy-mm-dd)")
	if err != nil {
		return err
	}
	notes, err := p.Notes("Any notes? (ctrl-d) to finish")
	if err != nil {
		return err
	}

	t := &task.Task{
		Title:    title,
		Priority: priority,
		DueDate:  due,
		Info:     notes,
	}
	if err := t.Validate(); err != nil {
		return err
	}

	renderTask(os.Stdout, t, today())

	return s.SaveTask(context.Background(), t)
}
