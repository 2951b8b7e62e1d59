package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/constell/cst/internal/task"
)

// today returns the current UTC calendar date at midnight.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// daysUntil counts whole days from today to the due date. Negative
// for overdue tasks.
func daysUntil(due, today time.Time) int {
	return int(due.Sub(today) / (24 * time.Hour))
}

// priorityColor bands a priority value: 0-2 cyan, 3-6 green, 7-9
// yellow, 10 and above red.
func priorityColor(p uint8) *color.Color {
	switch {
	case p <= 2:
		return color.New(color.FgCyan)
	case p <= 6:
		return color.New(color.FgGreen)
	case p <= 9:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

// dueColor bands a due date by days until due: within a day (or past)
// red, within a week yellow, within two weeks green, later cyan.
func dueColor(days int) *color.Color {
	switch {
	case days <= 1:
		return color.New(color.FgRed)
	case days <= 7:
		return color.New(color.FgYellow)
	case days <= 14:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgCyan)
	}
}

// renderTask writes one task to w: blue title, white field labels,
// banded priority and due date values, then the notes.
func renderTask(w io.Writer, t *task.Task, today time.Time) {
	blue := color.New(color.FgBlue).SprintFunc()
	white := color.New(color.FgWhite).SprintFunc()

	fmt.Fprintln(w, blue(t.Title))
	fmt.Fprintf(w, "%s%s\n", white("Priority: "), priorityColor(t.Priority).Sprint(t.Priority))

	days := daysUntil(t.DueDate, today)
	fmt.Fprintf(w, "%s%s\n", white("Due Date: "), dueColor(days).Sprint(t.DueDate.Format("2006-01-02")))

	fmt.Fprintln(w)
	fmt.Fprintln(w, t.Info)
	fmt.Fprintln(w)
}
