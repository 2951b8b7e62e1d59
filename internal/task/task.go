package task

import (
	"fmt"
	"strings"
	"time"
)

// Task represents a single tracked task
type Task struct {
	Title    string
	Priority uint8
	DueDate  time.Time // UTC calendar date, midnight
	Info     string
}

// New constructs a Task with the due date normalized to a UTC calendar date.
func New(title string, priority uint8, year int, month, day int, info string) *Task {
	return &Task{
		Title:    title,
		Priority: priority,
		DueDate:  Date(year, month, day),
		Info:     info,
	}
}

// Date builds the UTC midnight timestamp for a calendar date.
func Date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// CalendarDate is Date with validity checking. time.Date normalizes
// out-of-range components (month 13 rolls into the next year), so a
// mismatch after construction means the components do not name a real
// calendar date.
func CalendarDate(year, month, day int) (time.Time, error) {
	d := Date(year, month, day)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, fmt.Errorf("invalid calendar date %d/%d/%d", year, month, day)
	}
	return d, nil
}

// Validate checks that the task can survive a round trip through the
// record format and that its slug stays inside the store directory.
// The format delimits title and info with bare quotes and has no
// escaping, so embedded quotes would corrupt the record; slugs keep
// every title character except spaces, so path separators would let a
// record escape the store.
func (t *Task) Validate() error {
	if len(t.Title) == 0 {
		return fmt.Errorf("title is required")
	}
	if strings.ContainsRune(t.Title, '"') {
		return fmt.Errorf("title must not contain %q", '"')
	}
	if strings.ContainsAny(t.Title, `/\`) {
		return fmt.Errorf("title must not contain path separators")
	}
	if strings.ContainsRune(t.Info, '"') {
		return fmt.Errorf("info must not contain %q", '"')
	}
	return nil
}

// Slug derives the filesystem-safe identifier for the task: lowercase,
// spaces replaced with underscores.
func (t *Task) Slug() string {
	return strings.ToLower(strings.ReplaceAll(t.Title, " ", "_"))
}

// Filename returns the record file name for the task.
func (t *Task) Filename() string {
	return t.Slug() + ".cstf"
}
