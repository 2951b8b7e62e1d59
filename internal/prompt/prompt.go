// Package prompt collects interactive task input, one question at a
// time, over a readline session.
package prompt

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/constell/cst/internal/task"
)

// Prompter asks questions on stdout and reads answers with readline.
type Prompter struct {
	rl *readline.Instance

	// readLine is swappable so prompt logic is testable without a TTY.
	readLine func() (string, error)
}

// New creates a Prompter with the ">> " answer prompt.
func New() (*Prompter, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Prompter{rl: rl, readLine: rl.Readline}, nil
}

// Close releases the readline session.
func (p *Prompter) Close() error {
	if p.rl != nil {
		return p.rl.Close()
	}
	return nil
}

// Line asks a question and reads one completed line. Interrupt and
// EOF are failures here: only the free-form notes field may end early.
func (p *Prompter) Line(question string) (string, error) {
	fmt.Println(question)
	line, err := p.readLine()
	if err != nil {
		if err == readline.ErrInterrupt || err == io.EOF {
			return "", fmt.Errorf("input aborted")
		}
		return "", err
	}
	return line, nil
}

// Priority asks for a priority and parses it as an integer 0-255.
func (p *Prompter) Priority(question string) (uint8, error) {
	line, err := p.Line(question)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(strings.TrimSpace(line), 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid priority %q: expected an integer 0-255", strings.TrimSpace(line))
	}
	return uint8(v), nil
}

// Date asks for a due date in yyyy-mm-dd form, split on '-' into
// exactly three integer components forming a real calendar date.
func (p *Prompter) Date(question string) (time.Time, error) {
	line, err := p.Line(question)
	if err != nil {
		return time.Time{}, err
	}

	parts := strings.Split(strings.TrimSpace(line), "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date %q: expected yyyy-mm-dd", line)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid year %q", parts[0])
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q", parts[1])
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q", parts[2])
	}

	return task.CalendarDate(year, month, day)
}

// Notes asks for free-form notes and reads lines until the user sends
// an interrupt (Ctrl-C) or end-of-input (Ctrl-D). Early exit stops
// collection and keeps whatever was gathered; it is not an error.
func (p *Prompter) Notes(question string) (string, error) {
	fmt.Println(question)

	var b strings.Builder
	for {
		line, err := p.readLine()
		if err != nil {
			if err == readline.ErrInterrupt || err == io.EOF {
				break
			}
			return "", err
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return strings.TrimSpace(b.String()), nil
}
