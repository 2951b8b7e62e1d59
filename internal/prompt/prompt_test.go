package prompt

import (
	"io"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/constell/cst/internal/task"
)

// scripted returns a Prompter that replays the given lines and then
// returns final on every further read.
func scripted(final error, lines ...string) *Prompter {
	i := 0
	return &Prompter{readLine: func() (string, error) {
		if i < len(lines) {
			line := lines[i]
			i++
			return line, nil
		}
		return "", final
	}}
}

func TestLine(t *testing.T) {
	p := scripted(io.EOF, "Buy Milk")
	got, err := p.Line("What's the task?")
	require.NoError(t, err)
	assert.Equal(t, "Buy Milk", got)
}

func TestLineAbortedByEOF(t *testing.T) {
	_, err := scripted(io.EOF).Line("What's the task?")
	assert.Error(t, err, "every field except notes needs a completed line")
}

func TestLineAbortedByInterrupt(t *testing.T) {
	_, err := scripted(readline.ErrInterrupt).Line("What's the task?")
	assert.Error(t, err)
}

func TestPriority(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		want    uint8
		wantErr bool
	}{
		{"plain", "7", 7, false},
		{"lowest", "0", 0, false},
		{"highest", "255", 255, false},
		{"padded", " 3 ", 3, false},
		{"overflow", "300", 0, true},
		{"negative", "-1", 0, true},
		{"words", "high", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scripted(io.EOF, tt.answer).Priority("What's the priority? (1 - 10)")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDate(t *testing.T) {
	got, err := scripted(io.EOF, "2026-09-04").Date("What's the due date? (yyyy-mm-dd)")
	require.NoError(t, err)
	assert.Equal(t, task.Date(2026, 9, 4), got)
}

func TestDateRejectsBadShapes(t *testing.T) {
	tests := []string{
		"2026/09/04",
		"2026-09",
		"2026-09-04-05",
		"sometime next week",
		"2026-13-40",
		"2026-02-30",
		"",
	}

	for _, answer := range tests {
		_, err := scripted(io.EOF, answer).Date("What's the due date? (yyyy-mm-dd)")
		assert.Error(t, err, "answer %q should be rejected", answer)
	}
}

func TestNotesCollectsUntilEOF(t *testing.T) {
	p := scripted(io.EOF, "first line", "second line")
	got, err := p.Notes("Any notes? (ctrl-d) to finish")
	require.NoError(t, err)
	assert.Equal(t, "first line\nsecond line", got)
}

func TestNotesInterruptKeepsGathered(t *testing.T) {
	p := scripted(readline.ErrInterrupt, "keep me")
	got, err := p.Notes("Any notes? (ctrl-d) to finish")
	require.NoError(t, err)
	assert.Equal(t, "keep me", got)
}

func TestNotesEmpty(t *testing.T) {
	got, err := scripted(io.EOF).Notes("Any notes? (ctrl-d) to finish")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}
