package task

import (
	"fmt"
	"strconv"
	"strings"
)

// Encode renders a task in the canonical record format:
//
//	title: "<title>"
//	priority: <0-255>
//	due_date: <year>/<month>/<day>
//	info: "<free text>"
//
// Title and info are delimited by bare double quotes with no escaping;
// Validate rejects tasks the format cannot carry. Month and day are
// written without zero padding.
func Encode(t *Task) string {
	var b strings.Builder
	b.WriteString(`title: "`)
	b.WriteString(t.Title)
	b.WriteString("\"\npriority: ")
	b.WriteString(strconv.FormatUint(uint64(t.Priority), 10))
	b.WriteString("\ndue_date: ")
	b.WriteString(strconv.Itoa(t.DueDate.Year()))
	b.WriteByte('/')
	b.WriteString(strconv.Itoa(int(t.DueDate.Month())))
	b.WriteByte('/')
	b.WriteString(strconv.Itoa(t.DueDate.Day()))
	b.WriteString("\ninfo: \"")
	b.WriteString(t.Info)
	b.WriteByte('"')
	return b.String()
}

// Decode parses record text produced by Encode (or written by hand in
// the same grammar) back into a Task. Fields are consumed in strict
// order with a single left-to-right pass; any mismatch fails the whole
// decode with no partial result. Incidental whitespace around the
// field labels is skipped. Input past the closing info quote is
// ignored.
func Decode(input string) (*Task, error) {
	s := &scanner{input: input}

	title, err := s.title()
	if err != nil {
		return nil, err
	}
	priority, err := s.priority()
	if err != nil {
		return nil, err
	}
	year, month, day, err := s.dueDate()
	if err != nil {
		return nil, err
	}
	info, err := s.info()
	if err != nil {
		return nil, err
	}

	due, err := CalendarDate(year, month, day)
	if err != nil {
		return nil, err
	}

	return &Task{
		Title:    title,
		Priority: priority,
		DueDate:  due,
		Info:     info,
	}, nil
}

// scanner is a cursor over the record text. Each grammar step is a
// method that either advances the cursor and returns the captured
// value, or returns a decode error. The grammar has no ambiguous
// branches, so no backtracking is needed.
type scanner struct {
	input string
	pos   int
}

func (s *scanner) title() (string, error) {
	s.skipSpace()
	if err := s.literal(`title: "`); err != nil {
		return "", err
	}
	v, err := s.quoted()
	if err != nil {
		return "", err
	}
	s.skipSpace()
	return v, nil
}

func (s *scanner) priority() (uint8, error) {
	s.skipSpace()
	if err := s.literal("priority: "); err != nil {
		return 0, err
	}
	s.skipSpace()
	run, err := s.digits()
	if err != nil {
		return 0, err
	}
	p, err := strconv.ParseUint(run, 10, 8)
	if err != nil {
		return 0, s.errorf("priority %s out of range 0-255", run)
	}
	return uint8(p), nil
}

func (s *scanner) dueDate() (year, month, day int, err error) {
	s.skipSpace()
	if err := s.literal("due_date: "); err != nil {
		return 0, 0, 0, err
	}
	s.skipSpace()
	yearRun, err := s.signedDigits()
	if err != nil {
		return 0, 0, 0, err
	}
	y, err := strconv.ParseInt(yearRun, 10, 32)
	if err != nil {
		return 0, 0, 0, s.errorf("year %s out of range", yearRun)
	}
	if err := s.literal("/"); err != nil {
		return 0, 0, 0, err
	}
	m, err := s.component("month")
	if err != nil {
		return 0, 0, 0, err
	}
	if err := s.literal("/"); err != nil {
		return 0, 0, 0, err
	}
	d, err := s.component("day")
	if err != nil {
		return 0, 0, 0, err
	}
	return int(y), m, d, nil
}

// component consumes one unsigned date component (month or day).
func (s *scanner) component(name string) (int, error) {
	run, err := s.digits()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(run, 10, 32)
	if err != nil {
		return 0, s.errorf("%s %s out of range", name, run)
	}
	return int(v), nil
}

func (s *scanner) info() (string, error) {
	s.skipSpace()
	if err := s.literal(`info: "`); err != nil {
		return "", err
	}
	return s.quoted()
}

// skipSpace advances past incidental whitespace between fields.
func (s *scanner) skipSpace() {
	for s.pos < len(s.input) {
		switch s.input[s.pos] {
		case ' ', '\t', '\r', '\n':
			s.pos++
		default:
			return
		}
	}
}

// literal consumes an exact token or fails.
func (s *scanner) literal(tok string) error {
	if !strings.HasPrefix(s.input[s.pos:], tok) {
		return s.errorf("expected %q", tok)
	}
	s.pos += len(tok)
	return nil
}

// quoted captures everything up to the next double quote and consumes
// the quote. There is no escaping in this format.
func (s *scanner) quoted() (string, error) {
	end := strings.IndexByte(s.input[s.pos:], '"')
	if end < 0 {
		return "", s.errorf("missing closing quote")
	}
	v := s.input[s.pos : s.pos+end]
	s.pos += end + 1
	return v, nil
}

// digits captures a maximal run of ASCII decimal digits.
func (s *scanner) digits() (string, error) {
	start := s.pos
	for s.pos < len(s.input) && s.input[s.pos] >= '0' && s.input[s.pos] <= '9' {
		s.pos++
	}
	if s.pos == start {
		return "", s.errorf("expected digits")
	}
	return s.input[start:s.pos], nil
}

// signedDigits captures a digit run with an optional leading sign.
// Only the year component may be negative.
func (s *scanner) signedDigits() (string, error) {
	start := s.pos
	if s.pos < len(s.input) && (s.input[s.pos] == '-' || s.input[s.pos] == '+') {
		s.pos++
	}
	if _, err := s.digits(); err != nil {
		return "", err
	}
	return s.input[start:s.pos], nil
}

func (s *scanner) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("malformed record at offset %d: %s", s.pos, fmt.Sprintf(format, args...))
}
