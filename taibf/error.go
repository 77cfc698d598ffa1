package taibf

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMismatchedBraces = errors.New("mismatched braces")
	ErrSegfault         = errors.New("segfault")
	ErrInputExhausted   = errors.New("input exhausted")
	ErrStepLimit        = errors.New("step limit exceeded")
)

// PosError locates an execution failure in the program text.
type PosError struct {
	Err    error
	Offset int
	Line   int
	Column int
	Source []rune
}

func (p PosError) Error() string {
	return fmt.Sprintf("%s at %d:%d", p.Err.Error(), p.Line, p.Column)
}

func (p PosError) Unwrap() error {
	return p.Err
}

// Caret renders the offending line with a marker under the failing instruction.
func (p PosError) Caret() string {
	if p.Source == nil {
		return ""
	}
	start := p.Offset
	for start > 0 && p.Source[start-1] != '\n' {
		start--
	}
	end := p.Offset
	for end < len(p.Source) && p.Source[end] != '\n' {
		end++
	}
	var sb strings.Builder
	sb.WriteString(string(p.Source[start:end]))
	sb.WriteString("\n")
	for _, r := range p.Source[start:p.Offset] {
		if r == '\t' {
			sb.WriteString("\t")
		} else {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("^\n")
	return sb.String()
}

func withPos(err error, program []rune, offset int) error {
	if err == nil {
		return nil
	}
	var posErr PosError
	if errors.As(err, &posErr) {
		return err
	}
	line, column := 1, 1
	for _, r := range program[:offset] {
		if r == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return PosError{
		Err:    err,
		Offset: offset,
		Line:   line,
		Column: column,
		Source: program,
	}
}
