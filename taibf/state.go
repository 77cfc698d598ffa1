package taibf

import (
	"errors"
	"fmt"
	"io"
)

// State is the memory of one program run: a tape and a data pointer.
type State struct {
	Tape    *Tape
	Pointer int
}

func NewState() *State {
	return &State{
		Tape: NewTape(),
	}
}

func (s *State) Current() byte {
	return s.Tape.Read(s.Pointer)
}

func (s *State) SetCurrent(value byte) {
	if s.Tape == nil {
		s.Tape = NewTape()
	}
	s.Tape.Write(s.Pointer, value)
}

func (s *State) Increment() {
	s.SetCurrent(s.Current() + 1)
}

func (s *State) Decrement() {
	s.SetCurrent(s.Current() - 1)
}

func (s *State) MoveRight() {
	s.Pointer++
}

func (s *State) MoveLeft() error {
	if s.Pointer == 0 {
		return ErrSegfault
	}
	s.Pointer--
	return nil
}

func (s *State) ReadInput(r io.Reader) error {
	var buf [1]byte
	for range maxEmptyReads {
		n, err := r.Read(buf[:])
		if n == 1 {
			s.SetCurrent(buf[0])
			return nil
		}
		if errors.Is(err, io.EOF) {
			return ErrInputExhausted
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	}
	return fmt.Errorf("read input: %w", io.ErrNoProgress)
}

// maxEmptyReads bounds consecutive (0, nil) reads before giving up.
const maxEmptyReads = 100

type flusher interface {
	Flush() error
}

func (s *State) WriteOutput(w io.Writer) error {
	buf := [1]byte{s.Current()}
	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if f, ok := w.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush output: %w", err)
		}
	}
	return nil
}
