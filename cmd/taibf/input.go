package main

import (
	"bytes"
	"context"
	"io"
	"os"

	"golang.org/x/term"
)

const ctrlC = 0x03

// makeRawInput switches a terminal stdin to raw mode. Other readers are left alone.
// Raw mode turns off SIGINT, so a Ctrl-C byte read from the terminal calls cancel instead.
func makeRawInput(stdin io.Reader, cancel context.CancelFunc) (_ io.Reader, restore func(), err error) {
	f, ok := stdin.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return stdin, func() {}, nil
	}
	state, err := term.MakeRaw(int(f.Fd()))
	if err != nil {
		return nil, nil, err
	}
	return interruptReader{
			r:      f,
			cancel: cancel,
		}, func() {
			term.Restore(int(f.Fd()), state)
		}, nil
}

// interruptReader turns a Ctrl-C byte into cancellation.
type interruptReader struct {
	r      io.Reader
	cancel context.CancelFunc
}

func (i interruptReader) Read(p []byte) (int, error) {
	n, err := i.r.Read(p)
	if idx := bytes.IndexByte(p[:n], ctrlC); idx >= 0 {
		i.cancel()
		return idx, context.Canceled
	}
	return n, err
}
