package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/taibf/histories"
	"github.com/reusee/taibf/taibf"
)

func TestInterruptReader(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()
	r := interruptReader{
		r:      strings.NewReader("a\x03b"),
		cancel: cancel,
	}

	state := taibf.NewState()
	vm := &taibf.VM{
		Input: r,
	}
	// the first read returns the bytes before Ctrl-C
	err := vm.Run(ctx, ",>,", state)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}
	if state.Tape.Read(0) != 'a' {
		t.Fatalf("got %v", state.Tape.Read(0))
	}
	if ctx.Err() == nil {
		t.Fatal("context not canceled")
	}
	if histories.StatusOf(err) != histories.StatusCanceled {
		t.Fatalf("got %v", histories.StatusOf(err))
	}
}

func TestMakeRawInputNotTerminal(t *testing.T) {
	stdin := strings.NewReader("x")
	r, restore, err := makeRawInput(stdin, func() {})
	if err != nil {
		t.Fatal(err)
	}
	defer restore()
	if r != stdin {
		t.Fatal("non-terminal input should pass through")
	}
}
