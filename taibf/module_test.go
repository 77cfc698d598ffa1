package taibf

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/modes"
)

func TestModuleNewVM(t *testing.T) {
	scope := dscope.New(
		modes.ForTest(t),
		new(Module),
	)

	scope.Call(func(
		newVM NewVM,
	) {
		out := new(bytes.Buffer)
		vm := newVM(strings.NewReader("a"), out)
		if vm.Logger == nil {
			t.Fatal("logger not injected")
		}
		if vm.MaxSteps != 0 {
			t.Fatalf("got %d", vm.MaxSteps)
		}
		if err := vm.Run(t.Context(), ",+.", NewState()); err != nil {
			t.Fatal(err)
		}
		if out.String() != "b" {
			t.Fatalf("got %q", out.String())
		}
	})

	scope.Fork(
		func() bfconfigs.MaxSteps {
			return 10
		},
	).Call(func(
		newVM NewVM,
	) {
		vm := newVM(nil, nil)
		stats, err := vm.Exec(t.Context(), "+[]", NewState())
		if !errors.Is(err, ErrStepLimit) {
			t.Fatalf("got %v", err)
		}
		if stats.Steps != 10 {
			t.Fatalf("got %d", stats.Steps)
		}
	})
}
