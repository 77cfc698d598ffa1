package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForTest marks a scope as development mode, which skips host config files and proxies.
type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	if t == nil {
		panic("modes: nil *testing.T")
	}
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (ModuleForTest) Mode() Mode {
	return ModeDevelopment
}
