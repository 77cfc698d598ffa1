package sources

import (
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/modes"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "add.bf")
	if err := os.WriteFile(path, []byte("\n  ++[>+<-]  \n\n"), 0644); err != nil {
		t.Fatal(err)
	}

	scope := dscope.New(
		modes.ForTest(t),
		new(Module),
	)

	scope.Call(func(
		load Load,
	) {
		source, err := load(t.Context(), path)
		if err != nil {
			t.Fatal(err)
		}
		if source.Text != "++[>+<-]" {
			t.Fatalf("got %q", source.Text)
		}
		if source.Name != path {
			t.Fatalf("got %q", source.Name)
		}

		_, err = load(t.Context(), filepath.Join(dir, "missing.bf"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("got %v", err)
		}
	})

	scope.Fork(
		func() bfconfigs.TrimSource {
			return false
		},
	).Call(func(
		load Load,
	) {
		source, err := load(t.Context(), path)
		if err != nil {
			t.Fatal(err)
		}
		if source.Text != "\n  ++[>+<-]  \n\n" {
			t.Fatalf("got %q", source.Text)
		}
	})
}

func TestLoadURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/hello.bf":
			w.Write([]byte("  +.  "))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		load Load,
	) {
		source, err := load(t.Context(), server.URL+"/hello.bf")
		if err != nil {
			t.Fatal(err)
		}
		if source.Text != "+." {
			t.Fatalf("got %q", source.Text)
		}

		_, err = load(t.Context(), server.URL+"/missing.bf")
		if err == nil || !strings.Contains(err.Error(), "404") {
			t.Fatalf("got %v", err)
		}
	})
}
