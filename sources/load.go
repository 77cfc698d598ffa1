package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/nets"
)

// Source is program text with the name it was loaded by.
type Source struct {
	Name string
	Text string
}

// Load reads a program from a file path or an http(s) URL.
type Load func(ctx context.Context, ref string) (*Source, error)

const maxSourceSize = 64 << 20

func (Module) Load(
	client nets.HTTPClient,
	trim bfconfigs.TrimSource,
	logger logs.Logger,
) Load {
	return func(ctx context.Context, ref string) (*Source, error) {
		var content []byte
		var err error
		if isURL(ref) {
			content, err = fetch(ctx, client, ref)
		} else {
			content, err = os.ReadFile(ref)
		}
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", ref, err)
		}

		text := string(content)
		if trim {
			text = strings.TrimSpace(text)
		}
		logger.DebugContext(ctx, "source loaded",
			"name", ref,
			"bytes", len(content),
		)
		return &Source{
			Name: ref,
			Text: text,
		}, nil
	}
}

func isURL(ref string) bool {
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

func fetch(ctx context.Context, client nets.HTTPClient, ref string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %s", resp.Status)
	}
	content, err := io.ReadAll(io.LimitReader(resp.Body, maxSourceSize+1))
	if err != nil {
		return nil, err
	}
	if len(content) > maxSourceSize {
		return nil, fmt.Errorf("source larger than %d bytes", maxSourceSize)
	}
	return content, nil
}
