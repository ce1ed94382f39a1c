package fragments

import (
	"context"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"time"
)

//go:embed components/*.html
var builtin embed.FS

// Source fetches a named page fragment such as "navbar.html".
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// FSSource serves fragments from a file system.
type FSSource struct {
	FS fs.FS
}

func (s FSSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := fs.ReadFile(s.FS, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read fragment %s: %w", name, err)
	}
	return b, nil
}

// DirSource serves fragments from a directory on disk.
func DirSource(dir string) FSSource {
	return FSSource{FS: os.DirFS(dir)}
}

// Builtin serves the fragments compiled into the binary.
func Builtin() FSSource {
	sub, err := fs.Sub(builtin, "components")
	if err != nil {
		panic(err) // embedded path is fixed at compile time
	}
	return FSSource{FS: sub}
}

// HTTPSource fetches fragments relative to BaseURL.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

func (s HTTPSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	u, err := url.JoinPath(s.BaseURL, name)
	if err != nil {
		return nil, fmt.Errorf("failed to build fragment url: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build fragment request: %w", err)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: unexpected status %s", u, resp.Status)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", u, err)
	}
	return b, nil
}

// WithTimeout bounds every fetch from src by d.
func WithTimeout(src Source, d time.Duration) Source {
	return timeoutSource{src: src, d: d}
}

type timeoutSource struct {
	src Source
	d   time.Duration
}

func (s timeoutSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.d)
	defer cancel()
	return s.src.Fetch(ctx, name)
}
