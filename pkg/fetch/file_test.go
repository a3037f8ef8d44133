package fetch_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vastitch/vastitch/pkg/fetch"
)

func writeSample(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write sample: %v", err)
	}
	return path
}

func TestFileFetch(t *testing.T) {
	dir := t.TempDir()
	path := writeSample(t, dir, "tag.xml", "<VAST/>")
	f := fetch.NewFile("", nil)
	ctx := context.Background()

	t.Run("Absolute Path", func(t *testing.T) {
		data, err := f.Fetch(ctx, path)
		if err != nil {
			t.Fatalf("Fetch failed: %v", err)
		}
		if string(data) != "<VAST/>" {
			t.Errorf("unexpected content: %q", data)
		}
	})

	t.Run("File URL", func(t *testing.T) {
		data, err := f.Fetch(ctx, "file://"+path)
		if err != nil {
			t.Fatalf("Fetch failed: %v", err)
		}
		if string(data) != "<VAST/>" {
			t.Errorf("unexpected content: %q", data)
		}
	})

	t.Run("Relative Under BaseDir", func(t *testing.T) {
		based := fetch.NewFile(dir, nil)
		data, err := based.Fetch(ctx, "tag.xml")
		if err != nil {
			t.Fatalf("Fetch failed: %v", err)
		}
		if string(data) != "<VAST/>" {
			t.Errorf("unexpected content: %q", data)
		}
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := f.Fetch(ctx, filepath.Join(dir, "nope.xml"))
		if !errors.Is(err, fetch.ErrFetchFailed) {
			t.Fatalf("expected ErrFetchFailed, got %v", err)
		}

		var fe *fetch.Error
		if !errors.As(err, &fe) {
			t.Fatalf("expected *fetch.Error, got %T", err)
		}
		if fe.Location != filepath.Join(dir, "nope.xml") {
			t.Errorf("error does not carry the location: %q", fe.Location)
		}
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := f.Fetch(cancelled, path); !errors.Is(err, fetch.ErrFetchFailed) {
			t.Fatalf("expected ErrFetchFailed, got %v", err)
		}
	})
}
