package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNew_InvalidPattern(t *testing.T) {
	_, err := New(t.TempDir(), "[", nil)
	if err == nil {
		t.Fatal("expected error for invalid pattern")
	}
}

func TestNew_DefaultPattern(t *testing.T) {
	w, err := New(t.TempDir(), "", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if w.pattern != DefaultPattern {
		t.Fatalf("pattern = %q, want %q", w.pattern, DefaultPattern)
	}
}

func TestMatches(t *testing.T) {
	w, err := New("/samples", "**/*.xml", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cases := []struct {
		path string
		want bool
	}{
		{"/samples/tag.xml", true},
		{"/samples/pods/deep/tag.xml", true},
		{"/samples/notes.txt", false},
		{"/samples/tag.xml.bak", false},
	}
	for _, tc := range cases {
		if got := w.matches(tc.path); got != tc.want {
			t.Errorf("matches(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestRun_ReportsChangedFile(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir, "*.xml", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan string, 4)
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, changed) }()

	// Give the watcher a moment to register the directory.
	time.Sleep(50 * time.Millisecond)

	path := filepath.Join(dir, "tag.xml")
	if err := os.WriteFile(path, []byte("<VAST/>"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case got := <-changed:
		if got != path {
			t.Fatalf("changed = %q, want %q", got, path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run returned %v after cancel", err)
	}
}

func TestRun_IgnoresNonMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir, "*.xml", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan string, 4)
	go func() { _ = w.Run(ctx, changed) }()

	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case got := <-changed:
		t.Fatalf("unexpected notification for %q", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestDebouncer_CoalescesBursts(t *testing.T) {
	deb := newDebouncer(20 * time.Millisecond)
	defer deb.stop()

	fired := make(chan string, 8)
	for i := 0; i < 5; i++ {
		deb.add("same.xml", func(path string) { fired <- path })
	}

	select {
	case got := <-fired:
		if got != "same.xml" {
			t.Fatalf("fired %q, want same.xml", got)
		}
	case <-time.After(time.Second):
		t.Fatal("debounced callback never fired")
	}

	select {
	case <-fired:
		t.Fatal("burst produced more than one callback")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	deb := newDebouncer(30 * time.Millisecond)

	fired := make(chan string, 1)
	deb.add("tag.xml", func(path string) { fired <- path })
	deb.stop()

	select {
	case <-fired:
		t.Fatal("callback fired after stop")
	case <-time.After(100 * time.Millisecond):
	}
}
