package words

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLive_Swap(t *testing.T) {
	a, _, _ := New([]string{"crane"})
	b, _, _ := New([]string{"slate"})
	l := NewLive(a)
	if !l.Contains("CRANE") {
		t.Fatal("expected CRANE")
	}
	l.Swap(b)
	if l.Contains("CRANE") || !l.Contains("SLATE") {
		t.Error("swap did not take effect")
	}
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "list.txt")
	if err := os.WriteFile(p, []byte("crane\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	d, _, err := LoadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	live := NewLive(d)

	w, err := NewWatcher(p, live)
	if err != nil {
		t.Fatalf("create watcher: %v", err)
	}
	defer w.Stop()

	reloaded := make(chan LoadReport, 4)
	w.OnReload = func(r LoadReport) { reloaded <- r }

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	go func() {
		time.Sleep(100 * time.Millisecond)
		_ = os.WriteFile(p, []byte("crane\nslate\n"), 0o644)
	}()

	for {
		select {
		case <-reloaded:
			if live.Contains("SLATE") {
				return
			}
		case <-ctx.Done():
			t.Fatal("timeout waiting for reload")
		}
	}
}

func TestWatcher_KeepsPreviousOnBadReload(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "list.txt")
	if err := os.WriteFile(p, []byte("crane\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	d, _, _ := LoadFile(p)
	live := NewLive(d)
	w, err := NewWatcher(p, live)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := os.WriteFile(p, []byte("not-a-word\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w.reload()
	if !live.Contains("CRANE") {
		t.Error("previous dictionary should be kept after a failed reload")
	}
}
