package words

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse_FiltersAndReports(t *testing.T) {
	in := strings.Join([]string{
		"# comment",
		"crane",
		"  Slate ",
		"",
		"CRANE",  // duplicate after normalization
		"cr4ne",  // non-alpha
		"it's",   // non-alpha
		"cranes", // too long
		"bat",    // too short
	}, "\n")

	d, rep, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := LoadReport{Total: 7, NonAlpha: 2, WrongLength: 2, Duplicates: 1, Kept: 2}
	if rep != want {
		t.Errorf("report = %+v, want %+v", rep, want)
	}
	if d.Len() != 2 {
		t.Errorf("Len = %d", d.Len())
	}
	for _, w := range []string{"CRANE", "crane", "SLATE"} {
		if !d.Contains(w) {
			t.Errorf("Contains(%q) = false", w)
		}
	}
	if d.Contains("CRANES") || d.Contains("CR4NE") {
		t.Error("filtered words should not be present")
	}
}

func TestNew_Empty(t *testing.T) {
	_, rep, err := New([]string{"toolong", "x1y2z"})
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("err = %v, want ErrEmpty", err)
	}
	if rep.Kept != 0 || rep.Total != 2 {
		t.Errorf("report = %+v", rep)
	}
}

func TestDictionary_RandomAndAt(t *testing.T) {
	d, _, err := New([]string{"crane", "slate", "trace"})
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		if w := d.Random(rng); !d.Contains(w) {
			t.Fatalf("Random returned %q", w)
		}
	}
	if d.At(0) != "CRANE" || d.At(4) != "SLATE" || d.At(-1) != "TRACE" {
		t.Errorf("At: %q %q %q", d.At(0), d.At(4), d.At(-1))
	}
	words := d.Words()
	words[0] = "XXXXX"
	if d.At(0) != "CRANE" {
		t.Error("Words must return a copy")
	}
}

func TestLoadFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "list.txt")
	if err := os.WriteFile(p, []byte("crane\r\nslate\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	d, rep, err := LoadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Source != p || rep.Kept != 2 || !d.Contains("SLATE") {
		t.Errorf("report = %+v", rep)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, _, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want not-exist", err)
	}
}

func TestLoad_DefaultsToEmbedded(t *testing.T) {
	d, rep, err := Load(context.Background(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(rep.Source, "embedded:") {
		t.Errorf("Source = %q", rep.Source)
	}
	if d.Len() < 100 || !d.Contains("CRANE") {
		t.Errorf("embedded list looks wrong: %d words", d.Len())
	}
	for _, w := range d.Words() {
		if len(w) != 5 || strings.ToUpper(w) != w {
			t.Fatalf("bad embedded word %q", w)
		}
	}
}

func TestLoad_PrefersFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "list.txt")
	if err := os.WriteFile(p, []byte("zesty\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	d, _, err := Load(context.Background(), Options{File: p})
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() != 1 || !d.Contains("ZESTY") {
		t.Errorf("expected file list, got %v", d.Words())
	}
}
