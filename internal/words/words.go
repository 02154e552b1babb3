// internal/words/words.go
//
// Provides the dictionary used to pick targets and validate guesses.
//
// Responsibilities:
//   - Parse word lists (one word per line), normalizing to uppercase and
//     dropping anything that is not exactly 5 A–Z letters.
//   - Report what was filtered out, for the startup log.
//   - Maintain a set for quick membership tests and a slice for random picks.
//
// Sources (see Load):
//   1. WORDS_DB   → SQLite database with a `words(word TEXT)` table.
//   2. WORDS_FILE → plain text file.
//   3. neither    → embedded default list in assets/words.txt.
//
// Constraints:
//   • Words must be 5 alphabetic letters (A–Z) after normalization.
//   • A dictionary that ends up empty is an error (ErrEmpty).

package words

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-term/assets"
	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

// ErrEmpty is returned when no valid word survives filtering.
var ErrEmpty = errors.New("words: no valid words loaded")

// Dictionary is an immutable set of valid words.
type Dictionary struct {
	list []string            // in load order, for random selection
	set  map[string]struct{} // for membership tests
}

// LoadReport summarizes a load for logging.
type LoadReport struct {
	Source      string // file path, DSN or embedded name
	Total       int    // non-empty, non-comment entries read
	NonAlpha    int    // dropped: non A–Z characters
	WrongLength int    // dropped: alphabetic but not 5 letters
	Duplicates  int    // dropped: repeated entries
	Kept        int
}

// Options selects the dictionary source.
type Options struct {
	File string // plain text word list
	DB   string // SQLite database path
}

// Load reads the dictionary from the configured source and logs the report.
func Load(ctx context.Context, opts Options) (*Dictionary, LoadReport, error) {
	var (
		d   *Dictionary
		rep LoadReport
		err error
	)
	switch {
	case opts.DB != "":
		d, rep, err = LoadSQLite(ctx, opts.DB)
	case opts.File != "":
		d, rep, err = LoadFile(opts.File)
	default:
		d, rep, err = LoadEmbedded()
	}
	if err != nil {
		return nil, rep, err
	}
	log.Info().
		Str("source", rep.Source).
		Int("total", rep.Total).
		Int("non_alpha", rep.NonAlpha).
		Int("wrong_length", rep.WrongLength).
		Int("duplicates", rep.Duplicates).
		Int("kept", rep.Kept).
		Msg("word list loaded")
	return d, rep, nil
}

// LoadFile reads a plain text word list.
func LoadFile(path string) (*Dictionary, LoadReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadReport{Source: path}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	d, rep, err := Parse(f)
	rep.Source = path
	if err != nil {
		return nil, rep, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return d, rep, nil
}

// LoadEmbedded reads the default list compiled into the binary.
func LoadEmbedded() (*Dictionary, LoadReport, error) {
	f, err := assets.DefaultWords()
	if err != nil {
		return nil, LoadReport{Source: assets.DefaultWordsName}, err
	}
	defer f.Close()
	d, rep, err := Parse(f)
	rep.Source = "embedded:" + assets.DefaultWordsName
	return d, rep, err
}

// Parse reads one word per line from r. Blank lines and lines starting
// with '#' are skipped.
func Parse(r io.Reader) (*Dictionary, LoadReport, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		lines = append(lines, s)
	}
	if err := sc.Err(); err != nil {
		return nil, LoadReport{}, err
	}
	return New(lines)
}

// New builds a dictionary from raw entries, normalizing and filtering them.
func New(entries []string) (*Dictionary, LoadReport, error) {
	rep := LoadReport{Total: len(entries)}
	d := &Dictionary{set: make(map[string]struct{}, len(entries))}
	for _, e := range entries {
		w := strings.ToUpper(strings.TrimSpace(e))
		switch {
		case !isAlpha(w):
			rep.NonAlpha++
		case len(w) != game.WordLength:
			rep.WrongLength++
		default:
			if _, dup := d.set[w]; dup {
				rep.Duplicates++
				continue
			}
			d.set[w] = struct{}{}
			d.list = append(d.list, w)
		}
	}
	rep.Kept = len(d.list)
	if rep.Kept == 0 {
		return nil, rep, ErrEmpty
	}
	return d, rep, nil
}

// isAlpha reports whether s is non-empty and all uppercase ASCII letters.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// Contains reports whether w (any case) is in the dictionary.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[strings.ToUpper(w)]
	return ok
}

// Random returns a word chosen with rng.
func (d *Dictionary) Random(rng game.Rand) string {
	return d.list[rng.Intn(len(d.list))]
}

// At returns the i-th word in load order; i is reduced modulo Len.
func (d *Dictionary) At(i int) string {
	n := len(d.list)
	return d.list[((i%n)+n)%n]
}

// Len returns the number of words.
func (d *Dictionary) Len() int { return len(d.list) }

// Words returns a copy of the words in load order.
func (d *Dictionary) Words() []string {
	return append([]string(nil), d.list...)
}
