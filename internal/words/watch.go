// internal/words/watch.go
//
// Hot reload of a text word list.
// Live holds the current *Dictionary behind an atomic pointer; Watcher swaps
// it whenever the file changes on disk. A reload that fails (unreadable or
// empty list) is logged and the previous dictionary stays in place.

package words

import (
	"context"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

// Live is a dictionary that can be replaced while games read it.
type Live struct {
	cur atomic.Pointer[Dictionary]
}

// NewLive wraps d.
func NewLive(d *Dictionary) *Live {
	l := &Live{}
	l.cur.Store(d)
	return l
}

// Current returns the dictionary in effect.
func (l *Live) Current() *Dictionary { return l.cur.Load() }

// Swap installs d.
func (l *Live) Swap(d *Dictionary) { l.cur.Store(d) }

// Contains reports whether w is in the current dictionary.
func (l *Live) Contains(w string) bool { return l.Current().Contains(w) }

// Random picks a word from the current dictionary.
func (l *Live) Random(rng game.Rand) string { return l.Current().Random(rng) }

// Watcher reloads a word list file into a Live dictionary.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	live    *Live

	// OnReload, if set, is called after each successful swap.
	OnReload func(LoadReport)
}

// NewWatcher creates a watcher for path. The parent directory is watched so
// editors that replace the file by rename are still seen.
func NewWatcher(path string, live *Live) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}
	return &Watcher{watcher: w, path: abs, live: live}, nil
}

// Run processes file events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Str("path", w.path).Msg("word list watcher")
		}
	}
}

func (w *Watcher) reload() {
	d, rep, err := LoadFile(w.path)
	if err != nil {
		log.Warn().Err(err).Str("path", w.path).Msg("word list reload failed; keeping previous list")
		return
	}
	w.live.Swap(d)
	log.Info().Str("path", w.path).Int("kept", rep.Kept).Msg("word list reloaded")
	if w.OnReload != nil {
		w.OnReload(rep)
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}
