// Package watch validates WAVE headers in a directory as files arrive.
package watch

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/probeaudio/wavprobe/internal/wav"
)

// Result is the outcome of validating one file.
type Result struct {
	Path   string
	Header wav.Header
	Err    error
}

// Watcher revalidates matching files in a directory on create and write
// events. Writes are debounced per file so a burst from a slow encoder
// produces a single validation once the file settles.
type Watcher struct {
	dir        string
	extensions []string
	debounce   time.Duration
	report     func(Result)

	mu      sync.Mutex
	pending map[string]*time.Timer
}

// New creates a watcher for dir. report may be nil, in which case results
// are logged.
func New(dir string, extensions []string, debounce time.Duration, report func(Result)) *Watcher {
	if report == nil {
		report = logResult
	}
	return &Watcher{
		dir:        dir,
		extensions: extensions,
		debounce:   debounce,
		report:     report,
		pending:    make(map[string]*time.Timer),
	}
}

func logResult(r Result) {
	if r.Err != nil {
		log.Printf("Watcher: %s: %v", r.Path, r.Err)
		return
	}
	log.Printf("Watcher: %s: ok (%d ch, %d Hz, %d bit, %d data bytes)",
		r.Path, r.Header.NumChannels, r.Header.SampleRate, r.Header.BitsPerSample, r.Header.SubChunk2Size)
}

// Run blocks until ctx is cancelled or the watcher fails to start.
func (w *Watcher) Run(ctx context.Context) error {
	info, err := os.Stat(w.dir)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("failed to watch %s: not a directory", w.dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(w.dir); err != nil {
		return err
	}

	log.Printf("Watcher: watching %s for changes", w.dir)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.wants(event.Name) {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				w.schedule(event.Name)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher: error: %v", err)

		case <-ctx.Done():
			w.drain()
			return nil
		}
	}
}

// wants reports whether the file name carries a watched extension.
func (w *Watcher) wants(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range w.extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// schedule (re)arms the debounce timer for a file.
func (w *Watcher) schedule(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.pending[name]; ok {
		t.Reset(w.debounce)
		return
	}
	w.pending[name] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.pending, name)
		w.mu.Unlock()
		w.report(w.check(name))
	})
}

// drain stops all pending timers on shutdown.
func (w *Watcher) drain() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for name, t := range w.pending {
		t.Stop()
		delete(w.pending, name)
	}
}

// check opens the file and validates its header.
func (w *Watcher) check(name string) Result {
	f, err := os.Open(name)
	if err != nil {
		return Result{Path: name, Err: err}
	}
	defer f.Close()

	h, err := wav.ParseHeader(f)
	return Result{Path: name, Header: h, Err: err}
}
