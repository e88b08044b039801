package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// KeyEvent reports that a stored key was rewritten.
type KeyEvent struct {
	Key  string
	Time time.Time
}

// Watcher streams change notifications for the board keys under a DiskKV
// base directory. It only observes; it never merges or rewrites values.
type Watcher struct {
	fsw      *fsnotify.Watcher
	dir      string
	debounce time.Duration
	log      *zap.Logger
}

// NewWatcher starts watching the store's base directory.
func NewWatcher(kv *DiskKV, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(kv.BasePath()); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch directory %s: %w", kv.BasePath(), err)
	}
	return &Watcher{
		fsw:      fsw,
		dir:      kv.BasePath(),
		debounce: 100 * time.Millisecond,
		log:      log.Named("watch"),
	}, nil
}

// Watch emits one KeyEvent per key per debounce window until ctx is
// cancelled. The returned channel is closed when the goroutine exits.
func (w *Watcher) Watch(ctx context.Context) <-chan KeyEvent {
	out := make(chan KeyEvent, 16)

	go func() {
		defer close(out)

		pending := make(map[string]bool)

		timer := time.NewTimer(0)
		if !timer.Stop() {
			<-timer.C
		}
		defer timer.Stop()

		flush := func() bool {
			for _, key := range []string{ChecklistKey, DarkModeKey} {
				if !pending[key] {
					continue
				}
				select {
				case out <- KeyEvent{Key: key, Time: time.Now()}:
				case <-ctx.Done():
					return false
				}
			}
			clear(pending)
			return true
		}

		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-w.fsw.Events:
				if !ok {
					return
				}
				key := filepath.Base(ev.Name)
				if key != ChecklistKey && key != DarkModeKey {
					continue
				}
				if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Rename) {
					continue
				}
				pending[key] = true
				timer.Reset(w.debounce)

			case <-timer.C:
				if !flush() {
					return
				}

			case err, ok := <-w.fsw.Errors:
				if !ok {
					return
				}
				w.log.Warn("watch error", zap.String("dir", w.dir), zap.Error(err))
			}
		}
	}()

	return out
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
