package registry

import (
	"context"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"

	"github.com/AvengeMedia/themekit/internal/log"
)

// Watch reloads the registry whenever a *.css file in the theme
// directory changes and invokes onChange afterwards. It blocks until
// ctx is cancelled. Watching needs a real directory on the host
// filesystem; with no directory or a non-OS fs it is a no-op.
func (m *Manager) Watch(ctx context.Context, onChange func()) error {
	if m.dir == "" {
		<-ctx.Done()
		return nil
	}
	if _, ok := m.fs.(*afero.OsFs); !ok {
		<-ctx.Done()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(m.dir); err != nil {
		return err
	}
	log.Debugf("Watching %s for theme changes", m.dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(event.Name, ".css") {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			log.Debugf("Theme change: %s", event)
			if err := m.Reload(); err != nil {
				log.Warnf("Theme reload failed: %v", err)
				continue
			}
			if onChange != nil {
				onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warnf("Theme watcher error: %v", err)
		}
	}
}
