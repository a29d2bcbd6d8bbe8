package watcher

import (
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// LibraryChangedMsg signals that another process rewrote the library file;
// the UI reloads its lists in response.
type LibraryChangedMsg struct{}

// Watch observes the directory holding the library file and emits a
// LibraryChangedMsg once writes settle. Re-issued by the UI after each
// message.
func Watch(libraryPath string) tea.Cmd {
	return func() tea.Msg {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return nil
		}
		defer w.Close()

		if err := w.Add(filepath.Dir(libraryPath)); err != nil {
			return nil
		}

		// Debounce — wait for changes to settle
		debounce := time.NewTimer(time.Hour)
		debounce.Stop()

		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(ev.Name) != filepath.Clean(libraryPath) {
					continue
				}
				debounce.Reset(500 * time.Millisecond)
			case <-debounce.C:
				return LibraryChangedMsg{}
			case <-w.Errors:
				continue
			}
		}
	}
}
