// Package library persists the user's curated movie lists and locale
// choice. The whole state is one JSON document, rewritten wholesale after
// every mutation; concurrent writers are last-writer-wins (single-user
// assumption, see the fsnotify reload in internal/watcher).
package library

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/wemarz/cinelux/internal/catalog"
)

// ListName identifies one of the two curated lists.
type ListName string

const (
	Favorites  ListName = "favorites"
	WatchLater ListName = "watchLater"
)

// DefaultLocale is used when no locale has been persisted.
const DefaultLocale = "en"

type state struct {
	Favorites  []catalog.Movie `json:"favorites"`
	WatchLater []catalog.Movie `json:"watch_later"`
	Locale     string          `json:"locale,omitempty"`
}

type Library struct {
	path string
	st   state
}

func dataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "cinelux")
	}
	home, _ := os.UserHomeDir()
	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Application Support", "cinelux")
	}
	return filepath.Join(home, ".local", "share", "cinelux")
}

// DefaultPath is the library file location under the platform data dir.
func DefaultPath() string {
	return filepath.Join(dataDir(), "library.json")
}

// Open restores the lists from path. A missing or malformed file yields
// empty lists and the default locale, never an error.
func Open(path string) *Library {
	l := &Library{path: path}
	l.Reload()
	return l
}

// Reload re-reads the file, replacing in-memory state. Used after an
// external writer (another running instance) touches the file.
func (l *Library) Reload() {
	l.st = state{}
	data, err := os.ReadFile(l.path)
	if err != nil {
		return
	}
	_ = json.Unmarshal(data, &l.st) // malformed state is treated as empty
}

func (l *Library) Path() string {
	return l.path
}

func (l *Library) list(name ListName) *[]catalog.Movie {
	if name == Favorites {
		return &l.st.Favorites
	}
	return &l.st.WatchLater
}

// Movies returns a copy of the named list in insertion order.
func (l *Library) Movies(name ListName) []catalog.Movie {
	src := *l.list(name)
	out := make([]catalog.Movie, len(src))
	copy(out, src)
	return out
}

// IsMember reports whether a movie with the same title is in the list.
func (l *Library) IsMember(name ListName, m catalog.Movie) bool {
	for _, e := range *l.list(name) {
		if e.Title == m.Title {
			return true
		}
	}
	return false
}

// Toggle removes the movie if present (by title), appends it otherwise,
// persists both lists, and returns the new membership.
func (l *Library) Toggle(name ListName, m catalog.Movie) (bool, error) {
	list := l.list(name)
	for i, e := range *list {
		if e.Title == m.Title {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return false, l.save()
		}
	}
	*list = append(*list, m)
	return true, l.save()
}

// Locale returns the persisted locale, "en" or "my".
func (l *Library) Locale() string {
	if l.st.Locale == "" {
		return DefaultLocale
	}
	return l.st.Locale
}

// SetLocale persists the locale. Only "en" and "my" are supported.
func (l *Library) SetLocale(locale string) error {
	if locale != "en" && locale != "my" {
		return fmt.Errorf("unsupported locale %q", locale)
	}
	l.st.Locale = locale
	return l.save()
}

func (l *Library) save() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := json.MarshalIndent(l.st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(l.path, data, 0o644)
}
