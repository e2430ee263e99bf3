package registry

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"golang.org/x/exp/maps"

	"github.com/AvengeMedia/themekit/internal/cssvars"
	"github.com/AvengeMedia/themekit/internal/log"
)

//go:embed themes/*.css
var builtinFS embed.FS

// Manager holds the known themes. Explicitly constructed and passed by
// reference; there is deliberately no package-level instance.
type Manager struct {
	fs  afero.Fs
	dir string

	mu     sync.RWMutex
	themes map[string]*Theme
}

// NewManager loads the built-in themes plus any *.css files in dir on
// the host filesystem. An empty dir loads built-ins only.
func NewManager(dir string) (*Manager, error) {
	return NewManagerFs(afero.NewOsFs(), dir)
}

// NewManagerFs is NewManager against an explicit filesystem, used by
// tests with an in-memory fs.
func NewManagerFs(fsys afero.Fs, dir string) (*Manager, error) {
	m := &Manager{
		fs:     fsys,
		dir:    dir,
		themes: make(map[string]*Theme),
	}

	if err := m.loadBuiltins(); err != nil {
		return nil, fmt.Errorf("load built-in themes: %w", err)
	}
	if dir != "" {
		if err := m.loadDir(); err != nil {
			return nil, fmt.Errorf("load theme dir %s: %w", dir, err)
		}
	}

	return m, nil
}

func (m *Manager) loadBuiltins() error {
	entries, err := fs.ReadDir(builtinFS, "themes")
	if err != nil {
		return err
	}

	for _, entry := range entries {
		data, err := builtinFS.ReadFile("themes/" + entry.Name())
		if err != nil {
			return err
		}
		theme := parseTheme(entry.Name(), string(data))
		theme.BuiltIn = true
		m.mu.Lock()
		m.themes[theme.Name] = theme
		m.mu.Unlock()
	}
	return nil
}

func (m *Manager) loadDir() error {
	entries, err := afero.ReadDir(m.fs, m.dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".css") {
			continue
		}

		data, err := afero.ReadFile(m.fs, filepath.Join(m.dir, entry.Name()))
		if err != nil {
			log.Warnf("Failed to read theme %s: %v", entry.Name(), err)
			continue
		}

		theme := parseTheme(entry.Name(), string(data))
		if _, exists := m.themes[theme.Name]; exists {
			log.Debugf("Theme %s overrides a built-in", theme.Name)
		}

		m.mu.Lock()
		m.themes[theme.Name] = theme
		m.mu.Unlock()
	}
	return nil
}

// Reload re-reads the theme directory. Built-ins stay as loaded; user
// themes are replaced wholesale so deletions take effect.
func (m *Manager) Reload() error {
	m.mu.Lock()
	for name, t := range m.themes {
		if !t.BuiltIn {
			delete(m.themes, name)
		}
	}
	m.mu.Unlock()

	if err := m.loadBuiltins(); err != nil {
		return err
	}
	if m.dir == "" {
		return nil
	}
	return m.loadDir()
}

// Get returns a theme by name.
func (m *Manager) Get(name string) (*Theme, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.themes[name]
	return t, ok
}

// List returns all themes, built-ins first, each group alphabetical.
func (m *Manager) List() []*Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := maps.Keys(m.themes)
	sort.Slice(names, func(i, j int) bool {
		a, b := m.themes[names[i]], m.themes[names[j]]
		if a.BuiltIn != b.BuiltIn {
			return a.BuiltIn
		}
		return a.Name < b.Name
	})

	out := make([]*Theme, 0, len(names))
	for _, n := range names {
		out = append(out, m.themes[n])
	}
	return out
}

// CSS returns the raw stylesheet for a theme, or "" if unknown.
func (m *Manager) CSS(name string) string {
	t, ok := m.Get(name)
	if !ok {
		return ""
	}
	return t.CSS
}

// Variables parses the theme's custom properties.
func (m *Manager) Variables(name string) ([]cssvars.Variable, error) {
	t, ok := m.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown theme: %s", name)
	}
	return cssvars.Parse(t.CSS), nil
}

// parseTheme reads metadata from the leading CSS comment block:
//
//	/*
//	Theme: nord
//	Display: Nord
//	Variant: dark
//	Author: ...
//	*/
//
// Missing fields fall back to the filename and a light variant.
func parseTheme(filename, css string) *Theme {
	t := &Theme{
		Name:    strings.TrimSuffix(filename, ".css"),
		Variant: VariantLight,
		CSS:     css,
	}

	start := strings.Index(css, "/*")
	end := strings.Index(css, "*/")
	if start == -1 || end == -1 || end < start {
		t.Display = t.Name
		return t
	}

	for _, line := range strings.Split(css[start+2:end], "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "*"))
		switch {
		case strings.HasPrefix(line, "Theme:"):
			if v := strings.TrimSpace(strings.TrimPrefix(line, "Theme:")); v != "" {
				t.Name = v
			}
		case strings.HasPrefix(line, "Display:"):
			t.Display = strings.TrimSpace(strings.TrimPrefix(line, "Display:"))
		case strings.HasPrefix(line, "Variant:"):
			v := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, "Variant:")))
			if v == string(VariantDark) {
				t.Variant = VariantDark
			}
		case strings.HasPrefix(line, "Author:"):
			t.Author = strings.TrimSpace(strings.TrimPrefix(line, "Author:"))
		}
	}

	if t.Display == "" {
		t.Display = t.Name
	}
	return t
}
