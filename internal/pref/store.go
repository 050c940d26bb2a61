package pref

import "sync"

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Store holds the UI theme preference. It mirrors what a browser keeps in
// local storage, so it is process-local state rather than a gateway record.
type Store struct {
	mu    sync.RWMutex
	theme string
}

func NewStore(defaultTheme string) *Store {
	if defaultTheme != ThemeLight {
		defaultTheme = ThemeDark
	}
	return &Store{theme: defaultTheme}
}

func (s *Store) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SetTheme stores the theme and reports whether the value was accepted.
func (s *Store) SetTheme(theme string) bool {
	if theme != ThemeDark && theme != ThemeLight {
		return false
	}
	s.mu.Lock()
	s.theme = theme
	s.mu.Unlock()
	return true
}

// Toggle flips between dark and light and returns the new value.
func (s *Store) Toggle() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.theme == ThemeDark {
		s.theme = ThemeLight
	} else {
		s.theme = ThemeDark
	}
	return s.theme
}
