package state

import "log"

// Theme values persisted under ThemeKey, independent of the main aggregate.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Theme returns the saved preference, defaulting to light.
func (s *Store) Theme() string {
	data, ok, err := s.kv.Get(ThemeKey)
	if err != nil {
		log.Println("state: failed to load theme:", err)
		return ThemeLight
	}
	if ok && string(data) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// ToggleTheme flips the preference, persists it and returns the new value.
func (s *Store) ToggleTheme() string {
	next := ThemeDark
	if s.Theme() == ThemeDark {
		next = ThemeLight
	}
	if err := s.kv.Set(ThemeKey, []byte(next)); err != nil {
		log.Println("state: failed to save theme:", err)
	}
	return next
}
