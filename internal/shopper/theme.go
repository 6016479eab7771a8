package shopper

import (
	"fmt"

	"github.com/ahsanlabs/storefront-service/internal/kvstore"
)

// Theme is the storefront color scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme is used when no preference has been stored.
const DefaultTheme = ThemeDark

// ThemeStore persists the theme preference.
type ThemeStore struct {
	store kvstore.Store
}

// NewThemeStore creates the theme preference store.
func NewThemeStore(store kvstore.Store) *ThemeStore {
	return &ThemeStore{store: store}
}

// Get returns the stored theme, falling back to DefaultTheme for
// absent or unrecognized values.
func (t *ThemeStore) Get() (Theme, error) {
	data, ok, err := t.store.Get(kvstore.KeyTheme)
	if err != nil {
		return DefaultTheme, fmt.Errorf("failed to load theme: %w", err)
	}
	if !ok {
		return DefaultTheme, nil
	}

	switch Theme(data) {
	case ThemeLight, ThemeDark:
		return Theme(data), nil
	default:
		return DefaultTheme, nil
	}
}

// Set persists the theme preference.
func (t *ThemeStore) Set(theme Theme) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("unknown theme: %s", theme)
	}
	if err := t.store.Set(kvstore.KeyTheme, []byte(theme)); err != nil {
		return fmt.Errorf("failed to persist theme: %w", err)
	}
	return nil
}
