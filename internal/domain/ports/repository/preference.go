package repository

import "context"

// PreferenceRepository persists the single theme preference across sessions.
// Get returns domain.ErrNotFound when no preference was ever saved.
type PreferenceRepository interface {
	GetTheme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, theme string) error
}
