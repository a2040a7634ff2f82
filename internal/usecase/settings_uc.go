// File: internal/usecase/settings_uc.go
package usecase

import (
	"context"
	"errors"

	"chatcart/internal/domain"
	"chatcart/internal/domain/ports/repository"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Compile-time check
var _ SettingsUseCase = (*settingsUC)(nil)

// SettingsUseCase persists the theme preference across sessions.
// Light is the default; dark is the explicit non-default value.
type SettingsUseCase interface {
	Theme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, theme string) error
}

type settingsUC struct {
	prefs repository.PreferenceRepository
}

func NewSettingsUseCase(prefs repository.PreferenceRepository) *settingsUC {
	return &settingsUC{prefs: prefs}
}

func (s *settingsUC) Theme(ctx context.Context) (string, error) {
	theme, err := s.prefs.GetTheme(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ThemeLight, nil
		}
		return "", err
	}
	if theme != ThemeLight && theme != ThemeDark {
		return ThemeLight, nil
	}
	return theme, nil
}

func (s *settingsUC) SetTheme(ctx context.Context, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return domain.ErrInvalidTheme
	}
	return s.prefs.SetTheme(ctx, theme)
}
