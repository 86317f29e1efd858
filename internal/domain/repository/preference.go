package repository

import (
	"context"
	"errors"

	"github.com/bnema/schemer/internal/domain/entity"
)

// ErrNotFound is returned when no preference has been stored yet.
var ErrNotFound = errors.New("preference not found")

//go:generate mockery --name=PreferenceRepository --output=mocks --outpkg=mocks --with-expecter --structname=MockPreferenceRepository --filename=mock_preference.go

// PreferenceRepository defines persistence for the user's color scheme choice.
type PreferenceRepository interface {
	// GetColorScheme returns the stored preference.
	// Returns ErrNotFound if the user never picked a scheme.
	GetColorScheme(ctx context.Context) (*entity.SchemePreference, error)

	// SetColorScheme saves or replaces the stored preference.
	SetColorScheme(ctx context.Context, pref *entity.SchemePreference) error

	// DeleteColorScheme forgets the stored preference.
	DeleteColorScheme(ctx context.Context) error
}
