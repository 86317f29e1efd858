// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/schemer/internal/application/port"
	"github.com/bnema/schemer/internal/domain/entity"
	"github.com/bnema/schemer/internal/domain/repository"
	"github.com/bnema/schemer/internal/logging"
)

// ManageColorSchemeUseCase persists the picked scheme and resolves what it means
// on the current desktop.
type ManageColorSchemeUseCase struct {
	prefRepo repository.PreferenceRepository
	resolver port.ColorSchemeResolver
	fallback entity.ColorScheme
}

// NewManageColorSchemeUseCase creates the use case.
// fallback is used when nothing was stored yet (typically from config).
func NewManageColorSchemeUseCase(
	prefRepo repository.PreferenceRepository,
	resolver port.ColorSchemeResolver,
	fallback entity.ColorScheme,
) *ManageColorSchemeUseCase {
	if !fallback.Valid() {
		fallback = entity.ColorSchemeSystem
	}
	return &ManageColorSchemeUseCase{
		prefRepo: prefRepo,
		resolver: resolver,
		fallback: fallback,
	}
}

// Fallback returns the scheme used when no preference is stored.
func (uc *ManageColorSchemeUseCase) Fallback() entity.ColorScheme {
	return uc.fallback
}

// SetFallback replaces the config-provided fallback, e.g. after a config reload.
func (uc *ManageColorSchemeUseCase) SetFallback(scheme entity.ColorScheme) {
	if scheme.Valid() {
		uc.fallback = scheme
	}
}

// Load returns the stored scheme, or the fallback if none is stored.
// The boolean reports whether the value came from storage.
func (uc *ManageColorSchemeUseCase) Load(ctx context.Context) (entity.ColorScheme, bool, error) {
	log := logging.FromContext(ctx)

	pref, err := uc.prefRepo.GetColorScheme(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		log.Debug().Str("scheme", uc.fallback.String()).Msg("no stored color scheme, using fallback")
		return uc.fallback, false, nil
	}
	if err != nil {
		return uc.fallback, false, fmt.Errorf("failed to load color scheme: %w", err)
	}

	return pref.Scheme, true, nil
}

// Save persists scheme and refreshes the effective palette.
func (uc *ManageColorSchemeUseCase) Save(ctx context.Context, scheme entity.ColorScheme) (entity.EffectiveScheme, error) {
	log := logging.FromContext(ctx)

	if err := uc.prefRepo.SetColorScheme(ctx, entity.NewSchemePreference(scheme)); err != nil {
		return entity.EffectiveScheme{}, fmt.Errorf("failed to save color scheme: %w", err)
	}

	effective := uc.resolver.Refresh(scheme)
	log.Info().
		Str("scheme", scheme.String()).
		Str("effective", effective.Name()).
		Str("source", effective.Source).
		Msg("color scheme saved")

	return effective, nil
}

// Reset forgets the stored scheme and returns the fallback now in effect.
func (uc *ManageColorSchemeUseCase) Reset(ctx context.Context) (entity.ColorScheme, error) {
	log := logging.FromContext(ctx)

	if err := uc.prefRepo.DeleteColorScheme(ctx); err != nil {
		return uc.fallback, fmt.Errorf("failed to reset color scheme: %w", err)
	}

	uc.resolver.Refresh(uc.fallback)
	log.Info().Str("fallback", uc.fallback.String()).Msg("stored color scheme removed")
	return uc.fallback, nil
}

// Refresh re-resolves scheme as the palette in use without touching storage.
// Resolver OnChange callbacks fire if the palette flips.
func (uc *ManageColorSchemeUseCase) Refresh(scheme entity.ColorScheme) entity.EffectiveScheme {
	return uc.resolver.Refresh(scheme)
}

// Effective resolves scheme without touching storage.
func (uc *ManageColorSchemeUseCase) Effective(scheme entity.ColorScheme) entity.EffectiveScheme {
	return uc.resolver.Resolve(scheme)
}
