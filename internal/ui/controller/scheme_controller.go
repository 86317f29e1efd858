// Package controller provides controllers that bridge domain state and UI widgets.
package controller

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/schemer/internal/application/usecase"
	"github.com/bnema/schemer/internal/domain/entity"
	"github.com/bnema/schemer/internal/logging"
	"github.com/bnema/schemer/internal/ui/listmodel"
)

// SchemeController keeps the ColorSchemeModel and the stored preference in sync.
// Selections made on the model are persisted; restores from storage are not.
type SchemeController struct {
	model    *listmodel.ColorSchemeModel
	schemeUC *usecase.ManageColorSchemeUseCase

	onSaved func(entity.EffectiveScheme)
	onError func(error)

	ctx       context.Context
	logger    *zerolog.Logger
	mu        sync.Mutex
	restoring bool
	unbind    func()
}

// NewSchemeController creates a controller and subscribes it to model selection changes.
func NewSchemeController(
	ctx context.Context,
	model *listmodel.ColorSchemeModel,
	schemeUC *usecase.ManageColorSchemeUseCase,
) *SchemeController {
	sc := &SchemeController{
		model:    model,
		schemeUC: schemeUC,
		ctx:      ctx,
		logger:   logging.FromContext(ctx),
	}
	sc.unbind = model.OnCurrentChanged(sc.handleCurrentChanged)
	return sc
}

// SetOnSaved sets the callback invoked after a selection was persisted.
func (sc *SchemeController) SetOnSaved(fn func(entity.EffectiveScheme)) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.onSaved = fn
}

// SetOnError sets the callback invoked when persisting a selection fails.
func (sc *SchemeController) SetOnError(fn func(error)) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.onError = fn
}

// Restore moves the model to the stored scheme (or the fallback) without saving it back.
func (sc *SchemeController) Restore() error {
	scheme, stored, err := sc.schemeUC.Load(sc.ctx)
	if err != nil {
		sc.logger.Warn().Err(err).Msg("failed to load stored color scheme, using fallback")
	}

	sc.apply(scheme)

	sc.logger.Debug().
		Str("scheme", scheme.String()).
		Bool("stored", stored).
		Msg("color scheme restored")
	return err
}

// ApplyFallback updates the configured fallback. If nothing is stored the
// model follows the new fallback right away and the palette is refreshed;
// the returned bool reports whether that happened.
func (sc *SchemeController) ApplyFallback(scheme entity.ColorScheme) (entity.EffectiveScheme, bool) {
	sc.schemeUC.SetFallback(scheme)

	current, stored, err := sc.schemeUC.Load(sc.ctx)
	if err != nil || stored {
		return entity.EffectiveScheme{}, false
	}
	sc.apply(current)

	effective := sc.schemeUC.Refresh(sc.model.CurrentScheme())
	sc.logger.Debug().
		Str("scheme", sc.model.CurrentScheme().String()).
		Str("effective", effective.Name()).
		Msg("fallback color scheme applied")
	return effective, true
}

// Close detaches the controller from the model.
func (sc *SchemeController) Close() {
	sc.mu.Lock()
	unbind := sc.unbind
	sc.unbind = nil
	sc.mu.Unlock()

	if unbind != nil {
		unbind()
	}
}

func (sc *SchemeController) apply(scheme entity.ColorScheme) {
	sc.mu.Lock()
	sc.restoring = true
	sc.mu.Unlock()

	if !sc.model.SetCurrentScheme(scheme) {
		sc.logger.Warn().Str("scheme", scheme.String()).Msg("scheme not offered by the list, selection unchanged")
	}

	sc.mu.Lock()
	sc.restoring = false
	sc.mu.Unlock()
}

// handleCurrentChanged persists user-driven selections. A failed save moves
// the model back to the previous row so it keeps matching storage.
func (sc *SchemeController) handleCurrentChanged(ev listmodel.CurrentChange) {
	sc.mu.Lock()
	restoring := sc.restoring
	onSaved, onError := sc.onSaved, sc.onError
	sc.mu.Unlock()

	if restoring {
		return
	}

	scheme := sc.model.Scheme(ev.Current)
	effective, err := sc.schemeUC.Save(logging.WithScheme(sc.ctx, scheme.String()), scheme)
	if err != nil {
		sc.logger.Error().Err(err).Str("scheme", scheme.String()).Msg("failed to save color scheme")
		sc.apply(sc.model.Scheme(ev.Previous))
		if onError != nil {
			onError(err)
		}
		return
	}

	if onSaved != nil {
		onSaved(effective)
	}
}
