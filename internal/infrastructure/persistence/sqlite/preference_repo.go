package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/schemer/internal/domain/entity"
	"github.com/bnema/schemer/internal/domain/repository"
	"github.com/bnema/schemer/internal/logging"
)

const keyColorScheme = "appearance.color_scheme"

const (
	selectPreference = `SELECT value, updated_at FROM preferences WHERE key = ?`
	upsertPreference = `INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	deletePreference = `DELETE FROM preferences WHERE key = ?`
)

type preferenceRepo struct {
	db *sql.DB
}

// NewPreferenceRepository creates a new SQLite-backed preference repository.
func NewPreferenceRepository(db *sql.DB) repository.PreferenceRepository {
	return &preferenceRepo{db: db}
}

func (r *preferenceRepo) GetColorScheme(ctx context.Context) (*entity.SchemePreference, error) {
	log := logging.FromContext(ctx)

	var value, updatedAt string
	err := r.db.QueryRowContext(ctx, selectPreference, keyColorScheme).Scan(&value, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query color scheme: %w", err)
	}

	scheme, err := entity.ParseColorScheme(value)
	if err != nil {
		return nil, fmt.Errorf("stored color scheme: %w", err)
	}

	pref := &entity.SchemePreference{Scheme: scheme}
	if ts, parseErr := time.Parse(time.RFC3339Nano, updatedAt); parseErr == nil {
		pref.UpdatedAt = ts
	} else {
		log.Debug().Err(parseErr).Str("updated_at", updatedAt).Msg("unparsable preference timestamp")
	}

	log.Debug().Str("scheme", scheme.String()).Msg("loaded color scheme preference")
	return pref, nil
}

func (r *preferenceRepo) SetColorScheme(ctx context.Context, pref *entity.SchemePreference) error {
	if pref == nil || !pref.Scheme.Valid() {
		return fmt.Errorf("%w: invalid preference", entity.ErrUnknownScheme)
	}

	log := logging.FromContext(ctx)
	log.Debug().Str("scheme", pref.Scheme.String()).Msg("saving color scheme preference")

	updatedAt := pref.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, upsertPreference,
		keyColorScheme, pref.Scheme.String(), updatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("save color scheme: %w", err)
	}
	return nil
}

func (r *preferenceRepo) DeleteColorScheme(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deletePreference, keyColorScheme); err != nil {
		return fmt.Errorf("delete color scheme: %w", err)
	}
	return nil
}
