package config

import (
	"github.com/fsnotify/fsnotify"

	"github.com/bnema/schemer/internal/logging"
)

// Watch starts watching the config file for changes and reloads automatically.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	m.viper.OnConfigChange(m.handleConfigChange)
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// handleConfigChange runs after viper has re-read the file; it only
// unmarshals viper's state and fans out.
func (m *Manager) handleConfigChange(e fsnotify.Event) {
	log := logging.NewFromEnv()
	log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify config change detected")

	m.mu.Lock()

	// Our own Save already reloaded; only fan out.
	if m.skipNextReload {
		m.skipNextReload = false
		m.notifyCallbacksLocked()
		return
	}

	if err := m.reload(); err != nil {
		log.Warn().Err(err).Msg("failed to reload config")
		m.mu.Unlock()
		return
	}
	m.notifyCallbacksLocked()
}

// notifyCallbacksLocked copies callbacks and config, releases lock, then notifies.
// Must be called with m.mu held for write.
func (m *Manager) notifyCallbacksLocked() {
	configCopy := *m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		cfg := configCopy
		callback(&cfg)
	}
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}
