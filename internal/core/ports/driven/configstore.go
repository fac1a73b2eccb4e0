package driven

import "context"

// ConfigStore holds raw setting values under dot-notation keys such as
// "chart.parallel". It does no type conversion; values come back as they
// were stored or decoded, so a hand-edited file may yield "true" where a
// bool was written. Interpreting them is the settings service's job.
type ConfigStore interface {
	// Lookup returns the stored value and whether the key is present.
	Lookup(key string) (any, bool)

	// Set stores a value and persists it before returning.
	Set(key string, value any) error

	// Unset removes a key so readers fall back to the default.
	// Removing an absent key is not an error.
	Unset(key string) error

	// Reload discards cached values and reads the backing storage again.
	Reload() error

	// Path names the backing storage, for messages.
	Path() string
}

// ConfigWatcher is implemented by config stores whose backing file can change
// underneath a running process.
type ConfigWatcher interface {
	// Watch reloads the configuration whenever it changes on disk and calls
	// onChange after each reload. It blocks until ctx is cancelled.
	Watch(ctx context.Context, onChange func()) error
}
