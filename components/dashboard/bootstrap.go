package dashboard

import (
	"context"
	"errors"
	"fmt"
)

// LoadManifests applies manifests in order. Every path is attempted; failures
// are joined so one broken file does not hide the others.
func LoadManifests(reg *Registry, paths ...string) error {
	if reg == nil {
		return errors.New("dashboard: registry is required to load manifests")
	}
	var loadErr error
	for _, path := range paths {
		if path == "" {
			continue
		}
		if _, err := reg.LoadManifestFile(path); err != nil {
			loadErr = errors.Join(loadErr, err)
		}
	}
	return loadErr
}

// OpenThemeStore returns a SQLite-backed store when path is set, otherwise an
// in-memory store. The returned close func is always safe to call.
func OpenThemeStore(ctx context.Context, path string) (ThemeStore, func() error, error) {
	if path == "" {
		return NewInMemoryThemeStore(), func() error { return nil }, nil
	}
	store, err := OpenSQLiteThemeStore(ctx, path)
	if err != nil {
		return nil, nil, fmt.Errorf("open theme store %s: %w", path, err)
	}
	return store, store.Close, nil
}
