package dashboard

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"
)

const themePreferencesTable = "theme_preferences"

// SQLiteThemeStore persists theme preferences in a SQLite database.
type SQLiteThemeStore struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLiteThemeStore opens (or creates) the database at path and ensures the
// schema exists. Use ":memory:" for an ephemeral store.
func OpenSQLiteThemeStore(ctx context.Context, path string) (*SQLiteThemeStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("dashboard: open theme store: %w", err)
	}
	// a single connection keeps ":memory:" databases alive and serializes writers
	db.SetMaxOpenConns(1)
	store, err := NewSQLiteThemeStore(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// NewSQLiteThemeStore wraps an existing database handle.
func NewSQLiteThemeStore(ctx context.Context, db *sql.DB) (*SQLiteThemeStore, error) {
	if db == nil {
		return nil, errors.New("dashboard: theme store requires a database")
	}
	store := &SQLiteThemeStore{db: db, now: time.Now}
	if err := store.migrate(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteThemeStore) migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+themePreferencesTable+` (
		viewer_key TEXT PRIMARY KEY,
		theme TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("dashboard: migrate theme store: %w", err)
	}
	return nil
}

// Theme returns the stored theme or DefaultTheme.
func (s *SQLiteThemeStore) Theme(ctx context.Context, viewer string) (Theme, error) {
	if viewer == "" {
		return DefaultTheme, nil
	}
	query, args, err := squirrel.
		Select("theme").
		From(themePreferencesTable).
		Where(squirrel.Eq{"viewer_key": viewer}).
		PlaceholderFormat(squirrel.Question).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("dashboard: build theme query: %w", err)
	}
	var raw string
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return DefaultTheme, nil
		}
		return "", fmt.Errorf("dashboard: load theme: %w", err)
	}
	theme, err := ParseTheme(raw)
	if err != nil {
		return DefaultTheme, nil
	}
	return theme, nil
}

// SaveTheme upserts the theme for viewer.
func (s *SQLiteThemeStore) SaveTheme(ctx context.Context, viewer string, theme Theme) error {
	if viewer == "" {
		return ErrMissingViewer
	}
	query, args, err := squirrel.
		Insert(themePreferencesTable).
		Columns("viewer_key", "theme", "updated_at").
		Values(viewer, string(theme), s.now().UTC().Format(time.RFC3339)).
		Suffix("ON CONFLICT(viewer_key) DO UPDATE SET theme = excluded.theme, updated_at = excluded.updated_at").
		PlaceholderFormat(squirrel.Question).
		ToSql()
	if err != nil {
		return fmt.Errorf("dashboard: build theme upsert: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("dashboard: save theme: %w", err)
	}
	return nil
}

// DeleteTheme forgets the viewer's preference.
func (s *SQLiteThemeStore) DeleteTheme(ctx context.Context, viewer string) error {
	query, args, err := squirrel.
		Delete(themePreferencesTable).
		Where(squirrel.Eq{"viewer_key": viewer}).
		PlaceholderFormat(squirrel.Question).
		ToSql()
	if err != nil {
		return fmt.Errorf("dashboard: build theme delete: %w", err)
	}
	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}

// Close closes the underlying database.
func (s *SQLiteThemeStore) Close() error {
	return s.db.Close()
}
