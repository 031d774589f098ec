package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/recipe-book/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/recipe-book/internal/core/domain"
	"github.com/custodia-labs/recipe-book/internal/core/ports/driven"
)

// DBFile is the database file name within the data directory.
const DBFile = "recipes.db"

// Store is a SQLite-based storage for the reference recipe server.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.recipes/data/recipes.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".recipes", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DBFile)

	// WAL lets the HTTP handlers read while a write is in progress.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(context.Background(), migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// RecipeStore returns a RecipeStore interface backed by this store.
func (s *Store) RecipeStore() driven.RecipeStore {
	return &recipeStore{store: s}
}

// migrate applies every NNN_name.up.sql file newer than the recorded
// schema version, each in its own transaction.
func (s *Store) migrate(ctx context.Context, fsys fs.FS) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if err := s.apply(ctx, version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

func (s *Store) apply(ctx context.Context, version int, script string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, script); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		return err
	}
	return tx.Commit()
}

// schemaVersion returns the highest applied migration.
func (s *Store) schemaVersion(ctx context.Context) (int, error) {
	var v int
	err := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&v)
	return v, err
}

// ==================== Recipe Store ====================

// recipeStore implements driven.RecipeStore.
// Rows are ordered by seq, an autoincrement column assigned on insert.
type recipeStore struct {
	store *Store
}

var _ driven.RecipeStore = (*recipeStore)(nil)

// List returns all recipes in insertion order.
func (r *recipeStore) List(ctx context.Context) ([]domain.Recipe, error) {
	rows, err := r.store.db.QueryContext(ctx, `
		SELECT id, name, ingredients FROM recipes ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}
	defer rows.Close()

	recipes := []domain.Recipe{}
	for rows.Next() {
		var recipe domain.Recipe
		if err := rows.Scan(&recipe.ID, &recipe.Name, &recipe.Ingredients); err != nil {
			return nil, fmt.Errorf("scanning recipe: %w", err)
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recipes: %w", err)
	}
	return recipes, nil
}

// Get retrieves a recipe by ID.
func (r *recipeStore) Get(ctx context.Context, id string) (domain.Recipe, error) {
	var recipe domain.Recipe
	err := r.store.db.QueryRowContext(ctx, `
		SELECT id, name, ingredients FROM recipes WHERE id = ?
	`, id).Scan(&recipe.ID, &recipe.Name, &recipe.Ingredients)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Recipe{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("getting recipe: %w", err)
	}
	return recipe, nil
}

// Insert adds a new recipe. Duplicate IDs are rejected.
func (r *recipeStore) Insert(ctx context.Context, recipe domain.Recipe) error {
	if recipe.ID == "" {
		return domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	res, err := r.store.db.ExecContext(ctx, `
		INSERT INTO recipes (id, name, ingredients, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, recipe.ID, recipe.Name, recipe.Ingredients, now, now)
	if err != nil {
		return fmt.Errorf("inserting recipe: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("recipe %s already exists: %w", recipe.ID, domain.ErrInvalidInput)
	}
	return nil
}

// Update replaces an existing recipe, keeping its position.
func (r *recipeStore) Update(ctx context.Context, recipe domain.Recipe) error {
	res, err := r.store.db.ExecContext(ctx, `
		UPDATE recipes SET name = ?, ingredients = ?, updated_at = ? WHERE id = ?
	`, recipe.Name, recipe.Ingredients, time.Now().UTC(), recipe.ID)
	if err != nil {
		return fmt.Errorf("updating recipe: %w", err)
	}
	return requireAffected(res)
}

// Delete removes a recipe.
func (r *recipeStore) Delete(ctx context.Context, id string) error {
	res, err := r.store.db.ExecContext(ctx, "DELETE FROM recipes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting recipe: %w", err)
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
