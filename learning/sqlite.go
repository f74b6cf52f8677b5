package learning

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// SavesKept is how many saves a SQLitePersister retains by default.
const SavesKept = 3

var createTablesSQL = []string{`
CREATE TABLE IF NOT EXISTS saves (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	save_id TEXT NOT NULL UNIQUE,
	saved_at INTEGER NOT NULL,
	records INTEGER NOT NULL
)`, `
CREATE TABLE IF NOT EXISTS snapshots (
	save_id TEXT NOT NULL,
	seq INTEGER NOT NULL,
	value TEXT NOT NULL,
	own_food INTEGER NOT NULL,
	enemy_food INTEGER NOT NULL,
	own_non_workers INTEGER NOT NULL,
	enemy_non_workers INTEGER NOT NULL,
	tunnel_distances TEXT NOT NULL,
	queen_distances TEXT NOT NULL,
	PRIMARY KEY (save_id, seq)
)`,
}

const pruneSQL = `
DELETE FROM %s WHERE save_id NOT IN (SELECT save_id FROM saves ORDER BY seq DESC LIMIT ?)`

// SaveInfo describes one save held by a SQLitePersister.
type SaveInfo struct {
	ID      uuid.UUID
	SavedAt time.Time
	Records int
}

// SQLitePersister keeps the store as rows of a SQLite database. Every save is stamped with
// a fresh id; Load reads the newest one and older saves are pruned beyond the kept count.
type SQLitePersister struct {
	db   *sql.DB
	keep int
}

type SQLiteOption func(p *SQLitePersister)

// WithSavesKept sets how many saves are retained. At least one always is.
func WithSavesKept(n int) SQLiteOption {
	return func(p *SQLitePersister) {
		if n > 0 {
			p.keep = n
		}
	}
}

func NewSQLitePersister(path string, options ...SQLiteOption) (*SQLitePersister, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	for _, stmt := range createTablesSQL {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create tables: %w", err)
		}
	}
	p := &SQLitePersister{db: db, keep: SavesKept}
	for _, option := range options {
		option(p)
	}
	return p, nil
}

func (p *SQLitePersister) Close() error {
	return p.db.Close()
}

func (p *SQLitePersister) Save(store *Store) (err error) {
	tx, err := p.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin save: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	saveID := uuid.New()
	_, err = tx.Exec(`INSERT INTO saves (save_id, saved_at, records) VALUES (?, ?, ?)`,
		saveID.String(), time.Now().UnixNano(), store.Len())
	if err != nil {
		return fmt.Errorf("failed to record save: %w", err)
	}
	stmt, err := tx.Prepare(`
		INSERT INTO snapshots (save_id, seq, value, own_food, enemy_food, own_non_workers,
			enemy_non_workers, tunnel_distances, queen_distances)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range store.Records() {
		row := toRow(r)
		_, err = stmt.Exec(saveID.String(), i, row[0], r.OwnFood, r.EnemyFood, r.OwnNonWorkers,
			r.EnemyNonWorkers, row[5], row[6])
		if err != nil {
			return fmt.Errorf("failed to insert snapshot %d: %w", i, err)
		}
	}
	for _, table := range []string{"snapshots", "saves"} {
		if _, err = tx.Exec(fmt.Sprintf(pruneSQL, table), p.keep); err != nil {
			return fmt.Errorf("failed to prune %s: %w", table, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit save: %w", err)
	}
	log.Debug().Str("save", saveID.String()).Int("records", store.Len()).Msg("saved store")
	return nil
}

// Load reads the newest save. An empty database is an empty store.
func (p *SQLitePersister) Load(options ...StoreOption) (*Store, error) {
	var saveID string
	err := p.db.QueryRow(`SELECT save_id FROM saves ORDER BY seq DESC LIMIT 1`).Scan(&saveID)
	if errors.Is(err, sql.ErrNoRows) {
		return NewStore(options...), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find latest save: %w", err)
	}

	rows, err := p.db.Query(`
		SELECT value, own_food, enemy_food, own_non_workers, enemy_non_workers,
			tunnel_distances, queen_distances
		FROM snapshots WHERE save_id = ? ORDER BY seq`, saveID)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	store := NewStore(options...)
	for rows.Next() {
		row := make([]string, len(header))
		args := make([]any, len(row))
		for i := range row {
			args[i] = &row[i]
		}
		if err := rows.Scan(args...); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedStore, err)
		}
		snap, err := fromRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedStore, err)
		}
		store.Append(snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read snapshots: %w", err)
	}
	log.Debug().Str("save", saveID).Int("records", store.Len()).Msg("loaded store")
	return store, nil
}

// Saves lists the retained saves, newest first.
func (p *SQLitePersister) Saves() ([]SaveInfo, error) {
	rows, err := p.db.Query(`SELECT save_id, saved_at, records FROM saves ORDER BY seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query saves: %w", err)
	}
	defer rows.Close()

	var saves []SaveInfo
	for rows.Next() {
		var id string
		var savedAt int64
		var info SaveInfo
		if err := rows.Scan(&id, &savedAt, &info.Records); err != nil {
			return nil, fmt.Errorf("failed to read save: %w", err)
		}
		if info.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("%w: save id %q: %v", ErrMalformedStore, id, err)
		}
		info.SavedAt = time.Unix(0, savedAt)
		saves = append(saves, info)
	}
	return saves, rows.Err()
}
