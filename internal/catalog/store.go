// Package catalog indexes converted sequences in a DuckDB database so
// a sequence library can be searched by word, letter, or length.
package catalog

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/kinetic-notation/backend/internal/logger"
	"github.com/kinetic-notation/backend/internal/models"
	"github.com/marcboeker/go-duckdb"
)

// Store is a DuckDB-backed sequence catalog.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Entry is one cataloged sequence.
type Entry struct {
	ID            string `json:"id"`
	Word          string `json:"word"`
	Author        string `json:"author,omitempty"`
	BeatCount     int    `json:"beatCount"`
	StartPosition string `json:"startPosition,omitempty"`
	IngestedAt    int64  `json:"ingestedAt"` // Unix ms
}

// Query filters a catalog search. Zero values mean "no filter".
type Query struct {
	Word     string
	Letter   string
	MinBeats int
	Limit    int
}

// NewStore opens (or creates) the catalog database in dir.
func NewStore(dir string) (*Store, error) {
	dbPath := filepath.Join(dir, "catalog.duckdb")

	connector, err := duckdb.NewConnector(dbPath, func(execer driver.ExecerContext) error {
		pragmas := []string{
			"PRAGMA memory_limit='256MB'",
			"PRAGMA threads=2",
			"PRAGMA enable_progress_bar=false",
		}
		for _, pragma := range pragmas {
			if _, err := execer.ExecContext(context.Background(), pragma, nil); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating DuckDB connector")
	}

	db := sql.OpenDB(connector)

	schema := []string{
		`CREATE TABLE IF NOT EXISTS sequences (
			id             VARCHAR PRIMARY KEY,
			word           VARCHAR NOT NULL,
			author         VARCHAR,
			beat_count     INTEGER NOT NULL,
			start_position VARCHAR,
			ingested_at    BIGINT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS beats (
			sequence_id VARCHAR NOT NULL,
			beat_number INTEGER NOT NULL,
			letter      VARCHAR,
			timing      VARCHAR,
			direction   VARCHAR
		)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, errors.Wrap(err, "creating catalog schema")
		}
	}

	logger.Infow("catalog opened", "path", dbPath)
	return &Store{db: db, dbPath: dbPath}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ingest adds a converted sequence to the catalog, replacing any
// previous entry with the same ID.
func (s *Store) Ingest(id string, seq *models.SequenceFile) error {
	if seq == nil {
		return errors.New("no sequence to ingest")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(err, "beginning catalog transaction")
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM beats WHERE sequence_id = ?`, id); err != nil {
		return errors.Wrap(err, "clearing old beats")
	}
	if _, err := tx.Exec(`DELETE FROM sequences WHERE id = ?`, id); err != nil {
		return errors.Wrap(err, "clearing old entry")
	}

	startPos := ""
	if seq.StartPosition != nil && seq.StartPosition.Glyph != nil {
		startPos = seq.StartPosition.Glyph.StartPos
	}

	_, err = tx.Exec(
		`INSERT INTO sequences (id, word, author, beat_count, start_position, ingested_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, seq.Metadata.Word, seq.Metadata.Author, seq.BeatCount(), startPos,
		time.Now().UnixMilli(),
	)
	if err != nil {
		return errors.Wrap(err, "inserting sequence")
	}

	for _, beat := range seq.Beats {
		_, err = tx.Exec(
			`INSERT INTO beats (sequence_id, beat_number, letter, timing, direction)
			 VALUES (?, ?, ?, ?, ?)`,
			id, beat.BeatNumber, beat.Letter, beat.Meta("timing"), beat.Meta("direction"),
		)
		if err != nil {
			return errors.Wrapf(err, "inserting beat %d", beat.BeatNumber)
		}
	}

	return errors.Wrap(tx.Commit(), "committing catalog transaction")
}

// Search returns catalog entries matching the query, most recently
// ingested first.
func (s *Store) Search(ctx context.Context, q Query) ([]Entry, error) {
	limit := q.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	sqlQuery := `SELECT DISTINCT s.id, s.word, s.author, s.beat_count, s.start_position, s.ingested_at
		FROM sequences s`
	args := make([]any, 0, 4)
	where := ""

	if q.Letter != "" {
		sqlQuery += ` JOIN beats b ON b.sequence_id = s.id`
		where = ` WHERE b.letter = ?`
		args = append(args, q.Letter)
	}
	if q.Word != "" {
		if where == "" {
			where = ` WHERE s.word = ?`
		} else {
			where += ` AND s.word = ?`
		}
		args = append(args, q.Word)
	}
	if q.MinBeats > 0 {
		if where == "" {
			where = ` WHERE s.beat_count >= ?`
		} else {
			where += ` AND s.beat_count >= ?`
		}
		args = append(args, q.MinBeats)
	}

	sqlQuery += where + ` ORDER BY s.ingested_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, errors.Wrap(err, "searching catalog")
	}
	defer rows.Close()

	entries := make([]Entry, 0, limit)
	for rows.Next() {
		var e Entry
		var author, startPos sql.NullString
		if err := rows.Scan(&e.ID, &e.Word, &author, &e.BeatCount, &startPos, &e.IngestedAt); err != nil {
			return nil, errors.Wrap(err, "scanning catalog row")
		}
		e.Author = author.String
		e.StartPosition = startPos.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the number of cataloged sequences.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sequences`).Scan(&n)
	return n, err
}
