// Package store persists recorded bot sessions. The driver appends raw
// engine exchanges to a sqlite database as it plays; the exporter re-decodes
// them into parquet archive shards for analysis.
package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the session database. sqlite supports a single writer, so the
// connection pool is pinned to one connection and guarded by a mutex.
type DB struct {
	conn *sql.DB
	mu   sync.Mutex
}

// Run is one driver invocation.
type Run struct {
	ID        int64
	Strategy  string
	StartedAt time.Time
	Turns     int
}

// Turn is one recorded exchange: the raw engine line and the response line
// the driver emitted for it. The turn counters are denormalised from the
// decoded line so runs can be listed without re-decoding everything.
type Turn struct {
	RunID      int64
	Seq        int
	Turn       int64
	TotalTurns int64
	PlayerNum  int
	RawLine    string
	Response   string
}

// Open opens (creating if needed) a session database at path.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	db := &DB{conn: conn}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		strategy TEXT NOT NULL,
		started_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	-- One row per engine exchange, keyed by line number within the run.
	CREATE TABLE IF NOT EXISTS turns (
		run_id INTEGER NOT NULL,
		seq INTEGER NOT NULL,
		turn INTEGER NOT NULL,
		total_turns INTEGER NOT NULL,
		player_num INTEGER NOT NULL,
		raw_line TEXT NOT NULL,
		response TEXT NOT NULL,
		PRIMARY KEY (run_id, seq),
		FOREIGN KEY (run_id) REFERENCES runs(id)
	);

	CREATE INDEX IF NOT EXISTS idx_turns_run_id ON turns(run_id);
	`

	db.mu.Lock()
	defer db.mu.Unlock()

	if _, err := db.conn.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// BeginRun records the start of a driver invocation and returns its ID.
func (db *DB) BeginRun(strategy string) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	res, err := db.conn.Exec("INSERT INTO runs (strategy) VALUES (?)", strategy)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	return res.LastInsertId()
}

// RecordTurn appends one exchange to its run.
func (db *DB) RecordTurn(t Turn) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	_, err := db.conn.Exec(
		"INSERT INTO turns (run_id, seq, turn, total_turns, player_num, raw_line, response) VALUES (?, ?, ?, ?, ?, ?, ?)",
		t.RunID, t.Seq, t.Turn, t.TotalTurns, t.PlayerNum, t.RawLine, t.Response,
	)
	if err != nil {
		return fmt.Errorf("insert turn %d: %w", t.Seq, err)
	}
	return nil
}

// Runs lists all recorded runs, oldest first, with their turn counts.
func (db *DB) Runs() ([]Run, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	rows, err := db.conn.Query(`
		SELECT r.id, r.strategy, r.started_at, COUNT(t.run_id)
		FROM runs r LEFT JOIN turns t ON t.run_id = r.id
		GROUP BY r.id ORDER BY r.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Strategy, &r.StartedAt, &r.Turns); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunTurns returns every exchange of a run in play order.
func (db *DB) RunTurns(runID int64) ([]Turn, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	rows, err := db.conn.Query(
		"SELECT run_id, seq, turn, total_turns, player_num, raw_line, response FROM turns WHERE run_id = ? ORDER BY seq",
		runID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var turns []Turn
	for rows.Next() {
		var t Turn
		if err := rows.Scan(&t.RunID, &t.Seq, &t.Turn, &t.TotalTurns, &t.PlayerNum, &t.RawLine, &t.Response); err != nil {
			return nil, err
		}
		turns = append(turns, t)
	}
	return turns, rows.Err()
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.conn.Close()
}
