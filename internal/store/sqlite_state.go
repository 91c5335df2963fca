package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"pcs-pro/internal/model"

	_ "modernc.org/sqlite"
)

const sqliteFileName = "state.sqlite"

func (s Store) sqlitePath() string {
	return filepath.Join(s.Dir, sqliteFileName)
}

func (s Store) openSQLite(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.sqlitePath())
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers; busy_timeout avoids
	// "database is locked" flakiness when a CLI and the TUI overlap.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrateSQLiteState(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrateSQLiteState(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS state_meta (
			k TEXT PRIMARY KEY,
			v TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS rooms (
			position INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			room_weight REAL NOT NULL,
			json TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS checklist (
			task_id TEXT PRIMARY KEY,
			done INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS events (
			id TEXT PRIMARY KEY,
			date TEXT NOT NULL,
			json TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_events_date ON events(date);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

// LoadSQLite reads the full state. A malformed row means the persisted
// state is corrupt; per the error contract the whole state is replaced
// with an empty well-formed one (with a stderr warning) rather than
// refusing to start.
func (s Store) LoadSQLite(ctx context.Context) (*DB, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	out := emptyDB()

	var version string
	_ = db.QueryRowContext(ctx, `SELECT v FROM state_meta WHERE k = ?`, "version").Scan(&version)
	if n, err := strconv.Atoi(strings.TrimSpace(version)); err == nil && n > 0 {
		out.Version = n
	}

	rooms, corrupt := loadRooms(ctx, db)
	if corrupt != nil {
		fmt.Fprintf(os.Stderr, "warning: corrupt inventory state (%v); starting with an empty inventory\n", corrupt)
		return emptyDB(), nil
	}
	out.Rooms = rooms

	rows, err := db.QueryContext(ctx, `SELECT task_id, done FROM checklist`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var id string
		var done int
		if err := rows.Scan(&id, &done); err != nil {
			rows.Close()
			return nil, err
		}
		out.Checklist[id] = done != 0
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	evRows, err := db.QueryContext(ctx, `SELECT json FROM events ORDER BY date, id`)
	if err != nil {
		return nil, err
	}
	defer evRows.Close()
	for evRows.Next() {
		var js string
		if err := evRows.Scan(&js); err != nil {
			return nil, err
		}
		var ev model.MoveEvent
		if err := json.Unmarshal([]byte(js), &ev); err != nil {
			fmt.Fprintf(os.Stderr, "warning: dropping corrupt calendar event: %v\n", err)
			continue
		}
		out.Events = append(out.Events, ev)
	}
	if err := evRows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func loadRooms(ctx context.Context, db *sql.DB) ([]model.Room, error) {
	rows, err := db.QueryContext(ctx, `SELECT json FROM rooms ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Room{}
	for rows.Next() {
		var js string
		if err := rows.Scan(&js); err != nil {
			return nil, err
		}
		room, err := decodeRoom([]byte(js))
		if err != nil {
			return nil, err
		}
		out = append(out, room)
	}
	return out, rows.Err()
}

// SaveSQLite writes the full state in one transaction (replace-all).
// The inventory is small enough that incremental writes buy nothing.
func (s Store) SaveSQLite(ctx context.Context, st *DB) error {
	if st == nil {
		return errors.New("nil db")
	}
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO state_meta(k, v) VALUES(?, ?)`, "version", strconv.Itoa(st.Version)); err != nil {
		return err
	}

	for _, t := range []string{"rooms", "checklist", "events"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+t); err != nil {
			return err
		}
	}

	for pos, room := range st.Rooms {
		raw, err := json.Marshal(room)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO rooms(position, name, room_weight, json) VALUES(?, ?, ?, ?)`,
			pos, room.Name, room.RoomWeight, string(raw)); err != nil {
			return err
		}
	}
	for id, done := range st.Checklist {
		if _, err := tx.ExecContext(ctx, `INSERT INTO checklist(task_id, done) VALUES(?, ?)`, id, boolToInt(done)); err != nil {
			return err
		}
	}
	for _, ev := range st.Events {
		raw, err := json.Marshal(ev)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO events(id, date, json) VALUES(?, ?, ?)`, ev.ID, ev.Date, string(raw)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
