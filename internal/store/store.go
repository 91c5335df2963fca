package store

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"

	"pcs-pro/internal/model"
)

// DB is the full in-memory workspace state. Rooms own their items; the
// derived weights are recomputed by Recalculate and never trusted from
// disk. Edit-mode/menu focus state is deliberately absent here: it is
// transient UI focus owned by internal/editmode and is never persisted.
type DB struct {
	Version     int               `json:"version"`
	Rooms       []model.Room      `json:"rooms"`
	TotalWeight float64           `json:"totalWeight"`
	Checklist   map[string]bool   `json:"checklist,omitempty"`
	Events      []model.MoveEvent `json:"events,omitempty"`
}

type Store struct {
	Dir string
}

// DiscoverDir walks upward from start looking for an existing `.pcs`
// workspace dir.
func DiscoverDir(start string) (string, bool) {
	dir := start
	for {
		candidate := filepath.Join(dir, ".pcs")
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func DefaultDir() (string, error) {
	if env := strings.TrimSpace(os.Getenv("PCS_DIR")); env != "" {
		return env, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if found, ok := DiscoverDir(cwd); ok {
		return found, nil
	}
	return filepath.Join(cwd, ".pcs"), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

// Load reads the workspace state from SQLite and normalizes it. A
// corrupt store is replaced with an empty, well-formed state (with a
// warning); startup never fails on bad persisted data.
func (s Store) Load() (*DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	db, err := s.LoadSQLite(context.Background())
	if err != nil {
		return nil, err
	}
	normalize(db)
	db.Recalculate()
	return db, nil
}

// Save persists the state. Derived weights are recomputed first so the
// serialized record is never partially stale.
func (s Store) Save(db *DB) error {
	if err := s.Ensure(); err != nil {
		return err
	}
	db.Recalculate()
	return s.SaveSQLite(context.Background(), db)
}

func emptyDB() *DB {
	return &DB{
		Version:   1,
		Rooms:     []model.Room{},
		Checklist: map[string]bool{},
		Events:    []model.MoveEvent{},
	}
}

// Recalculate recomputes every room weight and the total in a single
// pass. Deterministic and idempotent; every mutating operation ends by
// calling it.
func (db *DB) Recalculate() {
	total := 0.0
	for i := range db.Rooms {
		sum := 0.0
		for _, it := range db.Rooms[i].Items {
			if it.IncludeInEstimate {
				sum += it.Weight
			}
		}
		db.Rooms[i].RoomWeight = math.Round(sum)
		total += db.Rooms[i].RoomWeight
	}
	db.TotalWeight = total
}

func (db *DB) FindRoom(name string) (*model.Room, int, bool) {
	for i := range db.Rooms {
		if db.Rooms[i].Name == name {
			return &db.Rooms[i], i, true
		}
	}
	return nil, -1, false
}

func (db *DB) FindItem(id string) (*model.Item, bool) {
	for r := range db.Rooms {
		for i := range db.Rooms[r].Items {
			if db.Rooms[r].Items[i].ID == id {
				return &db.Rooms[r].Items[i], true
			}
		}
	}
	return nil, false
}

func (db *DB) RoomNames() []string {
	names := make([]string, 0, len(db.Rooms))
	for _, r := range db.Rooms {
		names = append(names, r.Name)
	}
	return names
}
