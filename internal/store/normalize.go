package store

import (
	"strings"

	"pcs-pro/internal/catalog"
	"pcs-pro/internal/model"
)

// normalize patches every loaded record into canonical shape. It runs on
// each load as a versionless migration step, so schema additions
// retroactively populate older data without a separate migration. It is
// idempotent; normalize(normalize(db)) changes nothing.
func normalize(db *DB) bool {
	changed := false

	if db.Version == 0 {
		db.Version = 1
		changed = true
	}
	if db.Rooms == nil {
		db.Rooms = []model.Room{}
		changed = true
	}
	if db.Checklist == nil {
		db.Checklist = map[string]bool{}
		changed = true
	}
	if db.Events == nil {
		db.Events = []model.MoveEvent{}
		changed = true
	}

	for r := range db.Rooms {
		room := &db.Rooms[r]
		if room.Items == nil {
			room.Items = []model.Item{}
			changed = true
		}
		for i := range room.Items {
			if normalizeItem(db, &room.Items[i]) {
				changed = true
			}
		}
	}
	return changed
}

func normalizeItem(db *DB, it *model.Item) bool {
	changed := false

	if strings.TrimSpace(it.Category) == "" {
		it.Category = catalog.InferCategory(it.Label)
		changed = true
	}
	cat := catalog.Lookup(it.Category)
	if w := catalog.ResolveWeight(it.Weight, cat); w != it.Weight {
		it.Weight = w
		changed = true
	}
	if strings.TrimSpace(it.ID) == "" {
		it.ID = db.NextID("item")
		changed = true
	}
	// Legacy rows used the id itself as the scan payload. Backfill with
	// the id (not a fresh UUID) so already-printed labels keep resolving.
	if strings.TrimSpace(it.QRValue) == "" {
		it.QRValue = it.ID
		changed = true
	}
	if it.LabelSettings != nil {
		if it.LabelSettings.TitleSize <= 0 {
			it.LabelSettings.TitleSize = model.DefaultTitleSize
			changed = true
		}
		if it.LabelSettings.BodySize <= 0 {
			it.LabelSettings.BodySize = model.DefaultBodySize
			changed = true
		}
	}
	return changed
}
