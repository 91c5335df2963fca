package store

import (
	"strings"

	"pcs-pro/internal/catalog"
	"pcs-pro/internal/model"
)

// RowRef addresses one item row by position plus identity. Positional
// indices are rendering artifacts and are invalidated by any structural
// mutation; every operation that changes ordering or cardinality must
// correct outstanding refs through a RefSet. Callers re-resolve by ID
// whenever a ref survives a render cycle.
type RowRef struct {
	RoomIndex int
	ItemIndex int
	ItemID    string
}

// RefSet carries the positional references the presentation layer holds
// open across a mutation (the label panel target and the action-menu
// target). Operations shift or invalidate them in place; a nil RefSet
// or nil slot is fine.
type RefSet struct {
	LabelPanel *RowRef
	Menu       *RowRef
}

func (rs *RefSet) each(f func(ref *RowRef) (keep bool)) {
	if rs == nil {
		return
	}
	if rs.LabelPanel != nil && !f(rs.LabelPanel) {
		rs.LabelPanel = nil
	}
	if rs.Menu != nil && !f(rs.Menu) {
		rs.Menu = nil
	}
}

// AddRoom appends a new empty room. Blank names are a silent no-op.
// Appending disturbs no existing positional refs.
func (db *DB) AddRoom(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	db.Rooms = append(db.Rooms, model.Room{Name: name, Items: []model.Item{}})
	db.Recalculate()
}

// DeleteRoom removes the room and everything in it. Confirmation is a
// caller-boundary precondition; by the time this runs the user said yes.
// Refs into the deleted room are invalidated; refs into later rooms
// shift down by one.
func (db *DB) DeleteRoom(roomIndex int, refs *RefSet) {
	if roomIndex < 0 || roomIndex >= len(db.Rooms) {
		return
	}
	db.Rooms = append(db.Rooms[:roomIndex], db.Rooms[roomIndex+1:]...)
	refs.each(func(ref *RowRef) bool {
		switch {
		case ref.RoomIndex == roomIndex:
			return false
		case ref.RoomIndex > roomIndex:
			ref.RoomIndex--
		}
		return true
	})
	db.Recalculate()
}

// RenameRoom renames a room and propagates the new name into each
// contained item's label settings, but only where the stored room field
// still equals the old name. A user override stays put.
func (db *DB) RenameRoom(roomIndex int, newName string) {
	newName = strings.TrimSpace(newName)
	if newName == "" || roomIndex < 0 || roomIndex >= len(db.Rooms) {
		return
	}
	room := &db.Rooms[roomIndex]
	oldName := room.Name
	room.Name = newName
	for i := range room.Items {
		ls := room.Items[i].LabelSettings
		if ls != nil && ls.Room == oldName {
			ls.Room = newName
		}
	}
	db.Recalculate()
}

// AddItem appends an item to a room. Blank labels and bad indices are
// silent no-ops. The weight starts at the category default; category ""
// means "infer from the label".
func (db *DB) AddItem(roomIndex int, label, category, notes string) {
	label = strings.TrimSpace(label)
	if label == "" || roomIndex < 0 || roomIndex >= len(db.Rooms) {
		return
	}
	if strings.TrimSpace(category) == "" {
		category = catalog.InferCategory(label)
	}
	cat := catalog.Lookup(category)
	it := model.Item{
		ID:                db.NextID("item"),
		Label:             label,
		Category:          cat.Label,
		Weight:            cat.DefaultWeight,
		IncludeInEstimate: true,
		Notes:             notes,
		QRValue:           NewQRValue(),
	}
	db.Rooms[roomIndex].Items = append(db.Rooms[roomIndex].Items, it)
	db.Recalculate()
}

// SetItemCategory changes the category and resets the weight to the new
// category's default. An explicit user weight does not survive a
// category change; that is the specified behavior, not an oversight.
func (db *DB) SetItemCategory(roomIndex, itemIndex int, category string) {
	it := db.itemAt(roomIndex, itemIndex)
	if it == nil {
		return
	}
	cat := catalog.Lookup(category)
	it.Category = cat.Label
	it.Weight = cat.DefaultWeight
	db.Recalculate()
}

// SetItemWeight runs raw input through weight resolution: a finite
// positive number wins, anything else falls back to the category default.
func (db *DB) SetItemWeight(roomIndex, itemIndex int, raw string) {
	it := db.itemAt(roomIndex, itemIndex)
	if it == nil {
		return
	}
	it.Weight = catalog.ResolveWeightString(raw, catalog.Lookup(it.Category))
	db.Recalculate()
}

func (db *DB) SetItemInclude(roomIndex, itemIndex int, include bool) {
	it := db.itemAt(roomIndex, itemIndex)
	if it == nil {
		return
	}
	it.IncludeInEstimate = include
	db.Recalculate()
}

func (db *DB) SetItemHighValue(roomIndex, itemIndex int, high bool) {
	it := db.itemAt(roomIndex, itemIndex)
	if it == nil {
		return
	}
	it.IsHighValue = high
	db.Recalculate()
}

// RenameItem relabels an item; the label-settings title follows only if
// it still equals the old label (same override rule as room renames).
func (db *DB) RenameItem(roomIndex, itemIndex int, newLabel string) {
	newLabel = strings.TrimSpace(newLabel)
	if newLabel == "" {
		return
	}
	it := db.itemAt(roomIndex, itemIndex)
	if it == nil {
		return
	}
	oldLabel := it.Label
	it.Label = newLabel
	if it.LabelSettings != nil && it.LabelSettings.Title == oldLabel {
		it.LabelSettings.Title = newLabel
	}
	db.Recalculate()
}

// MoveItem removes the item from the source room and appends it to the
// destination. Same-room moves are a no-op. An open ref on the moved
// item follows it; refs on later items in the source room shift down.
func (db *DB) MoveItem(srcRoomIndex, itemIndex, dstRoomIndex int, refs *RefSet) {
	if srcRoomIndex == dstRoomIndex {
		return
	}
	if srcRoomIndex < 0 || srcRoomIndex >= len(db.Rooms) ||
		dstRoomIndex < 0 || dstRoomIndex >= len(db.Rooms) {
		return
	}
	src := &db.Rooms[srcRoomIndex]
	if itemIndex < 0 || itemIndex >= len(src.Items) {
		return
	}

	it := src.Items[itemIndex]
	src.Items = append(src.Items[:itemIndex], src.Items[itemIndex+1:]...)

	dst := &db.Rooms[dstRoomIndex]
	if it.LabelSettings != nil && it.LabelSettings.Room == src.Name {
		it.LabelSettings.Room = dst.Name
	}
	dst.Items = append(dst.Items, it)

	refs.each(func(ref *RowRef) bool {
		if ref.RoomIndex != srcRoomIndex {
			return true
		}
		switch {
		case ref.ItemIndex == itemIndex:
			ref.RoomIndex = dstRoomIndex
			ref.ItemIndex = len(dst.Items) - 1
		case ref.ItemIndex > itemIndex:
			ref.ItemIndex--
		}
		return true
	})
	db.Recalculate()
}

// DeleteItem removes one item. Confirmation is a caller-boundary
// precondition. A ref on the deleted row is invalidated; refs on later
// rows in the same room shift down by one and keep their identity.
func (db *DB) DeleteItem(roomIndex, itemIndex int, refs *RefSet) {
	if roomIndex < 0 || roomIndex >= len(db.Rooms) {
		return
	}
	room := &db.Rooms[roomIndex]
	if itemIndex < 0 || itemIndex >= len(room.Items) {
		return
	}
	room.Items = append(room.Items[:itemIndex], room.Items[itemIndex+1:]...)
	refs.each(func(ref *RowRef) bool {
		if ref.RoomIndex != roomIndex {
			return true
		}
		switch {
		case ref.ItemIndex == itemIndex:
			return false
		case ref.ItemIndex > itemIndex:
			ref.ItemIndex--
		}
		return true
	})
	db.Recalculate()
}

func (db *DB) itemAt(roomIndex, itemIndex int) *model.Item {
	if roomIndex < 0 || roomIndex >= len(db.Rooms) {
		return nil
	}
	room := &db.Rooms[roomIndex]
	if itemIndex < 0 || itemIndex >= len(room.Items) {
		return nil
	}
	return &room.Items[itemIndex]
}
