package store

import (
	"strings"

	"pcs-pro/internal/model"
)

// ResolveByCode maps a scanned or hand-entered code back to its owning
// room and item. Ids and QR payloads are both accepted; ids are unique
// so the first match is authoritative. A miss is a normal outcome
// (ok=false), not an error — the caller renders "not found".
func (db *DB) ResolveByCode(code string) (room *model.Room, item *model.Item, ref RowRef, ok bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil, RowRef{}, false
	}
	for r := range db.Rooms {
		for i := range db.Rooms[r].Items {
			it := &db.Rooms[r].Items[i]
			if it.ID == code || it.QRValue == code {
				return &db.Rooms[r], it, RowRef{RoomIndex: r, ItemIndex: i, ItemID: it.ID}, true
			}
		}
	}
	return nil, nil, RowRef{}, false
}
