package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	s := Store{Dir: t.TempDir()}
	db := emptyDB()
	db.AddRoom("Living Room")
	db.AddRoom("Garage")
	db.AddItem(0, "Leather Couch", "", "worn arm")
	db.AddItem(0, "Bankers Box", "", "")
	db.AddItem(1, "Shop Fridge", "", "")
	db.SetItemWeight(0, 1, "22")
	db.SetItemInclude(1, 0, false)
	db.SetItemHighValue(0, 0, true)
	db.SetChecked("orders", true)
	db.AddEvent("2026-05-01", "09:30", "Movers arrive", "")

	if err := s.Save(db); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got.Recalculate()

	if !reflect.DeepEqual(db.Rooms, got.Rooms) {
		t.Fatalf("rooms mismatch:\nwant: %#v\ngot:  %#v", db.Rooms, got.Rooms)
	}
	if got.TotalWeight != db.TotalWeight {
		t.Fatalf("total weight %v != %v after round trip", got.TotalWeight, db.TotalWeight)
	}
	if !got.Checked("orders") {
		t.Fatalf("checklist lost in round trip")
	}
	if len(got.Events) != 1 || got.Events[0].Title != "Movers arrive" {
		t.Fatalf("events lost in round trip: %#v", got.Events)
	}
}

func TestSerializedForm_HasNoEditState(t *testing.T) {
	t.Parallel()

	db := emptyDB()
	db.AddRoom("A")
	db.AddItem(0, "Box", "Moving Box", "")

	raw, err := json.Marshal(db)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, forbidden := range []string{"editMode", "activeMenu", "panel"} {
		if strings.Contains(string(raw), forbidden) {
			t.Fatalf("serialized state must not carry transient focus state; found %q in %s", forbidden, raw)
		}
	}
}

func TestLoad_CorruptRowYieldsEmptyStateAndStarts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := Store{Dir: dir}
	db := emptyDB()
	db.AddRoom("A")
	db.AddItem(0, "Box", "Moving Box", "")
	if err := s.Save(db); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Corrupt the stored room JSON directly.
	raw, err := s.openSQLite(context.Background())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := raw.Exec(`UPDATE rooms SET json = '{"name": broken'`); err != nil {
		t.Fatalf("corrupt: %v", err)
	}
	raw.Close()

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load must not fail on corrupt state; got %v", err)
	}
	if len(got.Rooms) != 0 {
		t.Fatalf("corrupt state should load as empty inventory; got %#v", got.Rooms)
	}
}

func TestNormalize_PatchesLegacyRecords(t *testing.T) {
	t.Parallel()

	// Legacy record: no include flag, no qr value, zero weight, no
	// category, undersized label settings.
	legacy := []byte(`{
		"name": "Den",
		"items": [
			{"id": "box-1", "label": "Large Moving Box", "weight": 0,
			 "labelSettings": {"title": "Large Moving Box", "room": "Den", "weight": "", "notes": "", "titleSize": 0, "bodySize": 0}},
			{"label": "Oak Dresser", "weight": -3}
		]
	}`)
	room, err := decodeRoom(legacy)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	db := emptyDB()
	db.Rooms = append(db.Rooms, room)
	if !normalize(db) {
		t.Fatalf("normalize should report changes for legacy data")
	}

	it := db.Rooms[0].Items[0]
	if !it.IncludeInEstimate {
		t.Fatalf("missing include flag must default true")
	}
	if it.Category != "Moving Box" || it.Weight != 30 {
		t.Fatalf("category/weight defaults wrong: %q %v", it.Category, it.Weight)
	}
	if it.QRValue != "box-1" {
		t.Fatalf("legacy qr backfill must reuse the id; got %q", it.QRValue)
	}
	if it.LabelSettings.TitleSize <= 0 || it.LabelSettings.BodySize <= 0 {
		t.Fatalf("label sizes not patched: %#v", it.LabelSettings)
	}

	it2 := db.Rooms[0].Items[1]
	if it2.ID == "" || it2.Category != "Dresser" || it2.Weight != 120 {
		t.Fatalf("second legacy item not normalized: %#v", it2)
	}

	// Idempotent.
	if normalize(db) {
		t.Fatalf("normalize must be idempotent")
	}
}

func TestDiscoverDir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	ws := filepath.Join(root, ".pcs")
	if err := os.MkdirAll(ws, 0o755); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, ok := DiscoverDir(nested)
	if !ok || got != ws {
		t.Fatalf("DiscoverDir = %q, %v; want %q", got, ok, ws)
	}
	if _, ok := DiscoverDir(filepath.Join(string(filepath.Separator), "nonexistent-root-path")); ok {
		t.Fatalf("DiscoverDir should miss outside a workspace")
	}
}
