package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"pcs-pro/internal/editmode"
	"pcs-pro/internal/store"
)

func TestNewAppModel_RestoresLastTUIState(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	db := testDB()

	s := store.Store{Dir: dir}
	if err := s.SaveTUIState(&store.TUIState{
		Version:       1,
		View:          "room",
		SelectedRoom:  "Garage",
		RecentItemIDs: []string{"item-aaaa0001"},
	}); err != nil {
		t.Fatalf("seed SaveTUIState: %v", err)
	}

	m := newAppModel(dir, db)
	if m.view != viewRoom {
		t.Fatalf("expected room view; got %v", m.view)
	}
	if m.selectedRoom != "Garage" {
		t.Fatalf("selectedRoom = %q; want Garage", m.selectedRoom)
	}
	if len(m.recentItemIDs) != 1 || m.recentItemIDs[0] != "item-aaaa0001" {
		t.Fatalf("recent ids not restored: %v", m.recentItemIDs)
	}
}

func TestNewAppModel_StaleRoomFallsBackToRoomsView(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	db := testDB()

	s := store.Store{Dir: dir}
	if err := s.SaveTUIState(&store.TUIState{
		Version:      1,
		View:         "room",
		SelectedRoom: "Razed Wing",
	}); err != nil {
		t.Fatalf("seed SaveTUIState: %v", err)
	}

	m := newAppModel(dir, db)
	if m.view != viewRooms {
		t.Fatalf("a room that no longer exists must not restore the room view; got %v", m.view)
	}
	if m.selectedRoom != "" {
		t.Fatalf("selectedRoom should reset; got %q", m.selectedRoom)
	}
}

func TestQuit_PersistsViewAndSelection(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	db := testDB()

	m := newAppModel(dir, db)
	m = drive(t, m, tea.WindowSizeMsg{Width: 100, Height: 40}, key("enter"))
	nm, cmd := m.Update(key("q"))
	m = nm.(appModel)
	if cmd == nil {
		t.Fatalf("q should quit")
	}

	st, err := store.Store{Dir: dir}.LoadTUIState()
	if err != nil {
		t.Fatalf("LoadTUIState: %v", err)
	}
	if st.View != "room" || st.SelectedRoom != "Living Room" {
		t.Fatalf("persisted state = %+v", st)
	}
}

func TestEditFocus_NeverRestoredAcrossLaunch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	db := testDB()

	m := newAppModel(dir, db)
	m = drive(t, m, tea.WindowSizeMsg{Width: 100, Height: 40}, key("enter"), key("space"))
	if m.edit.ItemMenuTarget() == "" {
		t.Fatalf("menu should be open before relaunch")
	}
	m.persistTUIState()

	fresh := newAppModel(dir, db)
	if fresh.edit.ItemMenuTarget() != "" {
		t.Fatalf("menus must reset to none on launch")
	}
	if kind, _ := fresh.edit.Panel(); kind != editmode.PanelNone {
		t.Fatalf("panels must reset to none on launch")
	}
}
