package editmode

import "testing"

func TestOpenPanel_Exclusive(t *testing.T) {
	t.Parallel()

	var c Coordinator
	c.OpenPanel(PanelItemMove, "item-a")
	c.OpenPanel(PanelItemRename, "item-b")

	kind, target := c.Panel()
	if kind != PanelItemRename || target != "item-b" {
		t.Fatalf("second open must win: %v %q", kind, target)
	}
	if c.ItemMode("item-a") != PanelNone {
		t.Fatalf("first item's panel must be closed")
	}
	if c.ItemMode("item-b") != PanelItemRename {
		t.Fatalf("second item's panel must be open")
	}
}

func TestItemAndRoomPanels_MutuallyExclusive(t *testing.T) {
	t.Parallel()

	var c Coordinator
	c.OpenPanel(PanelItemMove, "item-a")
	c.OpenPanel(PanelRoomRename, "Garage")

	if c.ItemMode("item-a") != PanelNone {
		t.Fatalf("room panel must close the item panel")
	}
	if !c.RoomRenameOpen("Garage") {
		t.Fatalf("room rename panel should be open")
	}
	if c.RoomRenameOpen("Attic") {
		t.Fatalf("wrong room reports an open panel")
	}
}

func TestMenus_SingleSlotAcrossKinds(t *testing.T) {
	t.Parallel()

	var c Coordinator
	c.OpenItemMenu("item-a")
	c.OpenRoomMenu("Garage")
	if c.ItemMenuOpen("item-a") {
		t.Fatalf("room menu must close the item menu")
	}
	if !c.RoomMenuOpen("Garage") {
		t.Fatalf("room menu should be open")
	}

	c.OpenItemMenu("item-b")
	if c.RoomMenuOpen("Garage") || !c.ItemMenuOpen("item-b") {
		t.Fatalf("item menu must close the room menu")
	}
}

func TestMenusAndPanels_MutuallyExclusive(t *testing.T) {
	t.Parallel()

	var c Coordinator
	c.OpenPanel(PanelItemRename, "item-a")
	c.OpenItemMenu("item-b")
	if kind, _ := c.Panel(); kind != PanelNone {
		t.Fatalf("opening a menu must close the open panel")
	}

	c.OpenPanel(PanelItemMove, "item-c")
	if c.ItemMenuOpen("item-b") {
		t.Fatalf("opening a panel must close the open menu")
	}
}

func TestToggleAndCloseAll(t *testing.T) {
	t.Parallel()

	var c Coordinator
	c.ToggleItemMenu("item-a")
	if !c.ItemMenuOpen("item-a") {
		t.Fatalf("toggle should open")
	}
	c.ToggleItemMenu("item-a")
	if c.ItemMenuOpen("item-a") {
		t.Fatalf("second toggle should close")
	}

	c.OpenPanel(PanelItemMove, "item-a")
	c.CloseAll()
	if kind, _ := c.Panel(); kind != PanelNone {
		t.Fatalf("CloseAll must clear the panel")
	}
}

func TestForget(t *testing.T) {
	t.Parallel()

	var c Coordinator
	c.OpenPanel(PanelItemRename, "item-a")
	c.Forget("item-a")
	if kind, _ := c.Panel(); kind != PanelNone {
		t.Fatalf("Forget must drop panel state for a deleted row")
	}

	c.OpenRoomMenu("Garage")
	c.Forget("Garage")
	if c.RoomMenuOpen("Garage") {
		t.Fatalf("Forget must drop menu state for a deleted room")
	}
}

func TestFreshCoordinator_AllNone(t *testing.T) {
	t.Parallel()

	var c Coordinator
	if kind, _ := c.Panel(); kind != PanelNone {
		t.Fatalf("fresh coordinator must start at none")
	}
	if c.ItemMenuOpen("item-a") || c.RoomMenuOpen("Garage") {
		t.Fatalf("fresh coordinator must have no open menus")
	}
}
