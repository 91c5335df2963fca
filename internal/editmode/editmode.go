// Package editmode owns the transient edit focus for inventory rows:
// which contextual panel (move/rename) is open and which action menu is
// showing. At most one panel and at most one menu exist at a time, and
// they are mutually exclusive. None of this state is ever persisted; a
// fresh Coordinator means every row starts at none, which is exactly the
// reload contract.
package editmode

type PanelKind int

const (
	PanelNone PanelKind = iota
	PanelItemMove
	PanelItemRename
	PanelRoomRename
)

func (k PanelKind) String() string {
	switch k {
	case PanelItemMove:
		return "move"
	case PanelItemRename:
		return "rename"
	case PanelRoomRename:
		return "room-rename"
	default:
		return "none"
	}
}

// Coordinator is a single-slot holder for the open panel and the open
// menu. Targets are identities (item id, room name), never positional
// indices; positions are re-resolved at render time.
type Coordinator struct {
	panelKind   PanelKind
	panelTarget string

	itemMenuID   string
	roomMenuName string
}

// OpenPanel opens the panel for the target and closes everything else:
// any other panel of either kind, and any open menu.
func (c *Coordinator) OpenPanel(kind PanelKind, targetID string) {
	if kind == PanelNone || targetID == "" {
		c.ClosePanel()
		return
	}
	c.panelKind = kind
	c.panelTarget = targetID
	c.itemMenuID = ""
	c.roomMenuName = ""
}

// ClosePanel returns the open panel (if any) to none. Both cancel and
// confirm land here; the mutation itself belongs to the store.
func (c *Coordinator) ClosePanel() {
	c.panelKind = PanelNone
	c.panelTarget = ""
}

// Panel reports the open panel and its target identity.
func (c *Coordinator) Panel() (PanelKind, string) {
	return c.panelKind, c.panelTarget
}

// ItemMode reports the row state for an item: move, rename, or none.
func (c *Coordinator) ItemMode(itemID string) PanelKind {
	if itemID != "" && c.panelTarget == itemID &&
		(c.panelKind == PanelItemMove || c.panelKind == PanelItemRename) {
		return c.panelKind
	}
	return PanelNone
}

// RoomRenameOpen reports whether the rename panel is open for a room.
func (c *Coordinator) RoomRenameOpen(roomName string) bool {
	return c.panelKind == PanelRoomRename && roomName != "" && c.panelTarget == roomName
}

// OpenItemMenu shows the action menu for one item, closing any other
// menu of either kind and any open panel.
func (c *Coordinator) OpenItemMenu(itemID string) {
	if itemID == "" {
		return
	}
	c.ClosePanel()
	c.itemMenuID = itemID
	c.roomMenuName = ""
}

// OpenRoomMenu shows the action menu for one room, closing any other
// menu of either kind and any open panel.
func (c *Coordinator) OpenRoomMenu(roomName string) {
	if roomName == "" {
		return
	}
	c.ClosePanel()
	c.roomMenuName = roomName
	c.itemMenuID = ""
}

// ToggleItemMenu opens the menu, or closes it when it is already open
// for the same item.
func (c *Coordinator) ToggleItemMenu(itemID string) {
	if c.itemMenuID == itemID && itemID != "" {
		c.CloseMenus()
		return
	}
	c.OpenItemMenu(itemID)
}

func (c *Coordinator) ToggleRoomMenu(roomName string) {
	if c.roomMenuName == roomName && roomName != "" {
		c.CloseMenus()
		return
	}
	c.OpenRoomMenu(roomName)
}

// ItemMenuTarget reports which item's menu is open ("" for none).
func (c *Coordinator) ItemMenuTarget() string { return c.itemMenuID }

// RoomMenuTarget reports which room's menu is open ("" for none).
func (c *Coordinator) RoomMenuTarget() string { return c.roomMenuName }

func (c *Coordinator) ItemMenuOpen(itemID string) bool {
	return itemID != "" && c.itemMenuID == itemID
}

func (c *Coordinator) RoomMenuOpen(roomName string) bool {
	return roomName != "" && c.roomMenuName == roomName
}

func (c *Coordinator) CloseMenus() {
	c.itemMenuID = ""
	c.roomMenuName = ""
}

// CloseAll clears every panel and menu; this is the outside-click path.
func (c *Coordinator) CloseAll() {
	c.ClosePanel()
	c.CloseMenus()
}

// Forget drops any panel/menu state referencing an identity that no
// longer exists (deleted item, deleted or renamed room).
func (c *Coordinator) Forget(targetID string) {
	if targetID == "" {
		return
	}
	if c.panelTarget == targetID {
		c.ClosePanel()
	}
	if c.itemMenuID == targetID {
		c.itemMenuID = ""
	}
	if c.roomMenuName == targetID {
		c.roomMenuName = ""
	}
}
