package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pcs-pro/internal/editmode"
	"pcs-pro/internal/label"
	"pcs-pro/internal/model"
	"pcs-pro/internal/store"
)

type view int

const (
	viewRooms view = iota
	viewRoom
	viewCalendar
	viewChecklist
)

func (v view) name() string {
	switch v {
	case viewRoom:
		return "room"
	case viewCalendar:
		return "calendar"
	case viewChecklist:
		return "checklist"
	default:
		return "rooms"
	}
}

func viewByName(s string) view {
	switch s {
	case "room":
		return viewRoom
	case "calendar":
		return viewCalendar
	case "checklist":
		return viewChecklist
	default:
		return viewRooms
	}
}

type inputPurpose int

const (
	inputNone inputPurpose = iota
	inputAddRoom
	inputAddItem
	inputRenameRoom
	inputRenameItem
	inputSetWeight
)

type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmDeleteRoom
	confirmDeleteItem
)

type appModel struct {
	dir   string
	store store.Store
	db    *store.DB

	width  int
	height int

	view view

	roomsList    list.Model
	itemsList    list.Model
	checklist    list.Model
	calendarList list.Model
	movePick     list.Model

	// edit owns which contextual panel and which row menu is open.
	// Targets are identities; positions are re-resolved every render.
	edit editmode.Coordinator

	selectedRoom  string
	recentItemIDs []string

	input        textinput.Model
	inputPurpose inputPurpose
	inputTarget  string
	// inputRoomIndex pins the room row a rename was opened on. Names
	// are not unique; the index stays valid because no other mutation
	// can happen while the input modal is open.
	inputRoomIndex int

	confirmKind      confirmKind
	confirmFocus     confirmModalFocus
	confirmTarget    string
	confirmRoomIndex int

	labelModalItemID string

	statusMsg string
}

func newAppModel(dir string, db *store.DB) appModel {
	s := store.Store{Dir: dir}
	m := appModel{
		dir:   dir,
		store: s,
		db:    db,
		view:  viewRooms,
	}

	m.roomsList = newList([]list.Item{})
	m.itemsList = newList([]list.Item{})
	m.checklist = newList([]list.Item{})
	m.calendarList = newList([]list.Item{})
	m.movePick = newList([]list.Item{})
	m.checklist.SetFilteringEnabled(false)
	m.calendarList.SetFilteringEnabled(false)
	m.movePick.SetFilteringEnabled(false)

	m.input = textinput.New()
	m.input.CharLimit = 120
	m.input.Width = 40

	// Best effort: restore the last screen. Edit focus always starts
	// at none.
	if st, err := s.LoadTUIState(); err == nil && st != nil {
		m.recentItemIDs = st.RecentItemIDs
		if _, _, ok := db.FindRoom(st.SelectedRoom); ok {
			m.selectedRoom = st.SelectedRoom
		}
		restored := viewByName(st.View)
		if restored == viewRoom && m.selectedRoom == "" {
			restored = viewRooms
		}
		m.view = restored
	}

	m.refreshRooms()
	m.refreshItems()
	m.refreshChecklist()
	m.refreshCalendar()
	return m
}

func (m appModel) Init() tea.Cmd { return textinput.Blink }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.persistTUIState()
			return m, tea.Quit
		}
		if m.labelModalItemID != "" {
			m.labelModalItemID = ""
			return m, nil
		}
		if m.confirmKind != confirmNone {
			return m.updateConfirm(msg)
		}
		if m.inputPurpose != inputNone {
			return m.updateInput(msg)
		}
		if kind, _ := m.edit.Panel(); kind == editmode.PanelItemMove {
			return m.updateMovePick(msg)
		}
		return m.updateKeys(msg)
	}

	return m.updateActiveList(msg)
}

func (m appModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.persistTUIState()
		return m, tea.Quit

	case "tab":
		m.edit.CloseAll()
		switch m.view {
		case viewRooms, viewRoom:
			m.view = viewCalendar
		case viewCalendar:
			m.view = viewChecklist
		case viewChecklist:
			m.view = viewRooms
		}
		return m, nil

	case "ctrl+r":
		m.reloadFromDisk()
		return m, nil

	case "esc", "backspace":
		// Outside click: close any open menu first, then navigate back.
		if m.edit.ItemMenuTarget() != "" || m.edit.RoomMenuTarget() != "" {
			m.edit.CloseAll()
			m.refreshRooms()
			m.refreshItems()
			return m, nil
		}
		if kind, _ := m.edit.Panel(); kind != editmode.PanelNone {
			m.edit.ClosePanel()
			m.refreshRooms()
			m.refreshItems()
			return m, nil
		}
		if m.view != viewRooms {
			m.view = viewRooms
			m.refreshRooms()
			return m, nil
		}
		return m, nil
	}

	switch m.view {
	case viewRooms:
		return m.updateRoomsKeys(msg)
	case viewRoom:
		return m.updateRoomKeys(msg)
	case viewChecklist:
		return m.updateChecklistKeys(msg)
	}
	return m.updateActiveList(msg)
}

func (m appModel) updateRoomsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if it, ok := m.roomsList.SelectedItem().(roomRowItem); ok {
			m.edit.CloseAll()
			m.selectedRoom = it.room.Name
			m.view = viewRoom
			m.refreshItems()
			return m, nil
		}
	case "a":
		return m.openInput(inputAddRoom, "", "")
	case "r":
		if it, ok := m.roomsList.SelectedItem().(roomRowItem); ok {
			m.edit.OpenPanel(editmode.PanelRoomRename, it.room.Name)
			m.inputRoomIndex = it.idx
			return m.openInput(inputRenameRoom, it.room.Name, it.room.Name)
		}
	case "d":
		if it, ok := m.roomsList.SelectedItem().(roomRowItem); ok {
			m.edit.CloseAll()
			m.confirmKind = confirmDeleteRoom
			m.confirmFocus = confirmFocusCancel
			m.confirmTarget = it.room.Name
			m.confirmRoomIndex = it.idx
			return m, nil
		}
	case " ":
		if it, ok := m.roomsList.SelectedItem().(roomRowItem); ok {
			m.edit.ToggleRoomMenu(it.room.Name)
			m.refreshRooms()
			return m, nil
		}
	}
	return m.updateActiveList(msg)
}

func (m appModel) updateRoomKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	selected, haveSel := m.itemsList.SelectedItem().(itemRowItem)

	switch msg.String() {
	case "a":
		return m.openInput(inputAddItem, "", "")
	case "r":
		if haveSel {
			m.edit.OpenPanel(editmode.PanelItemRename, selected.item.ID)
			return m.openInput(inputRenameItem, selected.item.ID, selected.item.Label)
		}
	case "m":
		if haveSel {
			m.edit.OpenPanel(editmode.PanelItemMove, selected.item.ID)
			m.refreshMovePick()
			m.refreshItems()
			return m, nil
		}
	case "w":
		if haveSel {
			m.edit.CloseMenus()
			return m.openInput(inputSetWeight, selected.item.ID, "")
		}
	case "i":
		if haveSel {
			if _, _, ref, ok := m.db.ResolveByCode(selected.item.ID); ok {
				m.db.SetItemInclude(ref.RoomIndex, ref.ItemIndex, !selected.item.IncludeInEstimate)
				m.persist()
				m.refreshItems()
			}
			return m, nil
		}
	case "v":
		if haveSel {
			if _, _, ref, ok := m.db.ResolveByCode(selected.item.ID); ok {
				m.db.SetItemHighValue(ref.RoomIndex, ref.ItemIndex, !selected.item.IsHighValue)
				m.persist()
				m.refreshItems()
			}
			return m, nil
		}
	case "p":
		if haveSel {
			// First open materializes the merged label record so later
			// schema fields and overrides have a stored home.
			if room, item, _, ok := m.db.ResolveByCode(selected.item.ID); ok {
				label.Ensure(room, item)
				m.persist()
			}
			m.labelModalItemID = selected.item.ID
			m.rememberRecent(selected.item.ID)
			m.persistTUIState()
			return m, nil
		}
	case "d":
		if haveSel {
			m.edit.CloseAll()
			m.confirmKind = confirmDeleteItem
			m.confirmFocus = confirmFocusCancel
			m.confirmTarget = selected.item.ID
			m.refreshItems()
			return m, nil
		}
	case " ":
		if haveSel {
			m.edit.ToggleItemMenu(selected.item.ID)
			m.refreshItems()
			return m, nil
		}
	}
	return m.updateActiveList(msg)
}

func (m appModel) updateChecklistKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", " ", "x":
		if it, ok := m.checklist.SelectedItem().(checklistRowItem); ok {
			cursor := m.checklist.Index()
			m.db.SetChecked(it.id, !it.done)
			m.persist()
			m.refreshChecklist()
			m.checklist.Select(cursor)
			return m, nil
		}
	}
	return m.updateActiveList(msg)
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "left", "right":
		if m.confirmFocus == confirmFocusCancel {
			m.confirmFocus = confirmFocusConfirm
		} else {
			m.confirmFocus = confirmFocusCancel
		}
		return m, nil
	case "y":
		return m.commitConfirm()
	case "enter":
		if m.confirmFocus == confirmFocusConfirm {
			return m.commitConfirm()
		}
		return m.cancelConfirm()
	case "esc", "n", "ctrl+g":
		return m.cancelConfirm()
	}
	return m, nil
}

func (m appModel) cancelConfirm() (tea.Model, tea.Cmd) {
	m.confirmKind = confirmNone
	m.confirmTarget = ""
	return m, nil
}

func (m appModel) commitConfirm() (tea.Model, tea.Cmd) {
	kind := m.confirmKind
	target := m.confirmTarget
	m.confirmKind = confirmNone
	m.confirmTarget = ""

	switch kind {
	case confirmDeleteRoom:
		// The index captured when the confirm opened is the handle;
		// duplicate names make a name lookup resolve to the wrong row.
		idx := m.confirmRoomIndex
		if idx < 0 || idx >= len(m.db.Rooms) || m.db.Rooms[idx].Name != target {
			return m, nil
		}
		rs := m.openRefs()
		m.db.DeleteRoom(idx, rs)
		m.resyncEdit(rs)
		m.edit.Forget(target)
		if m.selectedRoom == target {
			m.selectedRoom = ""
			m.view = viewRooms
		}
	case confirmDeleteItem:
		_, _, ref, ok := m.db.ResolveByCode(target)
		if !ok {
			return m, nil
		}
		rs := m.openRefs()
		m.db.DeleteItem(ref.RoomIndex, ref.ItemIndex, rs)
		m.resyncEdit(rs)
		m.edit.Forget(target)
	}
	m.persist()
	m.refreshRooms()
	m.refreshItems()
	return m, nil
}

func (m appModel) openInput(purpose inputPurpose, target, initial string) (tea.Model, tea.Cmd) {
	m.inputPurpose = purpose
	m.inputTarget = target
	m.input.SetValue(initial)
	m.input.CursorEnd()
	m.input.Placeholder = inputPlaceholder(purpose)
	return m, m.input.Focus()
}

func inputPlaceholder(p inputPurpose) string {
	switch p {
	case inputAddRoom:
		return "Room name"
	case inputAddItem:
		return "Item label"
	case inputRenameRoom:
		return "New room name"
	case inputRenameItem:
		return "New item label"
	case inputSetWeight:
		return "Weight in lbs"
	}
	return ""
}

func inputTitle(p inputPurpose) string {
	switch p {
	case inputAddRoom:
		return "Add room"
	case inputAddItem:
		return "Add item"
	case inputRenameRoom:
		return "Rename room"
	case inputRenameItem:
		return "Rename item"
	case inputSetWeight:
		return "Set weight"
	}
	return ""
}

func (m appModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.commitInput()
	case "esc", "ctrl+g":
		m.inputPurpose = inputNone
		m.inputTarget = ""
		m.input.Blur()
		m.edit.ClosePanel()
		m.refreshRooms()
		m.refreshItems()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) commitInput() (tea.Model, tea.Cmd) {
	purpose := m.inputPurpose
	target := m.inputTarget
	value := m.input.Value()
	m.inputPurpose = inputNone
	m.inputTarget = ""
	m.input.Blur()
	m.input.SetValue("")

	switch purpose {
	case inputAddRoom:
		m.db.AddRoom(value)
	case inputAddItem:
		if _, idx, ok := m.db.FindRoom(m.selectedRoom); ok {
			m.db.AddItem(idx, value, "", "")
		}
	case inputRenameRoom:
		idx := m.inputRoomIndex
		if idx >= 0 && idx < len(m.db.Rooms) && m.db.Rooms[idx].Name == target {
			m.db.RenameRoom(idx, value)
			if strings.TrimSpace(value) != "" {
				if m.selectedRoom == target {
					m.selectedRoom = strings.TrimSpace(value)
				}
			}
		}
		m.edit.ClosePanel()
	case inputRenameItem:
		if _, _, ref, ok := m.db.ResolveByCode(target); ok {
			m.db.RenameItem(ref.RoomIndex, ref.ItemIndex, value)
		}
		m.edit.ClosePanel()
	case inputSetWeight:
		if _, _, ref, ok := m.db.ResolveByCode(target); ok {
			m.db.SetItemWeight(ref.RoomIndex, ref.ItemIndex, value)
		}
	}

	m.persist()
	m.refreshRooms()
	m.refreshItems()
	return m, nil
}

func (m appModel) updateMovePick(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		_, target := m.edit.Panel()
		pick, ok := m.movePick.SelectedItem().(roomPickItem)
		if !ok {
			return m, nil
		}
		if _, _, ref, found := m.db.ResolveByCode(target); found {
			rs := m.openRefs()
			m.db.MoveItem(ref.RoomIndex, ref.ItemIndex, pick.idx, rs)
			m.resyncEdit(rs)
		}
		m.edit.ClosePanel()
		m.persist()
		m.refreshRooms()
		m.refreshItems()
		return m, nil
	case "esc", "ctrl+g":
		m.edit.ClosePanel()
		m.refreshItems()
		return m, nil
	}
	var cmd tea.Cmd
	m.movePick, cmd = m.movePick.Update(msg)
	return m, cmd
}

func (m appModel) updateActiveList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case viewRooms:
		m.roomsList, cmd = m.roomsList.Update(msg)
	case viewRoom:
		m.itemsList, cmd = m.itemsList.Update(msg)
	case viewCalendar:
		m.calendarList, cmd = m.calendarList.Update(msg)
	case viewChecklist:
		m.checklist, cmd = m.checklist.Update(msg)
	}
	return m, cmd
}

// openRefs snapshots the positional refs behind the open panel and the
// open item menu so a structural mutation can shift or invalidate them.
func (m *appModel) openRefs() *store.RefSet {
	rs := &store.RefSet{}
	if kind, target := m.edit.Panel(); kind == editmode.PanelItemMove || kind == editmode.PanelItemRename {
		if _, _, ref, ok := m.db.ResolveByCode(target); ok {
			r := ref
			rs.LabelPanel = &r
		}
	}
	if id := m.edit.ItemMenuTarget(); id != "" {
		if _, _, ref, ok := m.db.ResolveByCode(id); ok {
			r := ref
			rs.Menu = &r
		}
	}
	return rs
}

// resyncEdit drops edit focus whose ref did not survive the mutation.
func (m *appModel) resyncEdit(rs *store.RefSet) {
	if kind, target := m.edit.Panel(); kind == editmode.PanelItemMove || kind == editmode.PanelItemRename {
		if rs.LabelPanel == nil {
			m.edit.Forget(target)
		}
	}
	if id := m.edit.ItemMenuTarget(); id != "" && rs.Menu == nil {
		m.edit.Forget(id)
	}
}

func (m *appModel) persist() {
	if err := m.store.Save(m.db); err != nil {
		m.statusMsg = "warning: could not persist state"
	}
}

func (m *appModel) persistTUIState() {
	_ = m.store.SaveTUIState(&store.TUIState{
		Version:       1,
		View:          m.view.name(),
		SelectedRoom:  m.selectedRoom,
		RecentItemIDs: m.recentItemIDs,
	})
}

func (m *appModel) rememberRecent(itemID string) {
	out := []string{itemID}
	for _, id := range m.recentItemIDs {
		if id != itemID {
			out = append(out, id)
		}
	}
	if len(out) > 10 {
		out = out[:10]
	}
	m.recentItemIDs = out
}

func (m *appModel) reloadFromDisk() {
	db, err := m.store.Load()
	if err != nil {
		m.statusMsg = "warning: reload failed"
		return
	}
	m.db = db
	// Everything transient resets; identities re-resolve against the
	// fresh state.
	m.edit.CloseAll()
	if _, _, ok := db.FindRoom(m.selectedRoom); !ok {
		m.selectedRoom = ""
		if m.view == viewRoom {
			m.view = viewRooms
		}
	}
	m.refreshRooms()
	m.refreshItems()
	m.refreshChecklist()
	m.refreshCalendar()
}

func (m *appModel) refreshRooms() {
	curName := ""
	if it, ok := m.roomsList.SelectedItem().(roomRowItem); ok {
		curName = it.room.Name
	}
	var items []list.Item
	for i, r := range m.db.Rooms {
		items = append(items, roomRowItem{room: r, idx: i, menuOpen: m.edit.RoomMenuOpen(r.Name)})
	}
	m.roomsList.SetItems(items)
	if curName != "" {
		for i, li := range items {
			if ri, ok := li.(roomRowItem); ok && ri.room.Name == curName {
				m.roomsList.Select(i)
				break
			}
		}
	}
}

func (m *appModel) refreshItems() {
	room, _, ok := m.db.FindRoom(m.selectedRoom)
	if !ok {
		m.itemsList.SetItems(nil)
		return
	}
	curID := ""
	if it, ok := m.itemsList.SelectedItem().(itemRowItem); ok {
		curID = it.item.ID
	}
	var items []list.Item
	for _, it := range room.Items {
		items = append(items, itemRowItem{
			item:     it,
			mode:     m.edit.ItemMode(it.ID),
			menuOpen: m.edit.ItemMenuOpen(it.ID),
		})
	}
	m.itemsList.SetItems(items)
	if curID != "" {
		for i, li := range items {
			if ii, ok := li.(itemRowItem); ok && ii.item.ID == curID {
				m.itemsList.Select(i)
				break
			}
		}
	}
}

func (m *appModel) refreshChecklist() {
	var items []list.Item
	for _, t := range store.ChecklistTasks {
		items = append(items, checklistRowItem{id: t.ID, title: t.Title, done: m.db.Checked(t.ID)})
	}
	m.checklist.SetItems(items)
}

func (m *appModel) refreshCalendar() {
	days, byDay := m.db.EventsByDay()
	var items []list.Item
	for _, d := range days {
		items = append(items, dayHeadingItem{date: d})
		for _, ev := range byDay[d] {
			items = append(items, eventRowItem{ev: ev})
		}
	}
	m.calendarList.SetItems(items)
}

func (m *appModel) refreshMovePick() {
	var items []list.Item
	for i, r := range m.db.Rooms {
		if r.Name == m.selectedRoom {
			continue
		}
		items = append(items, roomPickItem{name: r.Name, idx: i})
	}
	m.movePick.SetItems(items)
	m.movePick.Select(0)
}

func (m *appModel) resizeLists() {
	h := m.height - 6
	if h < 8 {
		h = 8
	}
	w := m.width
	if w < 40 {
		w = 40
	}
	m.roomsList.SetSize(w, h)
	m.checklist.SetSize(w, h)
	m.calendarList.SetSize(w, h)
	m.movePick.SetSize(modalBodyWidth(m.width), h/2)
	// Room view is split with the label preview pane.
	m.itemsList.SetSize(w/2, h)
}

func (m appModel) View() string {
	if m.confirmKind != confirmNone {
		return m.placeCentered(m.viewConfirm())
	}
	if m.labelModalItemID != "" {
		return m.placeCentered(m.viewLabelModal())
	}
	if m.inputPurpose != inputNone {
		body := renderInputLine(modalBodyWidth(m.width), m.input.View()) +
			"\n\n" + styleMuted().Render("enter: save   esc: cancel")
		return m.placeCentered(renderModalBox(m.width, inputTitle(m.inputPurpose), body))
	}
	if kind, _ := m.edit.Panel(); kind == editmode.PanelItemMove {
		body := m.movePick.View() + "\n" + styleMuted().Render("enter: move here   esc: cancel")
		return m.placeCentered(renderModalBox(m.width, "Move item to room", body))
	}

	header := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf(
		"PCS Move Planner  Dir=%s  Total=%s", m.dir, label.FormatWeight(m.db.TotalWeight)))

	var body string
	switch m.view {
	case viewRooms:
		body = m.roomsList.View()
	case viewRoom:
		body = m.viewRoomSplit()
	case viewCalendar:
		body = m.calendarList.View()
	case viewChecklist:
		body = m.checklist.View()
	}

	footer := styleMuted().Render(m.footerHelp())
	if m.statusMsg != "" {
		footer = footer + "  " + styleMuted().Render(m.statusMsg)
	}
	return strings.Join([]string{header, body, footer}, "\n\n")
}

func (m appModel) footerHelp() string {
	switch m.view {
	case viewRooms:
		return "enter: open  a: add  r: rename  d: delete  space: menu  tab: calendar  q: quit"
	case viewRoom:
		return "a: add  r: rename  m: move  w: weight  i: include  v: high-value  p: label  d: delete  esc: back"
	case viewCalendar:
		return "tab: checklist  esc: rooms  q: quit"
	case viewChecklist:
		return "space/enter: toggle  tab: rooms  esc: rooms  q: quit"
	}
	return ""
}

func (m appModel) viewConfirm() string {
	switch m.confirmKind {
	case confirmDeleteRoom:
		n := 0
		if room, _, ok := m.db.FindRoom(m.confirmTarget); ok {
			n = len(room.Items)
		}
		body := fmt.Sprintf("Delete room %q and the %d item(s) in it?", m.confirmTarget, n)
		return renderConfirmModal(m.width, "Delete room", body, "Delete", "Cancel", m.confirmFocus)
	case confirmDeleteItem:
		name := m.confirmTarget
		if it, ok := m.db.FindItem(m.confirmTarget); ok {
			name = it.Label
		}
		body := fmt.Sprintf("Delete item %q?", name)
		return renderConfirmModal(m.width, "Delete item", body, "Delete", "Cancel", m.confirmFocus)
	}
	return ""
}

func (m appModel) viewLabelModal() string {
	room, item, _, ok := m.db.ResolveByCode(m.labelModalItemID)
	if !ok {
		return renderModalBox(m.width, "Label", "Item not found.")
	}
	// The record was materialized when the panel opened; render from
	// copies so View itself stays mutation-free.
	roomCopy := *room
	itemCopy := *item
	ls := label.Ensure(&roomCopy, &itemCopy)
	body := label.Render(*ls, itemCopy, modalBodyWidth(m.width)) +
		"\n" + styleMuted().Render("any key: close")
	return renderModalBox(m.width, "Label preview", body)
}

func (m appModel) viewRoomSplit() string {
	bodyHeight := m.height - 6
	if bodyHeight < 8 {
		bodyHeight = 8
	}
	leftWidth := m.width / 2
	if leftWidth < 40 {
		leftWidth = 40
	}
	rightWidth := m.width - leftWidth - 2
	if rightWidth < 30 {
		rightWidth = 30
	}
	m.itemsList.SetSize(leftWidth, bodyHeight)

	left := m.itemsList.View()

	var right string
	if it, ok := m.itemsList.SelectedItem().(itemRowItem); ok {
		right = m.renderLabelPreview(it.item, rightWidth)
	} else {
		right = lipgloss.NewStyle().Width(rightWidth).Height(bodyHeight).Render("No item selected.")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// renderLabelPreview is the passive side pane that tracks the cursor.
// It renders from copies and stores nothing; the record materializes
// when the label panel itself is opened.
func (m appModel) renderLabelPreview(item model.Item, width int) string {
	room, _, ok := m.db.FindRoom(m.selectedRoom)
	if !ok {
		return ""
	}
	roomCopy := *room
	itemCopy := item
	ls := label.Ensure(&roomCopy, &itemCopy)
	return label.Render(*ls, itemCopy, width)
}
