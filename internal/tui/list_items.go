package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"pcs-pro/internal/editmode"
	"pcs-pro/internal/label"
	"pcs-pro/internal/model"
)

// roomRowItem keeps the room's position alongside the record. Room
// names are not unique, so name lookups cannot stand in for the row the
// user actually selected; the index is the handle for room-targeted
// operations opened from this row.
type roomRowItem struct {
	room     model.Room
	idx      int
	menuOpen bool
}

func (i roomRowItem) FilterValue() string { return i.room.Name }
func (i roomRowItem) Title() string {
	t := i.room.Name
	if i.menuOpen {
		t = t + "  " + menuHint("rename  delete")
	}
	return t
}
func (i roomRowItem) Description() string {
	n := len(i.room.Items)
	word := "items"
	if n == 1 {
		word = "item"
	}
	return fmt.Sprintf("%d %s, %s", n, word, label.FormatWeight(i.room.RoomWeight))
}

type itemRowItem struct {
	item     model.Item
	mode     editmode.PanelKind
	menuOpen bool
}

func (i itemRowItem) FilterValue() string { return i.item.Label }
func (i itemRowItem) Title() string {
	mark := "[x]"
	if !i.item.IncludeInEstimate {
		mark = "[ ]"
	}
	t := mark + " " + i.item.Label
	if i.item.IsHighValue {
		t += " " + lipgloss.NewStyle().Foreground(colorHighValueFg).Bold(true).Render("HIGH VALUE")
	}
	switch i.mode {
	case editmode.PanelItemRename:
		t += "  " + menuHint("renaming")
	case editmode.PanelItemMove:
		t += "  " + menuHint("moving")
	}
	if i.menuOpen {
		t += "  " + menuHint("rename  move  weight  delete")
	}
	if !i.item.IncludeInEstimate {
		return lipgloss.NewStyle().Foreground(colorExcludedFg).Render(t)
	}
	return t
}
func (i itemRowItem) Description() string {
	return fmt.Sprintf("%s, %s", i.item.Category, label.FormatWeight(i.item.Weight))
}

type checklistRowItem struct {
	id    string
	title string
	done  bool
}

func (i checklistRowItem) FilterValue() string { return i.title }
func (i checklistRowItem) Title() string {
	box := "[ ]"
	if i.done {
		box = "[x]"
	}
	return box + " " + i.title
}
func (i checklistRowItem) Description() string { return "" }

type dayHeadingItem struct {
	date string
}

func (i dayHeadingItem) FilterValue() string { return i.date }
func (i dayHeadingItem) Title() string {
	return lipgloss.NewStyle().Foreground(colorChromeMutedFg).Bold(true).Render(i.date)
}
func (i dayHeadingItem) Description() string { return "" }

type eventRowItem struct {
	ev model.MoveEvent
}

func (i eventRowItem) FilterValue() string { return i.ev.Title }
func (i eventRowItem) Title() string {
	at := "all day"
	if i.ev.Time != nil && strings.TrimSpace(*i.ev.Time) != "" {
		at = *i.ev.Time
	}
	return fmt.Sprintf("  %s  %s", at, i.ev.Title)
}
func (i eventRowItem) Description() string {
	if strings.TrimSpace(i.ev.Notes) == "" {
		return ""
	}
	return "        " + i.ev.Notes
}

type roomPickItem struct {
	name string
	idx  int
}

func (i roomPickItem) FilterValue() string { return i.name }
func (i roomPickItem) Title() string       { return i.name }
func (i roomPickItem) Description() string { return "" }

func menuHint(s string) string {
	return lipgloss.NewStyle().Foreground(colorAccentFg).Background(colorAccent).Padding(0, 1).Render(s)
}

func newList(items []list.Item) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	// The app renders its own header and footer; keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	// Bubble list defaults to quitting on ESC; here ESC is "back/cancel".
	l.KeyMap.Quit.SetKeys("q")
	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)
	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)
	return l
}
