// Package label projects an item into its printable tag settings and
// renders a terminal preview of the tag.
package label

import (
	"fmt"
	"strconv"
	"strings"

	"pcs-pro/internal/model"
)

// Defaults computes the derived label fields from the current room/item
// state. Pure function; callers merge stored overrides on top.
func Defaults(room model.Room, item model.Item) model.LabelSettings {
	return model.LabelSettings{
		Title:     item.Label,
		Room:      room.Name,
		Weight:    FormatWeight(item.Weight),
		Notes:     item.Notes,
		TitleSize: model.DefaultTitleSize,
		BodySize:  model.DefaultBodySize,
	}
}

// Ensure returns the item's label settings, lazily initialized:
// defaults are computed from current state, stored overrides win
// field-by-field, and the merged record is written back so fields added
// later retroactively populate older items without a migration step.
func Ensure(room *model.Room, item *model.Item) *model.LabelSettings {
	merged := Defaults(*room, *item)
	if stored := item.LabelSettings; stored != nil {
		if stored.Title != "" {
			merged.Title = stored.Title
		}
		if stored.Room != "" {
			merged.Room = stored.Room
		}
		if stored.Weight != "" {
			merged.Weight = stored.Weight
		}
		if stored.Notes != "" {
			merged.Notes = stored.Notes
		}
		if stored.TitleSize > 0 {
			merged.TitleSize = stored.TitleSize
		}
		if stored.BodySize > 0 {
			merged.BodySize = stored.BodySize
		}
	}
	item.LabelSettings = &merged
	return item.LabelSettings
}

// FormatWeight renders a weight for label display.
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64) + " lbs"
}

// Code returns the scan payload to print on the tag.
func Code(item model.Item) string {
	if strings.TrimSpace(item.QRValue) != "" {
		return item.QRValue
	}
	return item.ID
}

// Summary is a one-line description used in lists and scan results.
func Summary(roomName string, item model.Item) string {
	return fmt.Sprintf("%s / %s (%s)", item.Label, roomName, FormatWeight(item.Weight))
}
