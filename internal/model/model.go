package model

// Category is a fixed classification with a default weight used as a
// fallback whenever an item carries no usable explicit weight.
type Category struct {
	Label         string  `json:"label"`
	DefaultWeight float64 `json:"defaultWeight"`
}

// Default label font sizes in px, used when deriving LabelSettings and
// when patching older persisted records that predate the size fields.
const (
	DefaultTitleSize = 28
	DefaultBodySize  = 14
)

// LabelSettings is the user-customizable presentation record for a
// printable/scannable identification tag. Defaults are derived from the
// owning item/room; stored overrides win field-by-field, so a rename
// only propagates into fields the user never touched.
type LabelSettings struct {
	Title     string `json:"title"`
	Room      string `json:"room"`
	Weight    string `json:"weight"`
	Notes     string `json:"notes"`
	TitleSize int    `json:"titleSize"`
	BodySize  int    `json:"bodySize"`
}

type Item struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Category string  `json:"category"`
	Weight   float64 `json:"weight"`

	IncludeInEstimate bool   `json:"includeInEstimate"`
	IsHighValue       bool   `json:"isHighValue"`
	Notes             string `json:"notes,omitempty"`

	// QRValue is the scan payload. New items get a generated value;
	// legacy rows may carry QRValue == ID, and lookups accept either.
	QRValue string `json:"qrValue,omitempty"`

	LabelSettings *LabelSettings `json:"labelSettings,omitempty"`
}

type Room struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`

	// RoomWeight is derived: round(sum of Weight over included items).
	// Recomputed together with the inventory total, never left stale.
	RoomWeight float64 `json:"roomWeight"`
}

// MoveEvent is an already-validated calendar record. The calendar view
// buckets these by Date; the inventory engine never produces them.
type MoveEvent struct {
	ID    string  `json:"id"`
	Date  string  `json:"date"`           // YYYY-MM-DD
	Time  *string `json:"time,omitempty"` // HH:MM
	Title string  `json:"title"`
	Notes string  `json:"notes,omitempty"`
}
