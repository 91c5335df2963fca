package store

import (
	"encoding/json"

	"pcs-pro/internal/model"
)

// wireItem mirrors model.Item but keeps booleans as pointers so a field
// that is absent from older persisted records can be told apart from an
// explicit false. normalize() applies the defaults.
type wireItem struct {
	ID                string               `json:"id"`
	Label             string               `json:"label"`
	Category          string               `json:"category"`
	Weight            float64              `json:"weight"`
	IncludeInEstimate *bool                `json:"includeInEstimate"`
	IsHighValue       *bool                `json:"isHighValue"`
	Notes             string               `json:"notes"`
	QRValue           string               `json:"qrValue"`
	LabelSettings     *model.LabelSettings `json:"labelSettings"`
}

type wireRoom struct {
	Name       string     `json:"name"`
	Items      []wireItem `json:"items"`
	RoomWeight float64    `json:"roomWeight"`
}

func decodeRoom(b []byte) (model.Room, error) {
	var w wireRoom
	if err := json.Unmarshal(b, &w); err != nil {
		return model.Room{}, err
	}
	room := model.Room{
		Name:       w.Name,
		Items:      make([]model.Item, 0, len(w.Items)),
		RoomWeight: w.RoomWeight,
	}
	for _, wi := range w.Items {
		it := model.Item{
			ID:                wi.ID,
			Label:             wi.Label,
			Category:          wi.Category,
			Weight:            wi.Weight,
			IncludeInEstimate: true,
			Notes:             wi.Notes,
			QRValue:           wi.QRValue,
			LabelSettings:     wi.LabelSettings,
		}
		if wi.IncludeInEstimate != nil {
			it.IncludeInEstimate = *wi.IncludeInEstimate
		}
		if wi.IsHighValue != nil {
			it.IsHighValue = *wi.IsHighValue
		}
		room.Items = append(room.Items, it)
	}
	return room, nil
}
