package store

import (
	"sort"
	"strings"
	"time"

	"pcs-pro/internal/model"
)

// AddEvent records a calendar event. The date must already be a valid
// YYYY-MM-DD day and the title non-blank; invalid input is a silent
// no-op, matching the engine's validation-fallback contract.
func (db *DB) AddEvent(date, hhmm, title, notes string) {
	date = strings.TrimSpace(date)
	title = strings.TrimSpace(title)
	if title == "" {
		return
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return
	}
	ev := model.MoveEvent{
		ID:    db.NextID("evt"),
		Date:  date,
		Title: title,
		Notes: notes,
	}
	hhmm = strings.TrimSpace(hhmm)
	if hhmm != "" {
		if _, err := time.Parse("15:04", hhmm); err == nil {
			ev.Time = &hhmm
		}
	}
	db.Events = append(db.Events, ev)
}

func (db *DB) DeleteEvent(id string) {
	for i := range db.Events {
		if db.Events[i].ID == id {
			db.Events = append(db.Events[:i], db.Events[i+1:]...)
			return
		}
	}
}

// EventsByDay buckets events by date for the calendar view. Days come
// back sorted; within a day, timed events sort before untimed ones by
// time, then by title.
func (db *DB) EventsByDay() (days []string, byDay map[string][]model.MoveEvent) {
	byDay = map[string][]model.MoveEvent{}
	for _, ev := range db.Events {
		byDay[ev.Date] = append(byDay[ev.Date], ev)
	}
	for d := range byDay {
		evs := byDay[d]
		sort.Slice(evs, func(i, j int) bool {
			ti, tj := eventSortKey(evs[i]), eventSortKey(evs[j])
			if ti != tj {
				return ti < tj
			}
			return evs[i].Title < evs[j].Title
		})
		byDay[d] = evs
		days = append(days, d)
	}
	sort.Strings(days)
	return days, byDay
}

func eventSortKey(ev model.MoveEvent) string {
	if ev.Time != nil {
		return *ev.Time
	}
	return "~" // untimed events sort after any HH:MM
}
