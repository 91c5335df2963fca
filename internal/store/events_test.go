package store

import "testing"

func TestAddEvent_ValidationAndBucketing(t *testing.T) {
	t.Parallel()

	db := emptyDB()
	db.AddEvent("2026-05-02", "", "Pack kitchen", "")
	db.AddEvent("2026-05-01", "14:00", "Weight survey", "")
	db.AddEvent("2026-05-01", "09:00", "Movers arrive", "")
	db.AddEvent("not-a-date", "", "Dropped", "")
	db.AddEvent("2026-05-03", "", "  ", "")

	if len(db.Events) != 3 {
		t.Fatalf("invalid events must be dropped silently; got %d", len(db.Events))
	}

	days, byDay := db.EventsByDay()
	if len(days) != 2 || days[0] != "2026-05-01" || days[1] != "2026-05-02" {
		t.Fatalf("days = %v", days)
	}
	first := byDay["2026-05-01"]
	if first[0].Title != "Movers arrive" || first[1].Title != "Weight survey" {
		t.Fatalf("timed events must sort by time: %#v", first)
	}
}

func TestDeleteEvent(t *testing.T) {
	t.Parallel()

	db := emptyDB()
	db.AddEvent("2026-05-01", "", "One", "")
	db.AddEvent("2026-05-01", "", "Two", "")
	id := db.Events[0].ID
	db.DeleteEvent(id)
	if len(db.Events) != 1 || db.Events[0].Title != "Two" {
		t.Fatalf("delete failed: %#v", db.Events)
	}
	db.DeleteEvent("evt-missing") // no-op
	if len(db.Events) != 1 {
		t.Fatalf("deleting a missing event must be a no-op")
	}
}

func TestChecklist(t *testing.T) {
	t.Parallel()

	db := emptyDB()
	if db.Checked("orders") {
		t.Fatalf("unset task must read false")
	}
	db.SetChecked("orders", true)
	if !db.Checked("orders") {
		t.Fatalf("set task must read true")
	}
	db.SetChecked("", true) // no-op
	if _, ok := db.Checklist[""]; ok {
		t.Fatalf("blank task id must be ignored")
	}
}
