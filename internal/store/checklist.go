package store

// The move checklist is an independent flat map from task id to done.
// It shares no invariants with the inventory tree; it lives in the same
// store only so one workspace file holds the whole plan.

func (db *DB) SetChecked(taskID string, done bool) {
	if taskID == "" {
		return
	}
	if db.Checklist == nil {
		db.Checklist = map[string]bool{}
	}
	db.Checklist[taskID] = done
}

func (db *DB) Checked(taskID string) bool {
	return db.Checklist[taskID]
}

// ChecklistTasks is the fixed move checklist, in display order.
var ChecklistTasks = []struct {
	ID    string
	Title string
}{
	{"orders", "Receive and copy official orders"},
	{"schedule-survey", "Schedule the pre-move weight survey"},
	{"inventory", "Catalog every room in the inventory"},
	{"high-value", "Photograph and flag high-value items"},
	{"labels", "Print labels for packed boxes"},
	{"utilities", "Schedule utility shutoff and transfer"},
	{"address", "File change of address"},
	{"travel", "Book travel and temporary lodging"},
	{"weigh-in", "Record vehicle weigh-in tickets"},
	{"claims", "Note damage and file claims after delivery"},
}
