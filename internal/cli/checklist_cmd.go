package cli

import (
	"github.com/spf13/cobra"

	"pcs-pro/internal/store"
)

func newChecklistCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "Move checklist",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			type task struct {
				ID    string `json:"id"`
				Title string `json:"title"`
				Done  bool   `json:"done"`
			}
			out := make([]task, 0, len(store.ChecklistTasks))
			for _, t := range store.ChecklistTasks {
				out = append(out, task{ID: t.ID, Title: t.Title, Done: db.Checked(t.ID)})
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}
	cmd.AddCommand(newChecklistSetCmd(app, "done", true))
	cmd.AddCommand(newChecklistSetCmd(app, "undo", false))
	return cmd
}

func newChecklistSetCmd(app *App, verb string, done bool) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <task-id>",
		Short: "Mark a checklist task " + map[bool]string{true: "done", false: "not done"}[done],
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := args[0]
			known := false
			for _, t := range store.ChecklistTasks {
				if t.ID == id {
					known = true
					break
				}
			}
			if !known {
				return writeErr(cmd, errNotFound("checklist task", id))
			}
			db.SetChecked(id, done)
			saveDB(cmd, s, db)
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"task": id,
				"done": done,
			}})
		},
	}
}
