package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"pcs-pro/internal/model"
)

func newCalendarCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Move calendar (events bucketed by day)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			days, byDay := db.EventsByDay()
			type day struct {
				Date   string            `json:"date"`
				Events []model.MoveEvent `json:"events"`
			}
			out := make([]day, 0, len(days))
			for _, d := range days {
				out = append(out, day{Date: d, Events: byDay[d]})
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}
	cmd.AddCommand(newCalendarAddCmd(app))
	cmd.AddCommand(newCalendarDeleteCmd(app))
	return cmd
}

func newCalendarAddCmd(app *App) *cobra.Command {
	var date, at, title, notes string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a move event",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			before := len(db.Events)
			db.AddEvent(date, at, title, notes)
			if len(db.Events) == before {
				return writeErr(cmd, errors.New("invalid event: need --date YYYY-MM-DD and a non-blank --title"))
			}
			saveDB(cmd, s, db)
			return writeOut(cmd, app, map[string]any{"data": db.Events[len(db.Events)-1]})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Event date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&at, "time", "", "Event time (HH:MM, optional)")
	cmd.Flags().StringVar(&title, "title", "", "Event title")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newCalendarDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <event-id>",
		Short: "Delete a move event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			before := len(db.Events)
			db.DeleteEvent(args[0])
			if len(db.Events) == before {
				return writeErr(cmd, errNotFound("event", args[0]))
			}
			saveDB(cmd, s, db)
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"deleted": args[0]}})
		},
	}
}
