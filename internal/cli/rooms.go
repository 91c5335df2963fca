package cli

import (
	"github.com/spf13/cobra"
)

func newRoomsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "Room commands",
	}
	cmd.AddCommand(newRoomsAddCmd(app))
	cmd.AddCommand(newRoomsListCmd(app))
	cmd.AddCommand(newRoomsRenameCmd(app))
	cmd.AddCommand(newRoomsDeleteCmd(app))
	return cmd
}

func newRoomsAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			before := len(db.Rooms)
			db.AddRoom(args[0])
			if len(db.Rooms) == before {
				// Blank name: silent no-op by contract; still report state.
				return writeOut(cmd, app, map[string]any{"data": db.RoomNames()})
			}
			saveDB(cmd, s, db)
			return writeOut(cmd, app, map[string]any{"data": db.Rooms[len(db.Rooms)-1]})
		},
	}
	return cmd
}

func newRoomsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List rooms with weights",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			type roomSummary struct {
				Name       string  `json:"name"`
				Items      int     `json:"items"`
				RoomWeight float64 `json:"roomWeight"`
			}
			out := make([]roomSummary, 0, len(db.Rooms))
			for _, r := range db.Rooms {
				out = append(out, roomSummary{Name: r.Name, Items: len(r.Items), RoomWeight: r.RoomWeight})
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"rooms":       out,
				"totalWeight": db.TotalWeight,
			}})
		},
	}
}

func newRoomsRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <room> <new-name>",
		Short: "Rename a room (label settings follow unless overridden)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			_, idx, ok := db.FindRoom(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("room", args[0]))
			}
			db.RenameRoom(idx, args[1])
			saveDB(cmd, s, db)
			return writeOut(cmd, app, map[string]any{"data": db.Rooms[idx]})
		},
	}
}

func newRoomsDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <room>",
		Short: "Delete a room and everything in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			_, idx, ok := db.FindRoom(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("room", args[0]))
			}
			if !yes {
				return writeErr(cmd, errNeedsConfirm("deleting a room"))
			}
			db.DeleteRoom(idx, nil)
			saveDB(cmd, s, db)
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"deleted":     args[0],
				"totalWeight": db.TotalWeight,
			}})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the deletion")
	return cmd
}
