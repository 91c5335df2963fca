package cli

import (
	"github.com/spf13/cobra"

	"pcs-pro/internal/store"
)

func newInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a workspace in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := storeDir(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			s := store.Store{Dir: dir}
			db, err := s.Load()
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"dir":   dir,
				"rooms": len(db.Rooms),
			}})
		},
	}
}
