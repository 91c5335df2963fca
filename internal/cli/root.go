package cli

import (
	"fmt"
	"os"
	"strings"

	"pcs-pro/internal/format"
	"pcs-pro/internal/store"
	"pcs-pro/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "pcs",
		Short:        "PCS move planner (local-first) CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  pcs

  # Scriptable commands
  pcs rooms list
  pcs items add --room "Living Room" --label "Leather Couch"

  # Resolve a scanned label code (shortcut for: pcs items find <code>)
  pcs item-vth8x2aq
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("PCS_DIR", ""), "Path to workspace dir (default: discovered .pcs)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newInitCmd(app))
	cmd.AddCommand(newRoomsCmd(app))
	cmd.AddCommand(newItemsCmd(app))
	cmd.AddCommand(newLabelCmd(app))
	cmd.AddCommand(newScanCmd(app))
	cmd.AddCommand(newChecklistCmd(app))
	cmd.AddCommand(newCalendarCmd(app))
	cmd.AddCommand(newGuideCmd(app))
	cmd.AddCommand(newDoctorCmd(app))

	return cmd
}

func runTUI(app *App) error {
	db, s, err := loadDB(app)
	if err != nil {
		return err
	}
	return tui.Run(s.Dir, db)
}

func storeDir(app *App) (string, error) {
	if strings.TrimSpace(app.Dir) != "" {
		return app.Dir, nil
	}
	return store.DefaultDir()
}

func loadDB(app *App) (*store.DB, store.Store, error) {
	dir, err := storeDir(app)
	if err != nil {
		return nil, store.Store{}, err
	}
	s := store.Store{Dir: dir}
	db, err := s.Load()
	if err != nil {
		return nil, s, err
	}
	return db, s, nil
}

// saveDB persists after a mutation. A failed write is a warning, not a
// failure: in-memory state already reflects the operation and the next
// successful save catches up.
func saveDB(cmd *cobra.Command, s store.Store, db *store.DB) {
	if err := s.Save(db); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not persist state: %v\n", err)
	}
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
