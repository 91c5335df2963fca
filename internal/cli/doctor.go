package cli

import (
	"github.com/spf13/cobra"
)

// doctor checks workspace integrity: id uniqueness, weight consistency,
// dangling label rooms. It repairs nothing; it reports.
func newDoctorCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check workspace integrity",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			var problems []string
			seen := map[string]string{}
			for _, r := range db.Rooms {
				for _, it := range r.Items {
					if prev, dup := seen[it.ID]; dup {
						problems = append(problems, "duplicate item id "+it.ID+" in "+prev+" and "+r.Name)
					}
					seen[it.ID] = r.Name
					if it.Weight <= 0 {
						problems = append(problems, "non-positive weight on "+it.ID)
					}
					if it.Label == "" {
						problems = append(problems, "blank label on "+it.ID)
					}
				}
			}

			// Recalculate must be a fixpoint on loaded state.
			before := db.TotalWeight
			db.Recalculate()
			if db.TotalWeight != before {
				problems = append(problems, "persisted weights were stale")
			}

			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"rooms":       len(db.Rooms),
				"totalWeight": db.TotalWeight,
				"problems":    problems,
				"ok":          len(problems) == 0,
			}})
		},
	}
}
