package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pcs-pro/internal/label"
)

func newLabelCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "label",
		Short: "Printable label commands",
	}
	cmd.AddCommand(newLabelShowCmd(app))
	cmd.AddCommand(newLabelSetCmd(app))
	return cmd
}

func newLabelShowCmd(app *App) *cobra.Command {
	var width int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <item-id>",
		Short: "Preview an item's printable tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			room, item, _, ok := db.ResolveByCode(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("item", args[0]))
			}
			ls := label.Ensure(room, item)
			// Ensure writes the merged record back; persist it so the
			// lazily-initialized settings survive.
			saveDB(cmd, s, db)

			if asJSON {
				return writeOut(cmd, app, map[string]any{"data": ls})
			}
			fmt.Fprintln(cmd.OutOrStdout(), label.Render(*ls, *item, width))
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 44, "Preview width in columns")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the label settings as JSON")
	return cmd
}

func newLabelSetCmd(app *App) *cobra.Command {
	var title, roomText, weight, notes string
	var titleSize, bodySize int

	cmd := &cobra.Command{
		Use:   "set <item-id>",
		Short: "Override label fields for an item",
		Long: strings.TrimSpace(`
Override printable tag fields. Overridden fields stop following room
and item renames; fields you leave alone keep refreshing from current
inventory state.
`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			room, item, _, ok := db.ResolveByCode(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("item", args[0]))
			}
			ls := label.Ensure(room, item)
			if title != "" {
				ls.Title = title
			}
			if roomText != "" {
				ls.Room = roomText
			}
			if weight != "" {
				ls.Weight = weight
			}
			if notes != "" {
				ls.Notes = notes
			}
			if titleSize > 0 {
				ls.TitleSize = titleSize
			}
			if bodySize > 0 {
				ls.BodySize = bodySize
			}
			saveDB(cmd, s, db)
			return writeOut(cmd, app, map[string]any{"data": ls})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Tag title")
	cmd.Flags().StringVar(&roomText, "room", "", "Tag room text")
	cmd.Flags().StringVar(&weight, "weight", "", "Tag weight text")
	cmd.Flags().StringVar(&notes, "notes", "", "Tag notes")
	cmd.Flags().IntVar(&titleSize, "title-size", 0, "Title font size (px)")
	cmd.Flags().IntVar(&bodySize, "body-size", 0, "Body font size (px)")
	return cmd
}
