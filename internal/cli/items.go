package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"pcs-pro/internal/catalog"
	"pcs-pro/internal/store"
)

func newItemsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Item commands",
	}
	cmd.AddCommand(newItemsAddCmd(app))
	cmd.AddCommand(newItemsListCmd(app))
	cmd.AddCommand(newItemsSetCmd(app))
	cmd.AddCommand(newItemsRenameCmd(app))
	cmd.AddCommand(newItemsMoveCmd(app))
	cmd.AddCommand(newItemsDeleteCmd(app))
	cmd.AddCommand(newItemsFindCmd(app))
	cmd.AddCommand(newCategoriesCmd(app))
	return cmd
}

// locateItem resolves an item id (or scan code) to its current position.
// Positions are recomputed on every command; they are never cached
// across invocations.
func locateItem(db *store.DB, code string) (store.RowRef, bool) {
	_, _, ref, ok := db.ResolveByCode(code)
	return ref, ok
}

func newItemsAddCmd(app *App) *cobra.Command {
	var room, labelText, category, notes string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item to a room",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			_, idx, ok := db.FindRoom(room)
			if !ok {
				return writeErr(cmd, errNotFound("room", room))
			}
			before := len(db.Rooms[idx].Items)
			db.AddItem(idx, labelText, category, notes)
			if len(db.Rooms[idx].Items) == before {
				return writeOut(cmd, app, map[string]any{"data": nil})
			}
			saveDB(cmd, s, db)
			return writeOut(cmd, app, map[string]any{"data": db.Rooms[idx].Items[len(db.Rooms[idx].Items)-1]})
		},
	}
	cmd.Flags().StringVar(&room, "room", "", "Room name")
	cmd.Flags().StringVar(&labelText, "label", "", "Item label")
	cmd.Flags().StringVar(&category, "category", "", "Category (default: inferred from the label)")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	_ = cmd.MarkFlagRequired("room")
	_ = cmd.MarkFlagRequired("label")
	return cmd
}

func newItemsListCmd(app *App) *cobra.Command {
	var room string
	var highValue bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List items (optionally one room, optionally high-value only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			type row struct {
				Room string `json:"room"`
				Item any    `json:"item"`
			}
			var out []row
			for _, r := range db.Rooms {
				if room != "" && r.Name != room {
					continue
				}
				for _, it := range r.Items {
					if highValue && !it.IsHighValue {
						continue
					}
					out = append(out, row{Room: r.Name, Item: it})
				}
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}
	cmd.Flags().StringVar(&room, "room", "", "Limit to one room")
	cmd.Flags().BoolVar(&highValue, "high-value", false, "Only high-value items")
	return cmd
}

func newItemsSetCmd(app *App) *cobra.Command {
	var category, weight string
	var include, highValue string

	cmd := &cobra.Command{
		Use:   "set <item-id>",
		Short: "Update item fields (category, weight, include, high-value)",
		Long: strings.TrimSpace(`
Update one or more fields on an item.

Setting --category resets the weight to the new category's default.
Invalid --weight input falls back to the category default rather than
erroring; that matches the entry forms, which never block on bad input.
`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			ref, ok := locateItem(db, args[0])
			if !ok {
				return writeErr(cmd, errNotFound("item", args[0]))
			}
			if category != "" {
				db.SetItemCategory(ref.RoomIndex, ref.ItemIndex, category)
			}
			if weight != "" {
				db.SetItemWeight(ref.RoomIndex, ref.ItemIndex, weight)
			}
			if include != "" {
				db.SetItemInclude(ref.RoomIndex, ref.ItemIndex, parseBoolFlag(include))
			}
			if highValue != "" {
				db.SetItemHighValue(ref.RoomIndex, ref.ItemIndex, parseBoolFlag(highValue))
			}
			saveDB(cmd, s, db)
			return writeOut(cmd, app, map[string]any{"data": db.Rooms[ref.RoomIndex].Items[ref.ItemIndex]})
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "New category (resets weight to its default)")
	cmd.Flags().StringVar(&weight, "weight", "", "Explicit weight in lbs")
	cmd.Flags().StringVar(&include, "include", "", "Include in estimate (true|false)")
	cmd.Flags().StringVar(&highValue, "high-value", "", "High-value flag (true|false)")
	return cmd
}

func parseBoolFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "1", "on":
		return true
	}
	return false
}

func newItemsRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <item-id> <new-label>",
		Short: "Rename an item (label title follows unless overridden)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			ref, ok := locateItem(db, args[0])
			if !ok {
				return writeErr(cmd, errNotFound("item", args[0]))
			}
			db.RenameItem(ref.RoomIndex, ref.ItemIndex, args[1])
			saveDB(cmd, s, db)
			return writeOut(cmd, app, map[string]any{"data": db.Rooms[ref.RoomIndex].Items[ref.ItemIndex]})
		},
	}
}

func newItemsMoveCmd(app *App) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "move <item-id>",
		Short: "Move an item to another room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			ref, ok := locateItem(db, args[0])
			if !ok {
				return writeErr(cmd, errNotFound("item", args[0]))
			}
			_, dstIdx, ok := db.FindRoom(to)
			if !ok {
				return writeErr(cmd, errNotFound("room", to))
			}
			db.MoveItem(ref.RoomIndex, ref.ItemIndex, dstIdx, nil)
			saveDB(cmd, s, db)
			it, _ := db.FindItem(ref.ItemID)
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"item": it,
				"room": to,
			}})
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "Destination room name")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newItemsDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <item-id>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			ref, ok := locateItem(db, args[0])
			if !ok {
				return writeErr(cmd, errNotFound("item", args[0]))
			}
			if !yes {
				return writeErr(cmd, errNeedsConfirm("deleting an item"))
			}
			db.DeleteItem(ref.RoomIndex, ref.ItemIndex, nil)
			saveDB(cmd, s, db)
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"deleted":     ref.ItemID,
				"totalWeight": db.TotalWeight,
			}})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the deletion")
	return cmd
}

func newItemsFindCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "find <code>",
		Short: "Resolve an item id or scan code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			room, item, _, ok := db.ResolveByCode(args[0])
			if !ok {
				// A miss is an outcome, not a failure.
				return writeOut(cmd, app, map[string]any{"data": map[string]any{
					"code":  args[0],
					"found": false,
				}})
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"code":  args[0],
				"found": true,
				"room":  room.Name,
				"item":  item,
			}})
		},
	}
}

func newCategoriesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the category catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOut(cmd, app, map[string]any{"data": catalog.Categories})
		},
	}
}
