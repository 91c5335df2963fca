package cli

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"pcs-pro/internal/docs"
)

func newGuideCmd(app *App) *cobra.Command {
	var raw bool
	var width int

	cmd := &cobra.Command{
		Use:   "guide [topic]",
		Short: "Built-in moving guide",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				topics := docs.Topics()
				sort.Strings(topics)
				return writeOut(cmd, app, map[string]any{"data": map[string]any{"topics": topics}})
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown guide topic: %q (run `pcs guide` to list topics)", topic))
			}
			if raw {
				fmt.Fprint(cmd.OutOrStdout(), body)
				return nil
			}

			r, err := glamour.NewTermRenderer(
				glamour.WithStandardStyle("auto"),
				glamour.WithWordWrap(width),
			)
			if err != nil {
				fmt.Fprint(cmd.OutOrStdout(), body)
				return nil
			}
			out, err := r.Render(body)
			if err != nil {
				fmt.Fprint(cmd.OutOrStdout(), body)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width")
	return cmd
}
