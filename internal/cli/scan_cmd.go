package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"pcs-pro/internal/label"
	"pcs-pro/internal/scan"
)

func newScanCmd(app *App) *cobra.Command {
	var input string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Resolve scanned codes (one per line from stdin or --input)",
		Long: `Reads decoded label codes line by line and resolves each against
the inventory. Pipe any external barcode/QR decoder into it. Ctrl-C
stops a stream that never ends (e.g. a live decoder).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			var src scan.Source
			if input != "" {
				f, err := os.Open(input)
				if err != nil {
					// Capability failure: report status, touch nothing.
					return writeErr(cmd, fmt.Errorf("%w: %v", scan.ErrUnavailable, err))
				}
				defer f.Close()
				src = scan.NewReaderSource(f)
			} else {
				src = scan.NewReaderSource(cmd.InOrStdin())
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			err = scan.Run(ctx, src, db, func(r scan.Result) {
				if asJSON {
					_ = writeOut(cmd, app, map[string]any{"data": r})
					return
				}
				if !r.Found {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: not found\n", r.Code)
					return
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", r.Code, label.Summary(r.RoomName, r.Item))
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			if err != nil {
				return writeErr(cmd, fmt.Errorf("scan source failed: %w", err))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "Read codes from a file instead of stdin")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit one JSON result per code")
	return cmd
}
