package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/meetings/internal/calendar"
	"github.com/idilsaglam/meetings/internal/ui"
)

func NewExportCmd(deps *Dependencies) *cobra.Command {
	var (
		out      string
		duration time.Duration
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export meetings as an iCalendar (.ics) file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" || out == "-" {
				return calendar.Export(cmd.OutOrStdout(), deps.Collection.Chronological(), duration, time.Now())
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			if err := calendar.Export(f, deps.Collection.Chronological(), duration, time.Now()); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			deps.Log.WithField("out", out).WithField("count", deps.Collection.Len()).Info("meetings exported")
			ui.OK(cmd.ErrOrStderr(), fmt.Sprintf("exported %d meetings to %s", deps.Collection.Len(), out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().DurationVar(&duration, "duration", 30*time.Minute, "length given to each meeting")
	return cmd
}
