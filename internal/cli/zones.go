package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/meetings/internal/tz"
)

func NewZonesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "zones",
		Short: "Show the supported timezones and their current offsets",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			for _, z := range tz.Zones {
				loc, err := z.Location()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-4s %-16s UTC%s\n", z, z.IANA(), now.In(loc).Format("-07:00"))
			}
			return nil
		},
	}
}
