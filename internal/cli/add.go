package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/meetings/internal/model"
	"github.com/idilsaglam/meetings/internal/tz"
	"github.com/idilsaglam/meetings/internal/ui"
)

func NewAddCmd(deps *Dependencies) *cobra.Command {
	var (
		in    model.Input
		clock string
		zone  string
	)

	cmd := &cobra.Command{
		Use:   "add [title...]",
		Short: "Add a meeting",
		Example: `  meetings add Standup --date 2024-01-10 --time "09:00 AM" --zone CST
  meetings add --title "Design review" --date 2024-06-01 --hour 11 --minute 30 --meridiem PM --zone EST`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				in.Title = strings.Join(args, " ")
			}
			if clock != "" {
				h, m, mer, err := model.SplitClock(clock)
				if err != nil {
					return reject(cmd, ui.AddNotice(err), err)
				}
				in.Hour, in.Minute, in.Meridiem = h, m, mer
			}
			z, err := tz.ParseZone(zone)
			if err != nil {
				return usage(err)
			}
			in.Zone = z

			m, err := deps.Collection.Add(in)
			if err != nil {
				return reject(cmd, ui.AddNotice(err), err)
			}
			times, err := m.Times()
			if err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "added")
			for _, z := range tz.Zones {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s\n", z, times[z])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&in.Title, "title", "t", "", "meeting title")
	cmd.Flags().StringVarP(&in.Date, "date", "d", "", "date as YYYY-MM-DD")
	cmd.Flags().StringVar(&clock, "time", "", `time as "hh:mm AM|PM"`)
	cmd.Flags().StringVar(&in.Hour, "hour", "", "hour 1-12")
	cmd.Flags().StringVar(&in.Minute, "minute", "00", "minute")
	cmd.Flags().StringVar(&in.Meridiem, "meridiem", "AM", "AM or PM")
	cmd.Flags().StringVarP(&zone, "zone", "z", deps.Config.DefaultZone.String(), "base timezone: EST, CST or IST")
	cmd.MarkFlagsMutuallyExclusive("time", "hour")

	return cmd
}
