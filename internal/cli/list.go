package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/meetings/internal/ui"
)

func NewListCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List meetings in chronological order",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := deps.Collection.Rows()
			if err != nil {
				return err
			}
			t := ui.Current()
			header := fmt.Sprintf("%s   %s %d",
				t.Title.Render("Meetings"),
				t.Accent.Render("Total"), len(rows))

			lines := []string{header, ""}
			if len(rows) == 0 {
				lines = append(lines, t.Muted.Render("no meetings"))
			} else {
				lines = append(lines, ui.MeetingTable(rows))
			}
			lines = append(lines, "", t.Muted.Render("Tip: remove with `meetings rm <#>`"))
			ui.Panel(cmd.OutOrStdout(), lines)
			return nil
		},
	}
}
