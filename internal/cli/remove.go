package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/meetings/internal/ui"
)

func NewRemoveCmd(deps *Dependencies) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm [#]",
		Aliases: []string{"delete"},
		Short:   "Remove the meeting at a position of `meetings ls`",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position := 0
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					return usage(fmt.Errorf("rm: not a position: %s", args[0]))
				}
				position = n
			}

			if position == 0 {
				_, err := deps.Collection.RemoveAt(position)
				return deleteFailed(cmd, deps, err)
			}
			m, err := deps.Collection.At(position)
			if err != nil {
				return deleteFailed(cmd, deps, err)
			}

			if !yes {
				fmt.Fprintf(cmd.OutOrStdout(), "Are you sure you want to delete %q? [y/N] ", m.Title)
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				switch strings.ToLower(strings.TrimSpace(answer)) {
				case "y", "yes":
				default:
					ui.Warn(cmd.OutOrStdout(), "Confirm Delete", "cancelled")
					return nil
				}
			}

			if _, err := deps.Collection.Remove(m.ID); err != nil {
				return deleteFailed(cmd, deps, err)
			}
			ui.OK(cmd.OutOrStdout(), "removed")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func deleteFailed(cmd *cobra.Command, deps *Dependencies, err error) error {
	deps.Log.WithError(err).Warn("delete failed")
	return reject(cmd, ui.DeleteNotice(err), err)
}
