package cli

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/meetings/internal/config"
	"github.com/idilsaglam/meetings/internal/logging"
	"github.com/idilsaglam/meetings/internal/schedule"
	"github.com/idilsaglam/meetings/internal/store/csvstore"
	"github.com/idilsaglam/meetings/internal/tui"
	"github.com/idilsaglam/meetings/internal/ui"
	"github.com/idilsaglam/meetings/internal/version"
)

type Dependencies struct {
	Config *config.Config

	// Set up by the root command before any subcommand runs.
	Log        logrus.FieldLogger
	Collection *schedule.Collection

	closer io.Closer
}

// Open builds the logger and loads the collection. A malformed data file
// aborts startup.
func (d *Dependencies) Open() error {
	if d.Log == nil {
		log, closer, err := logging.New(d.Config.LogFile, d.Config.LogLevel)
		if err != nil {
			return err
		}
		d.Log, d.closer = log, closer
	}
	coll := schedule.New(csvstore.New(d.Config.DataFile), d.Log.WithField("data", d.Config.DataFile))
	if err := coll.Load(); err != nil {
		d.Log.WithError(err).Error("startup aborted")
		return err
	}
	d.Collection = coll
	return nil
}

func (d *Dependencies) Close() error {
	if d.closer == nil {
		return nil
	}
	return d.closer.Close()
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	var dataFile, theme string

	rootCmd := &cobra.Command{
		Use:           "meetings",
		Short:         "Schedule meetings across EST, CST and IST",
		Long:          "Record meetings with a date, time, base timezone and title, and see each one in EST, CST and IST.\nRun without a subcommand for the interactive scheduler.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if dataFile != "" {
				deps.Config.DataFile = dataFile
			}
			ui.SetTheme(theme)
			if cmd.Name() == "version" || cmd.Name() == "zones" {
				return nil
			}
			return deps.Open()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(deps.Collection, deps.Log, deps.Config.DefaultZone)
		},
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "meetings CSV file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", deps.Config.Theme, "classic, neon or mono")

	rootCmd.AddCommand(NewUICmd(deps))
	rootCmd.AddCommand(NewAddCmd(deps))
	rootCmd.AddCommand(NewListCmd(deps))
	rootCmd.AddCommand(NewRemoveCmd(deps))
	rootCmd.AddCommand(NewExportCmd(deps))
	rootCmd.AddCommand(NewZonesCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	})

	return rootCmd
}

func NewUICmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive scheduler",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(deps.Collection, deps.Log, deps.Config.DefaultZone)
		},
	}
}
