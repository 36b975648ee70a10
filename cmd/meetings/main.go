package main

import (
	"fmt"
	"os"

	"github.com/idilsaglam/meetings/internal/cli"
	"github.com/idilsaglam/meetings/internal/config"
	"github.com/idilsaglam/meetings/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		ui.Fail(os.Stderr, "Error", "loading config: "+err.Error())
		return cli.ExitError
	}

	deps := &cli.Dependencies{Config: cfg}
	defer deps.Close()

	err = cli.NewRootCmd(deps).Execute()
	if err != nil && !cli.Reported(err) {
		ui.Fail(os.Stderr, "Error", err.Error())
		fmt.Fprintln(os.Stderr)
	}
	return cli.ExitCode(err)
}
