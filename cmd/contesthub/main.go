package main

import (
	"fmt"
	"os"

	"contesthub/internal/di"
	"contesthub/internal/structures"

	"github.com/spf13/pflag"
)

func main() {
	var flags structures.CliFlags
	pflag.StringVarP(&flags.ConfigPath, "config", "c", "config/config.yaml", "path to the YAML config file")
	pflag.BoolVarP(&flags.DebugMode, "debug", "d", false, "mirror logs to the console")
	pflag.Parse()

	app, err := di.InitApp(&flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init: %v\n", err)
		os.Exit(1)
	}
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "run: %v\n", err)
		os.Exit(1)
	}
}
