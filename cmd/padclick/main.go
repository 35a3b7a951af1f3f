package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Alia5/padclick/internal/cmd"
	"github.com/Alia5/padclick/internal/configpaths"
	"github.com/Alia5/padclick/internal/log"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {
	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli cmd.CLI
	ctx := kong.Parse(&cli,
		kong.Name("padclick"),
		kong.Description("Turn joystick, gamepad or key presses into mouse clicks at fixed screen positions."),
		kong.UsageOnError(),
		cmd.Vars(),
		// Flag defaults may come from JSON/YAML/TOML; flags and env override them.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logs, err := log.Setup(log.Options{Level: cli.Log.Level, File: cli.Log.File, RawFile: cli.Log.RawFile})
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(cmd.ExitFailure)
	}

	ctx.Bind(logs.Logger)
	ctx.Bind(&cli.Input)
	ctx.BindTo(logs.Raw, (*log.RawLogger)(nil))

	err = ctx.Run()
	_ = logs.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "padclick: %v\n", err)
		os.Exit(cmd.ExitCode(err))
	}
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if v, ok := strings.CutPrefix(a, "--config="); ok {
			return v
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("PADCLICK_CONFIG")
}
