package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
)

// cliFlags are the command line overrides of the environment.
type cliFlags struct {
	configPath string
	envFile    string
}

// parseFlags parses args (without the program name). --config and --env-file take precedence over
// CONFIG_PATH and ENV_FILE. Returns pflag.ErrHelp for --help.
func parseFlags(args []string, output io.Writer) (cliFlags, error) {
	var f cliFlags
	fs := pflag.NewFlagSet("myexplorer", pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVarP(&f.configPath, "config", "c", "", "path to the YAML config (overrides "+envConfigPath+")")
	fs.StringVar(&f.envFile, "env-file", "", "dotenv file loaded before reading the environment (overrides "+envFile+")")
	if err := fs.Parse(args); err != nil {
		return cliFlags{}, err
	}
	if fs.NArg() > 0 {
		return cliFlags{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return f, nil
}

// apply exports the set flags into the environment LoadConfig reads.
func (f cliFlags) apply() error {
	if f.configPath != "" {
		if err := os.Setenv(envConfigPath, f.configPath); err != nil {
			return err
		}
	}
	if f.envFile != "" {
		if err := os.Setenv(envFile, f.envFile); err != nil {
			return err
		}
	}
	return nil
}
