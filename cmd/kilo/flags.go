// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --version, --verbose, --log-file, --config; bad flags are returned as errors

package main

import (
	"flag"
	"io"
)

type cliArgs struct {
	version bool
	verbose bool
	logFile string
	config  string
}

// parseFlags parses args (without the program name). Usage goes to usage;
// on a bad flag the error is returned so main can exit 1.
func parseFlags(args []string, usage io.Writer) (cliArgs, error) {
	var a cliArgs

	fs := flag.NewFlagSet("kilo", flag.ContinueOnError)
	fs.SetOutput(usage)
	fs.BoolVar(&a.version, "version", false, "Show version and exit")
	fs.BoolVar(&a.verbose, "verbose", false, "Enable debug logging")
	fs.StringVar(&a.logFile, "log-file", "", "Append log output to this file")
	fs.StringVar(&a.config, "config", "", "Read settings from this file instead of ~/.kilo-go/config.yaml")

	if err := fs.Parse(args); err != nil {
		return cliArgs{}, err
	}
	return a, nil
}
