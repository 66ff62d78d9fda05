package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/hashicorp/logutils"

	netplan "github.com/TobiasDeBruijn/netplan-types"
	"github.com/TobiasDeBruijn/netplan-types/version"
)

// Exit codes are int values that represent an exit code for a particular
// error. Sub-systems may check this unique error to determine the cause of an
// error without parsing the output or help text.
//
// Errors start at 10
const (
	ExitCodeOK int = 0

	ExitCodeError = 10 + iota
	ExitCodeParseFlagsError
	ExitCodeParseConfigError
	ExitCodeValidationError
)

// CLI is the main entry point.
type CLI struct {
	// outStream and errStream are the standard out and standard error streams
	// to write messages from the CLI.
	outStream, errStream io.Writer
}

// NewCLI creates a new CLI object with the given stdout and stderr streams.
func NewCLI(out, err io.Writer) *CLI {
	return &CLI{
		outStream: out,
		errStream: err,
	}
}

// Run accepts a slice of arguments and returns an int representing the exit
// status from the command.
func (cli *CLI) Run(args []string) int {
	var isVersion, quiet bool
	var configPath, logLevel string

	// Parse the flags and options
	flags := flag.NewFlagSet(version.Name, flag.ContinueOnError)
	flags.SetOutput(cli.errStream)
	flags.Usage = func() {
		fmt.Fprintf(cli.errStream, usage, version.Name)
	}
	flags.StringVar(&configPath, "config", "",
		"the path to a netplan file or directory on disk")
	flags.StringVar(&logLevel, "log-level", defaultLogLevel(),
		"the minimum level of log messages to display")
	flags.BoolVar(&quiet, "quiet", false,
		"do not print the rendered configuration on success")
	flags.BoolVar(&isVersion, "version", false, "display the version")

	// If there was a parser error, stop
	if err := flags.Parse(args[1:]); err != nil {
		return cli.handleError(err, ExitCodeParseFlagsError)
	}

	cli.initLogger(logLevel)

	// If the version was requested, return an "error" containing the version
	// information. This might sound weird, but most *nix applications
	// actually print their version on stderr anyway.
	if isVersion {
		log.Printf("[DEBUG] (cli) version flag was given, exiting now")
		fmt.Fprintf(cli.errStream, "%s\n", version.HumanVersion)
		return ExitCodeOK
	}

	if configPath == "" {
		fmt.Fprintf(cli.errStream, usage, version.Name)
		return ExitCodeParseFlagsError
	}

	log.Printf("[DEBUG] (cli) reading configuration at %q", configPath)
	config, err := netplan.FromPath(configPath)
	if err != nil {
		return cli.handleError(err, ExitCodeParseConfigError)
	}

	log.Printf("[DEBUG] (cli) validating configuration")
	if err := config.Validate(); err != nil {
		return cli.handleError(err, ExitCodeValidationError)
	}

	if !quiet {
		contents, err := config.Bytes()
		if err != nil {
			return cli.handleError(err, ExitCodeError)
		}
		fmt.Fprintf(cli.outStream, "%s", contents)
	}

	return ExitCodeOK
}

// handleError outputs the given error's Error() to the errStream and returns
// the given exit status.
func (cli *CLI) handleError(err error, status int) int {
	fmt.Fprintf(cli.errStream, "%s\n", err.Error())
	return status
}

// initLogger sets up the log level filter with the given minimum level.
func (cli *CLI) initLogger(minLevel string) {
	levelFilter := &logutils.LevelFilter{
		Levels: []logutils.LogLevel{"DEBUG", "INFO", "WARN", "ERR"},
		Writer: cli.errStream,
	}

	levelFilter.SetMinLevel(logutils.LogLevel(
		strings.ToUpper(strings.TrimSpace(minLevel))))

	log.SetOutput(levelFilter)
}

// defaultLogLevel gets the log level from the environment, falling back to
// WARN if nothing was given.
func defaultLogLevel() string {
	level := strings.ToUpper(strings.TrimSpace(os.Getenv("NETPLAN_CHECK_LOG")))
	if level == "" {
		level = "WARN"
	}
	return level
}

const usage = `
Usage: %s [options]

  Reads a netplan configuration from a file or a directory of files, checks
  it for problems and prints the combined configuration on success.

Options:

  -config=<path>           Sets the path to a netplan file, or a directory of
                           netplan files that are merged in lexical order
  -log-level=<level>       Sets the minimum log level (DEBUG, INFO, WARN, ERR)

  -quiet                   Do not print the configuration on success
  -version                 Print the version of this tool
`
