// Package cmd implements the weave CLI commands.
//
// The command structure follows a root command that dispatches to
// subcommands (layout, render, version).
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/go-drift/weave/pkg/config"
	"github.com/go-drift/weave/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// stdout receives command output. Tests replace it.
var stdout io.Writer = os.Stdout

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "weave",
	Short: "Weave - reactive widget trees in Go",
	Long: `Weave lays out and renders reactive widget trees without a window.
It mounts a tree on a live event context, waits for layout to settle
and reports the result.

Use "weave <command> --help" for more information about a command.`,
	Usage: "weave <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// verbose is set by the global --verbose flag.
var verbose bool

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute(args []string) error {
	verbose = false

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	var filteredArgs []string
	for _, arg := range args {
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version":
			if len(filteredArgs) == 0 {
				printVersion()
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
			verbose = true
		default:
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

// loadConfig resolves weave.yaml for the module containing the working
// directory and installs the matching error handler. Outside a module the
// defaults apply.
func loadConfig() (*config.Resolved, error) {
	resolved := config.Defaults()
	if wd, err := os.Getwd(); err == nil {
		if root, err := config.FindProjectRoot(wd); err == nil {
			r, err := config.Resolve(root)
			if err != nil {
				return nil, err
			}
			resolved = r
		}
	}
	if verbose {
		resolved.Verbose = true
	}
	errors.SetHandler(resolved.ErrorHandler())
	return resolved, nil
}

func printVersion() {
	fmt.Fprintf(stdout, "Weave CLI version %s (built %s)\n", Version, BuildTime)
}

func printHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(stdout, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Flags:")
	fmt.Fprintln(stdout, "  -h, --help           Show help for a command")
	fmt.Fprintln(stdout, "  -v, --version        Show version information")
	fmt.Fprintln(stdout, "  --verbose            Report widget failures with stack traces")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Examples:")
	fmt.Fprintln(stdout, "  weave layout                Print the demo tree's boxes")
	fmt.Fprintln(stdout, "  weave render -o demo.png    Rasterize the demo tree")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}
