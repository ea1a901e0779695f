// Package cmd implements the uicore subcommands and their dispatch.
package cmd

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
)

// Version is overridden at link time with -ldflags "-X".
var Version = "0.1.0-dev"

// Command is one uicore subcommand.
type Command struct {
	Name     string
	Summary  string
	Usage    string
	Details  string
	Examples []string
	Run      func(args []string) error
}

// registry holds the subcommands in registration order.
var registry []*Command

// stdout is where commands write their output.
var stdout io.Writer = os.Stdout

// RegisterCommand makes cmd reachable as "uicore <cmd.Name>".
func RegisterCommand(cmd *Command) {
	registry = append(registry, cmd)
}

func lookup(name string) *Command {
	for _, c := range registry {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return run(os.Args[1:])
}

func run(args []string) error {
	if len(args) == 0 || isHelpArg(args[0]) {
		printOverview(stdout)
		return nil
	}
	if args[0] == "-v" || args[0] == "--version" || args[0] == "version" {
		fmt.Fprintf(stdout, "uicore %s\n", Version)
		return nil
	}

	cmd := lookup(args[0])
	if cmd == nil {
		printOverview(os.Stderr)
		return fmt.Errorf("unknown command %q", args[0])
	}
	if slices.ContainsFunc(args[1:], isHelpArg) {
		printCommand(stdout, cmd)
		return nil
	}
	return cmd.Run(args[1:])
}

func printOverview(w io.Writer) {
	fmt.Fprint(w, `uicore lays out and draws UI scenes described in YAML without a
renderer, and prints the resulting draw commands.

Usage:
  uicore <command> [flags]

Commands:
`)
	for _, c := range registry {
		fmt.Fprintf(w, "  %-8s %s\n", c.Name, c.Summary)
	}
	fmt.Fprint(w, `
Flags:
  -h, --help      Show help for a command
  -v, --version   Show version information

Use "uicore <command> --help" for more information about a command.
`)
}

func printCommand(w io.Writer, cmd *Command) {
	fmt.Fprintf(w, "%s\n\nUsage:\n  %s\n", cmd.Details, cmd.Usage)
	if len(cmd.Examples) > 0 {
		fmt.Fprintln(w, "\nExamples:")
		for _, e := range cmd.Examples {
			fmt.Fprintf(w, "  %s\n", e)
		}
	}
}

// sceneOptions are the flags shared by commands that take a scene file.
type sceneOptions struct {
	path      string
	configDir string
	width     float32
	height    float32
	json      bool
}

func parseSceneArgs(args []string) (sceneOptions, error) {
	var opts sceneOptions
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := strings.Cut(arg, "=")
		next := func() (string, error) {
			if hasValue {
				return value, nil
			}
			if i+1 >= len(args) {
				return "", fmt.Errorf("%s requires a value", name)
			}
			i++
			return args[i], nil
		}
		switch name {
		case "--config":
			v, err := next()
			if err != nil {
				return opts, err
			}
			opts.configDir = v
		case "--width", "--height":
			v, err := next()
			if err != nil {
				return opts, err
			}
			f, err := strconv.ParseFloat(v, 32)
			if err != nil || f <= 0 {
				return opts, fmt.Errorf("%s must be a positive number (got %q)", name, v)
			}
			if name == "--width" {
				opts.width = float32(f)
			} else {
				opts.height = float32(f)
			}
		case "--json":
			opts.json = true
		default:
			if strings.HasPrefix(arg, "-") {
				return opts, fmt.Errorf("unknown flag %s", arg)
			}
			if opts.path != "" {
				return opts, fmt.Errorf("unexpected argument %q", arg)
			}
			opts.path = arg
		}
	}
	if opts.path == "" {
		return opts, fmt.Errorf("missing scene file")
	}
	return opts, nil
}
