// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

// Command represents a CLI command or subcommand.
type Command struct {
	// Name is the command name as typed by the user (e.g., "tool", "build").
	Name string

	// Summary is a one-line description shown in the parent's help listing
	// and at the top of the command's own help.
	Summary string

	// Description is a detailed multi-line description shown in the command's
	// own help output.
	Description string

	// Author is shown in the command's own help output.
	Author string

	// Version enables -V/--version on this command when non-empty.
	Version string

	// Usage is the usage string (e.g., "tool build [args...]").
	// If empty, it is synthesized from the command path and subcommands.
	Usage string

	// Examples are shown in the help output after the description.
	Examples []Example

	// Flags returns a configured *pflag.FlagSet for this command. Called
	// lazily on first use. If nil, the command accepts no flags.
	Flags func() *pflag.FlagSet

	// Subcommands are nested commands dispatched by the first positional arg.
	Subcommands []*Command

	// Run executes the command with the remaining args (after flag parsing).
	// If both Run and Subcommands are set, Run is used when no subcommand
	// is named.
	Run func(args []string) error

	// RunSplit is used instead of Run when the command needs to tell the
	// positional arguments before a "--" separator from those after it.
	// trailing is nil when no separator was given.
	RunSplit func(positional, trailing []string) error

	// PassThrough disables flag parsing: everything after the command name
	// reaches Run verbatim. A leading -h or --help still shows help, and a
	// leading "--" is dropped so those tokens can be forwarded too.
	PassThrough bool

	// Output receives help and version text. Inherited from the parent
	// when nil; os.Stdout at the root.
	Output io.Writer

	// parent is set during dispatch to build the full command path for help.
	parent *Command
}

// Example is a usage example shown in help output.
type Example struct {
	// Description explains what the example does.
	Description string
	// Command is the literal command line.
	Command string
}

// Outcome is what a successful [Command.Resolve] decided to do.
type Outcome int

const (
	// OutcomeRun means the resolved command's Run should be called.
	OutcomeRun Outcome = iota
	// OutcomeHelp means help for the resolved command was requested.
	OutcomeHelp
	// OutcomeVersion means the resolved command's version was requested.
	OutcomeVersion
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRun:
		return "run"
	case OutcomeHelp:
		return "help"
	case OutcomeVersion:
		return "version"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Resolution is the classification of an argument vector.
type Resolution struct {
	Outcome Outcome

	// Command is the deepest command the arguments selected.
	Command *Command

	// Args are the arguments left for Command after its name and flags.
	Args []string

	// Dash is the index in Args where a "--" separator stood, or -1.
	Dash int
}

// Positional returns the arguments before the "--" separator.
func (r *Resolution) Positional() []string {
	if r.Dash < 0 {
		return r.Args
	}
	return r.Args[:r.Dash]
}

// Trailing returns the arguments after the "--" separator, or nil when
// there was none.
func (r *Resolution) Trailing() []string {
	if r.Dash < 0 {
		return nil
	}
	return r.Args[r.Dash:]
}

// Execute parses args and dispatches to the appropriate subcommand or Run
// function. This is the main entry point for the command tree.
func (c *Command) Execute(args []string) error {
	resolution, err := c.Resolve(args)
	if err != nil {
		return err
	}

	command := resolution.Command
	switch resolution.Outcome {
	case OutcomeHelp:
		command.PrintHelp(command.output())
		return nil
	case OutcomeVersion:
		fmt.Fprintf(command.output(), "%s %s\n", command.fullName(), command.Version)
		return nil
	}

	if command.RunSplit != nil {
		return command.RunSplit(resolution.Positional(), resolution.Trailing())
	}
	return command.Run(resolution.Args)
}

// ExecuteArgv is Execute for a full argument vector whose first element
// is the program name, as in os.Args.
func (c *Command) ExecuteArgv(argv []string) error {
	if len(argv) == 0 {
		return c.Execute(nil)
	}
	return c.Execute(argv[1:])
}

// Resolve walks the command tree for args and reports which command they
// select and what should happen. It performs no output.
func (c *Command) Resolve(args []string) (*Resolution, error) {
	// Check for help flags before anything else.
	if len(args) > 0 && isHelpFlag(args[0]) {
		return &Resolution{Outcome: OutcomeHelp, Command: c, Dash: -1}, nil
	}

	if c.PassThrough {
		if len(args) > 0 && args[0] == "--" {
			args = args[1:]
		}
		return &Resolution{Outcome: OutcomeRun, Command: c, Args: args, Dash: -1}, nil
	}

	if c.Version != "" && len(args) > 0 && isVersionFlag(args[0]) {
		return &Resolution{Outcome: OutcomeVersion, Command: c, Dash: -1}, nil
	}

	// If we have subcommands, try to dispatch.
	if len(c.Subcommands) > 0 && len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		name := args[0]
		if sub := c.subcommand(name); sub != nil {
			sub.parent = c
			return sub.Resolve(args[1:])
		}
		if name == "help" {
			return c.resolveHelp(args[1:])
		}
		return nil, c.unknownCommand(name)
	}

	runnable := c.Run != nil || c.RunSplit != nil

	// Subcommands but nothing selected one, and nothing to run instead.
	if len(c.Subcommands) > 0 && !runnable {
		if len(args) == 0 {
			return nil, Validation("subcommand required").WithHint(c.usageHint())
		}
		return nil, Validation("subcommand required (got flag %q)", args[0]).WithHint(c.usageHint())
	}

	dash := -1
	if c.Flags != nil {
		flagSet := c.Flags()

		// Suppress pflag's default error output and usage dump. We
		// format our own error messages with suggestions.
		flagSet.SetOutput(io.Discard)

		if err := flagSet.Parse(args); err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "unknown flag") || strings.Contains(errMsg, "unknown shorthand flag") {
				// Recreate the flagSet to get a clean copy for suggestion
				// lookup (the failed parse may have consumed state).
				if suggestion := suggestFlag(args, c.Flags()); suggestion != "" {
					return nil, Validation("%s (did you mean %s?)", errMsg, suggestion).WithHint(c.usageHint())
				}
			}
			return nil, Validation("%s", errMsg).WithHint(c.usageHint())
		}
		args = flagSet.Args()
		dash = flagSet.ArgsLenAtDash()
	} else if len(args) > 0 && args[0] == "--" {
		args = args[1:]
		dash = 0
	} else if len(args) > 0 && strings.HasPrefix(args[0], "-") && args[0] != "-" {
		return nil, Validation("unknown flag: %s", args[0]).WithHint(c.usageHint())
	}

	if !runnable {
		return nil, Validation("no action defined for %q", c.fullName()).WithHint(c.usageHint())
	}

	return &Resolution{Outcome: OutcomeRun, Command: c, Args: args, Dash: dash}, nil
}

// resolveHelp handles "help" and "help <command>" at a command with
// subcommands. A subcommand actually named "help" is matched before
// this is reached.
func (c *Command) resolveHelp(args []string) (*Resolution, error) {
	if len(args) == 0 {
		return &Resolution{Outcome: OutcomeHelp, Command: c, Dash: -1}, nil
	}
	sub := c.subcommand(args[0])
	if sub == nil {
		return nil, c.unknownCommand(args[0])
	}
	sub.parent = c
	return &Resolution{Outcome: OutcomeHelp, Command: sub, Dash: -1}, nil
}

// subcommand returns the first subcommand called name, or nil.
func (c *Command) subcommand(name string) *Command {
	for _, sub := range c.Subcommands {
		if sub.Name == name {
			return sub
		}
	}
	return nil
}

// unknownCommand builds the error for a name that matches no subcommand,
// suggesting the closest match when one is near enough.
func (c *Command) unknownCommand(name string) *ToolError {
	if suggestion := suggestCommand(name, c.Subcommands); suggestion != "" {
		return Validation("unknown command %q (did you mean %q?)", name, suggestion).WithHint(c.usageHint())
	}
	return Validation("unknown command %q", name).WithHint(c.usageHint())
}

func (c *Command) usageHint() string {
	return fmt.Sprintf("Run '%s --help' for usage.", c.fullName())
}

// PrintHelp writes structured help output to w.
func (c *Command) PrintHelp(w io.Writer) {
	name := c.fullName()
	styles := newHelpStyles(w)

	if c.Summary != "" {
		fmt.Fprintf(w, "%s\n\n", c.Summary)
	}
	if c.Description != "" && c.Description != c.Summary {
		fmt.Fprintf(w, "%s\n\n", c.Description)
	}
	if c.Author != "" {
		fmt.Fprintf(w, "%s %s\n\n", styles.heading.Render("Author:"), c.Author)
	}

	// Usage line.
	fmt.Fprintf(w, "%s\n", styles.heading.Render("Usage:"))
	switch {
	case c.Usage != "":
		fmt.Fprintf(w, "  %s\n", c.Usage)
	case c.PassThrough:
		fmt.Fprintf(w, "  %s [args...]\n", name)
	case len(c.Subcommands) > 0:
		fmt.Fprintf(w, "  %s <command> [flags]\n", name)
	default:
		fmt.Fprintf(w, "  %s [flags]\n", name)
	}

	// Subcommands.
	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\n%s\n", styles.heading.Render("Commands:"))
		tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		for _, sub := range c.Subcommands {
			fmt.Fprintf(tw, "  %s\t%s\n", sub.Name, sub.Summary)
		}
		tw.Flush()
	}

	// Flags.
	var flagHelp strings.Builder
	if c.Flags != nil {
		flagSet := c.Flags()
		flagSet.SetOutput(&flagHelp)
		flagSet.PrintDefaults()
	}
	if c.Version != "" {
		fmt.Fprintf(&flagHelp, "  -V, --version   print version information\n")
	}
	fmt.Fprintf(&flagHelp, "  -h, --help      print this help\n")
	fmt.Fprintf(w, "\n%s\n%s", styles.heading.Render("Flags:"), flagHelp.String())

	// Examples.
	if len(c.Examples) > 0 {
		fmt.Fprintf(w, "\n%s\n", styles.heading.Render("Examples:"))
		for _, example := range c.Examples {
			if example.Description != "" {
				fmt.Fprintf(w, "  # %s\n", example.Description)
			}
			fmt.Fprintf(w, "  %s\n", example.Command)
			if example.Description != "" {
				fmt.Fprintln(w)
			}
		}
	}

	// Footer: help hint for subcommands.
	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nRun '%s <command> --help' for more information on a command.\n", name)
	}
}

// fullName returns the complete command path (e.g., "tool build").
func (c *Command) fullName() string {
	if c.parent == nil {
		return c.Name
	}
	return c.parent.fullName() + " " + c.Name
}

// output returns the writer for help and version text.
func (c *Command) output() io.Writer {
	for command := c; command != nil; command = command.parent {
		if command.Output != nil {
			return command.Output
		}
	}
	return os.Stdout
}

// isHelpFlag returns true for the help flag variants.
func isHelpFlag(arg string) bool {
	return arg == "-h" || arg == "--help"
}

// isVersionFlag returns true for the version flag variants.
func isVersionFlag(arg string) bool {
	return arg == "-V" || arg == "--version"
}
