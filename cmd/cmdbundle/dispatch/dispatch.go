// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"io"
	"log/slog"
	"os"

	"github.com/bureau-foundation/cmdbundle/cmd/cmdbundle/cli"
	"github.com/bureau-foundation/cmdbundle/lib/mapping"
	"github.com/bureau-foundation/cmdbundle/lib/process"
)

// Options configures a [Dispatcher].
type Options struct {
	// Name is the synthesized top-level command name. Required.
	Name string

	// Description, Author, About and Version are optional metadata for
	// the top-level command.
	Description string
	Author      string
	About       string
	Version     string

	// Table holds the command mappings in declaration order.
	Table mapping.Table

	// Logger receives dispatch diagnostics. Discarded when nil.
	Logger *slog.Logger

	// Output receives help and version text. os.Stdout when nil.
	Output io.Writer

	// Exec transfers control. [process.Exec] when nil.
	Exec process.ExecFunc
}

// Dispatcher owns one synthesized interface and its mapping table.
type Dispatcher struct {
	spec   *TopLevelSpec
	table  mapping.Table
	logger *slog.Logger
	output io.Writer
	exec   process.ExecFunc
}

// New validates options and builds the [TopLevelSpec]. Duplicate mapping
// names are accepted: the first declaration wins and a warning is logged.
// Names that cannot be invoked are logged and left out of the grammar.
func New(options Options) (*Dispatcher, error) {
	if options.Name == "" {
		return nil, cli.Validation("the synthesized command needs a name").
			WithHint("Pass --name <name> or set name in the manifest.")
	}

	dispatcher := &Dispatcher{
		spec: NewTopLevelSpec(options.Name, options.Table).
			WithDescription(options.Description).
			WithAuthor(options.Author).
			WithAbout(options.About).
			WithVersion(options.Version),
		table:  options.Table,
		logger: options.Logger,
		output: options.Output,
		exec:   options.Exec,
	}
	if dispatcher.logger == nil {
		dispatcher.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if dispatcher.output == nil {
		dispatcher.output = os.Stdout
	}
	if dispatcher.exec == nil {
		dispatcher.exec = process.Exec
	}

	for _, name := range options.Table.Names() {
		if first, _ := options.Table.Lookup(name); !first.Invocable() {
			dispatcher.logger.Warn("command name cannot be invoked, leaving it out",
				"command", name,
				"path", first.Path,
			)
		}
	}
	for _, name := range options.Table.Duplicates() {
		first, _ := options.Table.Lookup(name)
		dispatcher.logger.Warn("command declared more than once, using the first declaration",
			"command", name,
			"path", first.Path,
		)
	}

	return dispatcher, nil
}

// Grammar builds the command tree for the [TopLevelSpec]. Each call returns a
// fresh tree.
func (d *Dispatcher) Grammar() *cli.Command {
	root := &cli.Command{
		Name:        d.spec.Name,
		Summary:     d.spec.About,
		Description: d.spec.Description,
		Author:      d.spec.Author,
		Version:     d.spec.Version,
		Output:      d.output,
		Run:         d.runRoot,
	}

	for _, subcommand := range d.spec.Subcommands {
		name := subcommand.Name
		root.Subcommands = append(root.Subcommands, &cli.Command{
			Name:        name,
			Summary:     subcommand.Description,
			PassThrough: true,
			Run: func(args []string) error {
				return d.transfer(name, args)
			},
		})
	}

	return root
}

// Run matches trailing against the synthesized interface and acts on
// the result. The top-level name is prepended first, matching the argv
// convention the grammar expects. When a subcommand matches and exec
// succeeds, Run does not return.
func (d *Dispatcher) Run(trailing []string) error {
	argv := make([]string, 0, 1+len(trailing))
	argv = append(argv, d.spec.Name)
	argv = append(argv, trailing...)
	return d.Grammar().ExecuteArgv(argv)
}

// Run is shorthand for New followed by [Dispatcher.Run].
func Run(options Options, trailing []string) error {
	dispatcher, err := New(options)
	if err != nil {
		return err
	}
	return dispatcher.Run(trailing)
}

// runRoot handles an invocation that named no subcommand.
func (d *Dispatcher) runRoot(args []string) error {
	if len(args) > 0 {
		return cli.Validation("unexpected argument %q", args[0]).
			WithHint("Run '" + d.spec.Name + " --help' for usage.")
	}
	d.logger.Debug("no subcommand given", "bundle", d.spec.Name)
	return nil
}

// transfer replaces the process with the executable mapped to name,
// passing args after argv[0]. It only returns on failure.
func (d *Dispatcher) transfer(name string, args []string) error {
	target, ok := d.table.Lookup(name)
	if !ok {
		// The grammar is built from the table, so this is a bug.
		return cli.Internal("no mapping for synthesized command %q", name)
	}

	path, err := process.Resolve(target.Path)
	if err != nil {
		return err
	}

	argv := make([]string, 0, 1+len(args))
	argv = append(argv, target.Path)
	argv = append(argv, args...)

	d.logger.Debug("transferring control",
		"bundle", d.spec.Name,
		"command", name,
		"path", path,
		"argv", argv,
	)
	return d.exec(path, argv, os.Environ())
}
