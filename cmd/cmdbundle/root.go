// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/cmdbundle/cmd/cmdbundle/cli"
	"github.com/bureau-foundation/cmdbundle/cmd/cmdbundle/dispatch"
	"github.com/bureau-foundation/cmdbundle/lib/config"
	"github.com/bureau-foundation/cmdbundle/lib/mapping"
	"github.com/bureau-foundation/cmdbundle/lib/process"
	"github.com/bureau-foundation/cmdbundle/lib/version"
)

// invocationParams are cmdbundle's own flags. Everything after "--" is
// matched against the synthesized interface instead.
type invocationParams struct {
	Commands    []string `flag:"command,c" desc:"command mapping as name:path[:description] (repeatable)"`
	Name        string   `flag:"name,n" desc:"name of the synthesized command"`
	Description string   `flag:"description,d" desc:"detailed help text of the synthesized command"`
	Author      string   `flag:"author,a" desc:"author shown in the synthesized help"`
	About       string   `flag:"about,b" desc:"one-line summary of the synthesized command"`
	Manifest    string   `flag:"manifest,m" desc:"YAML or JSONC manifest with name, metadata, and commands"`
	LogLevel    string   `flag:"log-level" desc:"log level: debug, info, warn, or error (overrides CMDBUNDLE_LOG_LEVEL)"`
}

// invocation is one run of cmdbundle.
type invocation struct {
	params invocationParams
	output io.Writer
	exec   process.ExecFunc

	// newLogger builds the dispatch logger once the level is known.
	newLogger func(level slog.Leveler) *slog.Logger
}

func newInvocation(output io.Writer, exec process.ExecFunc) *invocation {
	return &invocation{
		output:    output,
		exec:      exec,
		newLogger: cli.NewCommandLogger,
	}
}

// command returns cmdbundle's own command: flags before "--", the
// synthesized interface's arguments after it.
func (i *invocation) command() *cli.Command {
	return &cli.Command{
		Name:    "cmdbundle",
		Summary: "Build a command-line tool from name:path mappings and run one of its commands",
		Description: `Synthesizes a command with one subcommand per mapping, then matches
the arguments after "--" against it. A matched subcommand replaces
this process with the mapped executable, forwarding every remaining
argument. With no subcommand, cmdbundle exits successfully.

Manifest commands are declared before --command mappings. When a name
is declared more than once, the first declaration wins.`,
		Usage:   "cmdbundle --name <name> [--command name:path[:description]]... [flags] -- [command] [args...]",
		Version: version.Full(),
		Output:  i.output,
		Examples: []cli.Example{
			{
				Description: "Run make through a bundle called tool",
				Command:     `cmdbundle -n tool -c "build:/usr/bin/make:Build everything" -- build -j8`,
			},
			{
				Description: "Show the synthesized help",
				Command:     "cmdbundle -n tool -c build:/usr/bin/make -c lint:golangci-lint -- --help",
			},
			{
				Description: "Load commands from a manifest",
				Command:     "cmdbundle -m tools.yaml -- lint ./...",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("cmdbundle", &i.params)
		},
		RunSplit: i.run,
	}
}

func (i *invocation) run(positional, trailing []string) error {
	if len(positional) > 0 {
		return cli.Validation("unexpected argument %q before --", positional[0]).
			WithHint("Arguments for the synthesized command go after \"--\".")
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return cli.Validation("%w", err)
	}

	level := settings.LogLevel
	if i.params.LogLevel != "" {
		if err := level.UnmarshalText([]byte(i.params.LogLevel)); err != nil {
			return cli.Validation("invalid --log-level %q: %w", i.params.LogLevel, err)
		}
	}
	logger := i.newLogger(level)

	options, err := i.options(settings, logger)
	if err != nil {
		return err
	}
	return dispatch.Run(options, trailing)
}

// options merges the manifest, if any, with the flags into dispatch
// options. Flags override manifest metadata; --command mappings follow
// the manifest's commands.
func (i *invocation) options(settings config.Settings, logger *slog.Logger) (dispatch.Options, error) {
	options := dispatch.Options{
		Logger: logger,
		Output: i.output,
		Exec:   i.exec,
	}

	manifestPath := i.params.Manifest
	if manifestPath == "" {
		manifestPath = settings.Manifest
	}
	if manifestPath != "" {
		manifest, err := config.LoadManifest(manifestPath)
		if errors.Is(err, fs.ErrNotExist) {
			return options, cli.NotFound("manifest %s does not exist", manifestPath)
		}
		if err != nil {
			return options, cli.Validation("%w", err)
		}
		table, err := manifest.Table()
		if err != nil {
			return options, cli.Validation("manifest %s: %w", manifestPath, err)
		}
		logger.Debug("loaded manifest", "path", manifestPath, "commands", len(table))

		options.Name = manifest.Name
		options.Description = manifest.Description
		options.Author = manifest.Author
		options.About = manifest.About
		options.Version = manifest.Version
		options.Table = table
	}

	flagTable, err := mapping.ParseAll(i.params.Commands)
	if err != nil {
		return options, cli.Validation("%w", err).
			WithHint("Each --command takes name:path or name:path:description.")
	}
	options.Table = append(options.Table, flagTable...)

	override(&options.Name, i.params.Name)
	override(&options.Description, i.params.Description)
	override(&options.Author, i.params.Author)
	override(&options.About, i.params.About)

	return options, nil
}

// override sets *field to value when value is non-empty.
func override(field *string, value string) {
	if value != "" {
		*field = value
	}
}
