// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package dispatch

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/bureau-foundation/cmdbundle/cmd/cmdbundle/cli"
	"github.com/bureau-foundation/cmdbundle/lib/mapping"
	"github.com/bureau-foundation/cmdbundle/lib/process"
	"github.com/bureau-foundation/cmdbundle/lib/testutil"
)

// execCall is one captured transfer of control.
type execCall struct {
	path string
	argv []string
	env  []string
}

// execRecorder stands in for process.Exec. It records each call and
// returns err, so the test process is never replaced.
type execRecorder struct {
	calls []execCall
	err   error
}

func (r *execRecorder) exec(path string, argv []string, env []string) error {
	r.calls = append(r.calls, execCall{path: path, argv: argv, env: env})
	return r.err
}

type fixture struct {
	buildPath string
	failPath  string
	output    *bytes.Buffer
	recorder  *execRecorder
	options   Options
}

// newFixture builds the table [build -> true, fail -> false "desc"]
// under the name "tool".
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		buildPath: testutil.Executable(t, t.TempDir(), "true", "exit 0\n"),
		failPath:  testutil.Executable(t, t.TempDir(), "false", "exit 1\n"),
		output:    &bytes.Buffer{},
		recorder:  &execRecorder{},
	}
	f.options = Options{
		Name: "tool",
		Table: mapping.Table{
			{Name: "build", Path: f.buildPath},
			{Name: "fail", Path: f.failPath, Description: "desc", HasDescription: true},
		},
		Output: f.output,
		Exec:   f.recorder.exec,
	}
	return f
}

func TestRun_SubcommandTransfersControl(t *testing.T) {
	f := newFixture(t)

	if err := Run(f.options, []string{"build"}); err != nil {
		t.Fatalf("Run(build) error: %v", err)
	}

	if len(f.recorder.calls) != 1 {
		t.Fatalf("exec called %d times, want 1", len(f.recorder.calls))
	}
	call := f.recorder.calls[0]
	if call.path != f.buildPath {
		t.Errorf("exec path = %q, want %q", call.path, f.buildPath)
	}
	if !slices.Equal(call.argv, []string{f.buildPath}) {
		t.Errorf("argv = %q, want only argv[0]", call.argv)
	}
	if !slices.Equal(call.env, os.Environ()) {
		t.Error("environment should be inherited unchanged")
	}
}

func TestRun_ForwardsRemainingArguments(t *testing.T) {
	f := newFixture(t)

	if err := Run(f.options, []string{"fail", "--verbose", "-x", "target", "--help"}); err != nil {
		t.Fatalf("Run(fail ...) error: %v", err)
	}

	if len(f.recorder.calls) != 1 {
		t.Fatalf("exec called %d times, want 1", len(f.recorder.calls))
	}
	want := []string{f.failPath, "--verbose", "-x", "target", "--help"}
	if got := f.recorder.calls[0].argv; !slices.Equal(got, want) {
		t.Errorf("argv = %q, want %q", got, want)
	}
}

func TestRun_BareNameResolvedThroughPath(t *testing.T) {
	f := newFixture(t)
	dir := t.TempDir()
	name := testutil.UniqueID("cmdbundle-dispatch-fake")
	script := testutil.Executable(t, dir, name, "")
	testutil.PrependPath(t, dir)
	f.options.Table = mapping.Table{{Name: "fake", Path: name}}

	if err := Run(f.options, []string{"fake", "arg"}); err != nil {
		t.Fatalf("Run(fake) error: %v", err)
	}

	call := f.recorder.calls[0]
	if call.path != script {
		t.Errorf("exec path = %q, want PATH-resolved %q", call.path, script)
	}
	// argv[0] keeps the name as declared, the way a shell would.
	if !slices.Equal(call.argv, []string{name, "arg"}) {
		t.Errorf("argv = %q", call.argv)
	}
}

func TestRun_UnknownSubcommand(t *testing.T) {
	f := newFixture(t)

	err := Run(f.options, []string{"nonexistent"})
	if err == nil {
		t.Fatal("Run(nonexistent) = nil, want error")
	}
	if !strings.Contains(err.Error(), `"nonexistent"`) {
		t.Errorf("error = %q, want it to name the invalid token", err.Error())
	}
	if code := process.ExitCode(err); code == 0 {
		t.Error("exit code = 0, want non-zero for an unknown subcommand")
	}
	if len(f.recorder.calls) != 0 {
		t.Errorf("exec called for an unknown subcommand: %+v", f.recorder.calls)
	}
}

func TestRun_NoSubcommandSucceeds(t *testing.T) {
	f := newFixture(t)

	if err := Run(f.options, nil); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(f.recorder.calls) != 0 {
		t.Errorf("exec called without a subcommand: %+v", f.recorder.calls)
	}
	if f.output.Len() != 0 {
		t.Errorf("output = %q, want nothing", f.output.String())
	}
}

func TestRun_UnexpectedTopLevelArgument(t *testing.T) {
	f := newFixture(t)

	err := Run(f.options, []string{"--", "build"})
	if err == nil || !strings.Contains(err.Error(), `unexpected argument "build"`) {
		t.Errorf("Run(-- build) = %v, want unexpected argument", err)
	}
	if len(f.recorder.calls) != 0 {
		t.Errorf("exec called: %+v", f.recorder.calls)
	}
}

func TestRun_Help(t *testing.T) {
	f := newFixture(t)
	f.options.Description = "Developer tooling."
	f.options.About = "Bundled commands"
	f.options.Author = "Platform Team"

	for _, args := range [][]string{{"--help"}, {"-h"}, {"help"}} {
		f.output.Reset()
		if err := Run(f.options, args); err != nil {
			t.Fatalf("Run(%q) error: %v", args, err)
		}
		output := f.output.String()
		for _, want := range []string{"tool", "build", "fail", "desc", "Developer tooling.", "Bundled commands", "Platform Team"} {
			if !strings.Contains(output, want) {
				t.Errorf("Run(%q) help missing %q\n\nFull output:\n%s", args, want, output)
			}
		}
	}
	if len(f.recorder.calls) != 0 {
		t.Errorf("exec called for help: %+v", f.recorder.calls)
	}
}

func TestRun_SubcommandHelp(t *testing.T) {
	f := newFixture(t)

	if err := Run(f.options, []string{"fail", "--help"}); err != nil {
		t.Fatalf("Run(fail --help) error: %v", err)
	}
	output := f.output.String()
	for _, want := range []string{"desc", "tool fail [args...]"} {
		if !strings.Contains(output, want) {
			t.Errorf("help missing %q\n\nFull output:\n%s", want, output)
		}
	}
	if len(f.recorder.calls) != 0 {
		t.Errorf("exec called for help: %+v", f.recorder.calls)
	}
}

func TestRun_Version(t *testing.T) {
	f := newFixture(t)
	f.options.Version = "1.4.0"

	if err := Run(f.options, []string{"--version"}); err != nil {
		t.Fatalf("Run(--version) error: %v", err)
	}
	if got := f.output.String(); got != "tool 1.4.0\n" {
		t.Errorf("output = %q, want %q", got, "tool 1.4.0\n")
	}
}

func TestRun_ExecFailureIsReported(t *testing.T) {
	f := newFixture(t)
	f.recorder.err = &process.ExecError{Path: f.buildPath, Err: os.ErrPermission}

	err := Run(f.options, []string{"build"})
	if err == nil {
		t.Fatal("Run(build) = nil, want the exec failure")
	}
	var execErr *process.ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("error %T should be *process.ExecError", err)
	}
	if code := process.ExitCode(err); code != process.ExitNotExecutable {
		t.Errorf("exit code = %d, want %d", code, process.ExitNotExecutable)
	}
}

func TestRun_MissingExecutable(t *testing.T) {
	f := newFixture(t)
	missing := filepath.Join(t.TempDir(), "missing")
	f.options.Table = mapping.Table{{Name: "gone", Path: missing}}

	err := Run(f.options, []string{"gone"})
	if err == nil {
		t.Fatal("Run(gone) = nil, want error")
	}
	if code := process.ExitCode(err); code != process.ExitNotFound {
		t.Errorf("exit code = %d, want %d (err: %v)", code, process.ExitNotFound, err)
	}
	if !strings.Contains(err.Error(), missing) {
		t.Errorf("error = %q, want it to name the path", err.Error())
	}
	if len(f.recorder.calls) != 0 {
		t.Errorf("exec called for a missing executable: %+v", f.recorder.calls)
	}
}

func TestRun_DuplicateNamesUseFirstDeclaration(t *testing.T) {
	f := newFixture(t)
	var logs bytes.Buffer
	f.options.Logger = slog.New(slog.NewJSONHandler(&logs, nil))
	f.options.Table = append(f.options.Table, mapping.CommandMapping{Name: "build", Path: f.failPath})

	if err := Run(f.options, []string{"build"}); err != nil {
		t.Fatalf("Run(build) error: %v", err)
	}
	if got := f.recorder.calls[0].path; got != f.buildPath {
		t.Errorf("exec path = %q, want the first declaration %q", got, f.buildPath)
	}

	var record map[string]any
	if err := json.Unmarshal(logs.Bytes(), &record); err != nil {
		t.Fatalf("expected one JSON warning, got %q: %v", logs.String(), err)
	}
	if record["level"] != "WARN" || record["command"] != "build" {
		t.Errorf("warning = %v, want WARN for command build", record)
	}
}

func TestRun_Idempotent(t *testing.T) {
	f := newFixture(t)

	for range 2 {
		if err := Run(f.options, []string{"fail", "x"}); err != nil {
			t.Fatalf("Run(fail x) error: %v", err)
		}
	}
	if len(f.recorder.calls) != 2 {
		t.Fatalf("exec called %d times, want 2", len(f.recorder.calls))
	}
	first, second := f.recorder.calls[0], f.recorder.calls[1]
	if first.path != second.path || !slices.Equal(first.argv, second.argv) {
		t.Errorf("runs differ: %+v vs %+v", first, second)
	}
}

func TestNew_RequiresName(t *testing.T) {
	_, err := New(Options{})
	if err == nil {
		t.Fatal("New() = nil error, want missing name")
	}
	var toolErr *cli.ToolError
	if !errors.As(err, &toolErr) || toolErr.Category != cli.CategoryValidation {
		t.Errorf("error = %v, want validation ToolError", err)
	}
}

func TestDispatcher_GrammarMirrorsSpec(t *testing.T) {
	f := newFixture(t)
	dispatcher, err := New(f.options)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	grammar := dispatcher.Grammar()
	if grammar.Name != "tool" {
		t.Errorf("grammar name = %q, want tool", grammar.Name)
	}
	var names []string
	for _, sub := range grammar.Subcommands {
		names = append(names, sub.Name)
		if !sub.PassThrough {
			t.Errorf("subcommand %q should be pass-through", sub.Name)
		}
	}
	if !slices.Equal(names, []string{"build", "fail"}) {
		t.Errorf("subcommands = %v, want [build fail]", names)
	}
	if grammar.Subcommands[1].Summary != "desc" {
		t.Errorf("fail summary = %q, want desc", grammar.Subcommands[1].Summary)
	}
}

func TestRun_DegenerateMappingsDoNotBlockOthers(t *testing.T) {
	f := newFixture(t)
	var logs bytes.Buffer
	f.options.Logger = slog.New(slog.NewJSONHandler(&logs, nil))
	f.options.Table = append(f.options.Table,
		mapping.CommandMapping{Name: "empty"},
		mapping.CommandMapping{Path: f.buildPath},
		mapping.CommandMapping{Name: "-x", Path: f.buildPath},
	)

	if err := Run(f.options, []string{"build"}); err != nil {
		t.Fatalf("Run(build) error: %v", err)
	}
	if len(f.recorder.calls) != 1 || f.recorder.calls[0].path != f.buildPath {
		t.Fatalf("exec calls = %+v, want one call to %s", f.recorder.calls, f.buildPath)
	}
	if got := strings.Count(logs.String(), "cannot be invoked"); got != 2 {
		t.Errorf("got %d warnings for names that cannot be invoked, want 2\n%s", got, logs.String())
	}

	// An empty path only fails once its subcommand runs.
	err := Run(f.options, []string{"empty"})
	if code := process.ExitCode(err); code != process.ExitNotFound {
		t.Errorf("Run(empty) exit code = %d, want %d (err: %v)", code, process.ExitNotFound, err)
	}
	if len(f.recorder.calls) != 1 {
		t.Errorf("exec called for an empty path: %+v", f.recorder.calls)
	}

	f.output.Reset()
	if err := Run(f.options, []string{"--help"}); err != nil {
		t.Fatalf("Run(--help) error: %v", err)
	}
	if strings.Contains(f.output.String(), "-x") {
		t.Errorf("help should leave out flag-like names:\n%s", f.output.String())
	}
}
