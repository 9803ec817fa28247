// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/p-lahanas/pl-coreutils/pkg/argparse"
	"github.com/p-lahanas/pl-coreutils/pkg/tui"
)

// Exit statuses returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

const (
	helpKey    = "help"
	versionKey = "version"
)

// version is set at build time with
// -ldflags "-X github.com/p-lahanas/pl-coreutils/pkg/cli.version=1.2.3".
var version = "1.0.0"

// Version returns the tool version. A malformed build-time value reports as
// 0.0.0-dev rather than failing.
func Version() *semver.Version {
	v, err := semver.NewVersion(version)
	if err != nil {
		return semver.MustParse("0.0.0-dev")
	}
	return v
}

// Env is where a tool writes its output.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
	Color  tui.Colorizer
}

// DefaultEnv writes to the process's stdout and stderr, coloring errors when
// stderr is a terminal.
func DefaultEnv() Env {
	return Env{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Color:  tui.NewColorizer(os.Stderr, true),
	}
}

// Handler runs a tool once its arguments have been parsed.
type Handler func(ctx context.Context, args argparse.ParsedArgs, env Env) error

// ExitError makes Run exit with Code. When Err is nil nothing is printed,
// which suits handlers that already reported their own problems.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Run parses args with cmd and calls handler. It returns the process exit
// status:
//   - a declared --help (or its short form) prints usage to stdout and
//     returns ExitOK before any other validation;
//   - a declared --version prints "<name> <version>" and returns ExitOK;
//   - a parse error prints dimmed usage and the error to stderr and returns
//     ExitUsage;
//   - a handler error is printed to stderr and returns ExitFailure, or the
//     code of an *ExitError.
func Run(ctx context.Context, cmd *argparse.Command, args []string, env Env, handler Handler) int {
	if requested(cmd.Schema(), args, helpKey) {
		fmt.Fprintln(env.Stdout, cmd.Usage())
		return ExitOK
	}
	if requested(cmd.Schema(), args, versionKey) {
		fmt.Fprintf(env.Stdout, "%s %s\n", cmd.Name(), Version())
		return ExitOK
	}

	parsed, err := cmd.Parse(args)
	if err != nil {
		fmt.Fprintln(env.Stderr, env.Color.Dim(cmd.Usage()))
		fmt.Fprintln(env.Stderr)
		env.PrintError(err)
		return ExitUsage
	}

	if err := handler(ctx, parsed, env); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Err != nil {
				env.PrintError(exitErr.Err)
			}
			return exitErr.Code
		}
		env.PrintError(err)
		return ExitFailure
	}
	return ExitOK
}

// requested reports whether the option stored under key is declared and one
// of its forms appears before "--".
func requested(s *argparse.Schema, args []string, key string) bool {
	var opt argparse.OptionSpec
	found := false
	for _, o := range s.Options() {
		if o.Key() == key {
			opt, found = o, true
			break
		}
	}
	if !found {
		return false
	}
	before, _ := SplitAtDoubleDash(args)
	for _, arg := range before {
		if arg == opt.Long || (opt.Short != "" && arg == opt.Short) {
			return true
		}
	}
	return false
}

// PrintError writes err to e.Stderr the way Run reports failures.
func (e Env) PrintError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(e.Stderr, "%s %v\n", e.Color.Error("Error:"), err)
}

// SplitAtDoubleDash splits args around the first "--", which is dropped.
func SplitAtDoubleDash(args []string) ([]string, []string) {
	for i, arg := range args {
		if arg == "--" {
			if i+1 < len(args) {
				return args[:i], args[i+1:]
			}
			return args[:i], nil
		}
	}
	return args, nil
}
