// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// pl-args parses tokens against a command declared in a schema file and
// prints what each argument received.
//
//	pl-args --schema person.toml -- John Doe --age 42
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/p-lahanas/pl-coreutils/pkg/argparse"
	"github.com/p-lahanas/pl-coreutils/pkg/cli"
	"github.com/p-lahanas/pl-coreutils/pkg/schemafile"
	"github.com/shayne/yargs"
)

const usage = "Usage: pl-args --schema FILE [--json] [--] TOKENS..."

var errNoSchema = errors.New("--schema is required")

type flagsParsed struct {
	Schema string `flag:"schema" short:"s" help:"Schema file (TOML, YAML or JSON)"`
	JSON   bool   `flag:"json" help:"Print the parsed arguments as JSON"`
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], cli.DefaultEnv()))
}

func run(ctx context.Context, args []string, env cli.Env) int {
	flags, tokens, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(env.Stderr, usage)
		env.PrintError(err)
		return cli.ExitUsage
	}
	cmd, err := schemafile.Load(flags.Schema)
	if err != nil {
		env.PrintError(err)
		return cli.ExitFailure
	}
	return cli.Run(ctx, cmd, tokens, env, func(_ context.Context, parsed argparse.ParsedArgs, env cli.Env) error {
		if flags.JSON {
			return writeJSON(env.Stdout, parsed)
		}
		return writeText(env.Stdout, cmd.Schema(), parsed)
	})
}

// parseFlags takes pl-args' own flags out of args. Everything else, minus a
// leading "--", is left for the schema.
func parseFlags(args []string) (flagsParsed, []string, error) {
	result, err := yargs.ParseKnownFlags[flagsParsed](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return flagsParsed{}, nil, err
	}
	if result.Flags.Schema == "" {
		return flagsParsed{}, nil, errNoSchema
	}
	tokens := result.RemainingArgs
	if len(tokens) > 0 && tokens[0] == "--" {
		tokens = tokens[1:]
	}
	return result.Flags, tokens, nil
}

// writeText prints one "key: values" line per supplied entry, positionals
// first, in declared order.
func writeText(w io.Writer, s *argparse.Schema, parsed argparse.ParsedArgs) error {
	var keys []string
	for _, a := range s.Arguments() {
		keys = append(keys, a.Name)
	}
	for _, o := range s.Options() {
		keys = append(keys, o.Key())
	}
	var b strings.Builder
	for _, key := range keys {
		vals, ok := parsed[key]
		if !ok {
			continue
		}
		b.WriteString(key)
		b.WriteString(":")
		if len(vals) > 0 {
			b.WriteString(" ")
			b.WriteString(strings.Join(vals, " "))
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeJSON(w io.Writer, parsed argparse.ParsedArgs) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(parsed)
}
