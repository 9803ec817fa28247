// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// pl-echo writes its arguments to standard output.
package main

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/p-lahanas/pl-coreutils/pkg/argparse"
	"github.com/p-lahanas/pl-coreutils/pkg/cli"
)

func main() {
	os.Exit(cli.Run(context.Background(), cli.EchoCommand(), os.Args[1:], cli.DefaultEnv(), echo))
}

func echo(_ context.Context, args argparse.ParsedArgs, env cli.Env) error {
	out := strings.Join(args.Values(cli.EchoString), " ")
	if !args.Has(cli.EchoNoNewline) {
		out += "\n"
	}
	_, err := io.WriteString(env.Stdout, out)
	return err
}
