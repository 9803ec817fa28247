// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import "github.com/p-lahanas/pl-coreutils/pkg/argparse"

// Keys of the tool arguments, as stored in argparse.ParsedArgs.
const (
	EchoString    = "string"
	EchoNoNewline = "no-newline"

	ListFile = "file"
	ListAll  = "all"
	ListLong = "long"
)

func helpAndVersion() []argparse.OptionSpec {
	return []argparse.OptionSpec{
		argparse.Flag("-h", "--"+helpKey, "Print help"),
		argparse.Flag("-V", "--"+versionKey, "Print version"),
	}
}

var echoCommand = argparse.MustNew(
	"pl-echo",
	"Display a line of text",
	[]argparse.ArgumentSpec{
		{Name: EchoString, Arity: 1, Description: "Output text", Optional: true, Variadic: true},
	},
	append([]argparse.OptionSpec{
		argparse.Flag("-n", "--"+EchoNoNewline, "Do not output the trailing newline"),
	}, helpAndVersion()...),
)

var listCommand = argparse.MustNew(
	"pl-ls",
	"List information about the FILEs (current directory by default).\n"+
		"Sort entries alphabetically.",
	[]argparse.ArgumentSpec{
		{Name: ListFile, Arity: 1, Description: "Files and/or directories", Optional: true, Variadic: true},
	},
	append([]argparse.OptionSpec{
		argparse.Flag("-a", "--"+ListAll, "Do not ignore entries starting with '.'"),
		argparse.Flag("-l", "--"+ListLong, "Use a long listing format"),
	}, helpAndVersion()...),
)

// EchoCommand returns the pl-echo command.
func EchoCommand() *argparse.Command {
	return echoCommand
}

// ListCommand returns the pl-ls command.
func ListCommand() *argparse.Command {
	return listCommand
}
