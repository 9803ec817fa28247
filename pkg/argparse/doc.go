// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argparse parses command-line tokens against a declared schema of
// positional arguments and options, and renders usage text from the same
// schema.
//
// A schema is declared once, validated at construction and never changes:
//
//	cmd := argparse.MustNew("greet", "Print a greeting",
//	    []argparse.ArgumentSpec{
//	        argparse.Positional("name", "Who to greet"),
//	    },
//	    []argparse.OptionSpec{
//	        argparse.Flag("-h", "--help", "Show help"),
//	        argparse.Option("-g", "--greeting", 1, "Greeting to use"),
//	    })
//
//	args, err := cmd.Parse(os.Args[1:])
//	if err != nil {
//	    fmt.Fprintln(os.Stderr, cmd.Usage())
//	    fmt.Fprintf(os.Stderr, "Error: %v\n", err)
//	    os.Exit(2)
//	}
//	name, _ := args.Value("name")
//
// # Token Classification
//
// Tokens are read left to right with no backtracking:
//   - A token equal to a declared short or long form is an option and takes
//     the next Arity tokens as its values. Running out of input, or reaching
//     another declared option or "--", fails with MissingOptionParameterError.
//   - Any other token starting with "-" (except "-" itself) fails with
//     UnknownOptionError.
//   - Everything else fills the next positional, which takes Arity tokens.
//     Those tokens are classified too: an undeclared option among them
//     fails with UnknownOptionError.
//   - After "--" every token is positional.
//
// Option values are stored under the long form without its dashes, so
// "--output" is read back with args.Values("output"). Positionals are stored
// under their Name.
//
// # Required Positionals
//
// Every positional is required unless it sets Optional. Optional positionals
// must come after required ones, and only the last positional may be Variadic.
//
// # Errors
//
// Schema problems are reported by Build (and New) and match ErrSchema; parse
// failures match ErrParse. Each has its own type and sentinel, for example
// *UnknownOptionError and ErrUnknownOption. The package never prints, logs or
// exits; reporting is left to the caller.
package argparse
