// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// pl-ls lists files and directory contents.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strconv"

	"github.com/p-lahanas/pl-coreutils/pkg/argparse"
	"github.com/p-lahanas/pl-coreutils/pkg/cli"
	"github.com/p-lahanas/pl-coreutils/pkg/fileutil"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentReads bounds the directories read at once.
const maxConcurrentReads = 8

const timeLayout = "Jan _2 15:04"

func main() {
	os.Exit(cli.Run(context.Background(), cli.ListCommand(), os.Args[1:], cli.DefaultEnv(), list))
}

// listing is what one operand shows: either the operand itself or the
// contents of a directory.
type listing struct {
	path    string
	isDir   bool
	entries []fileutil.Entry
	err     error
}

func list(ctx context.Context, args argparse.ParsedArgs, env cli.Env) error {
	paths := args.Values(cli.ListFile)
	if len(paths) == 0 {
		paths = []string{"."}
	}
	slices.Sort(paths)
	all := args.Has(cli.ListAll)
	long := args.Has(cli.ListLong)

	listings, err := readAll(ctx, paths, all)
	if err != nil {
		return err
	}

	logger := log.New(env.Stderr, "pl-ls: ", 0)
	failed := false
	headers := len(paths) > 1
	first := true
	for _, l := range listings {
		if l.err != nil {
			logger.Printf("cannot access %s: %v", l.path, l.err)
			failed = true
			continue
		}
		if !first {
			fmt.Fprintln(env.Stdout)
		}
		first = false
		if headers && l.isDir {
			fmt.Fprintf(env.Stdout, "%s:\n", l.path)
		}
		writeEntries(env.Stdout, l.entries, long)
	}
	if failed {
		return &cli.ExitError{Code: cli.ExitFailure}
	}
	return nil
}

// readAll reads every path concurrently. Per-path failures are kept on the
// listing; only cancellation fails the whole read.
func readAll(ctx context.Context, paths []string, all bool) ([]listing, error) {
	listings := make([]listing, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			listings[i] = read(path, all)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return listings, nil
}

func read(path string, all bool) listing {
	l := listing{path: path}
	e, err := fileutil.Stat(path)
	if err != nil {
		l.err = err
		return l
	}
	if !e.IsDir() {
		// A symlink operand is listed as itself.
		l.entries = []fileutil.Entry{e}
		return l
	}
	l.isDir = true
	l.entries, l.err = fileutil.ReadDir(path, all)
	return l
}

func writeEntries(w io.Writer, entries []fileutil.Entry, long bool) {
	if !long {
		for _, e := range entries {
			fmt.Fprintln(w, e.Name)
		}
		return
	}
	linkWidth, sizeWidth := 1, 1
	for _, e := range entries {
		linkWidth = max(linkWidth, len(strconv.FormatUint(e.Links, 10)))
		sizeWidth = max(sizeWidth, len(strconv.FormatInt(e.Size, 10)))
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s %*d %*d %s %s\n",
			e.Mode, linkWidth, e.Links, sizeWidth, e.Size,
			e.ModTime.Format(timeLayout), e.Name)
	}
}
