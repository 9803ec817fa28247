// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schemafile loads command schemas declared in TOML, YAML or JSON.
//
// A schema file looks like:
//
//	name = "person"
//	description = "Describe a person"
//
//	[[arguments]]
//	name = "first_name"
//	description = "First name"
//
//	[[options]]
//	long = "--age"
//	short = "-a"
//	arity = 1
//	description = "Age in years"
//
// An argument without an arity takes one token; an option without one is a
// flag. Files go through argparse.New, so they are validated like any other
// declaration.
package schemafile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/p-lahanas/pl-coreutils/pkg/argparse"
	"gopkg.in/yaml.v3"
)

var (
	ErrMissingName   = errors.New("schema file has no name")
	ErrUnknownFormat = errors.New("unable to detect schema file format")
	ErrInvalidField  = errors.New("unknown or mistyped field in schema file")
)

type file struct {
	Name        string     `toml:"name" yaml:"name"`
	Description string     `toml:"description" yaml:"description"`
	Arguments   []argument `toml:"arguments" yaml:"arguments"`
	Options     []option   `toml:"options" yaml:"options"`
}

type argument struct {
	Name        string `toml:"name" yaml:"name"`
	Arity       *int   `toml:"arity" yaml:"arity"`
	Description string `toml:"description" yaml:"description"`
	Optional    bool   `toml:"optional" yaml:"optional"`
	Variadic    bool   `toml:"variadic" yaml:"variadic"`
}

type option struct {
	Long        string `toml:"long" yaml:"long"`
	Short       string `toml:"short" yaml:"short"`
	Arity       int    `toml:"arity" yaml:"arity"`
	Description string `toml:"description" yaml:"description"`
}

// Load reads the schema file at path and returns the command it declares.
func Load(path string) (*argparse.Command, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	format, err := DetectFormat(path, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cmd, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cmd, nil
}

// Decode reads a schema in the given format from r.
func Decode(r io.Reader, format Format) (*argparse.Command, error) {
	var f file
	switch format {
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&f)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidField, undecoded[0])
		}
	case YAML, JSON:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			var typeErr *yaml.TypeError
			if errors.As(err, &typeErr) {
				return nil, fmt.Errorf("%w: %s", ErrInvalidField, strings.Join(typeErr.Errors, "; "))
			}
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	return f.command()
}

func (f *file) command() (*argparse.Command, error) {
	if f.Name == "" {
		return nil, ErrMissingName
	}
	args := make([]argparse.ArgumentSpec, 0, len(f.Arguments))
	for _, a := range f.Arguments {
		arity := 1
		if a.Arity != nil {
			arity = *a.Arity
		}
		args = append(args, argparse.ArgumentSpec{
			Name:        a.Name,
			Arity:       arity,
			Description: a.Description,
			Optional:    a.Optional,
			Variadic:    a.Variadic,
		})
	}
	opts := make([]argparse.OptionSpec, 0, len(f.Options))
	for _, o := range f.Options {
		opts = append(opts, argparse.OptionSpec{
			Long:        o.Long,
			Short:       o.Short,
			Arity:       o.Arity,
			Description: o.Description,
		})
	}
	return argparse.New(f.Name, f.Description, args, opts)
}
