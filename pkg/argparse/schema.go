// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"slices"
	"strings"
)

// ArgumentSpec describes a positional argument. Positionals are consumed in
// the order they are declared in the schema.
type ArgumentSpec struct {
	// Name is the display name and the key used in ParsedArgs.
	Name string
	// Arity is the number of tokens the argument consumes. It must be at
	// least 1; use Positional for the common single-token case.
	Arity       int
	Description string
	// Optional marks an argument that may be left unassigned. Without it
	// every declared positional is required.
	Optional bool
	// Variadic lets the last positional absorb every remaining positional
	// token. Arity is then the minimum number of values once any is given.
	Variadic bool
}

// OptionSpec describes an option or flag identified by its short or long form.
type OptionSpec struct {
	Long  string // e.g. "--help"
	Short string // e.g. "-h", may be empty
	// Arity is the number of parameter tokens following the option. Zero
	// makes the option a flag.
	Arity       int
	Description string
}

// Key returns the ParsedArgs key for the option: its long form with the
// leading dashes removed.
func (o OptionSpec) Key() string {
	return strings.TrimLeft(o.Long, "-")
}

// Positional returns a required single-token positional argument.
func Positional(name, description string) ArgumentSpec {
	return ArgumentSpec{Name: name, Arity: 1, Description: description}
}

// Flag returns an option that takes no parameters.
func Flag(short, long, description string) OptionSpec {
	return OptionSpec{Long: long, Short: short, Description: description}
}

// Option returns an option that consumes arity parameter tokens.
func Option(short, long string, arity int, description string) OptionSpec {
	return OptionSpec{Long: long, Short: short, Arity: arity, Description: description}
}

// Schema is the validated, immutable description of a command. Build one
// with Build or a Builder; the zero value is not usable.
type Schema struct {
	name        string
	description string
	arguments   []ArgumentSpec
	options     []OptionSpec

	// byForm maps every short and long form to an index into options.
	byForm map[string]int
}

// Build validates the declarations and returns a Schema. The slices are
// copied so later changes by the caller do not leak into the schema.
func Build(name, description string, arguments []ArgumentSpec, options []OptionSpec) (*Schema, error) {
	s := &Schema{
		name:        name,
		description: description,
		arguments:   slices.Clone(arguments),
		options:     slices.Clone(options),
		byForm:      make(map[string]int, 2*len(options)),
	}
	if err := s.validateOptions(); err != nil {
		return nil, err
	}
	if err := s.validateArguments(); err != nil {
		return nil, err
	}
	return s, nil
}

// MustBuild is like Build but panics if the declarations are invalid. It is
// meant for schemas declared statically at program start.
func MustBuild(name, description string, arguments []ArgumentSpec, options []OptionSpec) *Schema {
	s, err := Build(name, description, arguments, options)
	if err != nil {
		panic("argparse: " + err.Error())
	}
	return s
}

func (s *Schema) validateOptions() error {
	for i, opt := range s.options {
		if opt.Long == "" {
			return &InvalidOptionFormError{Form: opt.Long, Reason: "long form must not be empty"}
		}
		if opt.Arity < 0 {
			return &InvalidOptionFormError{Form: opt.Long, Reason: "arity must not be negative"}
		}
		if opt.Key() == "" {
			return &InvalidOptionFormError{Form: opt.Long, Reason: "long form needs a name after the dashes"}
		}
		for _, form := range []string{opt.Long, opt.Short} {
			if form == "" {
				continue
			}
			if form == endOfOptions {
				return &InvalidOptionFormError{Form: form, Reason: `"--" is reserved to end option processing`}
			}
			if _, dup := s.byForm[form]; dup {
				return &DuplicateOptionFormError{Form: form}
			}
			s.byForm[form] = i
		}
	}
	// Forms are unique at this point, so option keys only collide when two
	// long forms differ in their dashes alone ("-x" and "--x").
	keys := make(map[string]bool, len(s.options))
	for _, opt := range s.options {
		if keys[opt.Key()] {
			return &DuplicateKeyError{Key: opt.Key()}
		}
		keys[opt.Key()] = true
	}
	return nil
}

func (s *Schema) validateArguments() error {
	keys := make(map[string]bool, len(s.options)+len(s.arguments))
	for _, opt := range s.options {
		keys[opt.Key()] = true
	}
	seenOptional := false
	for i, arg := range s.arguments {
		if arg.Name == "" {
			return &InvalidArgumentNameError{Position: i}
		}
		if arg.Arity <= 0 {
			return &ZeroArityPositionalError{Name: arg.Name}
		}
		if keys[arg.Name] {
			return &DuplicateKeyError{Key: arg.Name}
		}
		keys[arg.Name] = true

		if arg.Variadic && i != len(s.arguments)-1 {
			return &PositionalOrderError{Name: arg.Name, Reason: "only the last positional may be variadic"}
		}
		if arg.Optional {
			seenOptional = true
		} else if seenOptional {
			return &PositionalOrderError{Name: arg.Name, Reason: "required positional follows an optional one"}
		}
	}
	return nil
}

// Name returns the command name used in the usage synopsis.
func (s *Schema) Name() string { return s.name }

// Description returns the command description.
func (s *Schema) Description() string { return s.description }

// Arguments returns a copy of the positional specs in declared order.
func (s *Schema) Arguments() []ArgumentSpec { return slices.Clone(s.arguments) }

// Options returns a copy of the option specs in declared order.
func (s *Schema) Options() []OptionSpec { return slices.Clone(s.options) }

// LookupOption returns the option whose short or long form is exactly form.
func (s *Schema) LookupOption(form string) (OptionSpec, bool) {
	i, ok := s.byForm[form]
	if !ok {
		return OptionSpec{}, false
	}
	return s.options[i], true
}

// Builder accumulates declarations for a Schema. Errors are reported by
// Build, not by the individual calls.
type Builder struct {
	name        string
	description string
	arguments   []ArgumentSpec
	options     []OptionSpec
}

// NewBuilder starts a schema for the named command.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// Describe sets the command description.
func (b *Builder) Describe(description string) *Builder {
	b.description = description
	return b
}

// Argument appends positional specs in order.
func (b *Builder) Argument(specs ...ArgumentSpec) *Builder {
	b.arguments = append(b.arguments, specs...)
	return b
}

// Option appends option specs in order.
func (b *Builder) Option(specs ...OptionSpec) *Builder {
	b.options = append(b.options, specs...)
	return b
}

// Build validates the accumulated declarations.
func (b *Builder) Build() (*Schema, error) {
	return Build(b.name, b.description, b.arguments, b.options)
}

// MustBuild is like Build but panics on invalid declarations.
func (b *Builder) MustBuild() *Schema {
	return MustBuild(b.name, b.description, b.arguments, b.options)
}
