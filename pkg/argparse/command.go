// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

// Command binds a Schema to its usage renderer and parser. It is the value
// tools hold for the lifetime of the process; it is safe for concurrent use.
type Command struct {
	schema *Schema
	usage  string
}

// New builds the schema and returns a Command for it.
func New(name, description string, arguments []ArgumentSpec, options []OptionSpec) (*Command, error) {
	s, err := Build(name, description, arguments, options)
	if err != nil {
		return nil, err
	}
	return NewFromSchema(s), nil
}

// MustNew is like New but panics if the declarations are invalid.
func MustNew(name, description string, arguments []ArgumentSpec, options []OptionSpec) *Command {
	return NewFromSchema(MustBuild(name, description, arguments, options))
}

// NewFromSchema returns a Command for an already validated schema.
func NewFromSchema(s *Schema) *Command {
	return &Command{schema: s, usage: Render(s)}
}

// Name returns the command name.
func (c *Command) Name() string { return c.schema.name }

// Schema returns the bound schema.
func (c *Command) Schema() *Schema { return c.schema }

// Usage returns the rendered usage text.
func (c *Command) Usage() string { return c.usage }

// Parse parses args, which must not include the program name.
func (c *Command) Parse(args []string) (ParsedArgs, error) {
	return Parse(c.schema, args)
}
