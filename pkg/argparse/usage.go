// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import "strings"

// Render returns the usage text for s. The layout is fixed:
//
//	<description>
//
//	Usage: <name> [options] <arg1> <arg2>
//
//	Arguments:
//	arg1\t<description>
//
//	Options:
//	-s, --long\t<description>
//
// Sections follow declaration order and the text has no trailing newline.
func Render(s *Schema) string {
	var b strings.Builder

	b.WriteString(s.description)
	b.WriteString("\n\nUsage: ")
	b.WriteString(s.name)
	b.WriteString(" [options]")
	for _, arg := range s.arguments {
		b.WriteString(" ")
		b.WriteString(synopsisName(arg))
	}

	b.WriteString("\n\nArguments:\n")
	lines := make([]string, 0, len(s.arguments))
	for _, arg := range s.arguments {
		lines = append(lines, arg.Name+"\t"+arg.Description)
	}
	b.WriteString(strings.Join(lines, "\n"))

	b.WriteString("\n\nOptions:\n")
	lines = lines[:0]
	for _, opt := range s.options {
		forms := opt.Long
		if opt.Short != "" {
			forms = opt.Short + ", " + opt.Long
		}
		lines = append(lines, forms+"\t"+opt.Description)
	}
	b.WriteString(strings.Join(lines, "\n"))

	return b.String()
}

func synopsisName(arg ArgumentSpec) string {
	name := "<" + arg.Name + ">"
	if arg.Variadic {
		name += "..."
	}
	if arg.Optional {
		name = "[" + name + "]"
	}
	return name
}
