// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"slices"
	"strings"
)

// endOfOptions stops option processing; every later token is positional.
const endOfOptions = "--"

// ParsedArgs maps positional names and option keys to the raw tokens they
// consumed. A flag that was given maps to an empty slice; anything that was
// not given has no entry.
type ParsedArgs map[string][]string

// Has reports whether key was supplied.
func (p ParsedArgs) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Value returns the first value recorded for key.
func (p ParsedArgs) Value(key string) (string, bool) {
	vals := p[key]
	if len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// Values returns a copy of the values recorded for key.
func (p ParsedArgs) Values(key string) []string {
	return slices.Clone(p[key])
}

// Parse matches tokens against s in a single left-to-right pass. Once an
// option or positional is matched it consumes exactly its arity in tokens;
// those tokens are never classified again.
//
// Tokens must not include the program name.
func Parse(s *Schema, tokens []string) (ParsedArgs, error) {
	p := parser{schema: s, tokens: tokens, out: make(ParsedArgs)}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.out, nil
}

type parser struct {
	schema *Schema
	tokens []string
	out    ParsedArgs

	cur         int  // index of the next unread token
	pos         int  // index of the next pending positional spec
	optionsDone bool // set once "--" was seen
}

func (p *parser) run() error {
	for p.cur < len(p.tokens) {
		tok := p.tokens[p.cur]
		if !p.optionsDone {
			if tok == endOfOptions {
				p.optionsDone = true
				p.cur++
				continue
			}
			if opt, ok := p.schema.LookupOption(tok); ok {
				if err := p.consumeOption(opt); err != nil {
					return err
				}
				continue
			}
			if looksLikeOption(tok) {
				return &UnknownOptionError{Token: tok}
			}
		}
		if err := p.consumePositional(); err != nil {
			return err
		}
	}
	return p.finish()
}

func (p *parser) consumeOption(opt OptionSpec) error {
	vals := p.take(p.cur+1, opt.Arity)
	if len(vals) < opt.Arity {
		return &MissingOptionParameterError{Option: opt.Long, Want: opt.Arity, Got: len(vals)}
	}
	key := opt.Key()
	if p.out[key] == nil {
		p.out[key] = []string{}
	}
	p.out[key] = append(p.out[key], vals...)
	p.cur += 1 + len(vals)
	return nil
}

func (p *parser) consumePositional() error {
	if p.pos >= len(p.schema.arguments) {
		return &UnexpectedArgumentError{Token: p.tokens[p.cur]}
	}
	arg := p.schema.arguments[p.pos]
	if arg.Variadic {
		// The variadic spec is always last and stays pending until the end.
		p.out[arg.Name] = append(p.out[arg.Name], p.tokens[p.cur])
		p.cur++
		return nil
	}
	vals := p.take(p.cur, arg.Arity)
	if !p.optionsDone {
		// The first token was already classified; the rest were not.
		for _, v := range vals[1:] {
			if looksLikeOption(v) {
				return &UnknownOptionError{Token: v}
			}
		}
	}
	if len(vals) < arg.Arity {
		return &MissingPositionalValueError{Argument: arg.Name, Want: arg.Arity, Got: len(vals)}
	}
	p.out[arg.Name] = vals
	p.cur += len(vals)
	p.pos++
	return nil
}

// take returns up to n tokens starting at from. Before "--" it stops early at
// a token that would start something new: a declared option form or "--".
// Option parameters are taken verbatim; positionals check what they took.
func (p *parser) take(from, n int) []string {
	vals := make([]string, 0, n)
	for i := from; i < len(p.tokens) && len(vals) < n; i++ {
		tok := p.tokens[i]
		if !p.optionsDone && p.isBoundary(tok) {
			break
		}
		vals = append(vals, tok)
	}
	return vals
}

func (p *parser) isBoundary(tok string) bool {
	if tok == endOfOptions {
		return true
	}
	_, ok := p.schema.LookupOption(tok)
	return ok
}

func (p *parser) finish() error {
	for _, arg := range p.schema.arguments[p.pos:] {
		got := len(p.out[arg.Name])
		switch {
		case got == 0 && arg.Optional:
		case got == 0:
			return &MissingRequiredArgumentError{Argument: arg.Name}
		case got < arg.Arity:
			// Only a variadic spec can be partially filled here.
			return &MissingPositionalValueError{Argument: arg.Name, Want: arg.Arity, Got: got}
		}
	}
	return nil
}

// looksLikeOption reports whether tok uses option syntax. A lone "-" is a
// positional, conventionally standing for stdin.
func looksLikeOption(tok string) bool {
	return len(tok) > 1 && strings.HasPrefix(tok, "-")
}
