// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is. Every schema error also matches ErrSchema and
// every parse error also matches ErrParse.
var (
	ErrSchema = errors.New("invalid schema")
	ErrParse  = errors.New("invalid arguments")

	ErrDuplicateOptionForm = errors.New("duplicate option form")
	ErrZeroArityPositional = errors.New("positional with zero arity")
	ErrInvalidOptionForm   = errors.New("invalid option form")
	ErrInvalidArgumentName = errors.New("invalid argument name")
	ErrPositionalOrder     = errors.New("invalid positional order")
	ErrDuplicateKey        = errors.New("duplicate key")

	ErrUnknownOption           = errors.New("unknown option")
	ErrMissingOptionParameter  = errors.New("missing option parameter")
	ErrMissingPositionalValue  = errors.New("missing positional value")
	ErrMissingRequiredArgument = errors.New("missing required argument")
	ErrUnexpectedArgument      = errors.New("unexpected argument")
)

// DuplicateOptionFormError is returned by Build when two options share a short
// or long form, or a long form equals another option's short form.
type DuplicateOptionFormError struct {
	Form string
}

func (e *DuplicateOptionFormError) Error() string {
	return fmt.Sprintf("option form %s is declared more than once", e.Form)
}

func (e *DuplicateOptionFormError) Unwrap() []error {
	return []error{ErrDuplicateOptionForm, ErrSchema}
}

// ZeroArityPositionalError is returned by Build for a positional that would
// consume no tokens.
type ZeroArityPositionalError struct {
	Name string
}

func (e *ZeroArityPositionalError) Error() string {
	return fmt.Sprintf("positional %s must have an arity of at least 1", e.Name)
}

func (e *ZeroArityPositionalError) Unwrap() []error {
	return []error{ErrZeroArityPositional, ErrSchema}
}

// InvalidOptionFormError is returned by Build for an option whose long form
// or arity cannot be used.
type InvalidOptionFormError struct {
	Form   string
	Reason string
}

func (e *InvalidOptionFormError) Error() string {
	if e.Form == "" {
		return fmt.Sprintf("invalid option: %s", e.Reason)
	}
	return fmt.Sprintf("invalid option %s: %s", e.Form, e.Reason)
}

func (e *InvalidOptionFormError) Unwrap() []error {
	return []error{ErrInvalidOptionForm, ErrSchema}
}

// InvalidArgumentNameError is returned by Build for a positional without a name.
type InvalidArgumentNameError struct {
	Position int
}

func (e *InvalidArgumentNameError) Error() string {
	return fmt.Sprintf("positional at index %d has no name", e.Position)
}

func (e *InvalidArgumentNameError) Unwrap() []error {
	return []error{ErrInvalidArgumentName, ErrSchema}
}

// PositionalOrderError is returned by Build when optional or variadic
// positionals are declared in a position that would make parsing ambiguous.
type PositionalOrderError struct {
	Name   string
	Reason string
}

func (e *PositionalOrderError) Error() string {
	return fmt.Sprintf("positional %s: %s", e.Name, e.Reason)
}

func (e *PositionalOrderError) Unwrap() []error {
	return []error{ErrPositionalOrder, ErrSchema}
}

// DuplicateKeyError is returned by Build when two declarations would store
// their values under the same ParsedArgs key.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("key %q is used by more than one argument or option", e.Key)
}

func (e *DuplicateKeyError) Unwrap() []error {
	return []error{ErrDuplicateKey, ErrSchema}
}

// UnknownOptionError is returned when a token looks like an option but
// matches no declared form.
type UnknownOptionError struct {
	Token string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option: %s", e.Token)
}

func (e *UnknownOptionError) Unwrap() []error {
	return []error{ErrUnknownOption, ErrParse}
}

// MissingOptionParameterError is returned when an option is followed by fewer
// parameter tokens than its arity.
type MissingOptionParameterError struct {
	Option string // the declared long form, e.g. "--output"
	Want   int
	Got    int
}

func (e *MissingOptionParameterError) Error() string {
	return fmt.Sprintf("option %s requires %d value(s), got %d", e.Option, e.Want, e.Got)
}

func (e *MissingOptionParameterError) Unwrap() []error {
	return []error{ErrMissingOptionParameter, ErrParse}
}

// MissingPositionalValueError is returned when a positional received some
// but not all of the tokens its arity requires.
type MissingPositionalValueError struct {
	Argument string
	Want     int
	Got      int
}

func (e *MissingPositionalValueError) Error() string {
	return fmt.Sprintf("argument %s requires %d value(s), got %d", e.Argument, e.Want, e.Got)
}

func (e *MissingPositionalValueError) Unwrap() []error {
	return []error{ErrMissingPositionalValue, ErrParse}
}

// MissingRequiredArgumentError is returned when input ends before a required
// positional was assigned.
type MissingRequiredArgumentError struct {
	Argument string
}

func (e *MissingRequiredArgumentError) Error() string {
	return fmt.Sprintf("missing required argument: %s", e.Argument)
}

func (e *MissingRequiredArgumentError) Unwrap() []error {
	return []error{ErrMissingRequiredArgument, ErrParse}
}

// UnexpectedArgumentError is returned for a positional token left over after
// every declared positional has been filled.
type UnexpectedArgumentError struct {
	Token string
}

func (e *UnexpectedArgumentError) Error() string {
	return fmt.Sprintf("unexpected argument: %s", e.Token)
}

func (e *UnexpectedArgumentError) Unwrap() []error {
	return []error{ErrUnexpectedArgument, ErrParse}
}
