// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func echoSchema(t *testing.T) *Schema {
	t.Helper()
	s, err := Build("echo", "Display a line of text",
		[]ArgumentSpec{Positional("string", "Output text")},
		[]OptionSpec{Flag("-h", "--help", "Print help")})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return s
}

func TestParseEchoScenario(t *testing.T) {
	s := echoSchema(t)

	tests := []struct {
		name    string
		tokens  []string
		want    ParsedArgs
		wantErr error
	}{
		{
			name:   "positional only",
			tokens: []string{"hello"},
			want:   ParsedArgs{"string": {"hello"}},
		},
		{
			name:   "flag then positional",
			tokens: []string{"-h", "hello"},
			want:   ParsedArgs{"help": {}, "string": {"hello"}},
		},
		{
			name:    "no tokens",
			tokens:  []string{},
			wantErr: &MissingRequiredArgumentError{Argument: "string"},
		},
		{
			name:    "unknown long option",
			tokens:  []string{"--bogus"},
			wantErr: &UnknownOptionError{Token: "--bogus"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(s, tt.tokens)
			if tt.wantErr != nil {
				if !reflect.DeepEqual(err, tt.wantErr) {
					t.Fatalf("Parse error = %#v, want %#v", err, tt.wantErr)
				}
				if got != nil {
					t.Errorf("Parse returned %v alongside an error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseFlagIsEmptyNotNil(t *testing.T) {
	got, err := Parse(echoSchema(t), []string{"hello", "--help"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got["help"] == nil {
		t.Errorf("help = nil, want an empty non-nil slice")
	}
	if !got.Has("help") {
		t.Errorf("Has(help) = false")
	}
	if _, ok := got.Value("help"); ok {
		t.Errorf("Value(help) reported a value for a flag")
	}
}

func TestParseOptions(t *testing.T) {
	s := MustBuild("tool", "",
		[]ArgumentSpec{Positional("in", "Input")},
		[]OptionSpec{
			Flag("-v", "--verbose", "Verbose"),
			Option("-o", "--output", 1, "Output"),
			Option("-r", "--range", 2, "Range"),
		})

	tests := []struct {
		name   string
		tokens []string
		want   ParsedArgs
	}{
		{
			name:   "short option with value",
			tokens: []string{"-o", "out.txt", "in.txt"},
			want:   ParsedArgs{"output": {"out.txt"}, "in": {"in.txt"}},
		},
		{
			name:   "long option after positional",
			tokens: []string{"in.txt", "--output", "out.txt"},
			want:   ParsedArgs{"output": {"out.txt"}, "in": {"in.txt"}},
		},
		{
			name:   "arity two",
			tokens: []string{"--range", "1", "9", "in.txt"},
			want:   ParsedArgs{"range": {"1", "9"}, "in": {"in.txt"}},
		},
		{
			name:   "option values may look like options",
			tokens: []string{"-o", "-5", "in.txt"},
			want:   ParsedArgs{"output": {"-5"}, "in": {"in.txt"}},
		},
		{
			name:   "repeated option accumulates",
			tokens: []string{"-o", "a", "in.txt", "--output", "b"},
			want:   ParsedArgs{"output": {"a", "b"}, "in": {"in.txt"}},
		},
		{
			name:   "repeated flag",
			tokens: []string{"-v", "in.txt", "--verbose"},
			want:   ParsedArgs{"verbose": {}, "in": {"in.txt"}},
		},
		{
			name:   "lone dash is positional",
			tokens: []string{"-"},
			want:   ParsedArgs{"in": {"-"}},
		},
		{
			name:   "double dash ends options",
			tokens: []string{"-v", "--", "--verbose"},
			want:   ParsedArgs{"verbose": {}, "in": {"--verbose"}},
		},
		{
			name:   "unknown option after double dash",
			tokens: []string{"--", "--bogus"},
			want:   ParsedArgs{"in": {"--bogus"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(s, tt.tokens)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.tokens, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.tokens, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	s := MustBuild("tool", "",
		[]ArgumentSpec{
			Positional("src", "Source"),
			{Name: "pair", Arity: 2, Description: "Pair"},
		},
		[]OptionSpec{
			Flag("-v", "--verbose", "Verbose"),
			Option("-r", "--range", 2, "Range"),
		})

	tests := []struct {
		name     string
		tokens   []string
		want     error
		sentinel error
	}{
		{
			name:     "option arity at end of input",
			tokens:   []string{"a", "b", "c", "--range", "1"},
			want:     &MissingOptionParameterError{Option: "--range", Want: 2, Got: 1},
			sentinel: ErrMissingOptionParameter,
		},
		{
			name:     "option arity cut by another option",
			tokens:   []string{"--range", "1", "-v", "a", "b", "c"},
			want:     &MissingOptionParameterError{Option: "--range", Want: 2, Got: 1},
			sentinel: ErrMissingOptionParameter,
		},
		{
			name:     "option arity cut by double dash",
			tokens:   []string{"-r", "--", "1", "2"},
			want:     &MissingOptionParameterError{Option: "--range", Want: 2, Got: 0},
			sentinel: ErrMissingOptionParameter,
		},
		{
			name:     "positional arity at end of input",
			tokens:   []string{"a", "b"},
			want:     &MissingPositionalValueError{Argument: "pair", Want: 2, Got: 1},
			sentinel: ErrMissingPositionalValue,
		},
		{
			name:     "positional arity cut by option",
			tokens:   []string{"a", "b", "-v", "c"},
			want:     &MissingPositionalValueError{Argument: "pair", Want: 2, Got: 1},
			sentinel: ErrMissingPositionalValue,
		},
		{
			name:     "missing second positional",
			tokens:   []string{"a", "-v"},
			want:     &MissingRequiredArgumentError{Argument: "pair"},
			sentinel: ErrMissingRequiredArgument,
		},
		{
			name:     "extra positional",
			tokens:   []string{"a", "b", "c", "d"},
			want:     &UnexpectedArgumentError{Token: "d"},
			sentinel: ErrUnexpectedArgument,
		},
		{
			name:     "unknown short option",
			tokens:   []string{"-x", "a", "b", "c"},
			want:     &UnknownOptionError{Token: "-x"},
			sentinel: ErrUnknownOption,
		},
		{
			name:     "unknown option inside positional arity",
			tokens:   []string{"s", "a", "--bogus"},
			want:     &UnknownOptionError{Token: "--bogus"},
			sentinel: ErrUnknownOption,
		},
		{
			name:     "unknown option is never positional",
			tokens:   []string{"a", "b", "c", "--verbose=1"},
			want:     &UnknownOptionError{Token: "--verbose=1"},
			sentinel: ErrUnknownOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(s, tt.tokens)
			if err == nil {
				t.Fatalf("Parse(%q) = %v, want error %v", tt.tokens, got, tt.want)
			}
			if !reflect.DeepEqual(err, tt.want) {
				t.Errorf("Parse(%q) error = %#v, want %#v", tt.tokens, err, tt.want)
			}
			if !errors.Is(err, tt.sentinel) || !errors.Is(err, ErrParse) {
				t.Errorf("error %v does not match %v and ErrParse", err, tt.sentinel)
			}
			if errors.Is(err, ErrSchema) {
				t.Errorf("parse error %v also matches ErrSchema", err)
			}
		})
	}
}

func TestParseOptionalAndVariadic(t *testing.T) {
	s := MustBuild("echo", "",
		[]ArgumentSpec{{Name: "string", Arity: 1, Optional: true, Variadic: true}},
		[]OptionSpec{Flag("-n", "--no-newline", "No newline")})

	tests := []struct {
		name   string
		tokens []string
		want   ParsedArgs
	}{
		{name: "nothing", tokens: nil, want: ParsedArgs{}},
		{name: "one", tokens: []string{"a"}, want: ParsedArgs{"string": {"a"}}},
		{
			name:   "interleaved flag",
			tokens: []string{"a", "-n", "b", "c"},
			want:   ParsedArgs{"string": {"a", "b", "c"}, "no-newline": {}},
		},
		{
			name:   "dash values after double dash",
			tokens: []string{"--", "-n", "-x"},
			want:   ParsedArgs{"string": {"-n", "-x"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(s, tt.tokens)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseVariadicMinimum(t *testing.T) {
	s := MustBuild("pairs", "",
		[]ArgumentSpec{
			Positional("name", "Name"),
			{Name: "items", Arity: 2, Variadic: true},
		}, nil)

	if _, err := Parse(s, []string{"n"}); !errors.Is(err, ErrMissingRequiredArgument) {
		t.Errorf("Parse(n) error = %v, want ErrMissingRequiredArgument", err)
	}
	_, err := Parse(s, []string{"n", "a"})
	want := &MissingPositionalValueError{Argument: "items", Want: 2, Got: 1}
	if !reflect.DeepEqual(err, want) {
		t.Errorf("Parse(n a) error = %#v, want %#v", err, want)
	}
	got, err := Parse(s, []string{"n", "a", "b", "c"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if diff := cmp.Diff(ParsedArgs{"name": {"n"}, "items": {"a", "b", "c"}}, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseOptionalPositionals(t *testing.T) {
	s := MustBuild("head", "",
		[]ArgumentSpec{
			Positional("file", "File"),
			{Name: "range", Arity: 2, Optional: true},
		}, nil)

	got, err := Parse(s, []string{"f"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got.Has("range") {
		t.Errorf("unsupplied optional positional has a key: %v", got)
	}
	if _, err := Parse(s, []string{"f", "1"}); !errors.Is(err, ErrMissingPositionalValue) {
		t.Errorf("Parse(f 1) error = %v, want ErrMissingPositionalValue", err)
	}
}

func TestParseRoundTrip(t *testing.T) {
	args := []ArgumentSpec{
		Positional("a", ""),
		{Name: "b", Arity: 3},
		{Name: "c", Arity: 2},
		Positional("d", ""),
	}
	s := MustBuild("rt", "", args, []OptionSpec{Flag("-h", "--help", "")})

	var tokens []string
	want := ParsedArgs{}
	for _, arg := range args {
		for i := 0; i < arg.Arity; i++ {
			v := fmt.Sprintf("%s%d", arg.Name, i)
			tokens = append(tokens, v)
			want[arg.Name] = append(want[arg.Name], v)
		}
	}

	got, err := Parse(s, tokens)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", tokens, err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePure(t *testing.T) {
	s := echoSchema(t)
	tokens := []string{"-h", "hello"}
	first, err := Parse(s, tokens)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	first["string"][0] = "mutated"
	second, err := Parse(s, tokens)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if diff := cmp.Diff(ParsedArgs{"help": {}, "string": {"hello"}}, second); diff != "" {
		t.Errorf("second Parse mismatch (-want +got):\n%s", diff)
	}
	if tokens[1] != "hello" {
		t.Errorf("Parse result aliases the input tokens")
	}
}

func TestParseConcurrent(t *testing.T) {
	s := MustBuild("tool", "",
		[]ArgumentSpec{Positional("in", "")},
		[]OptionSpec{Option("-o", "--output", 1, "")})

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := fmt.Sprintf("in-%d", i)
			got, err := Parse(s, []string{"-o", "out", in})
			if err != nil {
				errs <- err
				return
			}
			if v, _ := got.Value("in"); v != in {
				errs <- fmt.Errorf("in = %q, want %q", v, in)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestParsedArgsAccessors(t *testing.T) {
	p := ParsedArgs{"files": {"a", "b"}}
	if v, ok := p.Value("files"); !ok || v != "a" {
		t.Errorf("Value(files) = %q, %v", v, ok)
	}
	vals := p.Values("files")
	vals[0] = "changed"
	if p["files"][0] != "a" {
		t.Errorf("Values returned the underlying slice")
	}
	if p.Has("missing") {
		t.Errorf("Has(missing) = true")
	}
	if got := p.Values("missing"); got != nil {
		t.Errorf("Values(missing) = %v, want nil", got)
	}
}

func TestParsePositionalArityAfterDoubleDash(t *testing.T) {
	s := MustBuild("tool", "", []ArgumentSpec{{Name: "pair", Arity: 2}}, nil)

	got, err := Parse(s, []string{"--", "a", "--bogus"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if want := (ParsedArgs{"pair": {"a", "--bogus"}}); !reflect.DeepEqual(got, want) {
		t.Errorf("Parse = %v, want %v", got, want)
	}

	// A lone dash is a value, not an option.
	got, err = Parse(s, []string{"a", "-"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if want := (ParsedArgs{"pair": {"a", "-"}}); !reflect.DeepEqual(got, want) {
		t.Errorf("Parse = %v, want %v", got, want)
	}
}

func TestMissingOptionParameterNamesDeclaredForm(t *testing.T) {
	s := MustBuild("tool", "", nil, []OptionSpec{Option("", "-x", 1, "X")})
	_, err := Parse(s, []string{"-x"})
	if want := "option -x requires 1 value(s), got 0"; err == nil || err.Error() != want {
		t.Errorf("Parse error = %v, want %q", err, want)
	}
}
