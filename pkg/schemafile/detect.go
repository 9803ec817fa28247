// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schemafile

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type Format int

const (
	Unknown Format = iota
	TOML
	YAML
	JSON
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	}
	return "unknown"
}

// DetectFormat picks the format of a schema file, first from the extension of
// name and then from data.
func DetectFormat(name string, data []byte) (Format, error) {
	if f, ok := detectByName(name); ok {
		return f, nil
	}
	return detectByContent(data)
}

func detectByName(name string) (Format, bool) {
	if name == "" {
		return Unknown, false
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		return TOML, true
	case ".yaml", ".yml":
		return YAML, true
	case ".json":
		return JSON, true
	}
	return Unknown, false
}

func detectByContent(data []byte) (Format, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Unknown, ErrUnknownFormat
	}
	if trimmed[0] == '{' {
		return JSON, nil
	}
	var doc map[string]any
	if err := toml.Unmarshal(trimmed, &doc); err == nil {
		return TOML, nil
	}
	doc = nil
	if err := yaml.Unmarshal(trimmed, &doc); err == nil && doc != nil {
		return YAML, nil
	}
	return Unknown, ErrUnknownFormat
}
