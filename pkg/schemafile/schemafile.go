// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schemafile loads option schemas for argtok from TOML or YAML
// documents.
//
// Both formats describe a list of options; an option without a type is a
// presence-only flag:
//
//	[[option]]
//	name = "count"
//	type = "usize"
//
//	[[option]]
//	name = "verbose"
package schemafile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/argtok/pkg/argtok"
	"gopkg.in/yaml.v3"
)

// Format is a schema document encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat is returned for file extensions other than .toml,
// .yaml and .yml.
var ErrUnsupportedFormat = errors.New("unsupported schema format")

// ErrUnknownKey is returned when a schema document has keys other than
// option, name and type.
var ErrUnknownKey = errors.New("unknown schema key")

// Document is the decoded form of a schema file.
type Document struct {
	Options []Option `toml:"option" yaml:"option"`
}

// Option is a single declaration. A nil Type declares a flag.
type Option struct {
	Name string  `toml:"name" yaml:"name"`
	Type *string `toml:"type,omitempty" yaml:"type,omitempty"`
}

// FormatForPath picks the format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Base(path))
}

// Load reads the schema file at path into a new registry.
func Load(path string) (*argtok.Registry, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schema: %w", err)
	}
	defer f.Close()

	reg := new(argtok.Registry)
	if err := Decode(f, format, reg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}

// Decode reads a schema document from r and registers its options into reg
// in document order.
func Decode(r io.Reader, format Format, reg *argtok.Registry) error {
	doc, err := decodeDocument(r, format)
	if err != nil {
		return err
	}
	return doc.Apply(reg)
}

func decodeDocument(r io.Reader, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, fmt.Errorf("failed to decode toml schema: %w", err)
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			names := make([]string, 0, len(keys))
			for _, k := range keys {
				names = append(names, k.String())
			}
			return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(names, ", "))
		}
	case FormatYAML:
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read schema: %w", err)
		}
		if len(bytes.TrimSpace(b)) == 0 {
			return &doc, nil
		}
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			if strings.Contains(err.Error(), "not found in type") {
				return nil, fmt.Errorf("%w: %v", ErrUnknownKey, err)
			}
			return nil, fmt.Errorf("failed to decode yaml schema: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return &doc, nil
}

// Apply registers every option of the document into reg.
func (d *Document) Apply(reg *argtok.Registry) error {
	for i, opt := range d.Options {
		if opt.Name == "" {
			return fmt.Errorf("option %d: missing name", i+1)
		}
		if _, err := reg.Register(opt.Name, opt.Type); err != nil {
			return fmt.Errorf("option %d: %w", i+1, err)
		}
	}
	return nil
}

// ParseDeclaration splits an inline "name[:type]" declaration.
// "count:usize" yields ("count", "usize"); "verbose" yields ("verbose", nil).
func ParseDeclaration(s string) (name string, typ *string) {
	name, t, ok := strings.Cut(s, ":")
	if !ok {
		return name, nil
	}
	return name, &t
}

// Declare registers inline declarations into reg.
func Declare(reg *argtok.Registry, decls []string) error {
	for _, d := range decls {
		name, typ := ParseDeclaration(d)
		if _, err := reg.Register(name, typ); err != nil {
			return fmt.Errorf("declaration %q: %w", d, err)
		}
	}
	return nil
}
