// config.go — YAML/TOML taxonomy loading.
//
// Package config loads errtree taxonomies from YAML or TOML files.
//
// A taxonomy file declares the kinds and the factory-level base params:
//
//	# taxonomy.yaml
//	kinds:
//	  - name: Front
//	    postfix: " >>> "   # optional: postfix = separator + original message
//	  - name: Back
//	params:
//	  app: web
//
//	# taxonomy.toml
//	[[kinds]]
//	name = "Front"
//	postfix = " >>> "
//
//	[[kinds]]
//	name = "Back"
//
//	[params]
//	app = "web"
//
// Unlike errtree.Configure, which accepts anything, the loader validates the
// file: kind names must be non-empty and distinct.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	errtree "github.com/xgx-io/xgx-errtree"
)

// Format is the encoding of a taxonomy file.
type Format int

const (
	// FormatAuto detects the format from the file extension.
	FormatAuto Format = iota
	// FormatYAML is YAML (.yaml, .yml).
	FormatYAML
	// FormatTOML is TOML (.toml).
	FormatTOML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

var (
	// ErrUnsupportedFormat is returned for unknown extensions and formats.
	ErrUnsupportedFormat = errors.New("unsupported taxonomy format")
	// ErrEmptyKindName is returned when a kind has no name.
	ErrEmptyKindName = errors.New("kind name is empty")
	// ErrDuplicateKind is returned when two kinds share a name.
	ErrDuplicateKind = errors.New("duplicate kind name")
)

// KindSpec declares one kind. A nil Postfix means the kind has no postfix;
// a set Postfix (even "") appends separator + original message.
type KindSpec struct {
	Name    string  `yaml:"name" toml:"name"`
	Postfix *string `yaml:"postfix,omitempty" toml:"postfix,omitempty"`
}

// File is a decoded taxonomy file.
type File struct {
	Kinds  []KindSpec     `yaml:"kinds" toml:"kinds"`
	Params map[string]any `yaml:"params,omitempty" toml:"params,omitempty"`
}

// Load reads and validates the taxonomy at path, detecting the format from
// its extension.
func Load(path string) (*File, error) {
	format := DetectFormat(path)
	if format == FormatAuto {
		return nil, fmt.Errorf("config: load %s: %w", path, ErrUnsupportedFormat)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	return f, nil
}

// DetectFormat maps a file extension to a Format; FormatAuto means unknown.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatAuto
	}
}

// Parse decodes and validates data in the given format.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &f); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("parse %s: %w", format, ErrUnsupportedFormat)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks that kind names are non-empty and distinct.
func (f *File) Validate() error {
	seen := make(map[string]struct{}, len(f.Kinds))
	for i, k := range f.Kinds {
		if k.Name == "" {
			return fmt.Errorf("kinds[%d]: %w", i, ErrEmptyKindName)
		}
		if _, dup := seen[k.Name]; dup {
			return fmt.Errorf("kinds[%d]: %w: %q", i, ErrDuplicateKind, k.Name)
		}
		seen[k.Name] = struct{}{}
	}
	return nil
}

// Descriptors converts the declared kinds into errtree descriptors.
func (f *File) Descriptors() []errtree.KindDescriptor {
	out := make([]errtree.KindDescriptor, 0, len(f.Kinds))
	for _, k := range f.Kinds {
		d := errtree.KindDescriptor{Name: errtree.Kind(k.Name)}
		if k.Postfix != nil {
			d.Postfix = errtree.PostfixWith(*k.Postfix)
		}
		out = append(out, d)
	}
	return out
}

// BaseParams returns a copy of the declared params.
func (f *File) BaseParams() errtree.Params {
	return errtree.Params(f.Params).Clone()
}

// Options returns the errtree options the file implies.
func (f *File) Options() []errtree.Option {
	return []errtree.Option{errtree.WithBaseParams(f.BaseParams())}
}

// Configure builds a factory from the file. extra options are applied after
// the file's own, so a later WithBaseParams overrides file params key by key.
func (f *File) Configure(extra ...errtree.Option) *errtree.Factory {
	return errtree.Configure(f.Descriptors(), append(f.Options(), extra...)...)
}
