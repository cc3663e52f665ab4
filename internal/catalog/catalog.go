// Package catalog encodes the service catalog for export.
//
// Supported formats are JSON (sonic), YAML (goccy/go-yaml) and TOML
// (go-toml/v2). TOML has no top-level arrays, so every format wraps the
// service list in a document with a "services" key.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/carpentries-incubator/python-testing/internal/types"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Format names an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat is returned for unsupported format names.
var ErrUnknownFormat = errors.New("unknown catalog format")

// Document is the exported catalog shape.
type Document struct {
	Services []types.Service `json:"services" yaml:"services" toml:"services"`
}

// ParseFormat parses a format name. The empty string means JSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// ContentType returns the HTTP content type for f.
func (f Format) ContentType() string {
	switch f {
	case FormatYAML:
		return "application/yaml"
	case FormatTOML:
		return "application/toml"
	default:
		return "application/json"
	}
}

// Encode renders services in the requested format.
func Encode(services []types.Service, format Format) ([]byte, error) {
	doc := Document{Services: services}
	if doc.Services == nil {
		doc.Services = []types.Service{}
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = sonic.ConfigStd.MarshalIndent(doc, "", "  ")
	case FormatYAML:
		data, err = yaml.Marshal(doc)
	case FormatTOML:
		data, err = toml.Marshal(doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("encode catalog as %s: %w", format, err)
	}
	return data, nil
}
