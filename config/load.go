package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// FormatOf picks the decoder from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return "", errors.Errorf("unknown scene file extension %q", filepath.Ext(path))
}

// Load reads, defaults and validates a scene file.
func Load(path string) (*Scene, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading scene %q", path)
	}
	s, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "scene %q", path)
	}
	return s, nil
}

// Parse decodes a scene document. Unknown keys are rejected.
func Parse(data []byte, format Format) (*Scene, error) {
	var s Scene
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "decoding yaml")
		}
	case TOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, errors.Wrap(err, "decoding toml")
		}
	default:
		return nil, errors.Errorf("unsupported format %q", format)
	}

	s.Defaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func splitPath(path string) []string {
	var parts []string
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
