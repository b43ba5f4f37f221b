package blueprint

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/linden/pkg/errors"
)

// Format is a blueprint file encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ValidFormats lists the supported formats.
var ValidFormats = map[Format]bool{
	FormatJSON: true,
	FormatTOML: true,
	FormatYAML: true,
}

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat,
			"cannot tell blueprint format from %q (use .json, .toml, or .yaml)", path)
	}
}

// Marshal encodes b in format f.
func Marshal(b *Blueprint, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(b, "", "  ")
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode blueprint as json")
		}
		return append(data, '\n'), nil
	case FormatTOML:
		if b.Seed > MaxSeed {
			return nil, errors.New(errors.ErrCodeInvalidBlueprint, "seed %d does not fit a toml integer", b.Seed)
		}
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(b); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode blueprint as toml")
		}
		return buf.Bytes(), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(b); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode blueprint as yaml")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode blueprint as yaml")
		}
		return buf.Bytes(), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown blueprint format %q", f)
	}
}

// Unmarshal decodes a blueprint in format f, applies defaults, and
// validates it.
func Unmarshal(data []byte, f Format) (*Blueprint, error) {
	var b Blueprint
	var err error
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&b)
	case FormatTOML:
		var md toml.MetaData
		md, err = toml.Decode(string(data), &b)
		if err == nil {
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				err = errors.New(errors.ErrCodeInvalidBlueprint, "unknown key %q", undecoded[0].String())
			}
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&b)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown blueprint format %q", f)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidBlueprint, err, "decode %s blueprint", f)
	}

	b.SetDefaults()
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// Load reads a blueprint file, choosing the format from its extension.
func Load(path string) (*Blueprint, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "blueprint %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read blueprint %s", path)
	}
	return Unmarshal(data, f)
}

// Save writes b to path in the format given by its extension.
func Save(b *Blueprint, path string) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Marshal(b, f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write blueprint %s", path)
	}
	return nil
}
