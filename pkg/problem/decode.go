package problem

import (
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/cyclelab/tradecycle/pkg/errors"
)

// Format identifies a problem file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// DetectFormat maps a file path to its problem format by extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.New(errors.ErrCodeUnsupported,
			"unsupported problem file extension %q (want .json or .toml)", filepath.Ext(path))
	}
}

// Decode reads a problem document from r in the given format.
// The returned problem is decoded but not validated; call
// [Problem.Validate] before solving.
func Decode(r io.Reader, format Format) (*Problem, error) {
	var p Problem
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&p); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode JSON problem")
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&p); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode TOML problem")
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unknown problem format %q", format)
	}
	return &p, nil
}
