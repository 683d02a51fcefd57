package emitter

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/manoooz/apkconf/pkg/domain/model"
)

// Format is the encoding of the emitted packaging configuration
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTOML, FormatJSON:
		return f, nil
	default:
		return "", goerr.New("unknown output format", goerr.V("format", s))
	}
}

// Write encodes cfg to w
func Write(w io.Writer, cfg *model.PackagingConfig, format Format) error {
	switch format {
	case FormatTOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		if err := enc.Encode(cfg); err != nil {
			return goerr.Wrap(err, "failed to encode TOML")
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			return goerr.Wrap(err, "failed to encode JSON")
		}
	default:
		return goerr.New("unknown output format", goerr.V("format", format))
	}
	return nil
}
