// Package encoding renders values, such as the tool catalog, as JSON, YAML or TOML.
package encoding

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	jsonenc "github.com/tkuutti/screenshot-mcp/encoding/json"
	tomlenc "github.com/tkuutti/screenshot-mcp/encoding/toml"
	yamlenc "github.com/tkuutti/screenshot-mcp/encoding/yaml"
)

type Encoder interface {
	Marshal(v any) ([]byte, error)
}

type Mode = string

const (
	ModeJSON Mode = "json"
	ModeYAML Mode = "yaml"
	ModeTOML Mode = "toml"
)

// Modes lists the supported modes
var Modes = []Mode{ModeJSON, ModeYAML, ModeTOML}

func PredefinedEncoder(mode Mode) (Encoder, error) {
	switch mode {
	case ModeJSON:
		return jsonenc.NewEncoder(), nil
	case ModeYAML:
		return yamlenc.NewEncoder(), nil
	case ModeTOML:
		return tomlenc.NewEncoder(), nil
	default:
		return nil, errors.Newf("unsupported format: %s", mode)
	}
}

// Marshal encodes v in the given mode.
// Values are normalized through their JSON form first,
// so the `json` tags and custom JSON marshalers apply to every mode.
func Marshal(mode Mode, v any) ([]byte, error) {
	enc, err := PredefinedEncoder(mode)
	if err != nil {
		return nil, err
	}
	if mode != ModeJSON {
		v, err = normalize(v)
		if err != nil {
			return nil, err
		}
	}
	return enc.Marshal(v)
}

func normalize(v any) (any, error) {
	js, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal")
	}
	var res any
	if err = json.Unmarshal(js, &res); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal")
	}
	return res, nil
}
