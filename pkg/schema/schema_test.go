package schema_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkuutti/screenshot-mcp/pkg/schema"
)

// Crop represents a rectangle on the screen.
type Crop struct {
	Left int  `json:"left" jsonschema:"title=Left,description=Left edge in pixels"`
	Top  *int `json:"top" jsonschema:"title=Top,description=Top edge in pixels"`
}

// SaveRequest represents a save request with optional crop.
type SaveRequest struct {
	Path   string   `json:"path" jsonschema:"title=Path,description=Destination path\\, absolute or relative,example=/tmp/a.png"`
	Format string   `json:"format,omitempty" jsonschema:"title=Format,description=Image format,default=png,enum=png,enum=jpeg"`
	Tags   []string `json:"tags,omitempty" jsonschema:"title=Tags,description=Free form tags"`
	Crop   *Crop    `json:"crop,omitempty" jsonschema:"title=Crop,description=Optional crop"`
}

func TestSchema(t *testing.T) {
	t.Parallel()

	t.Run("SaveRequest", func(t *testing.T) {
		t.Parallel()
		s, err := schema.New(reflect.TypeOf(SaveRequest{}))
		require.NoError(t, err)

		exp := `{
	"properties": {
		"path": {
			"type": "string",
			"title": "Path",
			"description": "Destination path, absolute or relative",
			"examples": [
				"/tmp/a.png"
			]
		},
		"format": {
			"type": "string",
			"enum": [
				"png",
				"jpeg"
			],
			"title": "Format",
			"description": "Image format",
			"default": "png"
		},
		"tags": {
			"items": {
				"type": "string"
			},
			"type": "array",
			"title": "Tags",
			"description": "Free form tags"
		},
		"crop": {
			"properties": {
				"left": {
					"type": "integer",
					"title": "Left",
					"description": "Left edge in pixels"
				},
				"top": {
					"type": "integer",
					"title": "Top",
					"description": "Top edge in pixels"
				}
			},
			"type": "object",
			"required": [
				"left",
				"top"
			],
			"title": "Crop",
			"description": "Optional crop"
		}
	},
	"type": "object",
	"required": [
		"path"
	]
}`
		assert.Equal(t, exp, s.String())

		raw, err := s.RawMessage()
		require.NoError(t, err)
		var sc jsonschema.Schema
		require.NoError(t, json.Unmarshal(raw, &sc))
		assert.Equal(t, 4, sc.Properties.Len())
		assert.Equal(t, []string{"path"}, sc.Required)
	})

	t.Run("Cached", func(t *testing.T) {
		t.Parallel()
		s1, err := schema.New(reflect.TypeOf(Crop{}))
		require.NoError(t, err)
		s2 := schema.MustNew(reflect.TypeOf(Crop{}))
		assert.Same(t, s1, s2)
	})

	t.Run("Local", func(t *testing.T) {
		t.Parallel()

		type pathRequest struct {
			FilePath string `json:"file_path" jsonschema:"description=Where to save"`
		}

		s, err := schema.New(reflect.TypeOf(pathRequest{}))
		require.NoError(t, err)
		exp := `{
	"properties": {
		"file_path": {
			"type": "string",
			"description": "Where to save"
		}
	},
	"type": "object",
	"required": [
		"file_path"
	]
}`
		assert.Equal(t, exp, s.String())
	})
}

func TestToInputSchema(t *testing.T) {
	t.Parallel()

	t.Run("resolves refs", func(t *testing.T) {
		t.Parallel()
		r := new(jsonschema.Reflector)
		r.AllowAdditionalProperties = true
		raw := r.Reflect(&SaveRequest{})
		require.NotEmpty(t, raw.Ref)

		sc, err := schema.ToInputSchema(raw)
		require.NoError(t, err)
		assert.Equal(t, "object", sc.Type)
		crop, ok := sc.Properties.Get("crop")
		require.True(t, ok)
		assert.Empty(t, crop.Ref)
		assert.Equal(t, "object", crop.Type)
	})

	t.Run("missing definition", func(t *testing.T) {
		t.Parallel()
		r := new(jsonschema.Reflector)
		raw := r.Reflect(&SaveRequest{})
		for name := range raw.Definitions {
			if raw.Ref != "#/$defs/"+name {
				delete(raw.Definitions, name)
			}
		}
		_, err := schema.ToInputSchema(raw)
		assert.ErrorContains(t, err, "definition not found")
	})
}
