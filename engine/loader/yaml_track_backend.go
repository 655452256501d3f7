package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlTrackBackend decodes YAML track documents.
// Reference: https://pkg.go.dev/gopkg.in/yaml.v3
type yamlTrackBackend struct{}

var _ LoaderBackend = &yamlTrackBackend{}

// newYAMLTrackBackend creates a new YAML decoding backend.
//
// Returns:
//   - LoaderBackend: the YAML backend
func newYAMLTrackBackend() LoaderBackend {
	return &yamlTrackBackend{}
}

func (y *yamlTrackBackend) Decode(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	normalizeStringKeyed(doc)
	return doc, nil
}

// normalizeStringKeyed rewrites every nested mapping to string keys in place.
// yaml.v3 decodes a mapping with non-string keys (unquoted numeric timestamps,
// the usual way keyframe times are authored) to map[any]any rather than
// map[string]any; stringifying the keys gives the track decoder one shape for
// both that case and JSON.
func normalizeStringKeyed(doc map[string]any) {
	for key, value := range doc {
		doc[key] = normalizeValue(value)
	}
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for key, entry := range val {
			val[key] = normalizeValue(entry)
		}
		return val
	case map[any]any:
		out := make(map[string]any, len(val))
		for key, entry := range val {
			out[fmt.Sprint(key)] = normalizeValue(entry)
		}
		return out
	case []any:
		for i, entry := range val {
			val[i] = normalizeValue(entry)
		}
		return val
	default:
		return v
	}
}
