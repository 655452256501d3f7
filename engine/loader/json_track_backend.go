package loader

import (
	"encoding/json"
)

// jsonTrackBackend decodes JSON track documents.
type jsonTrackBackend struct{}

var _ LoaderBackend = &jsonTrackBackend{}

// newJSONTrackBackend creates a new JSON decoding backend.
//
// Returns:
//   - LoaderBackend: the JSON backend
func newJSONTrackBackend() LoaderBackend {
	return &jsonTrackBackend{}
}

func (j *jsonTrackBackend) Decode(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
