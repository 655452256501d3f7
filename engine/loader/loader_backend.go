package loader

// LoaderBackendType identifies the file format a Loader decodes.
type LoaderBackendType int

const (
	// BackendTypeYAML decodes YAML track documents.
	BackendTypeYAML LoaderBackendType = iota

	// BackendTypeJSON decodes JSON track documents.
	BackendTypeJSON
)

// LoaderBackend decodes raw track file bytes into a generic document tree.
// The shared decoder (decodeTrack) converts the tree into a track.Track, so
// both formats yield identical tracks for equivalent documents.
type LoaderBackend interface {
	// Decode unmarshals raw bytes into a generic string-keyed document.
	//
	// Parameters:
	//   - data: the raw file contents
	//
	// Returns:
	//   - map[string]any: the decoded document tree
	//   - error: error if the bytes are not valid in this backend's format
	Decode(data []byte) (map[string]any, error)
}
