// package loader reads animation tracks from storage. Track files are an
// engine-agnostic nested document (YAML or JSON): a keyframes mapping from
// timestamp to pose hierarchy, plus an optional metadata block.
package loader

import (
	"fmt"
	"os"

	"github.com/Carmen-Shannon/rig-go/engine/track"
)

// loader is the implementation of the Loader interface.
type loader struct {
	backendType LoaderBackendType
	backend     LoaderBackend
}

// Loader reads animation track files. It delegates format decoding to a
// LoaderBackend (YAML or JSON) and converts the decoded document into the
// engine's track representation.
type Loader interface {
	// Load reads and decodes a track file from disk.
	//
	// Parameters:
	//   - path: the track file path
	//
	// Returns:
	//   - *track.Track: the decoded track
	//   - error: error if the file cannot be read or decoded
	Load(path string) (*track.Track, error)

	// LoadBytes decodes a track from raw file contents.
	//
	// Parameters:
	//   - data: the raw track document bytes
	//
	// Returns:
	//   - *track.Track: the decoded track
	//   - error: error if the document cannot be decoded
	LoadBytes(data []byte) (*track.Track, error)

	// BackendType returns the type of backend this loader is using.
	//
	// Returns:
	//   - LoaderBackendType: the backend type (BackendTypeYAML or BackendTypeJSON)
	BackendType() LoaderBackendType
}

var _ Loader = &loader{}

// NewLoader creates a new Loader instance with the specified backend type.
//
// Parameters:
//   - backendType: the track file format to decode (BackendTypeYAML or BackendTypeJSON)
//
// Returns:
//   - Loader: a new instance of Loader configured with the specified backend
func NewLoader(backendType LoaderBackendType) Loader {
	l := &loader{
		backendType: backendType,
	}
	switch backendType {
	case BackendTypeJSON:
		l.backend = newJSONTrackBackend()
	case BackendTypeYAML:
		fallthrough
	default:
		l.backend = newYAMLTrackBackend()
	}
	return l
}

func (l *loader) Load(path string) (*track.Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read track file %s: %w", path, err)
	}
	return l.LoadBytes(data)
}

func (l *loader) LoadBytes(data []byte) (*track.Track, error) {
	doc, err := l.backend.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode track document: %w", err)
	}
	return decodeTrack(doc)
}

func (l *loader) BackendType() LoaderBackendType {
	return l.backendType
}
