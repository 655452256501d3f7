package loader

import (
	"fmt"
	"strconv"

	"github.com/Carmen-Shannon/rig-go/common"
	"github.com/Carmen-Shannon/rig-go/engine/track"
)

// decodeTrack converts a generic track document into a track.Track.
//
// The document shape is:
//
//	name: <string>            (optional)
//	metadata:
//	  speed: <number>         (optional, defaults to 1 at playback)
//	keyframes:
//	  "<timestamp>":          (string or numeric key, parsed as float)
//	    <PartName>:
//	      transform:
//	        position: [x, y, z]
//	        rotation: [x, y, z, w]
//	      children:
//	        <PartName>: ...
//
// Structural problems (missing keyframes block, unparseable timestamp key)
// are errors. Malformed pose values inside a keyframe are NOT errors: they
// are carried through raw so the flattener skips them, matching how a live
// rig tolerates authoring mistakes in individual parts.
//
// Parameters:
//   - doc: the decoded document tree
//
// Returns:
//   - *track.Track: the converted track
//   - error: error if the document is structurally invalid
func decodeTrack(doc map[string]any) (*track.Track, error) {
	keyframesRaw, ok := doc["keyframes"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("track document has no keyframes block")
	}

	t := &track.Track{
		Keyframes: make(map[float32]map[string]any, len(keyframesRaw)),
	}
	if name, ok := doc["name"].(string); ok {
		t.Name = name
	}
	if meta, ok := doc["metadata"].(map[string]any); ok {
		if speed, ok := toFloat32(meta["speed"]); ok {
			t.Speed = speed
		}
	}

	for key, hierarchyRaw := range keyframesRaw {
		timestamp, err := strconv.ParseFloat(key, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid keyframe timestamp %q: %w", key, err)
		}
		t.Keyframes[float32(timestamp)] = decodeHierarchy(hierarchyRaw)
	}
	return t, nil
}

// decodeHierarchy converts one keyframe's raw pose hierarchy. A keyframe
// value that is not a mapping yields an empty hierarchy.
func decodeHierarchy(raw any) map[string]any {
	m, ok := raw.(map[string]any)
	if !ok {
		return map[string]any{}
	}
	hierarchy := make(map[string]any, len(m))
	for name, child := range m {
		hierarchy[name] = decodeNode(child)
	}
	return hierarchy
}

// decodeNode converts one pose node. Values that are not mappings are
// returned unchanged so the flattener can skip them.
func decodeNode(raw any) any {
	m, ok := raw.(map[string]any)
	if !ok {
		return raw
	}
	node := &track.PoseNode{}
	if transformRaw, ok := m["transform"]; ok {
		node.Transform = decodeTransform(transformRaw)
	}
	if childrenRaw, ok := m["children"].(map[string]any); ok {
		node.Children = make(map[string]any, len(childrenRaw))
		for name, child := range childrenRaw {
			node.Children[name] = decodeNode(child)
		}
	}
	return node
}

// decodeTransform converts a transform mapping. Missing components keep
// their identity values; a malformed component voids the whole transform so
// the joint is left alone rather than snapped somewhere wrong.
func decodeTransform(raw any) *common.Transform {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	t := common.IdentityTransform()
	if posRaw, ok := m["position"]; ok {
		pos, ok := decodeFloats(posRaw, 3)
		if !ok {
			return nil
		}
		copy(t.Position[:], pos)
	}
	if rotRaw, ok := m["rotation"]; ok {
		rot, ok := decodeFloats(rotRaw, 4)
		if !ok {
			return nil
		}
		copy(t.Rotation[:], rot)
	}
	return &t
}

// decodeFloats converts a raw sequence of exactly n numbers.
func decodeFloats(raw any, n int) ([]float32, bool) {
	seq, ok := raw.([]any)
	if !ok || len(seq) != n {
		return nil, false
	}
	out := make([]float32, n)
	for i, v := range seq {
		f, ok := toFloat32(v)
		if !ok {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

// toFloat32 coerces the numeric types the YAML and JSON decoders produce.
func toFloat32(v any) (float32, bool) {
	switch n := v.(type) {
	case float64:
		return float32(n), true
	case float32:
		return n, true
	case int:
		return float32(n), true
	case int64:
		return float32(n), true
	default:
		return 0, false
	}
}
