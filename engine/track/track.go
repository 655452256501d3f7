// package track holds the engine-agnostic animation track data model: keyframe
// hierarchies keyed by timestamp, plus the flattener that turns a hierarchy
// into the per-joint transform mapping the playback engine consumes.
package track

import (
	"sort"

	"github.com/Carmen-Shannon/rig-go/common"
)

// PoseNode is one body part's entry in a keyframe hierarchy.
// A node may carry its own transform (the target for the joint driving this
// part relative to its parent), children, both, or neither.
//
// Children values are deliberately untyped: a well-formed child is a
// *PoseNode, and anything else (a bare transform, a scalar left over from a
// sloppy authoring tool) is preserved as-is and skipped during flattening.
type PoseNode struct {
	// Transform is the part's target transform at this keyframe, or nil when
	// the part contributes no transform of its own.
	Transform *common.Transform

	// Children maps child body-part names to their nodes (*PoseNode).
	Children map[string]any
}

// Pose maps joint names to their target transforms for a single keyframe.
// Derived once per keyframe by Flatten at session start.
type Pose map[string]common.Transform

// Track is an ordered-by-timestamp set of keyframes plus playback metadata.
type Track struct {
	// Name is the track identifier.
	Name string

	// Keyframes maps each timestamp in seconds to that instant's pose
	// hierarchy (body-part name → *PoseNode). Timestamps need not be evenly
	// spaced or integer; each is unique by construction of the map.
	Keyframes map[float32]map[string]any

	// Speed is the playback speed multiplier. Zero means unset; playback
	// treats unset as 1.0.
	Speed float32
}

// Timestamps returns the track's distinct keyframe timestamps in ascending
// order.
//
// Returns:
//   - []float32: sorted timestamps, empty when the track has no keyframes
func (t *Track) Timestamps() []float32 {
	out := make([]float32, 0, len(t.Keyframes))
	for ts := range t.Keyframes {
		out = append(out, ts)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Length returns the track's loop length in seconds: the largest keyframe
// timestamp, or 0 when the track is empty.
//
// Returns:
//   - float32: the largest timestamp
func (t *Track) Length() float32 {
	var length float32
	for ts := range t.Keyframes {
		if ts > length {
			length = ts
		}
	}
	return length
}

// PlaybackSpeed returns the track's speed multiplier, defaulting to 1.0 when
// the metadata left it unset.
//
// Returns:
//   - float32: the effective speed multiplier
func (t *Track) PlaybackSpeed() float32 {
	return common.Coalesce(t.Speed, 1.0)
}
