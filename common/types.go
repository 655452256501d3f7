// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

// Transform is a rigid 3D transform: a position plus a unit-quaternion orientation.
// It is the value type the playback engine interpolates and writes to joints each tick.
type Transform struct {
	// Position is the translation component (x, y, z).
	Position [3]float32

	// Rotation is the orientation as a unit quaternion (x, y, z, w).
	Rotation [4]float32
}

// IdentityTransform returns a Transform at the origin with no rotation.
//
// Returns:
//   - Transform: zero position and identity quaternion (0, 0, 0, 1)
func IdentityTransform() Transform {
	return Transform{Rotation: [4]float32{0, 0, 0, 1}}
}

// Lerp linearly interpolates between this transform and a target transform.
// Position is blended component-wise; rotation uses a shortest-path spherical
// blend (see QuatSlerp) so the orientation never takes the long way around.
//
// Parameters:
//   - target: the transform to blend toward
//   - alpha: blend factor in [0, 1]; 0 returns this transform, 1 returns target
//
// Returns:
//   - Transform: the interpolated transform
func (t Transform) Lerp(target Transform, alpha float32) Transform {
	return Transform{
		Position: Vec3Lerp(t.Position, target.Position, alpha),
		Rotation: QuatSlerp(t.Rotation, target.Rotation, alpha),
	}
}
