package common

import "math"

// Vec3Lerp linearly interpolates between two 3D vectors.
//
// Parameters:
//   - a: start vector
//   - b: end vector
//   - alpha: blend factor; 0 returns a, 1 returns b
//
// Returns:
//   - [3]float32: the interpolated vector
func Vec3Lerp(a, b [3]float32, alpha float32) [3]float32 {
	return [3]float32{
		a[0] + (b[0]-a[0])*alpha,
		a[1] + (b[1]-a[1])*alpha,
		a[2] + (b[2]-a[2])*alpha,
	}
}

// QuatDot computes the dot product of two quaternions.
// The sign of the result indicates whether the quaternions lie in the same
// hemisphere; a negative dot means the rotations are more than 180° apart
// on the 4D hypersphere.
//
// Parameters:
//   - a: first quaternion (x, y, z, w)
//   - b: second quaternion (x, y, z, w)
//
// Returns:
//   - float32: the dot product
func QuatDot(a, b [4]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

// QuatNormalize scales a quaternion to unit length.
// A zero quaternion is returned as the identity rather than dividing by zero.
//
// Parameters:
//   - q: the quaternion to normalize (x, y, z, w)
//
// Returns:
//   - [4]float32: the unit-length quaternion
func QuatNormalize(q [4]float32) [4]float32 {
	lenSq := float64(QuatDot(q, q))
	if lenSq == 0 {
		return [4]float32{0, 0, 0, 1}
	}
	inv := float32(1.0 / math.Sqrt(lenSq))
	return [4]float32{q[0] * inv, q[1] * inv, q[2] * inv, q[3] * inv}
}

// QuatSlerp spherically interpolates between two quaternions along the
// shortest path. When the inputs are nearly parallel the spherical formula
// degenerates, so a normalized linear blend is used instead.
//
// Parameters:
//   - a: start quaternion (x, y, z, w)
//   - b: end quaternion (x, y, z, w)
//   - alpha: blend factor in [0, 1]; 0 returns a, 1 returns b
//
// Returns:
//   - [4]float32: the interpolated unit quaternion
func QuatSlerp(a, b [4]float32, alpha float32) [4]float32 {
	dot := QuatDot(a, b)

	// Shortest path: if the quaternions are in opposite hemispheres,
	// negate one so the blend does not swing the long way around.
	if dot < 0 {
		b = [4]float32{-b[0], -b[1], -b[2], -b[3]}
		dot = -dot
	}

	const parallelThreshold = 0.9995
	if dot > parallelThreshold {
		// Nearly parallel: nlerp and renormalize.
		return QuatNormalize([4]float32{
			a[0] + (b[0]-a[0])*alpha,
			a[1] + (b[1]-a[1])*alpha,
			a[2] + (b[2]-a[2])*alpha,
			a[3] + (b[3]-a[3])*alpha,
		})
	}

	theta := math.Acos(float64(dot))
	sinTheta := math.Sin(theta)
	wa := float32(math.Sin((1-float64(alpha))*theta) / sinTheta)
	wb := float32(math.Sin(float64(alpha)*theta) / sinTheta)

	return [4]float32{
		a[0]*wa + b[0]*wb,
		a[1]*wa + b[1]*wb,
		a[2]*wa + b[2]*wb,
		a[3]*wa + b[3]*wb,
	}
}
