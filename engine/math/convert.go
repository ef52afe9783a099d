package math

// MayaQuaternion builds the target engine orientation for a Maya rotation
// given in degrees. Maya's Y channel drives the Z axis and its Z channel the
// Y axis; every angle is negated to flip handedness.
func MayaQuaternion(rx, ry, rz float32) Quaternion {
	qx := NewQuatFromAxisAngle(NewVec3UnitX(), -DegToRad(rx), false)
	qz := NewQuatFromAxisAngle(NewVec3UnitZ(), -DegToRad(ry), false)
	qy := NewQuatFromAxisAngle(NewVec3UnitY(), -DegToRad(rz), false)

	// The order is fixed. Any other composition breaks the match between
	// the two applications.
	return qy.Mul(qz).Mul(qx)
}

// RotatorFromMaya converts a Maya euler rotation in degrees to a rotator.
func RotatorFromMaya(rx, ry, rz float32) Rotator {
	return MayaQuaternion(rx, ry, rz).ToRotator()
}
