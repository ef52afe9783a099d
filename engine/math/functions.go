package math

import (
	m "math"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float32 = 3.14159265358979323846
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float32 = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float32 = 180.0 / K_PI
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 0 */
	K_FLOAT_EPSILON float32 = 1.192092896e-07
	/**
	 * @brief Above this value of the quaternion singularity test the rotator
	 * is considered gimbal locked at +/-90 degrees of pitch.
	 */
	K_SINGULARITY_THRESHOLD float32 = 0.4999995
)

/**
 * Note that these are here in order to prevent having to import the
 * entire <math.h> everywhere.
 */
func ksin(x float32) float32 {
	return float32(m.Sin(float64(x)))
}

func kcos(x float32) float32 {
	return float32(m.Cos(float64(x)))
}

func kasin(x float32) float32 {
	return float32(m.Asin(float64(x)))
}

func katan2(y, x float32) float32 {
	return float32(m.Atan2(float64(y), float64(x)))
}

func ksqrt(x float32) float32 {
	return float32(m.Sqrt(float64(x)))
}

func kmod(x, y float32) float32 {
	return float32(m.Mod(float64(x), float64(y)))
}

// ------------------------------------------
// Vector 3
// ------------------------------------------

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.0f.
 */
func NewVec3Zero() Vec3 {
	return Vec3{0.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 1.0f.
 */
func NewVec3One() Vec3 {
	return Vec3{1.0, 1.0, 1.0}
}

/** @brief The +X basis axis. */
func NewVec3UnitX() Vec3 {
	return Vec3{1.0, 0.0, 0.0}
}

/** @brief The +Y basis axis. */
func NewVec3UnitY() Vec3 {
	return Vec3{0.0, 1.0, 0.0}
}

/** @brief The +Z basis axis. */
func NewVec3UnitZ() Vec3 {
	return Vec3{0.0, 0.0, 1.0}
}

/**
 * @brief Returns a copy of the vector with its Y and Z components exchanged.
 * This is the axis remap between a Y-up and a Z-up world.
 */
func (v Vec3) SwapYZ() Vec3 {
	return Vec3{v.X, v.Z, v.Y}
}

/**
 * @brief Compares all elements of vector_0 and vector_1 and ensures the difference
 * is less than tolerance.
 *
 * @param other The other vector.
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec3) Compare(other Vec3, tolerance float32) bool {
	return NearlyEqual(v.X, other.X, tolerance) &&
		NearlyEqual(v.Y, other.Y, tolerance) &&
		NearlyEqual(v.Z, other.Z, tolerance)
}

// HasZeroAxis reports whether any component of v is within tolerance of zero.
func (v Vec3) HasZeroAxis(tolerance float32) bool {
	return NearlyEqual(v.X, 0, tolerance) ||
		NearlyEqual(v.Y, 0, tolerance) ||
		NearlyEqual(v.Z, 0, tolerance)
}

// ------------------------------------------
// Quaternion
// ------------------------------------------

/**
 * @brief Creates an identity quaternion.
 *
 * @return An identity quaternion.
 */
func NewQuatIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1.0}
}

/**
 * @brief Returns the normal of the provided quaternion.
 */
func (q Quaternion) Normal() float32 {
	return ksqrt(
		q.X*q.X +
			q.Y*q.Y +
			q.Z*q.Z +
			q.W*q.W)
}

/**
 * @brief Returns a normalized copy of the provided quaternion.
 */
func (q Quaternion) Normalize() Quaternion {
	normal := q.Normal()
	if normal == 0 {
		return NewQuatIdentity()
	}
	return Quaternion{
		q.X / normal,
		q.Y / normal,
		q.Z / normal,
		q.W / normal}
}

/**
 * @brief Multiplies the provided quaternions (Hamilton product). The result
 * applies other first and then q.
 *
 * @param other The right hand side quaternion.
 * @return The multiplied quaternion.
 */
func (q Quaternion) Mul(other Quaternion) Quaternion {
	out_quaternion := Quaternion{}

	out_quaternion.X = q.X*other.W +
		q.Y*other.Z -
		q.Z*other.Y +
		q.W*other.X

	out_quaternion.Y = -q.X*other.Z +
		q.Y*other.W +
		q.Z*other.X +
		q.W*other.Y

	out_quaternion.Z = q.X*other.Y -
		q.Y*other.X +
		q.Z*other.W +
		q.W*other.Z

	out_quaternion.W = -q.X*other.X -
		q.Y*other.Y -
		q.Z*other.Z +
		q.W*other.W

	return out_quaternion
}

/**
 * @brief Calculates the dot product of the provided quaternions.
 */
func (q Quaternion) Dot(other Quaternion) float32 {
	return q.X*other.X +
		q.Y*other.Y +
		q.Z*other.Z +
		q.W*other.W
}

/**
 * @brief Creates a quaternion from the given axis and angle.
 *
 * @param axis The axis of rotation.
 * @param angle The angle of rotation in radians.
 * @param normalize Indicates if the quaternion should be normalized.
 * @return A new quaternion.
 */
func NewQuatFromAxisAngle(axis Vec3, angle float32, normalize bool) Quaternion {
	half_angle := 0.5 * angle
	s := ksin(half_angle)
	c := kcos(half_angle)

	q := Quaternion{s * axis.X, s * axis.Y, s * axis.Z, c}
	if normalize {
		q = q.Normalize()
	}
	return q
}

/**
 * @brief Converts the quaternion into a rotator. Near the poles
 * (pitch of +/-90 degrees) yaw is kept and roll absorbs the remainder.
 *
 * @return The rotator in degrees.
 */
func (q Quaternion) ToRotator() Rotator {
	singularityTest := q.Z*q.X - q.W*q.Y
	yawY := 2.0 * (q.W*q.Z + q.X*q.Y)
	yawX := 1.0 - 2.0*(q.Y*q.Y+q.Z*q.Z)

	r := Rotator{}
	switch {
	case singularityTest < -K_SINGULARITY_THRESHOLD:
		r.Pitch = -90.0
		r.Yaw = RadToDeg(katan2(yawY, yawX))
		r.Roll = NormalizeAxis(-r.Yaw - RadToDeg(2.0*katan2(q.X, q.W)))
	case singularityTest > K_SINGULARITY_THRESHOLD:
		r.Pitch = 90.0
		r.Yaw = RadToDeg(katan2(yawY, yawX))
		r.Roll = NormalizeAxis(r.Yaw - RadToDeg(2.0*katan2(q.X, q.W)))
	default:
		r.Pitch = RadToDeg(kasin(Clamp(2.0*singularityTest, -1.0, 1.0)))
		r.Yaw = RadToDeg(katan2(yawY, yawX))
		r.Roll = RadToDeg(katan2(-2.0*(q.W*q.X+q.Y*q.Z), 1.0-2.0*(q.X*q.X+q.Y*q.Y)))
	}
	return r
}

// ------------------------------------------
// Rotator
// ------------------------------------------

// NewRotatorZero returns the identity rotation.
func NewRotatorZero() Rotator {
	return Rotator{}
}

// Quaternion converts the rotator back into a unit quaternion.
func (r Rotator) Quaternion() Quaternion {
	halfRad := K_DEG2RAD_MULTIPLIER / 2.0
	sp, cp := ksin(kmod(r.Pitch, 360.0)*halfRad), kcos(kmod(r.Pitch, 360.0)*halfRad)
	sy, cy := ksin(kmod(r.Yaw, 360.0)*halfRad), kcos(kmod(r.Yaw, 360.0)*halfRad)
	sr, cr := ksin(kmod(r.Roll, 360.0)*halfRad), kcos(kmod(r.Roll, 360.0)*halfRad)

	return Quaternion{
		X: cr*sp*sy - sr*cp*cy,
		Y: -cr*sp*cy - sr*cp*sy,
		Z: cr*cp*sy - sr*sp*cy,
		W: cr*cp*cy + sr*sp*sy,
	}
}

// Normalize returns the rotator with every axis wrapped into (-180, 180].
func (r Rotator) Normalize() Rotator {
	return Rotator{
		Pitch: NormalizeAxis(r.Pitch),
		Yaw:   NormalizeAxis(r.Yaw),
		Roll:  NormalizeAxis(r.Roll),
	}
}

// Compare reports whether every axis of the two rotators is within tolerance
// degrees of each other once wrapped into (-180, 180].
func (r Rotator) Compare(other Rotator, tolerance float32) bool {
	a, b := r.Normalize(), other.Normalize()
	return axisClose(a.Pitch, b.Pitch, tolerance) &&
		axisClose(a.Yaw, b.Yaw, tolerance) &&
		axisClose(a.Roll, b.Roll, tolerance)
}

func axisClose(a, b, tolerance float32) bool {
	return NearlyEqual(NormalizeAxis(a-b), 0, tolerance)
}

/**
 * @brief Converts provided degrees to radians.
 *
 * @param degrees The degrees to be converted.
 * @return The amount in radians.
 */
func DegToRad(degrees float32) float32 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

/**
 * @brief Converts provided radians to degrees.
 *
 * @param radians The radians to be converted.
 * @return The amount in degrees.
 */
func RadToDeg(radians float32) float32 {
	return radians * K_RAD2DEG_MULTIPLIER
}
