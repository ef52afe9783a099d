package math

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

/** @brief A quaternion, used to represent rotational orientation. */
type Quaternion struct {
	X, Y, Z, W float32
}

/**
 * @brief The target engine's three-axis rotation, in degrees.
 * Pitch turns around the Y axis, Yaw around Z and Roll around X.
 */
type Rotator struct {
	Pitch float32
	Yaw   float32
	Roll  float32
}

/**
 * @brief Represents the placement of a spawned actor in the level.
 */
type Transform struct {
	/** @brief The location in the level. */
	Location Vec3
	/** @brief The rotation in the level. */
	Rotation Rotator
	/** @brief The scale of the actor. */
	Scale Vec3
}
