package math

func TransformCreate() Transform {
	return TransformFromLocationRotationScale(NewVec3Zero(), NewRotatorZero(), NewVec3One())
}

func TransformFromLocationRotationScale(location Vec3, rotation Rotator, scale Vec3) Transform {
	return Transform{
		Location: location,
		Rotation: rotation,
		Scale:    scale,
	}
}

// TransformFromMaya places an object exported from Maya in the level. The
// location and scale swap Y and Z, the rotation goes through RotatorFromMaya.
func TransformFromMaya(translate, rotate, scale Vec3) Transform {
	return TransformFromLocationRotationScale(
		translate.SwapYZ(),
		RotatorFromMaya(rotate.X, rotate.Y, rotate.Z),
		scale.SwapYZ(),
	)
}

func (t *Transform) SetLocation(location Vec3) {
	t.Location = location
}

func (t *Transform) SetRotation(rotation Rotator) {
	t.Rotation = rotation
}

func (t *Transform) SetScale(scale Vec3) {
	t.Scale = scale
}
