package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAxis(t *testing.T) {
	assert.Equal(t, float32(0), NormalizeAxis(0))
	assert.Equal(t, float32(180), NormalizeAxis(180))
	assert.Equal(t, float32(180), NormalizeAxis(-180))
	assert.Equal(t, float32(-90), NormalizeAxis(270))
	assert.Equal(t, float32(90), NormalizeAxis(450))
	assert.Equal(t, float32(-10), NormalizeAxis(-370))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(1.5, -1.0, 1.0))
	assert.Equal(t, -1.0, Clamp(-3.0, -1.0, 1.0))
	assert.Equal(t, 3, Clamp(3, 0, 10))
}

func TestNearlyEqual(t *testing.T) {
	assert.True(t, NearlyEqual(1.0, 1.0000001, 1e-6))
	assert.False(t, NearlyEqual(float32(1.0), 1.1, 1e-3))
}

func TestVec3HasZeroAxis(t *testing.T) {
	assert.False(t, NewVec3One().HasZeroAxis(K_FLOAT_EPSILON))
	assert.True(t, NewVec3(1, 0, 1).HasZeroAxis(K_FLOAT_EPSILON))
	assert.True(t, NewVec3(1, 1, -1e-9).HasZeroAxis(K_FLOAT_EPSILON))
	assert.False(t, NewVec3(0.01, 1, 1).HasZeroAxis(K_FLOAT_EPSILON))
}
