package graphics

import "github.com/go-gl/mathgl/mgl32"

// Projection extents for 2D rendering. A half height of 2 gives a
// renderable area of height 4 ranging from -2 to 2. The near plane is
// negative so depth sorting stays away from z=0.
const (
	projectionHalfHeight float32 = 2.0
	projectionNearPlane  float32 = -1.0
	projectionFarPlane   float32 = 1.0
)

// buildProjection returns the orthographic projection matrix for a
// drawable of the given pixel dimensions. Column-major, zero skew;
// x spans ±halfHeight·aspect, y spans ±halfHeight.
func buildProjection(width, height int32) mgl32.Mat4 {
	aspect := float32(width) / float32(height)
	halfWidth := projectionHalfHeight * aspect
	return mgl32.Ortho(
		-halfWidth, halfWidth,
		-projectionHalfHeight, projectionHalfHeight,
		projectionNearPlane, projectionFarPlane,
	)
}

// worldFromScreen maps surface pixel coordinates to world space: the
// vertical axis flips, both axes scale to the visible half extents, and
// the origin moves to the center of the drawable.
func worldFromScreen(x, y float32, width, height int32) (float32, float32) {
	aspect := float32(width) / float32(height)
	wx := (2*x/float32(width) - 1) * projectionHalfHeight * aspect
	wy := (1 - 2*y/float32(height)) * projectionHalfHeight
	return wx, wy
}
