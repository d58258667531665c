// Package render draws one frame of the first-person view into an RGB24
// frame buffer: floor and ceiling, textured walls, then billboard sprites.
package render

import (
	"math"

	"raycastgame/internal/mathutil"
)

// Camera is the viewer's pose. Every setter recomputes the fields derived
// from it before returning, so readers never see a stale direction or
// projection distance.
type Camera struct {
	screenWidth int

	pos   mathutil.Vec2
	angle float64
	dir   mathutil.Vec2 // (cos angle, sin angle)
	right mathutil.Vec2 // dir rotated a quarter turn towards +y

	fov         float64
	projDist    float64 // screenWidth / (2·tan(fov/2))
	invProjDist float64

	// View edges: dir sheared by ±right·tan(fov/2).
	leftEdge  mathutil.Vec2
	rightEdge mathutil.Vec2

	eyeHeight        float64
	verticalVelocity float64
}

// NewCamera creates a camera for a frame buffer screenWidth pixels wide.
// fov is the horizontal field of view in radians.
func NewCamera(screenWidth int, pos mathutil.Vec2, angle, fov, eyeHeight float64) *Camera {
	c := &Camera{screenWidth: screenWidth, pos: pos, eyeHeight: eyeHeight}
	c.fov = fov
	c.updateProjection()
	c.SetAngle(angle)
	return c
}

func (c *Camera) SetPosition(p mathutil.Vec2) {
	c.pos = p
}

// SetAngle sets the facing angle and recomputes the direction and view edges.
func (c *Camera) SetAngle(a float64) {
	c.angle = a
	c.dir = mathutil.FromAngle(a)
	c.right = c.dir.Perp()
	c.updateEdges()
}

// SetFieldOfView sets the horizontal field of view. No range is enforced;
// values outside (0, π) produce a meaningless projection.
func (c *Camera) SetFieldOfView(fov float64) {
	c.fov = fov
	c.updateProjection()
	c.updateEdges()
}

func (c *Camera) SetEyeHeight(h float64) {
	c.eyeHeight = h
}

func (c *Camera) SetVerticalVelocity(v float64) {
	c.verticalVelocity = v
}

func (c *Camera) updateProjection() {
	c.projDist = float64(c.screenWidth) / (2 * math.Tan(c.fov/2))
	c.invProjDist = 1 / c.projDist
}

func (c *Camera) updateEdges() {
	// tan(fov/2) expressed through the projection distance
	k := float64(c.screenWidth) / 2 * c.invProjDist
	c.leftEdge = c.dir.Sub(c.right.Scale(k))
	c.rightEdge = c.dir.Add(c.right.Scale(k))
}

func (c *Camera) Position() mathutil.Vec2 { return c.pos }
func (c *Camera) Angle() float64          { return c.angle }

// Direction is the unit forward vector.
func (c *Camera) Direction() mathutil.Vec2 { return c.dir }

// Right is the unit vector pointing to the right of the screen.
func (c *Camera) Right() mathutil.Vec2 { return c.right }

func (c *Camera) FieldOfView() float64               { return c.fov }
func (c *Camera) ProjectionDistance() float64        { return c.projDist }
func (c *Camera) InverseProjectionDistance() float64 { return c.invProjDist }
func (c *Camera) EyeHeight() float64                 { return c.eyeHeight }
func (c *Camera) VerticalVelocity() float64          { return c.verticalVelocity }
func (c *Camera) ScreenWidth() int                   { return c.screenWidth }

// EdgeDirections returns the view directions through the left and right
// screen edges. Their forward component is exactly the unit direction, so a
// ray parameter along them is a perpendicular distance.
func (c *Camera) EdgeDirections() (left, right mathutil.Vec2) {
	return c.leftEdge, c.rightEdge
}

// ColumnRay returns the (unnormalized) view direction through screen column
// x, interpolated linearly between the two edge directions.
func (c *Camera) ColumnRay(x int) mathutil.Vec2 {
	return c.leftEdge.Lerp(c.rightEdge, float64(x)/float64(c.screenWidth))
}
