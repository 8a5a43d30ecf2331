package render

import (
	math "github.com/chewxy/math32"

	"github.com/softrast/softrast/linear"
	"github.com/softrast/softrast/mesh"
)

// Camera projects view-space faces into homogeneous clip space.
// The projection matrix is regenerated lazily whenever one of
// the perspective parameters changes.
type Camera struct {
	near   float32
	far    float32
	fov    float32
	aspect float32

	proj  linear.M4
	dirty bool

	// Position is the camera's view-space position. Faces are
	// translated by its negation before projection.
	Position linear.V3
}

// NewCamera returns a perspective camera.
// The field of view is in degrees; 0 < near < far is assumed.
func NewCamera(near, far, fov, aspect float32) *Camera {
	return &Camera{near: near, far: far, fov: fov, aspect: aspect, dirty: true}
}

// NewScreenCamera returns an orthographic camera mapping pixel
// coordinates [0, width] x [0, height] onto the clip volume.
// The sprite blit path uses it to re-enter the 3D rasterizer
// with screen-space geometry.
func NewScreenCamera(width, height int) *Camera {
	var p linear.M4
	p[0][0] = 2 / float32(width)
	p[3][0] = -1
	p[1][1] = 2 / float32(height)
	p[3][1] = -1
	p[2][2] = 1
	p[3][3] = 1
	return &Camera{near: 0, far: 1, proj: p}
}

// Near returns the near clip distance.
func (c *Camera) Near() float32 { return c.near }

// Far returns the far clip distance.
func (c *Camera) Far() float32 { return c.far }

// FOV returns the field of view in degrees.
func (c *Camera) FOV() float32 { return c.fov }

// Aspect returns the aspect ratio.
func (c *Camera) Aspect() float32 { return c.aspect }

// SetNear sets the near clip distance.
func (c *Camera) SetNear(v float32) { c.near = v; c.dirty = true }

// SetFar sets the far clip distance.
func (c *Camera) SetFar(v float32) { c.far = v; c.dirty = true }

// SetFOV sets the field of view in degrees.
func (c *Camera) SetFOV(v float32) { c.fov = v; c.dirty = true }

// SetAspect sets the aspect ratio.
func (c *Camera) SetAspect(v float32) { c.aspect = v; c.dirty = true }

// Projection returns the projection matrix, rebuilding it if a
// parameter changed since the last call.
func (c *Camera) Projection() linear.M4 {
	if c.dirty {
		c.generateProjection()
		c.dirty = false
	}
	return c.proj
}

func (c *Camera) generateProjection() {
	const degToRad = math.Pi / 180
	t := math.Tan(c.fov * degToRad * 0.5)

	c.proj = linear.M4{}
	c.proj[0][0] = 1 / (t * c.aspect)
	c.proj[1][1] = 1 / t
	c.proj[2][2] = -(c.far + c.near) / (c.far - c.near)
	c.proj[3][2] = -2 * c.far * c.near / (c.far - c.near)
	c.proj[2][3] = -1
}

// View translates the face into camera space.
func (c *Camera) View(f *mesh.Face) {
	for i := range f.V {
		f.V[i].Position.X -= c.Position.X
		f.V[i].Position.Y -= c.Position.Y
		f.V[i].Position.Z -= c.Position.Z
	}
}

// Project multiplies each vertex position by the projection
// matrix, leaving the face in homogeneous clip space.
func (c *Camera) Project(f *mesh.Face) {
	p := c.Projection()
	for i := range f.V {
		f.V[i].Position = linear.MulVM(f.V[i].Position, p)
	}
}

// PerspectiveDivide divides x, y, z by w for each vertex whose
// w is nonzero.
func (c *Camera) PerspectiveDivide(f *mesh.Face) {
	for i := range f.V {
		if w := f.V[i].Position.W; w != 0 {
			f.V[i].Position.X /= w
			f.V[i].Position.Y /= w
			f.V[i].Position.Z /= w
		}
	}
}

// ProjectFace projects the face and performs the perspective
// divide in one step.
func (c *Camera) ProjectFace(f *mesh.Face) {
	c.Project(f)
	c.PerspectiveDivide(f)
}

// ScaleXYToUnit remaps x and y from NDC [-1, 1] to [0, 1].
func (c *Camera) ScaleXYToUnit(f *mesh.Face) {
	for i := range f.V {
		f.V[i].Position.X = (f.V[i].Position.X + 1) * 0.5
		f.V[i].Position.Y = (f.V[i].Position.Y + 1) * 0.5
	}
}
