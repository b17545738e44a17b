package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// OBB represents a box rotated about the vertical axis.
type OBB struct {
	Center   rl.Vector3    // World-space center
	HalfSize rl.Vector3    // Half-extents along local axes
	Axes     [3]rl.Vector3 // Local X, Y, Z axes (rotated)
}

// NewOBB creates an OBB from center, full size and a yaw in radians.
// Local Z is the forward axis: yaw 0 faces +Z, yaw π/2 faces +X.
func NewOBB(center, size rl.Vector3, yaw float32) OBB {
	rot := YawMatrix(yaw)

	// Extract rotated axes
	axes := [3]rl.Vector3{
		{X: rot.M0, Y: rot.M1, Z: rot.M2},
		{X: rot.M4, Y: rot.M5, Z: rot.M6},
		{X: rot.M8, Y: rot.M9, Z: rot.M10},
	}

	return OBB{
		Center:   center,
		HalfSize: rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2},
		Axes:     axes,
	}
}

// corner returns Center + sx·hx·X + sy·hy·Y + sz·hz·Z for signs in {-1, 1}.
func (o OBB) corner(sx, sy, sz float32) rl.Vector3 {
	p := o.Center
	p = rl.Vector3Add(p, rl.Vector3Scale(o.Axes[0], sx*o.HalfSize.X))
	p = rl.Vector3Add(p, rl.Vector3Scale(o.Axes[1], sy*o.HalfSize.Y))
	return rl.Vector3Add(p, rl.Vector3Scale(o.Axes[2], sz*o.HalfSize.Z))
}

// BottomCorners returns the four corners of the lowest face in the order
// front-left, front-right, rear-right, rear-left.
func (o OBB) BottomCorners() [4]rl.Vector3 {
	return [4]rl.Vector3{
		o.corner(1, -1, 1),
		o.corner(-1, -1, 1),
		o.corner(-1, -1, -1),
		o.corner(1, -1, -1),
	}
}

// Corners returns the bottom face followed by the top face, same winding.
func (o OBB) Corners() [8]rl.Vector3 {
	bottom := o.BottomCorners()
	return [8]rl.Vector3{
		bottom[0], bottom[1], bottom[2], bottom[3],
		o.corner(1, 1, 1),
		o.corner(-1, 1, 1),
		o.corner(-1, 1, -1),
		o.corner(1, 1, -1),
	}
}

// AABB returns the world axis-aligned box enclosing the OBB.
func (o OBB) AABB() AABB {
	corners := o.Corners()
	return NewAABBFromPoints(corners[:]...)
}
