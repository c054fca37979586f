package curve

// Box3 is an axis-aligned box in 3D space.
type Box3 struct {
	X0, Y0, Z0 float64
	X1, Y1, Z1 float64
}

// NewBox3FromPoints returns a box with the extents of p0 and p1, ensuring that
// all dimensions are non-negative.
func NewBox3FromPoints(p0, p1 Point3) Box3 {
	return Box3{p0.X, p0.Y, p0.Z, p1.X, p1.Y, p1.Z}.Abs()
}

// Abs returns a new box with the same extents as b, but ensuring that all
// dimensions are non-negative.
func (b Box3) Abs() Box3 {
	return Box3{
		X0: min(b.X0, b.X1),
		Y0: min(b.Y0, b.Y1),
		Z0: min(b.Z0, b.Z1),
		X1: max(b.X0, b.X1),
		Y1: max(b.Y0, b.Y1),
		Z1: max(b.Z0, b.Z1),
	}
}

// Min returns the corner of the box with the smallest coordinates.
func (b Box3) Min() Point3 {
	return Point3{X: b.X0, Y: b.Y0, Z: b.Z0}
}

// Max returns the corner of the box with the largest coordinates.
func (b Box3) Max() Point3 {
	return Point3{X: b.X1, Y: b.Y1, Z: b.Z1}
}

// Union returns the smallest box enclosing both b and o.
func (b Box3) Union(o Box3) Box3 {
	return Box3{
		X0: min(b.X0, o.X0),
		Y0: min(b.Y0, o.Y0),
		Z0: min(b.Z0, o.Z0),
		X1: max(b.X1, o.X1),
		Y1: max(b.Y1, o.Y1),
		Z1: max(b.Z1, o.Z1),
	}
}

// UnionPoint returns the smallest box enclosing both b and pt.
func (b Box3) UnionPoint(pt Point3) Box3 {
	return Box3{
		X0: min(b.X0, pt.X),
		Y0: min(b.Y0, pt.Y),
		Z0: min(b.Z0, pt.Z),
		X1: max(b.X1, pt.X),
		Y1: max(b.Y1, pt.Y),
		Z1: max(b.Z1, pt.Z),
	}
}

// Contains reports whether pt lies inside the box or on its boundary.
func (b Box3) Contains(pt Point3) bool {
	return pt.X >= b.X0 && pt.X <= b.X1 &&
		pt.Y >= b.Y0 && pt.Y <= b.Y1 &&
		pt.Z >= b.Z0 && pt.Z <= b.Z1
}

// Inflate returns a new box grown by d in every direction.
func (b Box3) Inflate(d float64) Box3 {
	return Box3{
		X0: b.X0 - d,
		Y0: b.Y0 - d,
		Z0: b.Z0 - d,
		X1: b.X1 + d,
		Y1: b.Y1 + d,
		Z1: b.Z1 + d,
	}
}
