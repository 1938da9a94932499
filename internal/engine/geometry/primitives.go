package geometry

import (
	gomath "math"
)

// Sphere builds a UV sphere centered at the origin.
func Sphere(radius float32, widthSegs, heightSegs int) *Mesh {
	m := &Mesh{}

	for v := 0; v <= heightSegs; v++ {
		phi := float64(v) / float64(heightSegs) * gomath.Pi
		sinPhi := float32(gomath.Sin(phi))
		cosPhi := float32(gomath.Cos(phi))

		for u := 0; u <= widthSegs; u++ {
			theta := float64(u) / float64(widthSegs) * 2 * gomath.Pi
			nx := sinPhi * float32(gomath.Cos(theta))
			ny := cosPhi
			nz := sinPhi * float32(gomath.Sin(theta))

			m.Vertices = append(m.Vertices, Vertex{
				Position: [3]float32{radius * nx, radius * ny, radius * nz},
				Normal:   [3]float32{nx, ny, nz},
			})
		}
	}

	gridIndices(m, widthSegs, heightSegs)
	m.RecomputeBounds()
	return m
}

// Capsule builds a capsule along the Y axis: a cylinder of the given height
// capped with hemispheres of the given radius.
func Capsule(radius, height float32, capSegs, radialSegs int) *Mesh {
	m := &Mesh{}
	half := height / 2

	rows := 2*capSegs + 1
	for t := 0; t <= rows; t++ {
		var phi float64
		var yOff float32
		if t <= capSegs {
			phi = float64(t) / float64(capSegs) * gomath.Pi / 2
			yOff = half
		} else {
			phi = gomath.Pi/2 + float64(t-capSegs-1)/float64(capSegs)*gomath.Pi/2
			yOff = -half
		}
		sinPhi := float32(gomath.Sin(phi))
		cosPhi := float32(gomath.Cos(phi))

		for u := 0; u <= radialSegs; u++ {
			theta := float64(u) / float64(radialSegs) * 2 * gomath.Pi
			nx := sinPhi * float32(gomath.Cos(theta))
			ny := cosPhi
			nz := sinPhi * float32(gomath.Sin(theta))

			m.Vertices = append(m.Vertices, Vertex{
				Position: [3]float32{radius * nx, radius*ny + yOff, radius * nz},
				Normal:   [3]float32{nx, ny, nz},
			})
		}
	}

	gridIndices(m, radialSegs, rows)
	m.RecomputeBounds()
	return m
}

// Cylinder builds a capped cylinder along the Y axis with independent top
// and bottom radii.
func Cylinder(radiusTop, radiusBottom, height float32, radialSegs int) *Mesh {
	m := &Mesh{}
	half := height / 2
	slope := (radiusBottom - radiusTop) / height

	// Side wall
	for t := 0; t <= 1; t++ {
		y := half - float32(t)*height
		r := radiusTop + float32(t)*(radiusBottom-radiusTop)
		for u := 0; u <= radialSegs; u++ {
			theta := float64(u) / float64(radialSegs) * 2 * gomath.Pi
			cosT := float32(gomath.Cos(theta))
			sinT := float32(gomath.Sin(theta))

			m.Vertices = append(m.Vertices, Vertex{
				Position: [3]float32{r * cosT, y, r * sinT},
				Normal:   normalize([3]float32{cosT, slope, sinT}),
			})
		}
	}
	gridIndices(m, radialSegs, 1)

	// Caps
	for _, end := range []struct {
		y, r, ny float32
	}{
		{half, radiusTop, 1},
		{-half, radiusBottom, -1},
	} {
		if end.r <= 0 {
			continue
		}
		center := uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices, Vertex{
			Position: [3]float32{0, end.y, 0},
			Normal:   [3]float32{0, end.ny, 0},
		})
		ring := uint32(len(m.Vertices))
		for u := 0; u <= radialSegs; u++ {
			theta := float64(u) / float64(radialSegs) * 2 * gomath.Pi
			m.Vertices = append(m.Vertices, Vertex{
				Position: [3]float32{
					end.r * float32(gomath.Cos(theta)),
					end.y,
					end.r * float32(gomath.Sin(theta)),
				},
				Normal: [3]float32{0, end.ny, 0},
			})
		}
		for u := 0; u < radialSegs; u++ {
			a := ring + uint32(u)
			b := ring + uint32(u) + 1
			if end.ny > 0 {
				m.Indices = append(m.Indices, center, b, a)
			} else {
				m.Indices = append(m.Indices, center, a, b)
			}
		}
	}

	m.RecomputeBounds()
	return m
}

// Box builds an axis-aligned box centered at the origin.
func Box(width, height, depth float32) *Mesh {
	m := &Mesh{}
	w, h, d := width/2, height/2, depth/2

	faces := []struct {
		normal  [3]float32
		corners [4][3]float32
	}{
		{[3]float32{0, 0, 1}, [4][3]float32{{-w, -h, d}, {w, -h, d}, {w, h, d}, {-w, h, d}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{w, -h, -d}, {-w, -h, -d}, {-w, h, -d}, {w, h, -d}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{w, -h, d}, {w, -h, -d}, {w, h, -d}, {w, h, d}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-w, -h, -d}, {-w, -h, d}, {-w, h, d}, {-w, h, -d}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-w, h, d}, {w, h, d}, {w, h, -d}, {-w, h, -d}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-w, -h, -d}, {w, -h, -d}, {w, -h, d}, {-w, -h, d}}},
	}

	for _, f := range faces {
		base := uint32(len(m.Vertices))
		for _, c := range f.corners {
			m.Vertices = append(m.Vertices, Vertex{Position: c, Normal: f.normal})
		}
		m.Indices = append(m.Indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}

	m.RecomputeBounds()
	return m
}

// Plane builds a subdivided plane in the XY plane, facing +Z. Vertices run
// row-major from (-width/2, -height/2), so local (x, y) positions are
// available for procedural displacement along Z.
func Plane(width, height float32, widthSegs, heightSegs int) *Mesh {
	m := &Mesh{}

	for j := 0; j <= heightSegs; j++ {
		y := -height/2 + float32(j)/float32(heightSegs)*height
		for i := 0; i <= widthSegs; i++ {
			x := -width/2 + float32(i)/float32(widthSegs)*width
			m.Vertices = append(m.Vertices, Vertex{
				Position: [3]float32{x, y, 0},
				Normal:   [3]float32{0, 0, 1},
			})
		}
	}

	for j := 0; j < heightSegs; j++ {
		for i := 0; i < widthSegs; i++ {
			a := uint32(j*(widthSegs+1) + i)
			b := a + 1
			c := a + uint32(widthSegs+1)
			d := c + 1
			m.Indices = append(m.Indices, a, b, d, a, d, c)
		}
	}

	m.RecomputeBounds()
	return m
}

// TorusKnot builds a (p, q) torus knot tube. radius is the knot radius,
// tube the tube radius.
func TorusKnot(radius, tube float32, tubularSegs, radialSegs, p, q int) *Mesh {
	m := &Mesh{}

	knotPoint := func(u float64) [3]float32 {
		cu := gomath.Cos(u)
		su := gomath.Sin(u)
		quOverP := float64(q) / float64(p) * u
		cs := gomath.Cos(quOverP)

		return [3]float32{
			float32(float64(radius) * (2 + cs) * 0.5 * cu),
			float32(float64(radius) * (2 + cs) * 0.5 * su),
			float32(float64(radius) * gomath.Sin(quOverP) * 0.5),
		}
	}

	for i := 0; i <= tubularSegs; i++ {
		u := float64(i) / float64(tubularSegs) * float64(p) * 2 * gomath.Pi

		// Approximate Frenet frame from two nearby curve points
		p1 := knotPoint(u)
		p2 := knotPoint(u + 0.01)
		tangent := [3]float32{p2[0] - p1[0], p2[1] - p1[1], p2[2] - p1[2]}
		seed := [3]float32{p2[0] + p1[0], p2[1] + p1[1], p2[2] + p1[2]}
		binormal := normalize(cross(tangent, seed))
		normal := normalize(cross(binormal, tangent))

		for j := 0; j <= radialSegs; j++ {
			v := float64(j) / float64(radialSegs) * 2 * gomath.Pi
			cx := -tube * float32(gomath.Cos(v))
			cy := tube * float32(gomath.Sin(v))

			pos := [3]float32{
				p1[0] + cx*normal[0] + cy*binormal[0],
				p1[1] + cx*normal[1] + cy*binormal[1],
				p1[2] + cx*normal[2] + cy*binormal[2],
			}
			m.Vertices = append(m.Vertices, Vertex{
				Position: pos,
				Normal:   normalize([3]float32{pos[0] - p1[0], pos[1] - p1[1], pos[2] - p1[2]}),
			})
		}
	}

	gridIndices(m, radialSegs, tubularSegs)
	m.RecomputeBounds()
	return m
}

// gridIndices appends triangle indices for a (cols+1)x(rows+1) vertex grid
// laid out row-major starting at the current base of the mesh.
func gridIndices(m *Mesh, cols, rows int) {
	base := uint32(len(m.Vertices)) - uint32((cols+1)*(rows+1))
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			a := base + uint32(j*(cols+1)+i)
			b := a + 1
			c := a + uint32(cols+1)
			d := c + 1
			m.Indices = append(m.Indices, a, c, b, b, c, d)
		}
	}
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
