package flyscene

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrInvalidShape = errors.New("invalid shape")

// Mesh is an indexed triangle list. Front faces wind counter-clockwise.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Tangents  []mgl32.Vec3
	TexCoords []mgl32.Vec2
	Indices   []uint32
}

func (m *Mesh) Triangles() int { return len(m.Indices) / 3 }

type shapeKind int

const (
	shapeSphere shapeKind = iota
	shapePlane
)

type Shape struct {
	kind shapeKind
	u, v int
}

// Sphere is a UV sphere of radius 1 with u segments around Y and v rings.
func Sphere(u, v int) Shape {
	return Shape{kind: shapeSphere, u: u, v: v}
}

// Plane is the square [-1,1]x[-1,1] on z=0 facing +Z, cut into x by y cells.
// Zero subdivisions mean a single cell.
func Plane(x, y int) Shape {
	if x == 0 {
		x = 1
	}
	if y == 0 {
		y = 1
	}
	return Shape{kind: shapePlane, u: x, v: y}
}

func (s Shape) Key() string {
	switch s.kind {
	case shapeSphere:
		return fmt.Sprintf("sphere(%d,%d)", s.u, s.v)
	case shapePlane:
		return fmt.Sprintf("plane(%d,%d)", s.u, s.v)
	}
	return "unknown"
}

// Generate builds the vertex data, optionally scaling positions. Every
// scale component must be non-zero.
func (s Shape) Generate(scale *mgl32.Vec3) (*Mesh, error) {
	if scale != nil && (scale[0] == 0 || scale[1] == 0 || scale[2] == 0) {
		return nil, fmt.Errorf("%s: zero scale %v: %w", s.Key(), *scale, ErrInvalidShape)
	}

	var m *Mesh
	switch s.kind {
	case shapeSphere:
		if s.u < 3 || s.v < 2 {
			return nil, fmt.Errorf("%s: %w", s.Key(), ErrInvalidShape)
		}
		m = generateSphere(s.u, s.v)
	case shapePlane:
		if s.u < 1 || s.v < 1 {
			return nil, fmt.Errorf("%s: %w", s.Key(), ErrInvalidShape)
		}
		m = generatePlane(s.u, s.v)
	default:
		return nil, ErrInvalidShape
	}

	if scale != nil {
		sc := *scale
		for i, p := range m.Positions {
			m.Positions[i] = mgl32.Vec3{p[0] * sc[0], p[1] * sc[1], p[2] * sc[2]}
		}
		// Normals transform by the inverse scale.
		for i, n := range m.Normals {
			scaled := mgl32.Vec3{n[0] / sc[0], n[1] / sc[1], n[2] / sc[2]}
			if scaled.Len() > 0 {
				m.Normals[i] = scaled.Normalize()
			}
		}
	}
	return m, nil
}

func generateSphere(u, v int) *Mesh {
	m := &Mesh{}
	for i := 0; i <= v; i++ {
		theta := math.Pi * float64(i) / float64(v)
		sinT, cosT := math.Sincos(theta)
		for j := 0; j <= u; j++ {
			phi := 2 * math.Pi * float64(j) / float64(u)
			sinP, cosP := math.Sincos(phi)
			p := mgl32.Vec3{float32(sinT * cosP), float32(cosT), float32(sinT * sinP)}
			m.Positions = append(m.Positions, p)
			m.Normals = append(m.Normals, p.Normalize())
			m.Tangents = append(m.Tangents, mgl32.Vec3{float32(-sinP), 0, float32(cosP)})
			m.TexCoords = append(m.TexCoords, mgl32.Vec2{float32(j) / float32(u), float32(i) / float32(v)})
		}
	}

	stride := uint32(u + 1)
	for i := 0; i < v; i++ {
		for j := 0; j < u; j++ {
			a := uint32(i)*stride + uint32(j)
			b := a + stride
			c := b + 1
			d := a + 1
			if i != 0 {
				m.Indices = append(m.Indices, a, d, c)
			}
			if i != v-1 {
				m.Indices = append(m.Indices, a, c, b)
			}
		}
	}
	return m
}

func generatePlane(x, y int) *Mesh {
	m := &Mesh{}
	for j := 0; j <= y; j++ {
		for i := 0; i <= x; i++ {
			fx := float32(i) / float32(x)
			fy := float32(j) / float32(y)
			m.Positions = append(m.Positions, mgl32.Vec3{-1 + 2*fx, -1 + 2*fy, 0})
			m.Normals = append(m.Normals, mgl32.Vec3{0, 0, 1})
			m.Tangents = append(m.Tangents, mgl32.Vec3{1, 0, 0})
			m.TexCoords = append(m.TexCoords, mgl32.Vec2{fx, 1 - fy})
		}
	}

	stride := uint32(x + 1)
	for j := 0; j < y; j++ {
		for i := 0; i < x; i++ {
			a := uint32(j)*stride + uint32(i)
			b := a + 1
			d := a + stride
			c := d + 1
			m.Indices = append(m.Indices, a, b, c, a, c, d)
		}
	}
	return m
}

// MeshCache generates each shape once and hands out the shared mesh.
type MeshCache struct {
	meshes map[string]*Mesh
}

func NewMeshCache() *MeshCache {
	return &MeshCache{meshes: map[string]*Mesh{}}
}

func (mc *MeshCache) Load(s Shape) (*Mesh, error) {
	if m, ok := mc.meshes[s.Key()]; ok {
		return m, nil
	}
	m, err := s.Generate(nil)
	if err != nil {
		return nil, err
	}
	log.Debugf("Generated mesh %s: %d vertices, %d triangles", s.Key(), len(m.Positions), m.Triangles())
	mc.meshes[s.Key()] = m
	return m, nil
}

func (mc *MeshCache) Len() int { return len(mc.meshes) }
