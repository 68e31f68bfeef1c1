// Package terrain generates and queries the landing surface for both the
// 2D side-view and 3D modes. All public coordinates are in meters; the
// generators internally work from screen-pixel constants and convert with
// physics.PixelsPerMeter so rendered proportions stay stable across modes.
package terrain

import (
	"math/rand/v2"

	"github.com/opd-ai/go-lander/pkg/physics"
)

const (
	// SegmentCount is the number of line segments in a 2D terrain strip.
	SegmentCount = 10
	// GridSize is the number of cells per side of the 3D terrain grid.
	GridSize = 20

	// Pixel-space generation constants, converted to meters on use.
	surfaceMarginPx  = 50.0
	roughness2DPx    = 20.0
	perturbation3DPx = 10.0
	padSegmentSpan   = 2
)

// Segment is one piece of the 2D terrain strip. A and B are the endpoint
// positions in meters, A.X < B.X.
type Segment struct {
	A            physics.Vector2D
	B            physics.Vector2D
	IsLandingPad bool
}

// HeightAt linearly interpolates the segment height at x. The caller must
// ensure A.X <= x <= B.X.
func (s Segment) HeightAt(x float64) float64 {
	span := s.B.X - s.A.X
	if span == 0 {
		return s.A.Y
	}
	t := (x - s.A.X) / span
	return s.A.Y + t*(s.B.Y-s.A.Y)
}

// Triangle is one face of the 3D terrain mesh, vertices in meters.
type Triangle struct {
	V0, V1, V2   physics.Vector3D
	Normal       physics.Vector3D
	IsLandingPad bool
}

// computeNormal returns the unit surface normal of the triangle, oriented
// so that it points upward (positive Y).
func computeNormal(v0, v1, v2 physics.Vector3D) physics.Vector3D {
	e1 := v1.Sub(v0).Mgl()
	e2 := v2.Sub(v0).Mgl()
	n := e1.Cross(e2)
	if n.Len() == 0 {
		return physics.Vector3D{Y: 1}
	}
	n = n.Normalize()
	if n.Y() < 0 {
		n = n.Mul(-1)
	}
	return physics.FromMgl(n)
}

// minMax returns the smallest and largest of three values.
func minMax(a, b, c float64) (float64, float64) {
	lo, hi := a, a
	if b < lo {
		lo = b
	}
	if b > hi {
		hi = b
	}
	if c < lo {
		lo = c
	}
	if c > hi {
		hi = c
	}
	return lo, hi
}

// contains reports whether (x, z) falls inside the triangle's horizontal
// bounding box. Bounding-box containment with an averaged vertex height is
// intentionally coarse; the grid cells are small enough that the error is
// below the landing tolerances.
func (t Triangle) contains(x, z float64) bool {
	loX, hiX := minMax(t.V0.X, t.V1.X, t.V2.X)
	loZ, hiZ := minMax(t.V0.Z, t.V1.Z, t.V2.Z)
	return x >= loX && x <= hiX && z >= loZ && z <= hiZ
}

// averageHeight returns the mean Y of the triangle's vertices.
func (t Triangle) averageHeight() float64 {
	return (t.V0.Y + t.V1.Y + t.V2.Y) / 3.0
}

// Terrain holds the generated surface for the active mode. It implements
// physics.Surface so the physics backend can query it without knowing
// which mode produced it.
type Terrain struct {
	mode3D bool

	// World extents in meters.
	width  float64
	height float64
	length float64

	segments  []Segment
	triangles []Triangle

	rng *rand.Rand
}

// New returns an empty Terrain seeded for reproducible generation. Call
// Generate2D or Generate3D before querying it.
func New(seed uint64) *Terrain {
	return &Terrain{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Mode3D reports whether the last generation produced a 3D mesh.
func (t *Terrain) Mode3D() bool { return t.mode3D }

// Width returns the horizontal extent in meters.
func (t *Terrain) Width() float64 { return t.width }

// Length returns the Z extent in meters. Zero in 2D mode.
func (t *Terrain) Length() float64 { return t.length }

// Segments returns the 2D strip. Nil after Generate3D.
func (t *Terrain) Segments() []Segment { return t.segments }

// Triangles returns the 3D mesh. Nil after Generate2D.
func (t *Terrain) Triangles() []Triangle { return t.triangles }

// Generate2D builds a strip of SegmentCount jagged segments across a
// widthPx by heightPx scene, with a flat landing pad centered on the
// strip. Replaces any previous surface.
func (t *Terrain) Generate2D(widthPx, heightPx int) {
	t.mode3D = false
	t.triangles = nil
	t.width = float64(widthPx) / physics.PixelsPerMeter
	t.height = float64(heightPx) / physics.PixelsPerMeter
	t.length = 0

	baseHeight := surfaceMarginPx / physics.PixelsPerMeter
	roughness := roughness2DPx / physics.PixelsPerMeter
	segWidth := t.width / SegmentCount

	t.segments = make([]Segment, 0, SegmentCount)
	prev := baseHeight + t.rng.Float64()*roughness
	for i := 0; i < SegmentCount; i++ {
		next := baseHeight + t.rng.Float64()*roughness
		t.segments = append(t.segments, Segment{
			A: physics.Vector2D{X: float64(i) * segWidth, Y: prev},
			B: physics.Vector2D{X: float64(i+1) * segWidth, Y: next},
		})
		prev = next
	}

	t.flattenPad(baseHeight, segWidth)
}

// flattenPad marks the centered pad segments and forces them flat at the
// baseline so touchdown geometry is exact.
func (t *Terrain) flattenPad(baseHeight, segWidth float64) {
	padWidth := segWidth * padSegmentSpan
	padStart := t.width/2 - padWidth/2

	startSeg := int(padStart / segWidth)
	endSeg := int((padStart + padWidth) / segWidth)
	for i := startSeg; i <= endSeg && i < len(t.segments); i++ {
		if i < 0 {
			continue
		}
		t.segments[i].IsLandingPad = true
		t.segments[i].A.Y = baseHeight
		t.segments[i].B.Y = baseHeight
	}

	// Stitch neighbors so the strip stays continuous at pad edges.
	if startSeg > 0 && startSeg <= len(t.segments) {
		t.segments[startSeg-1].B.Y = baseHeight
	}
	if endSeg+1 < len(t.segments) {
		t.segments[endSeg+1].A.Y = baseHeight
	}
}

// Generate3D builds a GridSize x GridSize heightmap mesh over a widthPx by
// lengthPx footprint, two triangles per cell, with the flat landing pad
// covering the center third of the grid. Replaces any previous surface.
func (t *Terrain) Generate3D(widthPx, lengthPx, heightPx int) {
	t.mode3D = true
	t.segments = nil
	t.width = float64(widthPx) / physics.PixelsPerMeter
	t.length = float64(lengthPx) / physics.PixelsPerMeter
	t.height = float64(heightPx) / physics.PixelsPerMeter

	baseHeight := surfaceMarginPx / physics.PixelsPerMeter
	perturbation := perturbation3DPx / physics.PixelsPerMeter
	cellW := t.width / GridSize
	cellL := t.length / GridSize

	heights := make([]float64, (GridSize+1)*(GridSize+1))
	for z := 0; z <= GridSize; z++ {
		for x := 0; x <= GridSize; x++ {
			h := baseHeight
			if !padVertex(x, z) {
				h += t.rng.Float64()*2*perturbation - perturbation
			}
			heights[z*(GridSize+1)+x] = h
		}
	}

	t.triangles = make([]Triangle, 0, GridSize*GridSize*2)
	for z := 0; z < GridSize; z++ {
		for x := 0; x < GridSize; x++ {
			h1 := heights[z*(GridSize+1)+x]
			h2 := heights[z*(GridSize+1)+x+1]
			h3 := heights[(z+1)*(GridSize+1)+x]
			h4 := heights[(z+1)*(GridSize+1)+x+1]

			x0, x1 := float64(x)*cellW, float64(x+1)*cellW
			z0, z1 := float64(z)*cellL, float64(z+1)*cellL
			pad := padCell(x, z)

			a := physics.Vector3D{X: x0, Y: h1, Z: z0}
			b := physics.Vector3D{X: x1, Y: h2, Z: z0}
			c := physics.Vector3D{X: x0, Y: h3, Z: z1}
			d := physics.Vector3D{X: x1, Y: h4, Z: z1}

			t.triangles = append(t.triangles,
				Triangle{V0: a, V1: b, V2: c, Normal: computeNormal(a, b, c), IsLandingPad: pad},
				Triangle{V0: c, V1: b, V2: d, Normal: computeNormal(c, b, d), IsLandingPad: pad},
			)
		}
	}
}

// padCell reports whether grid cell (x, z) lies in the center-third pad
// region.
func padCell(x, z int) bool {
	return x > GridSize/3 && x < 2*GridSize/3 &&
		z > GridSize/3 && z < 2*GridSize/3
}

// padVertex reports whether vertex (x, z) touches any pad cell. Pad cells
// span cell indices (GridSize/3, 2*GridSize/3), so their vertices extend
// one index further on the high side; all of them must stay at the
// baseline for the pad to be flat.
func padVertex(x, z int) bool {
	return x > GridSize/3 && x <= 2*GridSize/3 &&
		z > GridSize/3 && z <= 2*GridSize/3
}

// HeightAt returns the surface height in meters under (x, z), or ok=false
// when the point is outside the generated footprint. In 2D mode z is
// ignored.
func (t *Terrain) HeightAt(x, z float64) (float64, bool) {
	if t.mode3D {
		return t.heightAt3D(x, z)
	}
	return t.heightAt2D(x)
}

func (t *Terrain) heightAt2D(x float64) (float64, bool) {
	for _, seg := range t.segments {
		if x >= seg.A.X && x <= seg.B.X {
			return seg.HeightAt(x), true
		}
	}
	return 0, false
}

func (t *Terrain) heightAt3D(x, z float64) (float64, bool) {
	for _, tri := range t.triangles {
		if tri.contains(x, z) {
			return tri.averageHeight(), true
		}
	}
	return 0, false
}

// PadAt reports whether the surface under (x, z) is part of the landing
// pad. In 2D mode z is ignored.
func (t *Terrain) PadAt(x, z float64) bool {
	if t.mode3D {
		for _, tri := range t.triangles {
			if tri.contains(x, z) {
				return tri.IsLandingPad
			}
		}
		return false
	}
	for _, seg := range t.segments {
		if x >= seg.A.X && x <= seg.B.X {
			return seg.IsLandingPad
		}
	}
	return false
}

// Center returns the X (and Z in 3D mode) midpoint of the footprint, which
// is also the middle of the landing pad.
func (t *Terrain) Center() (x, z float64) {
	return t.width / 2, t.length / 2
}

// PadHeight returns the flat pad's surface height in meters.
func (t *Terrain) PadHeight() float64 {
	return surfaceMarginPx / physics.PixelsPerMeter
}
