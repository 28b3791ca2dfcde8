// Copyright © 2026 Bonsai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tree/geometry.go
// Summary: Integer pixel geometry primitives (Rect, Box, Axis, Direction).
// Usage: Shared by every node kind for rect propagation and resize math.

package tree

import "math"

// Axis is one of the two directions a SplitContainer can lay its children out on.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Inv returns the perpendicular axis.
func (a Axis) Inv() Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Direction is a spatial navigation direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Axis returns the axis a direction travels along.
func (d Direction) Axis() Axis {
	if d == DirLeft || d == DirRight {
		return AxisX
	}
	return AxisY
}

// AxisUnit returns -1 for the directions that travel toward lower coordinates
// (left, up) and +1 for the ones that travel toward higher coordinates.
func (d Direction) AxisUnit() int {
	if d == DirLeft || d == DirUp {
		return -1
	}
	return 1
}

// Rect is an integer-pixel axis-aligned rectangle.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) X2() int { return r.X + r.W }
func (r Rect) Y2() int { return r.Y + r.H }

// Coord returns the rect's starting coordinate along the given axis.
func (r Rect) Coord(a Axis) int {
	if a == AxisX {
		return r.X
	}
	return r.Y
}

// Coord2 returns the rect's ending coordinate (exclusive) along the given axis.
func (r Rect) Coord2(a Axis) int {
	if a == AxisX {
		return r.X2()
	}
	return r.Y2()
}

// Dim returns the rect's extent along the given axis.
func (r Rect) Dim(a Axis) int {
	if a == AxisX {
		return r.W
	}
	return r.H
}

// WithCoordDim returns a copy of r with its coordinate and dimension along a replaced.
func (r Rect) WithCoordDim(a Axis, coord, dim int) Rect {
	out := r
	if a == AxisX {
		out.X, out.W = coord, dim
	} else {
		out.Y, out.H = coord, dim
	}
	return out
}

// Split partitions r along axis a at ratio into two abutting rects with no
// gap and no overlap. The first rect gets round(dim*ratio); the second gets
// whatever remains, so the two always reassemble exactly into r.
func (r Rect) Split(a Axis, ratio float64) (Rect, Rect) {
	total := r.Dim(a)
	first := int(math.Round(float64(total) * ratio))
	if first < 0 {
		first = 0
	}
	if first > total {
		first = total
	}
	second := total - first
	r1 := r.WithCoordDim(a, r.Coord(a), first)
	r2 := r.WithCoordDim(a, r.Coord(a)+first, second)
	return r1, r2
}

// Union returns the smallest rect enclosing both r and o.
func (r Rect) Union(o Rect) Rect {
	x1, y1 := min(r.X, o.X), min(r.Y, o.Y)
	x2, y2 := max(r.X2(), o.X2()), max(r.Y2(), o.Y2())
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// HasCoord reports whether the point (x, y) lies within [x1,x2) x [y1,y2).
func (r Rect) HasCoord(x, y int) bool {
	return x >= r.X && x < r.X2() && y >= r.Y && y < r.Y2()
}

// Sides holds independent perimeter sizes for the four sides of a box layer.
type Sides struct {
	Top, Right, Bottom, Left int
}

func (s Sides) horizontal() int { return s.Left + s.Right }
func (s Sides) vertical() int   { return s.Top + s.Bottom }

func insetRect(r Rect, s Sides) Rect {
	return Rect{X: r.X + s.Left, Y: r.Y + s.Top, W: r.W - s.horizontal(), H: r.H - s.vertical()}
}

// Box models concentric rects the way the CSS box model does: principal
// (margin) rect is the outermost, with border and padding insetting it
// further down to the innermost content rect. Only the principal rect is
// stored; the others are derived on demand from the configured perimeters.
type Box struct {
	principal Rect
	margin    Sides
	border    Sides
	padding   Sides
}

// PrincipalRect is the node's occupied space — the margin rect.
func (b Box) PrincipalRect() Rect { return b.principal }

// BorderRect insets the principal rect by the margin.
func (b Box) BorderRect() Rect { return insetRect(b.principal, b.margin) }

// PaddingRect insets the border rect by the border thickness.
func (b Box) PaddingRect() Rect { return insetRect(b.BorderRect(), b.border) }

// ContentRect insets the padding rect by the padding.
func (b Box) ContentRect() Rect { return insetRect(b.PaddingRect(), b.padding) }

func (b *Box) SetPrincipalRect(r Rect) { b.principal = r }
func (b *Box) SetMargin(s Sides)       { b.margin = s }
func (b *Box) SetBorder(s Sides)       { b.border = s }
func (b *Box) SetPadding(s Sides)      { b.padding = s }

func (b Box) Margin() Sides  { return b.margin }
func (b Box) Border() Sides  { return b.border }
func (b Box) Padding() Sides { return b.padding }
