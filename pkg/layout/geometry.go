// Package layout computes child bounding boxes for container widgets.
//
// Layout is expressed as a pure [Strategy] that maps a container box, the
// ordered child constraints and strategy-specific extras to one box per
// child. An [Engine] re-runs a strategy whenever any of its reactive inputs
// change. All geometry is in unsigned integer pixels; strategies never
// produce boxes that extend past the padded container.
package layout

import "fmt"

// Point is a position in pixels.
type Point struct {
	X, Y uint32
}

// Size is a width and height in pixels.
type Size struct {
	Width, Height uint32
}

// BoundingBox is the position and size a parent assigns to a child.
type BoundingBox struct {
	Pos  Point
	Size Size
}

// Box is a shorthand constructor for a BoundingBox.
func Box(x, y, w, h uint32) BoundingBox {
	return BoundingBox{Pos: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", b.Pos.X, b.Pos.Y, b.Size.Width, b.Size.Height)
}

// Right returns the exclusive right edge.
func (b BoundingBox) Right() uint32 { return b.Pos.X + b.Size.Width }

// Bottom returns the exclusive bottom edge.
func (b BoundingBox) Bottom() uint32 { return b.Pos.Y + b.Size.Height }

// Contains reports whether p lies inside the box. The right and bottom
// edges are exclusive, so an empty box contains nothing.
func (b BoundingBox) Contains(p Point) bool {
	return p.X >= b.Pos.X && p.X < b.Right() &&
		p.Y >= b.Pos.Y && p.Y < b.Bottom()
}

// ContainsBox reports whether o lies entirely inside b.
func (b BoundingBox) ContainsBox(o BoundingBox) bool {
	return o.Pos.X >= b.Pos.X && o.Pos.Y >= b.Pos.Y &&
		o.Right() <= b.Right() && o.Bottom() <= b.Bottom()
}

// Deflate insets the box by e. It reports false when the insets consume the
// whole extent on either axis.
func (b BoundingBox) Deflate(e EdgeInsets) (BoundingBox, bool) {
	h := uint64(e.Left) + uint64(e.Right)
	v := uint64(e.Top) + uint64(e.Bottom)
	if h >= uint64(b.Size.Width) || v >= uint64(b.Size.Height) {
		return BoundingBox{}, false
	}
	return BoundingBox{
		Pos:  Point{X: b.Pos.X + e.Left, Y: b.Pos.Y + e.Top},
		Size: Size{Width: b.Size.Width - uint32(h), Height: b.Size.Height - uint32(v)},
	}, true
}

// EdgeInsets is padding on each side of a box.
type EdgeInsets struct {
	Left, Top, Right, Bottom uint32
}

// EdgeInsetsAll returns equal insets on all sides.
func EdgeInsetsAll(v uint32) EdgeInsets {
	return EdgeInsets{Left: v, Top: v, Right: v, Bottom: v}
}

// EdgeInsetsSymmetric returns h on the left and right, v on the top and bottom.
func EdgeInsetsSymmetric(h, v uint32) EdgeInsets {
	return EdgeInsets{Left: h, Top: v, Right: h, Bottom: v}
}

// EdgeInsetsOnly returns the given insets.
func EdgeInsetsOnly(left, top, right, bottom uint32) EdgeInsets {
	return EdgeInsets{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Direction is the main axis of a linear layout.
type Direction int

const (
	// Horizontal lays children out left to right.
	Horizontal Direction = iota
	// Vertical lays children out top to bottom.
	Vertical
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

func (d Direction) main(s Size) uint32 {
	if d == Horizontal {
		return s.Width
	}
	return s.Height
}

func (d Direction) cross(s Size) uint32 {
	if d == Horizontal {
		return s.Height
	}
	return s.Width
}

func (d Direction) mainPos(p Point) uint32 {
	if d == Horizontal {
		return p.X
	}
	return p.Y
}

func (d Direction) crossPos(p Point) uint32 {
	if d == Horizontal {
		return p.Y
	}
	return p.X
}

func (d Direction) size(main, cross uint32) Size {
	if d == Horizontal {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

func (d Direction) point(main, cross uint32) Point {
	if d == Horizontal {
		return Point{X: main, Y: cross}
	}
	return Point{X: cross, Y: main}
}

// Anchor is one of nine attachment points inside a box.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorTop
	AnchorTopRight
	AnchorLeft
	AnchorCenter
	AnchorRight
	AnchorBottomLeft
	AnchorBottom
	AnchorBottomRight
)

func (a Anchor) String() string {
	switch a {
	case AnchorTopLeft:
		return "top_left"
	case AnchorTop:
		return "top"
	case AnchorTopRight:
		return "top_right"
	case AnchorLeft:
		return "left"
	case AnchorCenter:
		return "center"
	case AnchorRight:
		return "right"
	case AnchorBottomLeft:
		return "bottom_left"
	case AnchorBottom:
		return "bottom"
	case AnchorBottomRight:
		return "bottom_right"
	default:
		return fmt.Sprintf("Anchor(%d)", int(a))
	}
}

// factors returns the horizontal and vertical placement in half-extents:
// 0 for start, 1 for center, 2 for end.
func (a Anchor) factors() (h, v uint64) {
	if a < AnchorTopLeft || a > AnchorBottomRight {
		return 0, 0
	}
	return uint64(a % 3), uint64(a / 3)
}
