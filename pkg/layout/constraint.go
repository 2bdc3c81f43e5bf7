package layout

import "fmt"

// ConstraintKind tags the variant of a SizeConstraint.
type ConstraintKind uint8

const (
	// KindUnconstrained takes whatever space the parent offers.
	KindUnconstrained ConstraintKind = iota
	// KindMinSize requires at least Size on both axes.
	KindMinSize
	// KindMaxSize accepts at most Size on both axes.
	KindMaxSize
	// KindMaxWidth accepts at most Size.Width horizontally.
	KindMaxWidth
	// KindMaxHeight accepts at most Size.Height vertically.
	KindMaxHeight
)

// SizeConstraint is a widget's declared sizing policy. The zero value is
// Unconstrained.
type SizeConstraint struct {
	Kind ConstraintKind
	Size Size
}

// Unconstrained returns a constraint that fills the offered space.
func Unconstrained() SizeConstraint {
	return SizeConstraint{}
}

// MinSize returns a constraint requiring at least w x h.
func MinSize(w, h uint32) SizeConstraint {
	return SizeConstraint{Kind: KindMinSize, Size: Size{Width: w, Height: h}}
}

// MaxSize returns a constraint accepting at most w x h.
func MaxSize(w, h uint32) SizeConstraint {
	return SizeConstraint{Kind: KindMaxSize, Size: Size{Width: w, Height: h}}
}

// MaxWidth returns a constraint accepting at most w horizontally.
func MaxWidth(w uint32) SizeConstraint {
	return SizeConstraint{Kind: KindMaxWidth, Size: Size{Width: w}}
}

// MaxHeight returns a constraint accepting at most h vertically.
func MaxHeight(h uint32) SizeConstraint {
	return SizeConstraint{Kind: KindMaxHeight, Size: Size{Height: h}}
}

func (c SizeConstraint) String() string {
	switch c.Kind {
	case KindUnconstrained:
		return "Unconstrained"
	case KindMinSize:
		return fmt.Sprintf("MinSize(%d,%d)", c.Size.Width, c.Size.Height)
	case KindMaxSize:
		return fmt.Sprintf("MaxSize(%d,%d)", c.Size.Width, c.Size.Height)
	case KindMaxWidth:
		return fmt.Sprintf("MaxWidth(%d)", c.Size.Width)
	case KindMaxHeight:
		return fmt.Sprintf("MaxHeight(%d)", c.Size.Height)
	default:
		return fmt.Sprintf("SizeConstraint(%d)", c.Kind)
	}
}

// Min returns the minimum size the constraint requires.
func (c SizeConstraint) Min() Size {
	if c.Kind == KindMinSize {
		return c.Size
	}
	return Size{}
}

// maxWidth returns the horizontal limit, if any.
func (c SizeConstraint) maxWidth() (uint32, bool) {
	switch c.Kind {
	case KindMaxSize, KindMaxWidth:
		return c.Size.Width, true
	}
	return 0, false
}

// maxHeight returns the vertical limit, if any.
func (c SizeConstraint) maxHeight() (uint32, bool) {
	switch c.Kind {
	case KindMaxSize, KindMaxHeight:
		return c.Size.Height, true
	}
	return 0, false
}

func (c SizeConstraint) maxOn(d Direction, main bool) (uint32, bool) {
	if (d == Horizontal) == main {
		return c.maxWidth()
	}
	return c.maxHeight()
}

// Fit returns the size the constraint accepts out of avail. Unconstrained
// and MinSize fill avail; max limits clamp. The result never exceeds avail.
func (c SizeConstraint) Fit(avail Size) Size {
	out := avail
	if w, ok := c.maxWidth(); ok {
		out.Width = min(out.Width, w)
	}
	if h, ok := c.maxHeight(); ok {
		out.Height = min(out.Height, h)
	}
	return out
}
