package layout

// Strategy computes one box per constraint, in order, for a container box.
// Strategies are pure and synchronous. They return nil when there are no
// constraints or when the padding leaves no room.
type Strategy[E any] func(container BoundingBox, constraints []SizeConstraint, extras E) []BoundingBox

// LinearExtras configures the Linear strategy.
type LinearExtras struct {
	Direction Direction
	Padding   EdgeInsets
}

// AnchorExtras configures the Anchored strategy.
type AnchorExtras struct {
	Anchor  Anchor
	Padding EdgeInsets
}

// Linear splits the padded container along the main axis.
//
// Each child's MinSize on the main axis is reserved first. The space left
// over is shared out child by child: a child receives an equal share of the
// space not yet handed out, on top of its minimum. When a child's max limit
// clamps its share, the unused part stays in the pool and is split among the
// children after it, never the ones before. With no clamps the shares
// differ by at most one pixel and the children tile the container exactly.
//
// On the cross axis children fill the padded extent, clamped by any cross
// max limit. Children are never placed past the padded container's end.
func Linear(container BoundingBox, constraints []SizeConstraint, extras LinearExtras) []BoundingBox {
	n := len(constraints)
	if n == 0 {
		return nil
	}
	inner, ok := container.Deflate(extras.Padding)
	if !ok {
		return nil
	}
	dir := extras.Direction
	avail := uint64(dir.main(inner.Size))
	crossAvail := dir.cross(inner.Size)
	start := uint64(dir.mainPos(inner.Pos))
	crossStart := dir.crossPos(inner.Pos)
	end := start + avail

	var sumMin uint64
	for _, c := range constraints {
		sumMin += uint64(dir.main(c.Min()))
	}
	var pool uint64
	if avail > sumMin {
		pool = avail - sumMin
	}

	out := make([]BoundingBox, n)
	pos := start
	for i, c := range constraints {
		share := pool / uint64(n-i)
		extent := uint64(dir.main(c.Min())) + share
		if limit, ok := c.maxOn(dir, true); ok && extent > uint64(limit) {
			extent = uint64(limit)
		}
		if used := extent - uint64(dir.main(c.Min())); used <= pool {
			pool -= used
		} else {
			pool = 0
		}
		if pos+extent > end {
			extent = end - min(pos, end)
		}

		cross := crossAvail
		if limit, ok := c.maxOn(dir, false); ok {
			cross = min(cross, limit)
		}
		out[i] = BoundingBox{
			Pos:  dir.point(uint32(min(pos, end)), crossStart),
			Size: dir.size(uint32(extent), cross),
		}
		pos += extent
	}
	return out
}

// Anchored sizes each child per its constraint inside the padded container
// and attaches it at extras.Anchor. A single-child container uses it for
// its one child; a stack uses it to overlay all children.
func Anchored(container BoundingBox, constraints []SizeConstraint, extras AnchorExtras) []BoundingBox {
	if len(constraints) == 0 {
		return nil
	}
	inner, ok := container.Deflate(extras.Padding)
	if !ok {
		return nil
	}
	out := make([]BoundingBox, len(constraints))
	for i, c := range constraints {
		out[i] = anchor(inner, c.Fit(inner.Size), extras.Anchor)
	}
	return out
}

func anchor(area BoundingBox, size Size, a Anchor) BoundingBox {
	hf, vf := a.factors()
	return BoundingBox{
		Pos: Point{
			X: area.Pos.X + offset(area.Size.Width, size.Width, hf),
			Y: area.Pos.Y + offset(area.Size.Height, size.Height, vf),
		},
		Size: size,
	}
}

// offset places extent within avail at factor half-extents, clamped at zero
// when extent exceeds avail.
func offset(avail, extent uint32, factor uint64) uint32 {
	if extent >= avail {
		return 0
	}
	return uint32(uint64(avail-extent) * factor / 2)
}

// Margin insets the container by a fixed margin and gives every child the
// whole remaining area.
func Margin(container BoundingBox, constraints []SizeConstraint, margin EdgeInsets) []BoundingBox {
	if len(constraints) == 0 {
		return nil
	}
	inner, ok := container.Deflate(margin)
	if !ok {
		return nil
	}
	out := make([]BoundingBox, len(constraints))
	for i := range out {
		out[i] = inner
	}
	return out
}
