package layout

import "github.com/go-drift/uicore/pkg/graphics"

// HorizontalAlignment positions a node inside the width its parent offers.
type HorizontalAlignment int

const (
	// HorizontalStretch fills the offered width.
	HorizontalStretch HorizontalAlignment = iota
	// HorizontalLeft aligns to the left edge at the desired width.
	HorizontalLeft
	// HorizontalCenter centers at the desired width.
	HorizontalCenter
	// HorizontalRight aligns to the right edge at the desired width.
	HorizontalRight
)

func (a HorizontalAlignment) String() string {
	switch a {
	case HorizontalLeft:
		return "left"
	case HorizontalCenter:
		return "center"
	case HorizontalRight:
		return "right"
	default:
		return "stretch"
	}
}

// VerticalAlignment positions a node inside the height its parent offers.
type VerticalAlignment int

const (
	// VerticalStretch fills the offered height.
	VerticalStretch VerticalAlignment = iota
	// VerticalTop aligns to the top edge at the desired height.
	VerticalTop
	// VerticalCenter centers at the desired height.
	VerticalCenter
	// VerticalBottom aligns to the bottom edge at the desired height.
	VerticalBottom
)

func (a VerticalAlignment) String() string {
	switch a {
	case VerticalTop:
		return "top"
	case VerticalCenter:
		return "center"
	case VerticalBottom:
		return "bottom"
	default:
		return "stretch"
	}
}

// ParseHorizontalAlignment parses the String form of a HorizontalAlignment.
func ParseHorizontalAlignment(s string) (HorizontalAlignment, bool) {
	switch s {
	case "", "stretch":
		return HorizontalStretch, true
	case "left":
		return HorizontalLeft, true
	case "center":
		return HorizontalCenter, true
	case "right":
		return HorizontalRight, true
	}
	return HorizontalStretch, false
}

// ParseVerticalAlignment parses the String form of a VerticalAlignment.
func ParseVerticalAlignment(s string) (VerticalAlignment, bool) {
	switch s {
	case "", "stretch":
		return VerticalStretch, true
	case "top":
		return VerticalTop, true
	case "center":
		return VerticalCenter, true
	case "bottom":
		return VerticalBottom, true
	}
	return VerticalStretch, false
}

// AlignedSize returns the size a node occupies inside offered space: the
// full offered extent on stretch axes, the desired extent otherwise.
func AlignedSize(offered, desired graphics.Vec2, h HorizontalAlignment, v VerticalAlignment) graphics.Vec2 {
	size := offered
	if h != HorizontalStretch && desired.X < size.X {
		size.X = desired.X
	}
	if v != VerticalStretch && desired.Y < size.Y {
		size.Y = desired.Y
	}
	return size
}

// AlignOffset returns where a box of the given size starts inside offered
// space.
func AlignOffset(offered, size graphics.Vec2, h HorizontalAlignment, v VerticalAlignment) graphics.Vec2 {
	var off graphics.Vec2
	switch h {
	case HorizontalCenter:
		off.X = (offered.X - size.X) * 0.5
	case HorizontalRight:
		off.X = offered.X - size.X
	}
	switch v {
	case VerticalCenter:
		off.Y = (offered.Y - size.Y) * 0.5
	case VerticalBottom:
		off.Y = offered.Y - size.Y
	}
	if off.X < 0 {
		off.X = 0
	}
	if off.Y < 0 {
		off.Y = 0
	}
	return off
}

// Orientation is the stacking direction of a stack panel.
type Orientation int

const (
	// Vertical stacks children top to bottom.
	Vertical Orientation = iota
	// Horizontal stacks children left to right.
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}
