package layout

import (
	"fmt"
	"strconv"

	"github.com/chewxy/math32"
)

// SizeMode selects how a grid row or column is sized.
type SizeMode int

const (
	// SizeStrict uses the fixed Size of the dimension.
	SizeStrict SizeMode = iota
	// SizeAuto uses the largest desired size of the children in the track.
	SizeAuto
	// SizeStretch shares the space left by strict and auto tracks equally.
	SizeStretch
)

func (m SizeMode) String() string {
	switch m {
	case SizeAuto:
		return "auto"
	case SizeStretch:
		return "stretch"
	default:
		return "strict"
	}
}

// GridDimension describes one row or column of a grid.
type GridDimension struct {
	Mode SizeMode
	Size float32
}

// Strict returns a fixed-size dimension.
func Strict(size float32) GridDimension {
	return GridDimension{Mode: SizeStrict, Size: size}
}

// AutoSize returns a content-sized dimension.
func AutoSize() GridDimension {
	return GridDimension{Mode: SizeAuto}
}

// Stretch returns a dimension that fills the remaining space.
func Stretch() GridDimension {
	return GridDimension{Mode: SizeStretch}
}

// ParseGridDimension parses "auto", "stretch", "*" or a number (strict).
func ParseGridDimension(s string) (GridDimension, error) {
	switch s {
	case "auto":
		return AutoSize(), nil
	case "stretch", "*":
		return Stretch(), nil
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil || v < 0 {
		return GridDimension{}, fmt.Errorf("invalid grid dimension %q", s)
	}
	return Strict(float32(v)), nil
}

// StretchShare returns the space each stretch track receives out of
// available once strict and auto tracks are taken. It is Unbounded when
// available is unbounded and zero when there are no stretch tracks.
func StretchShare(tracks []GridDimension, content []float32, available float32) float32 {
	var fixed float32
	var stretch int
	for i, t := range tracks {
		switch t.Mode {
		case SizeStrict:
			fixed += t.Size
		case SizeAuto:
			fixed += contentAt(content, i)
		case SizeStretch:
			stretch++
		}
	}
	if stretch == 0 {
		return 0
	}
	if math32.IsInf(available, 1) {
		return Unbounded
	}
	return math32.Max(0, available-fixed) / float32(stretch)
}

// ResolveTracks returns the extent of every track. content[i] is the largest
// desired extent among the children placed in track i. When available is
// unbounded, stretch tracks size to their content like auto tracks.
func ResolveTracks(tracks []GridDimension, content []float32, available float32) []float32 {
	share := StretchShare(tracks, content, available)
	out := make([]float32, len(tracks))
	for i, t := range tracks {
		switch t.Mode {
		case SizeStrict:
			out[i] = t.Size
		case SizeAuto:
			out[i] = contentAt(content, i)
		case SizeStretch:
			if math32.IsInf(share, 1) {
				out[i] = contentAt(content, i)
			} else {
				out[i] = share
			}
		}
	}
	return out
}

// TrackOffsets returns the start of each track given the track extents.
func TrackOffsets(extents []float32) []float32 {
	out := make([]float32, len(extents))
	var pos float32
	for i, e := range extents {
		out[i] = pos
		pos += e
	}
	return out
}

// TrackIndex clamps a requested row or column index to the tracks present.
func TrackIndex(i, count int) int {
	if count == 0 || i < 0 {
		return 0
	}
	if i >= count {
		return count - 1
	}
	return i
}

func contentAt(content []float32, i int) float32 {
	if i < len(content) {
		return content[i]
	}
	return 0
}
