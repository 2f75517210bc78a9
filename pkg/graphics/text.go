package graphics

import "fmt"

// TextAlign controls horizontal alignment of overlay text within its frame.
type TextAlign int

const (
	// TextAlignLeft aligns text to the left edge of the frame.
	TextAlignLeft TextAlign = iota
	// TextAlignRight aligns text to the right edge of the frame.
	TextAlignRight
	// TextAlignCenter centers text horizontally within the frame.
	TextAlignCenter
)

// String returns a human-readable representation of the text alignment.
func (a TextAlign) String() string {
	switch a {
	case TextAlignLeft:
		return "left"
	case TextAlignCenter:
		return "center"
	case TextAlignRight:
		return "right"
	default:
		return fmt.Sprintf("TextAlign(%d)", int(a))
	}
}

// AlignedLeft returns the x coordinate where text of the given width
// starts when aligned within r.
func (a TextAlign) AlignedLeft(r Rect, width float64) float64 {
	switch a {
	case TextAlignRight:
		return r.Right - width
	case TextAlignCenter:
		return r.Left + (r.Width()-width)/2
	default:
		return r.Left
	}
}
