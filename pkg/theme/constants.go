package theme

import (
	"fmt"
	"math"
	"strconv"
)

// ButtonCornerRadius is the corner radius, in points, of default buttons.
const ButtonCornerRadius = 4

// Color is an RGBA colour with channels in the 0..1 range.
type Color struct {
	R, G, B, A float64
}

var (
	// BasicBlue is the accent colour of the default theme.
	BasicBlue = Color{R: 0, G: 184.0 / 255.0, B: 224.0 / 255.0, A: 0.87}
	// ClearColor is fully transparent.
	ClearColor = Color{}
)

// IsClear reports whether the colour is fully transparent.
func (c Color) IsClear() bool {
	return c.A == 0
}

// String renders the colour as a CSS rgba() expression.
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)",
		channel(c.R), channel(c.G), channel(c.B),
		strconv.FormatFloat(c.A, 'f', -1, 64),
	)
}

// CSS returns "transparent" for clear colours and the rgba() form otherwise.
func (c Color) CSS() string {
	if c.IsClear() {
		return "transparent"
	}
	return c.String()
}

func channel(v float64) int {
	return int(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
