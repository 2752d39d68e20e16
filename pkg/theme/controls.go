package theme

import (
	"fmt"
	"strings"
)

// Insets are the cap insets of a stretchable image, in points.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// ResizingMode controls how the area inside the cap insets is filled.
type ResizingMode string

const (
	ResizingModeTile    ResizingMode = "tile"
	ResizingModeStretch ResizingMode = "stretch"
)

// Image references a theme asset. URL is resolved through the active
// renderer configuration.
type Image struct {
	Name         string       `json:"name"`
	URL          string       `json:"url"`
	CapInsets    Insets       `json:"capInsets"`
	ResizingMode ResizingMode `json:"resizingMode,omitempty"`
}

// Resizable returns a copy of the image stretched or tiled inside insets.
func (img Image) Resizable(insets Insets, mode ResizingMode) Image {
	img.CapInsets = insets
	img.ResizingMode = mode
	return img
}

// KeyboardType hints which on-screen keyboard suits a text field.
type KeyboardType string

const (
	KeyboardDefault      KeyboardType = "default"
	KeyboardEmailAddress KeyboardType = "email-address"
	KeyboardASCIICapable KeyboardType = "ascii-capable"
	KeyboardNumberPad    KeyboardType = "number-pad"
)

// InputMode maps the keyboard type to the HTML inputmode attribute.
func (k KeyboardType) InputMode() string {
	switch k {
	case KeyboardEmailAddress:
		return "email"
	case KeyboardNumberPad:
		return "numeric"
	default:
		return "text"
	}
}

// Button is the styleable state of a push button.
type Button struct {
	Title           string
	BackgroundImage *Image
	BackgroundColor *Color
	CornerRadius    float64
}

// Style renders the button state as an inline CSS declaration list.
func (b Button) Style() string {
	var decls []string
	if b.BackgroundImage != nil && b.BackgroundImage.URL != "" {
		img := b.BackgroundImage
		repeat := "stretch"
		if img.ResizingMode == ResizingModeTile {
			repeat = "repeat"
		}
		decls = append(decls,
			fmt.Sprintf("border-image: url(%q) %s %s %s %s fill / %spx %spx %spx %spx %s",
				img.URL,
				trimFloat(img.CapInsets.Top), trimFloat(img.CapInsets.Right),
				trimFloat(img.CapInsets.Bottom), trimFloat(img.CapInsets.Left),
				trimFloat(img.CapInsets.Top), trimFloat(img.CapInsets.Right),
				trimFloat(img.CapInsets.Bottom), trimFloat(img.CapInsets.Left),
				repeat,
			),
		)
	}
	if b.BackgroundColor != nil {
		decls = append(decls, "background-color: "+b.BackgroundColor.CSS())
	}
	if b.CornerRadius > 0 {
		decls = append(decls, "border-radius: "+trimFloat(b.CornerRadius)+"px")
	}
	return strings.Join(decls, "; ")
}

// TextField is the styleable state of a single-line text input.
type TextField struct {
	Name         string
	Value        string
	Placeholder  string
	KeyboardType KeyboardType
}

// ImageView displays a single image, typically an icon next to a field.
type ImageView struct {
	Image *Image
}

func trimFloat(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
