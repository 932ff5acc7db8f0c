package preview

import "github.com/veandco/go-sdl2/sdl"

// Theme holds the colors the preview draws with.
type Theme struct {
	BackgroundColor sdl.Color // Window background
	ViewColor       sdl.Color // Idle view fill
	BorderColor     sdl.Color // View outline
	HoverColor      sdl.Color // Fill while a pointer is inside without contact
	PressedColor    sdl.Color // Fill while a pointer in contact is inside
	CaptureColor    sdl.Color // Outline of a view whose capture flag is set
}

// DefaultTheme returns the built-in dark theme.
func DefaultTheme() Theme {
	return Theme{
		BackgroundColor: HexToColor(0x101418),
		ViewColor:       HexToColor(0x2A3440),
		BorderColor:     HexToColor(0x5C6B7A),
		HoverColor:      HexToColor(0x3E5C76),
		PressedColor:    HexToColor(0x4F9D69),
		CaptureColor:    HexToColor(0xE0A526),
	}
}

// HexToColor converts a 0xRRGGBB value to an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 0xFF,
	}
}
