package xl3

// Predefined colors. Soft variants are roughly half intensity.
var (
	ColorOff     = RGB(0, 0, 0)
	ColorRed     = RGB(127, 0, 0)
	ColorGreen   = RGB(0, 127, 0)
	ColorBlue    = RGB(0, 0, 127)
	ColorYellow  = RGB(127, 127, 0)
	ColorCyan    = RGB(0, 127, 127)
	ColorMagenta = RGB(127, 0, 127)
	ColorWhite   = RGB(127, 127, 127)
	ColorOrange  = RGB(127, 64, 0)
	ColorPurple  = RGB(64, 0, 127)

	ColorSoftRed     = RGB(64, 0, 0)
	ColorSoftGreen   = RGB(0, 64, 0)
	ColorSoftBlue    = RGB(0, 0, 64)
	ColorSoftYellow  = RGB(64, 64, 0)
	ColorSoftCyan    = RGB(0, 64, 64)
	ColorSoftMagenta = RGB(64, 0, 64)
	ColorSoftWhite   = RGB(64, 64, 64)
	ColorSoftOrange  = RGB(64, 32, 0)
)

var (
	EightColors = []Color{
		ColorRed,
		ColorOrange,
		ColorYellow,
		ColorGreen,
		ColorCyan,
		ColorBlue,
		ColorPurple,
		ColorMagenta,
	}

	EightSoftColors = []Color{
		ColorSoftRed,
		ColorSoftOrange,
		ColorSoftYellow,
		ColorSoftGreen,
		ColorSoftCyan,
		ColorSoftBlue,
		ColorSoftMagenta,
		ColorSoftWhite,
	}
)

// RGB returns the color with the given channel intensities. Values are
// kept as given; they are clamped to 0-127 when sent.
func RGB(r, g, b int) Color {
	return Color{R: r, G: g, B: b}
}
