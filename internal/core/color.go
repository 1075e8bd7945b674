package core

import "strings"

// Color is the foreground of a screen cell, rendered as an ANSI 256 code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

var ansiCodes = [...]string{
	ColorDefault:       "",
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorBlue:          "4",
	ColorMagenta:       "5",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorGray:          "245",
}

// ANSI returns the 256-color code, or "" for the terminal default.
func (c Color) ANSI() string {
	if int(c) < len(ansiCodes) {
		return ansiCodes[c]
	}
	return ""
}

// ParseColor maps a configured color name such as "blue" or "purple" to
// its bright variant. Unknown names report false.
func ParseColor(name string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "blue":
		return ColorBrightBlue, true
	case "red":
		return ColorBrightRed, true
	case "yellow":
		return ColorBrightYellow, true
	case "green":
		return ColorBrightGreen, true
	case "magenta", "purple":
		return ColorBrightMagenta, true
	case "cyan":
		return ColorBrightCyan, true
	case "orange":
		return ColorOrange, true
	case "white":
		return ColorBrightWhite, true
	case "gray", "grey":
		return ColorGray, true
	}
	return ColorDefault, false
}
