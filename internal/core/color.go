package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI styles; the simulation only ever deals
// in small integer color ids, which the renderer translates here.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)
