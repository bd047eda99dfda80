package core

// Color identifies a foreground color for a screen cell. The platform
// layer maps these to actual terminal colors.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorYellow
	ColorRed
	ColorGray
	ColorBall         // ball accent
	ColorPaddle       // paddle body
	ColorBrickTier1   // brick with 1 hit remaining
	ColorBrickTier2   // brick with 2 hits remaining
	ColorBrickTier3   // brick with 3 hits remaining
	ColorBrickNeutral // fallback for out-of-range hit counts
)
