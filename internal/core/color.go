package core

// Color names a theme role for a screen cell. Hosts map roles to concrete
// terminal or window colors.
type Color uint8

// Theme roles.
const (
	ColorDefault Color = iota
	ColorFrame         // Play area border
	ColorScore         // Score label
	ColorTime          // Countdown label
	ColorTarget        // Target button face
	ColorOverlay       // Start overlay panel
	ColorTitle         // Overlay headings
	ColorButton        // Overlay and modal buttons
	ColorMuted         // Hints and secondary text
)
