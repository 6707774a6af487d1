package bigpicture

// Mode is what the application loop currently displays
type Mode int

const (
	// ModeSplash is the loading screen shown at startup
	ModeSplash Mode = iota
	// ModeLibrary is the cover browser
	ModeLibrary
	// ModeExitMenu asks how to leave the session
	ModeExitMenu
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeSplash:
		return "Splash"
	case ModeLibrary:
		return "Library"
	case ModeExitMenu:
		return "ExitMenu"
	default:
		return "Unknown"
	}
}
