package storage

// Config represents the application configuration stored in config.json
type Config struct {
	Version  int          `json:"version"`
	Theme    string       `json:"theme"`    // Theme name, see style.ThemeNames
	FontSize int          `json:"fontSize"` // UI font size for menus and status text
	Locale   string       `json:"locale"`   // BCP 47 tag, "" = from environment
	Lutris   LutrisConfig `json:"lutris"`
	CoverDir string       `json:"coverDir"` // "" = Lutris's own cover cache
	Exit     ExitConfig   `json:"exit"`
	Window   WindowConfig `json:"window"`
	Audio    AudioConfig  `json:"audio"`
}

// LutrisConfig describes how the external tool is invoked
type LutrisConfig struct {
	Command    string   `json:"command"`
	ListArgs   []string `json:"listArgs"`
	LaunchArgs []string `json:"launchArgs"` // "{id}" is replaced with the game ID
}

// ExitConfig controls what happens when the browser closes
type ExitConfig struct {
	DefaultAction    string   `json:"defaultAction"`              // "desktop", "shutdown", "reboot"
	PrivilegeCommand []string `json:"privilegeCommand,omitempty"` // e.g. ["sudo", "-n"]
}

// WindowConfig contains window size and mode
type WindowConfig struct {
	Width      int  `json:"width"`
	Height     int  `json:"height"`
	Fullscreen bool `json:"fullscreen"`
}

// AudioConfig contains launch chime settings
type AudioConfig struct {
	Chime  bool    `json:"chime"`
	Volume float64 `json:"volume"`
}

// Exit action names accepted in exit.defaultAction
const (
	ExitDesktop  = "desktop"
	ExitShutdown = "shutdown"
	ExitReboot   = "reboot"
)

// ExitActions lists the valid exit.defaultAction values
var ExitActions = []string{ExitDesktop, ExitShutdown, ExitReboot}

// LaunchIDPlaceholder is substituted into lutris.launchArgs
const LaunchIDPlaceholder = "{id}"

// FontSizePresets lists the available font size options
var FontSizePresets = []int{14, 16, 18, 20, 24, 28, 32}

// ValidFontSize returns the nearest valid preset font size.
func ValidFontSize(size int) int {
	best := FontSizePresets[0]
	for _, p := range FontSizePresets {
		if abs(p-size) < abs(best-size) {
			best = p
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		Theme:    "Default",
		FontSize: 20,
		Locale:   "",
		Lutris: LutrisConfig{
			Command:    "lutris",
			ListArgs:   []string{"--list-games", "--installed", "--json"},
			LaunchArgs: []string{"lutris:rungameid/" + LaunchIDPlaceholder},
		},
		CoverDir: "",
		Exit: ExitConfig{
			DefaultAction: ExitDesktop,
		},
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: true,
		},
		Audio: AudioConfig{
			Chime:  true,
			Volume: 0.5,
		},
	}
}
