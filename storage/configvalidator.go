package storage

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// detectPresentKeys unmarshals JSON bytes to determine which config keys
// are explicitly present in the file. Returns a flat set of dotted-path keys
// (e.g., "lutris.command", "window.width"). Only fields with defaults are
// checked.
func detectPresentKeys(jsonBytes []byte) map[string]bool {
	present := make(map[string]bool)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(jsonBytes, &raw); err != nil {
		return present
	}

	for _, k := range []string{"version", "theme", "fontSize"} {
		if _, ok := raw[k]; ok {
			present[k] = true
		}
	}

	nested := map[string][]string{
		"lutris": {"command", "listArgs", "launchArgs"},
		"exit":   {"defaultAction"},
		"window": {"width", "height", "fullscreen"},
		"audio":  {"chime", "volume"},
	}
	for section, keys := range nested {
		sectionRaw, ok := raw[section]
		if !ok {
			continue
		}
		var fields map[string]json.RawMessage
		if json.Unmarshal(sectionRaw, &fields) != nil {
			continue
		}
		for _, k := range keys {
			if _, ok := fields[k]; ok {
				present[section+"."+k] = true
			}
		}
	}

	return present
}

// ApplyMissingDefaults sets default values for config fields that are absent
// from the JSON file. Only truly missing fields get defaults, preserving
// intentional zero values (e.g., volume=0, fullscreen=false).
func ApplyMissingDefaults(config *Config, presentKeys map[string]bool) {
	defaults := DefaultConfig()

	if !presentKeys["version"] {
		config.Version = defaults.Version
	}
	if !presentKeys["theme"] {
		config.Theme = defaults.Theme
	}
	if !presentKeys["fontSize"] {
		config.FontSize = defaults.FontSize
	}
	if !presentKeys["lutris.command"] {
		config.Lutris.Command = defaults.Lutris.Command
	}
	if !presentKeys["lutris.listArgs"] {
		config.Lutris.ListArgs = defaults.Lutris.ListArgs
	}
	if !presentKeys["lutris.launchArgs"] {
		config.Lutris.LaunchArgs = defaults.Lutris.LaunchArgs
	}
	if !presentKeys["exit.defaultAction"] {
		config.Exit.DefaultAction = defaults.Exit.DefaultAction
	}
	if !presentKeys["window.width"] {
		config.Window.Width = defaults.Window.Width
	}
	if !presentKeys["window.height"] {
		config.Window.Height = defaults.Window.Height
	}
	if !presentKeys["window.fullscreen"] {
		config.Window.Fullscreen = defaults.Window.Fullscreen
	}
	if !presentKeys["audio.chime"] {
		config.Audio.Chime = defaults.Audio.Chime
	}
	if !presentKeys["audio.volume"] {
		config.Audio.Volume = defaults.Audio.Volume
	}
}

func validLocale(tag string) bool {
	if tag == "" {
		return true
	}
	_, err := language.Parse(tag)
	return err == nil
}

func validLaunchArgs(args []string) bool {
	for _, a := range args {
		if strings.Contains(a, LaunchIDPlaceholder) {
			return true
		}
	}
	return false
}

func validPrivilegeCommand(cmd []string) bool {
	for _, part := range cmd {
		if strings.TrimSpace(part) == "" {
			return false
		}
	}
	return true
}

// ValidateConfig checks all config fields against valid ranges and returns
// human-readable error descriptions. An empty slice means the config is valid.
// validThemes should be the list of known theme names.
func ValidateConfig(config *Config, validThemes []string) []string {
	var errors []string

	if config.Version != 1 {
		errors = append(errors, fmt.Sprintf("version: %d (valid: 1)", config.Version))
	}

	if !slices.Contains(validThemes, config.Theme) {
		errors = append(errors, fmt.Sprintf("theme: %q (valid: %v)", config.Theme, validThemes))
	}

	if !slices.Contains(FontSizePresets, config.FontSize) {
		errors = append(errors, fmt.Sprintf("fontSize: %d (valid: %v)", config.FontSize, FontSizePresets))
	}

	if !validLocale(config.Locale) {
		errors = append(errors, fmt.Sprintf("locale: %q (valid: BCP 47 tag or empty)", config.Locale))
	}

	if strings.TrimSpace(config.Lutris.Command) == "" {
		errors = append(errors, "lutris.command: empty (valid: executable name or path)")
	}

	if len(config.Lutris.ListArgs) == 0 {
		errors = append(errors, "lutris.listArgs: empty (valid: non-empty argument list)")
	}

	if !validLaunchArgs(config.Lutris.LaunchArgs) {
		errors = append(errors, fmt.Sprintf("lutris.launchArgs: %v (valid: must contain %q)", config.Lutris.LaunchArgs, LaunchIDPlaceholder))
	}

	if !slices.Contains(ExitActions, config.Exit.DefaultAction) {
		errors = append(errors, fmt.Sprintf("exit.defaultAction: %q (valid: %v)", config.Exit.DefaultAction, ExitActions))
	}

	if !validPrivilegeCommand(config.Exit.PrivilegeCommand) {
		errors = append(errors, fmt.Sprintf("exit.privilegeCommand: %q (valid: no empty arguments)", config.Exit.PrivilegeCommand))
	}

	if config.Window.Width < 640 {
		errors = append(errors, fmt.Sprintf("window.width: %d (valid: >= 640)", config.Window.Width))
	}

	if config.Window.Height < 480 {
		errors = append(errors, fmt.Sprintf("window.height: %d (valid: >= 480)", config.Window.Height))
	}

	if config.Audio.Volume < 0 || config.Audio.Volume > 1.0 {
		errors = append(errors, fmt.Sprintf("audio.volume: %.2f (valid: 0.0-1.0)", config.Audio.Volume))
	}

	return errors
}

// CorrectConfig resets any invalid fields to their defaults from DefaultConfig().
// Valid fields are preserved. validThemes should be the list of known theme names.
func CorrectConfig(config *Config, validThemes []string) *Config {
	defaults := DefaultConfig()

	if config.Version != 1 {
		config.Version = defaults.Version
	}
	if !slices.Contains(validThemes, config.Theme) {
		config.Theme = defaults.Theme
	}
	if !slices.Contains(FontSizePresets, config.FontSize) {
		config.FontSize = ValidFontSize(config.FontSize)
	}
	if !validLocale(config.Locale) {
		config.Locale = defaults.Locale
	}
	if strings.TrimSpace(config.Lutris.Command) == "" {
		config.Lutris.Command = defaults.Lutris.Command
	}
	if len(config.Lutris.ListArgs) == 0 {
		config.Lutris.ListArgs = defaults.Lutris.ListArgs
	}
	if !validLaunchArgs(config.Lutris.LaunchArgs) {
		config.Lutris.LaunchArgs = defaults.Lutris.LaunchArgs
	}
	if !slices.Contains(ExitActions, config.Exit.DefaultAction) {
		config.Exit.DefaultAction = defaults.Exit.DefaultAction
	}
	if !validPrivilegeCommand(config.Exit.PrivilegeCommand) {
		config.Exit.PrivilegeCommand = nil
	}
	if config.Window.Width < 640 {
		config.Window.Width = defaults.Window.Width
	}
	if config.Window.Height < 480 {
		config.Window.Height = defaults.Window.Height
	}
	if config.Audio.Volume < 0 || config.Audio.Volume > 1.0 {
		config.Audio.Volume = defaults.Audio.Volume
	}

	return config
}
