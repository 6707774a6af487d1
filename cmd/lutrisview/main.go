// Command lutrisview is a fullscreen, controller-friendly browser for the
// games installed in Lutris.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/redmie/lutrisview/bigpicture"
	"github.com/redmie/lutrisview/locale"
	"github.com/redmie/lutrisview/storage"
	"github.com/redmie/lutrisview/style"
	"github.com/sqweek/dialog"
)

// logFile is the -log destination, closed by fatal since os.Exit skips
// deferred calls
var logFile *os.File

func main() {
	configFlag := flag.String("config", "", "Config file path (default: ~/.config/lutrisview/config.json)")
	fullscreenFlag := flag.Bool("fullscreen", false, "Start fullscreen regardless of config")
	windowedFlag := flag.Bool("windowed", false, "Start windowed regardless of config")
	logFlag := flag.String("log", "", "Append log output to this file")
	flag.Parse()

	if *logFlag != "" {
		if err := openLog(*logFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
			os.Exit(1)
		}
		defer closeLog()
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fatal(err)
	}

	switch {
	case *fullscreenFlag:
		cfg.Window.Fullscreen = true
	case *windowedFlag:
		cfg.Window.Fullscreen = false
	}

	style.ApplyThemeByName(cfg.Theme)
	style.ApplyFontSize(cfg.FontSize)
	loc := locale.Resolve(cfg.Locale)
	log.Printf("Using language %s", loc.Language())

	if err := bigpicture.Run(cfg, loc); err != nil {
		fatal(err)
	}
}

// openLog appends log output to path
func openLog(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	logFile = f
	log.SetOutput(f)
	return nil
}

// closeLog flushes and closes the log file and sends later output to
// stderr. It is safe to call more than once.
func closeLog() {
	if logFile == nil {
		return
	}
	log.SetOutput(os.Stderr)
	logFile.Sync()
	logFile.Close()
	logFile = nil
}

// loadConfig reads the config, writing defaults on first start, and
// replaces invalid fields with their defaults
func loadConfig(path string) (*storage.Config, error) {
	if path == "" {
		p, err := storage.GetConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	if err := storage.CreateConfigIfMissing(path); err != nil {
		log.Printf("Failed to write default config: %v", err)
	}

	cfg, err := storage.LoadConfigFrom(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	themes := style.ThemeNames()
	if problems := storage.ValidateConfig(cfg, themes); len(problems) > 0 {
		for _, p := range problems {
			log.Printf("Invalid config value, using default: %s", p)
		}
		cfg = storage.CorrectConfig(cfg, themes)
	}
	return cfg, nil
}

// fatal reports err in a dialog, since the window may never have opened,
// and exits
func fatal(err error) {
	log.Printf("Fatal: %v", err)
	closeLog()
	dialog.Message("%s", err).Title("Lutris").Error()
	os.Exit(1)
}
