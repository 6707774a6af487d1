// Package locale holds the display strings of the browser and picks a
// language from the config or the environment.
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFiles embed.FS

// Localizer resolves messages for one chosen language
type Localizer struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

// newBundle loads every embedded active.*.toml file
func newBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	names, err := fs.Glob(localeFiles, "locales/*.toml")
	if err != nil {
		return nil, fmt.Errorf("failed to list locale files: %w", err)
	}
	for _, name := range names {
		content, err := localeFiles.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded locale file %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(content, path.Base(name)); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", name, err)
		}
	}
	return bundle, nil
}

// New returns a localizer for tag. An empty or unsupported tag selects
// English; a malformed tag is an error.
func New(tag string) (*Localizer, error) {
	bundle, err := newBundle()
	if err != nil {
		return nil, err
	}

	requested := language.English
	if tag != "" {
		requested, err = language.Parse(tag)
		if err != nil {
			return nil, fmt.Errorf("invalid locale %q: %w", tag, err)
		}
	}

	supported := bundle.LanguageTags()
	matcher := language.NewMatcher(supported)
	_, index, confidence := matcher.Match(requested)
	chosen := language.English
	if confidence != language.No {
		chosen = supported[index]
	}

	return &Localizer{
		localizer: i18n.NewLocalizer(bundle, chosen.String()),
		tag:       chosen,
	}, nil
}

// FromEnv returns the message locale of the environment as a BCP 47 tag,
// checking LC_ALL, LC_MESSAGES and LANG in that order. "de_DE.UTF-8"
// becomes "de-DE". The C and POSIX locales yield "".
func FromEnv() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return normalizePOSIX(v)
		}
	}
	return ""
}

func normalizePOSIX(value string) string {
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	if value == "C" || value == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(value, "_", "-")
}

// Resolve picks the configured tag, falling back to the environment.
// A malformed tag is logged and replaced with English.
func Resolve(configured string) *Localizer {
	tag := configured
	if tag == "" {
		tag = FromEnv()
	}
	l, err := New(tag)
	if err != nil {
		log.Printf("Failed to select locale, using English: %v", err)
		l, err = New("")
		if err != nil {
			// Embedded files are broken; messages still fall back to English
			log.Printf("Failed to load locale files: %v", err)
			return &Localizer{tag: language.English}
		}
	}
	return l
}

// Language returns the chosen language tag
func (l *Localizer) Language() language.Tag {
	return l.tag
}

// Get returns msg in the chosen language, or its English text when the
// language has no translation.
func (l *Localizer) Get(msg *i18n.Message) string {
	return l.Format(msg, nil)
}

// Format is Get with template data
func (l *Localizer) Format(msg *i18n.Message, data map[string]any) string {
	if l == nil || l.localizer == nil {
		return fallback(msg, data)
	}
	s, err := l.localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: msg,
		TemplateData:   data,
	})
	if err != nil && s == "" {
		return fallback(msg, data)
	}
	return s
}

// fallback renders the English text through an English-only bundle
func fallback(msg *i18n.Message, data map[string]any) string {
	bundle := i18n.NewBundle(language.English)
	s, err := i18n.NewLocalizer(bundle).Localize(&i18n.LocalizeConfig{
		DefaultMessage: msg,
		TemplateData:   data,
	})
	if err != nil && s == "" {
		return msg.Other
	}
	return s
}
