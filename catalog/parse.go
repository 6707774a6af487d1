package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"
)

// ParseError reports inventory output that could not be turned into a
// catalog.
type ParseError struct {
	Offset int64 // Byte offset into the output, -1 if unknown
	Index  int   // Index of the offending entry, -1 for document-level errors
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Index >= 0:
		return fmt.Sprintf("parse inventory: entry %d: %v", e.Index, e.Err)
	case e.Offset >= 0:
		return fmt.Sprintf("parse inventory at offset %d: %v", e.Offset, e.Err)
	default:
		return fmt.Sprintf("parse inventory: %v", e.Err)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var (
	errMissingID   = errors.New("missing id")
	errMissingName = errors.New("missing name")
)

// rawGame mirrors one object of `lutris --list-games --json`.
type rawGame struct {
	ID         *int            `json:"id"`
	Slug       string          `json:"slug"`
	Name       *string         `json:"name"`
	Runner     string          `json:"runner"`
	Platform   string          `json:"platform"`
	Playtime   json.RawMessage `json:"playtime"`
	LastPlayed json.RawMessage `json:"lastplayed"`
}

// Parse decodes inventory output into a catalog. Lines before the JSON
// document (log noise some Lutris versions print to stdout) are skipped.
func Parse(data []byte) (*Catalog, error) {
	body, skipped := trimPreamble(data)

	var raws []rawGame
	if err := json.Unmarshal(body, &raws); err != nil {
		return nil, &ParseError{Offset: errorOffset(err, skipped), Index: -1, Err: err}
	}

	games := make([]*Game, 0, len(raws))
	seen := make(map[int]bool, len(raws))
	for i, raw := range raws {
		if raw.ID == nil {
			return nil, &ParseError{Offset: -1, Index: i, Err: errMissingID}
		}
		if raw.Name == nil || *raw.Name == "" {
			return nil, &ParseError{Offset: -1, Index: i, Err: errMissingName}
		}
		if seen[*raw.ID] {
			return nil, &ParseError{Offset: -1, Index: i, Err: fmt.Errorf("duplicate id %d", *raw.ID)}
		}
		seen[*raw.ID] = true

		g := &Game{
			ID:       *raw.ID,
			Slug:     raw.Slug,
			Name:     *raw.Name,
			Runner:   raw.Runner,
			Platform: raw.Platform,
		}

		if d, ok := decodePlaytime(raw.Playtime); ok {
			g.Playtime = d
		} else {
			log.Printf("Ignoring unrecognized playtime %s for %q", raw.Playtime, g.Name)
		}
		if t, ok := decodeLastPlayed(raw.LastPlayed); ok {
			g.LastPlayed = t
		} else {
			log.Printf("Ignoring unrecognized last played %s for %q", raw.LastPlayed, g.Name)
		}

		games = append(games, g)
	}

	return New(games), nil
}

// trimPreamble drops whole lines until one starts with '['.
// Returns the remaining bytes and how many were dropped.
func trimPreamble(data []byte) ([]byte, int64) {
	var skipped int64
	rest := data
	for len(rest) > 0 {
		trimmed := bytes.TrimLeft(rest, " \t\r")
		if len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{') {
			return rest, skipped
		}
		nl := bytes.IndexByte(rest, '\n')
		if nl < 0 {
			break
		}
		skipped += int64(nl + 1)
		rest = rest[nl+1:]
	}
	// Nothing looked like JSON; let the decoder report on the original input
	return data, 0
}

func errorOffset(err error, base int64) int64 {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return base + syntaxErr.Offset
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return base + typeErr.Offset
	}
	return -1
}

func isEmpty(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null" || s == `""`
}

// decodePlaytime accepts a number of hours or a Python timedelta string
// ("1:02:03", "2 days, 1:02:03.500000"). Returns false when the value is
// present but unrecognized.
func decodePlaytime(raw json.RawMessage) (time.Duration, bool) {
	if isEmpty(raw) {
		return 0, true
	}

	var hours float64
	if err := json.Unmarshal(raw, &hours); err == nil {
		if hours <= 0 || math.IsNaN(hours) {
			return 0, true
		}
		return hoursToDuration(hours), true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	return parseTimedelta(strings.TrimSpace(s))
}

// maxPlaytimeHours is the largest playtime a time.Duration holds
const maxPlaytimeHours = float64(math.MaxInt64) / float64(time.Hour)

// hoursToDuration converts hours, saturating instead of overflowing
func hoursToDuration(hours float64) time.Duration {
	ns := hours * float64(time.Hour)
	if ns >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(ns)
}

func parseTimedelta(s string) (time.Duration, bool) {
	if s == "" {
		return 0, true
	}

	var days int
	if i := strings.Index(s, "day"); i >= 0 {
		var err error
		days, err = strconv.Atoi(strings.TrimSpace(s[:i]))
		if err != nil || days < 0 {
			return 0, false
		}
		rest := s[i+len("day"):]
		rest = strings.TrimPrefix(rest, "s")
		s = strings.TrimSpace(strings.TrimPrefix(rest, ","))
		if s == "" {
			if float64(days)*24 >= maxPlaytimeHours {
				return time.Duration(math.MaxInt64), true
			}
			return time.Duration(days) * 24 * time.Hour, true
		}
	}

	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	sec, err := strconv.ParseFloat(parts[2], 64)
	if err != nil || !(sec >= 0 && sec < 60) {
		return 0, false
	}
	// Minutes and seconds add less than an hour
	if float64(days)*24+float64(h)+1 >= maxPlaytimeHours {
		return time.Duration(math.MaxInt64), true
	}
	total := time.Duration(days)*24*time.Hour + time.Duration(h)*time.Hour + time.Duration(m)*time.Minute
	return total + time.Duration(sec*float64(time.Second)), true
}

// lastPlayedLayouts are the string formats Lutris has used for lastplayed.
// The first is Python's "%c" in the C locale.
var lastPlayedLayouts = []string{
	time.ANSIC,
	"Mon 02 Jan 2006 03:04:05 PM MST",
	"Mon 02 Jan 2006 15:04:05 MST",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// decodeLastPlayed accepts a Unix timestamp or one of lastPlayedLayouts.
func decodeLastPlayed(raw json.RawMessage) (time.Time, bool) {
	if isEmpty(raw) {
		return time.Time{}, true
	}

	var ts float64
	if err := json.Unmarshal(raw, &ts); err == nil {
		if ts <= 0 || math.IsNaN(ts) || math.IsInf(ts, 0) {
			return time.Time{}, true
		}
		sec, frac := math.Modf(ts)
		return time.Unix(int64(sec), int64(frac*1e9)), true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, true
	}
	for _, layout := range lastPlayedLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
