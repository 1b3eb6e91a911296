package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidJSON marks a malformed JSON-mode blob. Submission halts before
// any remote call when Parse returns it.
var ErrInvalidJSON = errors.New("invalid JSON reflection")

// Record is the canonical reflection produced by both input modes.
// Downstream code (theme reconciliation, committer) only ever sees this shape.
type Record struct {
	Title       string
	Date        string // ISO date "2006-01-02"
	Mood        string
	Summary     string
	Intensity   *int
	Insights    []string
	Themes      []string
	ActionItems []string
	Readings    []string
}

// Recognized labels. The same strings double as JSON object keys.
const (
	LabelTitle       = "Session Title"
	LabelDate        = "Session Date"
	LabelMood        = "Mood"
	LabelIntensity   = "Intensity"
	LabelSummary     = "Summary"
	LabelInsights    = "Insights"
	LabelTheme       = "Theme"
	LabelActionItems = "Journal Action Items"
	LabelReadings    = "Journal Readings"
)

// fieldSpec drives the generic label extraction.
// Multi-line fields run until the next blank line, single-line fields until
// end of line.
type fieldSpec struct {
	label     string
	multiline bool
}

var fieldTable = []fieldSpec{
	{LabelTitle, false},
	{LabelDate, false},
	{LabelMood, false},
	{LabelIntensity, false},
	{LabelSummary, true},
	{LabelInsights, true},
	{LabelTheme, false},
	{LabelActionItems, true},
	{LabelReadings, true},
}

var fieldPatterns = buildFieldPatterns()

func buildFieldPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(fieldTable))
	for _, f := range fieldTable {
		var expr string
		if f.multiline {
			// First match, non-greedy, up to the next blank line or end of input.
			expr = `(?s)` + regexp.QuoteMeta(f.label) + `:[ \t]*(.*?)(?:\n\s*\n|$)`
		} else {
			expr = regexp.QuoteMeta(f.label) + `:[ \t]*(.*)`
		}
		patterns[f.label] = regexp.MustCompile(expr)
	}
	return patterns
}

var (
	digitsPattern   = regexp.MustCompile(`^\d+$`)
	themeSplitter   = regexp.MustCompile(`[,;\n]`)
	isoDateLayout   = "2006-01-02"
	bulletTrimChars = "-*• \t"
)

// Parse normalizes one raw reflection blob into a Record.
//
// A blob whose first non-space byte is '{' is treated as JSON; a decode
// failure there is a user error and surfaces before any remote call.
// Everything else goes through label:value extraction, which never fails:
// unrecognized text is simply ignored and absent labels yield empty fields
// (Session Date excepted, which defaults to now).
func Parse(raw string, now time.Time) (*Record, error) {
	if strings.HasPrefix(strings.TrimSpace(raw), "{") {
		return parseJSON(raw)
	}
	return parseLabeled(raw, now), nil
}

func parseJSON(raw string) (*Record, error) {
	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	return &Record{
		Title:       stringField(payload[LabelTitle]),
		Date:        stringField(payload[LabelDate]),
		Mood:        stringField(payload[LabelMood]),
		Summary:     stringField(payload[LabelSummary]),
		Intensity:   intensityField(payload[LabelIntensity]),
		Insights:    listField(payload[LabelInsights]),
		Themes:      themeField(payload[LabelTheme]),
		ActionItems: listField(payload[LabelActionItems]),
		Readings:    listField(payload[LabelReadings]),
	}, nil
}

func parseLabeled(raw string, now time.Time) *Record {
	date := extractField(LabelDate, raw)
	if date == "" {
		date = now.Format(isoDateLayout)
	}

	return &Record{
		Title:       extractField(LabelTitle, raw),
		Date:        date,
		Mood:        extractField(LabelMood, raw),
		Summary:     extractField(LabelSummary, raw),
		Intensity:   parseIntensity(extractField(LabelIntensity, raw)),
		Insights:    splitLines(extractField(LabelInsights, raw)),
		Themes:      SplitThemes(extractField(LabelTheme, raw)),
		ActionItems: splitLines(extractField(LabelActionItems, raw)),
		Readings:    splitLines(extractField(LabelReadings, raw)),
	}
}

// extractField returns the trimmed text following "Label:" in raw, or "".
func extractField(label, raw string) string {
	pattern, ok := fieldPatterns[label]
	if !ok {
		return ""
	}
	match := pattern.FindStringSubmatch(raw)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(match[1])
}

// SplitThemes tokenizes a theme string on comma, semicolon and newline into
// trimmed, non-empty names.
func SplitThemes(text string) []string {
	themes := make([]string, 0)
	for _, token := range themeSplitter.Split(text, -1) {
		if t := strings.TrimSpace(token); t != "" {
			themes = append(themes, t)
		}
	}
	return themes
}

// splitLines breaks a multi-line field into line items, trimming leading
// bullet characters and dropping empties.
func splitLines(text string) []string {
	items := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimLeft(strings.TrimSpace(line), bulletTrimChars)
		line = strings.TrimSpace(line)
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

// parseIntensity accepts only an unbroken digit string. Anything else means
// "no intensity", never an error.
func parseIntensity(text string) *int {
	if !digitsPattern.MatchString(text) {
		return nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return nil
	}
	return &n
}

// stringField coerces a JSON value into a string; non-strings yield "".
func stringField(v interface{}) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// listField coerces a JSON value into a string list: a string becomes a
// single-element list, an array is taken as-is with non-strings skipped.
func listField(v interface{}) []string {
	switch val := v.(type) {
	case string:
		if strings.TrimSpace(val) == "" {
			return []string{}
		}
		return []string{val}
	case []interface{}:
		items := make([]string, 0, len(val))
		for _, e := range val {
			if s, ok := e.(string); ok && strings.TrimSpace(s) != "" {
				items = append(items, strings.TrimSpace(s))
			}
		}
		return items
	default:
		return []string{}
	}
}

// themeField is listField with the extra rule that a string value is split
// into theme tokens first.
func themeField(v interface{}) []string {
	switch val := v.(type) {
	case string:
		return SplitThemes(val)
	case []interface{}:
		return listField(v)
	default:
		return []string{}
	}
}

// intensityField accepts a JSON-native integral number or an unbroken digit
// string, matching parseIntensity for the label mode.
func intensityField(v interface{}) *int {
	switch val := v.(type) {
	case float64:
		if val != math.Trunc(val) || val < 0 {
			return nil
		}
		n := int(val)
		return &n
	case string:
		return parseIntensity(strings.TrimSpace(val))
	default:
		return nil
	}
}
