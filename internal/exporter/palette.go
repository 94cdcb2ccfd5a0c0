package exporter

import "strings"

// Shared workbook colors (ARGB), matching the documents managers already
// circulate.
const (
	colorHeaderBg   = "FF1A237E" // dark blue
	colorHeaderText = "FFFFFFFF"
	colorMorning    = "FFFFF3E0" // light orange
	colorAfternoon  = "FFE8EAF6" // light purple
	colorBorder     = "FFB0BEC5"
	colorToday      = "FFFFEB3B" // yellow highlight
	colorWeekendHdr = "FF3949AB" // weekend date columns in the grid header
	colorWeekendDay = "FFD32F2F" // weekend day names on detail sheets
	colorWarning    = "FFFFF9C4" // 41-48h rows in the hours summary
	colorOvertime   = "FFFFCDD2" // >48h rows in the hours summary
)

// Palette per-restaurant color set used across all sheets.
type Palette struct {
	Header string // restaurant header rows
	Light  string // morning cells
	Medium string // afternoon cells
}

// PaletteRule assigns a palette to restaurants whose lowercase name
// contains any of the patterns. Rules are evaluated in order; the last
// rule with no patterns is the fallback.
type PaletteRule struct {
	Patterns []string
	Palette  Palette
}

// DefaultPaletteRules palette configuration for the current sites. Adding
// a restaurant means adding a rule here, not touching the layout code.
var DefaultPaletteRules = []PaletteRule{
	{
		Patterns: []string{"hua hin", "la mer"},
		Palette:  Palette{Header: "FF1E88E5", Light: "FFE3F2FD", Medium: "FF90CAF9"}, // blue
	},
	{
		// fallback (Sathorn)
		Palette: Palette{Header: "FF43A047", Light: "FFE8F5E9", Medium: "FFA5D6A7"}, // green
	},
}

// paletteFor picks the first rule matching the restaurant name. A rule
// without patterns matches everything.
func paletteFor(name string, rules []PaletteRule) Palette {
	lower := strings.ToLower(name)
	for _, rule := range rules {
		if len(rule.Patterns) == 0 {
			return rule.Palette
		}
		for _, p := range rule.Patterns {
			if strings.Contains(lower, p) {
				return rule.Palette
			}
		}
	}
	// no fallback rule configured; keep output deterministic anyway
	return Palette{}
}
