package nlp

import (
	"regexp"
	"strings"
)

// Matches runs of ASCII, Arabic-Indic and Extended Arabic-Indic digits.
var digitRun = regexp.MustCompile("[0-9٠-٩۰-۹]+")

// ParseNumber converts transcript text into a numeric value. A literal
// digit run always wins over spelled-out numerals: transcripts often carry
// the spoken number as digits, and counting both would double it. When no
// digits are present the spelled Urdu numerals are accumulated: unit words
// add to a running value, scale words multiply it and fold it into the
// total. Returns 0 when no numeral tokens are found.
func (l *Lexicon) ParseNumber(text string) float64 {
	if run := digitRun.FindString(text); run != "" {
		return digitRunValue(run)
	}

	total := 0
	current := 0
	for _, w := range strings.Fields(text) {
		if v, ok := l.NumberWords[w]; ok {
			current += v
		} else if scale, ok := l.ScaleWords[w]; ok {
			if current == 0 {
				current = 1
			}
			current *= scale
			total += current
			current = 0
		}
	}
	return float64(total + current)
}

func digitRunValue(run string) float64 {
	var v float64
	for _, r := range run {
		v = v*10 + float64(digitValue(r))
	}
	return v
}

func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= '٠' && r <= '٩':
		return int(r - '٠')
	case r >= '۰' && r <= '۹':
		return int(r - '۰')
	}
	return 0
}
