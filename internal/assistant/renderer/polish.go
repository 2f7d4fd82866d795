// internal/assistant/renderer/polish.go
package renderer

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Polish outcomes, used as metric labels.
const (
	outcomeAccepted       = "accepted"
	outcomeError          = "error"
	outcomeEmpty          = "empty"
	outcomeTooLong        = "too_long"
	outcomeScriptMismatch = "script_mismatch"
	outcomeNumbersChanged = "numbers_changed"
)

// minScriptShare is the share of script letters a polished reply must reach
// when the base reply itself reaches it.
const minScriptShare = 0.5

var leadingLabel = regexp.MustCompile(`(?i)^\s*(natural\s+)?(response|reply|answer)(\s+in\s+[a-z]+)?\s*:\s*`)

// cleanPolished strips the label and quotes models wrap answers in.
func cleanPolished(s string) string {
	s = strings.TrimSpace(s)
	s = leadingLabel.ReplaceAllString(s, "")
	s = strings.Trim(s, "\"'“”‘’`")
	return strings.TrimSpace(s)
}

func accept(profile LanguageProfile, base, polished string) string {
	if polished == "" {
		return outcomeEmpty
	}
	if utf8.RuneCountInString(polished) > 2*utf8.RuneCountInString(base)+80 {
		return outcomeTooLong
	}
	want := scriptShare(base, profile.Script)
	if want > minScriptShare {
		want = minScriptShare
	}
	if scriptShare(polished, profile.Script) < want {
		return outcomeScriptMismatch
	}
	if !sameNumbers(base, polished) {
		return outcomeNumbersChanged
	}
	return outcomeAccepted
}

// scriptShare is the fraction of letters in s that belong to script. Text
// without letters counts as fully in script.
func scriptShare(s string, script *unicode.RangeTable) float64 {
	var letters, in int
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.Is(script, r) {
			in++
		}
	}
	if letters == 0 {
		return 1
	}
	return float64(in) / float64(letters)
}

func sameNumbers(a, b string) bool {
	na, nb := numbers(a), numbers(b)
	if len(na) != len(nb) {
		return false
	}
	for n := range na {
		if _, ok := nb[n]; !ok {
			return false
		}
	}
	return true
}

// numbers collects the distinct numeric values in s, reading native digits.
func numbers(s string) map[string]struct{} {
	out := make(map[string]struct{})
	runes := []rune(s)
	var cur []rune
	flush := func() {
		if len(cur) == 0 {
			return
		}
		if f, err := strconv.ParseFloat(string(cur), 64); err == nil {
			out[strconv.FormatFloat(f, 'f', -1, 64)] = struct{}{}
		}
		cur = cur[:0]
	}
	for i, r := range runes {
		if d, ok := digitValue(r); ok {
			cur = append(cur, '0'+d)
			continue
		}
		if (r == '.' || r == ',') && len(cur) > 0 && i+1 < len(runes) {
			if _, ok := digitValue(runes[i+1]); ok {
				if r == '.' {
					cur = append(cur, r)
				}
				continue
			}
		}
		flush()
	}
	flush()
	return out
}

func digitValue(r rune) (rune, bool) {
	for _, zero := range []rune{'0', '०', '௦', '౦'} {
		if r >= zero && r <= zero+9 {
			return r - zero, true
		}
	}
	return 0, false
}
