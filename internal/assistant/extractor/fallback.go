// internal/assistant/extractor/fallback.go
package extractor

import (
	"strconv"
	"strings"
	"unicode"

	"inventory-assistant/internal/models"
)

type token struct {
	raw   string
	lower string
	punct bool
}

// tokenize splits text into word and punctuation tokens. Runs of punctuation
// collapse into one boundary token; a number glued to a unit ("10kg") is
// split in two.
func tokenize(text string) []token {
	var (
		toks []token
		cur  []rune
	)
	flush := func() {
		if len(cur) == 0 {
			return
		}
		toks = append(toks, splitNumberUnit(string(cur))...)
		cur = cur[:0]
	}
	boundary := func() {
		flush()
		if len(toks) > 0 && !toks[len(toks)-1].punct {
			toks = append(toks, token{punct: true})
		}
	}

	runes := []rune(text)
	for i, r := range runes {
		switch {
		case unicode.IsLetter(r), unicode.IsMark(r), unicode.IsDigit(r), r == '\u200c', r == '\u200d':
			cur = append(cur, r)
		case r == '.' && i > 0 && i+1 < len(runes) && unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1]):
			cur = append(cur, r)
		case r == '\'' || r == '’':
		case unicode.IsSpace(r):
			flush()
		default:
			boundary()
		}
	}
	flush()
	return toks
}

func newToken(raw string) token {
	return token{raw: raw, lower: strings.ToLower(raw)}
}

func splitNumberUnit(word string) []token {
	i := 0
	for i < len(word) && (word[i] >= '0' && word[i] <= '9' || word[i] == '.') {
		i++
	}
	if i > 0 && i < len(word) {
		if _, ok := units[strings.ToLower(word[i:])]; ok {
			return []token{newToken(word[:i]), newToken(word[i:])}
		}
	}
	return []token{newToken(word)}
}

// parseNumber reads ASCII, Devanagari, Tamil and Telugu digits.
func parseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r >= '०' && r <= '९':
			b.WriteRune('0' + (r - '०'))
		case r >= '௦' && r <= '௯':
			b.WriteRune('0' + (r - '௦'))
		case r >= '౦' && r <= '౯':
			b.WriteRune('0' + (r - '౦'))
		default:
			return 0, false
		}
	}
	n, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isNumber(t token) bool {
	_, ok := parseNumber(t.lower)
	return ok
}

func isLatinWord(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) && r > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// lexicon is the fallback vocabulary: the fixed tables plus extra aliases.
type lexicon struct {
	aliases map[string]string
}

func newLexicon(extra map[string]string) *lexicon {
	aliases := make(map[string]string, len(defaultAliases)+len(extra))
	for k, v := range defaultAliases {
		aliases[k] = v
	}
	for k, v := range extra {
		aliases[strings.ToLower(k)] = strings.ToLower(v)
	}
	return &lexicon{aliases: aliases}
}

// canonical resolves a product word through the alias table. Non-Latin words
// also match an alias as prefix, longest alias first.
func (l *lexicon) canonical(word string) (string, bool) {
	if c, ok := l.aliases[word]; ok {
		return c, true
	}
	if isLatinWord(word) {
		return "", false
	}
	best, bestLen := "", 0
	for alias, c := range l.aliases {
		if len(alias) > bestLen && strings.HasPrefix(word, alias) {
			best, bestLen = c, len(alias)
		}
	}
	return best, bestLen > 0
}

func (l *lexicon) isBoundary(t token) bool {
	if t.punct || isNumber(t) {
		return true
	}
	if _, ok := units[t.lower]; ok {
		return true
	}
	if _, ok := stopwords[t.lower]; ok {
		return true
	}
	if _, ok := nameBoundaries[t.lower]; ok {
		return true
	}
	_, ok := l.canonical(t.lower)
	return ok
}

// endsName reports whether t ends a name that follows its marker. Such a
// name runs to the next punctuation, number or explicit boundary word, so
// "Shiv Suppliers" and "Green Products Ltd" stay whole.
func endsName(t token) bool {
	if t.punct || isNumber(t) {
		return true
	}
	_, ok := nameBoundaries[t.lower]
	return ok
}

func (l *lexicon) isFiller(t token) bool {
	if t.punct || isNumber(t) {
		return true
	}
	if _, ok := units[t.lower]; ok {
		return true
	}
	if _, ok := dayUnits[t.lower]; ok {
		return true
	}
	_, ok := stopwords[t.lower]
	return ok
}

type span struct{ start, end int }

func (s span) contains(i int) bool { return i >= s.start && i < s.end }

func matchWords(toks []token, at int, words []string) bool {
	if at+len(words) > len(toks) {
		return false
	}
	for j, w := range words {
		if toks[at+j].lower != w {
			return false
		}
	}
	return true
}

// supplier finds the first isolated supplier name. The returned span covers
// the name and its marker.
func (l *lexicon) supplier(toks []token) (string, span, bool) {
	for _, m := range supplierMarkers {
		for i := range toks {
			if !matchWords(toks, i, m.words) {
				continue
			}
			var s, e int
			if m.dir == after {
				s = i + len(m.words)
				e = s
				for e < len(toks) && !endsName(toks[e]) {
					e++
				}
			} else {
				e = i
				s = e
				for s > 0 && !l.isBoundary(toks[s-1]) {
					s--
				}
			}
			if n := e - s; n == 0 || n > maxNameTokens {
				continue
			}

			name := joinRaw(toks[s:e])
			if m.dir == after {
				return name, span{i, e}, true
			}
			return name, span{s, i + len(m.words)}, true
		}
	}
	return "", span{}, false
}

// remainder returns the content words outside skip, resolving product aliases.
func (l *lexicon) remainder(toks []token, skip span) []string {
	var out []string
	for i, t := range toks {
		if skip.contains(i) || l.isFiller(t) {
			continue
		}
		if c, ok := l.canonical(t.lower); ok {
			out = append(out, c)
			continue
		}
		out = append(out, t.lower)
	}
	return out
}

func joinRaw(toks []token) string {
	parts := make([]string, len(toks))
	for i, t := range toks {
		parts[i] = t.raw
	}
	return strings.Join(parts, " ")
}

func (l *lexicon) product(toks []token, skip span) *string {
	words := l.remainder(toks, skip)
	if len(words) == 0 {
		return nil
	}
	return models.StringPtr(strings.Join(words, " "))
}

func quantity(toks []token) *models.Quantity {
	for i, t := range toks {
		n, ok := parseNumber(t.lower)
		if !ok {
			continue
		}
		q := &models.Quantity{Amount: n}
		if i+1 < len(toks) {
			if u, ok := units[toks[i+1].lower]; ok {
				q.Unit = u
			}
		}
		return q
	}
	return nil
}

// maxLookAheadDays caps an expiry look-ahead at ten years.
const maxLookAheadDays = 3650

func days(toks []token) *int {
	for i, t := range toks {
		n, ok := parseNumber(t.lower)
		if !ok || n < 1 {
			continue
		}
		mult := 1
		if i+1 < len(toks) {
			if m, ok := dayUnits[toks[i+1].lower]; ok {
				mult = m
			}
		}
		d := maxLookAheadDays
		if n*float64(mult) < maxLookAheadDays {
			d = int(n) * mult
		}
		return &d
	}
	for _, t := range toks {
		if mult, ok := dayUnits[t.lower]; ok && mult > 1 {
			d := mult
			return &d
		}
	}
	return nil
}

// FallbackProduct reads a single product name without any network call.
func FallbackProduct(text string) *string {
	return defaultLexicon.product(tokenize(text), span{})
}

// FallbackDemandSlots reads product, quantity and supplier deterministically.
func FallbackDemandSlots(text string) models.SlotSet {
	return defaultLexicon.demandSlots(tokenize(text))
}

var defaultLexicon = newLexicon(nil)

func (l *lexicon) demandSlots(toks []token) models.SlotSet {
	var slots models.SlotSet
	skip := span{}
	if name, sp, ok := l.supplier(toks); ok {
		slots.Supplier = models.StringPtr(name)
		skip = sp
	}
	slots.Product = l.product(toks, skip)
	slots.Quantity = quantity(toks)
	return slots
}
