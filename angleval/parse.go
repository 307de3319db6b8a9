package angleval

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/jask/segedit/engine"
)

// Parse decodes clipboard text shaped like the editor's own rendering:
// "-45.500000°", "045°30′15.250″ S", "12°05′ W". Degree marks and
// separators of any shape are skipped; the hemisphere letter is matched
// tolerantly.
func (m *Model) Parse(text string) (int64, error) {
	numbers, fracs, word, negative, err := scanAngle(text)
	if err != nil {
		return 0, err
	}
	want := map[Style]int{Decimal: 1, DegMin: 2, DegMinSec: 3}[m.opts.Style]
	if len(numbers) != want {
		return 0, fmt.Errorf("paste: %d number runs, want %d", len(numbers), want)
	}
	deg := numbers[0]
	min, sec := 0, 0
	fracStr := fracs[0]
	if m.opts.Style != Decimal {
		min = numbers[1]
		if min > 59 {
			return 0, fmt.Errorf("paste: arcminutes %d out of range", min)
		}
	}
	if m.opts.Style == DegMinSec {
		sec = numbers[2]
		if sec > 59 {
			return 0, fmt.Errorf("paste: arcseconds %d out of range", sec)
		}
		fracStr = fracs[2]
	}
	frac := 0
	if fracStr != "" {
		p := m.fracDigits()
		for len(fracStr) < p {
			fracStr += "0"
		}
		fracStr = fracStr[:p]
		if p > 0 {
			n, err := strconv.Atoi(fracStr)
			if err != nil {
				return 0, fmt.Errorf("paste: fraction: %w", err)
			}
			frac = n
		}
	}
	hemi := 0
	if negative {
		hemi = 1
	}
	if word != "" {
		idx, ok := engine.MatchToken(word, m.hemiTokens())
		if !ok {
			return 0, fmt.Errorf("paste: unknown hemisphere %q", word)
		}
		hemi = idx
	}
	if m.opts.Unsigned && hemi == 1 {
		return 0, fmt.Errorf("paste: negative angle in unsigned editor")
	}
	if m.opts.Unsigned {
		hemi = 0
	}
	return m.compose(deg, min, sec, frac, hemi), nil
}

// scanAngle splits angle text into integer runs with their attached decimal
// fractions, an optional hemisphere word, and an optional leading sign.
func scanAngle(text string) (numbers []int, fracs []string, word string, negative bool, err error) {
	runes := []rune(text)
	seenDigits := false
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == '-' && !seenDigits:
			negative = true
			i++
		case r == '+' && !seenDigits:
			i++
		case unicode.IsDigit(r):
			seenDigits = true
			j := i
			for j < len(runes) && unicode.IsDigit(runes[j]) {
				j++
			}
			n, aerr := strconv.Atoi(string(runes[i:j]))
			if aerr != nil {
				return nil, nil, "", false, fmt.Errorf("paste: %w", aerr)
			}
			frac := ""
			if j < len(runes) && runes[j] == '.' {
				k := j + 1
				for k < len(runes) && unicode.IsDigit(runes[k]) {
					k++
				}
				if k > j+1 {
					frac = string(runes[j+1 : k])
					j = k
				}
			}
			numbers = append(numbers, n)
			fracs = append(fracs, frac)
			i = j
		case unicode.IsLetter(r):
			j := i
			for j < len(runes) && unicode.IsLetter(runes[j]) {
				j++
			}
			if word != "" {
				return nil, nil, "", false, fmt.Errorf("paste: multiple hemisphere tokens")
			}
			word = string(runes[i:j])
			i = j
		default:
			i++
		}
	}
	if len(numbers) == 0 {
		return nil, nil, "", false, fmt.Errorf("paste: no digits")
	}
	return numbers, fracs, word, negative, nil
}
