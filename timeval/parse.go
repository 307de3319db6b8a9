package timeval

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/jask/segedit/engine"
)

// Parse is the inverse of the display render path: it accepts clipboard
// text shaped like the editor's own output and decodes it to a composite
// value. Number runs map positionally onto the digit component groups,
// letter runs onto the token fields (meridiem, era) with tolerant matching.
func (m *Model) Parse(text string) (int64, error) {
	numbers, words, err := scanRuns(text)
	if err != nil {
		return 0, err
	}
	fields := m.BuildFields()

	var digitGroups []int
	var tokenAt []int
	for i, f := range fields {
		switch f.Kind {
		case engine.KindDigit:
			if n := len(digitGroups); n == 0 || digitGroups[n-1] != f.Group {
				digitGroups = append(digitGroups, f.Group)
			}
		case engine.KindToken:
			tokenAt = append(tokenAt, i)
		}
	}
	if len(numbers) != len(digitGroups) {
		return 0, fmt.Errorf("paste: %d number runs, want %d", len(numbers), len(digitGroups))
	}
	if len(words) != len(tokenAt) {
		return 0, fmt.Errorf("paste: %d tokens, want %d", len(words), len(tokenAt))
	}
	for i, group := range digitGroups {
		if err := setGroup(fields, group, numbers[i]); err != nil {
			return 0, err
		}
	}
	for i, fi := range tokenAt {
		f := &fields[fi]
		idx, ok := engine.MatchToken(words[i], f.Tokens)
		if !ok {
			return 0, fmt.Errorf("paste: unknown token %q", words[i])
		}
		f.TokenIdx = idx
	}
	return m.Encode(fields)
}

func setGroup(fields []engine.Field, group, val int) error {
	if val < 0 {
		return fmt.Errorf("paste: negative component %d", val)
	}
	width := 0
	for _, f := range fields {
		if f.Kind == engine.KindDigit && f.Group == group {
			width++
		}
	}
	if val >= pow10(width) {
		return fmt.Errorf("paste: component %d too wide", val)
	}
	for i := range fields {
		f := &fields[i]
		if f.Kind == engine.KindDigit && f.Group == group {
			f.Digit = val / pow10(f.Place) % 10
			f.Text = string(rune('0' + f.Digit))
		}
	}
	return nil
}

// scanRuns splits text into its number runs and letter runs; separators of
// any shape are skipped, so "2020-06-15" and "2020/06/15" parse alike.
func scanRuns(text string) ([]int, []string, error) {
	var numbers []int
	var words []string
	runes := []rune(text)
	for i := 0; i < len(runes); {
		switch {
		case unicode.IsDigit(runes[i]):
			j := i
			for j < len(runes) && unicode.IsDigit(runes[j]) {
				j++
			}
			n, err := strconv.Atoi(string(runes[i:j]))
			if err != nil {
				return nil, nil, fmt.Errorf("paste: %w", err)
			}
			numbers = append(numbers, n)
			i = j
		case unicode.IsLetter(runes[i]):
			j := i
			for j < len(runes) && (unicode.IsLetter(runes[j]) || runes[j] == '.') {
				j++
			}
			words = append(words, string(runes[i:j]))
			i = j
		default:
			i++
		}
	}
	if len(numbers) == 0 && len(words) == 0 {
		return nil, nil, fmt.Errorf("paste: no content")
	}
	return numbers, words, nil
}
