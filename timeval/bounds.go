package timeval

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jask/segedit/engine"
)

// components adapts the time domain to the engine's partial-bounds view:
// year, month, day, hour, minute, second, millisecond in descending
// granularity. Day maxima go through the calendar collaborator.
type components struct {
	cal     Calendar
	minYear int
}

func (c *components) Count() int { return 7 }

func (c *components) Split(v int64) []int {
	t := time.UnixMilli(v).UTC()
	return []int{t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond() / 1e6}
}

func (c *components) Join(parts []int) (int64, error) {
	if len(parts) != 7 {
		return 0, fmt.Errorf("join: %d components, want 7", len(parts))
	}
	t := time.Date(parts[0], time.Month(parts[1]), parts[2], parts[3], parts[4], parts[5], parts[6]*1e6, time.UTC)
	return t.UnixMilli(), nil
}

func (c *components) CompMin(i int, prefix []int) int {
	switch i {
	case 0:
		return c.minYear
	case 1, 2:
		return 1
	}
	return 0
}

func (c *components) CompMax(i int, prefix []int) int {
	switch i {
	case 0:
		return 9999
	case 1:
		return 12
	case 2:
		return c.cal.DaysIn(prefix[0], prefix[1])
	case 3:
		return 23
	case 4, 5:
		return 59
	}
	return 999
}

// ParseBoundText splits a partial bound specification into leading
// components: "2020", "2020-06", "2020-06-15T14:30:05.250". A leading
// minus marks an astronomical year ("-0043" is 44BC); such bounds only
// construct against models whose year range reaches below 1. Trailing
// components may be omitted at any boundary; anything malformed is an
// error, since bound text comes from configuration, not end users.
func ParseBoundText(text string) ([]int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty bound")
	}
	datePart := text
	timePart := ""
	for _, sep := range []string{"T", " "} {
		if i := strings.Index(text, sep); i >= 0 {
			datePart, timePart = text[:i], text[i+1:]
			break
		}
	}
	var parts []int
	push := func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("bound component %q: %w", s, err)
		}
		parts = append(parts, n)
		return nil
	}
	negYear := strings.HasPrefix(datePart, "-")
	if negYear {
		datePart = datePart[1:]
	}
	dates := strings.Split(datePart, "-")
	if len(dates) > 3 {
		return nil, fmt.Errorf("bound %q: too many date components", text)
	}
	for _, d := range dates {
		if err := push(d); err != nil {
			return nil, err
		}
	}
	if negYear {
		parts[0] = -parts[0]
	}
	if timePart != "" {
		if len(dates) != 3 {
			return nil, fmt.Errorf("bound %q: time without full date", text)
		}
		millis := ""
		if i := strings.Index(timePart, "."); i >= 0 {
			timePart, millis = timePart[:i], timePart[i+1:]
		}
		times := strings.Split(timePart, ":")
		if len(times) > 3 {
			return nil, fmt.Errorf("bound %q: too many time components", text)
		}
		for _, t := range times {
			if err := push(t); err != nil {
				return nil, err
			}
		}
		if millis != "" {
			if len(times) != 3 {
				return nil, fmt.Errorf("bound %q: fraction without seconds", text)
			}
			for len(millis) < 3 {
				millis += "0"
			}
			if err := push(millis); err != nil {
				return nil, err
			}
		}
	}
	return parts, nil
}

// Bound builds a possibly-partial limit from configuration text. Empty text
// means unbounded (nil limit). Malformed text is a construction-time error.
func (m *Model) Bound(side engine.Side, text string) (*engine.Limit, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	parts, err := ParseBoundText(text)
	if err != nil {
		return nil, err
	}
	return engine.Partial(side, parts, m.Components())
}

// ExactBound builds a fully-resolved limit from an instant.
func (m *Model) ExactBound(side engine.Side, t time.Time) *engine.Limit {
	return engine.Exact(side, t.UnixMilli())
}
