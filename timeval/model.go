package timeval

import (
	"fmt"
	"time"

	"github.com/jask/segedit/engine"
)

// Component groups. Digit fields carry one of the first seven; the token
// fields use their own ids so Decode can tell meridiem from era.
const (
	GroupYear = iota
	GroupMonth
	GroupDay
	GroupHour
	GroupMinute
	GroupSecond
	GroupMillis
	GroupMeridiem
	GroupEra
)

// Model is the time-domain field strategy. The composite value is epoch
// milliseconds (UTC). One model instance belongs to exactly one editor: the
// century anchor for two-digit year styles lives here.
type Model struct {
	opts    Options
	century int
}

func New(opts Options) *Model {
	return &Model{opts: opts.withDefaults(), century: 2000}
}

func (m *Model) Options() Options { return m.opts }
func (m *Model) RTL() bool        { return m.opts.RTL }

func (m *Model) BuildFields() []engine.Field {
	var fs []engine.Field
	sep := func(text string) {
		fs = append(fs, engine.Field{Kind: engine.KindSeparator, Text: text})
	}
	digits := func(group, n int) {
		for p := n - 1; p >= 0; p-- {
			fs = append(fs, engine.Field{Kind: engine.KindDigit, Editable: true, Group: group, Place: p})
		}
	}
	token := func(group int, tokens [2]string) {
		fs = append(fs, engine.Field{Kind: engine.KindToken, Editable: true, Group: group, Tokens: tokens, Text: tokens[0]})
	}

	date := func() {
		parts := [3]func(){
			func() { digits(GroupYear, m.opts.YearDigits) },
			func() { digits(GroupMonth, 2) },
			func() { digits(GroupDay, 2) },
		}
		var order [3]int
		switch m.opts.DateOrder {
		case DMY:
			order = [3]int{2, 1, 0}
		case MDY:
			order = [3]int{1, 2, 0}
		default:
			order = [3]int{0, 1, 2}
		}
		for i, oi := range order {
			if i > 0 {
				sep(m.opts.Tokens.DateSep)
			}
			parts[oi]()
		}
		if m.opts.ShowEra {
			sep(" ")
			token(GroupEra, m.opts.Tokens.Era)
		}
	}
	clock := func() {
		digits(GroupHour, 2)
		sep(m.opts.Tokens.TimeSep)
		digits(GroupMinute, 2)
		if m.opts.ShowSeconds {
			sep(m.opts.Tokens.TimeSep)
			digits(GroupSecond, 2)
			if m.opts.MillisDigits > 0 {
				sep(m.opts.Tokens.MillisSep)
				digits(GroupMillis, m.opts.MillisDigits)
			}
		}
		if m.opts.HourStyle == Hour12 {
			sep(" ")
			token(GroupMeridiem, m.opts.Tokens.Meridiem)
		}
	}

	switch m.opts.Style {
	case DateOnly:
		date()
	case TimeOnly:
		clock()
	default:
		if m.opts.TimeFirst {
			clock()
			sep(" ")
			date()
		} else {
			date()
			sep(" ")
			clock()
		}
	}
	return fs
}

// ObserveValue keeps the century anchor tracking the committed value so
// two-digit years round-trip through Encode. The editor calls it on the
// committed render path only; preview decodes never reach it.
func (m *Model) ObserveValue(v int64) {
	year := time.UnixMilli(v).UTC().Year()
	if year < 1 {
		year = 1 - year
	}
	m.century = year - year%100
}

// Decode writes a value into the field contents. It must not mutate model
// state: gesture previews decode candidate values through the same model.
func (m *Model) Decode(v int64, fields []engine.Field) {
	t := time.UnixMilli(v).UTC()
	year, eraIdx := t.Year(), 0
	if year < 1 {
		eraIdx, year = 1, 1-year
	}
	dispYear := year
	if m.opts.YearDigits == 2 {
		dispYear = year % 100
	}
	hour, merIdx := t.Hour(), 0
	if m.opts.HourStyle == Hour12 {
		if hour >= 12 {
			merIdx = 1
		}
		hour = hour % 12
		if hour == 0 {
			hour = 12
		}
	}
	group := map[int]int{
		GroupYear:   dispYear,
		GroupMonth:  int(t.Month()),
		GroupDay:    t.Day(),
		GroupHour:   hour,
		GroupMinute: t.Minute(),
		GroupSecond: t.Second(),
		GroupMillis: t.Nanosecond() / 1e6 / pow10(3-m.opts.MillisDigits),
	}
	for i := range fields {
		f := &fields[i]
		switch f.Kind {
		case engine.KindDigit:
			d := group[f.Group] / pow10(f.Place) % 10
			f.Digit = d
			f.Text = string(rune('0' + d))
			f.Hidden = m.opts.HourStyle == Hour12 && f.Group == GroupHour && f.Place == 1 && hour < 10
		case engine.KindToken:
			if f.Group == GroupMeridiem {
				f.TokenIdx = merIdx
			} else {
				f.TokenIdx = eraIdx
			}
			f.Text = f.Tokens[f.TokenIdx]
		}
	}
}

// Encode is strict: a calendar-invalid combination (month 19, Feb 30) comes
// back as an error so the engine can hold it as a mid-edit state.
func (m *Model) Encode(fields []engine.Field) (int64, error) {
	g := m.readGroups(fields)
	if g.month < 1 || g.month > 12 {
		return 0, fmt.Errorf("month %d out of range", g.month)
	}
	if g.day < 1 || g.day > m.opts.Calendar.DaysIn(g.year, g.month) {
		return 0, fmt.Errorf("day %d invalid for %d-%02d", g.day, g.year, g.month)
	}
	if g.hour < 0 || g.hour > 23 {
		return 0, fmt.Errorf("hour %d out of range", g.hour)
	}
	if g.minute > 59 || g.second > 59 {
		return 0, fmt.Errorf("minute/second out of range")
	}
	return compose(g), nil
}

// Normalize clamps every component group into its legal span before
// composing; the engine calls it when a tolerated mid-edit state settles.
func (m *Model) Normalize(fields []engine.Field) int64 {
	g := m.readGroups(fields)
	g.month = clamp(g.month, 1, 12)
	g.day = clamp(g.day, 1, m.opts.Calendar.DaysIn(g.year, g.month))
	g.hour = clamp(g.hour, 0, 23)
	g.minute = clamp(g.minute, 0, 59)
	g.second = clamp(g.second, 0, 59)
	g.millis = clamp(g.millis, 0, 999)
	return compose(g)
}

type groups struct {
	year, month, day, hour, minute, second, millis int
}

func (m *Model) readGroups(fields []engine.Field) groups {
	raw := map[int]int{}
	merIdx, eraIdx := 0, 0
	hasHour := false
	for _, f := range fields {
		switch f.Kind {
		case engine.KindDigit:
			raw[f.Group] += f.Digit * pow10(f.Place)
			if f.Group == GroupHour {
				hasHour = true
			}
		case engine.KindToken:
			if f.Group == GroupMeridiem {
				merIdx = f.TokenIdx
			} else {
				eraIdx = f.TokenIdx
			}
		}
	}
	g := groups{
		year:   raw[GroupYear],
		month:  raw[GroupMonth],
		day:    raw[GroupDay],
		hour:   raw[GroupHour],
		minute: raw[GroupMinute],
		second: raw[GroupSecond],
		millis: raw[GroupMillis] * pow10(3-m.opts.MillisDigits),
	}
	if m.opts.YearDigits == 2 {
		g.year += m.century
	}
	if eraIdx == 1 {
		g.year = 1 - g.year
	}
	if m.opts.Style == TimeOnly {
		// Clock-only editors still need a concrete date to compose.
		g.year, g.month, g.day = 1970, 1, 1
	}
	if hasHour && m.opts.HourStyle == Hour12 {
		g.hour = g.hour % 12
		if merIdx == 1 {
			g.hour += 12
		}
	}
	return g
}

func compose(g groups) int64 {
	t := time.Date(g.year, time.Month(g.month), g.day, g.hour, g.minute, g.second, g.millis*1e6, time.UTC)
	return t.UnixMilli()
}

// Shift applies one field's tick unit. Clock and day fields are fixed
// millisecond deltas so carry falls out of the arithmetic; month and year
// ticks do calendar steps with end-of-month clamping.
func (m *Model) Shift(v int64, f engine.Field, ticks int) int64 {
	t := time.UnixMilli(v).UTC()
	switch f.Group {
	case GroupYear:
		n := ticks * pow10(f.Place)
		if m.opts.ShowEra && t.Year() < 1 {
			// Displayed BC years grow as the instant recedes.
			n = -n
		}
		return m.addMonthsClamped(t, n*12)
	case GroupMonth:
		return m.addMonthsClamped(t, ticks*pow10(f.Place))
	case GroupDay:
		return v + int64(ticks*pow10(f.Place))*86400000
	case GroupHour:
		return v + int64(ticks*pow10(f.Place))*3600000
	case GroupMinute:
		return v + int64(ticks*pow10(f.Place))*60000
	case GroupSecond:
		return v + int64(ticks*pow10(f.Place))*1000
	case GroupMillis:
		return v + int64(ticks*pow10(f.Place)*pow10(3-m.opts.MillisDigits))
	case GroupMeridiem:
		if t.Hour() < 12 {
			return v + 12*3600000
		}
		return v - 12*3600000
	case GroupEra:
		return m.withYear(t, 1-t.Year())
	}
	return v
}

func (m *Model) addMonthsClamped(t time.Time, n int) int64 {
	total := t.Year()*12 + int(t.Month()) - 1 + n
	y := total / 12
	mo := total%12 + 1
	if total < 0 && total%12 != 0 {
		y--
		mo = total%12 + 13
	}
	day := t.Day()
	if max := m.opts.Calendar.DaysIn(y, mo); day > max {
		day = max
	}
	return time.Date(y, time.Month(mo), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC).UnixMilli()
}

func (m *Model) withYear(t time.Time, y int) int64 {
	day := t.Day()
	if max := m.opts.Calendar.DaysIn(y, int(t.Month())); day > max {
		day = max
	}
	return time.Date(y, t.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC).UnixMilli()
}

func (m *Model) GroupSpan(group int, fields []engine.Field) (int, int) {
	switch group {
	case GroupYear:
		return 0, pow10(m.opts.YearDigits) - 1
	case GroupMonth:
		return 1, 12
	case GroupDay:
		return 1, 31
	case GroupHour:
		if m.opts.HourStyle == Hour12 {
			return 1, 12
		}
		return 0, 23
	case GroupMinute, GroupSecond:
		return 0, 59
	case GroupMillis:
		return 0, pow10(m.opts.MillisDigits) - 1
	}
	return 0, 9
}

func (m *Model) Range() (int64, int64, bool) {
	if m.opts.Style == TimeOnly {
		// One civil day; rolling past midnight wraps rather than drifting
		// the invisible date.
		return 0, 86400000 - 1, true
	}
	lo := time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	if m.opts.ShowEra {
		lo = time.Date(-9998, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	}
	hi := time.Date(9999, 12, 31, 23, 59, 59, 999*1e6, time.UTC).UnixMilli()
	return lo, hi, false
}

// InitialSelection prefers the lowest-granularity clock field: seconds,
// else minutes, else day.
func (m *Model) InitialSelection(fields []engine.Field) int {
	for _, group := range []int{GroupSecond, GroupMinute, GroupDay} {
		for _, f := range fields {
			if f.Kind == engine.KindDigit && f.Group == group && f.Place == 0 && f.Editable && !f.Hidden {
				return f.Index
			}
		}
	}
	for _, f := range fields {
		if f.Editable && !f.Hidden {
			return f.Index
		}
	}
	return engine.NoSelection
}

func (m *Model) Components() engine.Components {
	minYear := 1
	if m.opts.ShowEra {
		minYear = -9998
	}
	return &components{cal: m.opts.Calendar, minYear: minYear}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func pow10(n int) int {
	p := 1
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
