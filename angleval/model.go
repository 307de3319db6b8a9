package angleval

import (
	"fmt"
	"math"

	"github.com/jask/segedit/engine"
)

// The composite value is a fixed-point angle: 1 unit = 1/36,000,000 degree.
// That scale divides evenly into decimal-degree digits (up to six places)
// and into arcminute/arcsecond digits (down to milliarcseconds), so every
// digit position has an exact integer tick.
const (
	UnitsPerDegree int64 = 36_000_000
	unitsPerMinute int64 = UnitsPerDegree / 60
	unitsPerSecond int64 = unitsPerMinute / 60
)

// Units converts floating degrees to the internal fixed-point value.
func Units(deg float64) int64 {
	return int64(math.Round(deg * float64(UnitsPerDegree)))
}

// Degrees converts the internal fixed-point value back to floating degrees.
func Degrees(u int64) float64 {
	return float64(u) / float64(UnitsPerDegree)
}

// Style selects the angle notation.
type Style int

const (
	Decimal Style = iota // DDD.ffffff°
	DegMin               // DDD°MM′
	DegMinSec            // DDD°MM′SS.fff″
)

// Compass selects the hemisphere vocabulary; CompassNone uses a +/- sign.
type Compass int

const (
	CompassNone Compass = iota
	CompassNS
	CompassEW
)

// Component groups.
const (
	GroupDeg = iota
	GroupMin
	GroupSec
	GroupFrac
	GroupHemi
)

// Options is the recognized configuration record for an angle editor.
type Options struct {
	Style            Style
	Compass          Compass
	Unsigned         bool
	WrapAround       bool
	DecimalPrecision int // fraction digits in Decimal style, 0..6
	SecondsPrecision int // fraction digits on seconds, 0..3
	RTL              bool
}

func (o Options) withDefaults() Options {
	if o.DecimalPrecision < 0 {
		o.DecimalPrecision = 0
	}
	if o.DecimalPrecision > 6 {
		o.DecimalPrecision = 6
	}
	if o.SecondsPrecision < 0 {
		o.SecondsPrecision = 0
	}
	if o.SecondsPrecision > 3 {
		o.SecondsPrecision = 3
	}
	return o
}

// Model is the angle-domain field strategy.
type Model struct {
	opts Options
}

func New(opts Options) *Model {
	return &Model{opts: opts.withDefaults()}
}

func (m *Model) Options() Options { return m.opts }
func (m *Model) RTL() bool        { return m.opts.RTL }

// maxDegrees is the magnitude ceiling: 360 unsigned, 90 for north/south
// hemispheres (a latitude), 180 otherwise.
func (m *Model) maxDegrees() int {
	if m.opts.Unsigned {
		return 360
	}
	if m.opts.Compass == CompassNS {
		return 90
	}
	return 180
}

func (m *Model) degWidth() int {
	if m.maxDegrees() == 90 {
		return 2
	}
	return 3
}

func (m *Model) fracDigits() int {
	if m.opts.Style == Decimal {
		return m.opts.DecimalPrecision
	}
	if m.opts.Style == DegMinSec {
		return m.opts.SecondsPrecision
	}
	return 0
}

// fracUnit is the value of one count of the fraction group.
func (m *Model) fracUnit() int64 {
	base := UnitsPerDegree
	if m.opts.Style == DegMinSec {
		base = unitsPerSecond
	}
	return base / int64(pow10(m.fracDigits()))
}

func (m *Model) hemiTokens() [2]string {
	switch m.opts.Compass {
	case CompassNS:
		return [2]string{"N", "S"}
	case CompassEW:
		return [2]string{"E", "W"}
	}
	return [2]string{"+", "-"}
}

func (m *Model) BuildFields() []engine.Field {
	var fs []engine.Field
	mark := func(text string) {
		fs = append(fs, engine.Field{Kind: engine.KindIndicator, Bidi: true, Text: text})
	}
	digits := func(group, n int) {
		for p := n - 1; p >= 0; p-- {
			fs = append(fs, engine.Field{Kind: engine.KindDigit, Editable: true, Group: group, Place: p})
		}
	}
	signLeading := !m.opts.Unsigned && m.opts.Compass == CompassNone
	if signLeading {
		fs = append(fs, engine.Field{Kind: engine.KindSign, Editable: true, Group: GroupHemi, Tokens: [2]string{"+", "-"}, Text: "+"})
	}
	digits(GroupDeg, m.degWidth())
	switch m.opts.Style {
	case Decimal:
		if m.fracDigits() > 0 {
			mark(".")
			digits(GroupFrac, m.fracDigits())
		}
		mark("°")
	case DegMin:
		mark("°")
		digits(GroupMin, 2)
		mark("′")
	case DegMinSec:
		mark("°")
		digits(GroupMin, 2)
		mark("′")
		digits(GroupSec, 2)
		if m.fracDigits() > 0 {
			mark(".")
			digits(GroupFrac, m.fracDigits())
		}
		mark("″")
	}
	if !m.opts.Unsigned && m.opts.Compass != CompassNone {
		fs = append(fs, engine.Field{Kind: engine.KindSeparator, Text: " "})
		fs = append(fs, engine.Field{Kind: engine.KindSign, Editable: true, Group: GroupHemi, Tokens: m.hemiTokens(), Text: m.hemiTokens()[0]})
	}
	return fs
}

func (m *Model) Decode(v int64, fields []engine.Field) {
	mag := v
	hemi := 0
	if mag < 0 {
		mag = -mag
		hemi = 1
	}
	group := map[int]int{}
	switch m.opts.Style {
	case Decimal:
		group[GroupDeg] = int(mag / UnitsPerDegree)
		group[GroupFrac] = int(mag % UnitsPerDegree / m.fracUnit())
	case DegMin:
		group[GroupDeg] = int(mag / UnitsPerDegree)
		group[GroupMin] = int(mag % UnitsPerDegree / unitsPerMinute)
	case DegMinSec:
		group[GroupDeg] = int(mag / UnitsPerDegree)
		group[GroupMin] = int(mag % UnitsPerDegree / unitsPerMinute)
		group[GroupSec] = int(mag % unitsPerMinute / unitsPerSecond)
		group[GroupFrac] = int(mag % unitsPerSecond / m.fracUnit())
	}
	for i := range fields {
		f := &fields[i]
		switch f.Kind {
		case engine.KindDigit:
			d := group[f.Group] / pow10(f.Place) % 10
			f.Digit = d
			f.Text = string(rune('0' + d))
		case engine.KindSign:
			f.TokenIdx = hemi
			f.Text = f.Tokens[hemi]
		}
	}
}

// Encode reads the digit groups back into a value. Arcminutes or seconds
// above 59 are invalid; an out-of-range magnitude is not an encode error —
// range policy (wrap or reject) belongs to the engine.
func (m *Model) Encode(fields []engine.Field) (int64, error) {
	deg, min, sec, frac, hemi := readGroups(fields)
	if m.opts.Style != Decimal && min > 59 {
		return 0, fmt.Errorf("arcminutes %d out of range", min)
	}
	if m.opts.Style == DegMinSec && sec > 59 {
		return 0, fmt.Errorf("arcseconds %d out of range", sec)
	}
	return m.compose(deg, min, sec, frac, hemi), nil
}

func (m *Model) Normalize(fields []engine.Field) int64 {
	deg, min, sec, frac, hemi := readGroups(fields)
	if min > 59 {
		min = 59
	}
	if sec > 59 {
		sec = 59
	}
	if deg > m.maxDegrees() {
		deg = m.maxDegrees()
	}
	return m.compose(deg, min, sec, frac, hemi)
}

func (m *Model) compose(deg, min, sec, frac, hemi int) int64 {
	mag := int64(deg)*UnitsPerDegree + int64(min)*unitsPerMinute + int64(sec)*unitsPerSecond + int64(frac)*m.fracUnit()
	if hemi == 1 {
		mag = -mag
	}
	return mag
}

func readGroups(fields []engine.Field) (deg, min, sec, frac, hemi int) {
	for _, f := range fields {
		switch f.Kind {
		case engine.KindDigit:
			n := f.Digit * pow10(f.Place)
			switch f.Group {
			case GroupDeg:
				deg += n
			case GroupMin:
				min += n
			case GroupSec:
				sec += n
			case GroupFrac:
				frac += n
			}
		case engine.KindSign:
			hemi = f.TokenIdx
		}
	}
	return
}

// Shift moves the magnitude by one digit unit; on a negative angle the
// displayed digits grow as the value falls, so the delta flips sign.
func (m *Model) Shift(v int64, f engine.Field, ticks int) int64 {
	var unit int64
	switch f.Group {
	case GroupDeg:
		unit = UnitsPerDegree
	case GroupMin:
		unit = unitsPerMinute
	case GroupSec:
		unit = unitsPerSecond
	case GroupFrac:
		unit = m.fracUnit()
	default:
		return v
	}
	delta := int64(ticks) * unit * int64(pow10(f.Place))
	if v < 0 {
		delta = -delta
	}
	return v + delta
}

func (m *Model) GroupSpan(group int, fields []engine.Field) (int, int) {
	switch group {
	case GroupDeg:
		if m.opts.Unsigned {
			return 0, 359
		}
		return 0, m.maxDegrees()
	case GroupMin, GroupSec:
		return 0, 59
	case GroupFrac:
		return 0, pow10(m.fracDigits()) - 1
	}
	return 0, 9
}

func (m *Model) Range() (int64, int64, bool) {
	if m.opts.Unsigned {
		return 0, 360*UnitsPerDegree - 1, m.opts.WrapAround
	}
	if m.maxDegrees() == 90 {
		// Latitudes clamp at the poles; wrapping makes no sense there.
		return -90 * UnitsPerDegree, 90 * UnitsPerDegree, false
	}
	return -180 * UnitsPerDegree, 180*UnitsPerDegree - 1, m.opts.WrapAround
}

// InitialSelection prefers the lowest-granularity digit: the last editable
// digit field in logical order.
func (m *Model) InitialSelection(fields []engine.Field) int {
	for i := len(fields) - 1; i >= 0; i-- {
		f := fields[i]
		if f.Kind == engine.KindDigit && f.Editable && !f.Hidden {
			return f.Index
		}
	}
	for _, f := range fields {
		if f.Editable && !f.Hidden {
			return f.Index
		}
	}
	return engine.NoSelection
}

// Components is nil: angle bounds are always fully resolved.
func (m *Model) Components() engine.Components { return nil }

// Bound builds a fully-resolved limit from floating degrees.
func (m *Model) Bound(side engine.Side, deg float64) *engine.Limit {
	return engine.Exact(side, Units(deg))
}

func pow10(n int) int {
	p := 1
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
